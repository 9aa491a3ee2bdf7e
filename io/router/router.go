// SPDX-License-Identifier: Unlicense OR MIT

/*
Package router implements Router, an event.Queue implementation
that disambiguates and routes pointer events to handlers.

The host side feeds the Router: Frame replays an op list with the
frame's handler registrations, and Queue adds the platform events
received since the last frame. Handlers read back their events with
Events.
*/
package router

import (
	"time"

	"sliderkit.org/io/event"
	"sliderkit.org/io/pointer"
	"sliderkit.org/op"
)

// Router is a pointer event router and queue. Its zero value is
// ready for use.
type Router struct {
	pqueue pointerQueue

	handlers handlerEvents

	wakeup     bool
	wakeupTime time.Time
}

type handlerEvents map[event.Tag][]event.Event

// Events returns the events available for the handler key k since
// the last call with the same key.
func (q *Router) Events(k event.Tag) []event.Event {
	q.init()
	events := q.handlers[k]
	delete(q.handlers, k)
	return events
}

// Frame replays the registrations of a frame's op list. Handlers
// registered in a previous frame but missing from this one are
// dropped and receive a Cancel event.
func (q *Router) Frame(frame *op.Ops) {
	q.init()
	q.wakeup = false
	for _, ref := range frame.Refs() {
		if inv, ok := ref.(op.InvalidateOp); ok {
			if !q.wakeup || inv.At.Before(q.wakeupTime) {
				q.wakeup = true
				q.wakeupTime = inv.At
			}
		}
	}
	q.pqueue.Frame(frame, q.handlers)
}

// Queue routes events to the registered handlers.
func (q *Router) Queue(events ...event.Event) {
	q.init()
	for _, e := range events {
		if e, ok := e.(pointer.Event); ok {
			q.pqueue.Push(e, q.handlers)
		}
	}
}

// WakeupTime returns the most recent time for doing another frame,
// as requested by an InvalidateOp from the last Frame call.
func (q *Router) WakeupTime() (time.Time, bool) {
	return q.wakeupTime, q.wakeup
}

func (q *Router) init() {
	if q.handlers == nil {
		q.handlers = make(handlerEvents)
	}
}

func (h handlerEvents) Add(k event.Tag, e event.Event) {
	h[k] = append(h[k], e)
}
