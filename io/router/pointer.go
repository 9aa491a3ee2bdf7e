// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"sliderkit.org/f32"
	"sliderkit.org/io/event"
	"sliderkit.org/io/pointer"
	"sliderkit.org/op"
)

type pointerQueue struct {
	handlers map[event.Tag]*pointerHandler
	// order holds the handler tags in registration order. Handlers
	// registered later are hit-tested first, mirroring paint order.
	order    []event.Tag
	pointers []pointerInfo
	scratch  []event.Tag
}

type pointerHandler struct {
	area      f32.Rectangle
	active    bool
	wantsGrab bool
}

type pointerInfo struct {
	id      pointer.ID
	pressed bool
	// handlers is the set of tags the pointer was over when it was
	// last hit-tested, foremost first.
	handlers []event.Tag
}

func (q *pointerQueue) init() {
	if q.handlers == nil {
		q.handlers = make(map[event.Tag]*pointerHandler)
	}
}

// Frame collects the pointer.InputOp registrations from an op list.
func (q *pointerQueue) Frame(frame *op.Ops, events handlerEvents) {
	q.init()
	for _, h := range q.handlers {
		h.active = false
	}
	q.order = q.order[:0]
	for _, ref := range frame.Refs() {
		op, ok := ref.(pointer.InputOp)
		if !ok {
			continue
		}
		if op.Tag == nil {
			panic("pointer.InputOp with nil Tag")
		}
		h, ok := q.handlers[op.Tag]
		if !ok {
			h = new(pointerHandler)
			q.handlers[op.Tag] = h
			// Prime new handlers with a Cancel so gestures
			// start from a known state.
			events.Add(op.Tag, pointer.Event{Type: pointer.Cancel})
		}
		h.active = true
		h.area = op.Area
		h.wantsGrab = op.Grab
		q.order = append(q.order, op.Tag)
	}
	for k, h := range q.handlers {
		if !h.active {
			q.dropHandler(k, events)
		}
	}
}

func (q *pointerQueue) dropHandler(k event.Tag, events handlerEvents) {
	delete(q.handlers, k)
	events.Add(k, pointer.Event{Type: pointer.Cancel})
	for i := range q.pointers {
		p := &q.pointers[i]
		for j := len(p.handlers) - 1; j >= 0; j-- {
			if p.handlers[j] == k {
				p.handlers = append(p.handlers[:j], p.handlers[j+1:]...)
			}
		}
	}
}

// Push routes a single event to the handlers it concerns.
func (q *pointerQueue) Push(e pointer.Event, events handlerEvents) {
	q.init()
	if e.Type == pointer.Cancel {
		q.pointers = q.pointers[:0]
		for k := range q.handlers {
			events.Add(k, pointer.Event{Type: pointer.Cancel})
		}
		return
	}
	pidx := -1
	for i, p := range q.pointers {
		if p.id == e.PointerID {
			pidx = i
			break
		}
	}
	if pidx == -1 {
		q.pointers = append(q.pointers, pointerInfo{id: e.PointerID})
		pidx = len(q.pointers) - 1
	}
	p := &q.pointers[pidx]
	if !p.pressed {
		// Unpressed pointers are re-hit-tested on every event.
		p.handlers, q.scratch = q.scratch[:0], p.handlers
		q.opHit(&p.handlers, e.Position)
		if e.Type == pointer.Press {
			p.pressed = true
		}
	}
	if p.pressed && len(p.handlers) > 1 {
		q.resolveGrab(p, events)
	}
	for i, k := range p.handlers {
		h := q.handlers[k]
		e := e
		if p.pressed && e.Type == pointer.Move {
			e.Type = pointer.Drag
		}
		switch {
		case p.pressed && len(p.handlers) == 1:
			e.Priority = pointer.Grabbed
		case i == 0:
			e.Priority = pointer.Foremost
		default:
			e.Priority = pointer.Shared
		}
		e.Hit = h.area.Contains(e.Position)
		e.Position = e.Position.Sub(h.area.Min)
		events.Add(k, e)
	}
	if e.Type == pointer.Release {
		q.pointers = append(q.pointers[:pidx], q.pointers[pidx+1:]...)
	}
}

// resolveGrab drops every handler except the foremost one that wants
// the grab. The dropped handlers receive a Cancel.
func (q *pointerQueue) resolveGrab(p *pointerInfo, events handlerEvents) {
	grab := -1
	for i, k := range p.handlers {
		if q.handlers[k].wantsGrab {
			grab = i
			break
		}
	}
	if grab == -1 {
		return
	}
	for i, k := range p.handlers {
		if i != grab {
			events.Add(k, pointer.Event{Type: pointer.Cancel})
		}
	}
	p.handlers[0] = p.handlers[grab]
	p.handlers = p.handlers[:1]
}

// opHit appends the handlers whose areas contain pos, foremost
// first.
func (q *pointerQueue) opHit(handlers *[]event.Tag, pos f32.Point) {
loop:
	for i := len(q.order) - 1; i >= 0; i-- {
		k := q.order[i]
		if h := q.handlers[k]; !h.area.Contains(pos) {
			continue
		}
		for _, k2 := range *handlers {
			if k2 == k {
				continue loop
			}
		}
		*handlers = append(*handlers, k)
	}
}
