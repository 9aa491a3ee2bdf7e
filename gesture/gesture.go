// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Gestures accept low level pointer Events from an event
Queue and detect higher level actions such as clicks
and drags.
*/
package gesture

import (
	"time"

	"sliderkit.org/f32"
	"sliderkit.org/io/event"
	"sliderkit.org/io/pointer"
	"sliderkit.org/op"
)

// Click detects click gestures in the form
// of ClickEvents.
type Click struct {
	// state tracks the gesture state.
	state ClickState
	// clickedAt is the timestamp of the most recent click.
	clickedAt time.Duration
	// clicks counts the consecutive clicks within
	// doubleClickDuration of each other.
	clicks int
}

type ClickState uint8

// ClickEvent represent a click action, either a
// TypePress for the beginning of a click or a
// TypeClick for a completed click.
type ClickEvent struct {
	Type     ClickType
	Position f32.Point
	Source   pointer.Source
	// NumClicks is the number of consecutive clicks
	// this click is part of.
	NumClicks int
}

type ClickType uint8

// Drag detects drag gestures in the form of pointer.Drag events.
// It tracks a single pointer from Press to Release or Cancel and
// suppresses events from other pointers in between.
type Drag struct {
	dragging bool
	pid      pointer.ID
	start    f32.Point
}

// Scroll detects scroll gestures from mouse wheel movements and
// reduces them to whole step increments. Fractions of a step are
// carried over to the next call.
type Scroll struct {
	// Leftover scroll.
	scroll float32
}

type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

const (
	// StateNormal is the default click state.
	StateNormal ClickState = iota
	// StateFocused is reported when a pointer
	// is hovering over the handler.
	StateFocused
	// StatePressed is then a pointer is pressed.
	StatePressed
)

const (
	// TypePress is reported for the first pointer
	// press.
	TypePress ClickType = iota
	// TypeClick is reported when a click action
	// is complete.
	TypeClick
)

// doubleClickDuration is the maximum duration between two clicks
// counted as one multi-click.
const doubleClickDuration = 200 * time.Millisecond

// Add the handler to the operation list to receive click events.
func (c *Click) Add(ops *op.Ops, area f32.Rectangle) {
	pointer.InputOp{Tag: c, Area: area}.Add(ops)
}

// State reports the click state.
func (c *Click) State() ClickState {
	return c.state
}

// Events returns the next click events, if any.
func (c *Click) Events(q event.Queue) []ClickEvent {
	var events []ClickEvent
	for _, evt := range q.Events(c) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Type {
		case pointer.Release:
			wasPressed := c.state == StatePressed
			c.state = StateNormal
			if !wasPressed {
				break
			}
			if e.Time-c.clickedAt < doubleClickDuration {
				c.clicks++
			} else {
				c.clicks = 1
			}
			c.clickedAt = e.Time
			events = append(events, ClickEvent{
				Type:      TypeClick,
				Position:  e.Position,
				Source:    e.Source,
				NumClicks: c.clicks,
			})
		case pointer.Cancel:
			c.state = StateNormal
		case pointer.Press:
			if c.state == StatePressed || !e.Hit {
				break
			}
			if e.Source == pointer.Mouse && e.Buttons != pointer.ButtonLeft {
				break
			}
			c.state = StatePressed
			events = append(events, ClickEvent{Type: TypePress, Position: e.Position, Source: e.Source})
		case pointer.Move:
			if c.state == StatePressed && !e.Hit {
				c.state = StateNormal
			} else if c.state < StateFocused {
				c.state = StateFocused
			}
		}
	}
	return events
}

// Add the handler to the operation list to receive drag events.
// When grab is set, pointers pressed inside area are delivered to
// this handler exclusively, cancelling the other handlers under
// the press.
func (d *Drag) Add(ops *op.Ops, area f32.Rectangle, grab bool) {
	pointer.InputOp{Tag: d, Area: area, Grab: grab}.Add(ops)
}

// Events returns the next drag events, if any. Positions of the
// returned events are constrained to the drag axis.
func (d *Drag) Events(q event.Queue, axis Axis) []pointer.Event {
	var events []pointer.Event
	for _, evt := range q.Events(d) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Type {
		case pointer.Press:
			if d.dragging || !e.Hit {
				continue
			}
			if e.Source == pointer.Mouse && e.Buttons != pointer.ButtonLeft {
				continue
			}
			d.dragging = true
			d.pid = e.PointerID
			d.start = e.Position
		case pointer.Drag:
			if !d.dragging || e.PointerID != d.pid {
				continue
			}
			switch axis {
			case Horizontal:
				e.Position.Y = d.start.Y
			case Vertical:
				e.Position.X = d.start.X
			}
		case pointer.Release:
			if !d.dragging || e.PointerID != d.pid {
				continue
			}
			d.dragging = false
		case pointer.Cancel:
			if !d.dragging {
				continue
			}
			d.dragging = false
		default:
			continue
		}
		events = append(events, e)
	}
	return events
}

// Dragging reports whether a drag is in progress.
func (d *Drag) Dragging() bool {
	return d.dragging
}

// Add the handler to the operation list to receive scroll events.
func (s *Scroll) Add(ops *op.Ops, area f32.Rectangle) {
	pointer.InputOp{Tag: s, Area: area}.Add(ops)
}

// Steps reduces the available scroll events along axis to whole
// steps of stepPx pixels. The remainder is carried over to the
// next call. A Cancel event resets the carried remainder.
func (s *Scroll) Steps(q event.Queue, axis Axis, stepPx int) int {
	if stepPx <= 0 {
		return 0
	}
	total := 0
	for _, evt := range q.Events(s) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Type {
		case pointer.Scroll:
			switch axis {
			case Horizontal:
				s.scroll += e.Scroll.X
			case Vertical:
				s.scroll += e.Scroll.Y
			}
			steps := int(s.scroll / float32(stepPx))
			s.scroll -= float32(steps * stepPx)
			total += steps
		case pointer.Cancel:
			s.scroll = 0
		}
	}
	return total
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Axis")
	}
}

func (ct ClickType) String() string {
	switch ct {
	case TypePress:
		return "TypePress"
	case TypeClick:
		return "TypeClick"
	default:
		panic("invalid ClickType")
	}
}

func (cs ClickState) String() string {
	switch cs {
	case StateNormal:
		return "StateNormal"
	case StateFocused:
		return "StateFocused"
	case StatePressed:
		return "StatePressed"
	default:
		panic("invalid ClickState")
	}
}
