// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"time"

	"sliderkit.org/f32"
	"sliderkit.org/io/event"
	"sliderkit.org/op"
	"sliderkit.org/unit"
)

// Context carries the state needed by almost all layouts and widgets.
// A zero value Context never generates events, but can still be used
// to lay out.
type Context struct {
	// Constraints track the constraints for the active widget or
	// layout.
	Constraints Constraints

	Metric unit.Metric
	// Now is the animation time.
	Now time.Time

	// Origin is the position of the widget in the coordinate space of
	// Queue events. Input areas are declared relative to it.
	Origin f32.Point

	// Queue supplies events to widgets. If Queue is nil, no events
	// are delivered and widgets lay out in their disabled state.
	event.Queue
	*op.Ops
}

// Dp converts v to pixels.
func (c Context) Dp(v unit.Dp) int {
	return c.Metric.Dp(v)
}

// Sp converts v to pixels.
func (c Context) Sp(v unit.Sp) int {
	return c.Metric.Sp(v)
}

// Events returns the events available for the key. If no
// queue is configured, Events returns nil.
func (c Context) Events(k event.Tag) []event.Event {
	if c.Queue == nil {
		return nil
	}
	return c.Queue.Events(k)
}

// Disabled returns a copy of this context with a nil Queue,
// blocking events to widgets using it.
func (c Context) Disabled() Context {
	c.Queue = nil
	return c
}
