// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer implements pointer events and operations.
A pointer is either a mouse controlled cursor or a touch
object such as a finger.

The InputOp operation registers a handler for pointer events
delivered through an event.Queue. The handler receives events
scoped to the area it declared, with positions translated to
the area's local coordinate system.
*/
package pointer

import (
	"strings"
	"time"

	"sliderkit.org/f32"
	"sliderkit.org/io/event"
	"sliderkit.org/op"
)

// Event is a pointer event.
type Event struct {
	Type   Type
	Source Source
	// PointerID is the id for the pointer and can be used
	// to track a particular pointer from Press to
	// Release or Cancel.
	PointerID ID
	// Priority is the priority of the receiving handler
	// for this event.
	Priority Priority
	// Time is when the event was received. The
	// timestamp is relative to an undefined base.
	Time time.Duration
	// Buttons are the set of pressed mouse buttons for this event.
	Buttons Buttons
	// Hit reports whether the event position was within the
	// handler's area.
	Hit bool
	// Position is the position of the event, in the local
	// coordinate system of the handler's area.
	Position f32.Point
	// Scroll is the scroll amount, if any.
	Scroll f32.Point
}

// InputOp registers a handler for pointer events over an area.
// The area is in the coordinate system of the events given to
// the router; event positions are translated so that the area's
// minimum corner becomes the handler's origin.
type InputOp struct {
	Tag event.Tag
	// Area is the hit area for the handler.
	Area f32.Rectangle
	// Grab, when set, requests that the handler become the
	// exclusive receiver for the pointers that pressed it.
	Grab bool
}

type ID uint16

// Type of an Event.
type Type uint8

// Priority of an Event.
type Priority uint8

// Source of an Event.
type Source uint8

// Buttons is a set of mouse buttons.
type Buttons uint8

const (
	// Cancel is sent when the current gesture is
	// interrupted by other handlers or the system.
	Cancel Type = iota
	// Press of a pointer.
	Press
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
	// Drag is a Move of a pressed pointer.
	Drag
	// Scroll of a pointer, for example from a mouse wheel.
	Scroll
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
)

const (
	// Shared priority is for handlers that
	// are part of a matching set larger than 1.
	Shared Priority = iota
	// Foremost priority is like Shared, but the
	// handler is the foremost of the matching set.
	Foremost
	// Grabbed is used for matching sets of size 1.
	Grabbed
)

const (
	// ButtonLeft is the left mouse button.
	ButtonLeft Buttons = 1 << iota
	// ButtonRight is the right mouse button.
	ButtonRight
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
)

// Add the registration to the operation list.
func (h InputOp) Add(o *op.Ops) {
	o.Write(h)
}

func (t Type) String() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Cancel:
		return "Cancel"
	case Move:
		return "Move"
	case Drag:
		return "Drag"
	case Scroll:
		return "Scroll"
	default:
		panic("unknown Type")
	}
}

func (p Priority) String() string {
	switch p {
	case Shared:
		return "Shared"
	case Foremost:
		return "Foremost"
	case Grabbed:
		return "Grabbed"
	default:
		panic("unknown priority")
	}
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		panic("unknown source")
	}
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonLeft) {
		strs = append(strs, "ButtonLeft")
	}
	if b.Contain(ButtonRight) {
		strs = append(strs, "ButtonRight")
	}
	if b.Contain(ButtonMiddle) {
		strs = append(strs, "ButtonMiddle")
	}
	return strings.Join(strs, "|")
}

func (Event) ImplementsEvent() {}
