// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image"

	"sliderkit.org/f32"
	"sliderkit.org/gesture"
	"sliderkit.org/io/pointer"
	"sliderkit.org/layout"
)

// Span is a subrange selected from a Range.
type Span struct {
	Low, High float32
}

// Interval selects a Span from a Range by dragging two thumbs along
// a shared track. The thumbs cannot come closer to each other than
// a minimum separation. Use NewInterval; the zero value is not
// usable.
type Interval struct {
	// Axis is the dragging axis, Horizontal by default.
	Axis gesture.Axis

	rng   Range
	sep   float32
	track Track

	low, high thumb

	changed     bool
	changes     []Span
	prevChanges int
}

// thumb is the drag state of one Interval handle.
type thumb struct {
	drag   gesture.Drag
	origin float32
	press  float32
	value  float32
	pos    float32
}

// NewInterval returns an Interval selecting from r, with the thumbs
// at the range bounds. It returns an error when the minimum
// separation is negative or wider than the range span.
func NewInterval(r Range, minSeparation float32) (*Interval, error) {
	if minSeparation < 0 {
		return nil, fmt.Errorf("widget: negative thumb separation %v", minSeparation)
	}
	if minSeparation > r.Span() {
		return nil, fmt.Errorf("widget: thumb separation %v exceeds the range span %v", minSeparation, r.Span())
	}
	return &Interval{
		rng:  r,
		sep:  minSeparation,
		low:  thumb{value: r.min},
		high: thumb{value: r.max},
	}, nil
}

// Layout updates the interval from the events in gtx and registers
// its handlers for the next frame. The track spans the minimum
// constraint along the drag axis; thumb is the size of each thumb
// in pixels.
func (iv *Interval) Layout(gtx layout.Context, thumb int) layout.Dimensions {
	size := gtx.Constraints.Min
	iv.track = Track{Length: axisLength(iv.Axis, size), Thumb: float32(thumb)}

	// Flush changes from before the last update.
	n := copy(iv.changes, iv.changes[iv.prevChanges:])
	iv.changes = iv.changes[:n]
	iv.prevChanges = n

	for _, e := range iv.low.drag.Events(gtx, iv.Axis) {
		switch e.Type {
		case pointer.Press:
			iv.low.origin = iv.low.pos
			iv.low.press = axisPos(iv.Axis, e.Position)
		case pointer.Drag:
			if iv.track.Usable() <= 0 {
				break
			}
			delta := axisPos(iv.Axis, e.Position) - iv.low.press
			v := iv.track.Value(iv.rng, iv.low.origin+delta)
			if bound := iv.rng.snapDown(iv.high.value - iv.sep); v > bound {
				v = bound
			}
			iv.setLow(v)
		}
	}
	for _, e := range iv.high.drag.Events(gtx, iv.Axis) {
		switch e.Type {
		case pointer.Press:
			iv.high.origin = iv.high.pos
			iv.high.press = axisPos(iv.Axis, e.Position)
		case pointer.Drag:
			if iv.track.Usable() <= 0 {
				break
			}
			delta := axisPos(iv.Axis, e.Position) - iv.high.press
			v := iv.track.Value(iv.rng, iv.high.origin+delta)
			if bound := iv.rng.snapUp(iv.low.value + iv.sep); v < bound {
				v = bound
			}
			iv.setHigh(v)
		}
	}
	iv.low.pos = iv.track.Offset(iv.rng, iv.low.value)
	iv.high.pos = iv.track.Offset(iv.rng, iv.high.value)

	// A dragged thumb keeps the area it was grabbed at, so drag
	// positions stay in one coordinate frame for the whole gesture.
	lowAnchor, highAnchor := iv.low.pos, iv.high.pos
	if iv.low.drag.Dragging() {
		lowAnchor = iv.low.origin
	}
	if iv.high.drag.Dragging() {
		highAnchor = iv.high.origin
	}
	lowArea := iv.thumbArea(size, lowAnchor).Add(gtx.Origin)
	highArea := iv.thumbArea(size, highAnchor).Add(gtx.Origin)
	// Where the thumbs overlap the one registered later wins the
	// grab. Put the thumb that still has room to move on top.
	if lowAnchor > iv.track.Usable()/2 {
		iv.high.drag.Add(gtx.Ops, highArea, true)
		iv.low.drag.Add(gtx.Ops, lowArea, true)
	} else {
		iv.low.drag.Add(gtx.Ops, lowArea, true)
		iv.high.drag.Add(gtx.Ops, highArea, true)
	}
	return layout.Dimensions{Size: size}
}

// thumbArea is the pointer area of a thumb anchored at offset pos,
// covering the full control across the drag axis.
func (iv *Interval) thumbArea(size image.Point, pos float32) f32.Rectangle {
	if iv.Axis == gesture.Vertical {
		return f32.Rect(0, pos, float32(size.X), pos+iv.track.Thumb)
	}
	return f32.Rect(pos, 0, pos+iv.track.Thumb, float32(size.Y))
}

func (iv *Interval) setLow(v float32) {
	if v == iv.low.value {
		return
	}
	iv.low.value = v
	iv.emit()
}

func (iv *Interval) setHigh(v float32) {
	if v == iv.high.value {
		return
	}
	iv.high.value = v
	iv.emit()
}

func (iv *Interval) emit() {
	iv.changed = true
	iv.changes = append(iv.changes, Span{Low: iv.low.value, High: iv.high.value})
}

// Value returns the selected span.
func (iv *Interval) Value() Span {
	return Span{Low: iv.low.value, High: iv.high.value}
}

// SetValue moves the thumbs to the step values closest to s, keeping
// them separated. Programmatic moves are not reported by Changed or
// Changes.
func (iv *Interval) SetValue(s Span) {
	low := iv.rng.Quantize(s.Low)
	high := iv.rng.Quantize(s.High)
	if bound := iv.rng.snapUp(low + iv.sep); high < bound {
		high = bound
	}
	if bound := iv.rng.snapDown(high - iv.sep); low > bound {
		low = bound
	}
	iv.low.value = low
	iv.high.value = high
	iv.low.pos = iv.track.Offset(iv.rng, low)
	iv.high.pos = iv.track.Offset(iv.rng, high)
}

// Pos reports the thumb offsets in pixels from the track start, 0
// until the track has been measured.
func (iv *Interval) Pos() (low, high float32) {
	return iv.low.pos, iv.high.pos
}

// Range returns the range the interval selects from.
func (iv *Interval) Range() Range {
	return iv.rng
}

// Separation returns the minimum distance between the thumbs.
func (iv *Interval) Separation() float32 {
	return iv.sep
}

// Dragging reports whether either thumb is being dragged.
func (iv *Interval) Dragging() bool {
	return iv.low.drag.Dragging() || iv.high.drag.Dragging()
}

// Changed reports whether the span has changed since the last call
// to Changed. Programmatic moves are not reported.
func (iv *Interval) Changed() bool {
	changed := iv.changed
	iv.changed = false
	return changed
}

// Changes returns and clears the spans the interval has passed
// through since the last call to Changes, one entry per change.
func (iv *Interval) Changes() []Span {
	changes := iv.changes
	iv.changes = nil
	iv.prevChanges = 0
	return changes
}
