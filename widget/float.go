// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"sliderkit.org/f32"
	"sliderkit.org/gesture"
	"sliderkit.org/io/pointer"
	"sliderkit.org/layout"
	"sliderkit.org/unit"
)

// Float selects a value from a Range by dragging a thumb along a
// track or by scrolling. Use NewFloat; the zero value selects from
// the zero Range.
type Float struct {
	// Axis is the dragging axis, Horizontal by default.
	Axis gesture.Axis

	rng   Range
	track Track
	value float32
	pos   float32

	drag   gesture.Drag
	scroll gesture.Scroll
	// origin is the thumb offset at the start of the drag, press
	// the position the drag started from.
	origin float32
	press  float32

	changed     bool
	changes     []float32
	prevChanges int
}

// wheelStep is the scroll distance that moves the value by one step.
const wheelStep = unit.Dp(8)

// NewFloat returns a Float selecting from r, positioned at the range
// minimum.
func NewFloat(r Range) *Float {
	return &Float{rng: r, value: r.min}
}

// Layout updates the float from the events in gtx and registers its
// handlers for the next frame. The track spans the minimum
// constraint along the drag axis; thumb is the thumb size in pixels.
func (f *Float) Layout(gtx layout.Context, thumb int) layout.Dimensions {
	size := gtx.Constraints.Min
	f.track = Track{Length: axisLength(f.Axis, size), Thumb: float32(thumb)}

	// Flush changes from before the last update.
	n := copy(f.changes, f.changes[f.prevChanges:])
	f.changes = f.changes[:n]
	f.prevChanges = n

	for _, e := range f.drag.Events(gtx, f.Axis) {
		switch e.Type {
		case pointer.Press:
			f.origin = f.pos
			f.press = axisPos(f.Axis, e.Position)
		case pointer.Drag:
			if f.track.Usable() <= 0 {
				break
			}
			delta := axisPos(f.Axis, e.Position) - f.press
			f.setValue(f.track.Value(f.rng, f.origin+delta))
		}
	}
	if steps := f.scroll.Steps(gtx, f.Axis, gtx.Dp(wheelStep)); steps != 0 {
		f.setValue(f.rng.Quantize(f.value + float32(steps)*f.rng.step))
	}
	f.pos = f.track.Offset(f.rng, f.value)

	area := f32.Rectangle{Max: layout.FPt(size)}.Add(gtx.Origin)
	f.drag.Add(gtx.Ops, area, true)
	f.scroll.Add(gtx.Ops, area)
	return layout.Dimensions{Size: size}
}

func (f *Float) setValue(v float32) {
	if v == f.value {
		return
	}
	f.value = v
	f.changed = true
	f.changes = append(f.changes, v)
}

// Value returns the current value.
func (f *Float) Value() float32 {
	return f.value
}

// SetValue moves the thumb to the step value closest to v.
// Programmatic moves are not reported by Changed or Changes.
func (f *Float) SetValue(v float32) {
	f.value = f.rng.Quantize(v)
	f.pos = f.track.Offset(f.rng, f.value)
}

// Pos reports the thumb offset in pixels from the track start, 0
// until the track has been measured.
func (f *Float) Pos() float32 {
	return f.pos
}

// Range returns the range the float selects from.
func (f *Float) Range() Range {
	return f.rng
}

// Dragging reports whether the thumb is being dragged.
func (f *Float) Dragging() bool {
	return f.drag.Dragging()
}

// Changed reports whether the value has changed since the last call
// to Changed. Programmatic moves are not reported.
func (f *Float) Changed() bool {
	changed := f.changed
	f.changed = false
	return changed
}

// Changes returns and clears the values the float has passed
// through since the last call to Changes, one entry per change.
func (f *Float) Changes() []float32 {
	changes := f.changes
	f.changes = nil
	f.prevChanges = 0
	return changes
}

func axisLength(a gesture.Axis, size image.Point) float32 {
	if a == gesture.Vertical {
		return float32(size.Y)
	}
	return float32(size.X)
}

func axisPos(a gesture.Axis, p f32.Point) float32 {
	if a == gesture.Vertical {
		return p.Y
	}
	return p.X
}
