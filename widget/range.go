// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"math"
)

// Range describes the values selectable by a slider: every whole
// number of steps from Min up to and including Max. The zero value
// contains only the value 0.
type Range struct {
	min, max, step float32
}

// stepEps absorbs floating point noise when counting steps.
const stepEps = 1e-4

// NewRange returns the Range of values between min and max that are
// a whole number of steps apart. It returns an error when min is not
// below max, when step is not positive, or when step exceeds or does
// not evenly divide max-min.
func NewRange(min, max, step float32) (Range, error) {
	switch {
	case min >= max:
		return Range{}, fmt.Errorf("widget: range min %v is not below max %v", min, max)
	case step <= 0:
		return Range{}, fmt.Errorf("widget: step %v is not positive", step)
	case step > max-min:
		return Range{}, fmt.Errorf("widget: step %v exceeds the range span %v", step, max-min)
	}
	n := (float64(max) - float64(min)) / float64(step)
	if math.Abs(n-math.Round(n)) > stepEps*(n+1) {
		return Range{}, fmt.Errorf("widget: step %v does not evenly divide the range span %v", step, max-min)
	}
	return Range{min: min, max: max, step: step}, nil
}

// Min returns the lower bound of the range.
func (r Range) Min() float32 { return r.min }

// Max returns the upper bound of the range.
func (r Range) Max() float32 { return r.max }

// Step returns the distance between two adjacent values.
func (r Range) Step() float32 { return r.step }

// Span returns the distance between the range bounds.
func (r Range) Span() float32 { return r.max - r.min }

// Clamp limits v to the range bounds.
func (r Range) Clamp(v float32) float32 {
	if v < r.min {
		return r.min
	}
	if v > r.max {
		return r.max
	}
	return v
}

// Quantize snaps v to the nearest whole number of steps from the
// range minimum and clamps the result. Values halfway between two
// steps round toward positive infinity.
func (r Range) Quantize(v float32) float32 {
	if r.step <= 0 {
		return r.Clamp(v)
	}
	n := math.Floor(r.steps(v) + 0.5)
	return r.Clamp(r.min + float32(n)*r.step)
}

// snapDown snaps v to the closest step value at or below it.
func (r Range) snapDown(v float32) float32 {
	if r.step <= 0 {
		return r.Clamp(v)
	}
	n := math.Floor(r.steps(v) + stepEps)
	return r.Clamp(r.min + float32(n)*r.step)
}

// snapUp snaps v to the closest step value at or above it.
func (r Range) snapUp(v float32) float32 {
	if r.step <= 0 {
		return r.Clamp(v)
	}
	n := math.Ceil(r.steps(v) - stepEps)
	return r.Clamp(r.min + float32(n)*r.step)
}

// steps returns the distance of v from the range minimum in steps.
func (r Range) steps(v float32) float64 {
	return (float64(v) - float64(r.min)) / float64(r.step)
}
