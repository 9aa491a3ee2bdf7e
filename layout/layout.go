// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"sliderkit.org/f32"
)

// Constraints represent the minimum and maximum size of a widget.
//
// A widget does not have to treat its maximum width or height as a
// hard constraint if its size exceeds the available area.
type Constraints struct {
	Min, Max image.Point
}

// Dimensions are the resolved size and baseline of a widget.
//
// Baseline is the distance from the bottom of a widget to the
// baseline of any text it contains.
type Dimensions struct {
	Size     image.Point
	Baseline int
}

// Exact returns the Constraints with the minimum and maximum size
// set to size.
func Exact(size image.Point) Constraints {
	return Constraints{
		Min: size, Max: size,
	}
}

// FPt converts an image.Point to an f32.Point.
func FPt(p image.Point) f32.Point {
	return f32.Point{
		X: float32(p.X), Y: float32(p.Y),
	}
}

// Constrain a size so each dimension is in the range [min;max].
func (c Constraints) Constrain(size image.Point) image.Point {
	if min := c.Min.X; size.X < min {
		size.X = min
	}
	if min := c.Min.Y; size.Y < min {
		size.Y = min
	}
	if max := c.Max.X; size.X > max {
		size.X = max
	}
	if max := c.Max.Y; size.Y > max {
		size.Y = max
	}
	return size
}
