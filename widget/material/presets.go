// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"sliderkit.org/internal/f32color"
	"sliderkit.org/widget"
)

// Volume returns a slider styled for a loudness control, with the
// volume icon for the host to draw beside it.
func Volume(th *Theme, float *widget.Float) SliderStyle {
	s := Slider(th, float)
	s.Icon = th.Icon.Volume
	s.Icon.Color = f32color.NRGBAToRGBA(s.Color)
	return s
}

// Temperature returns a slider styled for a heat control.
func Temperature(th *Theme, float *widget.Float) SliderStyle {
	s := Slider(th, float)
	s.Color = rgb(0xff5722)
	s.Icon = th.Icon.Temperature
	s.Icon.Color = f32color.NRGBAToRGBA(s.Color)
	return s
}

// Rating returns a slider styled for a star rating.
func Rating(th *Theme, float *widget.Float) SliderStyle {
	s := Slider(th, float)
	s.Color = rgb(0xffc107)
	s.Icon = th.Icon.Rating
	s.Icon.Color = f32color.NRGBAToRGBA(s.Color)
	return s
}
