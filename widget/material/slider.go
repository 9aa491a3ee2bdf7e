// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"

	"sliderkit.org/f32"
	"sliderkit.org/internal/f32color"
	"sliderkit.org/layout"
	"sliderkit.org/unit"
	"sliderkit.org/widget"
)

const (
	thumbRadius = unit.Dp(6)
	trackHeight = unit.Dp(2)
	haloRadius  = unit.Dp(10)
)

// Slider is for selecting a value in a range.
func Slider(th *Theme, float *widget.Float) SliderStyle {
	return SliderStyle{
		Color:      th.ContrastBg,
		TrackColor: f32color.MulAlpha(th.Fg, 0x88),
		Float:      float,
	}
}

type SliderStyle struct {
	// Color is the fill and thumb color.
	Color color.NRGBA
	// TrackColor is the color of the track after the thumb.
	TrackColor color.NRGBA
	// Icon, if set, is drawn by the host beside the control.
	Icon *widget.Icon

	Float *widget.Float
}

// SliderFrame is what the host paints for a slider, in the local
// coordinates of the control. Thumb and Halo are squares around the
// thumb center, drawn as circles.
type SliderFrame struct {
	// Fill is the track between the start and the thumb.
	Fill f32.Rectangle
	// Rest is the track between the thumb and the end.
	Rest  f32.Rectangle
	Thumb f32.Rectangle
	// Halo is drawn under the thumb while it is dragged, and is
	// empty otherwise.
	Halo f32.Rectangle

	FillColor  color.NRGBA
	RestColor  color.NRGBA
	ThumbColor color.NRGBA
	HaloColor  color.NRGBA
}

// Layout updates the float from the events in gtx and returns the
// frame to paint. The slider is laid out horizontally.
func (s SliderStyle) Layout(gtx layout.Context) (layout.Dimensions, SliderFrame) {
	radius := gtx.Dp(thumbRadius)
	thumbSize := 2 * radius

	size := gtx.Constraints.Min
	// Keep a minimum length so that the track is always visible.
	if minLength := 2*thumbSize + 3*radius; size.X < minLength {
		size.X = minLength
	}
	size.Y = 2 * thumbSize

	fgtx := gtx
	fgtx.Constraints = layout.Exact(size)
	s.Float.Layout(fgtx, thumbSize)

	pos := s.Float.Pos()
	centerX := pos + float32(radius)
	centerY := float32(thumbSize)

	col := s.Color
	track := s.TrackColor
	if gtx.Queue == nil {
		col = f32color.Disabled(col)
		track = f32color.Disabled(track)
	}

	half := float32(gtx.Dp(trackHeight)) / 2
	frame := SliderFrame{
		Fill:       f32.Rect(float32(radius), centerY-half, centerX, centerY+half),
		Rest:       f32.Rect(centerX, centerY-half, float32(size.X-radius), centerY+half),
		Thumb:      f32.Rect(pos, centerY-float32(radius), pos+float32(thumbSize), centerY+float32(radius)),
		FillColor:  col,
		RestColor:  track,
		ThumbColor: col,
	}
	if s.Float.Dragging() {
		halo := float32(gtx.Dp(haloRadius))
		frame.Halo = f32.Rect(centerX-halo, centerY-halo, centerX+halo, centerY+halo)
		frame.HaloColor = f32color.MulAlpha(col, 0x33)
	}
	return layout.Dimensions{Size: size}, frame
}
