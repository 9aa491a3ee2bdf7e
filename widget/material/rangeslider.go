// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"

	"sliderkit.org/f32"
	"sliderkit.org/internal/f32color"
	"sliderkit.org/layout"
	"sliderkit.org/widget"
)

// RangeSlider is for selecting a subrange with two thumbs on a shared
// track.
func RangeSlider(th *Theme, interval *widget.Interval) RangeSliderStyle {
	return RangeSliderStyle{
		Color:      th.ContrastBg,
		TrackColor: f32color.MulAlpha(th.Fg, 0x88),
		Interval:   interval,
	}
}

type RangeSliderStyle struct {
	// Color is the color of the selected track segment and the thumbs.
	Color color.NRGBA
	// TrackColor is the color of the track outside the selection.
	TrackColor color.NRGBA

	Interval *widget.Interval
}

// RangeSliderFrame is what the host paints for a range slider, in the
// local coordinates of the control. Low and High are squares around
// the thumb centers, drawn as circles, High on top where they
// overlap.
type RangeSliderFrame struct {
	// Before is the track between the start and the low thumb.
	Before f32.Rectangle
	// Fill is the selected track between the thumbs.
	Fill f32.Rectangle
	// After is the track between the high thumb and the end.
	After f32.Rectangle
	Low   f32.Rectangle
	High  f32.Rectangle

	TrackColor color.NRGBA
	FillColor  color.NRGBA
	ThumbColor color.NRGBA
}

// Layout updates the interval from the events in gtx and returns the
// frame to paint. The slider is laid out horizontally.
func (s RangeSliderStyle) Layout(gtx layout.Context) (layout.Dimensions, RangeSliderFrame) {
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
	s.Interval.Layout(fgtx, thumbSize)

	lowPos, highPos := s.Interval.Pos()
	lowCenter := lowPos + float32(radius)
	highCenter := highPos + float32(radius)
	centerY := float32(thumbSize)

	col := s.Color
	track := s.TrackColor
	if gtx.Queue == nil {
		col = f32color.Disabled(col)
		track = f32color.Disabled(track)
	}

	half := float32(gtx.Dp(trackHeight)) / 2
	frame := RangeSliderFrame{
		Before:     f32.Rect(float32(radius), centerY-half, lowCenter, centerY+half),
		Fill:       f32.Rect(lowCenter, centerY-half, highCenter, centerY+half),
		After:      f32.Rect(highCenter, centerY-half, float32(size.X-radius), centerY+half),
		Low:        f32.Rect(lowPos, centerY-float32(radius), lowPos+float32(thumbSize), centerY+float32(radius)),
		High:       f32.Rect(highPos, centerY-float32(radius), highPos+float32(thumbSize), centerY+float32(radius)),
		TrackColor: track,
		FillColor:  col,
		ThumbColor: col,
	}
	return layout.Dimensions{Size: size}, frame
}
