// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"sliderkit.org/f32"
	"sliderkit.org/internal/f32color"
	"sliderkit.org/layout"
	"sliderkit.org/unit"
)

type ProgressBarStyle struct {
	Color      color.NRGBA
	TrackColor color.NRGBA
	Height     unit.Dp
	Radius     unit.Dp
	Progress   float32
}

func ProgressBar(th *Theme, progress float32) ProgressBarStyle {
	return ProgressBarStyle{
		Progress:   progress,
		Height:     unit.Dp(4),
		Radius:     unit.Dp(2),
		Color:      th.ContrastBg,
		TrackColor: f32color.MulAlpha(th.Fg, 0x88),
	}
}

// ProgressBarFrame is what the host paints for a progress bar: the
// full track with the fill on top, both rounded by Radius.
type ProgressBarFrame struct {
	Track  f32.Rectangle
	Fill   f32.Rectangle
	Radius float32

	TrackColor color.NRGBA
	FillColor  color.NRGBA
}

// Layout returns the frame to paint. The bar fills the maximum width
// constraint.
func (p ProgressBarStyle) Layout(gtx layout.Context) (layout.Dimensions, ProgressBarFrame) {
	width := float32(gtx.Constraints.Max.X)
	height := float32(gtx.Dp(p.Height))
	rr := float32(gtx.Dp(p.Radius))

	fillWidth := width * clamp1(p.Progress)
	// Keep the fill no smaller than its rounded ends.
	if fillWidth < 2*rr {
		fillWidth = 2 * rr
	}
	fillColor := p.Color
	if gtx.Queue == nil {
		fillColor = f32color.Disabled(fillColor)
	}

	frame := ProgressBarFrame{
		Track:      f32.Rect(0, 0, width, height),
		Fill:       f32.Rect(0, 0, fillWidth, height),
		Radius:     rr,
		TrackColor: p.TrackColor,
		FillColor:  fillColor,
	}
	return layout.Dimensions{Size: image.Pt(int(width), int(height))}, frame
}

// clamp1 limits v to range [0..1].
func clamp1(v float32) float32 {
	if v >= 1 {
		return 1
	} else if v <= 0 {
		return 0
	} else {
		return v
	}
}
