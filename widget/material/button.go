// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"
	"time"

	"sliderkit.org/f32"
	"sliderkit.org/internal/anim"
	"sliderkit.org/internal/f32color"
	"sliderkit.org/layout"
	"sliderkit.org/op"
	"sliderkit.org/unit"
	"sliderkit.org/widget"
)

type ButtonStyle struct {
	Text string
	// Color is the text color.
	Color        color.NRGBA
	Background   color.NRGBA
	CornerRadius unit.Dp
	// MinHeight is the touch target height.
	MinHeight unit.Dp
}

func Button(th *Theme, txt string) ButtonStyle {
	return ButtonStyle{
		Text:         txt,
		Color:        th.ContrastFg,
		Background:   th.ContrastBg,
		CornerRadius: unit.Dp(4),
		MinHeight:    th.FingerSize,
	}
}

// ButtonFrame is what the host paints for a button: the rounded
// background, the label centered on it, and the expanding press ink
// markers, oldest first.
type ButtonFrame struct {
	Background   f32.Rectangle
	CornerRadius float32

	BackgroundColor color.NRGBA
	Label           string
	LabelColor      color.NRGBA

	Ink []Ink
}

// Ink is one expanding press marker, a circle around Center. It is
// clipped to the button background.
type Ink struct {
	Center f32.Point
	Radius float32
	Color  color.NRGBA
}

const (
	inkDuration = 500 * time.Millisecond
	inkRadius   = unit.Dp(96)
)

// Layout updates the button from the events in gtx and returns the
// frame to paint. While ink is expanding the frame requests a redraw
// through gtx.Ops.
func (b ButtonStyle) Layout(gtx layout.Context, button *widget.Clickable) (layout.Dimensions, ButtonFrame) {
	size := gtx.Constraints.Min
	if min := gtx.Dp(unit.Dp(64)); size.X < min {
		size.X = min
	}
	if min := gtx.Dp(b.MinHeight); size.Y < min {
		size.Y = min
	}

	bgtx := gtx
	bgtx.Constraints = layout.Exact(size)
	button.Layout(bgtx)

	background := b.Background
	switch {
	case gtx.Queue == nil:
		background = f32color.Disabled(background)
	case button.Pressed():
		background = f32color.Hovered(background)
	}

	frame := ButtonFrame{
		Background:      f32.Rectangle{Max: layout.FPt(size)},
		CornerRadius:    float32(gtx.Dp(b.CornerRadius)),
		BackgroundColor: background,
		Label:           b.Text,
		LabelColor:      b.Color,
	}
	for _, press := range button.History() {
		t := anim.Progress(gtx.Now, press.Time, inkDuration)
		if t >= 1 {
			continue
		}
		frame.Ink = append(frame.Ink, Ink{
			Center: press.Position,
			Radius: float32(gtx.Dp(inkRadius)) * anim.EaseOut(t),
			Color:  color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: byte(0xaa * anim.FadeOut(t))},
		})
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	return layout.Dimensions{Size: size}, frame
}
