// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"sliderkit.org/unit"
	"sliderkit.org/widget"
)

// Palette contains the minimal set of colors that a widget may need
// to draw itself.
type Palette struct {
	// Bg is the background color atop which content is currently being
	// drawn.
	Bg color.NRGBA

	// Fg is a color suitable for drawing on top of Bg.
	Fg color.NRGBA

	// ContrastBg is a color used to draw attention to active,
	// important, interactive widgets such as buttons or display
	// elements drawn out of the band of Bg.
	ContrastBg color.NRGBA

	// ContrastFg is a color suitable for content drawn on top of
	// ContrastBg.
	ContrastFg color.NRGBA
}

type Theme struct {
	Palette

	// FingerSize is the minimum touch target size.
	FingerSize unit.Dp

	Icon struct {
		Volume      *widget.Icon
		Temperature *widget.Icon
		Rating      *widget.Icon
	}
}

func NewTheme() *Theme {
	t := &Theme{
		Palette: Palette{
			Fg:         rgb(0x000000),
			Bg:         rgb(0xffffff),
			ContrastBg: rgb(0x3f51b5),
			ContrastFg: rgb(0xffffff),
		},
		// 38dp is on the lower end of possible finger size.
		FingerSize: 38,
	}
	t.Icon.Volume = mustIcon(widget.NewIcon(icons.AVVolumeUp))
	t.Icon.Temperature = mustIcon(widget.NewIcon(icons.ImageWBSunny))
	t.Icon.Rating = mustIcon(widget.NewIcon(icons.ToggleStar))

	return t
}

func mustIcon(ic *widget.Icon, err error) *widget.Icon {
	if err != nil {
		panic(err)
	}
	return ic
}

func rgb(c uint32) color.NRGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
