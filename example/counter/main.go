// SPDX-License-Identifier: Unlicense OR MIT

// Command counter is a minimal example: a screen with two buttons
// incrementing and decrementing a count. Pointer input is scripted
// taps, standing in for a real input backend; the frames returned by
// the button styles are what such a backend would paint.
package main

import (
	"fmt"
	"image"
	"time"

	"sliderkit.org/f32"
	"sliderkit.org/io/pointer"
	"sliderkit.org/io/router"
	"sliderkit.org/layout"
	"sliderkit.org/op"
	"sliderkit.org/unit"
	"sliderkit.org/widget"
	"sliderkit.org/widget/material"
)

func main() {
	th := material.NewTheme()
	var (
		rt    router.Router
		inc   widget.Clickable
		dec   widget.Clickable
		count int
	)
	incBtn := material.Button(th, "+")
	decBtn := material.Button(th, "−")

	gtx := layout.Context{
		Metric: unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Queue:  &rt,
	}

	frame := func() {
		gtx.Ops = new(op.Ops)
		gtx.Now = time.Now()

		// The increment button at the origin, the decrement button
		// 80px to its right.
		gtx.Constraints = layout.Exact(image.Pt(64, 38))
		gtx.Origin = f32.Pt(0, 0)
		incBtn.Layout(gtx, &inc)
		gtx.Origin = f32.Pt(80, 0)
		decBtn.Layout(gtx, &dec)
		rt.Frame(gtx.Ops)

		for inc.Clicked() {
			count++
		}
		for dec.Clicked() {
			count--
		}
	}

	tap := func(x, y float32) {
		rt.Queue(
			pointer.Event{Type: pointer.Press, Source: pointer.Touch, Position: f32.Pt(x, y)},
			pointer.Event{Type: pointer.Release, Source: pointer.Touch, Position: f32.Pt(x, y)},
		)
		frame()
		fmt.Printf("count: %d\n", count)
	}

	frame()
	tap(32, 19)  // +
	tap(32, 19)  // +
	tap(32, 19)  // +
	tap(112, 19) // −
	fmt.Printf("final count: %d\n", count)
}
