// SPDX-License-Identifier: Unlicense OR MIT

// Package material implements the Material design for the slider
// controls.
//
// To maximize reusability and visual flexibility, user interface
// controls are split into two parts: the stateful widget and the
// stateless drawing of it.
//
// For example, widget.Float encapsulates the state and event handling
// of a slider, while SliderStyle describes how to draw one. A style's
// Layout updates the widget from the context's events and returns a
// frame, the rectangles and colors for the host rendering layer to
// paint:
//
//	th := material.NewTheme()
//	float := widget.NewFloat(volumeRange)
//
//	dims, frame := material.Volume(th, float).Layout(gtx)
//	// paint frame.Rest, frame.Fill and frame.Thumb
//
// Frames carry no behavior. All value semantics, including step
// quantization and the range invariants, live in package widget; a
// host that ignores a frame entirely still gets correct values.
//
// # Customization
//
// Theme-global parameters, such as the palette, are fields of Theme.
// Per-control parameters are fields of the style structs; construct
// the style and change the fields before calling Layout.
package material
