// SPDX-License-Identifier: Unlicense OR MIT

package material_test

import (
	"image"
	"testing"
	"time"

	"sliderkit.org/f32"
	"sliderkit.org/internal/f32color"
	"sliderkit.org/io/pointer"
	"sliderkit.org/io/router"
	"sliderkit.org/layout"
	"sliderkit.org/op"
	"sliderkit.org/unit"
	"sliderkit.org/widget"
	"sliderkit.org/widget/material"
)

// The tests run with a 1:1 metric on a 220px control with 12px
// thumbs, leaving 208px of thumb travel.

func newContext(rt *router.Router, size image.Point) layout.Context {
	return layout.Context{
		Constraints: layout.Exact(size),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Queue:       rt,
	}
}

func sliderRange(t *testing.T) widget.Range {
	t.Helper()
	r, err := widget.NewRange(0, 100, 5)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func assertRect(t *testing.T, name string, got, want f32.Rectangle) {
	t.Helper()
	if got != want {
		t.Errorf("%s is %v, expected %v", name, got, want)
	}
}

func TestSliderFrame(t *testing.T) {
	th := material.NewTheme()
	f := widget.NewFloat(sliderRange(t))
	var rt router.Router
	gtx := newContext(&rt, image.Pt(220, 24))

	gtx.Ops = new(op.Ops)
	s := material.Slider(th, f)
	s.Layout(gtx)
	rt.Frame(gtx.Ops)

	f.SetValue(50)
	gtx.Ops = new(op.Ops)
	dims, frame := s.Layout(gtx)
	rt.Frame(gtx.Ops)

	if got, exp := dims.Size, image.Pt(220, 24); got != exp {
		t.Errorf("dimensions are %v, expected %v", got, exp)
	}
	// 50 of 0..100 on 208px of travel puts the thumb at 104px, its
	// center at 110px.
	assertRect(t, "thumb", frame.Thumb, f32.Rect(104, 6, 116, 18))
	assertRect(t, "fill", frame.Fill, f32.Rect(6, 11, 110, 13))
	assertRect(t, "rest", frame.Rest, f32.Rect(110, 11, 214, 13))
	if !frame.Halo.Empty() {
		t.Errorf("halo %v on an idle slider", frame.Halo)
	}
	if frame.FillColor != s.Color {
		t.Errorf("fill color is %v, expected %v", frame.FillColor, s.Color)
	}
}

func TestSliderFrameDisabled(t *testing.T) {
	th := material.NewTheme()
	f := widget.NewFloat(sliderRange(t))
	gtx := layout.Context{
		Constraints: layout.Exact(image.Pt(220, 24)),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Ops:         new(op.Ops),
	}

	s := material.Slider(th, f)
	_, frame := s.Layout(gtx)

	if exp := f32color.Disabled(s.Color); frame.FillColor != exp {
		t.Errorf("disabled fill color is %v, expected %v", frame.FillColor, exp)
	}
}

func TestSliderFrameHalo(t *testing.T) {
	th := material.NewTheme()
	f := widget.NewFloat(sliderRange(t))
	var rt router.Router
	gtx := newContext(&rt, image.Pt(220, 24))

	s := material.Slider(th, f)
	frame := func() material.SliderFrame {
		gtx.Ops = new(op.Ops)
		_, fr := s.Layout(gtx)
		rt.Frame(gtx.Ops)
		return fr
	}

	frame()
	rt.Queue(pointer.Event{
		Type:     pointer.Press,
		Source:   pointer.Touch,
		Position: f32.Pt(10, 10),
	})
	fr := frame()
	if fr.Halo.Empty() {
		t.Error("no halo while dragging")
	}

	rt.Queue(pointer.Event{
		Type:     pointer.Release,
		Source:   pointer.Touch,
		Position: f32.Pt(10, 10),
	})
	fr = frame()
	if !fr.Halo.Empty() {
		t.Errorf("halo %v after release", fr.Halo)
	}
}

func TestRangeSliderFrame(t *testing.T) {
	th := material.NewTheme()
	iv, err := widget.NewInterval(sliderRange(t), 10)
	if err != nil {
		t.Fatal(err)
	}
	var rt router.Router
	gtx := newContext(&rt, image.Pt(220, 24))

	s := material.RangeSlider(th, iv)
	gtx.Ops = new(op.Ops)
	s.Layout(gtx)
	rt.Frame(gtx.Ops)

	iv.SetValue(widget.Span{Low: 25, High: 75})
	gtx.Ops = new(op.Ops)
	dims, frame := s.Layout(gtx)
	rt.Frame(gtx.Ops)

	if got, exp := dims.Size, image.Pt(220, 24); got != exp {
		t.Errorf("dimensions are %v, expected %v", got, exp)
	}
	assertRect(t, "low thumb", frame.Low, f32.Rect(52, 6, 64, 18))
	assertRect(t, "high thumb", frame.High, f32.Rect(156, 6, 168, 18))
	assertRect(t, "before", frame.Before, f32.Rect(6, 11, 58, 13))
	assertRect(t, "fill", frame.Fill, f32.Rect(58, 11, 162, 13))
	assertRect(t, "after", frame.After, f32.Rect(162, 11, 214, 13))
}

func TestProgressBarFrame(t *testing.T) {
	th := material.NewTheme()
	var rt router.Router
	gtx := newContext(&rt, image.Pt(200, 50))
	gtx.Ops = new(op.Ops)

	for _, tc := range []struct {
		progress  float32
		fillWidth float32
	}{
		{0, 4}, // no smaller than the rounded ends
		{0.5, 100},
		{1, 200},
		{2, 200},
	} {
		_, frame := material.ProgressBar(th, tc.progress).Layout(gtx)
		assertRect(t, "track", frame.Track, f32.Rect(0, 0, 200, 4))
		assertRect(t, "fill", frame.Fill, f32.Rect(0, 0, tc.fillWidth, 4))
	}
}

func TestButtonInk(t *testing.T) {
	th := material.NewTheme()
	button := new(widget.Clickable)
	var rt router.Router
	gtx := newContext(&rt, image.Pt(100, 40))
	start := time.Unix(100, 0)
	gtx.Now = start

	b := material.Button(th, "Count")
	frame := func() material.ButtonFrame {
		gtx.Ops = new(op.Ops)
		_, fr := b.Layout(gtx, button)
		rt.Frame(gtx.Ops)
		return fr
	}

	frame()
	rt.Queue(pointer.Event{
		Type:     pointer.Press,
		Source:   pointer.Touch,
		Position: f32.Pt(50, 20),
	})
	frame()

	gtx.Now = start.Add(250 * time.Millisecond)
	fr := frame()
	if len(fr.Ink) != 1 {
		t.Fatalf("got %d ink marks mid-press, expected 1", len(fr.Ink))
	}
	if fr.Ink[0].Radius <= 0 {
		t.Errorf("ink radius is %v, expected positive", fr.Ink[0].Radius)
	}
	if fr.Ink[0].Center != f32.Pt(50, 20) {
		t.Errorf("ink center is %v, expected (50,20)", fr.Ink[0].Center)
	}
	if _, wake := rt.WakeupTime(); !wake {
		t.Error("expanding ink did not request a redraw")
	}

	gtx.Now = start.Add(600 * time.Millisecond)
	fr = frame()
	if len(fr.Ink) != 0 {
		t.Errorf("got %d ink marks after the animation, expected 0", len(fr.Ink))
	}
	if _, wake := rt.WakeupTime(); wake {
		t.Error("finished ink still requests redraws")
	}
}

func TestPresets(t *testing.T) {
	th := material.NewTheme()
	f := widget.NewFloat(sliderRange(t))

	if s := material.Volume(th, f); s.Icon != th.Icon.Volume {
		t.Error("volume slider missing its icon")
	}
	if s := material.Temperature(th, f); s.Icon != th.Icon.Temperature {
		t.Error("temperature slider missing its icon")
	} else if s.Color == th.ContrastBg {
		t.Error("temperature slider uses the default color")
	}
	if s := material.Rating(th, f); s.Icon != th.Icon.Rating {
		t.Error("rating slider missing its icon")
	}
}
