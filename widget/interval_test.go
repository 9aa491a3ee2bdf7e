// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"image"
	"testing"

	"sliderkit.org/io/router"
	"sliderkit.org/op"
	"sliderkit.org/widget"
)

func newInterval(t *testing.T, sep float32) *widget.Interval {
	t.Helper()
	iv, err := widget.NewInterval(sliderRange(t), sep)
	if err != nil {
		t.Fatal(err)
	}
	return iv
}

func assertSpans(t *testing.T, got, want []widget.Span) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got spans %v, expected %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got spans %v, expected %v", got, want)
		}
	}
}

func TestNewInterval(t *testing.T) {
	r := sliderRange(t)
	for _, tc := range []struct {
		label string
		sep   float32
		ok    bool
	}{
		{label: "no separation", sep: 0, ok: true},
		{label: "separation", sep: 10, ok: true},
		{label: "span sized separation", sep: 100, ok: true},
		{label: "negative separation", sep: -1},
		{label: "separation wider than span", sep: 101},
	} {
		t.Run(tc.label, func(t *testing.T) {
			_, err := widget.NewInterval(r, tc.sep)
			if tc.ok && err != nil {
				t.Fatalf("NewInterval(sep=%v) failed: %v", tc.sep, err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("NewInterval(sep=%v) did not fail", tc.sep)
			}
		})
	}
}

func TestIntervalSeparation(t *testing.T) {
	// Thumbs at 40 and 50 with a minimum separation of 10: on a
	// 220x20 control the low thumb covers 80-100px, the high thumb
	// 100-120px.
	t.Run("low clamps against high", func(t *testing.T) {
		iv := newInterval(t, 10)
		iv.SetValue(widget.Span{Low: 40, High: 50})
		var rt router.Router
		gtx := newContext(&rt, image.Pt(220, 20))

		var got []widget.Span
		frame := func() {
			gtx.Ops = new(op.Ops)
			iv.Layout(gtx, 20)
			rt.Frame(gtx.Ops)
			got = append(got, iv.Changes()...)
		}

		frame()
		// Dragging toward 45 may not move the thumb at all.
		rt.Queue(press(85, 10), drag(95, 10))
		frame()

		assertSpans(t, got, nil)
		if got, want := iv.Value(), (widget.Span{Low: 40, High: 50}); got != want {
			t.Errorf("got span %v, expected %v", got, want)
		}

		// Away from the high thumb the drag works normally.
		rt.Queue(drag(75, 10), release(75, 10))
		frame()

		assertSpans(t, got, []widget.Span{{Low: 35, High: 50}})
	})

	t.Run("high clamps against low", func(t *testing.T) {
		iv := newInterval(t, 10)
		iv.SetValue(widget.Span{Low: 40, High: 50})
		var rt router.Router
		gtx := newContext(&rt, image.Pt(220, 20))

		var got []widget.Span
		frame := func() {
			gtx.Ops = new(op.Ops)
			iv.Layout(gtx, 20)
			rt.Frame(gtx.Ops)
			got = append(got, iv.Changes()...)
		}

		frame()
		rt.Queue(press(110, 10), drag(100, 10))
		frame()

		assertSpans(t, got, nil)
		if got, want := iv.Value(), (widget.Span{Low: 40, High: 50}); got != want {
			t.Errorf("got span %v, expected %v", got, want)
		}

		rt.Queue(drag(130, 10), release(130, 10))
		frame()

		assertSpans(t, got, []widget.Span{{Low: 40, High: 60}})
	})
}

func TestIntervalBothThumbs(t *testing.T) {
	iv := newInterval(t, 10)
	var rt router.Router
	gtx := newContext(&rt, image.Pt(220, 20))

	var got []widget.Span
	frame := func() {
		gtx.Ops = new(op.Ops)
		iv.Layout(gtx, 20)
		rt.Frame(gtx.Ops)
		got = append(got, iv.Changes()...)
	}

	frame()
	// The low thumb starts at 0-20px, the high thumb at 200-220px.
	rt.Queue(press(10, 10), drag(50, 10), release(50, 10))
	frame()
	rt.Queue(press(210, 10), drag(170, 10), release(170, 10))
	frame()

	assertSpans(t, got, []widget.Span{
		{Low: 20, High: 100},
		{Low: 20, High: 80},
	})
	if sep := iv.Value().High - iv.Value().Low; sep < 10 {
		t.Errorf("thumbs %v closer than the minimum separation", iv.Value())
	}
}

func TestIntervalOverlap(t *testing.T) {
	t.Run("at max the low thumb wins", func(t *testing.T) {
		iv := newInterval(t, 0)
		iv.SetValue(widget.Span{Low: 100, High: 100})
		var rt router.Router
		gtx := newContext(&rt, image.Pt(220, 20))

		frame := func() {
			gtx.Ops = new(op.Ops)
			iv.Layout(gtx, 20)
			rt.Frame(gtx.Ops)
		}

		frame()
		rt.Queue(press(210, 10), drag(110, 10), release(110, 10))
		frame()

		if got, want := iv.Value(), (widget.Span{Low: 50, High: 100}); got != want {
			t.Errorf("got span %v, expected %v", got, want)
		}
	})

	t.Run("at min the high thumb wins", func(t *testing.T) {
		iv := newInterval(t, 0)
		iv.SetValue(widget.Span{Low: 0, High: 0})
		var rt router.Router
		gtx := newContext(&rt, image.Pt(220, 20))

		frame := func() {
			gtx.Ops = new(op.Ops)
			iv.Layout(gtx, 20)
			rt.Frame(gtx.Ops)
		}

		frame()
		rt.Queue(press(10, 10), drag(110, 10), release(110, 10))
		frame()

		if got, want := iv.Value(), (widget.Span{Low: 0, High: 50}); got != want {
			t.Errorf("got span %v, expected %v", got, want)
		}
	})
}

func TestIntervalSetValue(t *testing.T) {
	iv := newInterval(t, 10)
	for _, tc := range []struct {
		set, want widget.Span
	}{
		{set: widget.Span{Low: 20, High: 80}, want: widget.Span{Low: 20, High: 80}},
		{set: widget.Span{Low: 22, High: 78}, want: widget.Span{Low: 20, High: 80}},
		{set: widget.Span{Low: 60, High: 55}, want: widget.Span{Low: 60, High: 70}},
		{set: widget.Span{Low: 95, High: 100}, want: widget.Span{Low: 90, High: 100}},
		{set: widget.Span{Low: -20, High: 300}, want: widget.Span{Low: 0, High: 100}},
	} {
		iv.SetValue(tc.set)
		if got := iv.Value(); got != tc.want {
			t.Errorf("SetValue(%v): got %v, expected %v", tc.set, got, tc.want)
		}
	}
	if iv.Changed() {
		t.Error("programmatic move reported a change")
	}
	if got := iv.Changes(); len(got) != 0 {
		t.Errorf("programmatic move reported changes %v", got)
	}
}

func TestIntervalDegenerateTrack(t *testing.T) {
	iv := newInterval(t, 10)
	var rt router.Router
	gtx := newContext(&rt, image.Pt(20, 20))

	frame := func() {
		gtx.Ops = new(op.Ops)
		iv.Layout(gtx, 20)
		rt.Frame(gtx.Ops)
	}

	frame()
	rt.Queue(press(5, 5), drag(15, 5), release(15, 5))
	frame()

	if got, want := iv.Value(), (widget.Span{Low: 0, High: 100}); got != want {
		t.Errorf("got span %v on a zero length track, expected %v", got, want)
	}
}
