// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"testing"
	"time"

	"sliderkit.org/f32"
	"sliderkit.org/io/event"
	"sliderkit.org/io/pointer"
	"sliderkit.org/io/router"
	"sliderkit.org/op"
)

func TestMouseClicks(t *testing.T) {
	for _, tc := range []struct {
		label  string
		events []event.Event
		clicks []int // number of combined clicks per click (single, double...)
	}{
		{
			label:  "single click",
			events: mouseClickEvents(200 * time.Millisecond),
			clicks: []int{1},
		},
		{
			label: "double click",
			events: mouseClickEvents(
				100*time.Millisecond,
				100*time.Millisecond+doubleClickDuration-1),
			clicks: []int{1, 2},
		},
		{
			label: "two single clicks",
			events: mouseClickEvents(
				100*time.Millisecond,
				100*time.Millisecond+doubleClickDuration+1),
			clicks: []int{1, 1},
		},
	} {
		t.Run(tc.label, func(t *testing.T) {
			var click Click
			var ops op.Ops
			click.Add(&ops, f32.Rect(0, 0, 100, 100))

			var r router.Router
			r.Frame(&ops)
			r.Queue(tc.events...)

			events := click.Events(&r)
			clicks := filterMouseClicks(events)
			if got, want := len(clicks), len(tc.clicks); got != want {
				t.Fatalf("got %d mouse clicks, expected %d", got, want)
			}

			for i, click := range clicks {
				if got, want := click.NumClicks, tc.clicks[i]; got != want {
					t.Errorf("got %d combined mouse clicks, expected %d", got, want)
				}
			}
		})
	}
}

func TestDragAxis(t *testing.T) {
	for _, tc := range []struct {
		label string
		axis  Axis
		want  f32.Point
	}{
		{label: "horizontal", axis: Horizontal, want: f32.Pt(40, 20)},
		{label: "vertical", axis: Vertical, want: f32.Pt(10, 35)},
	} {
		t.Run(tc.label, func(t *testing.T) {
			var drag Drag
			var ops op.Ops
			drag.Add(&ops, f32.Rect(0, 0, 100, 100), true)

			var r router.Router
			r.Frame(&ops)
			r.Queue(
				pointer.Event{
					Type:     pointer.Press,
					Source:   pointer.Mouse,
					Buttons:  pointer.ButtonLeft,
					Position: f32.Pt(10, 20),
				},
				pointer.Event{
					Type:     pointer.Move,
					Source:   pointer.Mouse,
					Buttons:  pointer.ButtonLeft,
					Position: f32.Pt(40, 35),
				},
				pointer.Event{
					Type:     pointer.Release,
					Source:   pointer.Mouse,
					Position: f32.Pt(40, 35),
				},
			)

			events := drag.Events(&r, tc.axis)
			types := []pointer.Type{pointer.Press, pointer.Drag, pointer.Release}
			if got, want := len(events), len(types); got != want {
				t.Fatalf("got %d drag events, expected %d", got, want)
			}
			for i, e := range events {
				if e.Type != types[i] {
					t.Fatalf("event %d: got type %v, expected %v", i, e.Type, types[i])
				}
			}
			if got := events[1].Position; got != tc.want {
				t.Errorf("got drag position %v, expected %v", got, tc.want)
			}
			if drag.Dragging() {
				t.Error("drag still in progress after release")
			}
		})
	}
}

func TestDragIgnoresSecondPointer(t *testing.T) {
	var drag Drag
	var ops op.Ops
	drag.Add(&ops, f32.Rect(0, 0, 100, 100), true)

	var r router.Router
	r.Frame(&ops)
	r.Queue(
		pointer.Event{
			Type:      pointer.Press,
			Source:    pointer.Touch,
			PointerID: 1,
			Position:  f32.Pt(10, 10),
		},
		pointer.Event{
			Type:      pointer.Press,
			Source:    pointer.Touch,
			PointerID: 2,
			Position:  f32.Pt(50, 50),
		},
		pointer.Event{
			Type:      pointer.Move,
			Source:    pointer.Touch,
			PointerID: 2,
			Position:  f32.Pt(60, 50),
		},
		pointer.Event{
			Type:      pointer.Move,
			Source:    pointer.Touch,
			PointerID: 1,
			Position:  f32.Pt(20, 10),
		},
	)

	events := drag.Events(&r, Horizontal)
	if got, want := len(events), 2; got != want {
		t.Fatalf("got %d drag events, expected %d", got, want)
	}
	for _, e := range events {
		if e.PointerID != 1 {
			t.Errorf("got event from pointer %d, expected pointer 1", e.PointerID)
		}
	}
}

func TestDragCancel(t *testing.T) {
	var drag Drag
	var ops op.Ops
	drag.Add(&ops, f32.Rect(0, 0, 100, 100), true)

	var r router.Router
	r.Frame(&ops)
	r.Queue(
		pointer.Event{
			Type:     pointer.Press,
			Source:   pointer.Touch,
			Position: f32.Pt(10, 10),
		},
		pointer.Event{Type: pointer.Cancel},
	)

	events := drag.Events(&r, Horizontal)
	if got, want := len(events), 2; got != want {
		t.Fatalf("got %d drag events, expected %d", got, want)
	}
	if got, want := events[1].Type, pointer.Cancel; got != want {
		t.Errorf("got event type %v, expected %v", got, want)
	}
	if drag.Dragging() {
		t.Error("drag still in progress after cancel")
	}
}

func TestScrollSteps(t *testing.T) {
	for _, tc := range []struct {
		label   string
		scrolls []float32
		cancel  bool
		steps   int
	}{
		{label: "whole steps", scrolls: []float32{40}, steps: 2},
		{label: "carried remainder", scrolls: []float32{30, 15}, steps: 2},
		{label: "sub-step", scrolls: []float32{15}, steps: 0},
		{label: "negative", scrolls: []float32{-45}, steps: -2},
		{label: "cancel resets remainder", scrolls: []float32{15, 15}, cancel: true, steps: 0},
	} {
		t.Run(tc.label, func(t *testing.T) {
			var scroll Scroll
			var ops op.Ops
			scroll.Add(&ops, f32.Rect(0, 0, 100, 100))

			var r router.Router
			r.Frame(&ops)
			for i, s := range tc.scrolls {
				if tc.cancel && i == len(tc.scrolls)-1 {
					r.Queue(pointer.Event{Type: pointer.Cancel})
				}
				r.Queue(pointer.Event{
					Type:     pointer.Scroll,
					Source:   pointer.Mouse,
					Position: f32.Pt(50, 50),
					Scroll:   f32.Pt(0, s),
				})
			}

			if got, want := scroll.Steps(&r, Vertical, 20), tc.steps; got != want {
				t.Errorf("got %d scroll steps, expected %d", got, want)
			}
		})
	}
}

func mouseClickEvents(times ...time.Duration) []event.Event {
	press := pointer.Event{
		Type:    pointer.Press,
		Source:  pointer.Mouse,
		Buttons: pointer.ButtonLeft,
	}
	events := make([]event.Event, 0, 2*len(times))
	for _, t := range times {
		release := press
		release.Type = pointer.Release
		release.Time = t
		events = append(events, press, release)
	}
	return events
}

func filterMouseClicks(events []ClickEvent) []ClickEvent {
	var clicks []ClickEvent
	for _, ev := range events {
		if ev.Type == TypeClick {
			clicks = append(clicks, ev)
		}
	}
	return clicks
}
