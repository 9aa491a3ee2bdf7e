// SPDX-License-Identifier: Unlicense OR MIT

// Command slidersim replays scripted pointer traces through the
// slider widgets, one router frame per trace event, and logs every
// value change. It exits with an error when a replay drives a widget
// outside its invariants, so it doubles as an end to end check of
// the event plumbing.
//
// Scripts are read from a YAML file given with -scripts; without it
// a built-in set of traces is replayed. All scripts run in parallel,
// each against its own widget and router.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"image"
	"math"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

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

//go:embed scripts.yaml
var defaultScripts []byte

type simFile struct {
	Scripts []script `yaml:"scripts"`
}

type script struct {
	Name    string `yaml:"name"`
	Control string `yaml:"control"` // "slider" or "range"

	Min        float32 `yaml:"min"`
	Max        float32 `yaml:"max"`
	Step       float32 `yaml:"step"`
	Separation float32 `yaml:"separation"`

	// Width is the control width in pixels.
	Width int `yaml:"width"`
	// Color is an SVG 1.1 color name for the control tint.
	Color string `yaml:"color"`

	Trace []tick `yaml:"trace"`
}

type tick struct {
	Type   string  `yaml:"type"` // press, move, release, cancel, scroll
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Scroll float32 `yaml:"scroll"`
}

func main() {
	scriptsPath := flag.String("scripts", "", "YAML trace scripts, built-in traces when empty")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	data := defaultScripts
	if *scriptsPath != "" {
		var err error
		data, err = os.ReadFile(*scriptsPath)
		if err != nil {
			log.WithError(err).Fatal("reading scripts")
		}
	}
	var file simFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		log.WithError(err).Fatal("parsing scripts")
	}
	if len(file.Scripts) == 0 {
		log.Fatal("no scripts to replay")
	}

	var g errgroup.Group
	for _, sc := range file.Scripts {
		sc := sc
		g.Go(func() error {
			return replay(log.WithField("script", sc.Name), sc)
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("simulation failed")
	}
	log.WithField("scripts", len(file.Scripts)).Info("all traces completed")
}

func replay(logger *log.Entry, sc script) error {
	rng, err := widget.NewRange(sc.Min, sc.Max, sc.Step)
	if err != nil {
		return fmt.Errorf("%s: %w", sc.Name, err)
	}
	th := material.NewTheme()
	if sc.Color != "" {
		c, ok := colornames.Map[sc.Color]
		if !ok {
			return fmt.Errorf("%s: unknown color %q", sc.Name, sc.Color)
		}
		th.ContrastBg = f32color.RGBAToNRGBA(c)
	}
	width := sc.Width
	if width == 0 {
		width = 220
	}

	var rt router.Router
	gtx := layout.Context{
		Constraints: layout.Exact(image.Pt(width, 24)),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Queue:       &rt,
	}

	switch sc.Control {
	case "", "slider":
		return replaySlider(logger, sc, gtx, &rt, material.Slider(th, widget.NewFloat(rng)))
	case "range":
		iv, err := widget.NewInterval(rng, sc.Separation)
		if err != nil {
			return fmt.Errorf("%s: %w", sc.Name, err)
		}
		return replayRange(logger, sc, gtx, &rt, material.RangeSlider(th, iv))
	default:
		return fmt.Errorf("%s: unknown control %q", sc.Name, sc.Control)
	}
}

func replaySlider(logger *log.Entry, sc script, gtx layout.Context, rt *router.Router, style material.SliderStyle) error {
	f := style.Float
	frame := func() material.SliderFrame {
		gtx.Ops = new(op.Ops)
		_, fr := style.Layout(gtx)
		rt.Frame(gtx.Ops)
		return fr
	}

	frame()
	for i, tk := range sc.Trace {
		e, err := tk.event()
		if err != nil {
			return fmt.Errorf("%s: trace event %d: %w", sc.Name, i, err)
		}
		rt.Queue(e)
		frame()
		for _, v := range f.Changes() {
			logger.WithField("value", v).Info("value change")
			if err := checkValue(f.Range(), v); err != nil {
				return fmt.Errorf("%s: after trace event %d: %w", sc.Name, i, err)
			}
		}
	}
	fr := frame()
	logger.WithFields(log.Fields{
		"value": f.Value(),
		"thumb": fr.Thumb,
	}).Info("trace complete")
	return nil
}

func replayRange(logger *log.Entry, sc script, gtx layout.Context, rt *router.Router, style material.RangeSliderStyle) error {
	iv := style.Interval
	frame := func() material.RangeSliderFrame {
		gtx.Ops = new(op.Ops)
		_, fr := style.Layout(gtx)
		rt.Frame(gtx.Ops)
		return fr
	}

	frame()
	for i, tk := range sc.Trace {
		e, err := tk.event()
		if err != nil {
			return fmt.Errorf("%s: trace event %d: %w", sc.Name, i, err)
		}
		rt.Queue(e)
		frame()
		for _, s := range iv.Changes() {
			logger.WithFields(log.Fields{
				"low":  s.Low,
				"high": s.High,
			}).Info("span change")
			if err := checkSpan(iv, s); err != nil {
				return fmt.Errorf("%s: after trace event %d: %w", sc.Name, i, err)
			}
		}
	}
	fr := frame()
	logger.WithFields(log.Fields{
		"low":   iv.Value().Low,
		"high":  iv.Value().High,
		"thumb": fr.Low,
	}).Info("trace complete")
	return nil
}

func (t tick) event() (pointer.Event, error) {
	e := pointer.Event{
		Source:   pointer.Touch,
		Position: f32.Pt(t.X, t.Y),
	}
	switch t.Type {
	case "press":
		e.Type = pointer.Press
	case "move":
		e.Type = pointer.Move
	case "release":
		e.Type = pointer.Release
	case "cancel":
		e.Type = pointer.Cancel
	case "scroll":
		e.Type = pointer.Scroll
		e.Source = pointer.Mouse
		e.Scroll = f32.Pt(t.Scroll, 0)
	default:
		return pointer.Event{}, fmt.Errorf("unknown trace event type %q", t.Type)
	}
	return e, nil
}

// checkValue reports an error when v escapes its range or falls off
// the step grid.
func checkValue(r widget.Range, v float32) error {
	if v < r.Min() || v > r.Max() {
		return fmt.Errorf("value %v escaped range [%v, %v]", v, r.Min(), r.Max())
	}
	steps := float64((v - r.Min()) / r.Step())
	if math.Abs(steps-math.Round(steps)) > 1e-3 {
		return fmt.Errorf("value %v is not a step multiple from %v", v, r.Min())
	}
	return nil
}

// checkSpan reports an error when a span violates the separation
// invariant or either bound escapes the range.
func checkSpan(iv *widget.Interval, s widget.Span) error {
	if err := checkValue(iv.Range(), s.Low); err != nil {
		return err
	}
	if err := checkValue(iv.Range(), s.High); err != nil {
		return err
	}
	if s.Low > s.High-iv.Separation() {
		return fmt.Errorf("thumbs closer than %v: low %v, high %v", iv.Separation(), s.Low, s.High)
	}
	return nil
}
