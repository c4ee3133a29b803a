// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws the tips dashboard charts: a bar chart of a
// numeric attribute by day, a scatterplot of two numeric attributes
// and a correlation matrix of all numeric attributes.
//
// Each chart owns one surface.Scene and a lifecycle.Controller that
// reconciles it. A chart's Frame method computes what to draw from
// rows, a Binding and a layout.Geometry without side effects; Render
// draws that frame. Charts attached to a layout.Container redraw
// whenever the container is resized.
package chart

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/tipviz/tipcharts/dataset"
	"github.com/tipviz/tipcharts/internal/logging"
	"github.com/tipviz/tipcharts/layout"
	"github.com/tipviz/tipcharts/lifecycle"
	"github.com/tipviz/tipcharts/surface"
)

// ErrUnknownAttribute is returned for a Binding naming an attribute
// that is not numeric in the dataset's schema.
var ErrUnknownAttribute = errors.New("unknown attribute")

// steelBlue is the default mark color.
var steelBlue = color.RGBA{0x46, 0x82, 0xb4, 0xff}

// Binding selects the attributes bound to the X and Y roles.
type Binding struct {
	X, Y string
}

// DefaultBinding is the binding used before any selection.
var DefaultBinding = Binding{X: "total_bill", Y: "tip"}

func (b Binding) String() string {
	return b.X + "/" + b.Y
}

// Validate checks that both attributes of b are numeric in s.
func (b Binding) Validate(s dataset.Schema) error {
	for _, a := range []string{b.X, b.Y} {
		if !s.HasNumeric(a) {
			return fmt.Errorf("%w %q", ErrUnknownAttribute, a)
		}
	}
	return nil
}

// degenerate wraps err as a degenerate-input error so the
// lifecycle.Controller skips the render.
func degenerate(err error) error {
	return fmt.Errorf("%w: %w", lifecycle.ErrDegenerate, err)
}

var errNoRows = errors.New("no plottable rows")

type frameFunc func(ds *dataset.Dataset, b Binding, g layout.Geometry) (lifecycle.Frame, error)

// base is the state shared by every chart.
type base struct {
	name   string
	cfg    layout.Config
	height float64 // default outer height when unattached
	frame  frameFunc

	scene *surface.Scene
	ctl   *lifecycle.Controller
	mgr   *layout.Manager

	ds      *dataset.Dataset
	binding Binding

	// after, if set, runs after every successful main render.
	after func(g layout.Geometry) error
}

func newBase(name string, cfg layout.Config, height float64, frame frameFunc) *base {
	scene := surface.NewScene(cfg.Width, height)
	return &base{
		name:    name,
		cfg:     cfg,
		height:  height,
		frame:   frame,
		scene:   scene,
		ctl:     lifecycle.New(scene),
		binding: DefaultBinding,
	}
}

// geometry returns the plot geometry from the attached container, or
// from the default size if the chart is not attached.
func (b *base) geometry() (layout.Geometry, error) {
	if b.mgr == nil {
		return b.cfg.Geometry(b.cfg.Width, b.height), nil
	}
	return b.mgr.Geometry()
}

func (b *base) render(ds *dataset.Dataset, bind Binding) (lifecycle.Result, error) {
	b.ds, b.binding = ds, bind
	return b.redraw()
}

func (b *base) redraw() (lifecycle.Result, error) {
	var g layout.Geometry
	res, err := b.ctl.Render(func() (lifecycle.Frame, error) {
		var err error
		g, err = b.geometry()
		if err != nil {
			return lifecycle.Frame{}, degenerate(err)
		}
		if g.Width <= 0 || g.Height <= 0 {
			return lifecycle.Frame{}, degenerate(fmt.Errorf("empty plot area %gx%g", g.Width, g.Height))
		}
		return b.frame(b.ds, b.binding, g)
	})
	if err != nil {
		return res, fmt.Errorf("%s: %w", b.name, err)
	}
	if !res.Skipped && b.after != nil {
		if err := b.after(g); err != nil {
			return res, fmt.Errorf("%s: %w", b.name, err)
		}
	}
	logging.Logger().Debug("rendered", "chart", b.name, "skipped", res.Skipped,
		"created", res.Created, "updated", res.Updated, "removed", res.Removed)
	return res, nil
}

// attach replaces the chart's container with c.
func (b *base) attach(c layout.Container) {
	if b.mgr != nil {
		b.mgr.Deactivate()
	}
	b.mgr = layout.NewManager(c, b.cfg, func(layout.Geometry) {
		if _, err := b.redraw(); err != nil {
			logging.Logger().Error("redraw after resize", "chart", b.name, "err", err)
		}
	})
	b.mgr.Activate()
}

func (b *base) close() error {
	if b.mgr != nil {
		b.mgr.Deactivate()
	}
	return b.ctl.Teardown()
}

// Scene returns the surface the chart draws on.
func (b *base) Scene() *surface.Scene { return b.scene }

// State returns the chart's drawing state.
func (b *base) State() lifecycle.State { return b.ctl.State() }

// Redraw redraws the chart with its last dataset and binding.
func (b *base) Redraw() (lifecycle.Result, error) { return b.redraw() }

// Attach makes the chart follow the size of c. The chart redraws
// immediately if c is mounted and on every later resize, until Close
// or the next Attach.
func (b *base) Attach(c layout.Container) { b.attach(c) }

// Close releases the chart's container subscription and removes
// everything it has drawn. A closed chart cannot render again.
func (b *base) Close() error { return b.close() }

// finiteRows returns the rows of ds with finite values for attrs.
func finiteRows(ds *dataset.Dataset, attrs ...string) []dataset.Row {
	var out []dataset.Row
	for _, r := range ds.Rows() {
		if r.Finite(attrs...) {
			out = append(out, r)
		}
	}
	if n := ds.Len() - len(out); n > 0 {
		logging.Logger().Debug("skipped rows with missing values", "attrs", attrs, "skipped", n)
	}
	return out
}
