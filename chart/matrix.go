// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"

	"github.com/tipviz/tipcharts/axis"
	"github.com/tipviz/tipcharts/corr"
	"github.com/tipviz/tipcharts/dataset"
	"github.com/tipviz/tipcharts/layout"
	"github.com/tipviz/tipcharts/lifecycle"
	"github.com/tipviz/tipcharts/scale"
	"github.com/tipviz/tipcharts/surface"
)

// MatrixOptions configures a CorrelationMatrix. Zero fields take
// their defaults.
type MatrixOptions struct {
	// Size is the outer side used until the chart is attached to
	// a container. Default 600.
	Size float64

	// Margins default to 50, 50, 100, 100 (top, right, bottom,
	// left).
	Margins layout.Margins

	// Method is the pairwise statistic. Default corr.MeanProduct.
	Method corr.Method

	// Palette colors distinct cell values. Default
	// corr.Category10.
	Palette []color.Color

	// LegendHeight is the height of the legend's gradient bar.
	// Default 20.
	LegendHeight float64
}

func (o MatrixOptions) withDefaults() MatrixOptions {
	if o.Size == 0 {
		o.Size = 600
	}
	if o.Margins == (layout.Margins{}) {
		o.Margins = layout.Margins{Top: 50, Right: 50, Bottom: 100, Left: 100}
	}
	if len(o.Palette) == 0 {
		o.Palette = corr.Category10
	}
	if o.LegendHeight == 0 {
		o.LegendHeight = 20
	}
	return o
}

const (
	legendTop    = 10
	legendStops  = 11
	legendBottom = 30
)

// CorrelationMatrix draws the correlation of every pair of numeric
// attributes of the dataset's schema as a grid of colored, labeled
// cells, and a separate gradient legend.
//
// The attributes are always the schema's numeric attributes; the
// Binding is ignored.
type CorrelationMatrix struct {
	*base
	opts MatrixOptions

	legend    *surface.Scene
	legendCtl *lifecycle.Controller
}

// NewCorrelationMatrix returns an unattached correlation matrix.
func NewCorrelationMatrix(opts MatrixOptions) *CorrelationMatrix {
	opts = opts.withDefaults()
	c := &CorrelationMatrix{opts: opts}
	cfg := layout.Config{Margins: opts.Margins, Mode: layout.TrackSquare, Width: opts.Size}
	c.base = newBase("correlation matrix", cfg, opts.Size, c.Frame)
	c.legend = surface.NewScene(0, 0)
	c.legendCtl = lifecycle.New(c.legend)
	c.after = c.renderLegend
	return c
}

// Legend returns the surface the legend is drawn on.
func (c *CorrelationMatrix) Legend() *surface.Scene { return c.legend }

// Render draws the matrix of ds.
func (c *CorrelationMatrix) Render(ds *dataset.Dataset) (lifecycle.Result, error) {
	return c.render(ds, c.binding)
}

// Close tears down the matrix and its legend.
func (c *CorrelationMatrix) Close() error {
	err := c.close()
	if lerr := c.legendCtl.Teardown(); err == nil {
		err = lerr
	}
	return err
}

// Frame computes the matrix of ds in g. bind is ignored.
func (c *CorrelationMatrix) Frame(ds *dataset.Dataset, bind Binding, g layout.Geometry) (lifecycle.Frame, error) {
	attrs := ds.Schema().Numeric
	m, err := corr.Compute(ds.Rows(), attrs, c.opts.Method)
	if err != nil {
		return lifecycle.Frame{}, degenerate(err)
	}
	enc := corr.NewEncoding(m, c.opts.Palette)

	x := scale.NewBand(m.Attrs, 0, g.Width, 0)
	y := scale.NewBand(m.Attrs, 0, g.Height, 0)

	cells := make([]surface.Item, 0, len(m.Cells))
	labels := make([]surface.Item, 0, len(m.Cells))
	for _, cell := range m.Cells {
		x0, _ := x.Map(cell.ColAttr)
		y0, _ := y.Map(cell.RowAttr)
		fill := enc.Color(cell.Value)
		id := fmt.Sprintf("%d/%d", cell.Row, cell.Col)
		cells = append(cells, surface.Item{
			Key: "cell/" + id,
			Primitive: surface.Primitive{
				Kind:  surface.Rect,
				Class: "cell",
				X:     g.Left + x0,
				Y:     g.Top + y0,
				W:     x.Bandwidth(),
				H:     y.Bandwidth(),
				Style: surface.Style{Fill: fill},
			},
		})
		labels = append(labels, surface.Item{
			Key: "cell-label/" + id,
			Primitive: surface.Primitive{
				Kind:   surface.Text,
				Class:  "cell-label",
				X:      g.Left + x0 + x.Bandwidth()/2,
				Y:      g.Top + y0 + y.Bandwidth()/2,
				DY:     0.35,
				Anchor: surface.AnchorMiddle,
				Text:   fmt.Sprintf("%.2f", cell.Value),
				Style:  surface.Style{Fill: corr.TextColor(fill)},
			},
		})
	}

	return lifecycle.Frame{
		Width:  g.OuterWidth(),
		Height: g.OuterHeight(),
		Marks:  append(cells, labels...),
		Axes: []lifecycle.AxisBlock{
			{Edge: axis.Left, Items: axis.Render(axis.Left, y, 0).Primitives(g.Left, g.Top)},
			{Edge: axis.Top, Items: axis.Render(axis.Top, x, 0).Primitives(g.Left, g.Top)},
		},
	}, nil
}

// LegendFrame computes the legend for a matrix drawn in g.
func (c *CorrelationMatrix) LegendFrame(g layout.Geometry) (lifecycle.Frame, error) {
	l, err := corr.NewLegend(g.Width)
	if err != nil {
		return lifecycle.Frame{}, degenerate(err)
	}
	bar := surface.Item{
		Key: "legend/gradient",
		Primitive: surface.Primitive{
			Kind:  surface.Rect,
			Class: "legend",
			X:     g.Left,
			Y:     legendTop,
			W:     g.Width,
			H:     c.opts.LegendHeight,
			Style: surface.Style{
				Gradient: &surface.Gradient{Stops: l.Stops(legendStops)},
				Stroke:   color.Black,
			},
		},
	}
	a := axis.Axis{Edge: axis.Bottom, Ticks: l.Ticks, RangeLo: 0, RangeHi: g.Width}
	return lifecycle.Frame{
		Width:  g.OuterWidth(),
		Height: legendTop + c.opts.LegendHeight + legendBottom,
		Marks:  []surface.Item{bar},
		Axes: []lifecycle.AxisBlock{
			{Edge: axis.Bottom, Items: a.Primitives(g.Left, legendTop+c.opts.LegendHeight)},
		},
	}, nil
}

func (c *CorrelationMatrix) renderLegend(g layout.Geometry) error {
	_, err := c.legendCtl.Render(func() (lifecycle.Frame, error) {
		return c.LegendFrame(g)
	})
	if err != nil {
		return fmt.Errorf("legend: %w", err)
	}
	return nil
}
