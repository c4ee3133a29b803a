// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"strconv"

	"github.com/tipviz/tipcharts/axis"
	"github.com/tipviz/tipcharts/dataset"
	"github.com/tipviz/tipcharts/layout"
	"github.com/tipviz/tipcharts/lifecycle"
	"github.com/tipviz/tipcharts/scale"
	"github.com/tipviz/tipcharts/surface"
)

// BarOptions configures a BarChart. Zero fields take their defaults.
type BarOptions struct {
	// Width is the fixed outer width. Default 400.
	Width float64

	// Height is the outer height used until the chart is
	// attached to a container. Default 400.
	Height float64

	// Margins default to 20, 20, 30, 40 (top, right, bottom,
	// left).
	Margins layout.Margins

	// Padding is the band padding fraction. Default 0.1.
	Padding float64

	Fill color.Color
}

var defaultMargins = layout.Margins{Top: 20, Right: 20, Bottom: 30, Left: 40}

func (o BarOptions) withDefaults() BarOptions {
	if o.Width == 0 {
		o.Width = 400
	}
	if o.Height == 0 {
		o.Height = 400
	}
	if o.Margins == (layout.Margins{}) {
		o.Margins = defaultMargins
	}
	if o.Padding == 0 {
		o.Padding = 0.1
	}
	if o.Fill == nil {
		o.Fill = steelBlue
	}
	return o
}

// BarChart draws one bar per row at the row's category, with height
// given by the Y attribute of the Binding. Bars of the same category
// overlap. The Y axis always starts at zero.
type BarChart struct {
	*base
	opts BarOptions
}

// NewBarChart returns an unattached bar chart.
func NewBarChart(opts BarOptions) *BarChart {
	opts = opts.withDefaults()
	c := &BarChart{opts: opts}
	cfg := layout.Config{Margins: opts.Margins, Mode: layout.TrackHeight, Width: opts.Width}
	c.base = newBase("bar chart", cfg, opts.Height, c.Frame)
	return c
}

// Render draws ds with the Y attribute of bind.
func (c *BarChart) Render(ds *dataset.Dataset, bind Binding) (lifecycle.Result, error) {
	return c.render(ds, bind)
}

// Frame computes the bar chart of ds in g.
func (c *BarChart) Frame(ds *dataset.Dataset, bind Binding, g layout.Geometry) (lifecycle.Frame, error) {
	rows := finiteRows(ds, bind.Y)
	if len(rows) == 0 {
		return lifecycle.Frame{}, degenerate(errNoRows)
	}
	cats := make([]string, len(rows))
	ys := make([]float64, len(rows))
	for i, r := range rows {
		cats[i] = r.Category
		ys[i] = r.Value(bind.Y)
	}

	x := scale.NewBand(scale.Categories(cats), 0, g.Width, c.opts.Padding)
	ymax, _ := scale.Max(ys)
	y, err := scale.NewLinear(0, ymax, g.Height, 0)
	if err != nil {
		return lifecycle.Frame{}, degenerate(err)
	}
	y.Nice(0)

	marks := make([]surface.Item, 0, len(rows))
	for i, r := range rows {
		x0, _ := x.Map(cats[i])
		top := y.Map(ys[i])
		marks = append(marks, surface.Item{
			Key: "bar/" + strconv.Itoa(r.ID),
			Primitive: surface.Primitive{
				Kind:  surface.Rect,
				Class: "bar",
				X:     g.Left + x0,
				Y:     g.Top + top,
				W:     x.Bandwidth(),
				H:     g.Height - top,
				Style: surface.Style{Fill: c.opts.Fill},
			},
		})
	}

	return lifecycle.Frame{
		Width:  g.OuterWidth(),
		Height: g.OuterHeight(),
		Marks:  marks,
		Axes: []lifecycle.AxisBlock{
			{Edge: axis.Bottom, Items: axis.Render(axis.Bottom, x, 0).Primitives(g.Left, g.Top+g.Height)},
			{Edge: axis.Left, Items: axis.Render(axis.Left, y, 0).Primitives(g.Left, g.Top)},
		},
	}, nil
}
