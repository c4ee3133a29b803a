// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/tipviz/tipcharts/axis"
	"github.com/tipviz/tipcharts/dataset"
	"github.com/tipviz/tipcharts/layout"
	"github.com/tipviz/tipcharts/lifecycle"
	"github.com/tipviz/tipcharts/scale"
	"github.com/tipviz/tipcharts/surface"
)

// ScatterOptions configures a Scatterplot. Zero fields take their
// defaults.
type ScatterOptions struct {
	// Width and Height are the outer size used until the chart is
	// attached to a container. Default 400x400.
	Width, Height float64

	// Margins default to 20, 20, 30, 40 (top, right, bottom,
	// left).
	Margins layout.Margins

	// Radius is the point radius. Default 5.
	Radius float64

	Fill color.Color
}

func (o ScatterOptions) withDefaults() ScatterOptions {
	if o.Width == 0 {
		o.Width = 400
	}
	if o.Height == 0 {
		o.Height = 400
	}
	if o.Margins == (layout.Margins{}) {
		o.Margins = defaultMargins
	}
	if o.Radius == 0 {
		o.Radius = 5
	}
	if o.Fill == nil {
		o.Fill = steelBlue
	}
	return o
}

// Scatterplot draws one point per row at its (X, Y) values. Both
// domains are the extents of the data.
type Scatterplot struct {
	*base
	opts ScatterOptions
}

// NewScatterplot returns an unattached scatterplot.
func NewScatterplot(opts ScatterOptions) *Scatterplot {
	opts = opts.withDefaults()
	c := &Scatterplot{opts: opts}
	cfg := layout.Config{Margins: opts.Margins, Mode: layout.TrackBoth, Width: opts.Width}
	c.base = newBase("scatterplot", cfg, opts.Height, c.Frame)
	return c
}

// Render draws ds with bind.
func (c *Scatterplot) Render(ds *dataset.Dataset, bind Binding) (lifecycle.Result, error) {
	return c.render(ds, bind)
}

// Frame computes the scatterplot of ds in g.
func (c *Scatterplot) Frame(ds *dataset.Dataset, bind Binding, g layout.Geometry) (lifecycle.Frame, error) {
	rows := finiteRows(ds, bind.X, bind.Y)
	if len(rows) == 0 {
		return lifecycle.Frame{}, degenerate(errNoRows)
	}
	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, r := range rows {
		xs[i], ys[i] = r.Value(bind.X), r.Value(bind.Y)
	}

	x, err := extentScale(xs, 0, g.Width)
	if err != nil {
		return lifecycle.Frame{}, degenerate(fmt.Errorf("x %s: %w", bind.X, err))
	}
	y, err := extentScale(ys, g.Height, 0)
	if err != nil {
		return lifecycle.Frame{}, degenerate(fmt.Errorf("y %s: %w", bind.Y, err))
	}

	marks := make([]surface.Item, len(rows))
	for i, r := range rows {
		marks[i] = surface.Item{
			Key: "point/" + strconv.Itoa(r.ID),
			Primitive: surface.Primitive{
				Kind:  surface.Circle,
				Class: "point",
				X:     g.Left + x.Map(xs[i]),
				Y:     g.Top + y.Map(ys[i]),
				R:     c.opts.Radius,
				Style: surface.Style{Fill: c.opts.Fill},
			},
		}
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

func extentScale(vs []float64, r0, r1 float64) (*scale.Linear, error) {
	lo, hi, _ := scale.Extent(vs)
	return scale.NewLinear(lo, hi, r0, r1)
}
