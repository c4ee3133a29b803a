// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout tracks the size of a chart's container and derives
// the chart's plot-area geometry from it.
package layout

import "errors"

// ErrNotMounted is reported when a chart needs geometry but its
// container has not been mounted yet.
var ErrNotMounted = errors.New("container not mounted")

// Margins is the space reserved around the plot area for axes and
// labels.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Geometry is the plot area of a chart: its margins and the inner
// width and height left for data.
type Geometry struct {
	Margins
	Width, Height float64
}

// OuterWidth returns the full width including margins.
func (g Geometry) OuterWidth() float64 {
	return g.Width + g.Left + g.Right
}

// OuterHeight returns the full height including margins.
func (g Geometry) OuterHeight() float64 {
	return g.Height + g.Top + g.Bottom
}

// Compute returns the geometry of a chart with margins m in an outer
// box of outerW by outerH. Width and height are clamped at 0 if the
// box is smaller than the margins.
func Compute(m Margins, outerW, outerH float64) Geometry {
	g := Geometry{
		Margins: m,
		Width:   outerW - m.Left - m.Right,
		Height:  outerH - m.Top - m.Bottom,
	}
	if !(g.Width > 0) {
		g.Width = 0
	}
	if !(g.Height > 0) {
		g.Height = 0
	}
	return g
}
