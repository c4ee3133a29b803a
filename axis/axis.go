// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis produces tick marks and labels along an edge of a
// chart.
package axis

import (
	"image/color"
	"math"
	"strconv"

	"github.com/tipviz/tipcharts/scale"
	"github.com/tipviz/tipcharts/surface"
)

// Edge is the side of the plot area an axis is drawn on.
type Edge int

const (
	Bottom Edge = iota
	Left
	Top
)

func (e Edge) String() string {
	switch e {
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Top:
		return "top"
	}
	return "edge" + strconv.Itoa(int(e))
}

const (
	// tickSize is the length of tick marks and of the domain
	// path's end caps.
	tickSize = 6

	// tickPadding is the gap between a tick mark and its label.
	tickPadding = 3

	// pixelsPerTick is the density target of DensityCount.
	pixelsPerTick = 50
)

var axisColor = color.Black

// Axis is the tick layout of one edge.
type Axis struct {
	Edge  Edge
	Ticks []scale.Tick

	// RangeLo and RangeHi are the pixel extent of the domain path
	// along the edge.
	RangeLo, RangeHi float64
}

// Render computes the ticks of s for an axis on edge. count is passed
// to s.Ticks; count <= 0 uses the scale's natural tick count.
func Render(edge Edge, s scale.Scale, count int) Axis {
	r0, r1 := s.Range()
	return Axis{
		Edge:    edge,
		Ticks:   s.Ticks(count),
		RangeLo: math.Min(r0, r1),
		RangeHi: math.Max(r0, r1),
	}
}

// DensityCount returns a tick count of one tick per 50 pixels of
// extent, and at least 1 for a positive extent.
func DensityCount(extent float64) int {
	if !(extent > 0) {
		return 0
	}
	n := int(math.Floor(extent / pixelsPerTick))
	if n < 1 {
		n = 1
	}
	return n
}

// Key returns the key prefix of all primitives of an axis on edge.
func Key(edge Edge) string {
	return "axis/" + edge.String()
}

// Primitives returns the drawn elements of a, with the axis line
// positioned at (x, y): the plot origin for Left and Top axes, and
// (plot left, plot bottom) for Bottom axes. Keys are stable per edge
// and tick index so redrawing an axis updates it in place.
func (a Axis) Primitives(x, y float64) []surface.Item {
	prefix := Key(a.Edge)
	stroke := surface.Style{Stroke: axisColor, StrokeWidth: 1}
	items := make([]surface.Item, 0, 1+2*len(a.Ticks))

	var domain []surface.Point
	switch a.Edge {
	case Bottom:
		domain = []surface.Point{
			{X: x + a.RangeLo, Y: y + tickSize}, {X: x + a.RangeLo, Y: y},
			{X: x + a.RangeHi, Y: y}, {X: x + a.RangeHi, Y: y + tickSize},
		}
	case Top:
		domain = []surface.Point{
			{X: x + a.RangeLo, Y: y - tickSize}, {X: x + a.RangeLo, Y: y},
			{X: x + a.RangeHi, Y: y}, {X: x + a.RangeHi, Y: y - tickSize},
		}
	case Left:
		domain = []surface.Point{
			{X: x - tickSize, Y: y + a.RangeLo}, {X: x, Y: y + a.RangeLo},
			{X: x, Y: y + a.RangeHi}, {X: x - tickSize, Y: y + a.RangeHi},
		}
	}
	items = append(items, surface.Item{
		Key:       prefix + "/domain",
		Primitive: surface.Primitive{Kind: surface.Path, Class: "domain", Points: domain, Style: stroke},
	})

	for i, t := range a.Ticks {
		line := surface.Primitive{Kind: surface.Line, Class: "tick", Style: stroke}
		label := surface.Primitive{Kind: surface.Text, Class: "tick", Text: t.Label, Anchor: surface.AnchorMiddle}
		switch a.Edge {
		case Bottom:
			line.X, line.Y, line.X2, line.Y2 = x+t.Pos, y, x+t.Pos, y+tickSize
			label.X, label.Y, label.DY = x+t.Pos, y+tickSize+tickPadding, 0.71
		case Top:
			line.X, line.Y, line.X2, line.Y2 = x+t.Pos, y, x+t.Pos, y-tickSize
			label.X, label.Y = x+t.Pos, y-tickSize-tickPadding
		case Left:
			line.X, line.Y, line.X2, line.Y2 = x, y+t.Pos, x-tickSize, y+t.Pos
			label.X, label.Y, label.DY = x-tickSize-tickPadding, y+t.Pos, 0.32
			label.Anchor = surface.AnchorEnd
		}
		n := strconv.Itoa(i)
		items = append(items,
			surface.Item{Key: prefix + "/tick/" + n, Primitive: line},
			surface.Item{Key: prefix + "/label/" + n, Primitive: label},
		)
	}
	return items
}
