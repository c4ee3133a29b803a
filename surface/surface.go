// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface defines a retained-mode vector drawing surface.
//
// Primitives (rectangles, circles, lines, paths and text) are created,
// updated and removed by key. Scene is the in-memory implementation;
// WriteSVG and WritePNG encode a Scene.
package surface

import (
	"errors"
	"image/color"
	"math"
	"reflect"
)

var (
	// ErrExists is returned by Create for a key already present.
	ErrExists = errors.New("primitive already exists")

	// ErrNotFound is returned by Update and Remove for an unknown
	// key.
	ErrNotFound = errors.New("primitive not found")
)

// Kind is the shape of a Primitive.
type Kind int

const (
	Rect Kind = iota
	Circle
	Line
	Path
	Text
)

func (k Kind) String() string {
	switch k {
	case Rect:
		return "rect"
	case Circle:
		return "circle"
	case Line:
		return "line"
	case Path:
		return "path"
	case Text:
		return "text"
	}
	return "unknown"
}

// Anchor is the horizontal alignment of text relative to its
// position.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

type Point struct {
	X, Y float64
}

// Gradient is a left-to-right linear gradient with evenly spaced
// color stops.
type Gradient struct {
	Stops []color.Color
}

// At returns the color of g at t in [0, 1].
func (g *Gradient) At(t float64) color.RGBA {
	stops := make([]color.RGBA, len(g.Stops))
	for i, c := range g.Stops {
		stops[i] = color.RGBAModel.Convert(c).(color.RGBA)
	}
	return Interpolate(stops, t)
}

// Interpolate returns the color at t in [0, 1] along evenly spaced
// stops, blending the two neighboring stops component-wise in sRGB.
// t is clamped to [0, 1]; NaN is treated as 0. It returns the zero
// color if stops is empty.
func Interpolate(stops []color.RGBA, t float64) color.RGBA {
	switch {
	case len(stops) == 0:
		return color.RGBA{}
	case len(stops) == 1 || !(t > 0):
		return stops[0]
	case t >= 1:
		return stops[len(stops)-1]
	}
	ip, fr := math.Modf(t * float64(len(stops)-1))
	i := int(ip)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	a, b := stops[i], stops[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x)*(1-fr) + float64(y)*fr))
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}

// Style holds the paint of a Primitive. A nil color paints nothing.
type Style struct {
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float64

	// Gradient, if non-nil, replaces Fill for rectangles.
	Gradient *Gradient

	// FontSize is the text size in pixels. 0 means DefaultFontSize.
	FontSize float64
}

// DefaultFontSize is the text size used when Style.FontSize is 0.
const DefaultFontSize = 10

// Primitive is one drawable shape. Which fields are meaningful
// depends on Kind:
//
//	Rect:   X, Y (top left), W, H
//	Circle: X, Y (center), R
//	Line:   X, Y to X2, Y2
//	Path:   Points, drawn as an open polyline
//	Text:   X, Y (baseline), Text, Anchor, DY
type Primitive struct {
	Kind  Kind
	Class string

	X, Y, W, H float64
	R          float64
	X2, Y2     float64
	Points     []Point

	Text   string
	Anchor Anchor
	// DY shifts text down by this many ems.
	DY float64

	Style Style
}

// Equal reports whether p and q draw identically.
func (p Primitive) Equal(q Primitive) bool {
	return reflect.DeepEqual(p, q)
}

// Item is a keyed Primitive.
type Item struct {
	Key string
	Primitive
}

// Surface is the capability set a chart needs from a drawing
// backend.
type Surface interface {
	// Create adds a primitive under key. It fails with ErrExists
	// if key is in use.
	Create(key string, p Primitive) error

	// Update replaces the primitive under key. It fails with
	// ErrNotFound if key is not in use.
	Update(key string, p Primitive) error

	// Remove deletes the primitive under key. It fails with
	// ErrNotFound if key is not in use.
	Remove(key string) error

	// Resize sets the outer size of the surface.
	Resize(width, height float64)
}
