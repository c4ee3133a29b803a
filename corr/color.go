// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corr

import (
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"
	"github.com/tipviz/tipcharts/axis"
	"github.com/tipviz/tipcharts/scale"
	"github.com/tipviz/tipcharts/surface"
)

// Category10 is a ten-color categorical palette.
var Category10 = []color.Color{
	color.RGBA{0x1f, 0x77, 0xb4, 0xff},
	color.RGBA{0xff, 0x7f, 0x0e, 0xff},
	color.RGBA{0x2c, 0xa0, 0x2c, 0xff},
	color.RGBA{0xd6, 0x27, 0x28, 0xff},
	color.RGBA{0x94, 0x67, 0xbd, 0xff},
	color.RGBA{0x8c, 0x56, 0x4b, 0xff},
	color.RGBA{0xe3, 0x77, 0xc2, 0xff},
	color.RGBA{0x7f, 0x7f, 0x7f, 0xff},
	color.RGBA{0xbc, 0xbd, 0x22, 0xff},
	color.RGBA{0x17, 0xbe, 0xcf, 0xff},
}

// Encoding colors cells by value. Each distinct value gets the next
// palette color in row-major order of first appearance, wrapping
// around the palette. Cells with equal values share a color even if
// they relate unrelated attributes.
type Encoding struct {
	palette []color.Color
	index   map[valueKey]int
	values  []float64
}

// valueKey canonicalizes floats for equality: every NaN is one key
// and -0 equals 0.
type valueKey uint64

func keyOf(v float64) valueKey {
	switch {
	case math.IsNaN(v):
		return valueKey(math.Float64bits(math.NaN()))
	case v == 0:
		return 0
	}
	return valueKey(math.Float64bits(v))
}

// NewEncoding returns the encoding of m's cells. A nil or empty
// palette uses Category10.
func NewEncoding(m *Matrix, pal []color.Color) *Encoding {
	if len(pal) == 0 {
		pal = Category10
	}
	e := &Encoding{palette: pal, index: make(map[valueKey]int)}
	for _, c := range m.Cells {
		k := keyOf(c.Value)
		if _, ok := e.index[k]; !ok {
			e.index[k] = len(e.values)
			e.values = append(e.values, c.Value)
		}
	}
	return e
}

// Values returns the distinct values in order of first appearance.
func (e *Encoding) Values() []float64 {
	return append([]float64(nil), e.values...)
}

// Color returns the color of v. Values not seen by NewEncoding are
// appended to the domain, as an ordinal scale would.
func (e *Encoding) Color(v float64) color.Color {
	k := keyOf(v)
	i, ok := e.index[k]
	if !ok {
		i = len(e.values)
		e.index[k] = i
		e.values = append(e.values, v)
	}
	return e.palette[i%len(e.palette)]
}

// TextColor returns the label color to draw on a background of c:
// black if c's CIE L* lightness exceeds 70, white otherwise.
func TextColor(c color.Color) color.Color {
	if Lightness(c) > 70 {
		return color.Black
	}
	return color.White
}

// Lightness returns the CIE L* of c in [0, 100], ignoring alpha.
func Lightness(c color.Color) float64 {
	r, g, b, _ := color.NRGBAModel.Convert(c).RGBA()
	// Luminance relative to a D50 white point.
	y := 0.2225045*linear(r) + 0.7168786*linear(g) + 0.0606169*linear(b)
	const (
		t1 = 6.0 / 29
		t2 = 3 * t1 * t1
		t3 = t1 * t1 * t1
	)
	var f float64
	if y > t3 {
		f = math.Cbrt(y)
	} else {
		f = y/t2 + 4.0/29
	}
	return 116*f - 16
}

// linear converts a 16-bit sRGB channel to linear light in [0, 1].
func linear(v uint32) float64 {
	x := float64(v) / 0xffff
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

// Legend is a continuous white to black key over [0, 1].
//
// It is independent of the Encoding used for cells: its colors do not
// match the categorical cell colors.
type Legend struct {
	// Palette holds the gradient's stops. Sample it with Map.
	Palette palette.RGBGradient
	Scale   *scale.Linear
	Ticks   []scale.Tick
}

// NewLegend returns a legend drawn width pixels wide, with one tick
// per 50 pixels.
func NewLegend(width float64) (*Legend, error) {
	s, err := scale.NewLinear(0, 1, 0, width)
	if err != nil {
		return nil, err
	}
	return &Legend{
		Palette: palette.RGBGradient{Colors: []color.RGBA{
			{0xff, 0xff, 0xff, 0xff},
			{0x00, 0x00, 0x00, 0xff},
		}},
		Scale: s,
		Ticks: s.Ticks(axis.DensityCount(width)),
	}, nil
}

// Map returns the legend color at v in [0, 1].
func (l *Legend) Map(v float64) color.Color {
	return surface.Interpolate(l.Palette.Colors, v)
}

// Stops returns n evenly spaced samples of the legend gradient.
func (l *Legend) Stops(n int) []color.Color {
	if n < 2 {
		n = 2
	}
	out := make([]color.Color, n)
	for i := range out {
		out[i] = l.Map(float64(i) / float64(n-1))
	}
	return out
}
