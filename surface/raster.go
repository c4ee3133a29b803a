// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// supersample is the factor shapes are rasterized at before being
// scaled down, which antialiases edges.
const supersample = 2

// circleSegments is the number of polygon edges used for a circle.
const circleSegments = 48

// WritePNG rasterizes s onto a white background and writes it to w
// as a PNG.
//
// Shapes are drawn at twice the size and scaled down. Text is drawn
// afterwards at full size with a fixed bitmap face, so FontSize is
// ignored.
func WritePNG(w io.Writer, s *Scene) error {
	img := Rasterize(s)
	return png.Encode(w, img)
}

// Rasterize renders s to an image.
func Rasterize(s *Scene) *image.RGBA {
	width, height, items := s.snapshot()
	iw, ih := px(math.Max(width, 1)), px(math.Max(height, 1))

	big := image.NewRGBA(image.Rect(0, 0, iw*supersample, ih*supersample))
	draw.Draw(big, big.Bounds(), image.White, image.Point{}, draw.Src)
	r := &rasterizer{dst: big, k: supersample}
	for _, it := range items {
		r.shape(it.Primitive)
	}

	dst := image.NewRGBA(image.Rect(0, 0, iw, ih))
	draw.BiLinear.Scale(dst, dst.Bounds(), big, big.Bounds(), draw.Src, nil)

	for _, it := range items {
		if it.Kind == Text {
			drawText(dst, it.Primitive)
		}
	}
	return dst
}

type rasterizer struct {
	dst *image.RGBA
	k   float64
}

func (r *rasterizer) shape(p Primitive) {
	switch p.Kind {
	case Rect:
		if p.Style.Gradient != nil && len(p.Style.Gradient.Stops) > 0 {
			r.gradientRect(p)
			break
		}
		pts := []Point{{p.X, p.Y}, {p.X + p.W, p.Y}, {p.X + p.W, p.Y + p.H}, {p.X, p.Y + p.H}}
		r.fill(pts, p.Style.Fill)
		r.strokePolyline(append(pts, pts[0]), p.Style)
	case Circle:
		pts := make([]Point, circleSegments)
		for i := range pts {
			a := 2 * math.Pi * float64(i) / circleSegments
			pts[i] = Point{p.X + p.R*math.Cos(a), p.Y + p.R*math.Sin(a)}
		}
		r.fill(pts, p.Style.Fill)
		r.strokePolyline(append(pts, pts[0]), p.Style)
	case Line:
		r.strokePolyline([]Point{{p.X, p.Y}, {p.X2, p.Y2}}, p.Style)
	case Path:
		r.strokePolyline(p.Points, p.Style)
	}
}

// fill paints the polygon pts with c.
func (r *rasterizer) fill(pts []Point, c color.Color) {
	if c == nil || len(pts) < 3 {
		return
	}
	b := r.dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0].X*r.k), float32(pts[0].Y*r.k))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X*r.k), float32(p.Y*r.k))
	}
	z.ClosePath()
	z.Draw(r.dst, b, image.NewUniform(c), image.Point{})
}

// strokePolyline paints each segment of pts as a quadrilateral of
// the style's stroke width.
func (r *rasterizer) strokePolyline(pts []Point, st Style) {
	if st.Stroke == nil {
		return
	}
	w := st.StrokeWidth
	if w == 0 {
		w = 1
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*w/2, dx/l*w/2
		r.fill([]Point{{a.X + nx, a.Y + ny}, {b.X + nx, b.Y + ny}, {b.X - nx, b.Y - ny}, {a.X - nx, a.Y - ny}}, st.Stroke)
	}
}

// gradientRect paints a left-to-right gradient one device column at
// a time.
func (r *rasterizer) gradientRect(p Primitive) {
	stops := make([]color.RGBA, len(p.Style.Gradient.Stops))
	for i, c := range p.Style.Gradient.Stops {
		stops[i] = color.RGBAModel.Convert(c).(color.RGBA)
	}

	x0, x1 := px(p.X*r.k), px((p.X+p.W)*r.k)
	y0, y1 := px(p.Y*r.k), px((p.Y+p.H)*r.k)
	for x := x0; x < x1; x++ {
		t := 0.0
		if x1-x0 > 1 {
			t = float64(x-x0) / float64(x1-x0-1)
		}
		col := image.Rect(x, y0, x+1, y1)
		draw.Draw(r.dst, col, image.NewUniform(Interpolate(stops, t)), image.Point{}, draw.Over)
	}
}

func drawText(dst *image.RGBA, p Primitive) {
	face := basicfont.Face7x13
	c := p.Style.Fill
	if c == nil {
		c = color.Black
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face}
	width := d.MeasureString(p.Text).Ceil()

	x := px(p.X)
	switch p.Anchor {
	case AnchorMiddle:
		x -= width / 2
	case AnchorEnd:
		x -= width
	}
	y := px(p.Y + p.DY*float64(face.Height))
	d.Dot = fixed.P(x, y)
	d.DrawString(p.Text)
}
