// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/ajstarks/svgo"
)

// fontFamily matches the sans-serif stack browsers use for charts.
const fontFamily = `Roboto,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif`

// errWriter remembers the first write error so the svgo calls, which
// do not report errors, can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG writes s to w as an SVG document. Each primitive becomes
// one element carrying its key in a data-key attribute.
func WriteSVG(w io.Writer, s *Scene) error {
	width, height, items := s.snapshot()
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(px(width), px(height), fmt.Sprintf(`font-size="%gpx" font-family="%s"`, float64(DefaultFontSize), fontFamily))

	// Gradients are defined up front and referenced by index.
	gradIDs := make(map[string]string)
	var defs []Item
	for _, it := range items {
		if it.Kind == Rect && it.Style.Gradient != nil {
			defs = append(defs, it)
		}
	}
	if len(defs) > 0 {
		canvas.Def()
		for i, it := range defs {
			id := fmt.Sprintf("grad%d", i)
			gradIDs[it.Key] = id
			canvas.LinearGradient(id, 0, 0, 100, 0, offcolors(it.Style.Gradient))
		}
		canvas.DefEnd()
	}

	for _, it := range items {
		attrs := []string{
			fmt.Sprintf(`data-key="%s"`, html.EscapeString(it.Key)),
		}
		if it.Class != "" {
			attrs = append(attrs, fmt.Sprintf(`class="%s"`, html.EscapeString(it.Class)))
		}
		switch it.Kind {
		case Rect:
			style := styleString(it.Style)
			if id, ok := gradIDs[it.Key]; ok {
				style = "fill:url(#" + id + ")"
			}
			canvas.Rect(px(it.X), px(it.Y), px(it.W), px(it.H), append(attrs, `style="`+style+`"`)...)
		case Circle:
			canvas.Circle(px(it.X), px(it.Y), px(it.R), append(attrs, `style="`+styleString(it.Style)+`"`)...)
		case Line:
			canvas.Line(px(it.X), px(it.Y), px(it.X2), px(it.Y2), append(attrs, `style="`+strokeString(it.Style)+`"`)...)
		case Path:
			xs, ys := make([]int, len(it.Points)), make([]int, len(it.Points))
			for i, p := range it.Points {
				xs[i], ys[i] = px(p.X), px(p.Y)
			}
			canvas.Polyline(xs, ys, append(attrs, `style="fill:none;`+strokeString(it.Style)+`"`)...)
		case Text:
			attrs = append(attrs, `text-anchor="`+anchorString(it.Anchor)+`"`)
			if it.DY != 0 {
				attrs = append(attrs, fmt.Sprintf(`dy="%gem"`, it.DY))
			}
			if it.Style.FontSize != 0 {
				attrs = append(attrs, fmt.Sprintf(`font-size="%gpx"`, it.Style.FontSize))
			}
			fill := it.Style.Fill
			if fill == nil {
				fill = color.Black
			}
			attrs = append(attrs, `fill="`+hexColor(fill)+`"`)
			canvas.Text(px(it.X), px(it.Y), it.Text, attrs...)
		}
	}
	canvas.End()
	return ew.err
}

func px(x float64) int {
	return int(math.Round(x))
}

func offcolors(g *Gradient) []svg.Offcolor {
	n := len(g.Stops)
	out := make([]svg.Offcolor, n)
	for i, c := range g.Stops {
		off := 0
		if n > 1 {
			off = 100 * i / (n - 1)
		}
		out[i] = svg.Offcolor{Offset: uint8(off), Color: hexColor(c), Opacity: alpha(c)}
	}
	return out
}

func styleString(st Style) string {
	var b strings.Builder
	if st.Fill == nil {
		b.WriteString("fill:none")
	} else {
		b.WriteString("fill:" + hexColor(st.Fill))
		if a := alpha(st.Fill); a < 1 {
			fmt.Fprintf(&b, ";fill-opacity:%.3g", a)
		}
	}
	if st.Stroke != nil {
		b.WriteString(";" + strokeString(st))
	}
	return b.String()
}

func strokeString(st Style) string {
	if st.Stroke == nil {
		return "stroke:none"
	}
	w := st.StrokeWidth
	if w == 0 {
		w = 1
	}
	return fmt.Sprintf("stroke:%s;stroke-width:%g", hexColor(st.Stroke), w)
}

func anchorString(a Anchor) string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	}
	return "start"
}

// hexColor formats c as #rrggbb, ignoring alpha.
func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func alpha(c color.Color) float64 {
	_, _, _, a := c.RGBA()
	return float64(a) / 0xffff
}
