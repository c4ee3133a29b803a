// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tipviz/tipcharts/chart"
	"github.com/tipviz/tipcharts/surface"
	"golang.org/x/crypto/ssh/terminal"
)

var cmdRenderFlags = newFlagSet("render", "<tips.csv>")

var render struct {
	out, format, chart string
	width, height      float64
}

func init() {
	f := cmdRenderFlags
	addCommonFlags(f, true)
	f.StringVarP(&render.out, "output", "o", "-", "write chart to `file`")
	f.StringVar(&render.format, "format", "", "output `format`: svg or png (default from -o, else svg)")
	f.StringVarP(&render.chart, "chart", "c", chart.Bar, "`chart` to draw: "+strings.Join(chart.Names, ", "))
	f.Float64Var(&render.width, "width", 0, "container `width` (default chart size)")
	f.Float64Var(&render.height, "height", 0, "container `height` (default chart size)")
	registerSubcommand("render", "draw one chart as SVG or PNG", cmdRender, f)
}

// encoder is a surface encoding function.
type encoder struct {
	contentType string
	write       func(io.Writer, *surface.Scene) error
}

var encoders = map[string]encoder{
	"svg": {"image/svg+xml", surface.WriteSVG},
	"png": {"image/png", surface.WritePNG},
}

var errUnknownFormat = errors.New("unknown format")

func encoderFor(format string) (encoder, error) {
	enc, ok := encoders[format]
	if !ok {
		return encoder{}, fmt.Errorf("%w %q", errUnknownFormat, format)
	}
	return enc, nil
}

// outputFormat returns the format to write: explicit if set, else
// from the extension of out, else svg.
func outputFormat(explicit, out string) string {
	if explicit != "" {
		return explicit
	}
	if ext := strings.TrimPrefix(filepath.Ext(out), "."); ext != "" {
		return strings.ToLower(ext)
	}
	return "svg"
}

func cmdRender(args []string) error {
	path := oneArg(cmdRenderFlags, args)
	format := outputFormat(render.format, render.out)
	enc, err := encoderFor(format)
	if err != nil {
		return err
	}
	if render.out == "-" && format == "png" && terminal.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write PNG to a terminal; use -o")
	}

	ds, err := loadDataset(path)
	if err != nil {
		return err
	}
	d := chart.NewDashboard(dashboardOptions())
	defer d.Close()
	if err := d.Load(ds); err != nil {
		return err
	}
	if err := d.SetBinding(binding()); err != nil {
		return err
	}
	if render.width > 0 || render.height > 0 {
		w, h, err := d.Size(render.chart)
		if err != nil {
			return err
		}
		if render.width > 0 {
			w = render.width
		}
		if render.height > 0 {
			h = render.height
		}
		if err := d.Resize(render.chart, w, h); err != nil {
			return err
		}
	}

	var out io.Writer = os.Stdout
	if render.out != "-" {
		f, err := os.Create(render.out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	bw := bufio.NewWriter(out)
	err = d.View(render.chart, func(s *surface.Scene) error {
		if s.Len() == 0 {
			return fmt.Errorf("%s: nothing to draw", render.chart)
		}
		return enc.write(bw, s)
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}
