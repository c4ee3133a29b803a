// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tipviz/tipcharts/dataset"
	"github.com/tipviz/tipcharts/layout"
	"github.com/tipviz/tipcharts/surface"
)

// Chart names accepted by Dashboard methods.
const (
	Bar     = "bar"
	Scatter = "scatter"
	Matrix  = "matrix"
	Legend  = "legend"
)

// Names lists the drawable surfaces of a Dashboard.
var Names = []string{Bar, Scatter, Matrix, Legend}

// ErrUnknownChart is returned for a chart name not in Names.
var ErrUnknownChart = errors.New("unknown chart")

// DashboardOptions configures the charts of a Dashboard.
type DashboardOptions struct {
	Bar     BarOptions
	Scatter ScatterOptions
	Matrix  MatrixOptions
}

// Dashboard composes a bar chart, a scatterplot and a correlation
// matrix over one dataset. Each chart follows its own layout.Box.
//
// A Dashboard is safe for concurrent use; events are applied one at a
// time.
type Dashboard struct {
	mu      sync.Mutex
	ds      *dataset.Dataset
	binding Binding
	closed  bool

	bar     *BarChart
	scatter *Scatterplot
	matrix  *CorrelationMatrix
	boxes   map[string]*layout.Box
}

// NewDashboard returns a Dashboard with no data and DefaultBinding.
// Every chart's container is mounted at the chart's default size.
func NewDashboard(opts DashboardOptions) *Dashboard {
	d := &Dashboard{
		binding: DefaultBinding,
		bar:     NewBarChart(opts.Bar),
		scatter: NewScatterplot(opts.Scatter),
		matrix:  NewCorrelationMatrix(opts.Matrix),
		boxes:   make(map[string]*layout.Box),
	}
	attach := func(name string, c interface{ Attach(layout.Container) }, w, h float64) {
		box := layout.NewBox()
		box.Mount(w, h)
		d.boxes[name] = box
		c.Attach(box)
	}
	attach(Bar, d.bar, d.bar.opts.Width, d.bar.opts.Height)
	attach(Scatter, d.scatter, d.scatter.opts.Width, d.scatter.opts.Height)
	attach(Matrix, d.matrix, d.matrix.opts.Size, d.matrix.opts.Size)
	return d
}

// Load replaces the dataset and redraws every chart. A binding that
// does not fit the new schema is reset to DefaultBinding.
func (d *Dashboard) Load(ds *dataset.Dataset) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return errClosed
	}
	d.ds = ds
	if d.binding.Validate(ds.Schema()) != nil {
		d.binding = DefaultBinding
	}
	return d.renderAll()
}

// SetBinding changes the X/Y attributes and redraws the bar chart and
// scatterplot.
func (d *Dashboard) SetBinding(b Binding) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return errClosed
	}
	if d.ds != nil {
		if err := b.Validate(d.ds.Schema()); err != nil {
			return err
		}
	}
	d.binding = b
	if _, err := d.bar.Render(d.ds, b); err != nil {
		return err
	}
	_, err := d.scatter.Render(d.ds, b)
	return err
}

// Binding returns the current binding.
func (d *Dashboard) Binding() Binding {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.binding
}

// Schema returns the schema of the loaded dataset.
func (d *Dashboard) Schema() dataset.Schema {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ds.Schema()
}

// Resize resizes the container of the named chart, which redraws it.
// Resizing the legend resizes the matrix it belongs to.
func (d *Dashboard) Resize(name string, w, h float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return errClosed
	}
	box, err := d.box(name)
	if err != nil {
		return err
	}
	box.Resize(w, h)
	return nil
}

// Size returns the container size of the named chart.
func (d *Dashboard) Size(name string) (w, h float64, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	box, err := d.box(name)
	if err != nil {
		return 0, 0, err
	}
	w, h, _ = box.Size()
	return w, h, nil
}

func (d *Dashboard) box(name string) (*layout.Box, error) {
	if name == Legend {
		name = Matrix
	}
	box, ok := d.boxes[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownChart, name)
	}
	return box, nil
}

// RenderAll redraws every chart with the current data and binding.
func (d *Dashboard) RenderAll() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return errClosed
	}
	return d.renderAll()
}

func (d *Dashboard) renderAll() error {
	var errs []error
	if _, err := d.bar.Render(d.ds, d.binding); err != nil {
		errs = append(errs, err)
	}
	if _, err := d.scatter.Render(d.ds, d.binding); err != nil {
		errs = append(errs, err)
	}
	if _, err := d.matrix.Render(d.ds); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// View calls f with the named surface while no event is being
// applied.
func (d *Dashboard) View(name string, f func(*surface.Scene) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	var s *surface.Scene
	switch name {
	case Bar:
		s = d.bar.Scene()
	case Scatter:
		s = d.scatter.Scene()
	case Matrix:
		s = d.matrix.Scene()
	case Legend:
		s = d.matrix.Legend()
	default:
		return fmt.Errorf("%w %q", ErrUnknownChart, name)
	}
	return f(s)
}

// Close tears down every chart. It is safe to call more than once.
func (d *Dashboard) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	return errors.Join(d.bar.Close(), d.scatter.Close(), d.matrix.Close())
}

var errClosed = errors.New("dashboard closed")
