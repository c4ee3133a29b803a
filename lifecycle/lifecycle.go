// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lifecycle keeps a chart's drawing on a surface consistent
// with the chart's latest frame.
//
// A Controller remembers every primitive it has drawn by key. Each
// Render compares the new Frame with that record and applies the
// difference to the surface: keys missing from the frame are removed
// (exit), new keys are created (enter), and surviving keys whose
// primitive changed are rewritten (update). The result depends only
// on the frame, never on the history of renders that led to it.
package lifecycle

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tipviz/tipcharts/axis"
	"github.com/tipviz/tipcharts/internal/logging"
	"github.com/tipviz/tipcharts/surface"
)

var (
	// ErrDegenerate marks input that cannot produce a drawing:
	// no rows, a degenerate domain, or a missing layout. A build
	// function returning an error that wraps ErrDegenerate makes
	// Render a no-op.
	ErrDegenerate = errors.New("degenerate input")

	// ErrDuplicateAxis is returned for a frame with more than one
	// axis on the same edge.
	ErrDuplicateAxis = errors.New("duplicate axis")

	// ErrDuplicateKey is returned for a frame that uses a key
	// twice.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrTornDown is returned by Render after Teardown.
	ErrTornDown = errors.New("chart torn down")
)

// State is the drawing state of a Controller.
type State int

const (
	Uninitialized State = iota
	Rendered
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Rendered:
		return "rendered"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// AxisBlock is the drawing of one axis.
type AxisBlock struct {
	Edge  axis.Edge
	Items []surface.Item
}

// Frame is everything a chart draws for one render.
type Frame struct {
	// Width and Height are the outer size of the surface. If
	// both are zero the surface is not resized.
	Width, Height float64

	Marks []surface.Item
	Axes  []AxisBlock
}

// items flattens f into paint order: marks first, then axes.
func (f Frame) items() ([]surface.Item, error) {
	edges := make(map[axis.Edge]bool)
	n := len(f.Marks)
	for _, a := range f.Axes {
		if edges[a.Edge] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAxis, a.Edge)
		}
		edges[a.Edge] = true
		n += len(a.Items)
	}

	out := make([]surface.Item, 0, n)
	out = append(out, f.Marks...)
	for _, a := range f.Axes {
		out = append(out, a.Items...)
	}

	keys := make(map[string]bool, len(out))
	for _, it := range out {
		if keys[it.Key] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, it.Key)
		}
		keys[it.Key] = true
	}
	return out, nil
}

// Result summarizes one Render.
type Result struct {
	// Skipped is set if the build reported degenerate input and
	// nothing was drawn.
	Skipped bool

	Created, Updated, Removed int
}

// Controller owns the primitives one chart has drawn on a surface.
// It is not safe for concurrent use.
type Controller struct {
	s      surface.Surface
	state  State
	drawn  map[string]surface.Primitive
	w, h   float64
	closed bool
}

// New returns an Uninitialized Controller drawing on s.
func New(s surface.Surface) *Controller {
	return &Controller{s: s, drawn: make(map[string]surface.Primitive)}
}

// State returns the current state of c.
func (c *Controller) State() State {
	return c.state
}

// Keys returns the keys c has drawn, sorted.
func (c *Controller) Keys() []string {
	keys := make([]string, 0, len(c.drawn))
	for k := range c.drawn {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render calls build and reconciles the surface with the frame it
// returns.
//
// If build fails with an error wrapping ErrDegenerate, Render logs it
// and returns a Skipped result with a nil error; the surface is left
// exactly as it was. Any other build error, and any frame that fails
// validation, is returned before the surface is touched.
func (c *Controller) Render(build func() (Frame, error)) (Result, error) {
	if c.closed {
		return Result{}, ErrTornDown
	}
	f, err := build()
	if err != nil {
		if errors.Is(err, ErrDegenerate) {
			logging.Logger().Debug("render skipped", "err", err, "state", c.state)
			return Result{Skipped: true}, nil
		}
		return Result{}, err
	}
	want, err := f.items()
	if err != nil {
		return Result{}, err
	}

	if (f.Width != 0 || f.Height != 0) && (f.Width != c.w || f.Height != c.h) {
		c.s.Resize(f.Width, f.Height)
		c.w, c.h = f.Width, f.Height
	}

	var res Result
	inFrame := make(map[string]bool, len(want))
	for _, it := range want {
		inFrame[it.Key] = true
	}

	// Exit.
	for _, k := range c.Keys() {
		if inFrame[k] {
			continue
		}
		if err := c.s.Remove(k); err != nil {
			return res, err
		}
		delete(c.drawn, k)
		res.Removed++
	}

	// Enter.
	for _, it := range want {
		if _, ok := c.drawn[it.Key]; ok {
			continue
		}
		if err := c.s.Create(it.Key, it.Primitive); err != nil {
			return res, err
		}
		c.drawn[it.Key] = it.Primitive
		res.Created++
	}

	// Update. Entered keys compare equal to themselves here.
	for _, it := range want {
		if c.drawn[it.Key].Equal(it.Primitive) {
			continue
		}
		if err := c.s.Update(it.Key, it.Primitive); err != nil {
			return res, err
		}
		c.drawn[it.Key] = it.Primitive
		res.Updated++
	}

	c.state = Rendered
	return res, nil
}

// Clear removes everything c has drawn and returns it to
// Uninitialized.
func (c *Controller) Clear() error {
	for _, k := range c.Keys() {
		if err := c.s.Remove(k); err != nil {
			return err
		}
		delete(c.drawn, k)
	}
	c.state = Uninitialized
	return nil
}

// Teardown clears c and makes every later Render fail with
// ErrTornDown. It is safe to call more than once.
func (c *Controller) Teardown() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.Clear()
}
