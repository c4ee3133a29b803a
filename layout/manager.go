// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math"
	"sync"

	"github.com/tipviz/tipcharts/internal/logging"
)

// Mode selects which container dimensions a Manager follows.
type Mode int

const (
	// TrackHeight follows the container's height and keeps a
	// fixed outer width.
	TrackHeight Mode = iota

	// TrackBoth follows the container's width and height.
	TrackBoth

	// TrackSquare uses a square of the container's smaller
	// dimension.
	TrackSquare
)

// Config configures a Manager.
type Config struct {
	Margins Margins
	Mode    Mode

	// Width is the outer width used in TrackHeight mode.
	Width float64
}

// Geometry returns the geometry for a container of size w by h.
func (c Config) Geometry(w, h float64) Geometry {
	switch c.Mode {
	case TrackHeight:
		w = c.Width
	case TrackSquare:
		w = math.Min(w, h)
		h = w
	}
	return Compute(c.Margins, w, h)
}

// Manager publishes a chart's Geometry whenever its Container is
// resized.
//
// Activate and Deactivate bracket the subscription: the listener
// exists exactly between them, whichever way the owner shuts down.
type Manager struct {
	c       Container
	cfg     Config
	publish func(Geometry)

	mu     sync.Mutex
	cancel func()
	geom   Geometry
	valid  bool
}

// NewManager returns an inactive Manager for c. publish is called
// with each new Geometry.
func NewManager(c Container, cfg Config, publish func(Geometry)) *Manager {
	return &Manager{c: c, cfg: cfg, publish: publish}
}

// Activate publishes the container's current geometry if it is
// mounted and subscribes to resizes. Activating an active Manager
// does nothing.
func (m *Manager) Activate() {
	m.mu.Lock()
	if m.cancel != nil {
		m.mu.Unlock()
		return
	}
	m.cancel = m.c.OnResize(m.resized)
	m.mu.Unlock()

	if w, h, ok := m.c.Size(); ok {
		m.resized(w, h)
	} else {
		logging.Logger().Debug("container not mounted; waiting for resize")
	}
}

// Deactivate releases the resize subscription. It is safe to call
// on an inactive Manager and more than once.
func (m *Manager) Deactivate() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.valid = false
	m.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Active reports whether m holds a resize subscription.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancel != nil
}

// Geometry returns the last published geometry, or ErrNotMounted if
// nothing has been published since activation.
func (m *Manager) Geometry() (Geometry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.valid {
		return Geometry{}, ErrNotMounted
	}
	return m.geom, nil
}

func (m *Manager) resized(w, h float64) {
	g := m.cfg.Geometry(w, h)
	m.mu.Lock()
	if m.cancel == nil {
		// Raced with Deactivate.
		m.mu.Unlock()
		return
	}
	m.geom, m.valid = g, true
	m.mu.Unlock()

	if m.publish != nil {
		m.publish(g)
	}
}
