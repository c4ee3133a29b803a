// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMargins = Margins{Top: 20, Right: 20, Bottom: 30, Left: 40}

func TestCompute(t *testing.T) {
	g := Compute(testMargins, 400, 400)
	assert.Equal(t, 340.0, g.Width)
	assert.Equal(t, 350.0, g.Height)
	assert.Equal(t, 400.0, g.OuterWidth())
	assert.Equal(t, 400.0, g.OuterHeight())

	// Smaller than the margins: clamp, never negative.
	g = Compute(testMargins, 30, 10)
	assert.Equal(t, 0.0, g.Width)
	assert.Equal(t, 0.0, g.Height)
}

func TestConfigModes(t *testing.T) {
	g := Config{Margins: testMargins, Mode: TrackHeight, Width: 400}.Geometry(900, 200)
	assert.Equal(t, 340.0, g.Width)
	assert.Equal(t, 150.0, g.Height)

	g = Config{Margins: testMargins, Mode: TrackBoth}.Geometry(900, 200)
	assert.Equal(t, 840.0, g.Width)
	assert.Equal(t, 150.0, g.Height)

	g = Config{Mode: TrackSquare}.Geometry(900, 200)
	assert.Equal(t, 200.0, g.Width)
	assert.Equal(t, 200.0, g.Height)
}

func TestManagerLifecycle(t *testing.T) {
	box := NewBox()
	var got []Geometry
	m := NewManager(box, Config{Margins: testMargins, Mode: TrackBoth}, func(g Geometry) {
		got = append(got, g)
	})

	// Not mounted: activation is a no-op apart from subscribing.
	m.Activate()
	assert.True(t, m.Active())
	assert.Empty(t, got)
	_, err := m.Geometry()
	assert.True(t, errors.Is(err, ErrNotMounted))
	assert.Equal(t, 1, box.Listeners())

	box.Mount(400, 400)
	require.Len(t, got, 1)
	assert.Equal(t, 350.0, got[0].Height)

	box.Resize(400, 200)
	require.Len(t, got, 2)
	assert.Equal(t, 150.0, got[1].Height)
	g, err := m.Geometry()
	require.NoError(t, err)
	assert.Equal(t, got[1], g)

	// Activate is idempotent.
	m.Activate()
	assert.Equal(t, 1, box.Listeners())

	m.Deactivate()
	m.Deactivate()
	assert.False(t, m.Active())
	assert.Equal(t, 0, box.Listeners())
	box.Resize(800, 800)
	assert.Len(t, got, 2)
}

func TestManagerActivateMounted(t *testing.T) {
	box := NewBox()
	box.Mount(600, 500)

	var got []Geometry
	m := NewManager(box, Config{Mode: TrackSquare}, func(g Geometry) { got = append(got, g) })
	m.Activate()
	require.Len(t, got, 1)
	assert.Equal(t, 500.0, got[0].Width)
	m.Deactivate()
}

func TestBoxUnmounted(t *testing.T) {
	box := NewBox()
	calls := 0
	cancel := box.OnResize(func(w, h float64) { calls++ })
	defer cancel()

	box.Resize(10, 10)
	assert.Equal(t, 0, calls)
	_, _, mounted := box.Size()
	assert.False(t, mounted)

	box.Mount(20, 20)
	assert.Equal(t, 1, calls)
	box.Unmount()
	box.Resize(30, 30)
	assert.Equal(t, 1, calls)

	cancel()
	cancel()
	assert.Equal(t, 0, box.Listeners())
}
