// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesFirstSeen(t *testing.T) {
	got := Categories([]string{"Sat", "Thur", "Sat"})
	assert.Equal(t, []string{"Sat", "Thur"}, got)

	got = Categories([]string{"Sun", "Fri", "Sat", "Fri", "Thur", "Sun"})
	assert.Equal(t, []string{"Sun", "Fri", "Sat", "Thur"}, got)

	assert.Nil(t, Categories(nil))
}

func TestBand(t *testing.T) {
	b := NewBand([]string{"a", "b", "c"}, 0, 310, 0.1)

	// step = 310 / (3 + 0.1); bands centered in the range.
	assert.InDelta(t, 100, b.Step(), 1e-9)
	assert.InDelta(t, 90, b.Bandwidth(), 1e-9)

	var starts []float64
	for _, c := range b.Domain() {
		x, ok := b.Map(c)
		require.True(t, ok)
		starts = append(starts, x)
	}
	assert.InDeltaSlice(t, []float64{10, 110, 210}, starts, 1e-9)

	_, ok := b.Map("z")
	assert.False(t, ok)

	ticks := b.Ticks(0)
	require.Len(t, ticks, 3)
	assert.Equal(t, "b", ticks[1].Label)
	assert.InDelta(t, 155, ticks[1].Pos, 1e-9)
}

func TestBandReversed(t *testing.T) {
	fwd := NewBand([]string{"a", "b"}, 0, 100, 0)
	rev := NewBand([]string{"a", "b"}, 100, 0, 0)

	a, _ := fwd.Map("a")
	assert.InDelta(t, 0, a, 1e-9)
	a, _ = rev.Map("a")
	assert.InDelta(t, 50, a, 1e-9)
	assert.InDelta(t, 50, rev.Bandwidth(), 1e-9)
}

func TestBandEmpty(t *testing.T) {
	b := NewBand(nil, 0, 100, 0.1)
	assert.Empty(t, b.Ticks(0))
	assert.False(t, math.IsNaN(b.Bandwidth()))
}

func TestLinear(t *testing.T) {
	l, err := NewLinear(10, 20, 0, 300)
	require.NoError(t, err)
	assert.InDelta(t, 0, l.Map(10), 1e-9)
	assert.InDelta(t, 150, l.Map(15), 1e-9)
	assert.InDelta(t, 300, l.Map(20), 1e-9)
	assert.InDelta(t, 15, l.Invert(150), 1e-9)

	// Inverted Y range: larger values draw higher.
	y, err := NewLinear(1, 2, 400, 0)
	require.NoError(t, err)
	assert.InDelta(t, 400, y.Map(1), 1e-9)
	assert.InDelta(t, 0, y.Map(2), 1e-9)
	assert.Greater(t, y.Map(1.2), y.Map(1.8))
}

func TestLinearDegenerate(t *testing.T) {
	for _, d := range [][2]float64{{0, 0}, {2, 1}, {math.NaN(), 1}, {0, math.Inf(1)}} {
		_, err := NewLinear(d[0], d[1], 0, 100)
		assert.True(t, errors.Is(err, ErrDegenerateDomain), "domain %v", d)
	}
}

func TestLinearNice(t *testing.T) {
	l, err := NewLinear(0, 3.31, 300, 0)
	require.NoError(t, err)
	l.Nice(0)
	lo, hi := l.Domain()
	assert.Equal(t, 0.0, lo)
	assert.GreaterOrEqual(t, hi, 3.31)
	assert.Less(t, hi, 5.0)
}

func TestLinearTicks(t *testing.T) {
	l, err := NewLinear(0, 2, 300, 0)
	require.NoError(t, err)
	ticks := l.Ticks(0)
	require.True(t, len(ticks) >= 2 && len(ticks) <= 10, "got %d ticks", len(ticks))

	first, last := ticks[0], ticks[len(ticks)-1]
	assert.InDelta(t, 0, first.Value, 1e-9)
	assert.InDelta(t, 300, first.Pos, 1e-9)
	assert.InDelta(t, 2, last.Value, 1e-9)
	assert.InDelta(t, 0, last.Pos, 1e-6)
	for i := 1; i < len(ticks); i++ {
		assert.Greater(t, ticks[i].Value, ticks[i-1].Value)
		assert.Less(t, ticks[i].Pos, ticks[i-1].Pos)
	}

	few := l.Ticks(3)
	assert.LessOrEqual(t, len(few), 3)
}

func TestFormatTicks(t *testing.T) {
	assert.Equal(t, []string{"0.0", "0.5", "1.0"}, formatTicks([]float64{0, 0.5, 1}))
	assert.Equal(t, []string{"0", "5", "10"}, formatTicks([]float64{0, 5, 10}))
	assert.Equal(t, []string{"0.00", "0.05"}, formatTicks([]float64{0, 0.05}))
	assert.Equal(t, []string{"0.1", "0.2"}, formatTicks([]float64{0.1, 0.2}))
	assert.Equal(t, []string{"0"}, formatTicks([]float64{math.Copysign(0, -1)}))
}

func TestExtent(t *testing.T) {
	lo, hi, ok := Extent([]float64{3, math.NaN(), 7, 2, math.Inf(1)})
	require.True(t, ok)
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 7.0, hi)

	_, _, ok = Extent([]float64{math.NaN()})
	assert.False(t, ok)

	max, ok := Max([]float64{1, 2})
	assert.True(t, ok)
	assert.Equal(t, 2.0, max)
}
