// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corr

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tipviz/tipcharts/dataset"
)

var attrs = []string{"total_bill", "tip", "size"}

func row(bill, tip, size float64) dataset.Row {
	return dataset.Row{Category: "Sun", Values: map[string]float64{
		"total_bill": bill, "tip": tip, "size": size,
	}}
}

func TestComputeMeanProduct(t *testing.T) {
	rows := []dataset.Row{row(10, 1, 2), row(20, 2, 4)}
	m, err := Compute(rows, attrs, MeanProduct)
	require.NoError(t, err)

	require.Len(t, m.Cells, 9)
	assert.Equal(t, 2, m.Rows)
	assert.Equal(t, 0, m.Dropped)
	for i := range attrs {
		assert.Equal(t, 1.0, m.At(i, i).Value)
	}
	// mean(10*1, 20*2) = 25
	assert.InDelta(t, 25, m.At(0, 1).Value, 1e-12)
	assert.InDelta(t, 25, m.At(1, 0).Value, 1e-12)
	// mean(1*2, 2*4) = 5
	assert.InDelta(t, 5, m.At(1, 2).Value, 1e-12)

	c := m.At(2, 0)
	assert.Equal(t, "size", c.RowAttr)
	assert.Equal(t, "total_bill", c.ColAttr)
}

func TestComputeDropsRowsWholesale(t *testing.T) {
	// size = "abc" parses to NaN; the row's bill and tip must not
	// contribute either.
	rows := []dataset.Row{row(10, 1, 2), row(1000, 1000, math.NaN()), row(20, 2, 4)}
	m, err := Compute(rows, attrs, MeanProduct)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows)
	assert.Equal(t, 1, m.Dropped)
	assert.InDelta(t, 25, m.At(0, 1).Value, 1e-12)
}

func TestComputeNoData(t *testing.T) {
	_, err := Compute(nil, attrs, MeanProduct)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = Compute([]dataset.Row{row(math.NaN(), 1, 1)}, attrs, MeanProduct)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = Compute([]dataset.Row{row(1, 1, 1)}, nil, MeanProduct)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestComputePearson(t *testing.T) {
	rows := []dataset.Row{row(1, 2, 3), row(2, 4, 1), row(3, 6, 2)}
	m, err := Compute(rows, attrs, Pearson)
	require.NoError(t, err)
	assert.Equal(t, Pearson, m.Method)
	assert.InDelta(t, 1, m.At(0, 1).Value, 1e-12)
	assert.InDelta(t, -0.5, m.At(0, 2).Value, 1e-12)
	assert.Equal(t, 1.0, m.At(2, 2).Value)

	// No variance: undefined.
	m, err = Compute([]dataset.Row{row(1, 5, 1), row(2, 5, 2)}, attrs, Pearson)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(m.At(0, 1).Value))
}

func TestClean(t *testing.T) {
	cols, dropped := Clean([]dataset.Row{row(1, 2, 3), row(1, math.Inf(1), 3)}, []string{"tip", "size"})
	assert.Equal(t, 1, dropped)
	assert.Equal(t, [][]float64{{2}, {3}}, cols)
}

func TestEncodingTies(t *testing.T) {
	m := &Matrix{Attrs: []string{"a", "b"}, Cells: []Cell{
		{Value: 1}, {Value: 0.5},
		{Value: 0.5}, {Value: 1},
	}}
	e := NewEncoding(m, nil)
	assert.Equal(t, []float64{1, 0.5}, e.Values())
	assert.Equal(t, Category10[0], e.Color(1))
	assert.Equal(t, Category10[1], e.Color(0.5))
	assert.Equal(t, e.Color(m.At(0, 1).Value), e.Color(m.At(1, 0).Value))
}

func TestEncodingCanonical(t *testing.T) {
	m := &Matrix{Attrs: []string{"a", "b"}, Cells: []Cell{
		{Value: math.NaN()}, {Value: 0},
		{Value: math.Copysign(0, -1)}, {Value: math.NaN()},
	}}
	e := NewEncoding(m, nil)
	assert.Len(t, e.Values(), 2)
	assert.Equal(t, e.Color(math.NaN()), e.Color(math.NaN()))
	assert.Equal(t, e.Color(0), e.Color(math.Copysign(0, -1)))
}

func TestEncodingWraps(t *testing.T) {
	pal := []color.Color{color.Black, color.White}
	m := &Matrix{Attrs: []string{"a", "b"}, Cells: []Cell{
		{Value: 1}, {Value: 2}, {Value: 3}, {Value: 4},
	}}
	e := NewEncoding(m, pal)
	assert.Equal(t, color.Black, e.Color(1))
	assert.Equal(t, color.White, e.Color(2))
	assert.Equal(t, color.Black, e.Color(3))

	// Unseen values extend the domain.
	assert.Equal(t, color.Black, e.Color(99))
	assert.Len(t, e.Values(), 5)
}

func TestTextColor(t *testing.T) {
	assert.InDelta(t, 100, Lightness(color.White), 1e-6)
	assert.InDelta(t, 0, Lightness(color.Black), 1e-6)
	assert.Equal(t, color.Black, TextColor(color.White))
	assert.Equal(t, color.White, TextColor(color.Black))
	// Dark blue gets white text.
	assert.Equal(t, color.White, TextColor(Category10[0]))
}

func TestLegend(t *testing.T) {
	l, err := NewLegend(300)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, l.Map(0))
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, l.Map(1))
	require.NotEmpty(t, l.Ticks)
	assert.LessOrEqual(t, len(l.Ticks), 6)
	assert.InDelta(t, 0, l.Ticks[0].Value, 1e-9)
	assert.InDelta(t, 1, l.Ticks[len(l.Ticks)-1].Value, 1e-9)
	assert.InDelta(t, 300, l.Ticks[len(l.Ticks)-1].Pos, 1e-9)

	stops := l.Stops(3)
	require.Len(t, stops, 3)
	assert.Equal(t, l.Map(0), stops[0])
	assert.Equal(t, l.Map(1), stops[2])
}

func TestLegendIsContinuous(t *testing.T) {
	l, err := NewLegend(300)
	require.NoError(t, err)

	mid := l.Map(0.5).(color.RGBA)
	assert.InDelta(t, 128, mid.R, 1)
	assert.Equal(t, mid.R, mid.G)
	assert.Equal(t, mid.R, mid.B)
	assert.Equal(t, uint8(0xff), mid.A)

	quarter := l.Map(0.25).(color.RGBA)
	assert.InDelta(t, 191, quarter.R, 1)

	// Each stop is strictly darker than the one before.
	stops := l.Stops(11)
	require.Len(t, stops, 11)
	for i := 1; i < len(stops); i++ {
		prev, cur := stops[i-1].(color.RGBA), stops[i].(color.RGBA)
		assert.Less(t, cur.R, prev.R, "stop %d", i)
		assert.Less(t, Lightness(cur), Lightness(prev), "stop %d", i)
	}
}
