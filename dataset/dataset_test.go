// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tipsCSV = `total_bill,tip,sex,smoker,day,time,size
16.99,1.01,Female,No,Sun,Dinner,2
10.34,1.66,Male,No,Sun,Dinner,3
21.01,3.5,Male,No,Sat,Dinner,3
23.68,3.31,Male,No,Thur,Lunch,2.7
`

func TestReadCSV(t *testing.T) {
	d, err := ReadCSV(strings.NewReader(tipsCSV), Tips)
	require.NoError(t, err)
	require.Equal(t, 4, d.Len())

	assert.Equal(t, []string{"Sun", "Sun", "Sat", "Thur"}, d.Categories())
	assert.Equal(t, []float64{1.01, 1.66, 3.5, 3.31}, d.Column("tip"))
	// Integer attributes are truncated.
	assert.Equal(t, []float64{2, 3, 3, 2}, d.Column("size"))

	for i, r := range d.Rows() {
		assert.Equal(t, i+1, r.ID)
	}
}

func TestReadCSVMalformed(t *testing.T) {
	const in = "day,tip,total_bill,size\nSun,1.0,10.0,abc\nSat,,20.0,2\nFri,2.0,30.0\n"
	d, err := ReadCSV(strings.NewReader(in), Tips)
	require.NoError(t, err)
	require.Equal(t, 3, d.Len())

	assert.True(t, math.IsNaN(d.Row(0).Value("size")))
	assert.Equal(t, 1.0, d.Row(0).Value("tip"))
	assert.True(t, math.IsNaN(d.Row(1).Value("tip")))
	// Short rows read as missing fields.
	assert.True(t, math.IsNaN(d.Row(2).Value("size")))

	assert.False(t, d.Row(0).Finite("tip", "size"))
	assert.True(t, d.Row(0).Finite("tip", "total_bill"))
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), Tips)
	assert.True(t, errors.Is(err, ErrNoHeader))

	_, err = ReadCSV(strings.NewReader("day,tip,size\nSun,1,2\n"), Tips)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), "total_bill")
}

func TestNewCopiesRows(t *testing.T) {
	rows := []Row{
		{Category: "Sun", Values: map[string]float64{"tip": 1}},
		{ID: 7, Category: "Sat", Values: map[string]float64{"tip": 2}},
	}
	d := New(Tips, rows)
	rows[0].Values["tip"] = 100

	assert.Equal(t, 1.0, d.Row(0).Value("tip"))
	assert.Equal(t, 1, d.Row(0).ID)
	assert.Equal(t, 7, d.Row(1).ID)
}

func TestNilDataset(t *testing.T) {
	var d *Dataset
	assert.Equal(t, 0, d.Len())
	assert.Nil(t, d.Rows())
	assert.Empty(t, d.Column("tip"))
	assert.Equal(t, Schema{}, d.Schema())
	assert.Empty(t, d.Categories())

	// Row behaves as on an empty Dataset: an index error, not a nil
	// dereference.
	const outOfRange = "runtime error: index out of range [0] with length 0"
	assert.PanicsWithError(t, outOfRange, func() { d.Row(0) })
	assert.PanicsWithError(t, outOfRange, func() { New(Tips, nil).Row(0) })
}

func TestFprint(t *testing.T) {
	d, err := ReadCSV(strings.NewReader(tipsCSV), Tips)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, d))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"id", "day", "total_bill", "tip", "size"}, strings.Fields(lines[0]))
	assert.Equal(t, "Thur", strings.Fields(lines[4])[1])
}
