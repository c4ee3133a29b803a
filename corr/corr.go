// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corr computes pairwise association matrices over numeric
// attributes and the colors used to draw them.
package corr

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/tipviz/tipcharts/dataset"
	"github.com/tipviz/tipcharts/internal/logging"
)

// ErrNoData is returned by Compute when there are no attributes or
// no row survives cleaning.
var ErrNoData = errors.New("no complete rows")

// Method is the pairwise statistic computed for off-diagonal cells.
type Method int

const (
	// MeanProduct is the mean of the raw products x*y, with no
	// centering or normalization. It is the default.
	MeanProduct Method = iota

	// Pearson is the sample Pearson correlation coefficient.
	Pearson
)

func (m Method) String() string {
	switch m {
	case MeanProduct:
		return "mean-product"
	case Pearson:
		return "pearson"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Cell is one entry of a Matrix.
type Cell struct {
	Row, Col         int
	RowAttr, ColAttr string
	Value            float64
}

// Matrix is a square matrix of cells over Attrs.
type Matrix struct {
	Attrs  []string
	Method Method

	// Cells holds len(Attrs)^2 cells in row-major order.
	Cells []Cell

	// Rows is the number of rows used. Dropped is the number of
	// input rows discarded by Clean.
	Rows, Dropped int
}

// At returns the cell in row i, column j.
func (m *Matrix) At(i, j int) Cell {
	return m.Cells[i*len(m.Attrs)+j]
}

// Clean returns the values of attrs for each row in which every one
// of them is finite. A row with any invalid value is dropped
// entirely. cols[k] holds the surviving values of attrs[k].
func Clean(rows []dataset.Row, attrs []string) (cols [][]float64, dropped int) {
	cols = make([][]float64, len(attrs))
	for _, r := range rows {
		if !r.Finite(attrs...) {
			dropped++
			continue
		}
		for k, a := range attrs {
			cols[k] = append(cols[k], r.Value(a))
		}
	}
	return cols, dropped
}

// Compute returns the matrix of method over attrs for rows. Diagonal
// cells are exactly 1.
func Compute(rows []dataset.Row, attrs []string, method Method) (*Matrix, error) {
	if len(attrs) == 0 {
		return nil, fmt.Errorf("%w: no attributes", ErrNoData)
	}
	cols, dropped := Clean(rows, attrs)
	n := len(cols[0])
	if dropped > 0 {
		logging.Logger().Debug("dropped incomplete rows", "dropped", dropped, "kept", n)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %d of %d rows dropped", ErrNoData, dropped, len(rows))
	}

	m := &Matrix{
		Attrs:   append([]string(nil), attrs...),
		Method:  method,
		Cells:   make([]Cell, 0, len(attrs)*len(attrs)),
		Rows:    n,
		Dropped: dropped,
	}
	for i, ra := range attrs {
		for j, ca := range attrs {
			v := 1.0
			if i != j {
				switch method {
				case Pearson:
					v = pearson(cols[i], cols[j])
				default:
					v = meanProduct(cols[i], cols[j])
				}
			}
			m.Cells = append(m.Cells, Cell{Row: i, Col: j, RowAttr: ra, ColAttr: ca, Value: v})
		}
	}
	return m, nil
}

func meanProduct(xs, ys []float64) float64 {
	prod := make([]float64, len(xs))
	for i := range xs {
		prod[i] = xs[i] * ys[i]
	}
	return stats.Mean(prod)
}

// pearson returns the sample correlation of xs and ys, or NaN if
// either has no variance.
func pearson(xs, ys []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	mx, my := stats.Mean(xs), stats.Mean(ys)
	sx, sy := stats.StdDev(xs), stats.StdDev(ys)
	if sx == 0 || sy == 0 {
		return math.NaN()
	}
	var cov float64
	for i := range xs {
		cov += (xs[i] - mx) * (ys[i] - my)
	}
	cov /= float64(len(xs) - 1)
	return cov / (sx * sy)
}
