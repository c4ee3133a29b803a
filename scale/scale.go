// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data values to pixel coordinates.
//
// A Band scale maps an ordered set of categories to contiguous,
// padded pixel intervals. A Linear scale maps a continuous numeric
// domain to a continuous pixel range. Y ranges are passed inverted
// (r0 = height, r1 = 0) so larger values draw higher.
package scale

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrDegenerateDomain is returned when a numeric domain is empty,
// not finite, or has lo >= hi.
var ErrDegenerateDomain = errors.New("degenerate domain")

// A Scale is a mapping from some domain to a pixel range that can
// produce axis ticks.
type Scale interface {
	// Range returns the output interval of the scale.
	Range() (r0, r1 float64)

	// Ticks returns at most about n ticks in increasing domain
	// order. If n <= 0, the scale picks its natural count.
	Ticks(n int) []Tick
}

// Tick is a labeled position on a scale.
type Tick struct {
	// Value is the domain value of the tick. For band scales it
	// is the index of the category.
	Value float64

	// Pos is the pixel position of the tick.
	Pos float64

	Label string
}

// Extent returns the minimum and maximum finite values in xs. ok is
// false if xs has no finite values.
func Extent(xs []float64) (lo, hi float64, ok bool) {
	finite := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			finite = append(finite, x)
		}
	}
	if len(finite) == 0 {
		return 0, 0, false
	}
	lo, hi = stats.Bounds(finite)
	return lo, hi, true
}

// Max returns the maximum finite value in xs.
func Max(xs []float64) (float64, bool) {
	_, hi, ok := Extent(xs)
	return hi, ok
}

var printer = message.NewPrinter(language.English)

// formatTicks labels values using a fixed precision derived from
// their spacing, grouping thousands.
func formatTicks(values []float64) []string {
	step := 1.0
	if len(values) >= 2 {
		step = math.Abs(values[1] - values[0])
	}
	prec := 0
	if step > 0 {
		// The epsilon keeps exact powers of ten (0.1, 0.01) from
		// gaining a digit to floating-point error.
		prec = int(-math.Floor(math.Log10(step) + 1e-9))
		if prec < 0 {
			prec = 0
		}
	}
	format := fmt.Sprintf("%%.%df", prec)
	labels := make([]string, len(values))
	for i, v := range values {
		if v == 0 {
			// Avoid "-0".
			v = 0
		}
		labels[i] = printer.Sprintf(format, v)
	}
	return labels
}
