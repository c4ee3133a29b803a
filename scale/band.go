// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Categories returns the distinct values of vals in the order they
// first appear. The result is deliberately not sorted: bar order
// follows the data and is stable across re-renders of the same data.
func Categories(vals []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// Band maps categories to equal-width bands of a pixel range.
type Band struct {
	domain  []string
	index   map[string]int
	r0, r1  float64
	padding float64

	start, step, bandwidth float64
}

// NewBand returns a band scale over domain (which should already be
// distinct) mapping into [r0, r1]. padding is the fraction of each
// step left empty between bands and, on both ends, outside the first
// and last band. The bands are centered in the range.
func NewBand(domain []string, r0, r1, padding float64) *Band {
	b := &Band{
		domain:  append([]string(nil), domain...),
		index:   make(map[string]int, len(domain)),
		r0:      r0,
		r1:      r1,
		padding: padding,
	}
	for i, d := range b.domain {
		b.index[d] = i
	}

	n := float64(len(domain))
	lo, hi := r0, r1
	if hi < lo {
		lo, hi = hi, lo
	}
	b.step = (hi - lo) / math.Max(1, n-padding+2*padding)
	b.start = lo + (hi-lo-b.step*(n-padding))*0.5
	b.bandwidth = b.step * (1 - padding)
	return b
}

// Map returns the pixel start of category c's band. ok is false if c
// is not in the domain.
func (b *Band) Map(c string) (start float64, ok bool) {
	i, ok := b.index[c]
	if !ok {
		return math.NaN(), false
	}
	if b.r1 < b.r0 {
		// Bands run from r0 toward r1.
		i = len(b.domain) - 1 - i
	}
	return b.start + float64(i)*b.step, true
}

// Bandwidth returns the width of each band.
func (b *Band) Bandwidth() float64 { return b.bandwidth }

// Step returns the distance between the starts of adjacent bands.
func (b *Band) Step() float64 { return b.step }

// Domain returns a copy of the categories of b in order.
func (b *Band) Domain() []string { return append([]string(nil), b.domain...) }

func (b *Band) Range() (r0, r1 float64) { return b.r0, b.r1 }

// Ticks returns one tick per category at the center of its band. n
// is ignored.
func (b *Band) Ticks(n int) []Tick {
	ticks := make([]Tick, len(b.domain))
	for i, c := range b.domain {
		start, _ := b.Map(c)
		ticks[i] = Tick{Value: float64(i), Pos: start + b.bandwidth/2, Label: c}
	}
	return ticks
}
