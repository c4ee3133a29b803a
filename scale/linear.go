// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
)

// naturalTicks is the tick count used when the caller has no density
// target.
const naturalTicks = 10

// Linear maps the numeric domain [lo, hi] linearly onto [r0, r1].
type Linear struct {
	s      scale.Linear
	r0, r1 float64
}

// NewLinear returns a linear scale from [lo, hi] to [r0, r1]. lo must
// be strictly less than hi and both must be finite; otherwise the
// error wraps ErrDegenerateDomain.
func NewLinear(lo, hi, r0, r1 float64) (*Linear, error) {
	if !isFinite(lo) || !isFinite(hi) || !(lo < hi) {
		return nil, fmt.Errorf("%w [%g, %g]", ErrDegenerateDomain, lo, hi)
	}
	return &Linear{s: scale.Linear{Min: lo, Max: hi}, r0: r0, r1: r1}, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Map returns the pixel coordinate of v. Values outside the domain
// extrapolate linearly.
func (l *Linear) Map(v float64) float64 {
	return l.r0 + l.s.Map(v)*(l.r1-l.r0)
}

// Invert returns the domain value at pixel coordinate px.
func (l *Linear) Invert(px float64) float64 {
	if l.r0 == l.r1 {
		return l.s.Min
	}
	return l.s.Unmap((px - l.r0) / (l.r1 - l.r0))
}

// Domain returns the (possibly niced) input interval.
func (l *Linear) Domain() (lo, hi float64) { return l.s.Min, l.s.Max }

func (l *Linear) Range() (r0, r1 float64) { return l.r0, l.r1 }

// Nice extends the domain outward to round values at the tick
// spacing for about count ticks. count <= 0 uses the natural count.
// It returns l.
func (l *Linear) Nice(count int) *Linear {
	if count <= 0 {
		count = naturalTicks
	}
	l.s.Nice(scale.TickOptions{Max: count})
	return l
}

func (l *Linear) Ticks(n int) []Tick {
	if n <= 0 {
		n = naturalTicks
	}
	major, _ := l.s.Ticks(scale.TickOptions{Max: n})
	labels := formatTicks(major)
	ticks := make([]Tick, len(major))
	for i, v := range major {
		ticks[i] = Tick{Value: v, Pos: l.Map(v), Label: labels[i]}
	}
	return ticks
}
