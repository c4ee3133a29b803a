// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset holds the read-only row collection every chart is
// drawn from.
//
// A Dataset is built once (usually by ReadCSV) and never mutated
// afterwards. Charts receive it by pointer and only read from it.
package dataset

import (
	"math"
)

// Schema describes the fixed shape of a Row: one categorical
// attribute and an ordered list of numeric attributes.
type Schema struct {
	// Category is the name of the categorical column.
	Category string

	// Numeric lists the numeric columns in display order.
	Numeric []string

	// Integer lists the numeric columns whose values are
	// truncated to integers at ingestion.
	Integer []string
}

// Tips is the schema of the restaurant tips dataset.
var Tips = Schema{
	Category: "day",
	Numeric:  []string{"total_bill", "tip", "size"},
	Integer:  []string{"size"},
}

// HasNumeric reports whether attr is one of s's numeric attributes.
func (s Schema) HasNumeric(attr string) bool {
	for _, a := range s.Numeric {
		if a == attr {
			return true
		}
	}
	return false
}

// IsInteger reports whether attr is parsed as an integer.
func (s Schema) IsInteger(attr string) bool {
	for _, a := range s.Integer {
		if a == attr {
			return true
		}
	}
	return false
}

// Row is one observation.
type Row struct {
	// ID identifies the row across re-renders. Two rows with the
	// same ID are the same observation.
	ID int

	// Category is the value of the schema's categorical column.
	Category string

	// Values maps numeric attribute names to values. A value may
	// be NaN if it could not be parsed.
	Values map[string]float64
}

// Value returns r's value for attr, or NaN if r has no such value.
func (r Row) Value(attr string) float64 {
	v, ok := r.Values[attr]
	if !ok {
		return math.NaN()
	}
	return v
}

// Finite reports whether all of attrs have finite values in r.
func (r Row) Finite(attrs ...string) bool {
	for _, a := range attrs {
		v := r.Value(a)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Dataset is an ordered, read-only sequence of rows.
//
// A nil *Dataset is valid and empty.
type Dataset struct {
	schema Schema
	rows   []Row
}

// New returns a Dataset holding copies of rows. Rows with a zero ID
// are assigned their 1-based position in rows.
func New(schema Schema, rows []Row) *Dataset {
	d := &Dataset{schema: schema, rows: make([]Row, len(rows))}
	for i, r := range rows {
		vals := make(map[string]float64, len(r.Values))
		for k, v := range r.Values {
			vals[k] = v
		}
		if r.ID == 0 {
			r.ID = i + 1
		}
		r.Values = vals
		d.rows[i] = r
	}
	return d
}

// Schema returns d's schema.
func (d *Dataset) Schema() Schema {
	if d == nil {
		return Schema{}
	}
	return d.schema
}

// Len returns the number of rows in d.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// Row returns the i'th row of d. Its Values map must not be
// modified. Row panics if i is out of range, which for a nil or
// empty Dataset is every i.
func (d *Dataset) Row(i int) Row {
	var rows []Row
	if d != nil {
		rows = d.rows
	}
	return rows[i]
}

// Rows returns the rows of d in order. The returned slice is a copy,
// but the rows' Values maps are shared and must not be modified.
func (d *Dataset) Rows() []Row {
	if d == nil {
		return nil
	}
	return append([]Row(nil), d.rows...)
}

// Categories returns the categorical column of d in row order.
func (d *Dataset) Categories() []string {
	out := make([]string, d.Len())
	for i := range out {
		out[i] = d.rows[i].Category
	}
	return out
}

// Column returns the values of numeric attribute attr in row order.
func (d *Dataset) Column(attr string) []float64 {
	out := make([]float64, d.Len())
	for i := range out {
		out[i] = d.rows[i].Value(attr)
	}
	return out
}
