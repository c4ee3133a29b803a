// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"io"

	"github.com/aclements/go-gg/table"
)

// Table returns d as a go-gg table with an "id" column, the
// categorical column, and one float64 column per numeric attribute
// in schema order.
func (d *Dataset) Table() *table.Table {
	ids := make([]int, d.Len())
	for i := range ids {
		ids[i] = d.rows[i].ID
	}

	schema := d.Schema()
	tab := new(table.Builder).Add("id", ids)
	if schema.Category != "" {
		tab.Add(schema.Category, d.Categories())
	}
	for _, attr := range schema.Numeric {
		tab.Add(attr, d.Column(attr))
	}
	return tab.Done()
}

// Fprint writes d to w as an aligned text table.
func Fprint(w io.Writer, d *Dataset) error {
	return table.Fprint(w, d.Table())
}
