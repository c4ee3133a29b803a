// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tipviz/tipcharts/internal/logging"
)

var (
	// ErrNoHeader is returned by ReadCSV for input without a
	// header line.
	ErrNoHeader = errors.New("no header line")

	// ErrMissingColumn is returned by ReadCSV if the header does
	// not name every column of the schema.
	ErrMissingColumn = errors.New("missing column")
)

// ReadCSV parses comma-separated rows from r according to schema.
//
// The first line must be a header naming the columns; columns may
// appear in any order and columns not in schema are ignored. Each
// following line becomes a Row whose ID is its 1-based data line
// number.
//
// Numeric fields that fail to parse are stored as NaN rather than
// rejected. Consumers that need clean values drop such rows
// themselves. Fields of integer attributes are truncated toward
// zero.
func ReadCSV(r io.Reader, schema Schema) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// Short rows are handled below.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	} else if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	// Locate schema columns in the header.
	index := make(map[string]int)
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	catCol, ok := index[schema.Category]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, schema.Category)
	}
	numCols := make([]int, len(schema.Numeric))
	for i, attr := range schema.Numeric {
		col, ok := index[attr]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, attr)
		}
		numCols[i] = col
	}

	field := func(rec []string, col int) string {
		if col >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[col])
	}

	d := &Dataset{schema: schema}
	malformed := 0
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}

		row := Row{
			ID:       line,
			Category: field(rec, catCol),
			Values:   make(map[string]float64, len(schema.Numeric)),
		}
		for i, attr := range schema.Numeric {
			v, err := strconv.ParseFloat(field(rec, numCols[i]), 64)
			if err != nil {
				v = math.NaN()
				malformed++
			} else if schema.IsInteger(attr) {
				v = math.Trunc(v)
			}
			row.Values[attr] = v
		}
		d.rows = append(d.rows, row)
	}

	if malformed > 0 {
		logging.Logger().Warn("malformed numeric fields", "count", malformed, "rows", len(d.rows))
	}
	return d, nil
}
