// SPDX-License-Identifier: MIT

// Package ctmdata - CSV wire format.
//
// One row per block: shape,cells,value. The shape field joins axes with
// 'x' ("12", "3x4"); the cells field is one digit per cell, switching to
// comma-separated integers (CSV-quoted) when any symbol needs two digits;
// the value field is a decimal float. This mirrors ctm.Key, so a catalog
// row and a lookup key always agree on block identity.
package ctmdata

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/sragli/BDM/ctm"
)

// CSVReader streams catalog rows from r as ctm entries. It implements
// ctm.EntryReader: Next returns io.EOF after the last row.
type CSVReader struct {
	cr *csv.Reader
}

// NewCSVReader wraps r (typically a decompressed asset or a user catalog
// file) into a streaming entry reader. Rows must hold exactly three fields
// and no header.
func NewCSVReader(r io.Reader) *CSVReader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.ReuseRecord = true

	return &CSVReader{cr: cr}
}

// Next parses the next row. Malformed shape, cells or value fields return
// ErrBadRow; structural CSV errors and io.EOF pass through from the
// underlying reader.
//
// Complexity: O(V) per row.
func (r *CSVReader) Next() (ctm.Entry, error) {
	rec, err := r.cr.Read()
	if err != nil {
		return ctm.Entry{}, err
	}

	shape, err := parseShape(rec[0])
	if err != nil {
		return ctm.Entry{}, err
	}
	cells, err := parseCells(rec[1])
	if err != nil {
		return ctm.Entry{}, err
	}
	value, err := strconv.ParseFloat(rec[2], 64)
	if err != nil {
		return ctm.Entry{}, ErrBadRow
	}

	return ctm.Entry{Shape: shape, Cells: cells, Value: value}, nil
}

// parseShape parses "12" or "3x4" into axis lengths.
func parseShape(s string) ([]int, error) {
	parts := strings.Split(s, "x")
	shape := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			return nil, ErrBadRow
		}
		shape[i] = n
	}

	return shape, nil
}

// parseCells parses "0110" (one digit per cell) or "11,0,3" (comma form).
func parseCells(s string) ([]int, error) {
	if s == "" {
		return nil, ErrBadRow
	}
	if strings.ContainsRune(s, ',') {
		parts := strings.Split(s, ",")
		cells := make([]int, len(parts))
		for i, p := range parts {
			c, err := strconv.Atoi(p)
			if err != nil || c < 0 {
				return nil, ErrBadRow
			}
			cells[i] = c
		}

		return cells, nil
	}

	cells := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		d := s[i]
		if d < '0' || d > '9' {
			return nil, ErrBadRow
		}
		cells[i] = int(d - '0')
	}

	return cells, nil
}
