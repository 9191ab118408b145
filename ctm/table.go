// SPDX-License-Identifier: MIT

// Package ctm - catalog construction and queries.
//
// This file implements Build (drain + validate + summarize) and the Table
// query surface. A Table is immutable after Build: queries are safe for
// concurrent use without synchronization.
//
// Design principles:
//   - Strict ingestion: every entry is validated against the declared
//     dimensionality and alphabet; duplicates are rejected rather than
//     silently overwritten, so two builds of the same stream cannot differ.
//   - No logging, no panics on user input - only sentinel errors from types.go.
package ctm

import (
	"errors"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// Table is an immutable catalog of block complexities for one
// dimensionality and one alphabet. Build is the only constructor.
type Table struct {
	dims    int
	symbols int
	entries map[string]float64
	stats   map[string]Stats
	shapes  [][]int // covered shapes, sorted lexicographically
	maxSide int     // largest fully covered cubic side
	maxVal  float64 // largest value across the whole catalog
}

// Key renders a block as the canonical catalog key: shape axes joined by
// 'x', a colon, then the cells. Cells render as plain digits while every
// symbol fits one digit, and comma-separated otherwise; the two forms
// cannot collide for a fixed shape.
//
// Complexity: O(V).
func Key(shape, cells []int) string {
	var b strings.Builder
	b.Grow(2*len(shape) + 2*len(cells))
	for a, n := range shape {
		if a > 0 {
			b.WriteByte('x')
		}
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteByte(':')
	compact := true
	for _, c := range cells {
		if c < 0 || c > 9 {
			compact = false

			break
		}
	}
	for i, c := range cells {
		if compact {
			b.WriteByte(byte('0' + c))

			continue
		}
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}

	return b.String()
}

// shapeKey renders the shape part of a catalog key.
func shapeKey(shape []int) string {
	var b strings.Builder
	for a, n := range shape {
		if a > 0 {
			b.WriteByte('x')
		}
		b.WriteString(strconv.Itoa(n))
	}

	return b.String()
}

// intPow returns base^exp, reporting false on overflow or exp<0.
//
// Complexity: O(exp).
func intPow(base, exp int) (int, bool) {
	if exp < 0 {
		return 0, false
	}
	v := 1
	for i := 0; i < exp; i++ {
		if base != 0 && v > math.MaxInt/base {
			return 0, false
		}
		v *= base
	}

	return v, true
}

// validateEntry checks one entry against the table contract and returns its
// shape volume.
//
// Complexity: O(V).
func validateEntry(e Entry, dims, symbols int) (int, error) {
	if len(e.Shape) != dims {
		return 0, ErrDimensionMismatch
	}
	vol := 1
	for _, n := range e.Shape {
		if n < 1 {
			return 0, ErrEntryShape
		}
		vol *= n
	}
	if len(e.Cells) != vol {
		return 0, ErrLengthMismatch
	}
	for _, c := range e.Cells {
		if c < 0 || c >= symbols {
			return 0, ErrSymbolRange
		}
	}
	if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) || e.Value <= 0 {
		return 0, ErrValueRange
	}

	return vol, nil
}

// Build drains r into a new Table for the given dimensionality and alphabet
// size, validating every entry and precomputing per-shape statistics.
//
// Contract:
//   - dims >= 1, symbols >= 2, r non-nil.
//   - r yields entries until io.EOF; any other reader error aborts Build.
//   - Duplicate blocks are rejected (ErrDuplicateEntry) and an empty stream
//     is rejected (ErrEmptyTable).
//
// Complexity: O(N×V) time, O(N) memory.
func Build(dims, symbols int, r EntryReader) (*Table, error) {
	// Stage 1: argument sanity.
	if r == nil {
		return nil, ErrNilReader
	}
	if dims < 1 {
		return nil, ErrDimensions
	}
	if symbols < 2 {
		return nil, ErrSymbolCount
	}

	// Stage 2: drain and validate the stream.
	t := &Table{
		dims:    dims,
		symbols: symbols,
		entries: make(map[string]float64),
		stats:   make(map[string]Stats),
	}
	values := make(map[string][]float64) // per-shape values for Stage 3
	shapeOf := make(map[string][]int)
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if _, err = validateEntry(e, dims, symbols); err != nil {
			return nil, err
		}
		k := Key(e.Shape, e.Cells)
		if _, dup := t.entries[k]; dup {
			return nil, ErrDuplicateEntry
		}
		t.entries[k] = e.Value

		sk := shapeKey(e.Shape)
		if _, seen := shapeOf[sk]; !seen {
			shape := make([]int, dims)
			copy(shape, e.Shape)
			shapeOf[sk] = shape
		}
		values[sk] = append(values[sk], e.Value)
	}
	if len(t.entries) == 0 {
		return nil, ErrEmptyTable
	}

	// Stage 3: per-shape summaries and the sorted shape index.
	maxAxis := 0
	for sk, vals := range values {
		mean, _ := stats.Mean(vals)
		median, _ := stats.Median(vals)
		stdDev, _ := stats.StandardDeviation(vals)
		t.stats[sk] = Stats{
			Count:  len(vals),
			Min:    floats.Min(vals),
			Max:    floats.Max(vals),
			Mean:   mean,
			Median: median,
			StdDev: stdDev,
		}
		t.shapes = append(t.shapes, shapeOf[sk])
		for _, n := range shapeOf[sk] {
			if n > maxAxis {
				maxAxis = n
			}
		}
		if t.stats[sk].Max > t.maxVal {
			t.maxVal = t.stats[sk].Max
		}
	}
	sort.Slice(t.shapes, func(i, j int) bool {
		for a := range t.shapes[i] {
			if t.shapes[i][a] != t.shapes[j][a] {
				return t.shapes[i][a] < t.shapes[j][a]
			}
		}

		return false
	})
	for side := maxAxis; side >= 1; side-- {
		if t.Covers(side) {
			t.maxSide = side

			break
		}
	}

	return t, nil
}

// Dims returns the table dimensionality.
func (t *Table) Dims() int { return t.dims }

// Symbols returns the alphabet size the table prices.
func (t *Table) Symbols() int { return t.symbols }

// Len returns the total number of catalog entries.
func (t *Table) Len() int { return len(t.entries) }

// Lookup returns the catalog value for the block with the given shape and
// row-major cells. The second result reports whether the block is priced;
// blocks of foreign shapes, foreign symbols or unseen cells simply miss.
//
// Complexity: O(V) time.
func (t *Table) Lookup(shape, cells []int) (float64, bool) {
	v, ok := t.entries[Key(shape, cells)]

	return v, ok
}

// Stats returns the summary statistics recorded for one shape.
//
// Complexity: O(1).
func (t *Table) Stats(shape []int) (Stats, bool) {
	s, ok := t.stats[shapeKey(shape)]

	return s, ok
}

// Shapes returns the covered shapes in lexicographic order. The slices are
// fresh copies on every call.
//
// Complexity: O(S×D).
func (t *Table) Shapes() [][]int {
	out := make([][]int, len(t.shapes))
	for i, s := range t.shapes {
		c := make([]int, len(s))
		copy(c, s)
		out[i] = c
	}

	return out
}

// Covers reports whether the cubic shape of the given side is complete: the
// catalog prices every one of the symbols^(side^dims) possible blocks.
// Shapes too large for that count to fit an int cannot be complete.
//
// Complexity: O(D).
func (t *Table) Covers(side int) bool {
	if side < 1 {
		return false
	}
	cube := make([]int, t.dims)
	for a := range cube {
		cube[a] = side
	}
	st, ok := t.stats[shapeKey(cube)]
	if !ok {
		return false
	}
	vol, ok := intPow(side, t.dims)
	if !ok {
		return false
	}
	want, ok := intPow(t.symbols, vol)
	if !ok {
		return false
	}

	return st.Count == want
}

// MaxBlockSize returns the largest cubic side the catalog covers
// completely, or 0 when no side is complete.
//
// Complexity: O(1).
func (t *Table) MaxBlockSize() int { return t.maxSide }

// MaxValue returns the largest value in the catalog: the price of the most
// random block of the richest shape.
//
// Complexity: O(1).
func (t *Table) MaxValue() float64 { return t.maxVal }
