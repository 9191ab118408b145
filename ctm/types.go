// SPDX-License-Identifier: MIT

// Package ctm: entry stream contract and summary statistics. This file
// defines:
//   - Entry (one priced block) and EntryReader (the streaming contract),
//   - NewSliceReader (in-memory adapter, the reference EntryReader),
//   - Stats (per-shape summary), sentinel errors.
package ctm

import (
	"errors"
	"io"
)

// Entry is one catalog row: a block identified by shape and row-major cells,
// priced with its algorithmic complexity in bits.
type Entry struct {
	Shape []int
	Cells []int
	Value float64
}

// EntryReader streams catalog entries into Build. Implementations return
// io.EOF after the last entry; any other error aborts the build. Build owns
// the returned slices from that point on, so implementations must not reuse
// their backing arrays between calls.
type EntryReader interface {
	Next() (Entry, error)
}

// SliceReader adapts an in-memory entry slice to the EntryReader contract.
// It is the reference implementation and the natural fixture for tests and
// small hand-built tables.
type SliceReader struct {
	entries []Entry
	next    int
}

// NewSliceReader returns an EntryReader draining entries in order.
func NewSliceReader(entries []Entry) *SliceReader {
	return &SliceReader{entries: entries}
}

// Next returns the next entry or io.EOF once the slice is exhausted.
func (r *SliceReader) Next() (Entry, error) {
	if r.next >= len(r.entries) {
		return Entry{}, io.EOF
	}
	e := r.entries[r.next]
	r.next++

	return e, nil
}

// Stats summarizes the catalog values recorded for one block shape.
//
// Fields:
//   - Count  — number of entries with this shape.
//   - Min    — smallest value: the price of the most compressible block.
//   - Max    — largest value: the price of the most random block.
//   - Mean, Median, StdDev — distribution summary of the shape's values.
type Stats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

var (
	// ErrNilReader indicates a nil EntryReader passed to Build.
	ErrNilReader = errors.New("ctm: nil EntryReader")
	// ErrDimensions indicates a non-positive table dimensionality.
	ErrDimensions = errors.New("ctm: dimensionality must be at least one")
	// ErrSymbolCount indicates an alphabet with fewer than two symbols.
	ErrSymbolCount = errors.New("ctm: alphabet must contain at least two symbols")
	// ErrDimensionMismatch indicates an entry shape with the wrong number of axes.
	ErrDimensionMismatch = errors.New("ctm: entry shape does not match the table dimensionality")
	// ErrEntryShape indicates an entry shape with a non-positive axis.
	ErrEntryShape = errors.New("ctm: entry shape axes must be positive")
	// ErrLengthMismatch indicates an entry whose cells do not fill its shape.
	ErrLengthMismatch = errors.New("ctm: entry cell count does not match its shape volume")
	// ErrSymbolRange indicates an entry cell outside [0, symbols).
	ErrSymbolRange = errors.New("ctm: entry cell outside the alphabet")
	// ErrValueRange indicates a non-finite or non-positive entry value.
	ErrValueRange = errors.New("ctm: entry value must be finite and positive")
	// ErrDuplicateEntry indicates two entries priced the same block.
	ErrDuplicateEntry = errors.New("ctm: duplicate block entry")
	// ErrEmptyTable indicates the stream produced no entries.
	ErrEmptyTable = errors.New("ctm: table contains no entries")
)
