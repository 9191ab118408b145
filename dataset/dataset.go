// SPDX-License-Identifier: MIT

// Package dataset: core container. This file defines:
//   - Dataset (shape + strides + flat row-major cells),
//   - constructors (New, FromCells, FromGrid) with strict validation,
//   - accessors (Shape, Dims, Len, At, Set, Cells, Clone),
//   - block extraction (Region, RegionPadded).
//
// Design principles:
//   - Deterministic, side-effect free; no logging, no panics on user input —
//     only sentinel errors from errors.go.
//   - Constructors deep-copy their inputs so later caller mutation cannot
//     corrupt a Dataset.
//   - Zero-length axes are legal: they describe the empty dataset, which
//     downstream consumers score as zero complexity.
package dataset

import "math"

// Dataset is an n-dimensional array of discrete symbols stored row-major.
// The zero value is not usable; build instances through the constructors.
type Dataset struct {
	shape   []int // axis lengths, len(shape) >= 1
	strides []int // strides[a] = volume of shape[a+1:]
	cells   []int // flat row-major cell buffer, len == volume(shape)
}

// volume returns the product of the shape axes, guarding against overflow.
// A zero-length axis collapses the volume to 0, which is legal.
//
// Complexity: O(D).
func volume(shape []int) (int, error) {
	v := 1
	for _, n := range shape {
		if n < 0 {
			return 0, ErrNegativeAxis
		}
		if n > 0 && v > math.MaxInt/n {
			return 0, ErrVolumeOverflow
		}
		v *= n
	}

	return v, nil
}

// newStrides precomputes row-major strides for shape.
// strides[a] is the flat distance between neighbors along axis a.
//
// Complexity: O(D).
func newStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for a := len(shape) - 1; a >= 0; a-- {
		strides[a] = acc
		acc *= shape[a]
	}

	return strides
}

// New returns a zero-filled Dataset with the given shape.
// Returns ErrEmptyShape when no axes are given, ErrNegativeAxis on a
// negative axis and ErrVolumeOverflow when the volume exceeds an int.
//
// Complexity: O(V) time and memory.
func New(shape ...int) (*Dataset, error) {
	if len(shape) == 0 {
		return nil, ErrEmptyShape
	}
	vol, err := volume(shape)
	if err != nil {
		return nil, err
	}
	s := make([]int, len(shape))
	copy(s, shape)

	return &Dataset{shape: s, strides: newStrides(s), cells: make([]int, vol)}, nil
}

// FromCells builds a Dataset from a flat row-major cell slice.
// The cells are deep-copied; len(cells) must equal the shape volume.
//
// Complexity: O(V) time and memory.
func FromCells(shape []int, cells []int) (*Dataset, error) {
	d, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(cells) != len(d.cells) {
		return nil, ErrLengthMismatch
	}
	copy(d.cells, cells)

	return d, nil
}

// FromGrid builds a 2D Dataset from a row-oriented grid.
// It deep-copies the input to ensure immutability and returns
// ErrNonRectangular if any row length differs. An empty grid yields the
// legal 0x0 dataset.
//
// Complexity: O(H×W) time and memory.
func FromGrid(rows [][]int) (*Dataset, error) {
	if len(rows) == 0 {
		return New(0, 0)
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	d, err := New(len(rows), w)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		copy(d.cells[y*w:(y+1)*w], row)
	}

	return d, nil
}

// Shape returns a copy of the axis lengths.
// Complexity: O(D).
func (d *Dataset) Shape() []int {
	s := make([]int, len(d.shape))
	copy(s, d.shape)

	return s
}

// Dims returns the number of axes.
// Complexity: O(1).
func (d *Dataset) Dims() int { return len(d.shape) }

// Len returns the total number of cells (the shape volume).
// Complexity: O(1).
func (d *Dataset) Len() int { return len(d.cells) }

// Cells returns the live flat row-major cell buffer.
// The slice is shared with the Dataset: callers must treat it as read-only
// and use Set for mutation. Sharing avoids a copy per block on hot paths.
//
// Complexity: O(1).
func (d *Dataset) Cells() []int { return d.cells }

// flatIndex maps coords to a row-major flat index, validating bounds.
//
// Complexity: O(D).
func (d *Dataset) flatIndex(coords []int) (int, error) {
	if len(coords) != len(d.shape) {
		return 0, ErrDimensionMismatch
	}
	i := 0
	for a, c := range coords {
		if c < 0 || c >= d.shape[a] {
			return 0, ErrOutOfBounds
		}
		i += c * d.strides[a]
	}

	return i, nil
}

// At returns the symbol stored at the given coordinates.
// Returns ErrDimensionMismatch or ErrOutOfBounds on invalid coordinates.
//
// Complexity: O(D).
func (d *Dataset) At(coords ...int) (int, error) {
	i, err := d.flatIndex(coords)
	if err != nil {
		return 0, err
	}

	return d.cells[i], nil
}

// Set stores value at the given coordinates.
// Returns ErrDimensionMismatch or ErrOutOfBounds on invalid coordinates.
//
// Complexity: O(D).
func (d *Dataset) Set(value int, coords ...int) error {
	i, err := d.flatIndex(coords)
	if err != nil {
		return err
	}
	d.cells[i] = value

	return nil
}

// Clone returns a deep copy sharing no state with the receiver.
//
// Complexity: O(V) time and memory.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}
	c := &Dataset{
		shape:   make([]int, len(d.shape)),
		strides: make([]int, len(d.strides)),
		cells:   make([]int, len(d.cells)),
	}
	copy(c.shape, d.shape)
	copy(c.strides, d.strides)
	copy(c.cells, d.cells)

	return c
}

// validateRegion checks origin/size arity and non-negativity, returning the
// region volume. Bounds against the receiver are checked by the callers,
// which differ in whether the region may leave the dataset.
//
// Complexity: O(D).
func (d *Dataset) validateRegion(origin, size []int) (int, error) {
	if len(origin) != len(d.shape) || len(size) != len(d.shape) {
		return 0, ErrDimensionMismatch
	}

	return volume(size)
}

// Region extracts the rectangular sub-block [origin, origin+size) as a new
// Dataset. The region must lie entirely inside the receiver; a zero-length
// size axis yields an empty block.
//
// Complexity: O(V×D) time, O(V) memory (V = region volume).
func (d *Dataset) Region(origin, size []int) (*Dataset, error) {
	vol, err := d.validateRegion(origin, size)
	if err != nil {
		return nil, err
	}
	for a := range d.shape {
		if origin[a] < 0 || origin[a]+size[a] > d.shape[a] {
			return nil, ErrOutOfBounds
		}
	}
	out, err := New(size...)
	if err != nil {
		return nil, err
	}
	if vol == 0 {
		return out, nil
	}

	// Walk the region row by row: the innermost axis is contiguous in the
	// source, so each row is a single copy.
	last := len(size) - 1
	rowLen := size[last]
	rel := make([]int, len(size)) // relative coordinates, innermost pinned to 0
	for dst := 0; dst < vol; dst += rowLen {
		src := 0
		for a := 0; a <= last; a++ {
			src += (origin[a] + rel[a]) * d.strides[a]
		}
		copy(out.cells[dst:dst+rowLen], d.cells[src:src+rowLen])
		for a := last - 1; a >= 0; a-- {
			rel[a]++
			if rel[a] < size[a] {
				break
			}
			rel[a] = 0
		}
	}

	return out, nil
}

// RegionPadded extracts [origin, origin+size) like Region but permits the
// region to extend past the dataset boundary: cells outside the receiver
// are filled with the fill symbol. The returned bool reports whether any
// filling occurred. The origin itself must lie inside the receiver.
//
// Complexity: O(V×D) time, O(V) memory.
func (d *Dataset) RegionPadded(origin, size []int, fill int) (*Dataset, bool, error) {
	vol, err := d.validateRegion(origin, size)
	if err != nil {
		return nil, false, err
	}
	for a := range d.shape {
		if origin[a] < 0 || origin[a] >= d.shape[a] {
			return nil, false, ErrOutOfBounds
		}
	}
	out, err := New(size...)
	if err != nil {
		return nil, false, err
	}

	padded := false
	rel := make([]int, len(size))
	for dst := 0; dst < vol; dst++ {
		src, inside := 0, true
		for a := range size {
			c := origin[a] + rel[a]
			if c >= d.shape[a] {
				inside = false

				break
			}
			src += c * d.strides[a]
		}
		if inside {
			out.cells[dst] = d.cells[src]
		} else {
			out.cells[dst] = fill
			padded = true
		}
		for a := len(size) - 1; a >= 0; a-- {
			rel[a]++
			if rel[a] < size[a] {
				break
			}
			rel[a] = 0
		}
	}

	return out, padded, nil
}
