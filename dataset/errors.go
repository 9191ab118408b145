// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrNilDataset indicates a nil *Dataset was supplied where a value is required.
	ErrNilDataset = errors.New("dataset: nil *Dataset")
	// ErrEmptyShape indicates a shape with no axes.
	ErrEmptyShape = errors.New("dataset: shape must have at least one axis")
	// ErrNegativeAxis indicates a negative axis length in a shape.
	ErrNegativeAxis = errors.New("dataset: shape axes must be non-negative")
	// ErrVolumeOverflow indicates the product of the shape axes exceeds an int.
	ErrVolumeOverflow = errors.New("dataset: shape volume overflows int")
	// ErrLengthMismatch indicates the supplied cells do not fill the shape exactly.
	ErrLengthMismatch = errors.New("dataset: cell count does not match shape volume")
	// ErrNonRectangular indicates rows of differing lengths in a 2D grid.
	ErrNonRectangular = errors.New("dataset: all rows must have the same length")
	// ErrDimensionMismatch indicates a coordinate count that differs from the dataset dimensionality.
	ErrDimensionMismatch = errors.New("dataset: coordinate count does not match dimensionality")
	// ErrOutOfBounds indicates a coordinate or region outside the dataset.
	ErrOutOfBounds = errors.New("dataset: coordinate out of bounds")
	// ErrEmptyPattern indicates a periodic pattern with a zero-length axis.
	ErrEmptyPattern = errors.New("dataset: periodic pattern must have no zero-length axis")
	// ErrSymbolCount indicates a non-positive alphabet size passed to a generator.
	ErrSymbolCount = errors.New("dataset: symbol count must be positive")
)
