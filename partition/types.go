// SPDX-License-Identifier: MIT

// Package partition: boundary policies, options and block carrier. This file
// defines:
//   - Policy (the four boundary treatments) with a stable String form,
//   - Options (recursion cutoff, pad symbol) with documented defaults,
//   - Block (cells + absolute origin + padding marker),
//   - sentinel errors.
package partition

import (
	"errors"

	"github.com/sragli/BDM/dataset"
)

// Policy controls how Split treats boundary remainders — the slices left
// over when a shape is not divisible by the block side.
//
//   - Ignore     — keep only full blocks, drop every remainder.
//     Fast and unbiased per block, but discards boundary information.
//
//   - Recursive  — re-split each remainder at the largest side that fits,
//     shrinking until Options.MinLength; smaller fragments are dropped.
//     Recovers most boundary information at the cost of mixing block sizes.
//
//   - Correlated — slide the window with step 1 along every axis and emit
//     every full window. Blocks overlap, so shared structure between
//     neighboring regions is captured; output volume grows accordingly.
//
//   - Pad        — extend each remainder to full size with Options.PadSymbol.
//     Keeps a uniform block shape but injects artificial cells.
type Policy int

const (
	// Ignore keeps only full blocks and drops boundary remainders.
	Ignore Policy = iota

	// Recursive re-splits boundary remainders at shrinking block sides.
	Recursive

	// Correlated emits every full sliding window with step 1.
	Correlated

	// Pad extends boundary remainders to full size with a fill symbol.
	Pad
)

// String returns the stable, lowercase policy name.
func (p Policy) String() string {
	switch p {
	case Ignore:
		return "ignore"
	case Recursive:
		return "recursive"
	case Correlated:
		return "correlated"
	case Pad:
		return "pad"
	default:
		return "unknown"
	}
}

// DefaultMinLength is the smallest block side Recursive will shrink to.
// Side-1 blocks carry almost no structure, so the conventional cutoff is 2.
const DefaultMinLength = 2

// Options configures boundary handling.
//
// Fields:
//   - MinLength — Recursive only: the smallest admissible block side.
//     Remainder fragments whose largest fitting side is below MinLength are
//     dropped. Zero selects DefaultMinLength; negative values are rejected.
//   - PadSymbol — Pad only: the fill symbol for cells beyond the boundary.
//     Choose a symbol outside the data alphabet (callers scoring against a
//     complexity table conventionally pass the alphabet size, the first
//     integer no table block can contain) so padded blocks stay
//     distinguishable from genuine ones.
type Options struct {
	MinLength int
	PadSymbol int
}

// DefaultOptions returns the documented defaults: MinLength=DefaultMinLength,
// PadSymbol=0. Pad callers should override PadSymbol; see Options.
func DefaultOptions() Options {
	return Options{MinLength: DefaultMinLength, PadSymbol: 0}
}

// Block is one piece of a decomposition.
//
// Fields:
//   - Origin — absolute coordinates of the block's first cell in the source
//     dataset (row-major order of emission follows Origin).
//   - Data   — the extracted cells; always cubic, with side ≤ the requested
//     size (smaller only under Recursive).
//   - Padded — true when Pad filled cells beyond the source boundary.
type Block struct {
	Origin []int
	Data   *dataset.Dataset
	Padded bool
}

var (
	// ErrNilDataset indicates a nil dataset was supplied.
	ErrNilDataset = errors.New("partition: nil *dataset.Dataset")
	// ErrBlockSize indicates a non-positive block side.
	ErrBlockSize = errors.New("partition: block size must be positive")
	// ErrMinLength indicates a negative MinLength option.
	ErrMinLength = errors.New("partition: MinLength must be non-negative")
	// ErrUnknownPolicy indicates a Policy value outside the enumeration.
	ErrUnknownPolicy = errors.New("partition: unknown boundary policy")
)
