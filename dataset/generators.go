// SPDX-License-Identifier: MIT

// Package dataset - deterministic dataset generators.
//
// This file centralizes the synthetic inputs used across tests, examples
// and calibration: uniform fields, tiled patterns, checkerboards and
// seeded uniform noise.
//
// Design principles:
//   - Determinism: same arguments (and seed) ⇒ identical datasets across
//     platforms; no time-based randomness hidden anywhere.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
package dataset

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// Constant returns a Dataset of the given shape with every cell set to symbol.
// Constant fields sit at the low-complexity extreme of every alphabet.
//
// Complexity: O(V) time and memory.
func Constant(shape []int, symbol int) (*Dataset, error) {
	d, err := New(shape...)
	if err != nil {
		return nil, err
	}
	for i := range d.cells {
		d.cells[i] = symbol
	}

	return d, nil
}

// Periodic tiles pattern across the given shape: the cell at coordinates c
// takes the pattern value at c mod pattern.Shape(), axis by axis. The
// pattern must have the same dimensionality as shape and no zero-length
// axis.
//
// Complexity: O(V×D) time, O(V) memory.
func Periodic(shape []int, pattern *Dataset) (*Dataset, error) {
	if pattern == nil {
		return nil, ErrNilDataset
	}
	if len(shape) != len(pattern.shape) {
		return nil, ErrDimensionMismatch
	}
	for _, n := range pattern.shape {
		if n == 0 {
			return nil, ErrEmptyPattern
		}
	}
	d, err := New(shape...)
	if err != nil {
		return nil, err
	}

	coords := make([]int, len(shape))
	for i := range d.cells {
		src := 0
		for a := range coords {
			src += (coords[a] % pattern.shape[a]) * pattern.strides[a]
		}
		d.cells[i] = pattern.cells[src]
		for a := len(coords) - 1; a >= 0; a-- {
			coords[a]++
			if coords[a] < shape[a] {
				break
			}
			coords[a] = 0
		}
	}

	return d, nil
}

// Checkerboard returns a binary Dataset where each cell holds the parity of
// its coordinate sum: alternating symbols along every axis. Checkerboards
// are the canonical highly-regular, non-constant fixture.
//
// Complexity: O(V×D) time, O(V) memory.
func Checkerboard(shape ...int) (*Dataset, error) {
	d, err := New(shape...)
	if err != nil {
		return nil, err
	}

	coords := make([]int, len(shape))
	for i := range d.cells {
		sum := 0
		for _, c := range coords {
			sum += c
		}
		d.cells[i] = sum & 1
		for a := len(coords) - 1; a >= 0; a-- {
			coords[a]++
			if coords[a] < shape[a] {
				break
			}
			coords[a] = 0
		}
	}

	return d, nil
}

// Random returns a Dataset with cells drawn uniformly from [0, symbols).
// Policy: seed==0 ⇒ fixed default stream; otherwise the seed is used
// verbatim, so the same seed always reproduces the same dataset.
// Returns ErrSymbolCount when symbols < 1.
//
// Complexity: O(V) time and memory.
func Random(shape []int, symbols int, seed int64) (*Dataset, error) {
	if symbols < 1 {
		return nil, ErrSymbolCount
	}
	d, err := New(shape...)
	if err != nil {
		return nil, err
	}
	rng := rngFromSeed(seed)
	for i := range d.cells {
		d.cells[i] = rng.Intn(symbols)
	}

	return d, nil
}
