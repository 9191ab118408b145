// SPDX-License-Identifier: MIT

// Package bdm - engine construction and the counting stage.
//
// This file implements Engine and the decomposition half of the pipeline:
// validate the dataset against the table, split it under the boundary
// policy, and fold the blocks into a Counter. Pricing and summation live
// in aggregate.go.
//
// Design principles:
//   - An Engine is immutable after New: all methods are read-only and safe
//     for concurrent use without synchronization.
//   - Deterministic: same table, options and dataset ⇒ bit-identical
//     results across runs and platforms.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
package bdm

import (
	"github.com/sragli/BDM/ctm"
	"github.com/sragli/BDM/dataset"
	"github.com/sragli/BDM/partition"
)

// Engine estimates algorithmic complexity by block decomposition: datasets
// are split into table-sized blocks, each block is priced by the table, and
// the prices are aggregated with a multiplicity correction.
type Engine struct {
	table     *ctm.Table
	blockSize int
	policy    partition.Policy
	minLength int
	fallback  Fallback
	padCost   float64
}

// New builds an Engine over table.
//
// Contract:
//   - table must be non-nil.
//   - Without WithBlockSize, the side defaults to the largest the table
//     covers completely; a table covering no side is ErrUnsupportedConfig.
//   - An explicit side the table does not cover is ErrBlockSize.
//   - Without WithPadCost, padded blocks price at the table minimum for the
//     engine's block shape.
//
// Complexity: O(D).
func New(table *ctm.Table, opts ...Option) (*Engine, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	o := gatherOptions(opts...)

	size := o.blockSize
	if size == DefaultBlockSize {
		size = table.MaxBlockSize()
		if size < 1 {
			return nil, ErrUnsupportedConfig
		}
	}
	if !table.Covers(size) {
		return nil, ErrBlockSize
	}

	padCost := o.padCost
	if !o.padCostSet {
		// Covers(size) guarantees the cubic shape has stats.
		st, _ := table.Stats(partition.CubeShape(table.Dims(), size))
		padCost = st.Min
	}

	return &Engine{
		table:     table,
		blockSize: size,
		policy:    o.policy,
		minLength: o.minLength,
		fallback:  o.fallback,
		padCost:   padCost,
	}, nil
}

// Table returns the table the engine prices against.
func (e *Engine) Table() *ctm.Table { return e.table }

// BlockSize returns the resolved block side.
func (e *Engine) BlockSize() int { return e.blockSize }

// Policy returns the boundary policy.
func (e *Engine) Policy() partition.Policy { return e.policy }

// PadCost returns the price of a padded block under partition.Pad.
func (e *Engine) PadCost() float64 { return e.padCost }

// validateDataset checks d against the engine's table: matching
// dimensionality and every cell inside the alphabet. Validating up front
// keeps partial decompositions unobservable.
//
// Complexity: O(V).
func (e *Engine) validateDataset(d *dataset.Dataset) error {
	if d == nil {
		return ErrNilDataset
	}
	if d.Dims() != e.table.Dims() {
		return ErrDimensionMismatch
	}
	symbols := e.table.Symbols()
	for _, c := range d.Cells() {
		if c < 0 || c >= symbols {
			return ErrSymbolRange
		}
	}

	return nil
}

// CountBlocks decomposes d under the engine's policy and folds the blocks
// into a Counter in first-occurrence order. An empty dataset yields an
// empty counter. Counting is separated from pricing so corpora can be
// counted in shards and merged before a single aggregation.
//
// Complexity: O(V×D) time (policy-dependent, see partition), O(K×V') memory.
func (e *Engine) CountBlocks(d *dataset.Dataset) (*Counter, error) {
	if err := e.validateDataset(d); err != nil {
		return nil, err
	}
	ctr := NewCounter()
	if d.Len() == 0 {
		return ctr, nil
	}

	blocks, err := partition.Split(d, e.blockSize, e.policy, partition.Options{
		MinLength: e.minLength,
		// The pad symbol is the first integer outside the alphabet, so a
		// padded block can never collide with a genuine one.
		PadSymbol: e.table.Symbols(),
	})
	if err != nil {
		return nil, err
	}
	for _, b := range blocks {
		ctr.add(b.Data.Shape(), b.Data.Cells(), b.Padded)
	}

	return ctr, nil
}

// Compute estimates the algorithmic complexity of d in bits: the dataset is
// decomposed under the boundary policy and every distinct block contributes
// its table price plus log2 of its multiplicity.
//
// The estimate is exact in the decomposition (not sampled), deterministic,
// and grows with both the variety of blocks and their repetition.
//
// Complexity: O(V×D + K×V') time.
func (e *Engine) Compute(d *dataset.Dataset) (float64, error) {
	ctr, err := e.CountBlocks(d)
	if err != nil {
		return 0, err
	}

	return e.ComputeFromCounts(ctr)
}
