// SPDX-License-Identifier: MIT

// Package bdm - pricing and aggregation.
//
// This file implements the second half of the pipeline: price every counted
// block (table lookup, pad cost or fallback) and sum the contributions
//
//	Σ over distinct blocks: cost(block) + log2(multiplicity)
//
// Terms are collected in the counter's first-occurrence order and summed
// once, so results are bit-for-bit reproducible for a given counter.
package bdm

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sragli/BDM/dataset"
	"github.com/sragli/BDM/partition"
)

// BlockCost returns the price the engine assigns to one block.
//
// Pricing ladder:
//   - padded blocks cost PadCost (they contain the pad symbol, which no
//     table prices);
//   - known blocks cost their table value;
//   - unknown blocks follow the fallback: the shape maximum (or the table
//     maximum for unknown shapes) under FallbackMax, omission under
//     FallbackSkip (priced=false), ErrCoverageGap under FallbackStrict.
//
// Complexity: O(V).
func (e *Engine) BlockCost(shape, cells []int, padded bool) (cost float64, priced bool, err error) {
	if padded {
		return e.padCost, true, nil
	}
	if v, ok := e.table.Lookup(shape, cells); ok {
		return v, true, nil
	}
	switch e.fallback {
	case FallbackSkip:
		return 0, false, nil
	case FallbackStrict:
		return 0, false, ErrCoverageGap
	default: // FallbackMax
		if st, ok := e.table.Stats(shape); ok {
			return st.Max, true, nil
		}

		return e.table.MaxValue(), true, nil
	}
}

// ComputeFromCounts prices a counted decomposition: every distinct block
// contributes its cost plus log2 of its multiplicity. An empty counter is
// worth 0 — an empty object carries no structure to describe.
//
// Complexity: O(K×V) time, O(K) memory.
func (e *Engine) ComputeFromCounts(c *Counter) (float64, error) {
	if c == nil {
		return 0, ErrNilCounter
	}
	if c.Len() == 0 {
		return 0, nil
	}

	terms := make([]float64, 0, c.Len())
	for _, k := range c.keys {
		t := c.tallies[k]
		cost, priced, err := e.BlockCost(t.shape, t.cells, t.padded)
		if err != nil {
			return 0, err
		}
		if !priced {
			continue
		}
		terms = append(terms, cost+math.Log2(float64(t.n)))
	}
	if len(terms) == 0 {
		return 0, nil
	}

	return floats.Sum(terms), nil
}

// Misses returns the counted blocks the table does not price, in
// first-occurrence order. Padded blocks are excluded: they are priced by
// PadCost, never by the table. Empty for complete tables.
//
// Complexity: O(K×V).
func (e *Engine) Misses(c *Counter) []BlockCount {
	if c == nil {
		return nil
	}
	var out []BlockCount
	for _, k := range c.keys {
		t := c.tallies[k]
		if t.padded {
			continue
		}
		if _, ok := e.table.Lookup(t.shape, t.cells); ok {
			continue
		}
		shape := make([]int, len(t.shape))
		copy(shape, t.shape)
		cells := make([]int, len(t.cells))
		copy(cells, t.cells)
		out = append(out, BlockCount{Shape: shape, Cells: cells, N: t.n, Padded: t.padded})
	}

	return out
}

// ComputeNormalized rescales Compute into [0, 1] against the two extremes
// achievable with the same number of blocks: 0 for "every block is the
// cheapest one, repeated" and 1 for "every block distinct at the maximum
// price". The bounds are exact under Ignore with uniform block sizes and a
// heuristic envelope under the other policies; results are clamped.
//
// An empty dataset normalizes to 0.
//
// Complexity: O(V×D + K×V') time.
func (e *Engine) ComputeNormalized(d *dataset.Dataset) (float64, error) {
	ctr, err := e.CountBlocks(d)
	if err != nil {
		return 0, err
	}
	v, err := e.ComputeFromCounts(ctr)
	if err != nil {
		return 0, err
	}
	total := ctr.Total()
	if total == 0 {
		return 0, nil
	}

	st, _ := e.table.Stats(partition.CubeShape(e.table.Dims(), e.blockSize))
	lo := st.Min + math.Log2(float64(total))
	hi := float64(total) * st.Max
	if hi <= lo {
		return 0, nil
	}

	out := (v - lo) / (hi - lo)
	if out < 0 {
		return 0, nil
	}
	if out > 1 {
		return 1, nil
	}

	return out, nil
}
