// SPDX-License-Identifier: MIT

// Package bdm - block multiset accounting.
//
// This file implements Counter: the multiset of decomposed blocks with
// their multiplicities, in first-occurrence order. The order matters —
// aggregation sums floating-point terms in it, so a stable order keeps
// results bit-for-bit reproducible across runs.
package bdm

import "github.com/sragli/BDM/ctm"

// BlockCount is an inspection snapshot of one counted block.
type BlockCount struct {
	Shape  []int
	Cells  []int
	N      int  // multiplicity: how many times the block occurred
	Padded bool // true when the block was completed with a pad symbol
}

// tally is the internal mutable record behind one counter key.
type tally struct {
	shape  []int
	cells  []int
	n      int
	padded bool
}

// Counter accumulates block multiplicities keyed by shape and cells.
// Keys are remembered in first-occurrence order; padded and genuine blocks
// can never collide because the pad symbol lies outside the alphabet.
type Counter struct {
	keys    []string
	tallies map[string]*tally
}

// NewCounter returns an empty Counter. CountBlocks is the usual producer;
// an explicit empty counter is the natural Merge accumulator when counting
// shards of a corpus separately.
func NewCounter() *Counter {
	return &Counter{tallies: make(map[string]*tally)}
}

// add records one occurrence of a block. The slices are retained verbatim:
// callers pass freshly extracted blocks that nothing else aliases.
func (c *Counter) add(shape, cells []int, padded bool) {
	k := ctm.Key(shape, cells)
	if t, ok := c.tallies[k]; ok {
		t.n++

		return
	}
	c.keys = append(c.keys, k)
	c.tallies[k] = &tally{shape: shape, cells: cells, n: 1, padded: padded}
}

// Len returns the number of distinct blocks.
func (c *Counter) Len() int { return len(c.keys) }

// Total returns the total number of block occurrences (Σ multiplicities).
func (c *Counter) Total() int {
	total := 0
	for _, t := range c.tallies {
		total += t.n
	}

	return total
}

// N returns the multiplicity recorded for the block with the given shape
// and cells, or 0 when the block never occurred.
//
// Complexity: O(V) key construction, O(1) expected access.
func (c *Counter) N(shape, cells []int) int {
	t, ok := c.tallies[ctm.Key(shape, cells)]
	if !ok {
		return 0
	}

	return t.n
}

// Blocks returns a snapshot of every counted block in first-occurrence
// order. The slices are fresh copies; mutating them cannot corrupt the
// counter.
//
// Complexity: O(K×V).
func (c *Counter) Blocks() []BlockCount {
	out := make([]BlockCount, 0, len(c.keys))
	for _, k := range c.keys {
		t := c.tallies[k]
		shape := make([]int, len(t.shape))
		copy(shape, t.shape)
		cells := make([]int, len(t.cells))
		copy(cells, t.cells)
		out = append(out, BlockCount{Shape: shape, Cells: cells, N: t.n, Padded: t.padded})
	}

	return out
}

// Merge folds other into the receiver: multiplicities of shared blocks add
// up, unseen blocks append in other's order. Merging reorders nothing that
// the receiver already saw, but the combined order differs from counting
// the concatenated input directly — downstream float sums may then differ
// in the final bits.
//
// Complexity: O(K_other).
func (c *Counter) Merge(other *Counter) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		o := other.tallies[k]
		if t, ok := c.tallies[k]; ok {
			t.n += o.n

			continue
		}
		c.keys = append(c.keys, k)
		c.tallies[k] = &tally{shape: o.shape, cells: o.cells, n: o.n, padded: o.padded}
	}
}
