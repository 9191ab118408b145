// SPDX-License-Identifier: MIT

// Package partition - block decomposition walkers.
//
// This file implements Split and the four policy walkers on top of
// dataset.Region/RegionPadded. All walkers emit blocks in deterministic
// row-major origin order; Recursive additionally visits boundary parts in a
// fixed depth-first order, so the overall emission order is stable across
// runs and platforms.
//
// Design principles:
//   - Deterministic, side-effect free; no logging, no panics on user input —
//     only sentinel errors from types.go.
//   - Staged validation first, tight walkers after: the walkers assume
//     arguments already validated.
package partition

import "github.com/sragli/BDM/dataset"

// Split decomposes d into cubic blocks of the given side under the chosen
// boundary policy. Blocks are emitted in row-major origin order; under
// Recursive, each boundary part follows the full blocks, depth-first.
//
// Contract:
//   - d must be non-nil; size must be >= 1.
//   - opts.MinLength: 0 selects DefaultMinLength, negative is rejected.
//   - A dataset smaller than size along any axis yields no full blocks;
//     what happens to the remainder is exactly the policy's choice.
//
// Complexity: see the package documentation per policy.
func Split(d *dataset.Dataset, size int, policy Policy, opts Options) ([]Block, error) {
	// Stage 1: argument sanity.
	if d == nil {
		return nil, ErrNilDataset
	}
	if size < 1 {
		return nil, ErrBlockSize
	}
	if opts.MinLength < 0 {
		return nil, ErrMinLength
	}
	minLength := opts.MinLength
	if minLength == 0 {
		minLength = DefaultMinLength
	}

	// Stage 2: policy dispatch.
	var blocks []Block
	switch policy {
	case Ignore:
		if err := appendTiles(d, nil, size, &blocks); err != nil {
			return nil, err
		}
	case Recursive:
		if err := appendRecursive(d, nil, size, minLength, &blocks); err != nil {
			return nil, err
		}
	case Correlated:
		if err := appendWindows(d, size, &blocks); err != nil {
			return nil, err
		}
	case Pad:
		if err := appendPadded(d, size, opts.PadSymbol, &blocks); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownPolicy
	}

	return blocks, nil
}

// CubeShape returns the shape of a cubic block: the side repeated dims
// times, as a fresh slice.
//
// Complexity: O(D).
func CubeShape(dims, side int) []int {
	s := make([]int, dims)
	for a := range s {
		s[a] = side
	}

	return s
}

// forEachOrigin invokes fn for every origin o with 0 <= o[a] <= limit[a],
// advancing by step along each axis, in row-major order. A negative limit
// on any axis means no origins at all. fn receives a shared slice and must
// copy it before retaining.
//
// Complexity: O(N×D) time (N = number of origins), O(D) memory.
func forEachOrigin(limit []int, step int, fn func(origin []int) error) error {
	for _, l := range limit {
		if l < 0 {
			return nil
		}
	}
	origin := make([]int, len(limit))
	for {
		if err := fn(origin); err != nil {
			return err
		}
		a := len(limit) - 1
		for ; a >= 0; a-- {
			origin[a] += step
			if origin[a] <= limit[a] {
				break
			}
			origin[a] = 0
		}
		if a < 0 {
			return nil
		}
	}
}

// absOrigin translates a walker-local origin into absolute coordinates of
// the root dataset. base==nil means the walker runs on the root itself.
//
// Complexity: O(D).
func absOrigin(base, origin []int) []int {
	abs := make([]int, len(origin))
	for a := range origin {
		abs[a] = origin[a]
		if base != nil {
			abs[a] += base[a]
		}
	}

	return abs
}

// appendTiles emits every full, non-overlapping block of the given side in
// row-major origin order. Shared by Ignore and the tile stage of Recursive.
//
// Complexity: O(V×D) time, O(V) memory.
func appendTiles(d *dataset.Dataset, base []int, size int, out *[]Block) error {
	shape := d.Shape()
	cube := CubeShape(len(shape), size)
	limit := make([]int, len(shape))
	for a := range shape {
		limit[a] = shape[a] - size
	}

	return forEachOrigin(limit, size, func(origin []int) error {
		blk, err := d.Region(origin, cube)
		if err != nil {
			return err
		}
		*out = append(*out, Block{Origin: absOrigin(base, origin), Data: blk})

		return nil
	})
}

// appendWindows emits every full sliding window with step 1 in row-major
// origin order (the Correlated policy).
//
// Complexity: O(W×size^D×D) time, O(W×size^D) memory.
func appendWindows(d *dataset.Dataset, size int, out *[]Block) error {
	shape := d.Shape()
	cube := CubeShape(len(shape), size)
	limit := make([]int, len(shape))
	for a := range shape {
		limit[a] = shape[a] - size
	}

	return forEachOrigin(limit, 1, func(origin []int) error {
		blk, err := d.Region(origin, cube)
		if err != nil {
			return err
		}
		*out = append(*out, Block{Origin: absOrigin(nil, origin), Data: blk})

		return nil
	})
}

// appendPadded emits ceil(shape/size) blocks per axis, extending boundary
// remainders to full size with the fill symbol (the Pad policy).
//
// Complexity: O(V'×D) time, O(V') memory (V' = padded volume).
func appendPadded(d *dataset.Dataset, size, fill int, out *[]Block) error {
	shape := d.Shape()
	cube := CubeShape(len(shape), size)
	limit := make([]int, len(shape))
	for a := range shape {
		// Origins at multiples of size strictly below the axis length.
		limit[a] = shape[a] - 1
	}

	return forEachOrigin(limit, size, func(origin []int) error {
		blk, padded, err := d.RegionPadded(origin, cube, fill)
		if err != nil {
			return err
		}
		*out = append(*out, Block{Origin: absOrigin(nil, origin), Data: blk, Padded: padded})

		return nil
	})
}

// appendRecursive emits full blocks of the current side, then decomposes the
// boundary zone into rectangular parts and re-splits each part at the
// largest side that fits, shrinking until minLength.
//
// The boundary zone of a D-dimensional dataset decomposes into at most
// 2^D - 1 rectangular parts, one per non-empty subset of axes whose
// coordinate range falls into the remainder span. Parts are visited in
// increasing subset-mask order, each handled depth-first, so the emission
// order is deterministic. A part's largest fitting side is strictly smaller
// than the current side, which guarantees termination.
//
// Complexity: O(V×D×L) time (L = shrink levels), O(V) memory.
func appendRecursive(d *dataset.Dataset, base []int, size, minLength int, out *[]Block) error {
	if err := appendTiles(d, base, size, out); err != nil {
		return err
	}

	shape := d.Shape()
	dims := len(shape)
	full := make([]int, dims) // tiled span per axis
	rem := make([]int, dims)  // remainder span per axis, always < size
	for a := range shape {
		full[a] = (shape[a] / size) * size
		rem[a] = shape[a] - full[a]
	}

	for mask := 1; mask < 1<<dims; mask++ {
		origin := make([]int, dims)
		psize := make([]int, dims)
		vol := 1
		side := 0 // largest side fitting the part = min over psize
		for a := 0; a < dims; a++ {
			if mask&(1<<a) != 0 {
				origin[a] = full[a]
				psize[a] = rem[a]
			} else {
				psize[a] = full[a]
			}
			vol *= psize[a]
			if a == 0 || psize[a] < side {
				side = psize[a]
			}
		}
		if vol == 0 || side < minLength {
			continue
		}
		part, err := d.Region(origin, psize)
		if err != nil {
			return err
		}
		if err = appendRecursive(part, absOrigin(base, origin), side, minLength, out); err != nil {
			return err
		}
	}

	return nil
}
