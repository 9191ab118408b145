// Package partition decomposes a dataset into fixed-size blocks — the
// decomposition step that turns a large object into table-sized pieces a
// complexity catalog can price.
//
// What:
//
//   - Split cuts an n-dimensional dataset into cubic blocks of a given side,
//     in deterministic row-major origin order.
//   - Policy selects how boundary remainders (the slices a non-divisible
//     shape leaves over) are treated: Ignore, Recursive, Correlated or Pad.
//   - Block carries the extracted cells, their absolute origin and whether
//     padding was applied.
//   - CubeShape builds the cubic block shape itself: the side repeated once
//     per dimension.
//
// Why:
//
//   - Complexity catalogs only price small blocks; any larger object must be
//     decomposed first, and the boundary policy is exactly the accuracy/bias
//     trade-off of that decomposition.
//
// Policies:
//
//   - Ignore:     keep only full blocks; drop every boundary remainder.
//   - Recursive:  re-split each remainder at the largest side that fits,
//     shrinking until MinLength; smaller fragments are dropped.
//   - Correlated: slide a window with step 1, emitting every full window
//     (blocks overlap; boundary cells still appear in no window of their own).
//   - Pad:        extend remainders to full size with PadSymbol.
//
// Complexity:
//
//   - Ignore / Pad:  O(V×D) time, O(V) memory (V = dataset volume, D = axes).
//   - Correlated:    O(W×size^D×D) time (W = number of windows).
//   - Recursive:     O(V×D×L) time (L = number of shrink levels, ≤ log levels
//     in practice since the side strictly decreases).
//
// Errors:
//
//   - ErrNilDataset: the dataset is nil.
//   - ErrBlockSize: the block side is not positive.
//   - ErrMinLength: a negative MinLength was supplied.
//   - ErrUnknownPolicy: the policy is not one of the four above.
package partition
