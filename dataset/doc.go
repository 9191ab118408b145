// Package dataset provides n-dimensional arrays of discrete symbols — the
// input objects whose algorithmic complexity the bdm package estimates.
//
// What:
//
//   - Dataset wraps a flat, row-major cell buffer together with its shape.
//   - Constructors build datasets from flat slices (FromCells), 2D grids
//     (FromGrid), or generators (Constant, Periodic, Checkerboard, Random).
//   - Region and RegionPadded extract rectangular sub-blocks, the primitive
//     the partition package is built on.
//
// Why:
//
//   - Complexity estimation operates on binary strings, byte sequences and
//     adjacency matrices alike; one container with explicit shape covers
//     every arity without reflection or interface dispatch.
//   - Row-major layout keeps block extraction cache-friendly and makes the
//     flat cell buffer directly usable as a lookup key downstream.
//
// Complexity:
//
//   - At / Set:                O(D) time (D = number of axes).
//   - Region / RegionPadded:   O(V×D) time, O(V) memory (V = region volume).
//   - Generators:              O(V×D) time, O(V) memory.
//
// Determinism:
//
//   - Random is fully seed-driven: the same seed always reproduces the same
//     dataset. Seed 0 selects a fixed default stream, never the wall clock.
//
// Errors:
//
//   - ErrEmptyShape: shape has no axes.
//   - ErrNegativeAxis: a shape axis is negative.
//   - ErrVolumeOverflow: the shape volume does not fit in an int.
//   - ErrLengthMismatch: cell count differs from the shape volume.
//   - ErrNonRectangular: rows of a 2D grid differ in length.
//   - ErrDimensionMismatch: coordinate count differs from the dimensionality.
//   - ErrOutOfBounds: a coordinate or region leaves the dataset.
//   - ErrNilDataset: a nil *Dataset was supplied.
//   - ErrEmptyPattern: a periodic pattern has a zero-length axis.
//   - ErrSymbolCount: a generator received a non-positive alphabet size.
package dataset
