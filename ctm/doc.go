// Package ctm hosts Coding Theorem Method tables: catalogs mapping small
// blocks to their algorithmic complexity, the per-block prices every
// decomposition-based estimate is assembled from.
//
// What:
//
//   - Table is an immutable in-memory catalog keyed by block shape and cells,
//     with per-shape summary statistics (count, min, max, mean, median,
//     standard deviation).
//   - Build constructs a Table by draining an EntryReader, validating every
//     entry against the declared dimensionality and alphabet.
//   - EntryReader is the streaming contract that decouples the Table from
//     its storage format; NewSliceReader adapts in-memory entries, and the
//     ctmdata subpackage adapts the bundled CSV assets.
//
// Why:
//
//   - Coding Theorem Method values come from massive offline Turing-machine
//     enumerations; at runtime they are plain lookups. Keeping the Table a
//     passive catalog with explicit coverage queries lets callers decide how
//     to price blocks the catalog has never seen.
//
// Usage:
//
//	tbl, err := ctm.Build(1, 2, ctm.NewSliceReader(entries))
//	if err != nil { ... }
//	v, ok := tbl.Lookup([]int{3}, []int{0, 1, 0})
//
// Complexity:
//
//   - Build:  O(N×V) time, O(N) memory (N = entries, V = cells per block).
//   - Lookup: O(V) time (key construction), O(1) expected map access.
//   - Stats / Covers / MaxValue / MaxBlockSize: O(1) after Build.
//
// Errors:
//
//   - ErrNilReader, ErrDimensions, ErrSymbolCount: invalid Build arguments.
//   - ErrDimensionMismatch, ErrEntryShape, ErrLengthMismatch, ErrSymbolRange,
//     ErrValueRange, ErrDuplicateEntry: a malformed entry in the stream.
//   - ErrEmptyTable: the stream held no entries at all.
package ctm
