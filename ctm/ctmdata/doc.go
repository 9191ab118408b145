// Package ctmdata bundles precomputed Coding Theorem Method catalogs and
// adapts their on-disk form to the ctm.EntryReader contract.
//
// What:
//
//   - Six gzip-compressed CSV catalogs embedded into the binary: five 1D
//     alphabets (2, 4, 5, 6 and 9 symbols) and the binary 2D catalog.
//   - Load builds a ready *ctm.Table from a bundled catalog by name.
//   - Catalogs enumerates what is bundled; Find selects the catalog for a
//     (dimensionality, alphabet) pair; NewCSVReader streams any catalog in
//     the same CSV form, bundled or user-supplied.
//
// Why:
//
//   - Catalog values come from offline Turing-machine enumerations that take
//     CPU-years to reproduce; shipping them inside the binary keeps the
//     estimator dependency-free at runtime — no files to locate, no network.
//
// Usage:
//
//	tbl, err := ctmdata.Load(ctmdata.B2D12)
//	if err != nil { ... }
//	v, ok := tbl.Lookup([]int{12}, cells)
//
// Format:
//
//	One row per block: shape,cells,value — shape axes joined by 'x', cells
//	as digits (comma-separated when a symbol needs two digits), value as a
//	decimal complexity in bits. No header row.
//
// Errors:
//
//   - ErrUnknownCatalog: the name is not bundled.
//   - ErrBadRow: a malformed CSV row (shape, cells or value unparseable).
package ctmdata
