// SPDX-License-Identifier: MIT
// Package: BDM (root)
//
// errors.go — sentinel errors for the estimation engine.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Engine methods MUST NOT panic at runtime; validation panics are
//     confined to option constructor functions (WithX...).
//
// AI-Hints (practical guidance for implementers and LLMs):
//   • Return ONLY these sentinels for validation classes (configuration /
//     dimensionality / alphabet / coverage); subpackages own their own.
//   • Check with errors.Is in tests and production code; avoid string
//     comparisons.
//   • ErrCoverageGap can only surface under FallbackStrict — the default
//     fallback prices gaps instead of failing.

package bdm

import "errors"

// ErrNilTable indicates a nil *ctm.Table passed to New.
// Usage: if errors.Is(err, ErrNilTable) { /* build or load a table first */ }.
var ErrNilTable = errors.New("bdm: nil *ctm.Table")

// ErrUnsupportedConfig indicates the table covers no block size at all, so
// no engine can be derived from it without an explicit, covered size.
// Classification: configuration error (table ↔ engine mismatch).
// Usage: if errors.Is(err, ErrUnsupportedConfig) { /* supply a complete table */ }.
var ErrUnsupportedConfig = errors.New("bdm: table covers no usable block size")

// ErrBlockSize indicates the requested block side is not fully covered by
// the table (or the derived side vanished). A side is usable only when the
// table prices every possible block of that side.
// Classification: configuration error (table ↔ engine mismatch).
// Usage: if errors.Is(err, ErrBlockSize) { /* pick a side the table covers */ }.
var ErrBlockSize = errors.New("bdm: table does not fully cover the requested block size")

// ErrNilDataset indicates a nil *dataset.Dataset passed to an engine method.
var ErrNilDataset = errors.New("bdm: nil *dataset.Dataset")

// ErrNilCounter indicates a nil *Counter passed to ComputeFromCounts.
var ErrNilCounter = errors.New("bdm: nil *Counter")

// ErrDimensionMismatch indicates the dataset dimensionality differs from
// the table dimensionality (e.g. a matrix scored against a string table).
// Usage: if errors.Is(err, ErrDimensionMismatch) { /* load the right table */ }.
var ErrDimensionMismatch = errors.New("bdm: dataset dimensionality does not match the table")

// ErrSymbolRange indicates a dataset cell outside the table alphabet
// [0, symbols). The engine validates the whole dataset up front, so partial
// decompositions are never observable.
// Usage: if errors.Is(err, ErrSymbolRange) { /* re-encode the dataset */ }.
var ErrSymbolRange = errors.New("bdm: dataset cell outside the table alphabet")

// ErrCoverageGap indicates the decomposition produced a block the table
// does not price, under FallbackStrict. The other fallbacks convert gaps
// into prices (FallbackMax) or omissions (FallbackSkip) instead.
// Usage: if errors.Is(err, ErrCoverageGap) { /* widen the table or relax the fallback */ }.
var ErrCoverageGap = errors.New("bdm: table does not price a decomposed block")
