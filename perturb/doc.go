// Package perturb measures how single-cell edits move a dataset's
// algorithmic-complexity estimate — the sensitivity analysis that turns a
// point estimate into a map of which cells carry the structure.
//
// What:
//
//   - Experiment freezes a dataset together with its baseline estimate and
//     block counts, then prices what-if edits against that baseline.
//   - Delta returns the estimate change for one cell write without mutating
//     anything.
//   - Run evaluates many targets concurrently under a bounded worker budget.
//   - Report condenses a result set into summary statistics.
//
// Why:
//
//   - A raw estimate says how complex an object is; deltas say where that
//     complexity lives. Cells whose edit barely moves the estimate are
//     structurally redundant, cells with large positive deltas hold the
//     object's regularity.
//
// Fast path:
//
//   - Under partition.Ignore, blocks tile the dataset disjointly, so one cell
//     edit touches exactly one block. Delta then adjusts only the two affected
//     terms (the block leaving the sum and the block entering it) in O(size^D)
//     instead of recomputing the whole estimate. Other policies fall back to a
//     full recomputation of a mutated clone.
//
// Concurrency:
//
//   - An Experiment is immutable after New; Delta and Run are safe for
//     concurrent use. Run itself bounds parallelism with a weighted semaphore
//     and preserves target order in its results.
//
// Complexity:
//
//   - Delta (Ignore):       O(size^D) per target.
//   - Delta (other):        O(V×D) per target (full recomputation).
//   - Run:                  one Delta per target, workers in parallel.
//
// Errors:
//
//   - ErrNilEngine / ErrNilDataset: missing inputs to New.
//   - ErrSymbolRange: a target value outside the table alphabet.
//   - ErrNoResults: Report received an empty result set.
//   - Dataset addressing errors (out of bounds, wrong dimensionality) pass
//     through unchanged from the dataset package.
package perturb
