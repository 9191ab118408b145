// SPDX-License-Identifier: MIT

// Package perturb: types, sentinel errors and functional configuration for
// sensitivity experiments. This file defines:
//   - Target / Result / Summary (the experiment's value vocabulary),
//   - sentinel errors (compared with errors.Is),
//   - Option constructors with strong validation (panic on nonsensical values).
//
// Design principles:
//   - Value types carry copies, never views into the experiment's state.
//   - Panic only on programmer error; data-dependent failures are sentinels.
package perturb

import "errors"

// Target names one what-if edit: write Value at Coords.
type Target struct {
	// Coords addresses the cell, one index per dataset axis.
	Coords []int

	// Value is the symbol to write; it must lie inside the table alphabet.
	Value int
}

// Result pairs a target with its effect on the estimate.
type Result struct {
	// Target is the edit that was evaluated.
	Target Target

	// Value is the estimate of the perturbed dataset, in bits.
	Value float64

	// Delta is Value minus the baseline estimate: positive when the edit
	// makes the dataset algorithmically more complex.
	Delta float64
}

// Summary condenses a result set into the usual location and spread
// statistics over the deltas.
type Summary struct {
	// N is the number of results summarized.
	N int

	// Mean, Median and StdDev describe the delta distribution.
	Mean   float64
	Median float64
	StdDev float64

	// Min and Max bound the observed deltas.
	Min float64
	Max float64
}

// Sentinel errors returned by this package. Match with errors.Is.
var (
	// ErrNilEngine reports a nil engine passed to New.
	ErrNilEngine = errors.New("perturb: engine must not be nil")

	// ErrNilDataset reports a nil dataset passed to New.
	ErrNilDataset = errors.New("perturb: dataset must not be nil")

	// ErrSymbolRange reports a target value outside the table alphabet.
	ErrSymbolRange = errors.New("perturb: target value outside the table alphabet")

	// ErrNoResults reports an empty result set passed to Report.
	ErrNoResults = errors.New("perturb: no results to summarize")
)

// DefaultWorkers (0) sizes Run's worker budget from runtime.GOMAXPROCS.
const DefaultWorkers = 0

// options is the gathered configuration consumed by New.
type options struct {
	workers int
}

// Option mutates the experiment configuration.
type Option func(*options)

// WithWorkers fixes Run's parallelism instead of deriving it from
// GOMAXPROCS. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("perturb: WithWorkers requires n >= 1")
	}

	return func(o *options) { o.workers = n }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
