// SPDX-License-Identifier: MIT

// Package bdm: functional configuration for the estimation engine. This
// file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); data-dependent validation surfaces as sentinel errors in New.
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package bdm

import (
	"math"

	"github.com/sragli/BDM/partition"
)

// Fallback selects how the engine prices a block its table does not cover.
// Complete bundled tables never miss; the policy matters for custom tables
// and for Recursive decompositions that shrink below the covered sides.
type Fallback int

const (
	// FallbackMax prices unknown blocks at the maximum recorded for their
	// shape (the whole-table maximum when the shape itself is unknown).
	// Unseen structure is treated as maximally random — the conservative
	// upper-bound convention.
	FallbackMax Fallback = iota

	// FallbackSkip drops unknown blocks from the sum entirely.
	FallbackSkip

	// FallbackStrict aborts the computation with ErrCoverageGap.
	FallbackStrict
)

// String returns the stable, lowercase fallback name.
func (f Fallback) String() string {
	switch f {
	case FallbackMax:
		return "max"
	case FallbackSkip:
		return "skip"
	case FallbackStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in gatherOptions.
const (
	// DefaultBlockSize (0) derives the block side from the table: the
	// largest side the table covers completely.
	DefaultBlockSize = 0

	// DefaultPolicy drops boundary remainders. It is the cheapest policy
	// and the only one whose estimate never mixes block sizes.
	DefaultPolicy = partition.Ignore

	// DefaultMinLength mirrors partition.DefaultMinLength for Recursive.
	DefaultMinLength = partition.DefaultMinLength

	// DefaultFallback prices unknown blocks at their shape's maximum.
	DefaultFallback = FallbackMax
)

// options is the gathered configuration consumed by New.
type options struct {
	blockSize  int
	policy     partition.Policy
	minLength  int
	fallback   Fallback
	padCost    float64
	padCostSet bool
}

// Option mutates the engine configuration. All constructors validate their
// input and panic on programmer error; data-dependent checks (coverage,
// dimensionality) belong to New and return sentinel errors instead.
type Option func(*options)

// WithBlockSize fixes the block side instead of deriving it from the table.
// Panics when size < 1. Whether the table covers the side is checked by New
// (ErrBlockSize), since it depends on data, not on the parameter.
func WithBlockSize(size int) Option {
	if size < 1 {
		panic("bdm: WithBlockSize requires size >= 1")
	}

	return func(o *options) { o.blockSize = size }
}

// WithPolicy selects the boundary policy. Panics on values outside the
// partition enumeration.
func WithPolicy(p partition.Policy) Option {
	switch p {
	case partition.Ignore, partition.Recursive, partition.Correlated, partition.Pad:
	default:
		panic("bdm: WithPolicy requires a declared partition.Policy")
	}

	return func(o *options) { o.policy = p }
}

// WithMinLength sets the smallest block side Recursive may shrink to.
// Panics when n < 1.
func WithMinLength(n int) Option {
	if n < 1 {
		panic("bdm: WithMinLength requires n >= 1")
	}

	return func(o *options) { o.minLength = n }
}

// WithFallback selects the pricing of blocks the table does not cover.
// Panics on values outside the Fallback enumeration.
func WithFallback(f Fallback) Option {
	switch f {
	case FallbackMax, FallbackSkip, FallbackStrict:
	default:
		panic("bdm: WithFallback requires a declared Fallback")
	}

	return func(o *options) { o.fallback = f }
}

// WithPadCost overrides the price of padded blocks under partition.Pad.
// The default is the table minimum for the engine's block shape: padding
// adds the cheapest admissible structure. Panics on NaN, infinite or
// negative costs.
func WithPadCost(cost float64) Option {
	if math.IsNaN(cost) || math.IsInf(cost, 0) || cost < 0 {
		panic("bdm: WithPadCost requires a finite, non-negative cost")
	}

	return func(o *options) {
		o.padCost = cost
		o.padCostSet = true
	}
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		blockSize: DefaultBlockSize,
		policy:    DefaultPolicy,
		minLength: DefaultMinLength,
		fallback:  DefaultFallback,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
