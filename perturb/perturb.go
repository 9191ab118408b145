// SPDX-License-Identifier: MIT

// Package perturb: the experiment engine. This file defines:
//   - Experiment construction (baseline estimate + frozen block counts),
//   - Delta (single-edit sensitivity, fast path under partition.Ignore),
//   - Flips (the canonical every-cell target set),
//   - Run (bounded-concurrency batch evaluation),
//   - Report (summary statistics over deltas).
//
// Design principles:
//   - The experiment never mutates the caller's dataset nor its own copy;
//     slow-path evaluation works on throwaway clones.
//   - Fast path adjusts exactly the two sum terms an edit can touch, so a
//     full sensitivity map costs O(V×size^D) instead of O(V²×D).
//   - Determinism: results sit at their target's index regardless of
//     scheduling; only wall-clock order varies with workers.
package perturb

import (
	"context"
	"math"
	"runtime"
	"sync"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/semaphore"
	"gonum.org/v1/gonum/floats"

	bdm "github.com/sragli/BDM"
	"github.com/sragli/BDM/dataset"
	"github.com/sragli/BDM/partition"
)

// Experiment freezes a dataset with its baseline estimate and prices
// what-if edits against it. Immutable after New; safe for concurrent use.
type Experiment struct {
	engine  *bdm.Engine
	data    *dataset.Dataset
	base    *bdm.Counter
	value   float64
	workers int
}

// New captures the baseline for d under engine's configuration. The dataset
// is copied, so later caller-side mutation does not skew the experiment.
//
// Returns ErrNilEngine / ErrNilDataset on missing inputs; engine validation
// errors (dimensionality, alphabet, coverage under FallbackStrict) pass
// through unchanged.
func New(engine *bdm.Engine, d *dataset.Dataset, opts ...Option) (*Experiment, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	if d == nil {
		return nil, ErrNilDataset
	}
	o := gatherOptions(opts...)

	data := d.Clone()
	base, err := engine.CountBlocks(data)
	if err != nil {
		return nil, err
	}
	value, err := engine.ComputeFromCounts(base)
	if err != nil {
		return nil, err
	}

	workers := o.workers
	if workers == DefaultWorkers {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Experiment{
		engine:  engine,
		data:    data,
		base:    base,
		value:   value,
		workers: workers,
	}, nil
}

// Baseline returns the estimate of the unperturbed dataset, in bits.
func (e *Experiment) Baseline() float64 { return e.value }

// Delta returns the estimate change caused by writing value at coords,
// without mutating any state. Writing the cell's current value is a no-op
// and costs nothing.
//
// Under partition.Ignore the delta is computed incrementally from the
// baseline counts; other policies recompute a mutated clone.
func (e *Experiment) Delta(value int, coords ...int) (float64, error) {
	cur, err := e.data.At(coords...)
	if err != nil {
		return 0, err
	}
	if value < 0 || value >= e.engine.Table().Symbols() {
		return 0, ErrSymbolRange
	}
	if value == cur {
		return 0, nil
	}
	if e.engine.Policy() == partition.Ignore {
		return e.fastDelta(value, coords)
	}

	return e.slowDelta(value, coords)
}

// fastDelta adjusts the two sum terms a single-cell edit can touch: the
// block losing one occurrence and the block gaining one. Valid only under
// partition.Ignore, where blocks tile the dataset disjointly.
func (e *Experiment) fastDelta(value int, coords []int) (float64, error) {
	size := e.engine.BlockSize()
	shape := e.data.Shape()
	dims := len(shape)

	// Locate the tile containing the cell; remainder cells are in no block.
	origin := make([]int, dims)
	blockShape := make([]int, dims)
	for a := 0; a < dims; a++ {
		origin[a] = coords[a] / size * size
		blockShape[a] = size
		if origin[a]+size > shape[a] {
			return 0, nil
		}
	}

	region, err := e.data.Region(origin, blockShape)
	if err != nil {
		return 0, err
	}
	old := region.Cells()

	// Row-major offset of the edited cell inside the block.
	idx := 0
	for a := 0; a < dims; a++ {
		idx = idx*size + coords[a] - origin[a]
	}
	next := make([]int, len(old))
	copy(next, old)
	next[idx] = value

	var delta float64

	// One occurrence of the old block leaves the sum.
	n := e.base.N(blockShape, old)
	cost, priced, err := e.engine.BlockCost(blockShape, old, false)
	if err != nil {
		return 0, err
	}
	if priced {
		if n > 1 {
			delta += math.Log2(float64(n-1)) - math.Log2(float64(n))
		} else {
			delta -= cost
		}
	}

	// One occurrence of the new block enters the sum.
	m := e.base.N(blockShape, next)
	cost, priced, err = e.engine.BlockCost(blockShape, next, false)
	if err != nil {
		return 0, err
	}
	if priced {
		if m >= 1 {
			delta += math.Log2(float64(m+1)) - math.Log2(float64(m))
		} else {
			delta += cost
		}
	}

	return delta, nil
}

// slowDelta recomputes the estimate of a mutated clone.
func (e *Experiment) slowDelta(value int, coords []int) (float64, error) {
	mutated := e.data.Clone()
	if err := mutated.Set(value, coords...); err != nil {
		return 0, err
	}
	v, err := e.engine.Compute(mutated)
	if err != nil {
		return 0, err
	}

	return v - e.value, nil
}

// Flips builds the canonical target set: every cell rewritten to the next
// symbol of the alphabet (for binary data, a bit flip). Targets follow
// row-major cell order.
func (e *Experiment) Flips() []Target {
	if e.data.Len() == 0 {
		return nil
	}
	symbols := e.engine.Table().Symbols()
	shape := e.data.Shape()
	dims := len(shape)

	targets := make([]Target, 0, e.data.Len())
	coords := make([]int, dims)
	for {
		cur, _ := e.data.At(coords...)
		c := make([]int, dims)
		copy(c, coords)
		targets = append(targets, Target{Coords: c, Value: (cur + 1) % symbols})

		a := dims - 1
		for ; a >= 0; a-- {
			coords[a]++
			if coords[a] < shape[a] {
				break
			}
			coords[a] = 0
		}
		if a < 0 {
			break
		}
	}

	return targets
}

// Run evaluates every target and returns one Result per target, in target
// order. Parallelism is bounded by the experiment's worker budget; a
// cancelled context or a failing target aborts the run with that error.
func (e *Experiment) Run(ctx context.Context, targets []Target) ([]Result, error) {
	results := make([]Result, len(targets))
	if len(targets) == 0 {
		return results, nil
	}

	sem := semaphore.NewWeighted(int64(e.workers))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i := range targets {
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()

			break
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer sem.Release(1)

			t := targets[i]
			d, err := e.Delta(t.Value, t.Coords...)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()

				return
			}
			results[i] = Result{Target: t, Value: e.value + d, Delta: d}
		}(i)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}

// Report condenses a result set into summary statistics over the deltas.
// Returns ErrNoResults when there is nothing to summarize.
func Report(results []Result) (Summary, error) {
	if len(results) == 0 {
		return Summary{}, ErrNoResults
	}

	deltas := make([]float64, len(results))
	for i, r := range results {
		deltas[i] = r.Delta
	}
	mean, _ := stats.Mean(deltas)
	median, _ := stats.Median(deltas)
	sd, _ := stats.StandardDeviation(deltas)

	return Summary{
		N:      len(results),
		Mean:   mean,
		Median: median,
		StdDev: sd,
		Min:    floats.Min(deltas),
		Max:    floats.Max(deltas),
	}, nil
}
