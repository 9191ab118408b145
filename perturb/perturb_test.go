package perturb_test

import (
	"context"
	"math"
	"testing"

	bdm "github.com/sragli/BDM"
	"github.com/sragli/BDM/ctm"
	"github.com/sragli/BDM/dataset"
	"github.com/sragli/BDM/partition"
	"github.com/sragli/BDM/perturb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureEntries is a complete 1D binary catalog for lengths 1..3 with
// hand-picked prices; every expectation below is arithmetic against it.
func fixtureEntries() []ctm.Entry {
	return []ctm.Entry{
		{Shape: []int{1}, Cells: []int{0}, Value: 2.0},
		{Shape: []int{1}, Cells: []int{1}, Value: 2.0},
		{Shape: []int{2}, Cells: []int{0, 0}, Value: 2.5},
		{Shape: []int{2}, Cells: []int{1, 1}, Value: 2.5},
		{Shape: []int{2}, Cells: []int{0, 1}, Value: 3.5},
		{Shape: []int{2}, Cells: []int{1, 0}, Value: 3.5},
		{Shape: []int{3}, Cells: []int{0, 0, 0}, Value: 4.0},
		{Shape: []int{3}, Cells: []int{1, 1, 1}, Value: 4.0},
		{Shape: []int{3}, Cells: []int{0, 1, 0}, Value: 5.0},
		{Shape: []int{3}, Cells: []int{1, 0, 1}, Value: 5.0},
		{Shape: []int{3}, Cells: []int{0, 0, 1}, Value: 5.5},
		{Shape: []int{3}, Cells: []int{0, 1, 1}, Value: 5.5},
		{Shape: []int{3}, Cells: []int{1, 0, 0}, Value: 5.5},
		{Shape: []int{3}, Cells: []int{1, 1, 0}, Value: 5.5},
	}
}

// stringEngine builds an engine over the 1D fixture catalog.
func stringEngine(t *testing.T, opts ...bdm.Option) *bdm.Engine {
	t.Helper()

	tbl, err := ctm.Build(1, 2, ctm.NewSliceReader(fixtureEntries()))
	require.NoError(t, err)
	eng, err := bdm.New(tbl, opts...)
	require.NoError(t, err)

	return eng
}

// matrixEngine builds an engine over a complete 2x2 binary catalog with
// sixteen distinct generated prices.
func matrixEngine(t *testing.T) *bdm.Engine {
	t.Helper()

	var entries []ctm.Entry
	for i := 0; i < 16; i++ {
		cells := []int{i >> 3 & 1, i >> 2 & 1, i >> 1 & 1, i & 1}
		entries = append(entries, ctm.Entry{Shape: []int{2, 2}, Cells: cells, Value: 3.0 + float64(i)*0.125})
	}
	tbl, err := ctm.Build(2, 2, ctm.NewSliceReader(entries))
	require.NoError(t, err)
	eng, err := bdm.New(tbl)
	require.NoError(t, err)

	return eng
}

// mustDataset builds a 1D dataset from its cells.
func mustDataset(t *testing.T, cells ...int) *dataset.Dataset {
	t.Helper()
	d, err := dataset.FromCells([]int{len(cells)}, cells)
	require.NoError(t, err)

	return d
}

// TestNew_Validation covers the construction gate: missing inputs and
// engine-side validation passing through.
func TestNew_Validation(t *testing.T) {
	eng := stringEngine(t)

	_, err := perturb.New(nil, mustDataset(t, 0, 1))
	assert.ErrorIs(t, err, perturb.ErrNilEngine)

	_, err = perturb.New(eng, nil)
	assert.ErrorIs(t, err, perturb.ErrNilDataset)

	grid, err := dataset.FromGrid([][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)
	_, err = perturb.New(eng, grid)
	assert.ErrorIs(t, err, bdm.ErrDimensionMismatch, "engine validation passes through")

	assert.Panics(t, func() { perturb.WithWorkers(0) })
}

// TestNew_DetachedFromCaller verifies the dataset is copied at construction:
// later caller-side writes cannot skew the experiment.
func TestNew_DetachedFromCaller(t *testing.T) {
	eng := stringEngine(t)
	d := mustDataset(t, 0, 0, 0, 0, 0, 0)

	exp, err := perturb.New(eng, d)
	require.NoError(t, err)
	require.NoError(t, d.Set(1, 0))

	assert.Equal(t, 5.0, exp.Baseline(), "baseline was frozen before the write")
	delta, err := exp.Delta(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, delta, 1e-12, "the experiment still sees the original cell")
}

// TestDelta_Validation covers the per-target gate: alphabet and addressing.
func TestDelta_Validation(t *testing.T) {
	exp, err := perturb.New(stringEngine(t), mustDataset(t, 0, 0, 0))
	require.NoError(t, err)

	_, err = exp.Delta(2, 0)
	assert.ErrorIs(t, err, perturb.ErrSymbolRange)
	_, err = exp.Delta(-1, 0)
	assert.ErrorIs(t, err, perturb.ErrSymbolRange)
	_, err = exp.Delta(1, 9)
	assert.ErrorIs(t, err, dataset.ErrOutOfBounds)
	_, err = exp.Delta(1, 0, 0)
	assert.ErrorIs(t, err, dataset.ErrDimensionMismatch)
}

// TestDelta_Arithmetic pins hand-computed deltas under Ignore.
func TestDelta_Arithmetic(t *testing.T) {
	eng := stringEngine(t)

	// Two identical blocks: flipping one cell un-shares them.
	exp, err := perturb.New(eng, mustDataset(t, 0, 0, 0, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 5.0, exp.Baseline())
	delta, err := exp.Delta(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, delta, 1e-12, "-log2(2) for un-sharing, +5.5 for the new block")

	// Distinct blocks: flipping the last cell swaps one block for another.
	exp, err = perturb.New(eng, mustDataset(t, 0, 0, 0, 1, 1, 1))
	require.NoError(t, err)
	delta, err = exp.Delta(0, 5)
	require.NoError(t, err)
	assert.InDelta(t, -4.0+5.5, delta, 1e-12, "-4.0 for [1 1 1], +5.5 for [1 1 0]")

	// An edit that makes two blocks identical earns the sharing discount.
	exp, err = perturb.New(eng, mustDataset(t, 0, 0, 0, 0, 0, 1))
	require.NoError(t, err)
	delta, err = exp.Delta(0, 5)
	require.NoError(t, err)
	assert.InDelta(t, -5.5+1.0, delta, 1e-12, "-5.5 for [0 0 1], +log2(2) for sharing")

	// Writing the current value is free.
	delta, err = exp.Delta(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, delta)

	// Cells in the dropped remainder cannot move the estimate.
	exp, err = perturb.New(eng, mustDataset(t, 0, 0, 0, 0, 0, 0, 1))
	require.NoError(t, err)
	delta, err = exp.Delta(0, 6)
	require.NoError(t, err)
	assert.Equal(t, 0.0, delta)
}

// TestDelta_FastMatchesSlow sweeps every cell and every symbol and checks
// the incremental delta against a full recomputation of a mutated clone.
func TestDelta_FastMatchesSlow(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		eng := stringEngine(t)
		d := mustDataset(t, 0, 1, 1, 0, 0, 0, 1, 0)
		deltaSweep(t, eng, d)
	})

	t.Run("matrix", func(t *testing.T) {
		eng := matrixEngine(t)
		d, err := dataset.FromGrid([][]int{
			{0, 1, 1, 0, 1},
			{1, 0, 0, 1, 0},
			{0, 0, 1, 1, 1},
			{1, 0, 1, 0, 0},
		})
		require.NoError(t, err)
		deltaSweep(t, eng, d)
	})
}

// deltaSweep compares Delta against clone-and-recompute for every cell and
// symbol of d.
func deltaSweep(t *testing.T, eng *bdm.Engine, d *dataset.Dataset) {
	t.Helper()

	exp, err := perturb.New(eng, d)
	require.NoError(t, err)
	base, err := eng.Compute(d)
	require.NoError(t, err)

	shape := d.Shape()
	coords := make([]int, d.Dims())
	for {
		for v := 0; v < eng.Table().Symbols(); v++ {
			fast, err := exp.Delta(v, coords...)
			require.NoError(t, err)

			mutated := d.Clone()
			require.NoError(t, mutated.Set(v, coords...))
			full, err := eng.Compute(mutated)
			require.NoError(t, err)

			assert.InDelta(t, full-base, fast, 1e-9, "cell %v value %d", coords, v)
		}

		a := d.Dims() - 1
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
}

// TestDelta_SlowPolicies verifies the recomputation path used by policies
// without disjoint tiles.
func TestDelta_SlowPolicies(t *testing.T) {
	eng := stringEngine(t, bdm.WithPolicy(partition.Recursive))
	exp, err := perturb.New(eng, mustDataset(t, 0, 0, 0, 0, 0, 0, 1, 1))
	require.NoError(t, err)
	assert.InDelta(t, 7.5, exp.Baseline(), 1e-12)
	delta, err := exp.Delta(0, 7)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, delta, 1e-12, "remainder [1 1] at 2.5 becomes [1 0] at 3.5")

	eng = stringEngine(t, bdm.WithPolicy(partition.Correlated))
	exp, err = perturb.New(eng, mustDataset(t, 0, 0, 0, 0))
	require.NoError(t, err)
	delta, err = exp.Delta(1, 3)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, delta, 1e-12, "windows [0 0 0]+[0 0 1] replace two shared [0 0 0]")
}

// TestFlips verifies the canonical target set: every cell, next symbol,
// row-major order.
func TestFlips(t *testing.T) {
	exp, err := perturb.New(stringEngine(t), mustDataset(t, 0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, []perturb.Target{
		{Coords: []int{0}, Value: 1},
		{Coords: []int{1}, Value: 0},
		{Coords: []int{2}, Value: 1},
	}, exp.Flips())

	grid, err := dataset.FromGrid([][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)
	exp2, err := perturb.New(matrixEngine(t), grid)
	require.NoError(t, err)
	assert.Equal(t, []perturb.Target{
		{Coords: []int{0, 0}, Value: 1},
		{Coords: []int{0, 1}, Value: 0},
		{Coords: []int{1, 0}, Value: 0},
		{Coords: []int{1, 1}, Value: 1},
	}, exp2.Flips())
}

// TestRun verifies batch evaluation: order-preserving results, bounded
// workers, error propagation and context cancellation.
func TestRun(t *testing.T) {
	eng := stringEngine(t)
	exp, err := perturb.New(eng, mustDataset(t, 0, 0, 0, 0, 0, 0), perturb.WithWorkers(3))
	require.NoError(t, err)

	results, err := exp.Run(context.Background(), exp.Flips())
	require.NoError(t, err)
	require.Len(t, results, 6)
	// Un-sharing costs -log2(2) everywhere; the new block's price depends on
	// where inside the block the flip lands: [0 1 0] is cheaper than
	// [1 0 0] or [0 0 1].
	want := []float64{4.5, 4.0, 4.5, 4.5, 4.0, 4.5}
	for i, r := range results {
		assert.Equal(t, []int{i}, r.Target.Coords, "results keep target order")
		assert.InDelta(t, want[i], r.Delta, 1e-12, "block-local position sets the new block's price")
		assert.InDelta(t, exp.Baseline()+want[i], r.Value, 1e-12)
	}

	results, err = exp.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = exp.Run(context.Background(), []perturb.Target{{Coords: []int{0}, Value: 7}})
	assert.ErrorIs(t, err, perturb.ErrSymbolRange, "a failing target aborts the run")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = exp.Run(ctx, exp.Flips())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestReport pins the summary arithmetic and the empty-input sentinel.
func TestReport(t *testing.T) {
	summary, err := perturb.Report([]perturb.Result{
		{Delta: 1.0},
		{Delta: 3.0},
		{Delta: 2.0},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.N)
	assert.InDelta(t, 2.0, summary.Mean, 1e-12)
	assert.InDelta(t, 2.0, summary.Median, 1e-12)
	assert.InDelta(t, math.Sqrt(2.0/3.0), summary.StdDev, 1e-12)
	assert.Equal(t, 1.0, summary.Min)
	assert.Equal(t, 3.0, summary.Max)

	_, err = perturb.Report(nil)
	assert.ErrorIs(t, err, perturb.ErrNoResults)
}
