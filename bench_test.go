package bdm_test

import (
	"testing"

	bdm "github.com/sragli/BDM"
	"github.com/sragli/BDM/ctm/ctmdata"
	"github.com/sragli/BDM/dataset"
)

// BenchmarkCompute_String measures end-to-end estimation of a random
// 4096-cell binary string against the bundled length-12 catalog.
// Complexity: O(V×D) decomposition + O(U) aggregation
func BenchmarkCompute_String(b *testing.B) {
	table, err := ctmdata.Load(ctmdata.B2D12)
	if err != nil {
		b.Fatalf("setup Load failed: %v", err)
	}
	engine, err := bdm.New(table)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	d, err := dataset.Random([]int{4096}, 2, 42)
	if err != nil {
		b.Fatalf("setup Random failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = engine.Compute(d); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

// BenchmarkCompute_Matrix measures end-to-end estimation of a random
// 256×256 binary matrix against the bundled 4×4 catalog.
// Complexity: O(V×D) decomposition + O(U) aggregation
func BenchmarkCompute_Matrix(b *testing.B) {
	table, err := ctmdata.Load(ctmdata.B2D4x4)
	if err != nil {
		b.Fatalf("setup Load failed: %v", err)
	}
	engine, err := bdm.New(table)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	d, err := dataset.Random([]int{256, 256}, 2, 42)
	if err != nil {
		b.Fatalf("setup Random failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = engine.Compute(d); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

// BenchmarkComputeFromCounts isolates the aggregation stage: counting runs
// once in setup, pricing and summation run per iteration.
// Complexity: O(U), U = distinct blocks
func BenchmarkComputeFromCounts(b *testing.B) {
	table, err := ctmdata.Load(ctmdata.B2D12)
	if err != nil {
		b.Fatalf("setup Load failed: %v", err)
	}
	engine, err := bdm.New(table)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	d, err := dataset.Random([]int{8192}, 2, 42)
	if err != nil {
		b.Fatalf("setup Random failed: %v", err)
	}
	ctr, err := engine.CountBlocks(d)
	if err != nil {
		b.Fatalf("setup CountBlocks failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = engine.ComputeFromCounts(ctr); err != nil {
			b.Fatalf("ComputeFromCounts failed: %v", err)
		}
	}
}
