package partition_test

import (
	"fmt"

	"github.com/sragli/BDM/dataset"
	"github.com/sragli/BDM/partition"
)

// ExampleSplit contrasts the four boundary policies on the same input.
//
// Scenario:
//
//	A 7-cell binary string does not divide into side-3 blocks: one block
//	fits twice and a single cell remains. Each policy resolves the leftover
//	differently — the choice is the bias/coverage trade-off of the whole
//	decomposition.
//
// Complexity: O(V×D) per policy (Correlated: O(W×size)).
func ExampleSplit() {
	d, err := dataset.FromCells([]int{7}, []int{0, 1, 0, 1, 0, 1, 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	opts := partition.DefaultOptions()
	opts.PadSymbol = 2 // first symbol outside the binary alphabet

	for _, p := range []partition.Policy{partition.Ignore, partition.Recursive, partition.Correlated, partition.Pad} {
		blocks, err := partition.Split(d, 3, p, opts)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%-10s →", p)
		for _, b := range blocks {
			fmt.Printf(" %v", b.Data.Cells())
		}
		fmt.Println()
	}
	// Output:
	// ignore     → [0 1 0] [1 0 1]
	// recursive  → [0 1 0] [1 0 1]
	// correlated → [0 1 0] [1 0 1] [0 1 0] [1 0 1] [0 1 1]
	// pad        → [0 1 0] [1 0 1] [1 2 2]
}
