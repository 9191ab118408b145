package dataset_test

import (
	"fmt"

	"github.com/sragli/BDM/dataset"
)

// ExampleFromGrid builds a small binary matrix and reads one cell.
//
// Scenario:
//
//	Wrap a 2D grid (e.g. an adjacency matrix or a bitmap) so that it can be
//	decomposed into blocks and scored.
//
// Complexity: O(H×W) time and memory.
func ExampleFromGrid() {
	d, err := dataset.FromGrid([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	v, _ := d.At(1, 2)
	fmt.Printf("shape=%v cells=%d at(1,2)=%d\n", d.Shape(), d.Len(), v)
	// Output:
	// shape=[2 3] cells=6 at(1,2)=1
}

// ExampleCheckerboard generates the canonical highly-regular fixture.
//
// Scenario:
//
//	Checkerboards decompose into a single repeated block, so they sit near
//	the low-complexity end of any block-based estimator — a handy sanity
//	probe for scoring pipelines.
//
// Complexity: O(V×D) time, O(V) memory.
func ExampleCheckerboard() {
	d, err := dataset.Checkerboard(4, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for row := 0; row < 4; row++ {
		fmt.Println(d.Cells()[row*4 : row*4+4])
	}
	// Output:
	// [0 1 0 1]
	// [1 0 1 0]
	// [0 1 0 1]
	// [1 0 1 0]
}
