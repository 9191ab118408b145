package ctm_test

import (
	"fmt"

	"github.com/sragli/BDM/ctm"
)

// ExampleBuild constructs a hand-made catalog and queries it.
//
// Scenario:
//
//	Price the four binary 2-cell blocks: uniform blocks are cheap,
//	alternating blocks cost more. Real catalogs come from offline
//	Turing-machine enumerations (see the ctmdata subpackage); the query
//	surface is identical.
//
// Complexity: Build O(N×V), Lookup O(V).
func ExampleBuild() {
	tbl, err := ctm.Build(1, 2, ctm.NewSliceReader([]ctm.Entry{
		{Shape: []int{2}, Cells: []int{0, 0}, Value: 2.5},
		{Shape: []int{2}, Cells: []int{1, 1}, Value: 2.5},
		{Shape: []int{2}, Cells: []int{0, 1}, Value: 3.5},
		{Shape: []int{2}, Cells: []int{1, 0}, Value: 3.5},
	}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	v, ok := tbl.Lookup([]int{2}, []int{1, 0})
	st, _ := tbl.Stats([]int{2})
	fmt.Printf("priced=%v value=%.1f\n", ok, v)
	fmt.Printf("covers(2)=%v entries=%d min=%.1f max=%.1f\n", tbl.Covers(2), st.Count, st.Min, st.Max)
	// Output:
	// priced=true value=3.5
	// covers(2)=true entries=4 min=2.5 max=3.5
}
