package dualwalk_test

import (
	"fmt"

	"github.com/katalvlaran/lvdp/dualwalk"
	"github.com/katalvlaran/lvdp/grid"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMaxReward
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two walkers start on the top row at the left and right edges.
//	  3 1 1
//	  2 5 1
//	  1 5 5
//	  2 1 1
//
// Each walker collects 12 along disjoint columns, 24 in total.
//
// Complexity: O(n·m²) time, O(m²) memory
func ExampleMaxReward() {
	best, err := dualwalk.MaxReward([][]int{
		{3, 1, 1},
		{2, 5, 1},
		{1, 5, 5},
		{2, 1, 1},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(best)
	// Output:
	// 24
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve_path
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A single-column corridor: both walkers share every cell, so each row
//	pays once and the path is forced.
//
// Options:
//   - MemoryMode = FullMatrix (keeps every layer)
//   - ReturnPath = true
func ExampleSolve_path() {
	g, err := grid.New([][]int{{4}, {1}, {2}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	opts := dualwalk.Options{MemoryMode: dualwalk.FullMatrix, ReturnPath: true}
	res, err := dualwalk.Solve(g, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("reward=%d\npath=%v\n", res.Reward, res.Path)
	// Output:
	// reward=7
	// path=[{0 0 0} {1 0 0} {2 0 0}]
}

// ExampleBruteForce cross-checks the tabulation on a tiny grid.
func ExampleBruteForce() {
	g, _ := grid.New([][]int{{1, 1}, {1, 1}})
	brute, _ := dualwalk.BruteForce(g)
	res, _ := dualwalk.Solve(g, nil)
	fmt.Println(brute, res.Reward)
	// Output:
	// 4 4
}
