// Package dualwalk computes the best combined reward two walkers can collect
// while descending a grid together.
//
// 🚀 What is the two-walker descent?
//
//	Walker A starts at row 0, column 0; walker B starts at row 0, column m-1.
//	On every step both move down one row, each to column c-1, c or c+1.
//	Every visited cell pays its reward; when both walkers stand on the same
//	cell it pays once. The goal is the maximum total after the last row.
//
// ✨ Key features:
//   - TwoLayers mode: O(m²) memory, two m×m layers rolled from the last row up
//   - FullMatrix mode: O(n·m²) memory, keeps every layer and can return the
//     walkers' columns row by row (ReturnPath=true)
//   - optional intra-row parallelism (Workers > 1); rows stay strictly ordered
//   - BruteForce and Memoized reference solvers for cross-checking
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvdp/dualwalk"
//
//	best, err := dualwalk.MaxReward([][]int{
//	  {3, 1, 1},
//	  {2, 5, 1},
//	  {1, 5, 5},
//	  {2, 1, 1},
//	})
//	// best == 24
//
// Recurrence:
//
//	f(n-1, a, b) = R(n-1, a, b)
//	f(i, a, b)   = R(i, a, b) + max{ f(i+1, a+da, b+db) : da, db ∈ {-1,0,1}, in bounds }
//	R(i, a, b)   = grid[i][a]                 if a == b
//	             = grid[i][a] + grid[i][b]    otherwise
//	answer       = f(0, 0, m-1)
//
// Performance:
//
//   - Time:   O(n·m²·9)
//   - Memory: O(m²) (TwoLayers) or O(n·m²) (FullMatrix)
package dualwalk
