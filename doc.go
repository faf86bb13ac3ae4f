// Package lvdp is an in-memory playground for layered dynamic programming
// over integer grids.
//
// 🚀 What is in lvdp?
//
//	A small, dependency-light library built around one recurrence family:
//		• grid/    : immutable, validated reward grids and the coincidence rule
//		• dualwalk/: two walkers descending a grid together, maximizing the
//		            combined reward (rolling two-layer or full-table tabulation,
//		            optional path recovery, recursive reference solvers)
//
// ✨ Why lvdp?
//
//   - Explicit memory modes: O(m²) rolling layers or the full n×m×m table
//   - Reentrant: every call owns its layers, no package-level state
//   - Deterministic: ties resolve in a fixed move order
//
// Quick ASCII example (walkers start at the two top corners):
//
//	A . B
//	. . .
//	. . .
//
//	go get github.com/katalvlaran/lvdp/dualwalk
package lvdp
