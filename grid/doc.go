// Package grid holds the immutable reward table walked by the dualwalk solver.
//
// What:
//
//   - Grid wraps a rectangular [][]int of per-cell rewards, deep-copied on New.
//   - Moves lists the column displacements a walker may take per row: -1, 0, +1.
//   - Reward applies the coincidence rule: two walkers on one cell collect it once.
//
// Rewards and their sums are Go int. Cell rewards may span the signed 32-bit
// range; sums over many rows assume a 64-bit int.
//
// Why:
//
//   - Every solver variant reads the same validated input and never mutates it.
//   - Shape validation happens once, before any table is allocated.
//
// Complexity:
//
//   - New, Values, Mirror, With: O(R×C) time and memory.
//   - At, Reward, InBounds:      O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfRange: a coordinate passed to With lies outside the grid.
package grid
