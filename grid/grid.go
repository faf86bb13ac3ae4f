package grid

import (
	"fmt"
	"slices"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later caller mutations are not observed.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular (wrapped with the offending row) if any row length differs.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", r, len(row), cols, ErrNonRectangular)
		}
	}

	return &Grid{rows: rows, cols: cols, cells: copyCells(values)}, nil
}

// Rows returns the number of rows (n).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns (m).
func (g *Grid) Cols() int { return g.cols }

// At returns the reward at (row, col). The caller must stay in bounds.
func (g *Grid) At(row, col int) int { return g.cells[row][col] }

// Row returns a copy of one grid row.
func (g *Grid) Row(row int) []int {
	out := make([]int, g.cols)
	copy(out, g.cells[row])

	return out
}

// Values returns a deep copy of the underlying table.
func (g *Grid) Values() [][]int { return copyCells(g.cells) }

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && g.ColInBounds(col)
}

// ColInBounds reports whether col is a valid column index.
func (g *Grid) ColInBounds(col int) bool {
	return col >= 0 && col < g.cols
}

// Reward returns what two walkers standing on row at columns colA and colB
// collect together. A shared cell is counted once.
// Sums are Go int, so two 32-bit rewards are exact only where int is 64-bit.
// Complexity: O(1).
func (g *Grid) Reward(row, colA, colB int) int {
	if colA == colB {
		return g.cells[row][colA]
	}

	return g.cells[row][colA] + g.cells[row][colB]
}

// Mirror returns a new Grid with columns reflected left-to-right,
// so column c of the result is column Cols()-1-c of g.
// Complexity: O(R×C).
func (g *Grid) Mirror() *Grid {
	cells := make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		cells[r] = g.Row(r)
		slices.Reverse(cells[r])
	}

	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// With returns a copy of g whose (row, col) reward is replaced by value.
// Returns ErrOutOfRange if (row, col) is outside the grid.
// Complexity: O(R×C).
func (g *Grid) With(row, col, value int) (*Grid, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("(%d,%d) in %dx%d grid: %w", row, col, g.rows, g.cols, ErrOutOfRange)
	}
	cells := copyCells(g.cells)
	cells[row][col] = value

	return &Grid{rows: g.rows, cols: g.cols, cells: cells}, nil
}

// copyCells deep-copies a rectangular table.
func copyCells(src [][]int) [][]int {
	dst := make([][]int, len(src))
	for r := range src {
		dst[r] = make([]int, len(src[r]))
		copy(dst[r], src[r])
	}

	return dst
}
