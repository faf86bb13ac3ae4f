package grid

import "errors"

// Sentinel errors for grid construction and updates.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfRange indicates a (row, col) coordinate outside the grid.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
)

// Moves is the set of column displacements available to a walker when it
// descends one row: down-left, straight down, down-right.
var Moves = [3]int{-1, 0, 1}

// Grid is an immutable Rows×Cols table of integer rewards.
// cells[row][col] holds the reward collected on entering (row, col).
type Grid struct {
	rows, cols int
	cells      [][]int
}
