package dualwalk

import (
	"errors"
	"log/slog"
	"math"
)

// Sentinel errors returned by the solvers.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed in.
	ErrNilGrid = errors.New("dualwalk: grid is nil")

	// ErrBadOptions indicates an unknown MemoryMode or a negative Workers count.
	ErrBadOptions = errors.New("dualwalk: invalid options")

	// ErrPathNeedsFullMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsFullMatrix = errors.New("dualwalk: ReturnPath requires MemoryMode=FullMatrix")
)

// NegInf marks a cell with no in-bounds successor. It is never folded into
// a max or added to a reward; for a valid grid it is unreachable because the
// straight-down pair always stays on the grid.
const NegInf = math.MinInt

// MemoryMode controls how many layers the tabulation keeps alive.
//
//   - TwoLayers: keep only the layer being filled and the one below it.
//     Memory: O(m²). Cannot recover the path.
//
//   - FullMatrix: keep one layer per row (the n×m×m table).
//     Memory: O(n·m²). Required for ReturnPath.
type MemoryMode int

const (
	// TwoLayers rolls two m×m layers; the default.
	TwoLayers MemoryMode = iota

	// FullMatrix stores every row's layer.
	FullMatrix
)

// String returns the mode name.
func (mm MemoryMode) String() string {
	switch mm {
	case TwoLayers:
		return "TwoLayers"
	case FullMatrix:
		return "FullMatrix"
	default:
		return "MemoryMode(?)"
	}
}

// Options configures Solve.
//
// Fields:
//   - MemoryMode: TwoLayers or FullMatrix storage.
//   - ReturnPath: if true, Solve also returns both walkers' columns per row.
//     Requires MemoryMode=FullMatrix.
//   - Workers: 0 or 1 evaluates a row sequentially; >1 splits the row's
//     cells across that many goroutines. Negative is rejected.
//   - Logger: optional debug sink; nil keeps the solver silent.
type Options struct {
	MemoryMode MemoryMode
	ReturnPath bool
	Workers    int
	Logger     *slog.Logger
}

// DefaultOptions returns TwoLayers, no path, sequential, silent.
func DefaultOptions() Options {
	return Options{
		MemoryMode: TwoLayers,
		ReturnPath: false,
		Workers:    1,
	}
}

// Step is the pair of columns occupied on one row.
type Step struct {
	Row, ColA, ColB int
}

// Result holds the outcome of Solve.
type Result struct {
	// Reward is the maximum combined reward. Totals are Go int; with 32-bit
	// cell rewards they need a 64-bit int to stay exact.
	Reward int

	// Path has one Step per grid row, starting at {0, 0, m-1}.
	// Nil unless Options.ReturnPath was set.
	Path []Step
}
