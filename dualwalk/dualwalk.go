package dualwalk

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/lvdp/grid"
)

// MaxReward validates values as a grid and returns the best combined reward
// under DefaultOptions.
//
// Errors:
//   - grid.ErrEmptyGrid: no rows or no columns.
//   - grid.ErrNonRectangular: rows of differing lengths.
func MaxReward(values [][]int) (int, error) {
	g, err := grid.New(values)
	if err != nil {
		return 0, err
	}
	res, err := Solve(g, nil)
	if err != nil {
		return 0, err
	}

	return res.Reward, nil
}

// Solve runs the layered tabulation over g. A nil opts means DefaultOptions().
//
// Algorithm Outline:
//  1. Fill the last row's layer directly from the grid (coincidence rule).
//  2. For row = n-2 down to 0: fill every (a, b) cell of a fresh layer from
//     the layer below it, then make it the new "below" layer.
//  3. The answer is the row-0 layer at (0, m-1).
//  4. If ReturnPath, replay the argmax choices from (0, 0, m-1) downward.
//
// With n == 1 step 2 runs zero times.
//
// Example:
//
//	opts := dualwalk.Options{MemoryMode: dualwalk.FullMatrix, ReturnPath: true}
//	res, err := dualwalk.Solve(g, &opts)
func Solve(g *grid.Grid, opts *Options) (Result, error) {
	return SolveContext(context.Background(), g, opts)
}

// SolveContext is Solve with cancellation checked between rows and inside
// parallel row workers. It returns ctx.Err() if the context ends early.
func SolveContext(ctx context.Context, g *grid.Grid, opts *Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateOptions(o); err != nil {
		return Result{}, err
	}

	logger := loggerFor(o)
	n, m := g.Rows(), g.Cols()
	logger.Debug("solve started",
		slog.Int("rows", n),
		slog.Int("cols", m),
		slog.String("mode", o.MemoryMode.String()),
		slog.Int("workers", o.Workers))

	var layers []*layer
	next := baseLayer(g)
	if o.MemoryMode == FullMatrix {
		layers = make([]*layer, n)
		layers[n-1] = next
	}

	// spare is the retired layer reused in TwoLayers mode; every cell is
	// overwritten before it is read again.
	var spare *layer
	for row := n - 2; row >= 0; row-- {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		curr := spare
		if curr == nil || o.MemoryMode == FullMatrix {
			curr = newLayer(m)
		}
		if err := fillRow(ctx, g, next, curr, row, o.Workers); err != nil {
			return Result{}, err
		}
		if o.MemoryMode == FullMatrix {
			layers[row] = curr
		} else {
			spare = next
		}
		next = curr
	}

	res := Result{Reward: next.at(0, m-1)}
	if o.ReturnPath {
		res.Path = tracePath(g, layers)
	}
	logger.Debug("solve finished", slog.Int("reward", res.Reward))

	return res, nil
}

// validateOptions checks Options without looking at the grid.
func validateOptions(o Options) error {
	switch o.MemoryMode {
	case TwoLayers, FullMatrix:
	default:
		return ErrBadOptions
	}
	if o.Workers < 0 {
		return ErrBadOptions
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return ErrPathNeedsFullMatrix
	}

	return nil
}

// loggerFor tags the caller's logger with the package component, or returns
// a logger that drops everything.
func loggerFor(o Options) *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger.With(slog.String("component", "dualwalk"))
}
