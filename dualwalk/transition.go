package dualwalk

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvdp/grid"
)

// baseLayer fills the last row: both walkers have nowhere left to go, so the
// value is just what they collect on that row.
func baseLayer(g *grid.Grid) *layer {
	m, last := g.Cols(), g.Rows()-1
	l := newLayer(m)
	for a := 0; a < m; a++ {
		for b := 0; b < m; b++ {
			l.set(a, b, g.Reward(last, a, b))
		}
	}

	return l
}

// evalCell computes cell (a, b) of row's layer from the finalized layer of
// row+1. It also returns the displacement pair that produced the maximum;
// ties go to the first pair in Moves×Moves order.
//
// Off-grid candidates are skipped. The (0, 0) pair is always in bounds, so
// the NegInf branch is unreachable for a valid grid.
func evalCell(g *grid.Grid, next *layer, row, a, b int) (int, [2]int) {
	var (
		best  int
		move  [2]int
		found bool
	)
	for _, da := range grid.Moves {
		na := a + da
		if !g.ColInBounds(na) {
			continue
		}
		for _, db := range grid.Moves {
			nb := b + db
			if !g.ColInBounds(nb) {
				continue
			}
			if v := next.at(na, nb); !found || v > best {
				best, move, found = v, [2]int{da, db}, true
			}
		}
	}
	if !found {
		return NegInf, move
	}

	return g.Reward(row, a, b) + best, move
}

// fillCols writes cells (a, b) for lo <= a < hi and every b.
func fillCols(g *grid.Grid, next, curr *layer, row, lo, hi int) {
	m := g.Cols()
	for a := lo; a < hi; a++ {
		for b := 0; b < m; b++ {
			v, _ := evalCell(g, next, row, a, b)
			curr.set(a, b, v)
		}
	}
}

// fillRow fully populates curr for row. Cells only read next, so with
// workers > 1 the colA range is split into contiguous chunks evaluated
// concurrently; each chunk writes a disjoint slice of curr.
func fillRow(ctx context.Context, g *grid.Grid, next, curr *layer, row, workers int) error {
	m := g.Cols()
	if workers <= 1 || m < 2 {
		fillCols(g, next, curr, row, 0, m)

		return nil
	}

	chunk := (m + workers - 1) / workers
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for lo := 0; lo < m; lo += chunk {
		hi := min(lo+chunk, m)
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			fillCols(g, next, curr, row, lo, hi)

			return nil
		})
	}

	return eg.Wait()
}
