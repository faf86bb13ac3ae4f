package dualwalk

import "github.com/katalvlaran/lvdp/grid"

// BruteForce explores all 9^(n-1) joint walks recursively.
// Off-grid moves are skipped before recursing, so every folded value is a
// real total. Exponential; meant for cross-checking Solve on small grids.
func BruteForce(g *grid.Grid) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}

	return bruteForce(g, 0, 0, g.Cols()-1), nil
}

func bruteForce(g *grid.Grid, row, a, b int) int {
	here := g.Reward(row, a, b)
	if row == g.Rows()-1 {
		return here
	}
	var (
		best  int
		found bool
	)
	for _, da := range grid.Moves {
		if !g.ColInBounds(a + da) {
			continue
		}
		for _, db := range grid.Moves {
			if !g.ColInBounds(b + db) {
				continue
			}
			if v := bruteForce(g, row+1, a+da, b+db); !found || v > best {
				best, found = v, true
			}
		}
	}

	return here + best
}

// Memoized is the top-down form of the recurrence with an n×m×m cache.
// Cached entries are tracked by a separate done flag, so no reward value
// doubles as a "not computed" marker.
// Complexity: O(n·m²) time and memory, recursion depth n.
func Memoized(g *grid.Grid) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	n, m := g.Rows(), g.Cols()
	mc := &memo{
		g:     g,
		m:     m,
		value: make([]int, n*m*m),
		done:  make([]bool, n*m*m),
	}

	return mc.solve(0, 0, m-1), nil
}

type memo struct {
	g     *grid.Grid
	m     int
	value []int
	done  []bool
}

// solve expects (a, b) on the grid; callers filter off-grid moves.
func (mc *memo) solve(row, a, b int) int {
	here := mc.g.Reward(row, a, b)
	if row == mc.g.Rows()-1 {
		return here
	}
	idx := (row*mc.m+a)*mc.m + b
	if mc.done[idx] {
		return mc.value[idx]
	}
	var (
		best  int
		found bool
	)
	for _, da := range grid.Moves {
		if !mc.g.ColInBounds(a + da) {
			continue
		}
		for _, db := range grid.Moves {
			if !mc.g.ColInBounds(b + db) {
				continue
			}
			if v := mc.solve(row+1, a+da, b+db); !found || v > best {
				best, found = v, true
			}
		}
	}
	mc.value[idx], mc.done[idx] = here+best, true

	return here + best
}
