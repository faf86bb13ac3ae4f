package dualwalk

import "github.com/katalvlaran/lvdp/grid"

// tracePath replays the argmax choice of every row from the start columns,
// using the full per-row layer table. len(result) == g.Rows().
func tracePath(g *grid.Grid, layers []*layer) []Step {
	n := g.Rows()
	path := make([]Step, 0, n)
	a, b := 0, g.Cols()-1
	for row := 0; row < n; row++ {
		path = append(path, Step{Row: row, ColA: a, ColB: b})
		if row == n-1 {
			break
		}
		_, mv := evalCell(g, layers[row+1], row, a, b)
		a += mv[0]
		b += mv[1]
	}

	return path
}

// PathReward sums what the walkers collect along path, applying the
// coincidence rule per row. It does not check that path is a legal walk.
func PathReward(g *grid.Grid, path []Step) int {
	total := 0
	for _, s := range path {
		total += g.Reward(s.Row, s.ColA, s.ColB)
	}

	return total
}
