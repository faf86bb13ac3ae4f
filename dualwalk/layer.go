package dualwalk

// layer is the m×m table of best forward rewards for one fixed row,
// indexed by (colA, colB) and stored row-major.
type layer struct {
	size  int
	cells []int
}

func newLayer(m int) *layer {
	return &layer{size: m, cells: make([]int, m*m)}
}

func (l *layer) at(a, b int) int { return l.cells[a*l.size+b] }

func (l *layer) set(a, b, v int) { l.cells[a*l.size+b] = v }
