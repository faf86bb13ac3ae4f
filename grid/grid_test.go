package grid_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdp/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
		err    error
	}{
		{"Nil", nil, grid.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
		{"NonRectangularLonger", [][]int{{1}, {2}, {3, 4}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.values)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.values, err, tc.err)
			}
			assert.Nil(t, g)
		})
	}
}

// TestNew_DeepCopy ensures caller mutations after New are not observed.
func TestNew_DeepCopy(t *testing.T) {
	values := [][]int{{1, 2}, {3, 4}}
	g, err := grid.New(values)
	require.NoError(t, err)

	values[0][0] = 99
	assert.Equal(t, 1, g.At(0, 0), "grid must not alias caller slice")

	row := g.Row(1)
	row[0] = 42
	assert.Equal(t, 3, g.At(1, 0), "Row must return a copy")

	all := g.Values()
	all[1][1] = -7
	assert.Equal(t, 4, g.At(1, 1), "Values must return a deep copy")
}

// TestInBounds checks InBounds and ColInBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())

	for _, rc := range [][2]int{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
	for _, rc := range [][2]int{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		assert.False(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
	assert.False(t, g.ColInBounds(-1))
	assert.False(t, g.ColInBounds(3))
	assert.True(t, g.ColInBounds(2))
}

//----------------------------------------------------------------------------//
// Reward, Mirror and With Tests
//----------------------------------------------------------------------------//

// TestReward verifies the coincidence rule.
func TestReward(t *testing.T) {
	g, err := grid.New([][]int{{3, 1, 5}})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Reward(0, 0, 0), "shared cell counted once")
	assert.Equal(t, 8, g.Reward(0, 0, 2), "distinct cells summed")
	assert.Equal(t, 8, g.Reward(0, 2, 0), "reward is symmetric in the walkers")
}

// TestMirror checks column reflection and that the source is untouched.
func TestMirror(t *testing.T) {
	g, err := grid.New([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	want := [][]int{
		{3, 2, 1},
		{6, 5, 4},
	}
	if diff := cmp.Diff(want, g.Mirror().Values()); diff != "" {
		t.Errorf("Mirror mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]int{{1, 2, 3}, {4, 5, 6}}, g.Values()); diff != "" {
		t.Errorf("Mirror mutated source (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(g.Values(), g.Mirror().Mirror().Values()); diff != "" {
		t.Errorf("double Mirror is not identity (-want +got):\n%s", diff)
	}
}

// TestWith verifies single-cell replacement and its range check.
func TestWith(t *testing.T) {
	g, err := grid.New([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	h, err := g.With(1, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, h.At(1, 0))
	assert.Equal(t, 3, g.At(1, 0), "With must not mutate the receiver")

	_, err = g.With(2, 0, 1)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.With(0, -1, 1)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestMoves pins the displacement table.
func TestMoves(t *testing.T) {
	assert.Equal(t, [3]int{-1, 0, 1}, grid.Moves)
}
