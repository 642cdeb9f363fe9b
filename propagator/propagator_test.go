package propagator_test

import (
	"testing"

	"github.com/katalvlaran/wavecollapse/grid"
	"github.com/katalvlaran/wavecollapse/propagator"
	"github.com/katalvlaran/wavecollapse/random"
	"github.com/katalvlaran/wavecollapse/wave"
	"github.com/stretchr/testify/require"
)

// twoColorCompat builds a strict 2-coloring compatibility table over 2
// patterns (0,1): a cell of pattern t only tolerates 1-t as a neighbor
// in every direction, mirroring the "Tiled rules" 2-coloring scenario
// in SPEC_FULL.md §8 scenario 4, exercised directly at the propagator
// level here.
func twoColorCompat() propagator.CompatTable {
	return propagator.CompatTable{
		{{1}, {1}, {1}, {1}}, // pattern 0 tolerates only 1 in every direction
		{{0}, {0}, {0}, {0}}, // pattern 1 tolerates only 0
	}
}

func TestPropagate_TwoColoring_EvenTorus_NoContradiction(t *testing.T) {
	d, err := grid.NewDims(4, 4, true)
	require.NoError(t, err)

	w, err := wave.New(d, []float64{1, 1})
	require.NoError(t, err)

	p, err := propagator.New(d, 2, twoColorCompat())
	require.NoError(t, err)

	chosen, removed := w.Collapse(0, random.New(1))
	for _, t2 := range removed {
		p.AddToPropagate(0, t2)
	}
	require.True(t, p.Propagate(w))

	for dir := grid.Direction(0); dir < grid.NumDirections; dir++ {
		j, _ := grid.Neighbor(d, 0, dir)
		require.False(t, w.Get(j, chosen), "neighbor must not retain same color")
	}
}

// TestPropagate_TwoColoring_OddTorus_Contradiction attempts the same
// strict 2-coloring on a 3x3 periodic torus, which has no valid proper
// 2-coloring since both dimensions are odd; propagation must surface a
// contradiction.
func TestPropagate_TwoColoring_OddTorus_Contradiction(t *testing.T) {
	d, err := grid.NewDims(3, 3, true)
	require.NoError(t, err)

	w, err := wave.New(d, []float64{1, 1})
	require.NoError(t, err)

	p, err := propagator.New(d, 2, twoColorCompat())
	require.NoError(t, err)

	require.True(t, w.Remove(0, 1)) // force cell 0 to pattern 0
	p.AddToPropagate(0, 1)

	ok := p.Propagate(w)
	require.False(t, ok, "odd torus has no valid 2-coloring")
}

func TestReset_RebuildsCountsAndClearsStack(t *testing.T) {
	d, err := grid.NewDims(4, 4, true)
	require.NoError(t, err)

	w, err := wave.New(d, []float64{1, 1})
	require.NoError(t, err)

	p, err := propagator.New(d, 2, twoColorCompat())
	require.NoError(t, err)

	_, removed := w.Collapse(5, random.New(9))
	for _, t2 := range removed {
		p.AddToPropagate(5, t2)
	}
	require.True(t, p.Propagate(w))

	w.Clear()
	p.Reset()

	// After Reset+Clear, a fresh collapse behaves as on a brand new
	// propagator: no leftover counts or stack entries interfere.
	_, removed2 := w.Collapse(5, random.New(9))
	for _, t2 := range removed2 {
		p.AddToPropagate(5, t2)
	}
	require.True(t, p.Propagate(w))
}

func TestCompatibilityGraph_MatchesCompatTable(t *testing.T) {
	d, err := grid.NewDims(2, 2, true)
	require.NoError(t, err)

	p, err := propagator.New(d, 2, twoColorCompat())
	require.NoError(t, err)

	g := p.CompatibilityGraph()
	require.True(t, g.HasEdge(0, 1, grid.Left))
	require.True(t, g.HasEdge(1, 0, grid.Right))
	require.False(t, g.HasEdge(0, 0, grid.Left))
	require.Equal(t, 8, g.EdgeCount()) // 2 patterns * 4 directions * 1 neighbor each
}
