package model_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/wavecollapse/grid"
	"github.com/katalvlaran/wavecollapse/model"
	"github.com/katalvlaran/wavecollapse/propagator"
	"github.com/katalvlaran/wavecollapse/wave"
	"github.com/stretchr/testify/require"
)

func twoColorCompat() propagator.CompatTable {
	return propagator.CompatTable{
		{{1}, {1}, {1}, {1}},
		{{0}, {0}, {0}, {0}},
	}
}

func TestNew_ValidatesWaveErrors(t *testing.T) {
	d, err := grid.NewDims(2, 2, true)
	require.NoError(t, err)

	_, err = model.New(d, nil, propagator.CompatTable{}, wave.HeuristicEntropy, 1, nil)
	require.ErrorIs(t, err, wave.ErrNoPatterns)
}

func TestRun_TwoColoring_EvenTorus_Succeeds(t *testing.T) {
	d, err := grid.NewDims(4, 4, true)
	require.NoError(t, err)

	r, err := model.New(d, []float64{1, 1}, twoColorCompat(), wave.HeuristicEntropy, 7, nil)
	require.NoError(t, err)

	ok, err := r.Run(context.Background(), d.Len()+1)
	require.NoError(t, err)
	require.True(t, ok)

	state := r.GetState()
	require.True(t, state.IsComplete)
	require.False(t, state.HasContradiction)
	require.Equal(t, state.TotalCells, state.CollapsedCount)
	require.GreaterOrEqual(t, r.LastCollapsedCell(), 0)
}

func TestRun_TwoColoring_OddTorus_Contradicts(t *testing.T) {
	d, err := grid.NewDims(3, 3, true)
	require.NoError(t, err)

	r, err := model.New(d, []float64{1, 1}, twoColorCompat(), wave.HeuristicMRV, 3, nil)
	require.NoError(t, err)

	ok, err := r.Run(context.Background(), d.Len()+1)
	require.NoError(t, err)
	require.False(t, ok)

	state := r.GetState()
	require.True(t, state.HasContradiction)
	require.False(t, state.IsComplete)
}

func TestStep_AfterTerminal_ReturnsErrAlreadyTerminal(t *testing.T) {
	d, err := grid.NewDims(3, 3, true)
	require.NoError(t, err)

	r, err := model.New(d, []float64{1, 1}, twoColorCompat(), wave.HeuristicScanline, 3, nil)
	require.NoError(t, err)

	_, err = r.Run(context.Background(), d.Len()+1)
	require.NoError(t, err)

	_, err = r.Step()
	require.ErrorIs(t, err, model.ErrAlreadyTerminal)
}

func TestClear_RestoresRunnableState(t *testing.T) {
	d, err := grid.NewDims(3, 3, true)
	require.NoError(t, err)

	r, err := model.New(d, []float64{1, 1}, twoColorCompat(), wave.HeuristicScanline, 3, nil)
	require.NoError(t, err)

	_, err = r.Run(context.Background(), d.Len()+1)
	require.NoError(t, err)
	require.True(t, r.GetState().HasContradiction)

	require.NoError(t, r.Clear())
	state := r.GetState()
	require.False(t, state.HasContradiction)
	require.False(t, state.IsComplete)
	require.Equal(t, -1, r.LastCollapsedCell())

	_, err = r.Step()
	require.NoError(t, err)
}

func TestRun_ContextCancelled_StopsBetweenSteps(t *testing.T) {
	d, err := grid.NewDims(4, 4, true)
	require.NoError(t, err)

	r, err := model.New(d, []float64{1, 1}, twoColorCompat(), wave.HeuristicEntropy, 7, nil)
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Run(cancelled, d.Len()+1)
	require.Error(t, err)
}

func TestNew_ReseedContradictionIsTerminalImmediately(t *testing.T) {
	d, err := grid.NewDims(3, 3, true)
	require.NoError(t, err)

	forceContradiction := func(w *wave.Wave, p *propagator.Propagator) error {
		w.Remove(0, 0)
		w.Remove(0, 1)
		p.AddToPropagate(0, 0)
		p.AddToPropagate(0, 1)

		return nil
	}

	r, err := model.New(d, []float64{1, 1}, twoColorCompat(), wave.HeuristicEntropy, 1, forceContradiction)
	require.NoError(t, err)

	_, err = r.Step()
	require.ErrorIs(t, err, model.ErrAlreadyTerminal)
	require.True(t, r.GetState().HasContradiction)
}

func TestGetEntropyData_LengthMatchesGrid(t *testing.T) {
	d, err := grid.NewDims(2, 2, true)
	require.NoError(t, err)

	r, err := model.New(d, []float64{1, 1}, twoColorCompat(), wave.HeuristicEntropy, 1, nil)
	require.NoError(t, err)

	require.Len(t, r.GetEntropyData(), d.Len())
}
