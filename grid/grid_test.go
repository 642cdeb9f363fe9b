package grid_test

import (
	"testing"

	"github.com/katalvlaran/wavecollapse/grid"
	"github.com/stretchr/testify/require"
)

func TestNewDims_Errors(t *testing.T) {
	cases := []struct {
		name    string
		w, h    int
		wantErr error
	}{
		{"ZeroWidth", 0, 3, grid.ErrInvalidDimensions},
		{"NegativeHeight", 3, -1, grid.ErrInvalidDimensions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewDims(tc.w, tc.h, false)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestIndexCoordinate_RoundTrip(t *testing.T) {
	d, err := grid.NewDims(5, 4, false)
	require.NoError(t, err)

	for y := 0; y < d.H; y++ {
		for x := 0; x < d.W; x++ {
			i := grid.Index(d, x, y)
			gx, gy := grid.Coordinate(d, i)
			require.Equal(t, x, gx)
			require.Equal(t, y, gy)
		}
	}
}

func TestNeighbor_NonPeriodic_EdgeClips(t *testing.T) {
	d, err := grid.NewDims(3, 3, false)
	require.NoError(t, err)

	origin := grid.Index(d, 0, 0)
	_, ok := grid.Neighbor(d, origin, grid.Left)
	require.False(t, ok, "left of column 0 does not exist")

	_, ok = grid.Neighbor(d, origin, grid.Up)
	require.False(t, ok, "up of row 0 does not exist")

	j, ok := grid.Neighbor(d, origin, grid.Right)
	require.True(t, ok)
	require.Equal(t, grid.Index(d, 1, 0), j)
}

func TestNeighbor_Periodic_Wraps(t *testing.T) {
	d, err := grid.NewDims(3, 3, true)
	require.NoError(t, err)

	origin := grid.Index(d, 0, 0)
	j, ok := grid.Neighbor(d, origin, grid.Left)
	require.True(t, ok)
	require.Equal(t, grid.Index(d, 2, 0), j)

	j, ok = grid.Neighbor(d, origin, grid.Up)
	require.True(t, ok)
	require.Equal(t, grid.Index(d, 0, 2), j)
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, dir := range []grid.Direction{grid.Left, grid.Down, grid.Right, grid.Up} {
		require.Equal(t, dir, grid.Opposite[grid.Opposite[dir]])
	}
}

func TestWrapCoordinate(t *testing.T) {
	x, y, ok := grid.WrapCoordinate(4, 4, 5, -1, true)
	require.True(t, ok)
	require.Equal(t, 1, x)
	require.Equal(t, 3, y)

	_, _, ok = grid.WrapCoordinate(4, 4, 5, -1, false)
	require.False(t, ok)
}
