package tiled_test

import (
	"testing"

	"github.com/katalvlaran/wavecollapse/tiled"
	"github.com/katalvlaran/wavecollapse/tileset"
	"github.com/stretchr/testify/require"
)

// TestModel_Render_BlackBackground checks that an uncollapsed cell
// renders opaque black when WithBlackBackground is set, before any Step
// has run (every cell starts uncollapsed).
func TestModel_Render_BlackBackground(t *testing.T) {
	tiles := []tileset.Tile{
		{Name: "A", Class: tileset.SymX, Weight: 1, Size: 1, Pixels: []uint32{0xFF0000FF}},
	}
	m, err := tiled.NewModel(tiles, nil, tiled.WithOutputSize(2, 2, true), tiled.WithBlackBackground(true))
	require.NoError(t, err)

	out := make([]uint32, m.Dims().Len())
	m.Render(out)
	for _, c := range out {
		require.Equal(t, uint32(0xFF000000), c)
	}
}

// TestModel_Render_BlendsUncollapsedCell checks the weighted-blend path:
// two equally-weighted, equally-possible single-pixel tiles with colors
// 0 and 255 in the red channel must blend to their weighted average.
func TestModel_Render_BlendsUncollapsedCell(t *testing.T) {
	tiles := []tileset.Tile{
		{Name: "A", Class: tileset.SymX, Weight: 1, Size: 1, Pixels: []uint32{0xFF000000}},
		{Name: "B", Class: tileset.SymX, Weight: 1, Size: 1, Pixels: []uint32{0xFF0000FF}},
	}
	m, err := tiled.NewModel(tiles, nil, tiled.WithOutputSize(2, 2, true))
	require.NoError(t, err)

	out := make([]uint32, m.Dims().Len())
	m.Render(out)
	for _, c := range out {
		require.Equal(t, uint32(0x7F), c&0xFF, "uncollapsed cell must blend to the midpoint red channel")
		require.Equal(t, uint32(0xFF000000), c&0xFF000000)
	}
}
