package compatgraph_test

import (
	"testing"

	"github.com/katalvlaran/wavecollapse/compatgraph"
	"github.com/katalvlaran/wavecollapse/grid"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddEdgeAndQuery(t *testing.T) {
	g := compatgraph.New()
	g.AddEdge(0, 1, grid.Right)
	g.AddEdge(0, 2, grid.Right)
	g.AddEdge(0, 3, grid.Down)

	require.True(t, g.HasEdge(0, 1, grid.Right))
	require.True(t, g.HasEdge(0, 2, grid.Right))
	require.False(t, g.HasEdge(0, 3, grid.Right))
	require.True(t, g.HasEdge(0, 3, grid.Down))

	require.Len(t, g.Neighbors(0, grid.Right), 2)
	require.Equal(t, 3, g.EdgeCount())
	require.Len(t, g.Vertices(), 4) // 0,1,2,3
}
