package bipartite_test

import (
	"testing"

	"github.com/katalvlaran/bipval/bipartite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioEdges: set 1 = {0,1,2}, set 2 = {3,4}.
var scenarioEdges = []bipartite.Edge{{0, 3}, {0, 4}, {1, 3}, {1, 4}, {2, 3}}

func TestNew_Degrees(t *testing.T) {
	g, err := bipartite.New(3, 2, scenarioEdges)
	require.NoError(t, err)

	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, 5, g.Order())
	assert.Equal(t, []int{2, 2, 1, 3, 2}, []int{g.Degree(0), g.Degree(1), g.Degree(2), g.Degree(3), g.Degree(4)})
	assert.Equal(t, []int{0, 1, 2}, g.Neighbors(3))
	assert.Equal(t, []int{3, 4}, g.Neighbors(0))
	assert.Equal(t, 2, g.Population())
}

func TestNew_Sides(t *testing.T) {
	g, err := bipartite.New(2, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, bipartite.Set1, g.Side(0))
	assert.Equal(t, bipartite.Set1, g.Side(1))
	assert.Equal(t, bipartite.Set2, g.Side(2))
	assert.Equal(t, bipartite.SideNone, g.Side(3))
	assert.Equal(t, bipartite.SideNone, g.Side(-1))
	assert.Equal(t, "set2", bipartite.Set2.String())
	assert.Zero(t, g.Degree(99))
	assert.Nil(t, g.Neighbors(-4))
}

func TestNew_EndpointOrderIrrelevant(t *testing.T) {
	g, err := bipartite.New(1, 1, []bipartite.Edge{{1, 0}})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, []int{0}, g.Neighbors(1))
}

func TestNew_CollapsesParallelEdges(t *testing.T) {
	g, err := bipartite.New(2, 1, []bipartite.Edge{{0, 2}, {0, 2}, {2, 0}, {1, 2}})
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 2, g.Duplicates())
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 2, g.Degree(2))
}

func TestNew_Holes(t *testing.T) {
	// Vertex 1 (set 1) and vertex 5 (set 2) are never used.
	g, err := bipartite.New(3, 3, []bipartite.Edge{{0, 3}, {2, 4}, {2, 3}})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, g.Active(bipartite.Set1))
	assert.Equal(t, []int{3, 4}, g.Active(bipartite.Set2))
	assert.Equal(t, 2, g.ActiveCount(bipartite.Set1))
	assert.Equal(t, 2, g.Population())
	assert.Empty(t, g.Active(bipartite.SideNone))
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name   string
		n1, n2 int
		edges  []bipartite.Edge
		opts   []bipartite.Option
		want   error
	}{
		{name: "negative n1", n1: -1, n2: 1, want: bipartite.ErrBadPartition},
		{name: "out of range", n1: 1, n2: 1, edges: []bipartite.Edge{{0, 2}}, want: bipartite.ErrVertexOutOfRange},
		{name: "negative index", n1: 1, n2: 1, edges: []bipartite.Edge{{-1, 1}}, want: bipartite.ErrVertexOutOfRange},
		{name: "same side set 1", n1: 2, n2: 1, edges: []bipartite.Edge{{0, 1}}, want: bipartite.ErrSameSide},
		{name: "same side set 2", n1: 1, n2: 2, edges: []bipartite.Edge{{1, 2}}, want: bipartite.ErrSameSide},
		{name: "label count", n1: 2, n2: 1, opts: []bipartite.Option{bipartite.WithLabels([]int64{7})}, want: bipartite.ErrLabelCount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bipartite.New(tc.n1, tc.n2, tc.edges, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGraph_Labels(t *testing.T) {
	labels := []int64{-3, 40, 41}
	g, err := bipartite.New(3, 2, scenarioEdges, bipartite.WithLabels(labels))
	require.NoError(t, err)

	labels[0] = 999 // graph keeps its own copy
	assert.Equal(t, int64(-3), g.Label(0))
	assert.Equal(t, int64(41), g.Label(2))
	assert.Equal(t, int64(3), g.Label(3), "set-2 vertices fall back to the index")

	plain, err := bipartite.New(3, 2, scenarioEdges)
	require.NoError(t, err)
	assert.Equal(t, int64(1), plain.Label(1))
}
