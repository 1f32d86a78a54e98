package projection_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/bipval/bipartite"
	"github.com/katalvlaran/bipval/generator"
	"github.com/katalvlaran/bipval/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioGraph: set 1 = {0,1,2}, set 2 = {10,11} remapped to {3,4}.
func scenarioGraph(t *testing.T) *bipartite.Graph {
	t.Helper()
	g, err := bipartite.New(3, 2,
		[]bipartite.Edge{{U: 0, V: 3}, {U: 0, V: 4}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 2, V: 3}},
		bipartite.WithLabels([]int64{0, 1, 2}))
	require.NoError(t, err)

	return g
}

func TestProject_Scenario(t *testing.T) {
	p, err := projection.Project(scenarioGraph(t))
	require.NoError(t, err)

	want := []projection.Edge{
		{Source: 0, Target: 1, Weight: 2},
		{Source: 0, Target: 2, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
	}
	assert.Equal(t, want, p.Edges)
	assert.Equal(t, 2, p.Population)
	assert.Equal(t, 3, p.Candidates)

	v0, ok := p.Vertex(0)
	require.True(t, ok)
	assert.Equal(t, 2, v0.Degree)
	v2, ok := p.Vertex(2)
	require.True(t, ok)
	assert.Equal(t, 1, v2.Degree)

	// Set-2 vertex 3 has degree 3 → 3 pairs, vertex 4 degree 2 → 1 pair.
	assert.Equal(t, int64(4), p.Stats.PairVisits)
	assert.Equal(t, 3, p.Stats.MaxHubDegree)
	assert.Equal(t, 3, p.Stats.HubVertex)
}

func TestProject_DropsIsolatedProjectedVertices(t *testing.T) {
	// Vertex 2 only reaches set-2 vertex 5, which nobody else touches.
	g, err := bipartite.New(3, 3,
		[]bipartite.Edge{{U: 0, V: 3}, {U: 1, V: 3}, {U: 2, V: 5}},
		bipartite.WithLabels([]int64{100, 200, 300}))
	require.NoError(t, err)

	p, err := projection.Project(g)
	require.NoError(t, err)

	require.Len(t, p.Vertices, 2)
	assert.Equal(t, int64(100), p.Vertices[0].OriginalID)
	assert.Equal(t, int64(200), p.Vertices[1].OriginalID)
	_, ok := p.Vertex(2)
	assert.False(t, ok)
	assert.Equal(t, 3, p.Candidates, "hypothesis space counts every active set-1 vertex")
	assert.Equal(t, 2, p.Population)
}

func TestProject_Empty(t *testing.T) {
	g, err := bipartite.New(0, 0, nil)
	require.NoError(t, err)

	p, err := projection.Project(g)
	require.NoError(t, err)
	assert.True(t, p.Empty())
	assert.Empty(t, p.Vertices)
	assert.Equal(t, -1, p.Stats.HubVertex)
}

func TestProject_NilGraph(t *testing.T) {
	_, err := projection.Project(nil)
	require.ErrorIs(t, err, projection.ErrNilGraph)
	assert.Nil(t, projection.BruteForce(nil))
}

func TestProject_HubLimit(t *testing.T) {
	ds, err := generator.Build(nil, generator.Hub(50, 0), generator.CompleteBipartite(3, 2))
	require.NoError(t, err)
	el, err := ds.EdgeList()
	require.NoError(t, err)
	g, err := el.Graph()
	require.NoError(t, err)

	_, err = projection.Project(g, projection.WithHubLimit(49))
	require.ErrorIs(t, err, projection.ErrHubTooLarge)

	p, err := projection.Project(g, projection.WithHubLimit(50))
	require.NoError(t, err)
	assert.Equal(t, 50, p.Stats.MaxHubDegree)

	assert.Panics(t, func() { projection.WithHubLimit(-1) })
}

// TestProject_MatchesBruteForce cross-checks weights against pairwise
// set intersection on seeded random graphs.
func TestProject_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			ds, err := generator.Build(
				[]generator.Option{generator.WithSeed(seed), generator.WithPartitionOffset(1000, -50)},
				generator.RandomBipartite(25, 15, 0.2),
			)
			require.NoError(t, err)
			el, err := ds.EdgeList()
			require.NoError(t, err)
			g, err := el.Graph()
			require.NoError(t, err)

			p, err := projection.Project(g)
			require.NoError(t, err)
			assert.Equal(t, projection.BruteForce(g), nonNil(p.Edges))

			for _, e := range p.Edges {
				assert.Less(t, e.Source, e.Target)
				assert.GreaterOrEqual(t, e.Weight, 1)
			}
		})
	}
}

func nonNil(es []projection.Edge) []projection.Edge {
	if len(es) == 0 {
		return nil
	}

	return es
}
