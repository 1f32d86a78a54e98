package backbone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bipval/backbone"
	"github.com/katalvlaran/bipval/bipartite"
	"github.com/katalvlaran/bipval/generator"
	"github.com/katalvlaran/bipval/projection"
)

func project(t *testing.T, n1, n2 int, edges []bipartite.Edge) *projection.Projection {
	t.Helper()
	g, err := bipartite.New(n1, n2, edges)
	require.NoError(t, err)
	p, err := projection.Project(g)
	require.NoError(t, err)

	return p
}

// scenario: (0,1) w=2, (0,2) w=1, (1,2) w=1.
func scenario(t *testing.T) *projection.Projection {
	return project(t, 3, 2, []bipartite.Edge{{U: 0, V: 3}, {U: 0, V: 4}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 2, V: 3}})
}

func TestAnalyze_AllPass(t *testing.T) {
	s, err := backbone.Analyze(scenario(t), []bool{true, true, true})
	require.NoError(t, err)
	assert.Equal(t, backbone.Stats{Edges: 3, Vertices: 3, Components: 1, Largest: 3, TotalWeight: 4}, s)
}

func TestAnalyze_PartialLeavesIsolated(t *testing.T) {
	s, err := backbone.Analyze(scenario(t), []bool{false, false, true})
	require.NoError(t, err)
	assert.Equal(t, backbone.Stats{Edges: 1, Vertices: 2, Isolated: 1, Components: 1, Largest: 2, TotalWeight: 1}, s)

	s, err = backbone.Analyze(scenario(t), []bool{false, false, false})
	require.NoError(t, err)
	assert.Equal(t, backbone.Stats{Isolated: 3}, s)
}

func TestAnalyze_TwoComponents(t *testing.T) {
	// Two disjoint K_{2,2}.
	p := project(t, 4, 4, []bipartite.Edge{{U: 0, V: 4}, {U: 0, V: 5}, {U: 1, V: 4}, {U: 1, V: 5}, {U: 2, V: 6}, {U: 2, V: 7}, {U: 3, V: 6}, {U: 3, V: 7}})
	s, err := backbone.Analyze(p, []bool{true, true})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Components)
	assert.Equal(t, 2, s.Largest)
	assert.Equal(t, int64(4), s.TotalWeight)
}

func TestSpanningForest_PrefersHeavyEdges(t *testing.T) {
	f, err := backbone.SpanningForest(scenario(t), []bool{true, true, true})
	require.NoError(t, err)
	want := []projection.Edge{{Source: 0, Target: 1, Weight: 2}, {Source: 0, Target: 2, Weight: 1}}
	assert.Equal(t, want, f)
}

func TestSpanningForest_EdgeCountMatchesComponents(t *testing.T) {
	ds, err := generator.Build([]generator.Option{generator.WithSeed(3)}, generator.RandomBipartite(30, 20, 0.1))
	require.NoError(t, err)
	el, err := ds.EdgeList()
	require.NoError(t, err)
	g, err := el.Graph()
	require.NoError(t, err)
	p, err := projection.Project(g)
	require.NoError(t, err)

	pass := make([]bool, len(p.Edges))
	for i, e := range p.Edges {
		pass[i] = e.Weight >= 2
	}
	s, err := backbone.Analyze(p, pass)
	require.NoError(t, err)
	f, err := backbone.SpanningForest(p, pass)
	require.NoError(t, err)

	// A spanning forest has one edge fewer than vertices per component.
	assert.Equal(t, s.Vertices-s.Components, len(f))
	for i := 1; i < len(f); i++ {
		assert.GreaterOrEqual(t, f[i-1].Weight, f[i].Weight)
	}
}

func TestErrors(t *testing.T) {
	_, err := backbone.Analyze(nil, nil)
	require.ErrorIs(t, err, backbone.ErrNilProjection)
	_, err = backbone.SpanningForest(scenario(t), []bool{true})
	require.ErrorIs(t, err, backbone.ErrMaskLength)
}
