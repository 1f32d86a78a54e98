package significance_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bipval/bipartite"
	"github.com/katalvlaran/bipval/generator"
	"github.com/katalvlaran/bipval/hypergeom"
	"github.com/katalvlaran/bipval/projection"
	"github.com/katalvlaran/bipval/significance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioProjection(t *testing.T) *projection.Projection {
	t.Helper()
	g, err := bipartite.New(3, 2, []bipartite.Edge{{U: 0, V: 3}, {U: 0, V: 4}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 2, V: 3}})
	require.NoError(t, err)
	p, err := projection.Project(g)
	require.NoError(t, err)

	return p
}

func TestParseTail(t *testing.T) {
	for _, s := range []string{"over", "under", "both"} {
		tail, err := significance.ParseTail(s)
		require.NoError(t, err)
		assert.Equal(t, s, tail.String())
		assert.True(t, tail.Valid())
	}
	_, err := significance.ParseTail("sideways")
	require.ErrorIs(t, err, significance.ErrUnknownTail)

	assert.True(t, significance.Both.HasOver())
	assert.True(t, significance.Both.HasUnder())
	assert.False(t, significance.Over.HasUnder())
	assert.False(t, significance.Tail(0).Valid())
	assert.Equal(t, "Tail(0)", significance.Tail(0).String())
}

func TestEvaluate_Scenario(t *testing.T) {
	ev, err := significance.Evaluate(scenarioProjection(t), significance.Over)
	require.NoError(t, err)
	require.Len(t, ev.Records, 3)
	assert.Equal(t, 2, ev.Population)

	first := ev.Records[0]
	assert.Equal(t, hypergeom.Triple{Shared: 2, Succ: 2, Draws: 2}, first.Triple)
	assert.Equal(t, 1.0, first.POver, "deterministic overlap must be exactly 1")
	assert.True(t, math.IsNaN(first.PUnder))

	// (0,2): k=1, K=2, n=1, N=2 → P(X ≥ 1) = 1.
	assert.Equal(t, 1.0, ev.Records[1].POver)
}

func TestEvaluate_BothTails(t *testing.T) {
	ev, err := significance.Evaluate(scenarioProjection(t), significance.Both)
	require.NoError(t, err)

	for _, r := range ev.Records {
		assert.False(t, math.IsNaN(r.POver))
		assert.False(t, math.IsNaN(r.PUnder))
	}
	assert.Len(t, ev.OverValues(), 3)
	assert.Len(t, ev.UnderValues(), 3)
}

func TestEvaluate_MemoizesSharedTriples(t *testing.T) {
	// K_{6,4}: all 15 projected edges share (k=4, K=4, n=4).
	ds, err := generator.Build(nil, generator.CompleteBipartite(6, 4))
	require.NoError(t, err)
	el, err := ds.EdgeList()
	require.NoError(t, err)
	g, err := el.Graph()
	require.NoError(t, err)
	p, err := projection.Project(g)
	require.NoError(t, err)

	ev, err := significance.Evaluate(p, significance.Both)
	require.NoError(t, err)
	require.Len(t, ev.Records, 15)

	assert.Equal(t, 1, ev.Memo.OverMisses)
	assert.Equal(t, 14, ev.Memo.OverHits)
	assert.Equal(t, 1, ev.Memo.UnderMisses)
	for _, r := range ev.Records {
		assert.Equal(t, ev.Records[0].POver, r.POver)
		assert.Equal(t, ev.Records[0].PUnder, r.PUnder)
	}
}

func TestEvaluate_Errors(t *testing.T) {
	_, err := significance.Evaluate(nil, significance.Over)
	require.ErrorIs(t, err, significance.ErrNilProjection)

	_, err = significance.Evaluate(scenarioProjection(t), significance.Tail(0))
	require.ErrorIs(t, err, significance.ErrUnknownTail)
}
