package pipeline_test

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bipval/correction"
	"github.com/katalvlaran/bipval/edgelist"
	"github.com/katalvlaran/bipval/generator"
	"github.com/katalvlaran/bipval/pipeline"
	"github.com/katalvlaran/bipval/projection"
	"github.com/katalvlaran/bipval/significance"
)

const scenario = "0 10\n0 11\n1 10\n1 11\n2 10\n"

func load(t *testing.T, in string) *edgelist.EdgeList {
	t.Helper()
	el, err := edgelist.Parse(strings.NewReader(in))
	require.NoError(t, err)

	return el
}

func TestRun_Scenario(t *testing.T) {
	opts := pipeline.Options{Tail: significance.Over, Method: correction.Bonferroni, Alpha: 0.05}
	res, err := pipeline.Run(context.Background(), load(t, scenario), opts)
	require.NoError(t, err)
	require.False(t, res.Empty)
	require.NoError(t, res.Warning)

	assert.Equal(t, 3.0, res.Nt)
	require.NotNil(t, res.Over)
	assert.Nil(t, res.Under)

	rows := res.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, int64(0), rows[0].Source)
	assert.Equal(t, int64(1), rows[0].Target)
	assert.Equal(t, 2, rows[0].Weight)
	assert.Equal(t, 1.0, rows[0].POver)
	assert.False(t, rows[0].TestOver)
	assert.True(t, math.IsNaN(rows[0].PUnder))

	// 1 and 2 share vertex 10.
	assert.Equal(t, int64(1), rows[2].Source)
	assert.Equal(t, int64(2), rows[2].Target)
	assert.Equal(t, 1, rows[2].Weight)

	over, under := res.Passed()
	assert.Zero(t, over)
	assert.Zero(t, under)
}

func TestRun_BothTailsIndependentFlags(t *testing.T) {
	opts := pipeline.Options{Tail: significance.Both, Method: correction.FDR, Alpha: 1}
	res, err := pipeline.Run(context.Background(), load(t, scenario), opts)
	require.NoError(t, err)
	require.NotNil(t, res.Over)
	require.NotNil(t, res.Under)

	// With alpha=1 and every p-value equal to 1 the FDR threshold is 1.
	for _, r := range res.Rows() {
		assert.Equal(t, 1.0, r.POver)
		assert.Equal(t, 1.0, r.PUnder)
		assert.True(t, r.TestOver)
		assert.True(t, r.TestUnder)
	}
}

func TestRun_PlantedBlocks(t *testing.T) {
	const size1 = 10
	ds, err := generator.Build(
		[]generator.Option{generator.WithSeed(7)},
		generator.PlantedPartition(2, size1, 40, 0.9, 0.02),
	)
	require.NoError(t, err)
	el, err := ds.EdgeList()
	require.NoError(t, err)

	opts := pipeline.Options{Tail: significance.Both, Method: correction.Bonferroni, Alpha: 0.05}
	res, err := pipeline.Run(context.Background(), el, opts)
	require.NoError(t, err)
	assert.Equal(t, correction.Hypotheses(2*size1), res.Nt)

	for _, r := range res.Rows() {
		same := generator.Block(int(r.Source), size1) == generator.Block(int(r.Target), size1)
		if r.TestOver {
			assert.True(t, same, "over-expressed edge (%d,%d) crosses blocks", r.Source, r.Target)
		}
		if r.TestUnder {
			assert.False(t, same, "under-expressed edge (%d,%d) inside a block", r.Source, r.Target)
		}
	}
	over, _ := res.Passed()
	assert.GreaterOrEqual(t, over, 80, "most of the 90 intra-block pairs should be validated")
}

func TestRun_Empty(t *testing.T) {
	opts := pipeline.Options{Tail: significance.Over, Method: correction.FDR, Alpha: 0.05}

	res, err := pipeline.Run(context.Background(), load(t, ""), opts)
	require.NoError(t, err)
	assert.True(t, res.Empty)
	require.ErrorIs(t, res.Warning, pipeline.ErrEmptyGraph)
	assert.Empty(t, res.Rows())

	// Edges exist, but no two set-1 vertices share a neighbor.
	res, err = pipeline.Run(context.Background(), load(t, "1 10\n2 20\n"), opts)
	require.NoError(t, err)
	assert.True(t, res.Empty)
	require.ErrorIs(t, res.Warning, pipeline.ErrEmptyGraph)
	assert.Equal(t, 1.0, res.Nt)
}

func TestRun_HooksSeeEveryStage(t *testing.T) {
	var seen []pipeline.Stage
	hook := func(s pipeline.Stage, d time.Duration) {
		assert.GreaterOrEqual(t, d, time.Duration(0))
		seen = append(seen, s)
	}
	opts := pipeline.Options{Tail: significance.Over, Method: correction.FDR, Alpha: 0.05}
	_, err := pipeline.Run(context.Background(), load(t, scenario), opts, hook, nil)
	require.NoError(t, err)

	want := []pipeline.Stage{
		pipeline.StageGraph, pipeline.StageProjection,
		pipeline.StageEvaluation, pipeline.StageCorrection,
	}
	assert.Equal(t, want, seen)
}

func TestRun_Errors(t *testing.T) {
	ok := pipeline.Options{Tail: significance.Over, Method: correction.FDR, Alpha: 0.05}
	ctx := context.Background()

	_, err := pipeline.Run(ctx, nil, ok)
	require.ErrorIs(t, err, pipeline.ErrNilEdgeList)

	bad := []pipeline.Options{
		{Tail: 0, Method: correction.FDR, Alpha: 0.05},
		{Tail: significance.Over, Method: 0, Alpha: 0.05},
		{Tail: significance.Over, Method: correction.FDR, Alpha: 1.01},
		{Tail: significance.Over, Method: correction.FDR, Alpha: math.NaN()},
		{Tail: significance.Over, Method: correction.FDR, Alpha: 0.05, HubLimit: -1},
	}
	for i, o := range bad {
		_, err = pipeline.Run(ctx, load(t, scenario), o)
		require.ErrorIs(t, err, pipeline.ErrBadOptions, "case %d", i)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = pipeline.Run(cancelled, load(t, scenario), ok)
	require.ErrorIs(t, err, context.Canceled)

	hub := ok
	hub.HubLimit = 1
	_, err = pipeline.Run(ctx, load(t, scenario), hub)
	require.ErrorIs(t, err, projection.ErrHubTooLarge)
}
