// SPDX-License-Identifier: MIT

// Command bipval validates the one-mode projection of a bipartite edge list.
//
//	bipval <edgelist_path> <tail> <method> <stat_threshold> [<name_extension>]
//
// The validated projection is written next to the input as
// <base>_<name_extension>.txt. Exit status: 0 on success (including an empty
// projection), 1 on input or runtime failure, 2 on invalid arguments.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/bipval/edgelist"
	"github.com/katalvlaran/bipval/internal/config"
	"github.com/katalvlaran/bipval/internal/logging"
	"github.com/katalvlaran/bipval/internal/metrics"
	"github.com/katalvlaran/bipval/pipeline"
	"github.com/katalvlaran/bipval/projection"
	"github.com/katalvlaran/bipval/report"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2

	summarySuffix = ".summary.yaml"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(exitFailure)
	}

	logger, err := logging.New(cfg.Env, cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(exitFailure)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], cfg, logger, uuid.NewString())
	cancel()
	_ = logger.Sync()
	os.Exit(code)
}

// run executes one validation and returns the process exit status.
func run(ctx context.Context, args []string, cfg *config.Config, logger *zap.Logger, runID string) int {
	started := time.Now()
	logger = logger.With(zap.String("run_id", runID))

	params, err := config.ParseArgs(args, cfg.NameExtension)
	if err != nil {
		logger.Error("invalid arguments", zap.Error(err), zap.String("usage", config.Usage))
		return exitUsage
	}
	logger = logger.With(zap.String("input", params.Path))

	el, err := edgelist.ReadFile(params.Path)
	if err != nil {
		var mie *edgelist.MalformedInputError
		if errors.As(err, &mie) {
			logger.Error("malformed edge list", zap.Int("line", mie.Line), zap.String("record", mie.Record), zap.Error(err))
		} else {
			logger.Error("failed to read edge list", zap.Error(err))
		}
		return exitFailure
	}
	logger.Debug("edge list loaded",
		zap.Int("records", el.Records),
		zap.Int("dropped", el.Dropped),
		zap.Int("duplicates", el.Duplicates),
		zap.Int("set1", el.N1),
		zap.Int("set2", el.N2),
	)
	if el.Dropped > 0 {
		logger.Warn("records with missing fields dropped", zap.Int("dropped", el.Dropped))
	}

	collector := metrics.NewCollector()
	stageLog := func(stage pipeline.Stage, d time.Duration) {
		logger.Debug("stage complete", zap.String("stage", string(stage)), zap.Duration("elapsed", d))
	}
	opts := pipeline.Options{
		Tail:     params.Tail,
		Method:   params.Method,
		Alpha:    params.Threshold,
		HubLimit: cfg.HubLimit,
	}

	res, err := pipeline.Run(ctx, el, opts, collector.Hook(), stageLog)
	switch {
	case errors.Is(err, projection.ErrHubTooLarge):
		logger.Error("set-2 hub too large to project; raise "+config.EnvHubLimit+" or set it to 0",
			zap.Int("hub_limit", cfg.HubLimit), zap.Error(err))
		return exitFailure
	case errors.Is(err, context.Canceled):
		logger.Warn("interrupted, no output written", zap.Error(err))
		return exitFailure
	case err != nil:
		logger.Error("validation failed", zap.Error(err))
		return exitFailure
	}
	if res.Warning != nil {
		logger.Warn("empty projection, writing header only", zap.Error(res.Warning))
	}
	logger.Debug("projection cost",
		zap.Int64("pair_visits", res.Projection.Stats.PairVisits),
		zap.Int("max_hub_degree", res.Projection.Stats.MaxHubDegree),
	)

	out := report.OutputPath(params.Path, params.NameExtension)
	if err := report.WriteFile(out, res); err != nil {
		logger.Error("failed to write output", zap.String("output", out), zap.Error(err))
		return exitFailure
	}

	if cfg.Summary {
		if err := writeSummary(out, runID, params.Path, res); err != nil {
			logger.Error("failed to write summary", zap.Error(err))
			return exitFailure
		}
	}
	if cfg.MetricsFile != "" {
		collector.RecordResult(res)
		if err := collector.WriteToTextfile(cfg.MetricsFile); err != nil {
			logger.Error("failed to write metrics", zap.Error(err))
			return exitFailure
		}
	}

	over, under := res.Passed()
	logger.Info("validation complete",
		zap.String("output", out),
		zap.String("tail", params.TailName),
		zap.String("method", params.MethodName),
		zap.Float64("alpha", params.Threshold),
		zap.Int("projected_edges", len(res.Projection.Edges)),
		zap.Float64("hypotheses", res.Nt),
		zap.Int("passed_over", over),
		zap.Int("passed_under", under),
		zap.Int("distinct_triples", res.Evaluation.Memo.Distinct()),
		zap.Duration("elapsed", time.Since(started)),
	)

	return exitOK
}

func writeSummary(out, runID, input string, res *pipeline.Result) error {
	s := report.NewSummary(res)
	s.RunID, s.Input, s.Output = runID, input, out

	var buf bytes.Buffer
	if err := report.WriteSummary(&buf, s); err != nil {
		return err
	}
	path := strings.TrimSuffix(out, ".txt") + summarySuffix

	return os.WriteFile(path, buf.Bytes(), 0o644)
}
