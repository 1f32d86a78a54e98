// SPDX-License-Identifier: MIT

// Command bipgen writes synthetic bipartite edge lists for bipval.
//
//	bipgen -model random|complete|planted -n1 N -n2 M [-p P] [-p-out Q] [-blocks B] [-seed S] [-out FILE]
//
// For the planted model -n1 and -n2 are per-block sizes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/bipval/generator"
	"github.com/katalvlaran/bipval/internal/config"
	"github.com/katalvlaran/bipval/internal/logging"
)

// Models accepted by -model.
const (
	modelRandom   = "random"
	modelComplete = "complete"
	modelPlanted  = "planted"
)

var errUnknownModel = errors.New("unknown model")

type options struct {
	model  string
	n1, n2 int
	p      float64
	pOut   float64
	blocks int
	seed   int64
	out    string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Env, cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		logger.Error("invalid flags", zap.Error(err))
		_ = logger.Sync()
		os.Exit(2)
	}

	ds, err := build(opts)
	if err != nil {
		logger.Error("generation failed", zap.String("model", opts.model), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	if err := write(ds, opts.out); err != nil {
		logger.Error("failed to write edge list", zap.String("out", opts.out), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("edge list generated",
		zap.String("model", opts.model),
		zap.Int("edges", ds.Len()),
		zap.Int64("seed", opts.seed),
		zap.String("out", opts.out),
	)
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("bipgen", flag.ContinueOnError)
	fs.StringVar(&o.model, "model", modelRandom, "graph model: random, complete or planted")
	fs.IntVar(&o.n1, "n1", 100, "set-1 vertices (per block for planted)")
	fs.IntVar(&o.n2, "n2", 50, "set-2 vertices (per block for planted)")
	fs.Float64Var(&o.p, "p", 0.1, "edge probability (intra-block for planted)")
	fs.Float64Var(&o.pOut, "p-out", 0.01, "inter-block edge probability (planted)")
	fs.IntVar(&o.blocks, "blocks", 2, "number of blocks (planted)")
	fs.Int64Var(&o.seed, "seed", 1, "random seed for deterministic generation")
	fs.StringVar(&o.out, "out", "-", "output file, - for stdout")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	return o, nil
}

func build(o options) (*generator.Dataset, error) {
	genOpts := []generator.Option{generator.WithSeed(o.seed)}
	switch o.model {
	case modelRandom:
		return generator.Build(genOpts, generator.RandomBipartite(o.n1, o.n2, o.p))
	case modelComplete:
		return generator.Build(genOpts, generator.CompleteBipartite(o.n1, o.n2))
	case modelPlanted:
		return generator.Build(genOpts, generator.PlantedPartition(o.blocks, o.n1, o.n2, o.p, o.pOut))
	default:
		return nil, fmt.Errorf("%q: %w", o.model, errUnknownModel)
	}
}

func write(ds *generator.Dataset, out string) error {
	if out == "-" {
		_, err := ds.WriteTo(os.Stdout)
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if _, err := ds.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
