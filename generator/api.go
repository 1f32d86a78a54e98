// SPDX-License-Identifier: MIT
// Package: bipval/generator
//
// api.go - Build orchestrator and the Dataset it produces.
//
// Design contract:
//   • One orchestrator: Build(opts, cons...). Resolves options once, runs
//     constructors in order against a shared Dataset.
//   • Determinism: same options, seed and constructor order ⇒ identical
//     datasets, byte for byte.
//   • Constructors validate early and return sentinel errors.

package generator

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/bipval/edgelist"
)

// Pair is one bipartite edge in source identifiers.
type Pair struct {
	Left  int64 // set-1 identifier (column 0)
	Right int64 // set-2 identifier (column 1)
}

// Dataset is an ordered, duplicate-free list of bipartite pairs.
type Dataset struct {
	Pairs []Pair
	seen  map[Pair]struct{}
}

func newDataset() *Dataset {
	return &Dataset{seen: make(map[Pair]struct{})}
}

// add appends p unless already present and reports whether it was added.
func (d *Dataset) add(p Pair) bool {
	if _, ok := d.seen[p]; ok {
		return false
	}
	d.seen[p] = struct{}{}
	d.Pairs = append(d.Pairs, p)

	return true
}

// Len returns the number of pairs.
func (d *Dataset) Len() int { return len(d.Pairs) }

// WriteTo writes the dataset as a whitespace-delimited edge list.
func (d *Dataset) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	buf := make([]byte, 0, 48)
	for _, p := range d.Pairs {
		buf = strconv.AppendInt(buf[:0], p.Left, 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, p.Right, 10)
		buf = append(buf, '\n')
		m, err := bw.Write(buf)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}

	return n, bw.Flush()
}

// EdgeList renders the dataset and loads it back through edgelist.Parse,
// so fixtures exercise the same normalization as real input files.
func (d *Dataset) EdgeList() (*edgelist.EdgeList, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("EdgeList: %w", err)
	}

	return edgelist.Parse(&buf)
}

// Constructor adds pairs to d using the resolved configuration.
type Constructor func(d *Dataset, cfg genConfig) error

// Build resolves opts and applies every constructor in order.
// Constructor errors are wrapped as "Build: %w".
func Build(opts []Option, cons ...Constructor) (*Dataset, error) {
	cfg := newGenConfig(opts...)
	d := newDataset()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return d, nil
}
