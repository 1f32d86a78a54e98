// SPDX-License-Identifier: MIT
// Package: bipval/edgelist
//
// loader.go - Parse/ReadFile: record scanning, side assignment, remapping.
//
// Contract:
//   • Column 0 is set 1, column 1 is set 2. Roles are never inferred from
//     value overlap: the same integer may appear on both sides.
//   • Blank lines and comment lines are skipped silently; records with fewer
//     than two fields are dropped and counted.
//   • Any field that fails to parse aborts the load with *MalformedInputError.
//   • Remap is by rank: sorted distinct column-0 values → 0..N1-1, sorted
//     distinct column-1 values → N1..N1+N2-1.
//   • Repeated pairs collapse to a single edge.
//
// Complexity:
//   • Time O(R + U log U) for R records and U distinct identifiers.
//   • Space O(R).

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/bipval/bipartite"
)

// rawPair is a parsed record before remapping.
type rawPair struct{ a, b int64 }

// ReadFile opens path and parses it with Parse.
func ReadFile(path string, opts ...Option) (*EdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	el, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}

	return el, nil
}

// Parse reads a whitespace-delimited bipartite edge list from r.
func Parse(r io.Reader, opts ...Option) (*EdgeList, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	cfg := newConfig(opts...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	el := &EdgeList{}
	seen := make(map[rawPair]struct{})
	pairs := make([]rawPair, 0, 64)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if cfg.commentPrefix != "" && strings.HasPrefix(text, cfg.commentPrefix) {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < minFields {
			el.Dropped++
			continue
		}
		if len(fields) > maxFields || (cfg.strictFields && len(fields) > minFields) {
			return nil, &MalformedInputError{Line: line, Record: text,
				Err: fmt.Errorf("expected %d or %d fields, got %d", minFields, maxFields, len(fields))}
		}

		p, err := parseRecord(fields)
		if err != nil {
			return nil, &MalformedInputError{Line: line, Record: text, Err: err}
		}
		el.Records++

		if _, dup := seen[p]; dup {
			el.Duplicates++
			continue
		}
		seen[p] = struct{}{}
		pairs = append(pairs, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Parse: line %d: %w", line+1, err)
	}

	remap(el, pairs)

	return el, nil
}

// parseRecord converts the fields of one record. The weight column, when
// present, is validated and discarded.
func parseRecord(fields []string) (rawPair, error) {
	a, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return rawPair{}, err
	}
	b, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return rawPair{}, err
	}
	if len(fields) == maxFields {
		if _, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return rawPair{}, err
		}
	}

	return rawPair{a: a, b: b}, nil
}

// remap assigns contiguous indices per side and fills el in place.
func remap(el *EdgeList, pairs []rawPair) {
	left := distinctSorted(pairs, func(p rawPair) int64 { return p.a })
	right := distinctSorted(pairs, func(p rawPair) int64 { return p.b })

	el.N1, el.N2 = len(left), len(right)
	el.OriginalIDs = left

	leftIdx := indexOf(left, 0)
	rightIdx := indexOf(right, el.N1)

	el.Edges = make([]bipartite.Edge, len(pairs))
	for i, p := range pairs {
		el.Edges[i] = bipartite.Edge{U: leftIdx[p.a], V: rightIdx[p.b]}
	}
}

func distinctSorted(pairs []rawPair, key func(rawPair) int64) []int64 {
	set := make(map[int64]struct{}, len(pairs))
	for _, p := range pairs {
		set[key(p)] = struct{}{}
	}
	out := make([]int64, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func indexOf(ids []int64, offset int) map[int64]int {
	m := make(map[int64]int, len(ids))
	for i, id := range ids {
		m[id] = offset + i
	}

	return m
}
