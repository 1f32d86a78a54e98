// SPDX-License-Identifier: MIT
// Package: bipval/hypergeom
//
// memo.go - p-value cache keyed by the exact integer triple (k, K, n).
//
// In skewed-degree networks many projected edges share a triple, so each
// distinct triple is evaluated once per tail and reused. Keys are integers,
// so equality is exact. The distribution is symmetric in (K, n); triples are
// stored with K ≤ n so that (k,K,n) and (k,n,K) share one entry.

package hypergeom

import "fmt"

// Triple is the per-edge parameter set: Shared = k (projected weight),
// Succ = K and Draws = n (bipartite degrees of the two endpoints).
type Triple struct {
	Shared int
	Succ   int
	Draws  int
}

// canonical orders Succ ≤ Draws.
func (t Triple) canonical() Triple {
	if t.Succ > t.Draws {
		t.Succ, t.Draws = t.Draws, t.Succ
	}

	return t
}

// MemoStats counts cache behavior per tail.
type MemoStats struct {
	OverHits, OverMisses   int
	UnderHits, UnderMisses int
}

// Distinct returns the number of distinct triples evaluated in any tail.
func (s MemoStats) Distinct() int {
	if s.OverMisses > s.UnderMisses {
		return s.OverMisses
	}

	return s.UnderMisses
}

// Memo caches over- and under-expression p-values for a fixed population N.
// It is not safe for concurrent use; build it in a single pass.
type Memo struct {
	n     int
	over  map[Triple]float64
	under map[Triple]float64
	stats MemoStats
}

// NewMemo returns an empty cache for population size n (must be ≥ 0).
func NewMemo(n int) (*Memo, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewMemo: N=%d: %w", n, ErrBadParams)
	}

	return &Memo{n: n, over: make(map[Triple]float64), under: make(map[Triple]float64)}, nil
}

// Population returns N.
func (m *Memo) Population() int { return m.n }

// Stats returns a snapshot of the hit/miss counters.
func (m *Memo) Stats() MemoStats { return m.stats }

// Over returns P(X ≥ k) = SF(k-1). k = 0 yields exactly 1.
func (m *Memo) Over(t Triple) (float64, error) {
	key := t.canonical()
	if p, ok := m.over[key]; ok {
		m.stats.OverHits++
		return p, nil
	}
	d, err := m.dist(key)
	if err != nil {
		return 0, err
	}
	p := d.SF(key.Shared - 1)
	m.over[key] = p
	m.stats.OverMisses++

	return p, nil
}

// Under returns P(X ≤ k) = CDF(k).
func (m *Memo) Under(t Triple) (float64, error) {
	key := t.canonical()
	if p, ok := m.under[key]; ok {
		m.stats.UnderHits++
		return p, nil
	}
	d, err := m.dist(key)
	if err != nil {
		return 0, err
	}
	p := d.CDF(key.Shared)
	m.under[key] = p
	m.stats.UnderMisses++

	return p, nil
}

func (m *Memo) dist(t Triple) (Dist, error) {
	d := Dist{N: m.n, Successes: t.Succ, Draws: t.Draws}
	if err := d.Validate(); err != nil {
		return Dist{}, err
	}
	if t.Shared < 0 {
		return Dist{}, fmt.Errorf("hypergeom: k=%d: %w", t.Shared, ErrBadParams)
	}

	return d, nil
}
