// SPDX-License-Identifier: MIT
// Package: bipval/hypergeom
//
// dist.go - hypergeometric PMF, CDF and survival function.
//
// Numerics:
//   • log P(X = k) uses Loader's saddle-point form: three binomial
//     densities built from the Stirling remainder stirlerr and the deviance
//     bd0. Differences of huge log-factorials never appear, so populations
//     of 10^8 keep near machine precision, and nothing overflows.
//   • Tails are summed directly in log space with a streaming log-sum-exp;
//     SF is never computed as 1-CDF, so tiny p-values keep full relative
//     precision instead of cancelling to 0.
//   • Arguments outside the support return exact 0 or 1.
//   • Results are clamped to [0,1].

package hypergeom

import (
	"fmt"
	"math"
)

// Dist is the hypergeometric distribution of the number of successes in
// Draws draws without replacement from a population of N items of which
// Successes are successes.
type Dist struct {
	N         int // population size
	Successes int // success states in the population (K)
	Draws     int // number of draws (n)
}

// Validate reports ErrBadParams unless 0 ≤ Successes ≤ N and 0 ≤ Draws ≤ N.
func (d Dist) Validate() error {
	if d.N < 0 || d.Successes < 0 || d.Draws < 0 || d.Successes > d.N || d.Draws > d.N {
		return fmt.Errorf("hypergeom(N=%d, K=%d, n=%d): %w", d.N, d.Successes, d.Draws, ErrBadParams)
	}

	return nil
}

// Support returns the inclusive range [lo, hi] of values with non-zero mass.
func (d Dist) Support() (lo, hi int) {
	lo = d.Draws + d.Successes - d.N
	if lo < 0 {
		lo = 0
	}
	hi = d.Successes
	if d.Draws < hi {
		hi = d.Draws
	}

	return lo, hi
}

// Mean returns n·K/N (0 for an empty population).
func (d Dist) Mean() float64 {
	if d.N == 0 {
		return 0
	}

	return float64(d.Draws) * float64(d.Successes) / float64(d.N)
}

// LogPMF returns log P(X = k), or -Inf outside the support.
//
// With p = n/N and q = 1-p,
//
//	P(X = k) = b(k; K, p) · b(n-k; N-K, p) / b(n; N, p)
//
// where b is the binomial density, evaluated by logBinom.
func (d Dist) LogPMF(k int) float64 {
	lo, hi := d.Support()
	switch {
	case k < lo || k > hi:
		return math.Inf(-1)
	case lo == hi:
		// Degenerate: N, K or n pins X to a single value.
		return 0
	}

	// lo < hi implies 0 < n < N, so 0 < p < 1.
	nn := float64(d.N)
	p := float64(d.Draws) / nn
	q := float64(d.N-d.Draws) / nn

	return logBinom(k, d.Successes, p, q) +
		logBinom(d.Draws-k, d.N-d.Successes, p, q) -
		logBinom(d.Draws, d.N, p, q)
}

// PMF returns P(X = k).
func (d Dist) PMF(k int) float64 { return clamp01(math.Exp(d.LogPMF(k))) }

// CDF returns P(X ≤ k).
func (d Dist) CDF(k int) float64 {
	lo, hi := d.Support()
	switch {
	case k < lo:
		return 0
	case k >= hi:
		return 1
	}

	return d.sumRange(lo, k)
}

// SF returns the survival function P(X > k).
func (d Dist) SF(k int) float64 {
	lo, hi := d.Support()
	switch {
	case k < lo:
		return 1
	case k >= hi:
		return 0
	}

	return d.sumRange(k+1, hi)
}

// sumRange returns Σ_{x=a..b} P(X = x) for a ≤ b inside the support.
//
// Complexity: O(b-a) LogPMF evaluations, O(1) extra space.
func (d Dist) sumRange(a, b int) float64 {
	// 1) m is the running maximum log term, s the sum of exp(l-m) so far.
	m, s := math.Inf(-1), 0.0
	for x := a; x <= b; x++ {
		l := d.LogPMF(x)
		if l > m {
			// 2) New maximum: rescale the partial sum to it, then add 1 for x.
			s = s*math.Exp(m-l) + 1
			m = l
		} else {
			// 3) Otherwise accumulate relative to the current maximum.
			s += math.Exp(l - m)
		}
	}

	// 4) Undo the scaling once; only the final exp can underflow.
	return clamp01(math.Exp(m + math.Log(s)))
}

// logBinom returns the log binomial density log b(x; n, p) with q = 1-p
// supplied separately, following Loader (2000), "Fast and accurate
// computation of binomial probabilities".
func logBinom(x, n int, p, q float64) float64 {
	fx, fn := float64(x), float64(n)
	switch {
	case x < 0 || x > n:
		return math.Inf(-1)
	case x == 0:
		if n == 0 {
			return 0
		}
		if p < 0.1 {
			return -bd0(fn, fn*q) - fn*p
		}
		return fn * math.Log(q)
	case x == n:
		if q < 0.1 {
			return -bd0(fn, fn*p) - fn*q
		}
		return fn * math.Log(p)
	}

	lc := stirlerr(fn) - stirlerr(fx) - stirlerr(fn-fx) - bd0(fx, fn*p) - bd0(fn-fx, fn*q)
	lf := ln2Pi + math.Log(fx) + math.Log1p(-fx/fn)

	return lc - 0.5*lf
}

const ln2Pi = 1.837877066409345483560659472811 // log(2π)

// Stirling series coefficients 1/12, 1/360, 1/1260, 1/1680, 1/1188.
const (
	stirS0 = 1.0 / 12
	stirS1 = 1.0 / 360
	stirS2 = 1.0 / 1260
	stirS3 = 1.0 / 1680
	stirS4 = 1.0 / 1188
)

// stirlerr returns log(n!) - log(√(2πn)·(n/e)^n) for n ≥ 1.
func stirlerr(n float64) float64 {
	if n <= 15 {
		// Small n: the log-gamma difference is exact to a few ulps here.
		return lgamma(n+1) - (n+0.5)*math.Log(n) + n - 0.5*ln2Pi
	}
	nn := n * n
	switch {
	case n > 500:
		return (stirS0 - stirS1/nn) / n
	case n > 80:
		return (stirS0 - (stirS1-stirS2/nn)/nn) / n
	case n > 35:
		return (stirS0 - (stirS1-(stirS2-stirS3/nn)/nn)/nn) / n
	default:
		return (stirS0 - (stirS1-(stirS2-(stirS3-stirS4/nn)/nn)/nn)/nn) / n
	}
}

// bd0 returns the deviance term x·log(x/np) + np - x without cancellation
// when x is close to np.
func bd0(x, np float64) float64 {
	if math.Abs(x-np) >= 0.1*(x+np) {
		return x*math.Log(x/np) + np - x
	}

	// Series in v = (x-np)/(x+np); terms shrink by v² each step.
	v := (x - np) / (x + np)
	s := (x - np) * v
	ej := 2 * x * v
	v *= v
	for j := 1; j < bd0MaxTerms; j++ {
		ej *= v
		s1 := s + ej/float64(2*j+1)
		if s1 == s {
			return s1
		}
		s = s1
	}

	return s
}

const bd0MaxTerms = 1000

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)

	return v
}

func clamp01(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
