// SPDX-License-Identifier: MIT
// Package: bipval/correction
//
// correction.go - Bonferroni and FDR (Benjamini–Hochberg step-up) decisions.
//
// Hypothesis count:
//   Both procedures divide by Nt = n1(n1-1)/2, the number of possible set-1
//   pairs, not by the number m of materialised edges. Unobserved pairs are
//   hypotheses too; they simply have p = 1.
//
// Pass rules:
//   • Bonferroni: p <  alpha/Nt            (strict)
//   • FDR:        p <= max{ p(i) : p(i) ≤ i·alpha/Nt }, 0 if the set is empty
//
// NaN p-values never pass and are ignored by the FDR ranking.

package correction

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Sentinel errors.
var (
	// ErrUnknownMethod indicates a method name other than B or FDR.
	ErrUnknownMethod = errors.New("correction: unknown method")

	// ErrBadAlpha indicates a significance threshold outside [0,1].
	ErrBadAlpha = errors.New("correction: threshold must be in [0,1]")

	// ErrNoHypotheses indicates p-values were supplied with Nt ≤ 0.
	ErrNoHypotheses = errors.New("correction: hypothesis count must be positive")
)

// Method selects the multiple-testing procedure.
type Method uint8

const (
	// Bonferroni controls the family-wise error rate.
	Bonferroni Method = iota + 1
	// FDR controls the false discovery rate (BH step-up).
	FDR
)

// ParseMethod maps "B" and "FDR" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "B":
		return Bonferroni, nil
	case "FDR":
		return FDR, nil
	default:
		return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
	}
}

// String returns the command-line spelling.
func (m Method) String() string {
	switch m {
	case Bonferroni:
		return "B"
	case FDR:
		return "FDR"
	default:
		return fmt.Sprintf("Method(%d)", uint8(m))
	}
}

// Hypotheses returns Nt = n1(n1-1)/2 for n1 candidate vertices.
func Hypotheses(n1 int) float64 {
	if n1 < 2 {
		return 0
	}

	return float64(n1) * float64(n1-1) / 2
}

// Decision is the outcome of one correction over one tail.
type Decision struct {
	Method    Method
	Alpha     float64
	Nt        float64
	Threshold float64 // adopted threshold (Bonferroni: alpha/Nt)
	Pass      []bool  // per input p-value
	Passed    int
}

// BonferroniThreshold returns alpha/nt.
func BonferroniThreshold(alpha, nt float64) float64 { return alpha / nt }

// FDRThreshold returns the largest sorted p-value p(i) with
// p(i) ≤ i·alpha/nt (i 1-based), or 0 if there is none.
//
// Complexity: O(m log m) for m p-values.
func FDRThreshold(pvals []float64, alpha, nt float64) float64 {
	// 1) Copy out the comparable p-values; NaN has no rank.
	sorted := make([]float64, 0, len(pvals))
	for _, p := range pvals {
		if !math.IsNaN(p) {
			sorted = append(sorted, p)
		}
	}
	// 2) Rank ascending; the input order is left untouched.
	sort.Float64s(sorted)

	// 3) Scan every rank: the step-up rule keeps the last p(i) under its
	//    line i·alpha/nt even when earlier ranks lie above theirs.
	thr := 0.0
	for i, p := range sorted {
		if p <= float64(i+1)*alpha/nt && p > thr {
			thr = p
		}
	}

	// 4) nt, not len(sorted), is the denominator: it counts every candidate
	//    pair, including those that never projected.
	return thr
}

// Apply runs method m over pvals.
func Apply(pvals []float64, m Method, alpha, nt float64) (Decision, error) {
	if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
		return Decision{}, fmt.Errorf("Apply: alpha=%g: %w", alpha, ErrBadAlpha)
	}
	d := Decision{Method: m, Alpha: alpha, Nt: nt, Pass: make([]bool, len(pvals))}
	if len(pvals) == 0 {
		return d, nil
	}
	if !(nt > 0) {
		return Decision{}, fmt.Errorf("Apply: Nt=%g with %d p-values: %w", nt, len(pvals), ErrNoHypotheses)
	}

	var pass func(p float64) bool
	switch m {
	case Bonferroni:
		d.Threshold = BonferroniThreshold(alpha, nt)
		pass = func(p float64) bool { return p < d.Threshold }
	case FDR:
		d.Threshold = FDRThreshold(pvals, alpha, nt)
		pass = func(p float64) bool { return p <= d.Threshold }
	default:
		return Decision{}, fmt.Errorf("Apply: %v: %w", m, ErrUnknownMethod)
	}

	for i, p := range pvals {
		if !math.IsNaN(p) && pass(p) {
			d.Pass[i] = true
			d.Passed++
		}
	}

	return d, nil
}
