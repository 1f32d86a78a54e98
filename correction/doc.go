// Package correction applies multiple-hypothesis correction to the
// p-values of projected edges.
//
// Methods:
//
//   - Bonferroni ("B"): edge passes iff p < alpha/Nt.
//   - FDR ("FDR"):      Benjamini–Hochberg step-up with Nt as denominator;
//     edge passes iff p ≤ the largest p(i) satisfying p(i) ≤ i·alpha/Nt.
//
// Nt = n1(n1-1)/2 counts every possible set-1 pair, including pairs that
// were never materialised because they share no neighbor. Each tail is
// corrected on its own; the resulting flags are independent.
package correction
