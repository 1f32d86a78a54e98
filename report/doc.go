// SPDX-License-Identifier: MIT

// Package report renders a pipeline.Result.
//
//   - WriteTable / WriteFile: the validated edge list, one line per
//     projected edge, columns depending on the requested tails.
//   - NewSummary / WriteSummary: a YAML digest of the run (counts,
//     hypothesis space, per-tail thresholds, memo hits).
//
// An empty Result produces a header-only table.
package report
