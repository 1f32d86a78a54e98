// SPDX-License-Identifier: MIT

// Package backbone describes the validated projection as a graph: how many
// vertices keep at least one significant link, how those links split into
// components, and the maximum-weight spanning forest over them.
//
// A pass mask from correction.Decision selects the validated edges; the
// projection itself is never modified.
package backbone
