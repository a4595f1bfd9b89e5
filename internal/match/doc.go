// Package match provides edit-distance calculation and nearest-string
// ranking for "did you mean" suggestions.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Closest: ranks candidate strings by distance to a mistyped input
package match
