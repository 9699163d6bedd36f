// Package textutil turns raw text into comparable units and scores how much two
// texts overlap.
//
// The primary use cases are:
//   - Extracting the set of trimmed, non-empty lines from a text
//   - Splitting text into lowercase alphanumeric words and k-word shingles
//   - Computing line and shingle similarity as a Jaccard index, optionally
//     after removing the units that also appear in a shared template
//
// Template exclusion happens after normalization: a line or shingle is dropped
// only when it exactly matches a normalized unit of the template. Every
// function is pure and safe for concurrent use.
package textutil
