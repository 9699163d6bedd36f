// Package compare scores documents against each other and assembles the
// report that the CLI renders.
//
// A Comparer wraps one similarity configuration (method, shingle length,
// flag threshold, and optional template text). Pair scores two documents;
// All scores every unordered pair of a corpus and sorts the results with the
// most similar pairs first.
package compare
