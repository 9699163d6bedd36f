// Package sets provides a generic, map-backed set type and the set algebra
// used by similarity scoring: union, intersection, difference, and the
// Jaccard index.
//
// Every operation treats its inputs as immutable and returns a freshly
// allocated result, so callers can share sets freely between computations.
// A nil Set behaves as the empty set.
package sets
