// Package lines derives the line hypergraph of a graph's shortest-path
// metric.
//
// # Lines
//
// A vertex w is between u and v when d(u,w) + d(w,v) = d(u,v). The line
// through a pair {x,y} is the smallest vertex set containing x and y that is
// closed under this relation: whenever u and v are on the line, so is every
// vertex between them. [Intervals.Close] computes it as a fixed point over
// precomputed betweenness intervals, with a checked bound on the number of
// scans.
//
// [Build] derives the line of every unordered pair and deduplicates them by
// vertex set into a [Hypergraph]. Lines are keyed by their [graph.Set]
// bitmask and stored in a red-black tree, so iteration order is canonical and
// independent of which pair produced a line first.
//
// # Rules
//
// [RuleClosure] is the default. [RuleCollinear] selects the single-pass rule
// L(x,y) = {x,y} ∪ {k : one of x, y, k lies between the other two}, which
// yields the lines of the classical de Bruijn–Erdős setting and may differ
// from the closure on graphs with non-unique geodesics.
//
// # Errors
//
// Betweenness needs finite distances, so [Build] rejects disconnected graphs
// with a DISCONNECTED_GRAPH error from pkg/errors.
package lines
