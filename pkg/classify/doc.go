// Package classify turns a line hypergraph into per-graph statistics and
// selects graphs by them.
//
// [Classify] produces [Stats]: the number of distinct lines, the number of
// universal lines, and the gap Lines - Order that measures a graph's
// distance from the de Bruijn–Erdős bound. With [Options] it also counts
// universal pairs and lines restricted to a [Range] of pair distances, and
// the bridges of the graph. A [Filter] is one of the predicates behind the
// -u, -n, -nmax and -nmin switches; [Row] renders the statistics line
// printed when no filter is active.
package classify
