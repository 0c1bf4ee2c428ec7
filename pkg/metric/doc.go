// Package metric computes the shortest-path metric of unweighted graphs.
//
// [Distances] runs one breadth-first search per vertex and returns a
// [Matrix]. Graphs analyzed here are small (at most 64 vertices), so the
// O(n·(n+m)) cost is far below anything worth a weighted all-pairs
// algorithm. Pairs in different components are marked [Unreachable]; the
// line engine refuses such graphs.
//
// [Matrix.Between] is the betweenness relation the line closure is built
// on: w is between u and v iff d(u,w) + d(w,v) = d(u,v).
package metric
