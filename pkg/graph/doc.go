// Package graph provides the in-memory model for finite simple graphs.
//
// # Overview
//
// A [Graph] has the vertices {0, ..., n-1} and a symmetric, irreflexive
// adjacency relation. Each adjacency row is a [Set], a 64-bit mask, so the
// order of a graph is bounded by [MaxOrder]. This bound is what the line
// analysis needs: a vertex subset fits in one word and doubles as its own
// canonical key.
//
// Graphs are built through a [Builder] and are immutable afterwards:
//
//	b, _ := graph.NewBuilder(3)
//	_ = b.AddEdge(0, 1)
//	_ = b.AddEdge(1, 2)
//	g := b.Graph() // the path 0-1-2
//
// The textual encodings used at process boundaries live in pkg/codec.
//
// # Families
//
// [Complete], [Path], [Cycle], [Star], [CompleteBipartite] and [Petersen]
// build well-known graphs, mostly for tests.
//
// # Concurrency
//
// Graph and Set values are safe for concurrent reads. A Builder is not safe
// for concurrent use.
package graph
