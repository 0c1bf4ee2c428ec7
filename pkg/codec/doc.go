// Package codec converts graphs to and from their compact ASCII encodings.
//
// # Overview
//
// Graphs cross process boundaries as single-line tokens, one per input line,
// so that tools can be chained with pipes. Two encodings of the same
// abstract [graph.Graph] are supported:
//
//   - Compact (graph6): the vertex count, then the full upper triangle of the
//     adjacency matrix, six bits per printable byte.
//   - Incremental (sparse6): a ':' sentinel, the vertex count, then records
//     that walk the vertices in index order and list each vertex's edges to
//     lower-indexed vertices. Much shorter for sparse graphs.
//
// # Usage
//
//	g, err := codec.Decode("DUW") // the 5-cycle
//	if err != nil {
//	    // errors.IsFormat(err) is true for every decode failure
//	}
//	codec.Encode(g, codec.Compact)     // "DUW"
//	codec.Encode(g, codec.Incremental) // ":DgGEQ"
//
// Decode and Encode are mutual inverses for both styles.
//
// # Limits
//
// Vertex counts up to [graph.MaxOrder] are accepted; the one-byte count
// covers n <= 62 and the four-byte form ('~' prefix) covers 63 and 64.
// Loops, digraph6 and incremental sparse6 (';') tokens are rejected.
package codec
