package graph

import (
	"errors"
	"fmt"
)

// MaxOrder is the largest number of vertices a Graph can hold. Adjacency rows
// and vertex subsets are single 64-bit words.
const MaxOrder = 64

var (
	// ErrTooLarge is returned by [NewBuilder] when the requested order exceeds
	// [MaxOrder].
	ErrTooLarge = errors.New("graph order exceeds 64 vertices")

	// ErrVertexRange is returned by [Builder.AddEdge] when an endpoint is not
	// in {0, ..., n-1}.
	ErrVertexRange = errors.New("vertex out of range")

	// ErrSelfLoop is returned by [Builder.AddEdge] when both endpoints are the
	// same vertex. Graphs are simple: loops are never stored.
	ErrSelfLoop = errors.New("self-loops are not supported")
)

// =============================================================================
// Graph
// =============================================================================

// Edge is an unordered vertex pair stored with U < V.
type Edge struct {
	U, V int
}

// Graph is a finite simple undirected graph on the vertices {0, ..., n-1}.
//
// The zero value is the empty graph with no vertices. A Graph is immutable
// once returned by [Builder.Graph] and is safe for concurrent reads.
type Graph struct {
	n   int
	adj []Set
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// Size returns the number of edges.
func (g *Graph) Size() int {
	total := 0
	for _, row := range g.adj {
		total += row.Len()
	}
	return total / 2
}

// Vertices returns the full vertex set.
func (g *Graph) Vertices() Set { return Full(g.n) }

// Neighbors returns the vertices adjacent to v.
func (g *Graph) Neighbors(v int) Set { return g.adj[v] }

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int { return g.adj[v].Len() }

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || v < 0 || u >= g.n || v >= g.n {
		return false
	}
	return g.adj[u].Has(v)
}

// Edges returns every edge ordered by its larger endpoint, then its smaller
// endpoint. This is the order in which incremental encodings list edges.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.Size())
	for v := 0; v < g.n; v++ {
		(g.adj[v] & Full(v)).Each(func(u int) {
			out = append(out, Edge{U: u, V: v})
		})
	}
	return out
}

// Equal reports whether g and h have the same order and the same adjacency
// relation under the identity vertex labelling.
func (g *Graph) Equal(h *Graph) bool {
	if g.n != h.n {
		return false
	}
	for v := 0; v < g.n; v++ {
		if g.adj[v] != h.adj[v] {
			return false
		}
	}
	return true
}

// WithoutEdge returns a copy of g with the edge {u,v} removed.
func (g *Graph) WithoutEdge(u, v int) *Graph {
	adj := make([]Set, g.n)
	copy(adj, g.adj)
	adj[u] = adj[u].Remove(v)
	adj[v] = adj[v].Remove(u)
	return &Graph{n: g.n, adj: adj}
}

// String formats g as "n=5 [0-2 0-3 1-3 1-4 2-4]".
func (g *Graph) String() string {
	s := fmt.Sprintf("n=%d [", g.n)
	for i, e := range g.Edges() {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d-%d", e.U, e.V)
	}
	return s + "]"
}

// =============================================================================
// Builder
// =============================================================================

// Builder accumulates edges for a Graph of fixed order. It is the only way to
// construct a non-empty Graph, which keeps Graph values immutable.
type Builder struct {
	n   int
	adj []Set
}

// NewBuilder returns a Builder for a graph on n vertices.
// Returns ErrTooLarge if n > MaxOrder.
func NewBuilder(n int) (*Builder, error) {
	if n < 0 || n > MaxOrder {
		return nil, fmt.Errorf("%w: n=%d", ErrTooLarge, n)
	}
	return &Builder{n: n, adj: make([]Set, n)}, nil
}

// AddEdge adds the undirected edge {u,v}. Adding an existing edge is a no-op.
func (b *Builder) AddEdge(u, v int) error {
	if u < 0 || v < 0 || u >= b.n || v >= b.n {
		return fmt.Errorf("%w: {%d,%d} with n=%d", ErrVertexRange, u, v, b.n)
	}
	if u == v {
		return fmt.Errorf("%w: vertex %d", ErrSelfLoop, u)
	}
	b.adj[u] = b.adj[u].Add(v)
	b.adj[v] = b.adj[v].Add(u)
	return nil
}

// Graph returns the built graph. The builder may continue to be used; later
// edges do not affect graphs already returned.
func (b *Builder) Graph() *Graph {
	adj := make([]Set, b.n)
	copy(adj, b.adj)
	return &Graph{n: b.n, adj: adj}
}

// FromEdges builds a graph on n vertices from an edge list.
func FromEdges(n int, edges ...Edge) (*Graph, error) {
	b, err := NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err := b.AddEdge(e.U, e.V); err != nil {
			return nil, err
		}
	}
	return b.Graph(), nil
}
