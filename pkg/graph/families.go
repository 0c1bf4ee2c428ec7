package graph

import "fmt"

// Standard graph families. They exist mostly as fixtures for tests and
// examples, and all panic on an order outside their domain since the order
// is a programming constant at every call site.

// Complete returns K_n.
func Complete(n int) *Graph {
	b := mustBuilder("Complete", n, 0)
	for v := 1; v < n; v++ {
		for u := 0; u < v; u++ {
			_ = b.AddEdge(u, v)
		}
	}
	return b.Graph()
}

// Path returns P_n, the path 0-1-...-(n-1).
func Path(n int) *Graph {
	b := mustBuilder("Path", n, 0)
	for v := 1; v < n; v++ {
		_ = b.AddEdge(v-1, v)
	}
	return b.Graph()
}

// Cycle returns C_n, the cycle 0-1-...-(n-1)-0. Requires n >= 3.
func Cycle(n int) *Graph {
	b := mustBuilder("Cycle", n, 3)
	for v := 0; v < n; v++ {
		_ = b.AddEdge(v, (v+1)%n)
	}
	return b.Graph()
}

// Star returns K_{1,n-1} with center 0. Requires n >= 1.
func Star(n int) *Graph {
	b := mustBuilder("Star", n, 1)
	for v := 1; v < n; v++ {
		_ = b.AddEdge(0, v)
	}
	return b.Graph()
}

// CompleteBipartite returns K_{a,b} with parts {0..a-1} and {a..a+b-1}.
func CompleteBipartite(a, b int) *Graph {
	bld := mustBuilder("CompleteBipartite", a+b, 0)
	for u := 0; u < a; u++ {
		for v := a; v < a+b; v++ {
			_ = bld.AddEdge(u, v)
		}
	}
	return bld.Graph()
}

// Petersen returns the Petersen graph: outer 5-cycle 0..4, inner pentagram
// 5..9, and spokes i-(i+5).
func Petersen() *Graph {
	b := mustBuilder("Petersen", 10, 10)
	for i := 0; i < 5; i++ {
		_ = b.AddEdge(i, (i+1)%5)
		_ = b.AddEdge(5+i, 5+(i+2)%5)
		_ = b.AddEdge(i, i+5)
	}
	return b.Graph()
}

func mustBuilder(family string, n, min int) *Builder {
	if n < min {
		panic(fmt.Sprintf("graph.%s: n=%d < %d", family, n, min))
	}
	b, err := NewBuilder(n)
	if err != nil {
		panic(fmt.Sprintf("graph.%s: %v", family, err))
	}
	return b
}
