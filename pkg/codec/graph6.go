package codec

import (
	"errors"
	"fmt"

	"github.com/matzehuels/metriclines/pkg/graph"
)

var errPadding = errors.New("non-zero padding bits")

// graph6Len returns the body length in bytes for a graph on n vertices.
func graph6Len(n int) int {
	return (n*(n-1)/2 + wordLen - 1) / wordLen
}

// decodeGraph6 parses a graph6 body: the vertex count followed by the upper
// triangle of the adjacency matrix in column order (0,1) (0,2) (1,2) (0,3) ...
func decodeGraph6(s string) (*graph.Graph, error) {
	n, body, err := decodeOrder(s)
	if err != nil {
		return nil, err
	}
	if want := graph6Len(n); len(body) != want {
		return nil, fmt.Errorf("body has %d bytes, want %d for n=%d", len(body), want, n)
	}

	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, err
	}
	r := bitReader{data: body, base: len(s) - len(body)}
	for v := 1; v < n; v++ {
		for u := 0; u < v; u++ {
			bit, _, err := r.bits(1)
			if err != nil {
				return nil, err
			}
			if bit == 1 {
				if err := b.AddEdge(u, v); err != nil {
					return nil, err
				}
			}
		}
	}
	if r.left > 0 && r.cur&(1<<r.left-1) != 0 {
		return nil, errPadding
	}
	return b.Graph(), nil
}

// encodeGraph6 writes the graph6 form of g, padding the last word with zeros.
func encodeGraph6(g *graph.Graph) string {
	n := g.Order()
	w := bitWriter{out: encodeOrder(n)}
	for v := 1; v < n; v++ {
		for u := 0; u < v; u++ {
			if g.HasEdge(u, v) {
				w.bit(1)
			} else {
				w.bit(0)
			}
		}
	}
	if k := w.free(); k > 0 {
		w.bits(0, k)
	}
	return string(w.out)
}
