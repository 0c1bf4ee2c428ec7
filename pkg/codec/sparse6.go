package codec

import (
	"fmt"

	"github.com/matzehuels/metriclines/pkg/graph"
)

// vertexBits returns the width of a vertex field: the number of bits needed
// to write n-1 in binary (0 for n <= 1).
func vertexBits(n int) int {
	k := 0
	for i := n - 1; i > 0; i >>= 1 {
		k++
	}
	return k
}

// decodeSparse6 parses a sparse6 body (without the ':' sentinel).
//
// The body is a sequence of records (b, x) with b one bit and x a
// vertexBits(n)-bit field, tracking a current vertex v starting at 0: b=1
// advances v; then x > v moves v to x, otherwise {x, v} is an edge. Decoding
// stops at the end of data, on a partial record (padding), or once v >= n.
func decodeSparse6(s string) (*graph.Graph, error) {
	n, body, err := decodeOrder(s)
	if err != nil {
		return nil, err
	}
	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, err
	}

	k := vertexBits(n)
	r := bitReader{data: body, base: len(s) - len(body) + 1}
	v := 0
	for {
		flag, ok, err := r.bit()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		x, ok, err := r.bits(k)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if flag == 1 {
			v++
		}
		if v >= n {
			break
		}
		if x > v {
			v = x
			continue
		}
		if x == v {
			return nil, fmt.Errorf("self-loop at vertex %d is not supported", v)
		}
		if err := b.AddEdge(x, v); err != nil {
			return nil, err
		}
	}
	// Trailing bytes after the terminating record must still be printable.
	for i := r.pos; i < len(body); i++ {
		if err := checkByte(body[i], r.base+i); err != nil {
			return nil, err
		}
	}
	return b.Graph(), nil
}

// encodeSparse6 writes the sparse6 body of g (without the ':' sentinel).
// Edges are emitted by increasing larger endpoint. The final partial word is
// padded with ones, except when that padding would decode as a spurious
// loop on vertex n-1; then a zero bit comes first.
func encodeSparse6(g *graph.Graph) string {
	n := g.Order()
	k := vertexBits(n)
	w := bitWriter{out: encodeOrder(n)}

	last := 0
	for _, e := range g.Edges() {
		if e.V == last {
			w.bit(0)
		} else {
			w.bit(1)
			if e.V > last+1 {
				w.bits(e.V, k)
				w.bit(0)
			}
			last = e.V
		}
		w.bits(e.U, k)
	}

	if free := w.free(); free > 0 {
		if free >= k+1 && last == n-2 && n == 1<<k {
			w.bit(0)
			free--
		}
		w.bits(1<<free-1, free)
	}
	return string(w.out)
}
