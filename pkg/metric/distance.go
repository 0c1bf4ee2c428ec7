package metric

import (
	"strconv"
	"strings"

	"github.com/matzehuels/metriclines/pkg/graph"
)

// Unreachable marks a pair of vertices in different components.
const Unreachable = -1

// Matrix is the all-pairs shortest-path distance table of a graph.
// It is symmetric with a zero diagonal and is read-only once built.
type Matrix struct {
	n int
	d []int // row-major n*n
}

// Distances computes the distance matrix of g with one breadth-first search
// per source vertex, O(n·(n+m)) overall.
func Distances(g *graph.Graph) *Matrix {
	n := g.Order()
	m := &Matrix{n: n, d: make([]int, n*n)}
	for i := range m.d {
		m.d[i] = Unreachable
	}

	queue := make([]int, 0, n)
	for src := 0; src < n; src++ {
		row := m.d[src*n : (src+1)*n]
		row[src] = 0
		queue = append(queue[:0], src)
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			g.Neighbors(u).Each(func(w int) {
				if row[w] == Unreachable {
					row[w] = row[u] + 1
					queue = append(queue, w)
				}
			})
		}
	}
	return m
}

// Order returns the number of vertices the matrix covers.
func (m *Matrix) Order() int { return m.n }

// At returns the distance between u and v, or Unreachable.
func (m *Matrix) At(u, v int) int { return m.d[u*m.n+v] }

// Row returns the distances from u. The slice aliases the matrix and must
// not be modified.
func (m *Matrix) Row(u int) []int { return m.d[u*m.n : (u+1)*m.n] }

// Between reports whether w lies on a shortest path from u to v, that is
// d(u,w) + d(w,v) = d(u,v). Endpoints are between themselves. Pairs with an
// unreachable distance are never between.
func (m *Matrix) Between(u, w, v int) bool {
	duv, duw, dwv := m.At(u, v), m.At(u, w), m.At(w, v)
	if duv == Unreachable || duw == Unreachable || dwv == Unreachable {
		return false
	}
	return duw+dwv == duv
}

// Connected reports whether every pair of vertices is reachable. Graphs with
// fewer than two vertices are connected.
func (m *Matrix) Connected() bool {
	for _, d := range m.d {
		if d == Unreachable {
			return false
		}
	}
	return true
}

// FirstUnreachable returns a pair (u, v) with u < v in different components.
// ok is false when the graph is connected.
func (m *Matrix) FirstUnreachable() (u, v int, ok bool) {
	for u = 0; u < m.n; u++ {
		for v = u + 1; v < m.n; v++ {
			if m.At(u, v) == Unreachable {
				return u, v, true
			}
		}
	}
	return 0, 0, false
}

// Diameter returns the largest finite distance, or Unreachable when the
// graph is disconnected.
func (m *Matrix) Diameter() int {
	diam := 0
	for _, d := range m.d {
		if d == Unreachable {
			return Unreachable
		}
		diam = max(diam, d)
	}
	return diam
}

// UpperTriangle returns d(0,1), d(0,2), ..., d(n-2,n-1): the distances of
// every unordered pair in row-major order.
func (m *Matrix) UpperTriangle() []int {
	out := make([]int, 0, m.n*(m.n-1)/2)
	for u := 0; u < m.n; u++ {
		for v := u + 1; v < m.n; v++ {
			out = append(out, m.At(u, v))
		}
	}
	return out
}

// String formats the matrix one row per line, with "-" for unreachable pairs.
func (m *Matrix) String() string {
	var b strings.Builder
	for u := 0; u < m.n; u++ {
		for v := 0; v < m.n; v++ {
			if v > 0 {
				b.WriteByte(' ')
			}
			if d := m.At(u, v); d == Unreachable {
				b.WriteByte('-')
			} else {
				b.WriteString(strconv.Itoa(d))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
