package lines

import (
	errs "github.com/matzehuels/metriclines/pkg/errors"
	"github.com/matzehuels/metriclines/pkg/graph"
	"github.com/matzehuels/metriclines/pkg/metric"
)

// Intervals holds, for every vertex pair {u,v}, the set of vertices between
// them: I(u,v) = {w : d(u,w) + d(w,v) = d(u,v)}. It is computed once per
// graph and shared by every closure over that graph.
type Intervals struct {
	n    int
	sets []graph.Set // row-major n*n, symmetric
}

// NewIntervals precomputes all betweenness intervals of m in O(n³).
func NewIntervals(m *metric.Matrix) *Intervals {
	n := m.Order()
	iv := &Intervals{n: n, sets: make([]graph.Set, n*n)}
	for u := 0; u < n; u++ {
		for v := u; v < n; v++ {
			var s graph.Set
			for w := 0; w < n; w++ {
				if m.Between(u, w, v) {
					s = s.Add(w)
				}
			}
			iv.sets[u*n+v] = s
			iv.sets[v*n+u] = s
		}
	}
	return iv
}

// Order returns the number of vertices.
func (iv *Intervals) Order() int { return iv.n }

// At returns I(u,v).
func (iv *Intervals) At(u, v int) graph.Set { return iv.sets[u*iv.n+v] }

// Close returns the smallest superset of seed that contains I(u,v) for every
// pair u, v in it.
//
// Each scan over the pairs of the current set either adds a vertex or ends
// the loop, so at most n+1 scans are needed. Exceeding that bound means the
// intervals are inconsistent and is reported as an internal error.
func (iv *Intervals) Close(seed graph.Set) (graph.Set, error) {
	s := seed
	for scan := 0; scan <= iv.n; scan++ {
		next := s
		s.Each(func(u int) {
			row := iv.sets[u*iv.n : (u+1)*iv.n]
			s.Each(func(v int) {
				if u < v {
					next |= row[v]
				}
			})
		})
		if next == s {
			return s, nil
		}
		s = next
	}
	return s, errs.New(errs.ErrCodeInternal, "closure of %v did not reach a fixed point within %d scans", seed, iv.n+1)
}

// IsClosed reports whether s already contains the interval of each of its
// pairs.
func (iv *Intervals) IsClosed(s graph.Set) bool {
	closed := true
	s.Each(func(u int) {
		s.Each(func(v int) {
			if u < v && !s.Contains(iv.At(u, v)) {
				closed = false
			}
		})
	})
	return closed
}

// Closure is a convenience wrapper that closes seed under the betweenness
// relation of m.
func Closure(m *metric.Matrix, seed graph.Set) (graph.Set, error) {
	return NewIntervals(m).Close(seed)
}

// collinear returns the one-pass line through x and y: x, y, and every k
// such that one of x, y, k lies between the other two.
func collinear(m *metric.Matrix, x, y int) graph.Set {
	s := graph.SetOf(x, y)
	for k := 0; k < m.Order(); k++ {
		if m.Between(x, k, y) || m.Between(x, y, k) || m.Between(y, x, k) {
			s = s.Add(k)
		}
	}
	return s
}
