package metric

import "github.com/matzehuels/metriclines/pkg/graph"

// IsBridge reports whether removing the edge {u,v} disconnects u from v.
// It returns false when u and v are not adjacent.
func IsBridge(g *graph.Graph, u, v int) bool {
	if !g.HasEdge(u, v) {
		return false
	}
	return !reachable(g.WithoutEdge(u, v), u, v)
}

// Bridges returns every bridge of g in [graph.Graph.Edges] order.
// Each candidate edge costs one search, so this is O(m·(n+m)); graphs here
// have at most 64 vertices.
func Bridges(g *graph.Graph) []graph.Edge {
	var out []graph.Edge
	for _, e := range g.Edges() {
		if IsBridge(g, e.U, e.V) {
			out = append(out, e)
		}
	}
	return out
}

// reachable reports whether dst can be reached from src, expanding the
// search frontier one distance level at a time.
func reachable(g *graph.Graph, src, dst int) bool {
	seen := graph.SetOf(src)
	frontier := seen
	for !frontier.Empty() {
		if seen.Has(dst) {
			return true
		}
		var next graph.Set
		frontier.Each(func(u int) { next |= g.Neighbors(u) })
		frontier = next &^ seen
		seen |= next
	}
	return seen.Has(dst)
}
