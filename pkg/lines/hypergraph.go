package lines

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"

	errs "github.com/matzehuels/metriclines/pkg/errors"
	"github.com/matzehuels/metriclines/pkg/graph"
	"github.com/matzehuels/metriclines/pkg/metric"
)

// Rule selects how the line through a vertex pair is derived.
type Rule int

const (
	// RuleClosure closes {x,y} under betweenness until a fixed point: the
	// smallest betweenness-closed set containing both vertices.
	RuleClosure Rule = iota
	// RuleCollinear takes a single pass: x, y, and every vertex k for which
	// one of x, y, k lies between the other two.
	RuleCollinear
)

// String returns the rule's command-line name.
func (r Rule) String() string {
	switch r {
	case RuleClosure:
		return "closure"
	case RuleCollinear:
		return "collinear"
	}
	return "unknown"
}

// ParseRule maps a command-line name to a Rule. The empty name selects
// [RuleClosure].
func ParseRule(name string) (Rule, error) {
	if name == "" {
		return RuleClosure, nil
	}
	if err := errs.ValidateChoice("line rule", name, RuleClosure.String(), RuleCollinear.String()); err != nil {
		return 0, err
	}
	if name == RuleCollinear.String() {
		return RuleCollinear, nil
	}
	return RuleClosure, nil
}

// Pair is an unordered generating pair with U < V.
type Pair struct {
	U, V int
}

// Line is a distinct vertex set of the hypergraph together with every pair
// that generates it.
type Line struct {
	Members graph.Set
	Pairs   []Pair
}

// Size returns the number of vertices on the line.
func (l Line) Size() int { return l.Members.Len() }

// Option configures [Build].
type Option func(*buildOptions)

type buildOptions struct {
	rule Rule
}

// WithRule selects the line rule. The default is [RuleClosure].
func WithRule(r Rule) Option {
	return func(o *buildOptions) { o.rule = r }
}

// Hypergraph is the set of distinct lines of a graph, keyed and ordered by
// vertex-set bitmask. It is immutable once returned by [Build].
type Hypergraph struct {
	n    int
	rule Rule
	tree *redblacktree.Tree // graph.Set -> *Line
}

// Build derives the line of every unordered vertex pair of g and
// deduplicates the results into a hypergraph. m must be the distance matrix
// of g.
//
// Returns a DISCONNECTED_GRAPH error when some pair is unreachable, since
// betweenness needs finite distances. Graphs with fewer than two vertices
// yield an empty hypergraph.
func Build(g *graph.Graph, m *metric.Matrix, opts ...Option) (*Hypergraph, error) {
	o := buildOptions{rule: RuleClosure}
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	if m.Order() != n {
		return nil, errs.New(errs.ErrCodeInternal, "distance matrix has order %d, graph has %d", m.Order(), n)
	}
	if u, v, ok := m.FirstUnreachable(); ok {
		return nil, errs.New(errs.ErrCodeDisconnected, "vertices %d and %d are in different components", u, v)
	}

	h := &Hypergraph{n: n, rule: o.rule, tree: redblacktree.NewWith(compareSets)}

	var iv *Intervals
	if o.rule == RuleClosure {
		iv = NewIntervals(m)
	}
	for y := 1; y < n; y++ {
		for x := 0; x < y; x++ {
			var members graph.Set
			if o.rule == RuleCollinear {
				members = collinear(m, x, y)
			} else {
				var err error
				if members, err = iv.Close(graph.SetOf(x, y)); err != nil {
					return nil, err
				}
			}
			h.add(members, Pair{U: x, V: y})
		}
	}
	return h, nil
}

func (h *Hypergraph) add(members graph.Set, p Pair) {
	if v, found := h.tree.Get(members); found {
		l := v.(*Line)
		l.Pairs = append(l.Pairs, p)
		return
	}
	h.tree.Put(members, &Line{Members: members, Pairs: []Pair{p}})
}

// compareSets orders vertex sets by their bitmask value.
func compareSets(a, b interface{}) int {
	x, y := a.(graph.Set), b.(graph.Set)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Order returns the number of vertices of the underlying graph.
func (h *Hypergraph) Order() int { return h.n }

// Rule returns the rule the lines were derived with.
func (h *Hypergraph) Rule() Rule { return h.rule }

// Len returns the number of distinct lines.
func (h *Hypergraph) Len() int { return h.tree.Size() }

// Contains reports whether s is one of the lines.
func (h *Hypergraph) Contains(s graph.Set) bool {
	_, found := h.tree.Get(s)
	return found
}

// Line returns the line with vertex set s.
func (h *Hypergraph) Line(s graph.Set) (Line, bool) {
	v, found := h.tree.Get(s)
	if !found {
		return Line{}, false
	}
	return *v.(*Line), true
}

// Universal returns the line equal to the full vertex set, if there is one.
func (h *Hypergraph) Universal() (Line, bool) {
	if h.n == 0 {
		return Line{}, false
	}
	return h.Line(graph.Full(h.n))
}

// Each calls fn for every line in ascending bitmask order.
func (h *Hypergraph) Each(fn func(Line)) {
	it := h.tree.Iterator()
	for it.Next() {
		fn(*it.Value().(*Line))
	}
}

// Lines returns all lines in ascending bitmask order.
func (h *Hypergraph) Lines() []Line {
	out := make([]Line, 0, h.Len())
	h.Each(func(l Line) { out = append(out, l) })
	return out
}

// String lists the lines, one vertex set per line.
func (h *Hypergraph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d lines on %d vertices (%s)\n", h.Len(), h.n, h.rule)
	h.Each(func(l Line) {
		b.WriteString(l.Members.String())
		b.WriteByte('\n')
	})
	return b.String()
}
