package classify

import (
	"strconv"
	"strings"

	"github.com/matzehuels/metriclines/pkg/graph"
	"github.com/matzehuels/metriclines/pkg/lines"
	"github.com/matzehuels/metriclines/pkg/metric"
)

// Stats are the line statistics of one graph.
type Stats struct {
	Order int `json:"order"`
	Lines int `json:"lines"`

	// UniversalLines counts the lines equal to the whole vertex set. Lines
	// are distinct, so it is 0 or 1.
	UniversalLines int `json:"universal_lines"`

	// Gap is Lines - Order.
	Gap int `json:"gap"`

	// UniversalPairs counts the pairs whose line is universal and whose
	// distance lies in Options.UniversalDist. UniversalByDistance[d-1]
	// splits out the pairs at distance d, for d = 1 and d = 2.
	UniversalPairs      int    `json:"universal_pairs"`
	UniversalByDistance [2]int `json:"universal_by_distance"`

	// Bridges is only computed with Options.Extended.
	Bridges  int `json:"bridges"`
	Diameter int `json:"diameter"`

	// LinePairs counts the pairs with distance in Options.PairDist, and
	// PairLines the distinct lines they generate.
	LinePairs int `json:"line_pairs"`
	PairLines int `json:"pair_lines"`

	// AMRZGap is PairLines + UniversalPairs - Order.
	AMRZGap int `json:"amrz_gap"`
}

// HasUniversal reports whether some line equals the whole vertex set.
func (s Stats) HasUniversal() bool { return s.UniversalLines > 0 }

// Classify derives the statistics of g from its line hypergraph h and
// distance matrix m.
func Classify(g *graph.Graph, h *lines.Hypergraph, m *metric.Matrix, opts Options) Stats {
	s := Stats{
		Order:    g.Order(),
		Lines:    h.Len(),
		Diameter: m.Diameter(),
	}
	s.Gap = s.Lines - s.Order
	if opts.Extended {
		s.Bridges = len(metric.Bridges(g))
	}

	h.Each(func(l lines.Line) {
		counted := false
		for _, p := range l.Pairs {
			if opts.PairDist.Contains(m.At(p.U, p.V)) {
				s.LinePairs++
				counted = true
			}
		}
		if counted {
			s.PairLines++
		}
	})

	if u, ok := h.Universal(); ok {
		s.UniversalLines = 1
		for _, p := range u.Pairs {
			d := m.At(p.U, p.V)
			if !opts.UniversalDist.Contains(d) {
				continue
			}
			s.UniversalPairs++
			if d == 1 || d == 2 {
				s.UniversalByDistance[d-1]++
			}
		}
	}
	s.AMRZGap = s.PairLines + s.UniversalPairs - s.Order
	return s
}

// Row renders s as "lines,universal,gap", where universal is the number of
// universal lines. With extended set it appends the columns named by
// [Header].
func Row(s Stats, extended bool) string {
	fields := []int{s.Lines, s.UniversalLines, s.Gap}
	if extended {
		fields = append(fields,
			s.UniversalPairs, s.UniversalByDistance[0], s.UniversalByDistance[1],
			s.Bridges, s.Diameter,
			s.LinePairs, s.PairLines, s.AMRZGap,
		)
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = strconv.Itoa(f)
	}
	return strings.Join(parts, ",")
}

// Header names the columns of [Row].
func Header(extended bool) string {
	if extended {
		return "lines,universal,gap,universal_pairs,universal_d1,universal_d2,bridges,diameter,line_pairs,pair_lines,amrz_gap"
	}
	return "lines,universal,gap"
}
