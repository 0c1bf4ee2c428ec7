package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/metriclines/pkg/codec"
	errs "github.com/matzehuels/metriclines/pkg/errors"
	"github.com/matzehuels/metriclines/pkg/graph"
	"github.com/matzehuels/metriclines/pkg/lines"
	"github.com/matzehuels/metriclines/pkg/metric"
)

var extended = Options{Extended: true}

func statsWith(t *testing.T, g *graph.Graph, opts Options) Stats {
	t.Helper()
	m := metric.Distances(g)
	h, err := lines.Build(g, m)
	require.NoError(t, err)
	return Classify(g, h, m, opts)
}

func stats(t *testing.T, g *graph.Graph) Stats {
	t.Helper()
	return statsWith(t, g, Options{})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		g    *graph.Graph
		want Stats
	}{
		{"C5", graph.Cycle(5), Stats{Order: 5, Lines: 10, Gap: 5, Diameter: 2, LinePairs: 10, PairLines: 10, AMRZGap: 5}},
		{"P4", graph.Path(4), Stats{
			Order: 4, Lines: 6, UniversalLines: 1, Gap: 2, UniversalPairs: 1,
			Bridges: 3, Diameter: 3, LinePairs: 6, PairLines: 6, AMRZGap: 3,
		}},
		{"C4", graph.Cycle(4), Stats{
			Order: 4, Lines: 5, UniversalLines: 1, Gap: 1, UniversalPairs: 2, UniversalByDistance: [2]int{0, 2},
			Diameter: 2, LinePairs: 6, PairLines: 5, AMRZGap: 3,
		}},
		{"K2", graph.Complete(2), Stats{
			Order: 2, Lines: 1, UniversalLines: 1, Gap: -1, UniversalPairs: 1, UniversalByDistance: [2]int{1, 0},
			Bridges: 1, Diameter: 1, LinePairs: 1, PairLines: 1, AMRZGap: 0,
		}},
		{"K1", graph.Complete(1), Stats{Order: 1, Gap: -1, AMRZGap: -1}},
		{"K6", graph.Complete(6), Stats{Order: 6, Lines: 15, Gap: 9, Diameter: 1, LinePairs: 15, PairLines: 15, AMRZGap: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statsWith(t, tt.g, extended))
		})
	}
}

func TestClassifyCountsUniversalLinesOnce(t *testing.T) {
	g, err := codec.Decode("DFw")
	require.NoError(t, err)
	s := stats(t, g)
	assert.Equal(t, 7, s.Lines)
	assert.Equal(t, 1, s.UniversalLines)
	assert.Equal(t, 4, s.UniversalPairs)
	assert.Equal(t, "7,1,2", Row(s, false))
}

func TestClassifyBridgesOnlyWhenExtended(t *testing.T) {
	assert.Zero(t, stats(t, graph.Path(4)).Bridges)
	assert.Equal(t, 3, statsWith(t, graph.Path(4), extended).Bridges)
}

func TestClassifyDistanceRanges(t *testing.T) {
	// Only the three edges of P4 generate lines.
	s := statsWith(t, graph.Path(4), Options{PairDist: Range{Min: 1, Max: 1}})
	assert.Equal(t, 3, s.LinePairs)
	assert.Equal(t, 3, s.PairLines)
	assert.Equal(t, 6, s.Lines, "the line count always uses every pair")
	assert.Equal(t, 0, s.AMRZGap)

	// C4's universal pairs are its two diagonals.
	s = statsWith(t, graph.Cycle(4), Options{UniversalDist: Range{Min: 1, Max: 1}})
	assert.Equal(t, 0, s.UniversalPairs)
	assert.Equal(t, [2]int{0, 0}, s.UniversalByDistance)
	assert.Equal(t, 1, s.UniversalLines)
	assert.Equal(t, 1, s.AMRZGap)

	s = statsWith(t, graph.Cycle(4), Options{UniversalDist: Range{Min: 2}})
	assert.Equal(t, 2, s.UniversalPairs)
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in   string
		want Range
	}{
		{"", Range{}},
		{"1:2", Range{Min: 1, Max: 2}},
		{"2:", Range{Min: 2}},
		{":3", Range{Max: 3}},
		{"2", Range{Min: 2, Max: 2}},
	}
	for _, tt := range tests {
		got, err := ParseRange(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"3:1", "a:2", "-1:", "1:0", "1:x"} {
		_, err := ParseRange(bad)
		assert.True(t, errs.IsUsage(err), "%q: %v", bad, err)
	}

	assert.True(t, Range{}.Contains(40))
	assert.False(t, Range{Min: 2, Max: 3}.Contains(1))
	assert.Equal(t, "2:", Range{Min: 2}.String())
	assert.Equal(t, "1:3", Range{Min: 1, Max: 3}.String())
}

func TestRow(t *testing.T) {
	s := statsWith(t, graph.Cycle(5), extended)
	assert.Equal(t, "10,0,5", Row(s, false))
	assert.Equal(t, "10,0,5,0,0,0,0,2,10,10,5", Row(s, true))
	assert.Equal(t, "5,1,1", Row(stats(t, graph.Cycle(4)), false))
	assert.Equal(t, "6,1,2,1,0,0,3,3,6,6,3", Row(statsWith(t, graph.Path(4), extended), true))
	assert.Len(t, strings.Split(Header(true), ","), len(strings.Split(Row(s, true), ",")))
	assert.Len(t, strings.Split(Header(false), ","), 3)
}

func TestFilterKeep(t *testing.T) {
	c5 := stats(t, graph.Cycle(5))
	p4 := stats(t, graph.Path(4))
	k2 := stats(t, graph.Complete(2))

	tests := []struct {
		f    Filter
		s    Stats
		want bool
	}{
		{All(), p4, true},
		{NonUniversal(), c5, true},
		{NonUniversal(), p4, false},
		{FewerThanN(), c5, false},
		{FewerThanN(), k2, true},
		{MaxGap(5), c5, true},
		{MaxGap(4), c5, false},
		{MinGap(5), c5, true},
		{MinGap(6), c5, false},
		{MinGap(0), k2, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.f.Keep(tt.s), "%v on %+v", tt.f, tt.s)
	}
}

func TestUniversalGraphsHaveLines(t *testing.T) {
	for _, g := range testGraphs() {
		s := stats(t, g)
		if s.HasUniversal() {
			assert.GreaterOrEqual(t, s.Lines, 1, "%v", g)
			assert.False(t, NonUniversal().Keep(s), "%v", g)
		}
	}
}

func TestGapFiltersAreMonotonic(t *testing.T) {
	var all []Stats
	for _, g := range testGraphs() {
		all = append(all, stats(t, g))
	}
	count := func(f Filter) int {
		n := 0
		for _, s := range all {
			if f.Keep(s) {
				n++
			}
		}
		return n
	}

	prevMax, prevMin := -1, len(all)+1
	for k := -5; k <= 50; k++ {
		nmax, nmin := count(MaxGap(k)), count(MinGap(k))
		assert.GreaterOrEqual(t, nmax, prevMax, "-nmax=%d", k)
		assert.LessOrEqual(t, nmin, prevMin, "-nmin=%d", k)
		prevMax, prevMin = nmax, nmin
	}
	assert.Equal(t, len(all), count(MaxGap(50)))
	assert.Equal(t, len(all), count(MinGap(-5)))
}

func TestCombine(t *testing.T) {
	f, err := Combine(false, false, nil, nil)
	require.NoError(t, err)
	assert.False(t, f.Active())

	k := 3
	f, err = Combine(false, false, &k, nil)
	require.NoError(t, err)
	assert.Equal(t, MaxGap(3), f)
	assert.Equal(t, "gap<=3", f.String())

	_, err = Combine(true, false, nil, &k)
	require.Error(t, err)
	assert.True(t, errs.IsUsage(err))
}

func testGraphs() []*graph.Graph {
	gs := []*graph.Graph{graph.Petersen(), graph.CompleteBipartite(3, 2), graph.CompleteBipartite(3, 3)}
	for n := 2; n <= 8; n++ {
		gs = append(gs, graph.Complete(n), graph.Path(n), graph.Star(n))
		if n >= 3 {
			gs = append(gs, graph.Cycle(n))
		}
	}
	return gs
}
