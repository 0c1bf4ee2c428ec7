package classify

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/matzehuels/metriclines/pkg/errors"
)

// Options selects which statistics [Classify] computes beyond the line
// count. The zero value counts every pair and skips the bridge search.
type Options struct {
	Extended      bool  `json:"extended"`
	PairDist      Range `json:"pair_dist"`
	UniversalDist Range `json:"universal_dist"`
}

// Range is a closed interval of pair distances. A zero Max leaves it
// unbounded above, so the zero Range holds every distance.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether d lies in r.
func (r Range) Contains(d int) bool {
	return d >= r.Min && (r.Max == 0 || d <= r.Max)
}

func (r Range) String() string {
	if r.Max == 0 {
		return fmt.Sprintf("%d:", r.Min)
	}
	return fmt.Sprintf("%d:%d", r.Min, r.Max)
}

// ParseRange parses "MIN:MAX". Either bound may be left out, and a bare
// number selects a single distance. The empty string is the full range.
func ParseRange(s string) (Range, error) {
	if s == "" {
		return Range{}, nil
	}
	lo, hi, found := strings.Cut(s, ":")
	if !found {
		hi = lo
	}

	var r Range
	if lo != "" {
		n, err := strconv.Atoi(lo)
		if err != nil || n < 0 {
			return Range{}, errs.New(errs.ErrCodeUsage, "distance range %q: bad lower bound %q", s, lo)
		}
		r.Min = n
	}
	if hi != "" {
		n, err := strconv.Atoi(hi)
		if err != nil || n < 1 {
			return Range{}, errs.New(errs.ErrCodeUsage, "distance range %q: bad upper bound %q", s, hi)
		}
		r.Max = n
	}
	if r.Max != 0 && r.Max < r.Min {
		return Range{}, errs.New(errs.ErrCodeUsage, "distance range %q is empty", s)
	}
	return r, nil
}
