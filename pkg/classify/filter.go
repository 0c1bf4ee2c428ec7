package classify

import (
	"fmt"

	errs "github.com/matzehuels/metriclines/pkg/errors"
)

// Kind identifies a filter predicate.
type Kind int

const (
	// KindAll keeps every graph; it is the statistics mode.
	KindAll Kind = iota
	// KindNonUniversal keeps graphs without a universal line.
	KindNonUniversal
	// KindFewerThanN keeps graphs with fewer lines than vertices.
	KindFewerThanN
	// KindMaxGap keeps graphs with Gap <= K.
	KindMaxGap
	// KindMinGap keeps graphs with Gap >= K.
	KindMinGap
)

// Filter is an immutable predicate over [Stats].
type Filter struct {
	Kind Kind
	K    int
}

// All returns the filter that keeps every graph.
func All() Filter { return Filter{Kind: KindAll} }

// NonUniversal returns the -u filter.
func NonUniversal() Filter { return Filter{Kind: KindNonUniversal} }

// FewerThanN returns the -n filter.
func FewerThanN() Filter { return Filter{Kind: KindFewerThanN} }

// MaxGap returns the -nmax=k filter.
func MaxGap(k int) Filter { return Filter{Kind: KindMaxGap, K: k} }

// MinGap returns the -nmin=k filter.
func MinGap(k int) Filter { return Filter{Kind: KindMinGap, K: k} }

// Active reports whether f selects graphs, as opposed to printing statistics
// for all of them.
func (f Filter) Active() bool { return f.Kind != KindAll }

// Keep evaluates the predicate.
func (f Filter) Keep(s Stats) bool {
	switch f.Kind {
	case KindNonUniversal:
		return !s.HasUniversal()
	case KindFewerThanN:
		return s.Lines < s.Order
	case KindMaxGap:
		return s.Gap <= f.K
	case KindMinGap:
		return s.Gap >= f.K
	}
	return true
}

func (f Filter) String() string {
	switch f.Kind {
	case KindNonUniversal:
		return "non-universal"
	case KindFewerThanN:
		return "fewer-than-n"
	case KindMaxGap:
		return fmt.Sprintf("gap<=%d", f.K)
	case KindMinGap:
		return fmt.Sprintf("gap>=%d", f.K)
	}
	return "all"
}

// Combine returns the single filter selected by a set of command-line
// switches. At most one may be set; a nil threshold means its flag is unset.
func Combine(nonUniversal, fewerThanN bool, maxGap, minGap *int) (Filter, error) {
	var chosen []Filter
	if nonUniversal {
		chosen = append(chosen, NonUniversal())
	}
	if fewerThanN {
		chosen = append(chosen, FewerThanN())
	}
	if maxGap != nil {
		chosen = append(chosen, MaxGap(*maxGap))
	}
	if minGap != nil {
		chosen = append(chosen, MinGap(*minGap))
	}
	switch len(chosen) {
	case 0:
		return All(), nil
	case 1:
		return chosen[0], nil
	}
	return Filter{}, errs.New(errs.ErrCodeUsage, "filters %v and %v cannot be combined", chosen[0], chosen[1])
}
