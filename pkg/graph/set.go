package graph

import (
	"math/bits"
	"strconv"
	"strings"
)

// Set is a subset of the vertices {0, ..., MaxOrder-1} stored as a bitmask.
// Bit i is set when vertex i is a member. Because a Set is a single machine
// word it is comparable and can be used directly as a map or tree key, which
// makes it the canonical identity of a line.
type Set uint64

// Full returns the set {0, ..., n-1}. Full(0) is the empty set.
func Full(n int) Set {
	if n >= MaxOrder {
		return ^Set(0)
	}
	return Set(1)<<uint(n) - 1
}

// SetOf returns the set containing exactly the given vertices.
func SetOf(vs ...int) Set {
	var s Set
	for _, v := range vs {
		s = s.Add(v)
	}
	return s
}

// Add returns s with v added.
func (s Set) Add(v int) Set { return s | 1<<uint(v) }

// Remove returns s with v removed.
func (s Set) Remove(v int) Set { return s &^ (1 << uint(v)) }

// Has reports whether v is a member of s.
func (s Set) Has(v int) bool { return s&(1<<uint(v)) != 0 }

// Len returns the number of members.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// Empty reports whether s has no members.
func (s Set) Empty() bool { return s == 0 }

// Union returns s ∪ t.
func (s Set) Union(t Set) Set { return s | t }

// Intersect returns s ∩ t.
func (s Set) Intersect(t Set) Set { return s & t }

// Contains reports whether t ⊆ s.
func (s Set) Contains(t Set) bool { return s&t == t }

// Members returns the vertices of s in increasing order.
func (s Set) Members() []int {
	out := make([]int, 0, s.Len())
	s.Each(func(v int) { out = append(out, v) })
	return out
}

// Each calls fn for every member of s in increasing order.
func (s Set) Each(fn func(v int)) {
	for w := uint64(s); w != 0; w &= w - 1 {
		fn(bits.TrailingZeros64(w))
	}
}

// String formats s as "{0,2,5}".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	s.Each(func(v int) {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(strconv.Itoa(v))
	})
	b.WriteByte('}')
	return b.String()
}
