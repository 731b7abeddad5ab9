package lalr

import (
	"golang.org/x/exp/slices"

	"github.com/nbpillmayer-student/pgcst/symtab"
)

// TermSet is a dense bitset over terminal ids, used for FIRST sets and
// LR(1) lookahead sets. Dense representation (rather than a hash set)
// is deliberate: every terminal id is small and known up front once
// the grammar is built, and closure construction repeatedly unions and
// tests membership in these sets, which a []bool does in O(1) without
// allocation per test.
type TermSet struct {
	bits []bool
}

// NewTermSet creates an empty set sized for n terminals.
func NewTermSet(n int) TermSet {
	return TermSet{bits: make([]bool, n)}
}

// Add inserts id, returning true if the set grew.
func (s *TermSet) Add(id symtab.ID) bool {
	if s.bits[id] {
		return false
	}
	s.bits[id] = true
	return true
}

// Contains reports whether id is a member.
func (s TermSet) Contains(id symtab.ID) bool {
	return s.bits[id]
}

// Union adds every member of other into s, returning true if s grew.
func (s *TermSet) Union(other TermSet) bool {
	grew := false
	for i, v := range other.bits {
		if v && !s.bits[i] {
			s.bits[i] = true
			grew = true
		}
	}
	return grew
}

// Clone returns an independent copy of s.
func (s TermSet) Clone() TermSet {
	cp := make([]bool, len(s.bits))
	copy(cp, s.bits)
	return TermSet{bits: cp}
}

// ToSlice returns the set's members in ascending id order.
func (s TermSet) ToSlice() []symtab.ID {
	out := make([]symtab.ID, 0, len(s.bits))
	for i, v := range s.bits {
		if v {
			out = append(out, symtab.ID(i))
		}
	}
	slices.Sort(out)
	return out
}

// Equal reports whether s and other have identical membership.
func (s TermSet) Equal(other TermSet) bool {
	if len(s.bits) != len(other.bits) {
		return false
	}
	for i, v := range s.bits {
		if v != other.bits[i] {
			return false
		}
	}
	return true
}
