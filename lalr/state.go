package lalr

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nbpillmayer-student/pgcst/grammar"
)

// State is a closed LR(1) item set: spec.md §3 "State" — "a closed item
// set plus outgoing transitions ... and a fast 'by starting rule
// index' lookup used during closure."
type State struct {
	ID    int
	Items []Item

	// itemIndexByRule maps a rule index to the index in Items of its
	// dot==0 item, if one exists in this state. Populated as items are
	// pushed; used by closure() to avoid a linear scan when deciding
	// whether a candidate item already exists in the state.
	itemIndexByRule map[int]int
}

func newState() *State {
	return &State{itemIndexByRule: make(map[int]int)}
}

func (s *State) push(it Item) {
	if it.Dot == 0 {
		s.itemIndexByRule[it.RuleIndex] = len(s.Items)
	}
	s.Items = append(s.Items, it)
}

func (s *State) sortItems() {
	sort.Slice(s.Items, func(i, j int) bool {
		a, b := s.Items[i], s.Items[j]
		if a.RuleIndex != b.RuleIndex {
			return a.RuleIndex < b.RuleIndex
		}
		return a.Dot < b.Dot
	})
	// the rule->index lookup was built incrementally against the
	// pre-sort order; rebuild it to match.
	s.itemIndexByRule = make(map[int]int, len(s.itemIndexByRule))
	for i, it := range s.Items {
		if it.Dot == 0 {
			s.itemIndexByRule[it.RuleIndex] = i
		}
	}
}

// coreDigest returns a string uniquely determined by the state's set of
// item cores (rule, dot), ignoring lookaheads — the LALR merge key from
// spec.md §3 and §9 ("store the 'items without lookahead' digest
// alongside the state to make core-equality an O(1) hash lookup,
// falling back to pairwise compare for collisions").
func (s *State) coreDigest() string {
	cores := make([]coreKey, len(s.Items))
	for i, it := range s.Items {
		cores[i] = it.core()
	}
	sort.Slice(cores, func(i, j int) bool {
		if cores[i].RuleIndex != cores[j].RuleIndex {
			return cores[i].RuleIndex < cores[j].RuleIndex
		}
		return cores[i].Dot < cores[j].Dot
	})
	var b strings.Builder
	for _, c := range cores {
		b.WriteString(strconv.Itoa(c.RuleIndex))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(c.Dot))
		b.WriteByte(',')
	}
	return b.String()
}

// coreEquals reports whether s and other have exactly the same set of
// (rule, dot) cores, regardless of lookaheads.
func (s *State) coreEquals(other *State) bool {
	if len(s.Items) != len(other.Items) {
		return false
	}
	for i := range s.Items {
		if s.Items[i].core() != other.Items[i].core() {
			return false
		}
	}
	return true
}

// mergeLookaheads unions other's per-item lookahead into s, item by
// item in core order, and reports whether any set grew. Precondition:
// s.coreEquals(other).
func (s *State) mergeLookaheads(other *State) bool {
	grew := false
	for i := range s.Items {
		if s.Items[i].Lookahead.Union(other.Items[i].Lookahead) {
			grew = true
		}
	}
	return grew
}

func (s *State) String(g *grammar.Grammar) string {
	var b strings.Builder
	b.WriteString("state ")
	b.WriteString(strconv.Itoa(s.ID))
	b.WriteString(":\n")
	for _, it := range s.Items {
		b.WriteString("  ")
		b.WriteString(it.String(g))
		b.WriteByte('\n')
	}
	return b.String()
}
