package lalr

import (
	"fmt"

	"github.com/nbpillmayer-student/pgcst/grammar"
	"github.com/nbpillmayer-student/pgcst/symtab"
)

// Item is an LR(1) item: a rule, a dot position within its RHS, and
// the set of terminals that may legally follow a reduction of this
// item (spec.md §3 "Item (LR(1))").
type Item struct {
	RuleIndex int
	Dot       int
	Lookahead TermSet
}

// coreKey identifies an item's core, i.e. everything except its
// lookahead. Two items with equal coreKey are "core-equal" per
// spec.md §3 and are the unit LALR-merges on.
type coreKey struct {
	RuleIndex int
	Dot       int
}

func (it Item) core() coreKey {
	return coreKey{RuleIndex: it.RuleIndex, Dot: it.Dot}
}

// PeekSymbol returns the grammar symbol immediately after the dot, and
// true — or the zero ID and false if the dot is at the end of the
// rule (a "complete" item, the one reduce/accept candidates come
// from).
func (it Item) PeekSymbol(g *grammar.Grammar) (symtab.ID, bool) {
	rhs := g.Rules[it.RuleIndex].RHS
	if it.Dot >= len(rhs) {
		return 0, false
	}
	return rhs[it.Dot], true
}

// Advance returns the item with its dot moved one position to the
// right, over an independent copy of the lookahead set: the advanced
// item is pushed as a kernel item into a new state while the original
// stays behind in its own state, and later LALR core-merging mutates
// lookahead sets in place (State.mergeLookaheads), so sharing the
// backing TermSet between the two would corrupt the predecessor
// state's own item.
func (it Item) Advance() Item {
	return Item{RuleIndex: it.RuleIndex, Dot: it.Dot + 1, Lookahead: it.Lookahead.Clone()}
}

func (it Item) String(g *grammar.Grammar) string {
	r := g.Rules[it.RuleIndex]
	s := fmt.Sprintf("[%s ->", g.Registry.Name(r.LHS))
	for j, sym := range r.RHS {
		if j == it.Dot {
			s += " ."
		}
		s += " " + g.Registry.Name(sym)
	}
	if it.Dot == len(r.RHS) {
		s += " ."
	}
	s += fmt.Sprintf(", %v]", it.Lookahead.ToSlice())
	return s
}
