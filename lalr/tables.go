package lalr

import (
	"github.com/nbpillmayer-student/pgcst/grammar"
	"github.com/nbpillmayer-student/pgcst/lalr/sparse"
	"github.com/nbpillmayer-student/pgcst/symtab"
)

// ActionKind classifies a decoded ACTION-table cell.
type ActionKind uint8

const (
	ActionError ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
)

// shift and reduce share one sparse cell, encoded per spec.md §3
// "Action table": a non-negative value is a reduce-by-rule-index (or
// Accept, when the rule is the grammar's AcceptRule); a shift to state
// s is encoded as -(s+2), keeping it above sparse.DefaultNullValue's
// "no entry" sentinel (min int32) and below the explicit-error sentinel
// -1.
const errorSentinel = int32(-1)

func encodeShift(target int) int32 { return int32(-(target + 2)) }

func decodeShift(v int32) int { return int(-v - 2) }

// Tables is a built, queryable LALR(1) ACTION/GOTO table pair.
type Tables struct {
	G         *grammar.Grammar
	States    []*State
	Action    *sparse.IntMatrix
	Goto      *sparse.IntMatrix
	Conflicts []Conflict
}

// Decode returns the resolved action for (state, terminal).
func (t *Tables) Decode(state int, terminal symtab.ID) (ActionKind, int) {
	v := t.Action.Value(state, terminal)
	switch {
	case v == t.Action.NullValue():
		return ActionError, 0
	case v == errorSentinel:
		return ActionError, 0
	case v <= -2:
		return ActionShift, decodeShift(v)
	default:
		if int(v) == t.G.AcceptRule {
			return ActionAccept, int(v)
		}
		return ActionReduce, int(v)
	}
}

// GotoState returns the successor state for (state, nonTerminal), or
// (-1, false) if there is none.
func (t *Tables) GotoState(state int, nonTerminal symtab.ID) (int, bool) {
	v := t.Goto.Value(state, nonTerminal)
	if v == t.Goto.NullValue() {
		return -1, false
	}
	return int(v), true
}

// ExpectedTerminals returns every terminal for which state has a
// non-error action, for ParseError's "expected kinds" (spec.md §7).
func (t *Tables) ExpectedTerminals(state int) []symtab.ID {
	var out []symtab.ID
	for term := 0; term < t.G.Registry.NumTerminals(); term++ {
		kind, _ := t.Decode(state, symtab.ID(term))
		if kind != ActionError {
			out = append(out, symtab.ID(term))
		}
	}
	return out
}
