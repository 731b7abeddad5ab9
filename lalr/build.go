package lalr

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/nbpillmayer-student/pgcst/grammar"
	"github.com/nbpillmayer-student/pgcst/lalr/sparse"
	"github.com/nbpillmayer-student/pgcst/symtab"
)

// Conflict records a shift/reduce or reduce/reduce conflict encountered
// during table construction and how it was resolved (spec.md §4.3
// "ConflictResolved ... surfaced as a diagnostic list on the built
// table; not fatal").
type Conflict struct {
	State      int
	Terminal   symtab.ID
	ShiftTo    int   // -1 if there was no shift candidate
	ReduceRule []int // complete items whose lookahead held Terminal, in item order
	Winner     string
}

type edgeKey struct {
	state int
	sym   symtab.ID
}

// Build constructs the LALR(1) ACTION/GOTO tables for g, following the
// closure/merge/conflict-resolution algorithm of the original
// implementation's lalr.rs, generalized to Go's grammar.Grammar model.
func Build(g *grammar.Grammar) (*Tables, error) {
	if g.AcceptRule < 0 || g.AcceptRule >= len(g.Rules) {
		return nil, &grammar.GrammarError{Msg: "grammar has no accept rule"}
	}

	a := Analyze(g)
	n := g.Registry.Len()

	startLA := NewTermSet(n)
	startLA.Add(g.Registry.End)
	start := closure([]Item{{RuleIndex: g.AcceptRule, Dot: 0, Lookahead: startLA}}, g, a)
	start.ID = 0

	states := []*State{start}
	digestIndex := map[string][]int{start.coreDigest(): {0}}
	edges := make(map[edgeKey]int)

	// The CFSM worklist, grounded on the teacher's own arraylist.List use
	// in lr/tables.go for its state/edge bookkeeping (FIFO: Add at the
	// tail, pop from the head).
	queue := arraylist.New()
	queue.Add(0)
	for !queue.Empty() {
		head, _ := queue.Get(0)
		queue.Remove(0)
		si := head.(int)
		s := states[si]

		bySymbol := make(map[symtab.ID][]Item)
		var order []symtab.ID
		for _, it := range s.Items {
			sym, ok := it.PeekSymbol(g)
			if !ok {
				continue
			}
			if _, seen := bySymbol[sym]; !seen {
				order = append(order, sym)
			}
			bySymbol[sym] = append(bySymbol[sym], it.Advance())
		}
		sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

		for _, sym := range order {
			target := closure(bySymbol[sym], g, a)
			digest := target.coreDigest()

			merged := -1
			for _, cand := range digestIndex[digest] {
				if states[cand].coreEquals(target) {
					merged = cand
					break
				}
			}
			if merged >= 0 {
				if states[merged].mergeLookaheads(target) {
					queue.Add(merged)
				}
				edges[edgeKey{si, sym}] = merged
				continue
			}

			target.ID = len(states)
			states = append(states, target)
			digestIndex[digest] = append(digestIndex[digest], target.ID)
			edges[edgeKey{si, sym}] = target.ID
			queue.Add(target.ID)
		}
	}

	action := sparse.NewIntMatrix(len(states), n, sparse.DefaultNullValue)
	gotoM := sparse.NewIntMatrix(len(states), n, sparse.DefaultNullValue)
	var conflicts []Conflict

	for si, s := range states {
		shiftTarget := make(map[symtab.ID]int)
		var reduceRules map[symtab.ID][]int

		for _, it := range s.Items {
			sym, ok := it.PeekSymbol(g)
			if ok {
				if g.IsTerminal(sym) {
					shiftTarget[sym] = edges[edgeKey{si, sym}]
				} else {
					target := edges[edgeKey{si, sym}]
					gotoM.Set(si, sym, int32(target))
				}
				continue
			}
			for _, la := range it.Lookahead.ToSlice() {
				if reduceRules == nil {
					reduceRules = make(map[symtab.ID][]int)
				}
				reduceRules[la] = append(reduceRules[la], it.RuleIndex)
			}
		}

		terminals := make(map[symtab.ID]bool, len(shiftTarget)+len(reduceRules))
		for t := range shiftTarget {
			terminals[t] = true
		}
		for t := range reduceRules {
			terminals[t] = true
		}

		for t := range terminals {
			shiftTo, hasShift := shiftTarget[t]
			rules := reduceRules[t]
			resolveCell(g, action, si, t, shiftTo, hasShift, rules, &conflicts)
		}
	}

	tracer().Debugf("LALR tables built: %d states, %d conflicts", len(states), len(conflicts))

	return &Tables{
		G:         g,
		States:    states,
		Action:    action,
		Goto:      gotoM,
		Conflicts: conflicts,
	}, nil
}

// resolveCell applies the 5-step conflict-resolution ladder to a single
// (state, terminal) cell and commits the winning action.
func resolveCell(g *grammar.Grammar, action *sparse.IntMatrix, state int, t symtab.ID, shiftTo int, hasShift bool, reduceRules []int, conflicts *[]Conflict) {
	// Step 5 first: among multiple reduce candidates, the earlier
	// declared rule always wins, regardless of shift.
	bestReduce := -1
	if len(reduceRules) > 0 {
		bestReduce = reduceRules[0]
		for _, r := range reduceRules[1:] {
			if r < bestReduce {
				bestReduce = r
			}
		}
	}

	switch {
	case !hasShift && bestReduce < 0:
		return // unreachable: terminal was only added when one side existed
	case !hasShift:
		action.Set(state, t, int32(bestReduce))
	case bestReduce < 0:
		action.Set(state, t, encodeShift(shiftTo))
	default:
		winner := resolveShiftReduce(g, t, shiftTo, bestReduce)
		action.Set(state, t, winner)
	}

	if (hasShift && bestReduce >= 0) || len(reduceRules) > 1 {
		c := Conflict{State: state, Terminal: t, ShiftTo: -1, ReduceRule: reduceRules}
		if hasShift {
			c.ShiftTo = shiftTo
		}
		v := action.Value(state, t)
		switch {
		case v == errorSentinel:
			c.Winner = "error (nonassoc)"
		case v <= -2:
			c.Winner = fmt.Sprintf("shift %d", decodeShift(v))
		default:
			c.Winner = fmt.Sprintf("reduce rule %d", v)
		}
		*conflicts = append(*conflicts, c)
		tracer().Infof("conflict at state %d on %s resolved: %s", state, g.Registry.Name(t), c.Winner)
	}
}

// resolveShiftReduce implements spec.md §4.3 steps 3-4 for a genuine
// shift/reduce conflict (exactly one reduce candidate, plus a shift).
func resolveShiftReduce(g *grammar.Grammar, t symtab.ID, shiftTo int, reduceRule int) int32 {
	shiftPrio, hasShiftPrio := g.Assoc[t]
	reducePrio := g.Rules[reduceRule].ReducePriority

	if !hasShiftPrio || reducePrio == nil {
		// Step 4: at least one side lacks a declared priority level.
		return encodeShift(shiftTo)
	}

	switch {
	case reducePrio.Level < shiftPrio.Level:
		return encodeShift(shiftTo)
	case reducePrio.Level > shiftPrio.Level:
		return int32(reduceRule)
	default:
		switch shiftPrio.Directive {
		case grammar.Left:
			return int32(reduceRule)
		case grammar.Right:
			return encodeShift(shiftTo)
		default: // NonAssoc
			return errorSentinel
		}
	}
}
