package lalr

import "github.com/nbpillmayer-student/pgcst/grammar"

// closure computes the closure of a seed set of LR(1) items: repeatedly
// add, for every item with the dot before some non-terminal B, one item
// per B-rule at dot 0 with the propagated lookahead, until nothing
// changes (spec.md §4.2 "closure"). Grounded on the original
// implementation's Lalr::closure: a FIFO worklist over item indices,
// re-enqueuing an index whenever its lookahead set grows so that
// propagation reaches a fixpoint.
func closure(seed []Item, g *grammar.Grammar, a *Analysis) *State {
	st := newState()
	queued := make([]bool, 0, len(seed)*2)
	var queue []int

	for _, it := range seed {
		idx := len(st.Items)
		st.push(it)
		queued = append(queued, true)
		queue = append(queue, idx)
	}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		queued[i] = false
		it := st.Items[i]

		b, ok := it.PeekSymbol(g)
		if !ok || g.IsTerminal(b) {
			continue
		}
		la := a.firstAfter[it.RuleIndex][it.Dot+1].Clone()
		if a.nullableAfter[it.RuleIndex][it.Dot+1] {
			la.Union(it.Lookahead)
		}

		for _, ruleIdx := range g.RulesByLHS[b] {
			if j, exists := st.itemIndexByRule[ruleIdx]; exists {
				if st.Items[j].Lookahead.Union(la) && !queued[j] {
					queued[j] = true
					queue = append(queue, j)
				}
				continue
			}
			newItem := Item{RuleIndex: ruleIdx, Dot: 0, Lookahead: la.Clone()}
			j := len(st.Items)
			st.push(newItem)
			growQueued(&queued, j)
			queued[j] = true
			queue = append(queue, j)
		}
	}

	st.sortItems()
	return st
}

func growQueued(queued *[]bool, upTo int) {
	for len(*queued) <= upTo {
		*queued = append(*queued, false)
	}
}
