package lalr

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/nbpillmayer-student/pgcst/grammar"
	"github.com/nbpillmayer-student/pgcst/symtab"
)

// tracer traces with key 'pgcst.lalr', mirroring the teacher's
// package-local tracer() pattern (see gorgo/lr/slr/slr.go).
func tracer() tracing.Trace {
	return tracing.Select("pgcst.lalr")
}

// Analysis holds the static FIRST/nullable analysis of a Grammar,
// computed once and reused for every closure operation during CFSM
// construction (spec.md §4.3 "FIRST / nullable").
type Analysis struct {
	g *grammar.Grammar

	// first and nullable are indexed by symbol id (both terminals and
	// non-terminals); for a terminal t, first[t] = {t} and
	// nullable[t] = false always.
	first    []TermSet
	nullable []bool

	// firstAfter[i][j] / nullableAfter[i][j] are FIRST/nullable of the
	// suffix rules[i].RHS[j:], precomputed once so closure() never
	// recomputes a suffix FIRST set from scratch (spec.md §9 design
	// note "precompute suffix FIRST/nullable arrays per rule once").
	firstAfter    [][]TermSet
	nullableAfter [][]bool
}

// Grammar returns the analyzed grammar.
func (a *Analysis) Grammar() *grammar.Grammar { return a.g }

// First returns FIRST(sym): for a terminal, the singleton {sym}; for a
// non-terminal, the set of terminals that can begin some derivation of
// sym.
func (a *Analysis) First(sym symtab.ID) TermSet {
	return a.first[sym]
}

// IsNullable reports whether sym can derive the empty string.
func (a *Analysis) IsNullable(sym symtab.ID) bool {
	return a.nullable[sym]
}

// Analyze computes the FIRST/nullable fixpoint for g. This mirrors the
// algorithm in the original implementation's build_first_set: iterate
// every rule to a fixpoint, then derive the suffix arrays in one
// right-to-left pass per rule.
func Analyze(g *grammar.Grammar) *Analysis {
	n := g.Registry.Len()
	first := make([]TermSet, n)
	nullable := make([]bool, n)

	for id := 0; id < n; id++ {
		if g.IsTerminal(symtab.ID(id)) {
			s := NewTermSet(n)
			s.Add(symtab.ID(id))
			first[id] = s
			nullable[id] = false
		} else {
			first[id] = NewTermSet(n)
			nullable[id] = false
		}
	}

	for {
		updated := false
		for _, r := range g.Rules {
			i := 0
			for ; i < len(r.RHS); i++ {
				c := r.RHS[i]
				if first[r.LHS].Union(first[c]) {
					updated = true
				}
				if !nullable[c] {
					break
				}
			}
			if i == len(r.RHS) && !nullable[r.LHS] {
				nullable[r.LHS] = true
				updated = true
			}
		}
		if !updated {
			break
		}
	}

	firstAfter := make([][]TermSet, len(g.Rules))
	nullableAfter := make([][]bool, len(g.Rules))
	for i, r := range g.Rules {
		L := len(r.RHS)
		firstAfter[i] = make([]TermSet, L+1)
		nullableAfter[i] = make([]bool, L+1)
		firstAfter[i][L] = NewTermSet(n)
		nullableAfter[i][L] = true
		for j := L - 1; j >= 0; j-- {
			c := r.RHS[j]
			if nullable[c] {
				firstAfter[i][j] = firstAfter[i][j+1].Clone()
				nullableAfter[i][j] = nullableAfter[i][j+1]
			} else {
				firstAfter[i][j] = NewTermSet(n)
				nullableAfter[i][j] = false
			}
			firstAfter[i][j].Union(first[c])
		}
	}

	tracer().Debugf("FIRST/nullable computed for %d symbols, %d rules", n, len(g.Rules))

	return &Analysis{
		g:             g,
		first:         first,
		nullable:      nullable,
		firstAfter:    firstAfter,
		nullableAfter: nullableAfter,
	}
}
