// Package grammar implements the in-memory grammar model: rules,
// associativity declarations, and a fluent Builder for constructing a
// Grammar without a file-format parser (the Bison-like grammar-file
// reader is an external collaborator per spec.md §1 — this package is
// what it is expected to hand a Grammar to, or what callers use
// directly when hand-building a grammar such as package pgsql's
// PostgreSQL subset).
//
// Usage mirrors the teacher's own grammar-builder example:
//
//	b := grammar.NewBuilder(nil)
//	b.Left(1, "+", "-")
//	b.Left(2, "*", "/")
//	b.LHS("E").N("E").T("+").N("E").End()
//	b.LHS("E").T("num").End()
//	g, err := b.Build()
package grammar

import (
	"github.com/nbpillmayer-student/pgcst/kind"
	"github.com/nbpillmayer-student/pgcst/symtab"
)

// Directive is an associativity directive for a terminal.
type Directive uint8

const (
	// Left associativity: on equal precedence, reduce wins.
	Left Directive = iota
	// Right associativity: on equal precedence, shift wins.
	Right
	// NonAssoc: on equal precedence, the action table gets an explicit
	// Error entry instead of a shift or a reduce.
	NonAssoc
)

func (d Directive) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case NonAssoc:
		return "nonassoc"
	default:
		return "?"
	}
}

// Priority is a precedence level plus the directive used to break ties
// at that level. Higher Level binds tighter (spec.md §3).
type Priority struct {
	Level     int
	Directive Directive
}

// Rule is a production LHS -> RHS[0] RHS[1] ... RHS[n-1] (RHS may be
// empty, denoting an epsilon production).
type Rule struct {
	LHS            symtab.ID
	RHS            []symtab.ID
	ReducePriority *Priority // nil if the rule carries no priority
}

func (r *Rule) String(reg *kind.Registry) string {
	s := reg.Name(r.LHS) + " ->"
	if len(r.RHS) == 0 {
		return s + " /* epsilon */"
	}
	for _, sym := range r.RHS {
		s += " " + reg.Name(sym)
	}
	return s
}

// Grammar is a fully built, validated grammar: the augmented rule set
// plus the per-terminal associativity table.
type Grammar struct {
	Registry *kind.Registry
	Rules    []Rule // includes the synthetic $accept -> Start rule, appended last
	Assoc    map[symtab.ID]Priority

	Start      symtab.ID // the grammar's declared/first start non-terminal
	AcceptRule int       // index into Rules of the synthetic $accept rule

	// RulesByLHS maps a non-terminal id to the indices of every rule
	// with that LHS, in declaration order. Used by the closure step in
	// package lalr to expand a dotted non-terminal.
	RulesByLHS map[symtab.ID][]int
}

// IsTerminal reports whether id names a terminal symbol.
func (g *Grammar) IsTerminal(id symtab.ID) bool {
	return g.Registry.IsTerminal(id)
}

// GrammarError is returned by Builder.Build for a structurally invalid
// grammar (spec.md §7: fatal at table construction).
type GrammarError struct {
	Msg string
}

func (e *GrammarError) Error() string { return "grammar: " + e.Msg }
