package grammar_test

import (
	"testing"

	"github.com/nbpillmayer-student/pgcst/grammar"
	"github.com/nbpillmayer-student/pgcst/kind"
)

// toyGrammar builds the grammar from the teacher's own doc-comment
// example, adapted: S -> A a ; A -> B D ; B -> b | epsilon ; D -> d | epsilon.
func toyGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	b := grammar.NewBuilder(nil)
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").N("B").N("D").End()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	b.LHS("D").T("d").End()
	b.LHS("D").Epsilon()
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return g
}

func TestBuildAugmentsAcceptRule(t *testing.T) {
	g := toyGrammar(t)
	// 6 declared rules + 1 synthetic $accept rule.
	if len(g.Rules) != 7 {
		t.Fatalf("len(Rules) = %d, want 7", len(g.Rules))
	}
	accept := g.Rules[g.AcceptRule]
	if g.Registry.Name(accept.LHS) != kind.AcceptName {
		t.Fatalf("accept rule LHS = %s, want %s", g.Registry.Name(accept.LHS), kind.AcceptName)
	}
	if len(accept.RHS) != 1 || g.Registry.Name(accept.RHS[0]) != "S" {
		t.Fatalf("accept rule RHS = %v, want [S]", accept.RHS)
	}
}

func TestStartDefaultsToFirstRule(t *testing.T) {
	g := toyGrammar(t)
	if g.Registry.Name(g.Start) != "S" {
		t.Fatalf("Start = %s, want S", g.Registry.Name(g.Start))
	}
}

func TestUndefinedNonTerminalIsGrammarError(t *testing.T) {
	b := grammar.NewBuilder(nil)
	b.LHS("S").N("Undefined").End()
	_, err := b.Build()
	if err == nil {
		t.Fatal("expected GrammarError for undefined non-terminal")
	}
}

func TestReducePriorityFromLastTerminal(t *testing.T) {
	b := grammar.NewBuilder(nil)
	b.Left(1, "+")
	b.Left(2, "*")
	b.LHS("E").N("E").T("+").N("E").End()
	b.LHS("E").N("E").T("*").N("E").End()
	b.LHS("E").T("num").End()
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.Rules[0].ReducePriority == nil || g.Rules[0].ReducePriority.Level != 1 {
		t.Fatalf("rule 0 priority = %v, want level 1", g.Rules[0].ReducePriority)
	}
	if g.Rules[1].ReducePriority == nil || g.Rules[1].ReducePriority.Level != 2 {
		t.Fatalf("rule 1 priority = %v, want level 2", g.Rules[1].ReducePriority)
	}
	if g.Rules[2].ReducePriority != nil {
		t.Fatalf("rule 2 (E -> num) should have no reduce priority, got %v", g.Rules[2].ReducePriority)
	}
}

func TestExplicitPrecOverridesLastTerminal(t *testing.T) {
	b := grammar.NewBuilder(nil)
	b.Left(1, "PLUS")
	b.Left(5, "UMINUS")
	b.LHS("E").T("MINUS").N("E").Prec("UMINUS").End()
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.Rules[0].ReducePriority == nil || g.Rules[0].ReducePriority.Level != 5 {
		t.Fatalf("rule priority = %v, want level 5 from explicit Prec", g.Rules[0].ReducePriority)
	}
}
