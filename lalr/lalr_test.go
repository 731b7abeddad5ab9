package lalr_test

import (
	"testing"

	"github.com/nbpillmayer-student/pgcst/grammar"
	"github.com/nbpillmayer-student/pgcst/lalr"
	"github.com/nbpillmayer-student/pgcst/symtab"
)

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

func mustTermID(t *testing.T, g *grammar.Grammar, name string) symtab.ID {
	t.Helper()
	id, err := g.Registry.ID(symtab.Symbol{Name: name, Kind: symtab.Terminal})
	if err != nil {
		t.Fatalf("terminal %q not found: %v", name, err)
	}
	return id
}

// drive runs tbl over an input sequence of terminal names with a bare
// shift/reduce/accept loop, exercising Tables end-to-end without the
// full LR driver package.
func drive(t *testing.T, g *grammar.Grammar, tbl *lalr.Tables, input []string) bool {
	t.Helper()
	toks := make([]symtab.ID, 0, len(input)+1)
	for _, name := range input {
		toks = append(toks, mustTermID(t, g, name))
	}
	toks = append(toks, g.Registry.End)

	stateStack := []int{0}
	pos := 0
	for {
		state := stateStack[len(stateStack)-1]
		la := toks[pos]
		kind, val := tbl.Decode(state, la)
		switch kind {
		case lalr.ActionShift:
			stateStack = append(stateStack, val)
			pos++
		case lalr.ActionReduce:
			r := g.Rules[val]
			stateStack = stateStack[:len(stateStack)-len(r.RHS)]
			from := stateStack[len(stateStack)-1]
			next, ok := tbl.GotoState(from, r.LHS)
			if !ok {
				return false
			}
			stateStack = append(stateStack, next)
		case lalr.ActionAccept:
			return true
		default:
			return false
		}
	}
}

func TestBuildProducesNoConflictsForToyGrammar(t *testing.T) {
	g := toyGrammar(t)
	tbl, err := lalr.Build(g)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(tbl.Conflicts) != 0 {
		t.Fatalf("unexpected conflicts: %+v", tbl.Conflicts)
	}
	if len(tbl.States) == 0 {
		t.Fatal("expected at least one state")
	}
}

func TestDriveAcceptsAllEpsilonBranches(t *testing.T) {
	g := toyGrammar(t)
	tbl, err := lalr.Build(g)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	cases := [][]string{
		{"b", "d", "a"},
		{"b", "a"},
		{"d", "a"},
		{"a"},
	}
	for _, input := range cases {
		if !drive(t, g, tbl, input) {
			t.Errorf("input %v: expected accept", input)
		}
	}
}

func TestDriveRejectsMalformedInput(t *testing.T) {
	g := toyGrammar(t)
	tbl, err := lalr.Build(g)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if drive(t, g, tbl, []string{"b", "b", "a"}) {
		t.Error("expected reject for duplicate b")
	}
	if drive(t, g, tbl, []string{"d", "b", "a"}) {
		t.Error("expected reject for out-of-order b/d")
	}
}

func exprGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
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
	return g
}

func TestPrecedenceResolvesShiftReduceWithoutNonAssocErrors(t *testing.T) {
	g := exprGrammar(t)
	tbl, err := lalr.Build(g)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(tbl.Conflicts) == 0 {
		t.Fatal("expected the classic dangling E+E*E ambiguity to produce recorded conflicts")
	}
	if !drive(t, g, tbl, []string{"num", "+", "num", "*", "num"}) {
		t.Error("expected num + num * num to parse with precedence resolving the ambiguity")
	}
}

func TestNonAssocInstallsExplicitError(t *testing.T) {
	b := grammar.NewBuilder(nil)
	b.NonAssoc(1, "<")
	b.LHS("E").N("E").T("<").N("E").End()
	b.LHS("E").T("num").End()
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	tbl, err := lalr.Build(g)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if drive(t, g, tbl, []string{"num", "<", "num", "<", "num"}) {
		t.Error("expected nonassoc chained comparison to be rejected")
	}
	if !drive(t, g, tbl, []string{"num", "<", "num"}) {
		t.Error("expected a single comparison to parse")
	}
}
