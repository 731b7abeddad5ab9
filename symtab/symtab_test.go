package symtab_test

import (
	"testing"

	"github.com/nbpillmayer-student/pgcst/symtab"
)

func TestInsertIsIdempotent(t *testing.T) {
	m := symtab.New()
	a := m.Insert(symtab.Symbol{Name: "SELECT", Kind: symtab.Terminal})
	b := m.Insert(symtab.Symbol{Name: "SELECT", Kind: symtab.Terminal})
	if a != b {
		t.Fatalf("Insert not idempotent: %d != %d", a, b)
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
}

func TestUnknownSymbol(t *testing.T) {
	m := symtab.New()
	_, err := m.ID(symtab.Symbol{Name: "nope", Kind: symtab.NonTerminal})
	if err == nil {
		t.Fatal("expected UnknownSymbolError")
	}
	var target *symtab.UnknownSymbolError
	if !asUnknown(err, &target) {
		t.Fatalf("expected *UnknownSymbolError, got %T", err)
	}
}

func asUnknown(err error, target **symtab.UnknownSymbolError) bool {
	e, ok := err.(*symtab.UnknownSymbolError)
	if ok {
		*target = e
	}
	return ok
}

func TestInsertionOrderByDefault(t *testing.T) {
	m := symtab.New()
	a := m.Insert(symtab.Symbol{Name: "stmt", Kind: symtab.NonTerminal})
	b := m.Insert(symtab.Symbol{Name: "SELECT", Kind: symtab.Terminal})
	if a != 0 || b != 1 {
		t.Fatalf("expected plain insertion order (0,1), got (%d,%d)", a, b)
	}
}

func TestFinalizePutsTerminalsFirst(t *testing.T) {
	m := symtab.New()
	nt := m.Insert(symtab.Symbol{Name: "stmt", Kind: symtab.NonTerminal})
	term := m.Insert(symtab.Symbol{Name: "SELECT", Kind: symtab.Terminal})
	remap := m.Finalize()
	if !(remap[term] < remap[nt]) {
		t.Fatalf("after Finalize, terminal id %d should be < non-terminal id %d", remap[term], remap[nt])
	}
	if m.NumTerminals() != 1 {
		t.Fatalf("NumTerminals() = %d, want 1", m.NumTerminals())
	}
}

func TestSymbolRoundTrip(t *testing.T) {
	m := symtab.New()
	sym := symtab.Symbol{Name: "FROM", Kind: symtab.Terminal}
	id := m.Insert(sym)
	got, ok := m.Symbol(id)
	if !ok || got != sym {
		t.Fatalf("Symbol(%d) = %v, %v; want %v, true", id, got, ok, sym)
	}
}
