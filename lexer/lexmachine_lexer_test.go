package lexer_test

import (
	"testing"

	"github.com/nbpillmayer-student/pgcst/kind"
	"github.com/nbpillmayer-student/pgcst/lexer"
	"github.com/nbpillmayer-student/pgcst/symtab"
)

func symbolTerminal(name string) symtab.Symbol {
	return symtab.Symbol{Name: name, Kind: symtab.Terminal}
}

func TestLMLexerTokenizesAndReportsEOF(t *testing.T) {
	reg := kind.NewRegistry()
	identK := reg.Insert(symbolTerminal("IDENT"))
	plusK := reg.Insert(symbolTerminal("PLUS"))

	specs := []lexer.Spec{
		{Pattern: `\+`, Kind: plusK},
		{Pattern: `[A-Za-z][A-Za-z0-9]*`, Kind: identK},
		{Pattern: `( |\t)+`, Kind: reg.Whitespace, Skip: true},
	}

	src := "a + b"
	lx, err := lexer.NewLMLexer(reg, specs, src)
	if err != nil {
		t.Fatalf("NewLMLexer() error = %v", err)
	}
	if lx.Source() != src {
		t.Fatalf("Source() = %q, want %q", lx.Source(), src)
	}

	var kinds []kind.SyntaxKind
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if tok.Kind == reg.End {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	want := []kind.SyntaxKind{identK, plusK, identK}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLMLexerReportsUnconsumedInput(t *testing.T) {
	reg := kind.NewRegistry()
	identK := reg.Insert(symbolTerminal("IDENT"))
	specs := []lexer.Spec{
		{Pattern: `[A-Za-z]+`, Kind: identK},
	}
	lx, err := lexer.NewLMLexer(reg, specs, "a#b")
	if err != nil {
		t.Fatalf("NewLMLexer() error = %v", err)
	}
	if _, err := lx.Next(); err != nil {
		t.Fatalf("Next() on %q error = %v, want nil", "a", err)
	}
	if _, err := lx.Next(); err == nil {
		t.Fatal("Next() on unrecognized '#' = nil error, want a LexError")
	}
}
