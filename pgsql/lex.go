package pgsql

import (
	"github.com/nbpillmayer-student/pgcst/kind"
	"github.com/nbpillmayer-student/pgcst/lexer"
	"github.com/nbpillmayer-student/pgcst/symtab"
)

// keyword lists every reserved word this subset recognizes, folded to
// lowercase for a case-insensitive match (spec.md §2 C4 "keyword
// folding").
var keyword = map[string]string{
	"select":   tSelect,
	"distinct": tDistinct,
	"on":       tOn,
	"from":     tFrom,
	"order":    tOrder,
	"by":       tBy,
	"for":      tFor,
	"update":   tUpdate,
	"limit":    tLimit,
	"offset":   tOffset,
	"as":       tAs,
}

// Specs builds the lexmachine pattern table for reg, a registry that
// has already had every pgsql terminal interned (i.e. reg came from a
// built Grammar()). Keyword patterns precede the generic identifier
// pattern so they win the longest-match tie per lexer.Spec's ordering
// rule.
func Specs(reg *kind.Registry) ([]lexer.Spec, error) {
	kindOf := func(name string) (kind.SyntaxKind, error) {
		return reg.ID(symtab.Symbol{Name: name, Kind: symtab.Terminal})
	}

	var specs []lexer.Spec
	for word, term := range keyword {
		k, err := kindOf(term)
		if err != nil {
			return nil, err
		}
		specs = append(specs, lexer.Spec{Pattern: caseInsensitive(word), Kind: k})
	}

	punct := []struct {
		pattern string
		term    string
	}{
		{",", tComma},
		{";", tSemi},
		{"\\(", tLParen},
		{"\\)", tRParen},
		{"\\*", tStar},
	}
	for _, p := range punct {
		k, err := kindOf(p.term)
		if err != nil {
			return nil, err
		}
		specs = append(specs, lexer.Spec{Pattern: p.pattern, Kind: k})
	}

	identK, err := kindOf(tIdent)
	if err != nil {
		return nil, err
	}
	numK, err := kindOf(tNumber)
	if err != nil {
		return nil, err
	}
	// Whitespace and the two comment forms are NOT marked Skip: true.
	// lexmachine discards a Skip match before ever building a Token for
	// it, which would throw away the byte range lossless mode needs to
	// reproduce the source exactly. Instead they are emitted as
	// ordinary tokens and the driver recognizes them via
	// kind.Registry.IsTrivia, attaching their text to the tree directly
	// without routing them through the ACTION table (spec.md §4.4).
	specs = append(specs,
		lexer.Spec{Pattern: `[A-Za-z_][A-Za-z0-9_]*`, Kind: identK},
		lexer.Spec{Pattern: `[0-9]+`, Kind: numK},
		lexer.Spec{Pattern: `( |\t|\n)+`, Kind: reg.Whitespace},
		lexer.Spec{Pattern: `--[^\n]*`, Kind: reg.SQLComment},
		lexer.Spec{Pattern: `/\*([^*]|\*[^/])*\*/`, Kind: reg.CComment},
	)
	return specs, nil
}

// caseInsensitive expands a lowercase keyword into a lexmachine regex
// matching either case letter by letter (PostgreSQL keywords fold
// regardless of how the input spells them).
func caseInsensitive(word string) string {
	out := make([]byte, 0, len(word)*4)
	for i := 0; i < len(word); i++ {
		c := word[i]
		out = append(out, '[', c-32, c, ']')
	}
	return string(out)
}
