package lexer

import (
	"fmt"
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/nbpillmayer-student/pgcst/kind"
)

// Spec describes one lexmachine pattern: a regular expression and the
// SyntaxKind a match produces. Patterns are tried in order, exactly as
// lexmachine.Lexer.Add does; earlier entries win ties, so keywords
// should precede the generic identifier pattern (keyword folding,
// spec.md §2 "C4 ... keyword folding").
type Spec struct {
	Pattern string
	Kind    kind.SyntaxKind
	Skip    bool // true for trivia the lexer itself discards, not token kinds the driver still sees
}

// LMLexer is a timtadh/lexmachine-backed Lexer, grounded on the
// teacher's lr/scanner.LMAdapter/LMScanner pair: one compiled DFA
// reused across scans, one per-input *lexmachine.Scanner cursor.
type LMLexer struct {
	scanner *lexmachine.Scanner
	reg     *kind.Registry
	src     string
	srcLen  uint32
}

// Source returns the exact text being scanned, so a green.Builder can
// slice token text by byte range without per-token copies.
func (l *LMLexer) Source() string { return l.src }

// NewLMLexer compiles specs into a DFA and returns a Lexer scanning
// src. Specs are matched longest-match-wins within lexmachine's own
// rules; among equal-length matches, earlier-declared specs win.
func NewLMLexer(reg *kind.Registry, specs []Spec, src string) (*LMLexer, error) {
	lex := lexmachine.NewLexer()
	for _, sp := range specs {
		k := sp.Kind
		skip := sp.Skip
		lex.Add([]byte(sp.Pattern), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			if skip {
				return nil, nil
			}
			return s.Token(int(k), string(m.Bytes), m), nil
		})
	}
	if err := lex.Compile(); err != nil {
		return nil, fmt.Errorf("lexer: compiling DFA: %w", err)
	}
	sc, err := lex.Scanner([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("lexer: %w", err)
	}
	return &LMLexer{scanner: sc, reg: reg, src: src, srcLen: uint32(len(src))}, nil
}

// Next implements Lexer.
func (l *LMLexer) Next() (Token, error) {
	tok, err, eof := l.scanner.Next()
	for err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			return Token{}, &LexError{Offset: uint32(ui.FailTC), Msg: ui.Error()}
		}
		return Token{}, &LexError{Msg: err.Error()}
	}
	if eof {
		return Token{Kind: l.reg.End, Text: "", Start: l.srcLen, End: l.srcLen}, nil
	}
	t := tok.(*lexmachine.Token)
	return Token{
		Kind:  kind.SyntaxKind(t.Type),
		Text:  string(t.Lexeme),
		Start: uint32(t.TC),
		End:   uint32(t.TC + len(t.Lexeme)),
	}, nil
}

// FoldKeyword lowercases text for case-insensitive keyword matching,
// the way PostgreSQL (and the teacher's own lexmachine adapter) folds
// unquoted identifiers before a keyword-table lookup.
func FoldKeyword(text string) string {
	return strings.ToLower(text)
}
