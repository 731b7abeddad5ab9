// Package lexer defines the minimal contract the LR driver needs from
// a SQL tokenizer: the tokenization rules themselves are an external
// collaborator (spec.md §1 "the SQL lexer's tokenization rules, treated
// as a trait that yields (kind, text, byte_range)"); this package is
// that trait plus one concrete reference implementation for package
// pgsql's demonstration grammar, backed by timtadh/lexmachine the same
// way the teacher's lr/scanner package wraps it.
package lexer

import "github.com/nbpillmayer-student/pgcst/kind"

// Token is one lexed unit: a kind, its exact source text, and its byte
// range. Grounded on the teacher's gorgo.Token interface (TokType,
// Lexeme, Value, Span), narrowed to the three fields spec.md's trait
// requires and carrying a concrete SyntaxKind instead of an
// application-defined TokType.
type Token struct {
	Kind  kind.SyntaxKind
	Text  string
	Start uint32
	End   uint32 // exclusive
}

// Lexer yields a token stream. Next returns a LexError wrapped as the
// returned error on malformed input; EOF is signaled by a final Token
// of kind registry.End with an empty Text and Start==End==len(src).
type Lexer interface {
	Next() (Token, error)
}

// LexError reports a lexer failure at a byte offset (spec.md §7
// "LexError: surfaced by the lexer and propagated unchanged").
type LexError struct {
	Offset uint32
	Msg    string
}

func (e *LexError) Error() string { return "lex error: " + e.Msg }
