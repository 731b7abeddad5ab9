// Package kind defines the closed SyntaxKind enumeration shared by the
// green tree, the LR driver, the shaper, and the cursor API.
//
// A SyntaxKind is nothing more than a symtab.ID: the union of every
// terminal the lexer emits, every non-terminal the grammar names, and a
// small set of pseudo-kinds that never appear as grammar symbols but
// still need a dense id because they label green-tree nodes (Root) or
// tokens (the two comment forms, whitespace). Representing SyntaxKind
// as a plain dense integer — rather than a string or a per-language
// sum type — is what lets every downstream table (ACTION, GOTO, the
// shaper's flatten/remove-wrapper sets) be keyed by array index instead
// of by name comparison, per spec.md's "closed-set kinds" design note.
package kind

import "github.com/nbpillmayer-student/pgcst/symtab"

// SyntaxKind identifies the grammar symbol (or pseudo-kind) of a green
// tree node or token. It is stable only within a single Registry/build;
// cross-build stability is not guaranteed.
type SyntaxKind = symtab.ID

// Pseudo-kind names. These are inserted into every Registry in addition
// to whatever terminals/non-terminals the grammar declares.
const (
	RootName       = "Root"
	WhitespaceName = "Whitespace"
	CCommentName   = "C_COMMENT"
	SQLCommentName = "SQL_COMMENT"
	EndName        = "$end"
	AcceptName     = "$accept"
	ErrorName      = "$error"
)

// Registry is a symtab.Mapper specialized with the pseudo-kinds every
// pgcst build needs, plus convenience accessors so call sites never
// have to look a pseudo-kind up by name at runtime.
type Registry struct {
	*symtab.Mapper

	Root       SyntaxKind
	Whitespace SyntaxKind
	CComment   SyntaxKind
	SQLComment SyntaxKind
	End        SyntaxKind
	Accept     SyntaxKind
	Error      SyntaxKind
}

// NewRegistry creates a Registry with the pseudo-kinds pre-registered.
// Trivia kinds (Whitespace, CComment, SQLComment) and $end are
// terminals; Root and $accept are non-terminals, matching spec.md §4.2
// ("adds two synthetic symbols: $accept ... $end") and §3 ("pseudo-kinds
// Root, C_COMMENT, SQL_COMMENT, Whitespace").
func NewRegistry() *Registry {
	m := symtab.New()
	r := &Registry{Mapper: m}
	r.End = m.Insert(symtab.Symbol{Name: EndName, Kind: symtab.Terminal})
	r.Whitespace = m.Insert(symtab.Symbol{Name: WhitespaceName, Kind: symtab.Terminal})
	r.CComment = m.Insert(symtab.Symbol{Name: CCommentName, Kind: symtab.Terminal})
	r.SQLComment = m.Insert(symtab.Symbol{Name: SQLCommentName, Kind: symtab.Terminal})
	r.Error = m.Insert(symtab.Symbol{Name: ErrorName, Kind: symtab.Terminal})
	r.Accept = m.Insert(symtab.Symbol{Name: AcceptName, Kind: symtab.NonTerminal})
	r.Root = m.Insert(symtab.Symbol{Name: RootName, Kind: symtab.NonTerminal})
	return r
}

// IsTrivia reports whether k is one of the three trivia kinds that
// never drive grammar transitions (spec.md §4.4 "Trivia handling").
func (r *Registry) IsTrivia(k SyntaxKind) bool {
	return k == r.Whitespace || k == r.CComment || k == r.SQLComment
}

// IsComment reports whether k is one of the two comment trivia kinds
// (spec.md §4.7's is_comment(), narrower than IsTrivia: whitespace is
// trivia but not a comment).
func (r *Registry) IsComment(k SyntaxKind) bool {
	return k == r.CComment || k == r.SQLComment
}

// Name returns the registered name for k, or "?" if k is unknown.
func (r *Registry) Name(k SyntaxKind) string {
	sym, ok := r.Symbol(k)
	if !ok {
		return "?"
	}
	return sym.Name
}
