// Package transform implements localized error-recovery hooks consulted
// by the LR driver (C6): a fixed ordered list of functions, never a
// dynamic plugin registry (spec.md §9 "Transform hook dispatch ...
// fixed ordered list of function pointers/objects, not dynamic
// plugins").
package transform

import (
	"github.com/nbpillmayer-student/pgcst/kind"
	"github.com/nbpillmayer-student/pgcst/lexer"
)

// Decision is what a Hook returns: either "do nothing" (zero value),
// "skip this token" (Skip), or "insert a synthetic token of Kind
// before this one" (Insert).
type Decision struct {
	Skip    bool
	Insert  bool
	Kind    kind.SyntaxKind
	Applied bool // true if the hook fired; Skip/Insert/Kind are meaningless otherwise
}

// State is the read-only view of driver state a Hook may consult:
// borrowed references only, never an owning copy (spec.md §9 "The
// lr_parse_state view is read-only and built from borrowed
// references").
type State struct {
	// TopStateID is the LR state at the top of the driver's stack.
	TopStateID int
	// TopSymbol is the grammar symbol most recently shifted or
	// reduced onto the stack, or kind.SyntaxKind(-1) if the stack
	// holds only the initial state.
	TopSymbol kind.SyntaxKind
	// Lookahead is the token the driver is about to act on.
	Lookahead lexer.Token
	// ActionMissing is true when the ACTION table has no entry for
	// (TopStateID, Lookahead.Kind). All four built-in hooks return no
	// decision unless it is true.
	ActionMissing bool
}

// Hook inspects State and optionally returns a recovery Decision.
type Hook func(State) Decision

// Kinds names the handful of grammar-specific terminal kinds the
// built-in hooks need to recognize. A grammar package (e.g. pgsql)
// fills this in once from its own registry and passes it to
// NewHooks — transform itself stays grammar-agnostic.
type Kinds struct {
	Comma      kind.SyntaxKind
	Operator   []kind.SyntaxKind // binary operators eligible for the skip-extra-operator hook
	From       kind.SyntaxKind
	Values     kind.SyntaxKind // the terminal a VALUES-style list expects
	SampleNum  kind.SyntaxKind // a placeholder numeric-literal kind to insert
	TableName  kind.SyntaxKind // a placeholder identifier kind to insert
}

// NewHooks returns the fixed, ordered hook list for one grammar's
// Kinds, in dispatch order: skip-extra-comma, skip-extra-operator,
// insert-missing-sample-value, insert-missing-from-table. None of them
// fires pre-emptively: the driver consults the list only on an
// ACTION-table miss, and every hook, the two skip hooks included,
// applies only when ActionMissing is true.
func NewHooks(k Kinds) []Hook {
	return []Hook{
		skipExtraComma(k),
		skipExtraOperator(k),
		insertMissingSampleValue(k),
		insertMissingFromTable(k),
	}
}

// Run consults hooks in order and returns the first applied Decision,
// or the zero Decision if none apply.
func Run(hooks []Hook, st State) Decision {
	for _, h := range hooks {
		if d := h(st); d.Applied {
			return d
		}
	}
	return Decision{}
}
