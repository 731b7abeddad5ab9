// Package driver implements the LR parser driver (C5): a single-stack
// shift/reduce engine that consumes lalr.Tables and a lexer.Lexer,
// emitting green-tree builder events as it goes and consulting
// transform.Hook recovery on an action-table miss. Grounded
// structurally on odvcencio-mane/gotreesitter/parser.go's
// parseInternal loop (stackEntry{state, node}, shift/reduce/accept/
// error dispatch), generalized from that package's mutable *Node
// stack to green.ID references into a green.Builder's event stream.
package driver

import (
	"github.com/nbpillmayer-student/pgcst/green"
	"github.com/nbpillmayer-student/pgcst/grammar"
	"github.com/nbpillmayer-student/pgcst/kind"
	"github.com/nbpillmayer-student/pgcst/lalr"
	"github.com/nbpillmayer-student/pgcst/lexer"
	"github.com/nbpillmayer-student/pgcst/transform"
)

// ParseError is returned when the action table has no entry for the
// current (state, lookahead) and no transform hook recovered (spec.md
// §7 "ParseError: action table missed and no transform hook
// recovered. Carries the byte offset and the set of terminal kinds for
// which the top state has any non-error action").
type ParseError struct {
	ByteOffset uint32
	Expected   []kind.SyntaxKind
}

func (e *ParseError) Error() string { return "parse error" }

// stackEntry pairs an LR state with the grammar symbol shifted or
// reduced into it and the builder checkpoint taken immediately before
// that symbol's own events were appended to the current green.Builder
// frame — the mark a later reduce wraps back to when it turns this
// symbol (and the ones above it) into a new internal node.
type stackEntry struct {
	state int
	sym   kind.SyntaxKind
	cp    green.Checkpoint
}

// SourcedLexer is implemented by lexers that can hand the driver the
// exact source text, so the green.Builder can slice token text by
// byte range instead of copying it per token.
type SourcedLexer interface {
	lexer.Lexer
	Source() string
}

// Driver runs the shift/reduce loop.
type Driver struct {
	g     *grammar.Grammar
	tbl   *lalr.Tables
	reg   *kind.Registry
	hooks []transform.Hook
}

// New creates a Driver for a built grammar/table pair, with the given
// ordered recovery hooks (pass transform.NewHooks(k) for the built-in
// four, or nil to disable recovery entirely).
func New(g *grammar.Grammar, tbl *lalr.Tables, hooks []transform.Hook) *Driver {
	return &Driver{g: g, tbl: tbl, reg: g.Registry, hooks: hooks}
}

// Parse runs lx to completion, building and returning the lossless
// green tree rooted at kind.RootName, or the first unrecovered
// ParseError.
func (d *Driver) Parse(lx SourcedLexer) (*green.Tree, error) {
	b := green.NewBuilder(lx.Source())
	b.StartNode(d.reg.Root)

	stack := []stackEntry{{state: 0, sym: kind.SyntaxKind(-1)}}
	lookahead, err := d.nextSignificant(b, lx)
	if err != nil {
		return nil, err
	}

	for {
		top := stack[len(stack)-1]
		act, val := d.tbl.Decode(top.state, lookahead.Kind)

		if act == lalr.ActionError {
			dec := transform.Run(d.hooks, transform.State{
				TopStateID:    top.state,
				TopSymbol:     top.sym,
				Lookahead:     lookahead,
				ActionMissing: true,
			})
			switch {
			case dec.Applied && dec.Skip:
				lookahead, err = d.nextSignificant(b, lx)
				if err != nil {
					return nil, err
				}
				continue
			case dec.Applied && dec.Insert:
				cp := b.Checkpoint()
				b.Token(dec.Kind, lookahead.Start, 0)
				next, shiftErr := d.shiftSynthetic(stack, top, dec.Kind, cp)
				if shiftErr != nil {
					return nil, shiftErr
				}
				stack = next
				continue
			default:
				return nil, &ParseError{ByteOffset: lookahead.Start, Expected: d.tbl.ExpectedTerminals(top.state)}
			}
		}

		switch act {
		case lalr.ActionShift:
			cp := b.Checkpoint()
			b.Token(lookahead.Kind, lookahead.Start, lookahead.End-lookahead.Start)
			stack = append(stack, stackEntry{state: val, sym: lookahead.Kind, cp: cp})
			lookahead, err = d.nextSignificant(b, lx)
			if err != nil {
				return nil, err
			}

		case lalr.ActionReduce:
			rule := d.g.Rules[val]
			n := len(rule.RHS)
			var cp green.Checkpoint
			if n == 0 {
				cp = b.Checkpoint()
			} else {
				cp = stack[len(stack)-n].cp
			}
			stack = stack[:len(stack)-n]
			from := stack[len(stack)-1]
			target, ok := d.tbl.GotoState(from.state, rule.LHS)
			if !ok {
				return nil, &ParseError{ByteOffset: lookahead.Start, Expected: d.tbl.ExpectedTerminals(from.state)}
			}
			b.StartNodeAt(rule.LHS, cp)
			b.FinishNode()
			stack = append(stack, stackEntry{state: target, sym: rule.LHS, cp: cp})

		case lalr.ActionAccept:
			// The augmented $accept -> S rule never itself appears in
			// the tree; S's node is already a sibling inside the Root
			// frame from whatever reduce built it. Finishing Root is
			// the only wrap needed.
			root := b.FinishNode()
			return b.Build(root), nil
		}
	}
}

// nextSignificant drains trivia tokens (whitespace, the two comment
// forms) from lx, attaching each directly into the builder's currently
// open frame without ever consulting the ACTION table, and returns the
// first non-trivia token (spec.md §4.4 "Trivia handling": trivia never
// drives a grammar transition, but lossless mode still needs its text
// in the tree). kind.Registry.IsTrivia is the single source of truth
// for which kinds this applies to.
func (d *Driver) nextSignificant(b *green.Builder, lx SourcedLexer) (lexer.Token, error) {
	for {
		tok, err := lx.Next()
		if err != nil {
			return lexer.Token{}, err
		}
		if !d.reg.IsTrivia(tok.Kind) {
			return tok, nil
		}
		b.Token(tok.Kind, tok.Start, tok.End-tok.Start)
	}
}

func (d *Driver) shiftSynthetic(stack []stackEntry, top stackEntry, k kind.SyntaxKind, cp green.Checkpoint) ([]stackEntry, error) {
	action, val := d.tbl.Decode(top.state, k)
	if action != lalr.ActionShift {
		return nil, &ParseError{ByteOffset: 0, Expected: d.tbl.ExpectedTerminals(top.state)}
	}
	return append(stack, stackEntry{state: val, sym: k, cp: cp}), nil
}
