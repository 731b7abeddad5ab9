package pgcst

import (
	"github.com/nbpillmayer-student/pgcst/cursor"
	"github.com/nbpillmayer-student/pgcst/driver"
	"github.com/nbpillmayer-student/pgcst/green"
	"github.com/nbpillmayer-student/pgcst/lexer"
	"github.com/nbpillmayer-student/pgcst/pgsql"
	"github.com/nbpillmayer-student/pgcst/shaper"
)

// ParseError is re-exported from package driver: the action table
// missed and no transform hook recovered.
type ParseError = driver.ParseError

// LexError is re-exported from package lexer: the scanner hit input no
// Spec matched.
type LexError = lexer.LexError

// Tree is the tree-sitter-compatible shaped tree returned by Parse.
type Tree = shaper.Tree

// Cursor walks a Tree with goto_first_child/goto_next_sibling/
// goto_parent semantics.
type Cursor = cursor.TreeCursor

// RawTree is the fully lossless green tree produced before shaping —
// every token present, no flattening, no ranges computed.
type RawTree = green.Tree

// RangeMap is every shaped node's byte/row/column span, returned
// alongside a Tree by GetTSTreeAndRangeMap.
type RangeMap = shaper.RangeMap

// Parse lexes and parses src against the built-in pgsql grammar,
// returning a tree-sitter-compatible shaped tree: flattened lists, no
// optional-wrapper nodes, row/column ranges computed, whitespace
// dropped (comments kept). The first call builds the grammar's LALR
// tables once and reuses them for the life of the process.
func Parse(src string) (*Tree, error) {
	p, err := pgsql.Default()
	if err != nil {
		return nil, err
	}
	return p.ParseTreeSitter(src)
}

// ParseLossless is like Parse but keeps every token, including
// whitespace and comments, so the result round-trips byte-for-byte to
// src.
func ParseLossless(src string) (*Tree, error) {
	p, err := pgsql.Default()
	if err != nil {
		return nil, err
	}
	return p.ParseLossless(src)
}

// NewCursor returns a Cursor positioned at tree's root.
func NewCursor(tree *Tree) *Cursor {
	return cursor.NewTreeCursor(tree)
}

// AsTreeSitterCursor is NewCursor under the entry-point name this
// package's API promises: a tree-sitter-style cursor positioned at
// tree's root, ready for GotoFirstChild/GotoNextSibling/GotoParent
// traversal.
func AsTreeSitterCursor(tree *Tree) *Cursor {
	return NewCursor(tree)
}

// ParseCST lexes and parses src, returning the raw lossless tree
// before any shaping — every token present, including whitespace and
// comments, no flattening or range computation applied.
func ParseCST(src string) (*RawTree, error) {
	p, err := pgsql.Default()
	if err != nil {
		return nil, err
	}
	return p.Parse(src)
}

// ConvertCST reshapes a raw CST (as returned by ParseCST) into the
// tree-sitter-compatible shape: flattened lists, no optional-wrapper
// nodes, row/column ranges computed, whitespace dropped. It does not
// re-lex or re-parse src.
func ConvertCST(raw *RawTree) (*Tree, error) {
	p, err := pgsql.Default()
	if err != nil {
		return nil, err
	}
	return p.ConvertCST(raw), nil
}

// GetTSTreeAndRangeMap parses src and returns both the tree-sitter-
// compatible shaped tree and a standalone RangeMap of every node's
// byte/row/column span.
func GetTSTreeAndRangeMap(src string) (*Tree, RangeMap, error) {
	tree, err := Parse(src)
	if err != nil {
		return nil, nil, err
	}
	return tree, shaper.BuildRangeMap(tree), nil
}
