// Package pgsql is a representative subset of PostgreSQL's SELECT
// grammar, built with package grammar's fluent Builder, demonstrating
// every component from C1 through C8 end to end: multi-statement
// scripts, comma-separated lists flattened by package shaper, a
// DISTINCT ON clause, FOR UPDATE with LIMIT/OFFSET, and the three
// comma-skip error-recovery scenarios package transform covers.
//
// It exists to exercise the rest of this module, not as a claim of
// PostgreSQL grammar completeness — real precedence climbing,
// subqueries, joins, and the rest of SelectStmt's productions are
// deliberately out of scope.
package pgsql

import (
	"github.com/nbpillmayer-student/pgcst/grammar"
	"github.com/nbpillmayer-student/pgcst/kind"
)

// Terminal names, shared between the grammar Builder and the lexer
// Spec table in lex.go.
const (
	tSelect   = "SELECT"
	tDistinct = "DISTINCT"
	tOn       = "ON"
	tFrom     = "FROM"
	tOrder    = "ORDER"
	tBy       = "BY"
	tFor      = "FOR"
	tUpdate   = "UPDATE"
	tLimit    = "LIMIT"
	tOffset   = "OFFSET"
	tAs       = "AS"
	tComma    = "COMMA"
	tSemi     = "SEMI"
	tLParen   = "LPAREN"
	tRParen   = "RPAREN"
	tStar     = "STAR"
	tIdent    = "IDENT"
	tNumber   = "NUMBER"
)

// Grammar builds the pgsql demonstration grammar. Each call returns an
// independent *grammar.Grammar with its own *kind.Registry.
func Grammar() (*grammar.Grammar, error) {
	reg := kind.NewRegistry()
	b := grammar.NewBuilder(reg)
	b.Start("stmtmulti")

	b.LHS("stmtmulti").N("stmtmulti").T(tSemi).N("stmt").End()
	b.LHS("stmtmulti").N("stmtmulti").T(tSemi).End()
	b.LHS("stmtmulti").N("stmt").End()

	b.LHS("stmt").N("SelectStmt").End()

	b.LHS("SelectStmt").
		T(tSelect).N("opt_distinct").N("opt_target_list").N("opt_from_clause").
		N("opt_sort_clause").N("opt_for_locking_clause").N("opt_select_limit").End()

	b.LHS("opt_distinct").T(tDistinct).T(tOn).T(tLParen).N("target_list").T(tRParen).End()
	b.LHS("opt_distinct").Epsilon()

	b.LHS("opt_target_list").N("target_list").End()
	b.LHS("opt_target_list").Epsilon()

	b.LHS("target_list").N("target_list").T(tComma).N("target_el").End()
	b.LHS("target_list").N("target_el").End()

	b.LHS("target_el").N("a_expr").N("opt_as").End()

	b.LHS("opt_as").T(tAs).T(tIdent).End()
	b.LHS("opt_as").T(tIdent).End()
	b.LHS("opt_as").Epsilon()

	b.LHS("a_expr").T(tIdent).End()
	b.LHS("a_expr").T(tNumber).End()
	b.LHS("a_expr").T(tStar).End()
	b.LHS("a_expr").T(tLParen).N("a_expr").T(tRParen).End()

	b.LHS("opt_from_clause").T(tFrom).N("from_list").End()
	b.LHS("opt_from_clause").Epsilon()

	b.LHS("from_list").N("from_list").T(tComma).N("table_ref").End()
	b.LHS("from_list").N("table_ref").End()

	b.LHS("table_ref").T(tIdent).End()

	b.LHS("opt_sort_clause").T(tOrder).T(tBy).N("sortby_list").End()
	b.LHS("opt_sort_clause").Epsilon()

	b.LHS("sortby_list").N("sortby_list").T(tComma).N("sortby").End()
	b.LHS("sortby_list").N("sortby").End()

	b.LHS("sortby").N("a_expr").End()

	b.LHS("opt_for_locking_clause").T(tFor).T(tUpdate).End()
	b.LHS("opt_for_locking_clause").Epsilon()

	b.LHS("opt_select_limit").N("select_limit").End()
	b.LHS("opt_select_limit").Epsilon()

	b.LHS("select_limit").N("limit_clause").N("offset_clause").End()
	b.LHS("select_limit").N("offset_clause").N("limit_clause").End()
	b.LHS("select_limit").N("limit_clause").End()
	b.LHS("select_limit").N("offset_clause").End()

	b.LHS("limit_clause").T(tLimit).T(tNumber).End()
	b.LHS("offset_clause").T(tOffset).T(tNumber).End()

	return b.Build()
}
