/*
Package pgcst is a lossless concrete-syntax-tree parser toolbox for a
PostgreSQL-flavored SQL grammar.

It is built from four independent layers, each its own package:

■ grammar: the in-memory rule model and a fluent Builder for declaring
grammars without a Bison-style grammar-file parser.

■ lalr: LALR(1) table construction — closure, CFSM merging, and
shift/reduce and reduce/reduce conflict resolution — producing sparse
ACTION/GOTO tables.

■ driver: the single-stack shift/reduce engine that walks those tables
over a token stream, consulting transform hooks for localized error
recovery and emitting green-tree builder events as it goes.

■ shaper and cursor: a tree-shaping pass that turns the raw, fully
lossless tree into a tree-sitter-compatible shape (flattened lists, no
optional-wrapper nodes, row/column ranges), plus a cursor API for
walking it.

Package pgsql wires all of the above into one concrete grammar and is
the package most callers want; this root package exposes the same
entry points re-exported for convenience.

License

Governed by a 3-Clause BSD license.
*/
package pgcst
