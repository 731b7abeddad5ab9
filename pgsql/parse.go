package pgsql

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"

	"github.com/nbpillmayer-student/pgcst/driver"
	"github.com/nbpillmayer-student/pgcst/grammar"
	"github.com/nbpillmayer-student/pgcst/green"
	"github.com/nbpillmayer-student/pgcst/kind"
	"github.com/nbpillmayer-student/pgcst/lalr"
	"github.com/nbpillmayer-student/pgcst/lexer"
	"github.com/nbpillmayer-student/pgcst/shaper"
	"github.com/nbpillmayer-student/pgcst/symtab"
	"github.com/nbpillmayer-student/pgcst/transform"
)

func tracer() tracing.Trace { return tracing.Select("pgcst.pgsql") }

// Parser bundles a built Grammar/Tables pair for repeated use; building
// the LALR tables is the expensive part (spec.md §2 "C3 ... 35%
// share"), so callers parsing many statements should build one Parser
// and reuse it.
type Parser struct {
	g     *grammar.Grammar
	tbl   *lalr.Tables
	specs []lexer.Spec
	hooks []transform.Hook
}

var (
	defaultParser     *Parser
	defaultParserOnce sync.Once
	defaultParserErr  error
)

// Default returns a process-wide Parser built once on first use.
func Default() (*Parser, error) {
	defaultParserOnce.Do(func() {
		defaultParser, defaultParserErr = NewParser()
	})
	return defaultParser, defaultParserErr
}

// NewParser builds a fresh grammar, LALR tables, and lexer spec table.
func NewParser() (*Parser, error) {
	g, err := Grammar()
	if err != nil {
		return nil, err
	}
	tbl, err := lalr.Build(g)
	if err != nil {
		return nil, err
	}
	specs, err := Specs(g.Registry)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("pgsql parser built: %d states, %d conflicts", len(tbl.States), len(tbl.Conflicts))
	return &Parser{g: g, tbl: tbl, specs: specs, hooks: transform.NewHooks(hookKinds(g.Registry))}, nil
}

func hookKinds(reg *kind.Registry) transform.Kinds {
	must := func(name string) kind.SyntaxKind {
		id, err := reg.ID(symtab.Symbol{Name: name, Kind: symtab.Terminal})
		if err != nil {
			return 0
		}
		return id
	}
	return transform.Kinds{
		Comma:     must(tComma),
		From:      must(tFrom),
		SampleNum: must(tNumber),
		TableName: must(tIdent),
	}
}

// Parse lexes and parses src, returning the raw lossless green tree.
func (p *Parser) Parse(src string) (*green.Tree, error) {
	lx, err := lexer.NewLMLexer(p.g.Registry, p.specs, src)
	if err != nil {
		return nil, err
	}
	d := driver.New(p.g, p.tbl, p.hooks)
	return d.Parse(lx)
}

// shapeConfig returns the shaper.Config for this grammar's list and
// wrapper non-terminals (spec.md §8 scenarios 1-6).
func (p *Parser) shapeConfig() shaper.Config {
	reg := p.g.Registry
	must := func(name string) kind.SyntaxKind {
		id, _ := reg.ID(symtab.Symbol{Name: name, Kind: symtab.NonTerminal})
		return id
	}
	list := map[kind.SyntaxKind]bool{
		must("stmtmulti"):   true,
		must("target_list"): true,
		must("from_list"):   true,
		must("sortby_list"): true,
	}
	wrapper := map[kind.SyntaxKind]bool{
		must("opt_target_list"):        true,
		must("opt_from_clause"):        true,
		must("opt_sort_clause"):        true,
		must("opt_select_limit"):       true,
		must("select_limit"):           true,
		must("opt_for_locking_clause"): true,
		must("opt_distinct"):           true,
		must("opt_as"):                 true,
	}
	return shaper.Config{ListKinds: list, WrapperKinds: wrapper, Whitespace: reg.Whitespace}
}

// ParseLossless parses src and flattens/un-wraps the tree but keeps
// every token, including whitespace and comments, round-trippable.
func (p *Parser) ParseLossless(src string) (*shaper.Tree, error) {
	raw, err := p.Parse(src)
	if err != nil {
		return nil, err
	}
	return shaper.ShapeLossless(raw, p.shapeConfig()), nil
}

// ParseTreeSitter parses src and produces the tree-sitter-compatible
// shape: flattened, un-wrapped, row/column ranges computed, whitespace
// tokens dropped.
func (p *Parser) ParseTreeSitter(src string) (*shaper.Tree, error) {
	raw, err := p.Parse(src)
	if err != nil {
		return nil, err
	}
	return shaper.ShapeTreeSitter(raw, p.shapeConfig()), nil
}

// ConvertCST reshapes a raw lossless CST (as returned by Parse) into
// the tree-sitter-compatible shape, without re-lexing or re-parsing
// src. Equivalent to ParseTreeSitter when raw came from the same
// Parser, but lets a caller hold onto the lossless tree (e.g. for
// error recovery inspection) before committing to the shaped view.
func (p *Parser) ConvertCST(raw *green.Tree) *shaper.Tree {
	return shaper.ShapeTreeSitter(raw, p.shapeConfig())
}

// Registry exposes the parser's symbol registry, for callers that want
// to compare kinds against kind.RootName/AcceptName or a terminal name.
func (p *Parser) Registry() *kind.Registry { return p.g.Registry }
