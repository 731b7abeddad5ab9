package grammar

import (
	"github.com/nbpillmayer-student/pgcst/kind"
	"github.com/nbpillmayer-student/pgcst/symtab"
)

// rawRule is a rule as declared by the client, before ids and priority
// are resolved against the finished symbol table.
type rawRule struct {
	lhs        string
	rhs        []rawSym
	precTerm   string // set by Prec; empty if not used
	hasEpsilon bool
}

type rawSym struct {
	name string
	term bool
}

// Builder incrementally assembles a Grammar. Build() performs
// validation and augmentation once, after every rule has been
// declared.
type Builder struct {
	reg     *kind.Registry
	rules   []rawRule
	assoc   map[string]Priority
	start   string
	started bool
}

// NewBuilder creates an empty Builder. The registry passed in is used
// as-is (so callers that need extra pseudo-kinds beyond kind.Registry's
// defaults can pre-populate one); pass nil to get a fresh
// kind.NewRegistry().
func NewBuilder(reg *kind.Registry) *Builder {
	if reg == nil {
		reg = kind.NewRegistry()
	}
	return &Builder{reg: reg, assoc: make(map[string]Priority)}
}

// Registry returns the Builder's symbol registry. Useful for resolving
// ids after Build() without re-walking the grammar.
func (b *Builder) Registry() *kind.Registry { return b.reg }

// Start declares the grammar's start non-terminal explicitly. If never
// called, the LHS of the first declared rule is used (spec.md §6: "The
// first rule's lhs is the start symbol unless explicitly declared").
func (b *Builder) Start(name string) *Builder {
	b.start = name
	return b
}

// Left declares a set of terminals as left-associative at the given
// precedence level. Higher levels bind tighter.
func (b *Builder) Left(level int, names ...string) *Builder {
	return b.declareAssoc(level, Left, names)
}

// Right declares a set of terminals as right-associative.
func (b *Builder) Right(level int, names ...string) *Builder {
	return b.declareAssoc(level, Right, names)
}

// NonAssoc declares a set of terminals as non-associative: using two of
// them at the same precedence level in sequence is a parse error.
func (b *Builder) NonAssoc(level int, names ...string) *Builder {
	return b.declareAssoc(level, NonAssoc, names)
}

func (b *Builder) declareAssoc(level int, dir Directive, names []string) *Builder {
	for _, n := range names {
		b.assoc[n] = Priority{Level: level, Directive: dir}
	}
	return b
}

// LHS begins a new rule with the given non-terminal on its left-hand
// side, returning a RuleBuilder to append the right-hand side.
func (b *Builder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{b: b, rule: rawRule{lhs: name}}
}

// RuleBuilder accumulates the right-hand side of one rule.
type RuleBuilder struct {
	b    *Builder
	rule rawRule
}

// N appends a non-terminal symbol to the rule being built.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, rawSym{name: name, term: false})
	return rb
}

// T appends a terminal symbol to the rule being built.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, rawSym{name: name, term: true})
	return rb
}

// Prec attaches an explicit %prec tag, overriding the default
// reduce-priority derivation (spec.md §3: "else from the last terminal
// on the right-hand side that carries an associativity declaration").
func (rb *RuleBuilder) Prec(terminal string) *RuleBuilder {
	rb.rule.precTerm = terminal
	return rb
}

// End finishes the rule and registers it with the Builder.
func (rb *RuleBuilder) End() *Builder {
	rb.b.rules = append(rb.b.rules, rb.rule)
	return rb.b
}

// Epsilon finishes the rule as an empty production (A -> ).
func (rb *RuleBuilder) Epsilon() *Builder {
	rb.rule.hasEpsilon = true
	rb.b.rules = append(rb.b.rules, rb.rule)
	return rb.b
}

// Build validates and finalizes the grammar: interns every symbol
// (terminals before non-terminals), computes each rule's reduce
// priority, appends the synthetic $accept -> Start rule, and checks
// that every referenced non-terminal has at least one rule (spec.md
// §4.3 "a rule whose lhs has no rules is a build-time GrammarError").
func (b *Builder) Build() (*Grammar, error) {
	if len(b.rules) == 0 {
		return nil, &GrammarError{Msg: "grammar has no rules"}
	}

	reg := b.reg
	// Intern every terminal first, across all rules and the assoc
	// table, then every non-terminal; Finalize below moves all terminal
	// ids below every non-terminal id, since the registry already holds
	// the $accept and Root pseudo-kinds ahead of these terminals.
	for _, r := range b.rules {
		for _, s := range r.rhs {
			if s.term {
				reg.Insert(symtab.Symbol{Name: s.name, Kind: symtab.Terminal})
			}
		}
		if r.precTerm != "" {
			reg.Insert(symtab.Symbol{Name: r.precTerm, Kind: symtab.Terminal})
		}
	}
	for name := range b.assoc {
		reg.Insert(symtab.Symbol{Name: name, Kind: symtab.Terminal})
	}
	// Now every non-terminal, LHS first (so the start symbol's own
	// first-seen order still matches "first declared rule" semantics).
	lhsSeen := make(map[string]bool)
	for _, r := range b.rules {
		if !lhsSeen[r.lhs] {
			lhsSeen[r.lhs] = true
			reg.Insert(symtab.Symbol{Name: r.lhs, Kind: symtab.NonTerminal})
		}
	}
	for _, r := range b.rules {
		for _, s := range r.rhs {
			if !s.term {
				reg.Insert(symtab.Symbol{Name: s.name, Kind: symtab.NonTerminal})
			}
		}
	}
	remap := reg.Finalize()
	for _, k := range []*kind.SyntaxKind{&reg.Root, &reg.Whitespace, &reg.CComment, &reg.SQLComment, &reg.End, &reg.Accept, &reg.Error} {
		*k = remap[*k]
	}

	assoc := make(map[symtab.ID]Priority, len(b.assoc))
	for name, p := range b.assoc {
		id := reg.MustID(symtab.Symbol{Name: name, Kind: symtab.Terminal})
		assoc[id] = p
	}

	rules := make([]Rule, 0, len(b.rules)+1)
	for _, r := range b.rules {
		lhsID := reg.MustID(symtab.Symbol{Name: r.lhs, Kind: symtab.NonTerminal})
		rhsIDs := make([]symtab.ID, 0, len(r.rhs))
		var lastTerm symtab.ID = -1
		for _, s := range r.rhs {
			k := symtab.NonTerminal
			if s.term {
				k = symtab.Terminal
			}
			id := reg.MustID(symtab.Symbol{Name: s.name, Kind: k})
			rhsIDs = append(rhsIDs, id)
			if s.term {
				lastTerm = id
			}
		}

		var prio *Priority
		if r.precTerm != "" {
			id := reg.MustID(symtab.Symbol{Name: r.precTerm, Kind: symtab.Terminal})
			if p, ok := assoc[id]; ok {
				pp := p
				prio = &pp
			}
		} else if lastTerm >= 0 {
			if p, ok := assoc[lastTerm]; ok {
				pp := p
				prio = &pp
			}
		}

		rules = append(rules, Rule{LHS: lhsID, RHS: rhsIDs, ReducePriority: prio})
	}

	startName := b.start
	if startName == "" {
		startName = b.rules[0].lhs
	}
	startID, err := reg.ID(symtab.Symbol{Name: startName, Kind: symtab.NonTerminal})
	if err != nil {
		return nil, &GrammarError{Msg: "start symbol " + startName + " has no rules"}
	}

	rulesByLHS := make(map[symtab.ID][]int, len(rules))
	for i, r := range rules {
		rulesByLHS[r.LHS] = append(rulesByLHS[r.LHS], i)
	}

	// Validate: every non-terminal referenced on some RHS must have at
	// least one rule. Unreachable non-terminals (defined but never
	// referenced) are accepted per spec.md §4.3.
	for _, r := range rules {
		for _, s := range r.RHS {
			if reg.IsTerminal(s) {
				continue
			}
			if len(rulesByLHS[s]) == 0 {
				return nil, &GrammarError{Msg: "non-terminal " + reg.Name(s) + " has no rules"}
			}
		}
	}

	acceptRuleIdx := len(rules)
	rules = append(rules, Rule{LHS: reg.Accept, RHS: []symtab.ID{startID}})
	rulesByLHS[reg.Accept] = []int{acceptRuleIdx}

	return &Grammar{
		Registry:   reg,
		Rules:      rules,
		Assoc:      assoc,
		Start:      startID,
		AcceptRule: acceptRuleIdx,
		RulesByLHS: rulesByLHS,
	}, nil
}
