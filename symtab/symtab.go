// Package symtab implements a bidirectional mapping between grammar
// symbols (terminals and non-terminals) and dense integer ids.
//
// Once Finalize has run (or whenever every terminal was inserted before
// any non-terminal), terminal ids are all below every non-terminal id,
// so `id < mapper.NumTerminals() <=> terminal`. This mirrors the id_mapper
// component of the grammar this parser's design is based on: terminals
// and non-terminals share one namespace of small, dense integers so
// they can index directly into FIRST-set bitvectors and sparse parser
// tables without a secondary translation step.
//
// Ids are stable for the lifetime of a single build (one Mapper), but
// are not guaranteed stable across builds or across processes.
package symtab

import "fmt"

// ID is a dense integer identifier for a grammar symbol.
type ID int32

// Kind distinguishes terminals from non-terminals.
type Kind uint8

const (
	// Terminal identifies symbols produced by the lexer.
	Terminal Kind = iota
	// NonTerminal identifies symbols that appear on the left of a rule.
	NonTerminal
)

// Symbol is a grammar symbol: a name plus whether it is a terminal or
// a non-terminal. Two symbols are equal iff their Kind and Name match.
type Symbol struct {
	Name string
	Kind Kind
}

func (s Symbol) String() string {
	if s.Kind == Terminal {
		return s.Name
	}
	return "<" + s.Name + ">"
}

// UnknownSymbolError is returned by Mapper.ID for a symbol that was
// never inserted.
type UnknownSymbolError struct {
	Symbol Symbol
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("symtab: unknown symbol %v", e.Symbol)
}

// Mapper is a two-way mapping between Symbol and ID. Insert is
// idempotent: inserting the same symbol twice returns the same id.
//
// Mapper is built incrementally and then frozen implicitly once table
// construction starts reading from it; it has no explicit Freeze
// method because nothing in this package enforces immutability beyond
// convention — callers in package grammar stop mutating it once
// grammar.Build returns.
type Mapper struct {
	bySymbol map[Symbol]ID
	symbols  []Symbol // index by ID
	numTerm  int
}

// New creates an empty Mapper.
func New() *Mapper {
	return &Mapper{
		bySymbol: make(map[Symbol]ID),
	}
}

// Insert adds sym to the mapper if not already present, and returns
// its id. Ids are assigned in plain insertion order, so a terminal
// inserted after a non-terminal receives a higher id than it. Until
// Finalize is called, IDs returned by Insert are provisional but stable
// (same calls, same answers); Finalize renumbers them with terminals
// first.
func (m *Mapper) Insert(sym Symbol) ID {
	if id, ok := m.bySymbol[sym]; ok {
		return id
	}
	id := ID(len(m.symbols))
	m.symbols = append(m.symbols, sym)
	m.bySymbol[sym] = id
	if sym.Kind == Terminal {
		m.numTerm++
	}
	return id
}

// ID looks up the id for sym, failing with UnknownSymbolError if sym
// was never inserted.
func (m *Mapper) ID(sym Symbol) (ID, error) {
	if id, ok := m.bySymbol[sym]; ok {
		return id, nil
	}
	return -1, &UnknownSymbolError{Symbol: sym}
}

// MustID is like ID but panics on failure; intended for internal call
// sites that already validated the symbol exists (e.g. right after
// Insert), where an error would indicate a bug in this package.
func (m *Mapper) MustID(sym Symbol) ID {
	id, err := m.ID(sym)
	if err != nil {
		panic(err)
	}
	return id
}

// Symbol returns the symbol for id, or the zero Symbol and false if id
// is out of range.
func (m *Mapper) Symbol(id ID) (Symbol, bool) {
	if id < 0 || int(id) >= len(m.symbols) {
		return Symbol{}, false
	}
	return m.symbols[id], true
}

// Len returns the total number of distinct symbols inserted so far.
func (m *Mapper) Len() int {
	return len(m.symbols)
}

// Finalize renumbers ids so that all terminal ids are contiguous and
// strictly less than every non-terminal id, preserving each group's
// relative insertion order. It returns a mapping from old id to new
// id; callers that cached ids before calling Finalize must remap them.
//
// grammar.Builder.Build calls this once every grammar symbol is
// interned, because kind.NewRegistry inserts the $accept and Root
// non-terminals before any of the grammar's own terminals; Build then
// remaps the registry's cached pseudo-kind ids.
func (m *Mapper) Finalize() []ID {
	old := m.symbols
	remap := make([]ID, len(old))
	next := make([]Symbol, 0, len(old))
	for _, s := range old {
		if s.Kind == Terminal {
			next = append(next, s)
		}
	}
	for i, s := range old {
		if s.Kind == Terminal {
			remap[i] = ID(indexOf(next, s))
		}
	}
	boundary := len(next)
	for _, s := range old {
		if s.Kind != Terminal {
			next = append(next, s)
		}
	}
	for i, s := range old {
		if s.Kind != Terminal {
			remap[i] = ID(boundary + indexOf(next[boundary:], s))
		}
	}
	m.symbols = next
	m.bySymbol = make(map[Symbol]ID, len(next))
	for i, s := range next {
		m.bySymbol[s] = ID(i)
	}
	m.numTerm = boundary
	return remap
}

func indexOf(syms []Symbol, s Symbol) int {
	for i, x := range syms {
		if x == s {
			return i
		}
	}
	return -1
}

// NumTerminals returns the number of terminal symbols inserted.
func (m *Mapper) NumTerminals() int {
	return m.numTerm
}

// IsTerminal reports whether id names a terminal symbol.
func (m *Mapper) IsTerminal(id ID) bool {
	return int(id) < m.numTerm
}
