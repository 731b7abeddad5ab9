package lalr

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/nbpillmayer-student/pgcst/grammar"
	"github.com/nbpillmayer-student/pgcst/lalr/sparse"
	"github.com/nbpillmayer-student/pgcst/symtab"
)

// Persisted tables are a write-once/read-once byte stream (spec.md §1:
// "serialization of precomputed tables" is an external collaborator's
// concern; this is a minimal encode/decode pair for caching a built
// table, not a general format). Package pgsql does not call it: it
// builds its tables with Build on every NewParser.
//
// Layout: magic "PGCSTLR1", numStates uint32, then the ACTION and GOTO
// matrices as a flat list of (row, col, valueA, valueB) int32 quads,
// each list preceded by a uint32 count of its quads.
const magic = "PGCSTLR1"

// WriteTo encodes t's tables (not the grammar itself — callers must
// rebuild or independently serialize the grammar.Grammar to decode).
func (t *Tables) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(magic); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(t.States))); err != nil {
		return err
	}
	if err := writeMatrix(bw, t.Action); err != nil {
		return err
	}
	if err := writeMatrix(bw, t.Goto); err != nil {
		return err
	}
	return bw.Flush()
}

func writeMatrix(w io.Writer, m interface {
	M() int
	N() int
	NullValue() int32
	Value(i int, j symtab.ID) int32
	Values(i int, j symtab.ID) (int32, int32)
}) error {
	type cell struct {
		i, j int
		a, b int32
	}
	var cells []cell
	for i := 0; i < m.M(); i++ {
		for j := 0; j < m.N(); j++ {
			a, b := m.Values(i, symtab.ID(j))
			if a == m.NullValue() && b == m.NullValue() {
				continue
			}
			cells = append(cells, cell{i, j, a, b})
		}
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(cells))); err != nil {
		return err
	}
	for _, c := range cells {
		vals := [4]int32{int32(c.i), int32(c.j), c.a, c.b}
		if err := binary.Write(w, binary.LittleEndian, vals); err != nil {
			return err
		}
	}
	return nil
}

// ReadTables decodes a byte stream written by WriteTo, applying it onto
// a freshly built Tables for g (the caller is responsible for ensuring
// g is the same grammar that produced the encoded tables; there is no
// structural check beyond the magic header).
func ReadTables(r io.Reader, g *grammar.Grammar) (*Tables, error) {
	br := bufio.NewReader(r)
	buf := make([]byte, len(magic))
	if _, err := io.ReadFull(br, buf); err != nil {
		return nil, err
	}
	if string(buf) != magic {
		return nil, fmt.Errorf("lalr: bad magic %q", buf)
	}
	var numStates uint32
	if err := binary.Read(br, binary.LittleEndian, &numStates); err != nil {
		return nil, err
	}

	n := g.Registry.Len()
	action, err := readMatrix(br, int(numStates), n)
	if err != nil {
		return nil, err
	}
	gotoM, err := readMatrix(br, int(numStates), n)
	if err != nil {
		return nil, err
	}

	return &Tables{G: g, Action: action, Goto: gotoM}, nil
}

func readMatrix(r io.Reader, rows, cols int) (*sparse.IntMatrix, error) {
	m := sparse.NewIntMatrix(rows, cols, sparse.DefaultNullValue)
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	for k := uint32(0); k < count; k++ {
		var vals [4]int32
		if err := binary.Read(r, binary.LittleEndian, &vals); err != nil {
			return nil, err
		}
		i, j, a, b := int(vals[0]), symtab.ID(vals[1]), vals[2], vals[3]
		if a != sparse.DefaultNullValue {
			m.Set(i, j, a)
		}
		if b != sparse.DefaultNullValue {
			m.Add(i, j, b)
		}
	}
	return m, nil
}
