// Package sparse implements the sparse matrix backing the ACTION and
// GOTO tables package lalr builds: rows are LR states (plain, since an
// LR state has no grammar-symbol identity of its own), columns are
// symtab.ID grammar symbols, never bare ints — every column index in
// this module names a terminal or non-terminal, and typing the column
// as symtab.ID instead of int rules out a whole class of (state,
// symbol) argument transpositions at compile time that a generic
// int-keyed matrix cannot catch. Most (state, symbol) pairs never
// receive an entry, so a dense [states][symbols]int32 array would waste
// memory on any grammar of realistic size.
//
// Each cell holds up to two int32 values (a "pair"). During table
// construction a second write to an already-occupied cell is exactly a
// shift/reduce or reduce/reduce conflict, so the pair representation
// can double as conflict detection: a caller may write tentatively with
// Add and inspect Values to see whether a conflict occurred, before
// committing the resolved action with Set. Package lalr does not use it
// that way: it resolves each cell's conflicts first and writes the
// winner once with Set.
//
// This implementation uses the COO algorithm (a.k.a. triplet-encoding):
//
//	https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229
package sparse

import (
	"fmt"

	"github.com/nbpillmayer-student/pgcst/symtab"
)

// IntMatrix is a type for a sparse (state, symbol) -> int32 matrix.
// Construct with
//
//     M := NewIntMatrix(10, 10, -1)        // last parameter is M's null-value
//
// Now
//
//     M.Set(2, symtab.ID(3), 4711)         // set a value
//     v := M.Value(2, symtab.ID(3))        // returns 4711
//     M.Add(2, symtab.ID(3), 123)          // add a second value
//     cnt := M.ValueCount()                // still returns 1 (one position set)
//     v = M.Value(10, symtab.ID(10))       // returns -1, i.e. the null-value
//
// Values cannot be deleted, but may be overwritten with the null-value. Space for
// null-values is not re-claimed.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

// Triplet values to store
type triplet struct {
	row   int
	col   symtab.ID
	value intPair
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of values in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the primary value at position (i,j), or NullValue
func (m *IntMatrix) Value(i int, j symtab.ID) int32 {
	for _, t := range m.values {
		if !t.storedLeftOf(i, j) { // have skipped all lesser indices
			if t.storedAt(i, j) {
				return t.value.a
			}
			break
		}
	}
	return m.nullval
}

// Values returns the pair of values at position (i,j), or (NullValue, NullValue)
func (m *IntMatrix) Values(i int, j symtab.ID) (int32, int32) {
	for _, t := range m.values {
		if !t.storedLeftOf(i, j) { // have skipped all lesser indices
			if t.storedAt(i, j) {
				return t.value.a, t.value.b
			}
			break
		}
	}
	return m.nullval, m.nullval
}

// Set a value in the matrix at position (i,j).
func (m *IntMatrix) Set(i int, j symtab.ID, value int32) *IntMatrix {
	return m.setOrAdd(i, j, value, false)
}

// Add a value in the matrix at position (i,j).
func (m *IntMatrix) Add(i int, j symtab.ID, value int32) *IntMatrix {
	return m.setOrAdd(i, j, value, true)
}

func (m *IntMatrix) setOrAdd(i int, j symtab.ID, value int32, doAdd bool) *IntMatrix {
	at := 0 // will be position of new value
	for k, t := range m.values {
		if !t.storedLeftOf(i, j) { // have skipped all lesser indices
			if t.storedAt(i, j) { // value already present
				if doAdd {
					v := m.values[k].value
					m.values[k].value = addIntValue(v, value, m.nullval) // add new value
				} else {
					m.values[k].value = newIntPair(value, m.nullval) // set new value
				}
				return m // and done
			}
			break // no old value present
		}
		at++
	}
	tnew := triplet{row: i, col: j, value: newIntPair(value, m.nullval)}
	// the following 3 lines have to work for k being the right edge of v or not
	m.values = append(m.values, tnew)    // make room
	copy(m.values[at+1:], m.values[at:]) // copy remainder values one index to right
	m.values[at] = tnew                  // if not append-case: insert new triplet
	return m
}

func addIntValue(v intPair, n int32, nullval int32) intPair {
	if v.a == nullval {
		v.a = n
	} else if v.b == nullval {
		v.b = n
	} else {
		// entry is full. what to do?
		v.b = n // overwrite second
	}
	return v
}

func (t *triplet) storedLeftOf(i int, j symtab.ID) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i int, j symtab.ID) bool {
	return (t.row == i && t.col == j)
}

// we will store 2 int32 in one position
type intPair struct {
	a int32
	b int32
}

func (pr intPair) String() string {
	return fmt.Sprintf("[%d,%d]", pr.a, pr.b)
}

func newIntPair(a, b int32) intPair {
	return intPair{a, b}
}
