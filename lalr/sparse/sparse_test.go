package sparse_test

import (
	"testing"

	"github.com/nbpillmayer-student/pgcst/lalr/sparse"
)

func TestSetAndValue(t *testing.T) {
	m := sparse.NewIntMatrix(4, 4, sparse.DefaultNullValue)
	m.Set(2, 3, 4711)
	if v := m.Value(2, 3); v != 4711 {
		t.Fatalf("Value(2,3) = %d, want 4711", v)
	}
	if v := m.Value(0, 0); v != m.NullValue() {
		t.Fatalf("Value(0,0) = %d, want null value", v)
	}
	if m.ValueCount() != 1 {
		t.Fatalf("ValueCount() = %d, want 1", m.ValueCount())
	}
}

func TestAddDetectsSecondEntry(t *testing.T) {
	m := sparse.NewIntMatrix(2, 2, sparse.DefaultNullValue)
	m.Add(1, 1, 10)
	m.Add(1, 1, 20)
	a, b := m.Values(1, 1)
	if a != 10 || b != 20 {
		t.Fatalf("Values(1,1) = (%d,%d), want (10,20)", a, b)
	}
	if m.ValueCount() != 1 {
		t.Fatalf("ValueCount() = %d, want 1 (single cell)", m.ValueCount())
	}
}

func TestSetOverwritesSinglePrimary(t *testing.T) {
	m := sparse.NewIntMatrix(3, 3, sparse.DefaultNullValue)
	m.Set(0, 0, 1)
	m.Set(0, 0, 2)
	if v := m.Value(0, 0); v != 2 {
		t.Fatalf("Value(0,0) = %d, want 2", v)
	}
}
