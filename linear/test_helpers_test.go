// Package linear_test: shared helpers for the module/map/witness tests.
// Fail-fast Must* constructors keep table bodies free of error plumbing.
package linear_test

import (
	"testing"

	"github.com/katalvlaran/lindet/linear"
	"github.com/katalvlaran/lindet/matrix"
	"github.com/katalvlaran/lindet/ring"
)

// MustFree builds Free(rg, n) or aborts the test.
func MustFree(t *testing.T, rg ring.Ring, n int) *linear.FreeModule {
	t.Helper()
	m, err := linear.Free(rg, n)
	if err != nil {
		t.Fatalf("Free(%v, %d): %v", rg, n, err)
	}
	return m
}

// MustInfinite builds InfiniteSum(rg) or aborts the test.
func MustInfinite(t *testing.T, rg ring.Ring) *linear.InfiniteSumModule {
	t.Helper()
	m, err := linear.InfiniteSum(rg)
	if err != nil {
		t.Fatalf("InfiniteSum(%v): %v", rg, err)
	}
	return m
}

// MustVec embeds an integer tuple into the free module m.
func MustVec(t *testing.T, m *linear.FreeModule, vals ...int64) linear.Vector {
	t.Helper()
	v, err := m.FromInts(vals...)
	if err != nil {
		t.Fatalf("FromInts(%v): %v", vals, err)
	}
	return v
}

// MustMapFrom builds the endomorphism of m acting as the given integer
// matrix (embedded through the module ring).
func MustMapFrom(t *testing.T, m *linear.FreeModule, rows [][]int64) *linear.Map {
	t.Helper()
	a, err := matrix.FromInts(m.Ring(), rows)
	if err != nil {
		t.Fatalf("FromInts(%v): %v", rows, err)
	}
	f, err := linear.MapFromMatrix(m, a)
	if err != nil {
		t.Fatalf("MapFromMatrix: %v", err)
	}
	return f
}

// MustIdentity returns the identity endomorphism of mod.
func MustIdentity(t *testing.T, mod linear.Module) *linear.Map {
	t.Helper()
	f, err := linear.Identity(mod)
	if err != nil {
		t.Fatalf("Identity: %v", err)
	}
	return f
}

// MustZeroMap returns the zero endomorphism of mod.
func MustZeroMap(t *testing.T, mod linear.Module) *linear.Map {
	t.Helper()
	f, err := linear.ZeroMap(mod)
	if err != nil {
		t.Fatalf("ZeroMap: %v", err)
	}
	return f
}

// MustCompose returns f∘g or aborts the test.
func MustCompose(t *testing.T, f, g *linear.Map) *linear.Map {
	t.Helper()
	h, err := linear.Compose(f, g)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	return h
}

// MustWitness fetches the basis witness of mod, failing when the oracle
// reports none.
func MustWitness(t *testing.T, mod linear.Module) *linear.Witness {
	t.Helper()
	w, ok := mod.FindBasis()
	if !ok {
		t.Fatalf("FindBasis(%v): no witness", mod)
	}
	return w
}

// MustMatrixOf renders f through the witness w.
func MustMatrixOf(t *testing.T, w *linear.Witness, f *linear.Map) *matrix.Dense {
	t.Helper()
	a, err := w.Matrix(f)
	if err != nil {
		t.Fatalf("Witness.Matrix: %v", err)
	}
	return a
}

// AssertVecEq fails unless mod.Equal(want, got).
func AssertVecEq(t *testing.T, mod linear.Module, want, got linear.Vector) {
	t.Helper()
	if !mod.Equal(want, got) {
		t.Fatalf("vectors differ on %v:\n  want %v\n  got  %v", mod, want, got)
	}
}

// AssertElemEq fails unless want.Equal(got).
func AssertElemEq(t *testing.T, want, got ring.Element) {
	t.Helper()
	if got == nil {
		t.Fatalf("element is nil, want %v", want)
	}
	if !want.Equal(got) {
		t.Fatalf("element mismatch: want %v, got %v", want, got)
	}
}

// CompareInts fails unless m equals the integer fixture embedded through
// m's ring.
func CompareInts(t *testing.T, want [][]int64, m matrix.Matrix) {
	t.Helper()
	rg := m.Ring()
	if m.Rows() != len(want) {
		t.Fatalf("rows: want %d, got %d", len(want), m.Rows())
	}
	for i, row := range want {
		if m.Cols() != len(row) {
			t.Fatalf("cols(row %d): want %d, got %d", i, len(row), m.Cols())
		}
		for j, cell := range row {
			got, err := m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			if !rg.FromInt(cell).Equal(got) {
				t.Fatalf("cell (%d,%d): want %d, got %v", i, j, cell, got)
			}
		}
	}
}

// ExpectPanic fails unless fn panics.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got normal return")
		}
	}()
	fn()
}
