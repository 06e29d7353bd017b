// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions over ring elements.
//   • Keep fixture data exact (integer embeddings) so comparisons never need
//     tolerances: every check is Equal on ring elements.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lindet/matrix"
	"github.com/katalvlaran/lindet/ring"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Behavior highlights:
//   - Prevents "*Dense" fast-path via type switch in code under test.
//
// Inputs:
//   - matrix.Matrix: any implementation.
//
// Returns:
//   - hide: wrapper that still satisfies Matrix but masks concrete type.
//
// Errors:
//   - None.
//
// Determinism:
//   - N/A (wrapper only).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Wrap ONLY the operand you want to de-opt; keep the other one *Dense to
//     isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c zero *Dense over rg or fails the test.
// Implementation:
//   - Stage 1: Call matrix.NewDense(rg, r, c).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Behavior highlights:
//   - Concise boilerplate reduction in tests.
//
// Inputs:
//   - rg: coefficient ring; r,c: matrix shape.
//
// Returns:
//   - *matrix.Dense filled with rg.Zero().
//
// Errors:
//   - Fatal test failure if allocation fails.
//
// Determinism:
//   - Deterministic zero-initialized buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MustDense(t *testing.T, rg ring.Ring, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rg, r, c)
	if err != nil {
		t.Fatalf("NewDense(%v,%d,%d): %v", rg, r, c, err)
	}

	return m
}

// MustFromInts BUILDS a *Dense from int64 row literals via rg.FromInt.
// Implementation:
//   - Stage 1: matrix.FromInts(rg, rows).
//   - Stage 2: t.Fatalf on error.
//
// Behavior highlights:
//   - One-liner exact fixtures; negative entries embed correctly in any ring.
//
// Inputs:
//   - rg: coefficient ring; rows: rectangular int64 literals.
//
// Returns:
//   - *matrix.Dense with embedded values.
//
// Errors:
//   - Fatal test failure on ragged input or construction error.
//
// Determinism:
//   - Deterministic fill order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MustFromInts(t *testing.T, rg ring.Ring, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromInts(rg, rows)
	if err != nil {
		t.Fatalf("FromInts(%v): %v", rg, err)
	}

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v ring.Element) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) ring.Element {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustDet COMPUTES Det(m, opts...) or fails the test.
func MustDet(t *testing.T, m matrix.Matrix, opts ...matrix.Option) ring.Element {
	t.Helper()
	d, err := matrix.Det(m, opts...)
	if err != nil {
		t.Fatalf("Det: %v", err)
	}

	return d
}

// CompareInts ASSERTS exact equality between a matrix and int64 literals.
// Implementation:
//   - Stage 1: Shape checks.
//   - Stage 2: Embed each literal via m.Ring().FromInt and compare with Equal.
//
// Behavior highlights:
//   - Fails with exact mismatch location; no tolerances anywhere.
//
// Inputs:
//   - want: [][]int64 expected; m: Matrix under test.
//
// Returns:
//   - None.
//
// Errors:
//   - Fatal test failure on size/value mismatch.
//
// Determinism:
//   - Deterministic.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - Works over any ring: literals are reduced by FromInt first, so
//     CompareInts over ℤ/6ℤ with want=7 checks against 1.
func CompareInts(t *testing.T, want [][]int64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareInts: Rows = %d; want %d", r, len(want))
	}
	rg := m.Ring()
	var i, j int // loop iterators
	var v ring.Element
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareInts: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			v = MustAt(t, m, i, j)
			if !v.Equal(rg.FromInt(want[i][j])) {
				t.Fatalf("m[%d,%d]=%v; want %d", i, j, v, want[i][j])
			}
		}
	}
}

// AssertElemEq ASSERTS want.Equal(got) on ring elements with clear text.
func AssertElemEq(t *testing.T, want, got ring.Element) {
	t.Helper()
	if !want.Equal(got) {
		t.Fatalf("want %v; got %v", want, got)
	}
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
// Implementation:
//   - Stage 1: defer recover().
//   - Stage 2: t.Fatalf if recover()==nil.
//
// Notes:
//   - Guards the WithAlgorithm option and ring constructor panics.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// elems EMBEDS int64 literals into rg, producing a vector fixture.
func elems(rg ring.Ring, vals ...int64) []ring.Element {
	out := make([]ring.Element, len(vals))
	for i, v := range vals {
		out[i] = rg.FromInt(v)
	}

	return out
}

// ---------- bench helpers ----------

func mustDenseB(b *testing.B, rg ring.Ring, r, c int) *matrix.Dense {
	d, err := matrix.NewDense(rg, r, c)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	return d
}

// fillAffine writes d[i,j] = (p*i + q*j + s) through FromInt; deterministic
// and unit-rich over prime moduli, which keeps elimination benches honest.
func fillAffine(d *matrix.Dense, p, q, s int64) {
	rg := d.Ring()
	rows, cols := d.Rows(), d.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			_ = d.Set(i, j, rg.FromInt(p*int64(i)+q*int64(j)+s))
		}
	}
}
