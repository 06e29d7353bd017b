// SPDX-License-Identifier: MIT
// Package linear: the free module R^n of rank-n column vectors.
// Free modules are where everything is computable: the standard basis is
// always available, alternative witnesses come from invertible change-of-
// basis pairs, and square matrices act as endomorphisms.

package linear

import (
	"fmt"

	"github.com/katalvlaran/lindet/matrix"
	"github.com/katalvlaran/lindet/ring"
)

// FreeModule is R^n with vectors represented as []ring.Element of length n.
// Rank 0 is the zero module: its only vector is the empty slice, its only
// endomorphism is the identity, and that identity has determinant one.
//
// Identity is per instance: two Free(R, n) calls build modules whose vectors
// and maps must not be mixed, even though they are structurally equal.
type FreeModule struct {
	rg  ring.Ring
	n   int
	std *Witness
}

// Free builds the rank-n free module over rg, with its standard witness
// (e_0, …, e_{n−1}) constructed eagerly. Free(R, 0) is the zero module.
//
// Errors:
//   - ErrBadFamily when rg is nil (no ring, no basis family).
//   - ErrBadIndex  when n is negative.
//
// Complexity: O(n²) for the standard family.
func Free(rg ring.Ring, n int) (*FreeModule, error) {
	if rg == nil {
		return nil, linearErrorf(opFree, ErrBadFamily)
	}
	if n < 0 {
		return nil, linearErrorf(opFree, ErrBadIndex)
	}

	mod := &FreeModule{rg: rg, n: n}

	// Standard family: e_i has One in slot i and Zero elsewhere.
	fam := make([]Vector, n)
	var i, j int
	for i = 0; i < n; i++ {
		e := make([]ring.Element, n)
		for j = 0; j < n; j++ {
			if i == j {
				e[j] = rg.One()
			} else {
				e[j] = rg.Zero()
			}
		}
		fam[i] = e
	}

	// Standard coordinates: the representation IS the coordinate vector.
	coords := func(v Vector) []ring.Element {
		vv := mod.vec(v)
		out := make([]ring.Element, n)
		copy(out, vv)

		return out
	}

	w, err := NewWitness(mod, fam, coords)
	if err != nil {
		return nil, linearErrorf(opFree, err)
	}
	mod.std = w

	return mod, nil
}

// vec asserts the module's vector representation. Foreign types or lengths
// are programmer errors and panic; user-facing validation happens in the
// error-returning constructors.
func (m *FreeModule) vec(v Vector) []ring.Element {
	vv, ok := v.([]ring.Element)
	if !ok || len(vv) != m.n {
		panic(panicForeignVector)
	}

	return vv
}

// Ring returns the coefficient ring.
func (m *FreeModule) Ring() ring.Ring { return m.rg }

// Rank returns n, the length of every vector of this module.
func (m *FreeModule) Rank() int { return m.n }

// Zero returns the zero vector (0, …, 0).
func (m *FreeModule) Zero() Vector {
	out := make([]ring.Element, m.n)
	for i := range out {
		out[i] = m.rg.Zero()
	}

	return out
}

// Add returns a + b, componentwise.
func (m *FreeModule) Add(a, b Vector) Vector {
	av, bv := m.vec(a), m.vec(b)
	out := make([]ring.Element, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = av[i].Add(bv[i])
	}

	return out
}

// Neg returns -v, componentwise.
func (m *FreeModule) Neg(v Vector) Vector {
	vv := m.vec(v)
	out := make([]ring.Element, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = vv[i].Neg()
	}

	return out
}

// Scale returns c·v, componentwise.
func (m *FreeModule) Scale(c ring.Element, v Vector) Vector {
	if c == nil {
		panic(panicNilScalar)
	}
	vv := m.vec(v)
	out := make([]ring.Element, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = c.Mul(vv[i])
	}

	return out
}

// Equal reports componentwise equality.
func (m *FreeModule) Equal(a, b Vector) bool {
	av, bv := m.vec(a), m.vec(b)
	for i := 0; i < m.n; i++ {
		if !av[i].Equal(bv[i]) {
			return false
		}
	}

	return true
}

// FindBasis returns the standard witness. Free modules always have one, so
// the second return is always true.
func (m *FreeModule) FindBasis() (*Witness, bool) { return m.std, true }

// String names the module, e.g. "ℤ^3".
func (m *FreeModule) String() string { return fmt.Sprintf("%s^%d", m.rg, m.n) }

// FromInts embeds an integer tuple as a vector of this module through
// Ring().FromInt. Arity must equal Rank().
// Errors: ErrBadFamily on arity mismatch.
func (m *FreeModule) FromInts(vals ...int64) (Vector, error) {
	if len(vals) != m.n {
		return nil, linearErrorf(opFromInts, ErrBadFamily)
	}
	out := make([]ring.Element, m.n)
	for i, v := range vals {
		out[i] = m.rg.FromInt(v)
	}

	return out, nil
}

// WitnessFromPair builds an alternative witness of m from an invertible
// change-of-basis matrix. Column j of b, read in standard coordinates, is
// the j-th vector of the new family; binv carries standard coordinates back
// to the new ones.
//
// Implementation:
//   - Stage 1: validate shapes and rings; when binv is nil, compute it via
//     matrix.Inverse (unit-pivot elimination, so rings whose nonzero
//     elements are not all units report ErrNeedField); otherwise verify the
//     supplied pair with matrix.InversePairCheck.
//   - Stage 2: snapshot the columns of b as the family and capture a private
//     clone of the inverse inside the coordinate function.
//
// Behavior highlights:
//   - Determinants computed through any witness built here agree with the
//     standard one; that invariance is the point of the construction.
//   - Over ℤ, unimodular b (det = ±1) with an explicit binv works fine; no
//     field is needed when the caller supplies the inverse.
//
// Errors:
//   - ErrBadFamily               when m is nil.
//   - matrix.ErrNilMatrix        when b is nil.
//   - matrix.ErrDimensionMismatch / matrix.ErrRingMismatch when b or binv
//     does not match the module rank or ring.
//   - matrix.ErrNotInversePair   when the supplied pair fails verification.
//   - matrix.ErrNeedField / matrix.ErrSingular from inverse computation.
//
// Complexity: O(n³) for pair verification or inversion, O(n²) snapshots.
func WitnessFromPair(m *FreeModule, b, binv matrix.Matrix) (*Witness, error) {
	if m == nil {
		return nil, linearErrorf(opWitnessFromPair, ErrBadFamily)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, linearErrorf(opWitnessFromPair, err)
	}
	if b.Rows() != m.n || b.Cols() != m.n {
		return nil, linearErrorf(opWitnessFromPair, matrix.ErrDimensionMismatch)
	}
	if b.Ring() != m.rg {
		return nil, linearErrorf(opWitnessFromPair, matrix.ErrRingMismatch)
	}

	// Resolve the inverse: compute it when absent, verify it when supplied.
	var inv matrix.Matrix
	if binv == nil {
		computed, err := matrix.Inverse(b)
		if err != nil {
			return nil, linearErrorf(opWitnessFromPair, err)
		}
		inv = computed
	} else {
		if binv.Rows() != m.n || binv.Cols() != m.n {
			return nil, linearErrorf(opWitnessFromPair, matrix.ErrDimensionMismatch)
		}
		if binv.Ring() != m.rg {
			return nil, linearErrorf(opWitnessFromPair, matrix.ErrRingMismatch)
		}
		if err := matrix.InversePairCheck(b, binv); err != nil {
			return nil, linearErrorf(opWitnessFromPair, err)
		}
		inv = binv.Clone() // private copy; later caller writes must not reach us
	}

	// Family: columns of b in standard coordinates.
	fam := make([]Vector, m.n)
	var i, j int
	var cell ring.Element
	var err error
	for j = 0; j < m.n; j++ {
		col := make([]ring.Element, m.n)
		for i = 0; i < m.n; i++ {
			if cell, err = b.At(i, j); err != nil {
				return nil, linearErrorf(opWitnessFromPair, err)
			}
			col[i] = cell
		}
		fam[j] = col
	}

	// New coordinates: multiply standard coordinates by the inverse.
	coords := func(v Vector) []ring.Element {
		out, merr := matrix.MatVec(inv, m.vec(v))
		if merr != nil {
			panic(panicForeignVector) // vec already screened length and ring
		}

		return out
	}

	w, err := NewWitness(m, fam, coords)
	if err != nil {
		return nil, linearErrorf(opWitnessFromPair, err)
	}

	return w, nil
}

// MapFromMatrix turns a square matrix over m's ring into the endomorphism
// v ↦ a·v. The matrix is cloned once; later caller writes to a do not
// change the map.
//
// Errors: ErrNilMap when m is nil; matrix.ErrNilMatrix,
// matrix.ErrDimensionMismatch and matrix.ErrRingMismatch for a bad a.
// Complexity: O(n²) per Apply.
func MapFromMatrix(m *FreeModule, a matrix.Matrix) (*Map, error) {
	if m == nil {
		return nil, linearErrorf(opMapFromMatrix, ErrNilMap)
	}
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, linearErrorf(opMapFromMatrix, err)
	}
	if a.Rows() != m.n {
		return nil, linearErrorf(opMapFromMatrix, matrix.ErrDimensionMismatch)
	}
	if a.Ring() != m.rg {
		return nil, linearErrorf(opMapFromMatrix, matrix.ErrRingMismatch)
	}

	ac := a.Clone()
	apply := func(v Vector) Vector {
		out, err := matrix.MatVec(ac, m.vec(v))
		if err != nil {
			panic(panicForeignVector)
		}

		return out
	}

	return &Map{mod: m, apply: apply}, nil
}
