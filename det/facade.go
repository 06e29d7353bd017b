// SPDX-License-Identifier: MIT
// Package det: the algebraic facade. EquivDet lands determinants of
// automorphisms in the unit group; BasisForm exposes the determinant as an
// alternating multilinear form on vector families.

package det

import (
	"errors"

	"github.com/katalvlaran/lindet/linear"
	"github.com/katalvlaran/lindet/matrix"
	"github.com/katalvlaran/lindet/ring"
)

// EquivDet computes the determinant of a self-equivalence q : M ≃ M as a
// ring unit, inverse included.
//
// Implementation:
//   - Stage 1: reject nil and genuine two-module equivalences (ErrNotEndo);
//     reinterpret both legs as endomorphisms.
//   - Stage 2: one Det per leg; det(q⁻¹) = det(q)⁻¹ makes the pair a valid
//     ring.Unit without ever inverting an element in the ring.
//
// Behavior highlights:
//   - Group homomorphism: EquivDet(q∘p) = EquivDet(q)·EquivDet(p) and
//     EquivDet(q⁻¹) = EquivDet(q).Recip().
//   - The unit pair is trusted the way the equivalence's function pair is;
//     no Val·Inv = 1 product check runs here.
//
// Inputs:
//   - q: non-nil equivalence with Domain() == Codomain().
//
// Returns:
//   - ring.Unit{Val: det(q), Inv: det(q⁻¹)}.
//
// Errors:
//   - linear.ErrNilMap  when q is nil.
//   - ErrNotEndo        when q relates two distinct modules.
//   - Whatever Det reports for either leg.
//
// Complexity: two Det evaluations on the same module (one witness fetch,
// cached).
func (e *Engine) EquivDet(q *linear.Equiv) (ring.Unit, error) {
	if q == nil {
		return ring.Unit{}, detErrorf(opEquivDet, linear.ErrNilMap)
	}
	if q.Domain() != q.Codomain() {
		return ring.Unit{}, detErrorf(opEquivDet, ErrNotEndo)
	}

	fwd, err := q.AsMap()
	if err != nil {
		return ring.Unit{}, detErrorf(opEquivDet, err)
	}
	bwd, err := q.Inverse().AsMap()
	if err != nil {
		return ring.Unit{}, detErrorf(opEquivDet, err)
	}

	val, err := e.Det(fwd)
	if err != nil {
		return ring.Unit{}, detErrorf(opEquivDet, err)
	}
	inv, err := e.Det(bwd)
	if err != nil {
		return ring.Unit{}, detErrorf(opEquivDet, err)
	}

	return ring.Unit{Val: val, Inv: inv}, nil
}

// EquivDet is the one-shot form of Engine.EquivDet.
func EquivDet(q *linear.Equiv, opts ...Option) (ring.Unit, error) {
	return New(opts...).EquivDet(q)
}

// BasisForm is the determinant read as a function of vector families: fix a
// witness B of a rank-d module, and Eval sends any d vectors to the
// determinant of their coordinate matrix in B. The form is alternating and
// multilinear, takes One on B itself, and any two witnesses of the same
// module produce forms differing by a unit factor.
type BasisForm struct {
	w       *linear.Witness
	detOpts []matrix.Option
}

// NewBasisForm wraps a witness as an alternating form. The matrix options
// select the determinant kernel for every Eval.
// Errors: ErrNoBasis when w is nil.
func NewBasisForm(w *linear.Witness, opts ...matrix.Option) (*BasisForm, error) {
	if w == nil {
		return nil, detErrorf(opNewBasisForm, ErrNoBasis)
	}

	return &BasisForm{w: w, detOpts: opts}, nil
}

// BasisFormOf builds the form of m's cached witness, sharing the engine's
// oracle verdict with Det and Dim.
// Errors: ErrNoBasis when m is nil or has no finite basis.
func (e *Engine) BasisFormOf(m linear.Module) (*BasisForm, error) {
	if m == nil {
		return nil, detErrorf(opNewBasisForm, ErrNoBasis)
	}
	w, ok := e.cache.witness(m)
	if !ok {
		return nil, detErrorf(opNewBasisForm, ErrNoBasis)
	}

	return NewBasisForm(w, e.detOpts...)
}

// Dim returns the arity of the form, the rank of the underlying witness.
func (bf *BasisForm) Dim() int { return bf.w.Dim() }

// Module returns the module the form's vectors live on.
func (bf *BasisForm) Module() linear.Module { return bf.w.Module() }

// Eval applies the form: the determinant of the d×d matrix whose j-th
// column is the coordinate vector of vs[j] in the underlying witness.
//
// Behavior highlights:
//   - Eval(B's own family) = One.
//   - Swapping two slots negates the value; a repeated slot yields Zero.
//   - Linear in every slot separately.
//   - d = 0: the empty family evaluates to One (0×0 determinant).
//
// Errors:
//   - linear.ErrBadFamily  when len(vs) ≠ Dim() or a slot is nil.
//   - linear sentinels propagated from coordinate expansion.
func (bf *BasisForm) Eval(vs []linear.Vector) (ring.Element, error) {
	d := bf.w.Dim()
	if len(vs) != d {
		return nil, detErrorf(opEval, linear.ErrBadFamily)
	}

	a, err := matrix.NewDense(bf.w.Module().Ring(), d, d)
	if err != nil {
		return nil, detErrorf(opEval, err)
	}
	var col []ring.Element
	for j, v := range vs {
		if v == nil {
			return nil, detErrorf(opEval, linear.ErrBadFamily)
		}
		if col, err = bf.w.Coords(v); err != nil {
			return nil, detErrorf(opEval, err)
		}
		for i := 0; i < d; i++ {
			if err = a.Set(i, j, col[i]); err != nil {
				return nil, detErrorf(opEval, err)
			}
		}
	}

	val, err := matrix.Det(a, bf.detOpts...)
	if err != nil {
		return nil, detErrorf(opEval, err)
	}

	return val, nil
}

// IsBasis reports whether vs is itself a basis of the module: true exactly
// when Eval(vs) is a unit of the coefficient ring. A non-unit nonzero value
// (2 over ℤ, say) means "spans a full-rank sublattice but not the module",
// and the answer is false without error.
//
// Errors: Eval's errors, passed through already tagged.
func (bf *BasisForm) IsBasis(vs []linear.Vector) (bool, error) {
	val, err := bf.Eval(vs)
	if err != nil {
		// Eval already tagged the failure; no second wrap.
		return false, err
	}

	if _, err = bf.w.Module().Ring().Inv(val); err != nil {
		if errors.Is(err, ring.ErrNotUnit) {
			return false, nil
		}

		return false, detErrorf(opIsBasis, err)
	}

	return true, nil
}
