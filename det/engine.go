// SPDX-License-Identifier: MIT
// Package det: the engine core. Det is total over all endomorphisms; the
// basis oracle decides which of the two branches (matrix view, fallback)
// computes the value.

package det

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lindet/linear"
	"github.com/katalvlaran/lindet/matrix"
	"github.com/katalvlaran/lindet/ring"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDet          = "Det"
	opKernelVector = "KernelVector"
	opEquivDet     = "EquivDet"
	opNewBasisForm = "NewBasisForm"
	opEval         = "Eval"
	opIsBasis      = "IsBasis"
)

// detErrorf wraps err with an operation tag, preserving the original error
// via %w. Keeps a stable "Op: underlying" shape across the package.
// Complexity: O(1).
func detErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Engine evaluates determinants of module endomorphisms. Engines are cheap;
// the interesting shared state is the witness Cache, which WithCache can
// spread across several engines. Construct with New — the zero value has no
// cache and is not usable.
type Engine struct {
	cache   *Cache
	detOpts []matrix.Option
}

// New builds an engine. Without WithCache the engine owns a private cache;
// WithDetOptions forwards kernel selectors to every matrix.Det call.
func New(opts ...Option) *Engine {
	o := gatherOptions(opts...)
	if o.cache == nil {
		o.cache = NewCache()
	}

	return &Engine{cache: o.cache, detOpts: o.detOpts}
}

// Det computes the determinant of the endomorphism f, exactly, over the
// ring of f's module.
//
// Implementation:
//   - Stage 1: fetch the module's basis verdict through the cache (one
//     oracle call per module, concurrent callers deduplicated).
//   - Stage 2: without a finite basis the documented fallback One is the
//     result — not an error. With one, render f through the witness's
//     matrix view and delegate to matrix.Det.
//
// Behavior highlights:
//   - Total: every endomorphism of every module has a determinant.
//   - Basis independent: any witness the oracle returns yields the same
//     value, so the choice is invisible to callers.
//   - The witness fetched in Stage 1 is threaded through the whole
//     evaluation; no re-fetch can observe a different basis mid-call.
//   - det(id) = 1, det(f∘g) = det(f)·det(g), det(0) = 0^d with 0^0 = 1,
//     det(c·f) = c^d·det(f); all exercised in tests.
//
// Inputs:
//   - f: non-nil endomorphism (any module, any commutative ring).
//
// Returns:
//   - ring.Element: det(f) in f.ModuleOf().Ring().
//
// Errors:
//   - linear.ErrNilMap     when f is nil.
//   - linear.ErrBadFamily  when the witness misbehaves structurally.
//
// Determinism:
//   - Fixed witness per module per cache; fixed kernel per engine options.
//
// Complexity:
//   - d map applications + d coordinate expansions + the matrix.Det cost
//     (factorial in d; module ranks are small by design).
//
// Notes:
//   - A fallback One and a genuine det = 1 are indistinguishable by value;
//     HasFiniteBasis answers which branch was taken.
func (e *Engine) Det(f *linear.Map) (ring.Element, error) {
	if f == nil {
		return nil, detErrorf(opDet, linear.ErrNilMap)
	}

	m := f.ModuleOf()
	w, ok := e.cache.witness(m)
	if !ok {
		// No finite basis: the engine answers One, never an error.
		return m.Ring().One(), nil
	}

	view, err := w.Matrix(f)
	if err != nil {
		return nil, detErrorf(opDet, err)
	}

	d, err := matrix.Det(view, e.detOpts...)
	if err != nil {
		return nil, detErrorf(opDet, err)
	}

	return d, nil
}

// Dim reports the basis cardinality of m, with ok = false when the module
// has no finite basis (or m is nil). Well-defined by witness invariance:
// every witness of one module has the same cardinality.
func (e *Engine) Dim(m linear.Module) (int, bool) {
	if m == nil {
		return 0, false
	}
	w, ok := e.cache.witness(m)
	if !ok {
		return 0, false
	}

	return w.Dim(), true
}

// HasFiniteBasis reports the oracle's verdict for m. This is how callers
// tell a fallback determinant One from a computed one.
func (e *Engine) HasFiniteBasis(m linear.Module) bool {
	if m == nil {
		return false
	}
	_, ok := e.cache.witness(m)

	return ok
}

// KernelVector returns a nonzero module vector annihilated by f — the
// computable face of "det = 0 means not injective" over a field.
//
// Implementation:
//   - Stage 1: witness fetch (ErrNoBasis without one); render f's view.
//   - Stage 2: matrix.NullVector on the view; reassemble the coordinate
//     answer as Σ x_i·e_i with the witness family.
//
// Errors:
//   - linear.ErrNilMap     when f is nil.
//   - ErrNoBasis           when f's module has no finite basis.
//   - ErrNonSingular       when the view has full column rank (over a
//     field: det(f) is a unit and the kernel is trivial).
//   - matrix.ErrNeedField  when elimination hits a non-unit pivot, so
//     singularity cannot be decided over this ring.
//
// Complexity: O(d³) elimination on the rendered view.
func (e *Engine) KernelVector(f *linear.Map) (linear.Vector, error) {
	if f == nil {
		return nil, detErrorf(opKernelVector, linear.ErrNilMap)
	}

	m := f.ModuleOf()
	w, ok := e.cache.witness(m)
	if !ok {
		return nil, detErrorf(opKernelVector, ErrNoBasis)
	}

	view, err := w.Matrix(f)
	if err != nil {
		return nil, detErrorf(opKernelVector, err)
	}

	coords, err := matrix.NullVector(view)
	if err != nil {
		if errors.Is(err, matrix.ErrFullRank) {
			return nil, detErrorf(opKernelVector, ErrNonSingular)
		}

		return nil, detErrorf(opKernelVector, err)
	}

	// Reassemble the abstract vector Σ coords[i]·e_i.
	fam := w.Family()
	v := m.Zero()
	for i, c := range coords {
		v = m.Add(v, m.Scale(c, fam[i]))
	}

	return v, nil
}

// ---------- Package-level conveniences (fresh engine per call) ----------

// Det evaluates with a one-shot engine: no memoization survives the call.
func Det(f *linear.Map, opts ...Option) (ring.Element, error) {
	return New(opts...).Det(f)
}

// Dim is the one-shot form of Engine.Dim.
func Dim(m linear.Module) (int, bool) { return New().Dim(m) }

// HasFiniteBasis is the one-shot form of Engine.HasFiniteBasis.
func HasFiniteBasis(m linear.Module) bool { return New().HasFiniteBasis(m) }

// KernelVector is the one-shot form of Engine.KernelVector.
func KernelVector(f *linear.Map, opts ...Option) (linear.Vector, error) {
	return New(opts...).KernelVector(f)
}
