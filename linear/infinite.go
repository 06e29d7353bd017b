// SPDX-License-Identifier: MIT
// Package linear: the countable direct sum ⊕ℕ R, a module with no finite
// basis. Its job in this library is to exercise the FindBasis failure path:
// the determinant engine must answer One for every endomorphism here.

package linear

import (
	"fmt"

	"github.com/katalvlaran/lindet/ring"
)

// InfiniteSumModule is ⊕ℕ R: vectors are finitely supported families over
// the index set 0, 1, 2, …, represented as map[int]ring.Element with no
// explicit zero values and no negative keys. All operations preserve that
// normalized form.
type InfiniteSumModule struct {
	rg ring.Ring
}

// InfiniteSum builds the countable direct sum over rg.
// Errors: ErrBadFamily when rg is nil.
func InfiniteSum(rg ring.Ring) (*InfiniteSumModule, error) {
	if rg == nil {
		return nil, linearErrorf(opInfiniteSum, ErrBadFamily)
	}

	return &InfiniteSumModule{rg: rg}, nil
}

// vec asserts the finite-support representation. Foreign types and negative
// indices are programmer errors and panic.
func (m *InfiniteSumModule) vec(v Vector) map[int]ring.Element {
	vv, ok := v.(map[int]ring.Element)
	if !ok {
		panic(panicForeignVector)
	}
	for i := range vv {
		if i < 0 {
			panic(panicForeignVector)
		}
	}

	return vv
}

// Ring returns the coefficient ring.
func (m *InfiniteSumModule) Ring() ring.Ring { return m.rg }

// Zero returns the empty-support vector.
func (m *InfiniteSumModule) Zero() Vector { return map[int]ring.Element{} }

// NewVec builds a vector from an explicit support map. The input is copied
// and normalized: zero values are dropped.
// Errors: ErrBadIndex for negative indices, ErrBadFamily for nil values.
func (m *InfiniteSumModule) NewVec(support map[int]ring.Element) (Vector, error) {
	out := make(map[int]ring.Element, len(support))
	for i, x := range support {
		if i < 0 {
			return nil, linearErrorf(opNewVec, ErrBadIndex)
		}
		if x == nil {
			return nil, linearErrorf(opNewVec, ErrBadFamily)
		}
		if x.IsZero() {
			continue
		}
		out[i] = x
	}

	return out, nil
}

// Gen returns the generator e_i (One at index i, zero elsewhere).
// Errors: ErrBadIndex when i is negative.
func (m *InfiniteSumModule) Gen(i int) (Vector, error) {
	if i < 0 {
		return nil, linearErrorf(opGen, ErrBadIndex)
	}

	return map[int]ring.Element{i: m.rg.One()}, nil
}

// Add returns a + b; cancelling entries disappear from the support.
func (m *InfiniteSumModule) Add(a, b Vector) Vector {
	av, bv := m.vec(a), m.vec(b)
	out := make(map[int]ring.Element, len(av)+len(bv))
	for i, x := range av {
		out[i] = x
	}
	for i, y := range bv {
		x, ok := out[i]
		if !ok {
			out[i] = y
			continue
		}
		s := x.Add(y)
		if s.IsZero() {
			delete(out, i) // cancellation shrinks the support
		} else {
			out[i] = s
		}
	}

	return out
}

// Neg returns -v. Negation never zeroes a nonzero entry, so the support is
// unchanged.
func (m *InfiniteSumModule) Neg(v Vector) Vector {
	vv := m.vec(v)
	out := make(map[int]ring.Element, len(vv))
	for i, x := range vv {
		out[i] = x.Neg()
	}

	return out
}

// Scale returns c·v. Zero divisors may shrink the support (2·3 = 0 in ℤ/6ℤ).
func (m *InfiniteSumModule) Scale(c ring.Element, v Vector) Vector {
	if c == nil {
		panic(panicNilScalar)
	}
	vv := m.vec(v)
	out := make(map[int]ring.Element, len(vv))
	var p ring.Element
	for i, x := range vv {
		if p = c.Mul(x); !p.IsZero() {
			out[i] = p
		}
	}

	return out
}

// Equal reports equality of normalized supports.
func (m *InfiniteSumModule) Equal(a, b Vector) bool {
	av, bv := m.vec(a), m.vec(b)
	if len(av) != len(bv) {
		return false
	}
	for i, x := range av {
		y, ok := bv[i]
		if !ok || !x.Equal(y) {
			return false
		}
	}

	return true
}

// FindBasis reports that no finite basis is available. Note the oracle may
// under-report: over the trivial ring this module happens to be zero and a
// finite basis exists, but answering false stays legal, and the downstream
// fallback determinant One is correct there anyway.
func (m *InfiniteSumModule) FindBasis() (*Witness, bool) { return nil, false }

// String names the module, e.g. "⊕ℕ ℤ".
func (m *InfiniteSumModule) String() string { return fmt.Sprintf("⊕ℕ %s", m.rg) }

// Shift returns the endomorphism e_i ↦ e_{i+k}. Entries shifted below index
// zero vanish, so both directions are legal maps: Shift(1) is injective but
// not surjective, Shift(-1) the other way around.
func (m *InfiniteSumModule) Shift(k int) *Map {
	return &Map{mod: m, apply: func(v Vector) Vector {
		vv := m.vec(v)
		out := make(map[int]ring.Element, len(vv))
		for i, x := range vv {
			if i+k >= 0 {
				out[i+k] = x
			}
		}

		return out
	}}
}

// Diagonal returns the endomorphism scaling slot i by weights(i). A weights
// function returning nil panics inside Apply (programmer error).
// Errors: ErrNilMap when weights is nil.
func (m *InfiniteSumModule) Diagonal(weights func(int) ring.Element) (*Map, error) {
	if weights == nil {
		return nil, linearErrorf(opDiagonal, ErrNilMap)
	}

	return &Map{mod: m, apply: func(v Vector) Vector {
		vv := m.vec(v)
		out := make(map[int]ring.Element, len(vv))
		var w, p ring.Element
		for i, x := range vv {
			if w = weights(i); w == nil {
				panic(panicNilScalar)
			}
			if p = w.Mul(x); !p.IsZero() {
				out[i] = p
			}
		}

		return out
	}}, nil
}
