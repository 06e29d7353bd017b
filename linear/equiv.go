// SPDX-License-Identifier: MIT
// Package linear: isomorphisms between modules, carried as explicit pairs.

package linear

// Equiv is a linear isomorphism e : M ≃ N given by an explicit pair of
// mutually inverse functions. As everywhere in this package the pair is
// trusted: Forward∘Backward = id and Backward∘Forward = id are the caller's
// claim, and basis-independence downstream is what makes the trust safe.
type Equiv struct {
	dom, cod Module
	fwd, bwd func(Vector) Vector
}

// NewEquiv builds an isomorphism from dom to cod out of a forward function
// and its two-sided inverse.
// Errors: ErrNilMap when any of the four components is nil.
func NewEquiv(dom, cod Module, fwd, bwd func(Vector) Vector) (*Equiv, error) {
	if dom == nil || cod == nil || fwd == nil || bwd == nil {
		return nil, linearErrorf(opNewEquiv, ErrNilMap)
	}

	return &Equiv{dom: dom, cod: cod, fwd: fwd, bwd: bwd}, nil
}

// Domain returns M, the source module.
func (e *Equiv) Domain() Module { return e.dom }

// Codomain returns N, the target module.
func (e *Equiv) Codomain() Module { return e.cod }

// Forward applies e to a vector of the domain.
func (e *Equiv) Forward(v Vector) Vector { return e.fwd(v) }

// Backward applies e⁻¹ to a vector of the codomain.
func (e *Equiv) Backward(v Vector) Vector { return e.bwd(v) }

// Inverse returns e⁻¹ : N ≃ M by swapping the legs. O(1), no copying.
func (e *Equiv) Inverse() *Equiv {
	return &Equiv{dom: e.cod, cod: e.dom, fwd: e.bwd, bwd: e.fwd}
}

// AsMap reinterprets a self-equivalence e : M ≃ M as an endomorphism, the
// form the determinant engine consumes.
// Errors: ErrModuleMismatch when domain and codomain differ.
func (e *Equiv) AsMap() (*Map, error) {
	if e.dom != e.cod {
		return nil, linearErrorf(opAsMap, ErrModuleMismatch)
	}

	return &Map{mod: e.dom, apply: e.fwd}, nil
}

// Conjugate transports an endomorphism along an isomorphism:
// given e : M ≃ N and f : M → M, the result is e∘f∘e⁻¹ : N → N.
// Determinants survive the trip; that invariance is tested, not assumed.
// Errors: ErrNilMap; ErrModuleMismatch when f does not act on e's domain.
func Conjugate(e *Equiv, f *Map) (*Map, error) {
	if e == nil || f == nil {
		return nil, linearErrorf(opConjugate, ErrNilMap)
	}
	if f.mod != e.dom {
		return nil, linearErrorf(opConjugate, ErrModuleMismatch)
	}

	return &Map{
		mod:   e.cod,
		apply: func(v Vector) Vector { return e.fwd(f.apply(e.bwd(v))) },
	}, nil
}
