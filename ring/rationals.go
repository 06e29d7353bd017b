// SPDX-License-Identifier: MIT
// Package ring: the field of rationals ℚ on math/big.

package ring

import "math/big"

// RatRing is the field of rational numbers ℚ. The zero value is ready to
// use; obtain it via Rationals(). RatRing is comparable.
type RatRing struct{}

// Rationals returns the field ℚ with exact arbitrary-precision arithmetic.
// Every nonzero element is a unit and the characteristic is 0, so ℚ exercises
// the field-only paths (Rank, Inverse, KernelVector) and the sign-sensitive
// alternating laws that characteristic 2 hides.
func Rationals() RatRing { return RatRing{} }

// ratElem wraps an immutable *big.Rat, always in lowest terms (big.Rat
// normalizes on construction). The pointee is never mutated.
type ratElem struct {
	v *big.Rat
}

// asRat asserts that x is an element of ℚ.
// Foreign or nil values are programmer errors and panic.
func asRat(x Element) ratElem {
	if x == nil {
		panic(panicNilElement)
	}
	e, ok := x.(ratElem)
	if !ok {
		panic(panicMixedRings)
	}

	return e
}

// Zero returns 0 ∈ ℚ.
func (RatRing) Zero() Element { return ratElem{v: new(big.Rat)} }

// One returns 1 ∈ ℚ.
func (RatRing) One() Element { return ratElem{v: big.NewRat(1, 1)} }

// FromInt embeds v into ℚ as v/1. Complexity: O(1).
func (RatRing) FromInt(v int64) Element { return ratElem{v: big.NewRat(v, 1)} }

// FromFrac builds the rational p/q in lowest terms.
// q must be nonzero; big.Rat panics on a zero denominator (programmer error).
func (RatRing) FromFrac(p, q int64) Element { return ratElem{v: big.NewRat(p, q)} }

// Inv returns 1/e for nonzero e and ErrNotUnit for zero.
func (RatRing) Inv(e Element) (Element, error) {
	if e == nil {
		return nil, ErrNilElement
	}
	x := asRat(e)
	if x.v.Sign() == 0 {
		return nil, ErrNotUnit
	}

	return ratElem{v: new(big.Rat).Inv(x.v)}, nil
}

// Trivial reports false: ℚ has 0 ≠ 1.
func (RatRing) Trivial() bool { return false }

// String implements fmt.Stringer.
func (RatRing) String() string { return "ℚ" }

// Add returns receiver + x.
func (e ratElem) Add(x Element) Element {
	return ratElem{v: new(big.Rat).Add(e.v, asRat(x).v)}
}

// Sub returns receiver − x.
func (e ratElem) Sub(x Element) Element {
	return ratElem{v: new(big.Rat).Sub(e.v, asRat(x).v)}
}

// Neg returns −receiver.
func (e ratElem) Neg() Element {
	return ratElem{v: new(big.Rat).Neg(e.v)}
}

// Mul returns receiver · x.
func (e ratElem) Mul(x Element) Element {
	return ratElem{v: new(big.Rat).Mul(e.v, asRat(x).v)}
}

// IsZero reports receiver == 0.
func (e ratElem) IsZero() bool { return e.v.Sign() == 0 }

// IsOne reports receiver == 1.
func (e ratElem) IsOne() bool { return e.v.Cmp(big.NewRat(1, 1)) == 0 }

// Equal reports receiver == x in ℚ.
func (e ratElem) Equal(x Element) bool { return e.v.Cmp(asRat(x).v) == 0 }

// String renders the rational as "p/q" (or "p" when q == 1).
func (e ratElem) String() string { return e.v.RatString() }
