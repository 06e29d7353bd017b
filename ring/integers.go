// SPDX-License-Identifier: MIT
// Package ring: the ring of integers ℤ on math/big.

package ring

import "math/big"

// IntRing is the ring of integers ℤ. The zero value is ready to use;
// obtain it via Integers(). IntRing is comparable: Integers() == Integers().
type IntRing struct{}

// Integers returns the ring ℤ with exact arbitrary-precision arithmetic.
// ℤ is commutative but not a field: the only units are +1 and −1, which is
// exactly what makes it the canonical stress test for basis-free determinants
// (invertible change-of-basis matrices over ℤ must be unimodular).
func Integers() IntRing { return IntRing{} }

// intElem wraps an immutable *big.Int. The pointee is never mutated after
// construction; every operation allocates a fresh big.Int.
type intElem struct {
	v *big.Int
}

// asInt asserts that x is an element of ℤ.
// Foreign or nil values are programmer errors and panic.
func asInt(x Element) intElem {
	if x == nil {
		panic(panicNilElement)
	}
	e, ok := x.(intElem)
	if !ok {
		panic(panicMixedRings)
	}

	return e
}

// Zero returns 0 ∈ ℤ.
func (IntRing) Zero() Element { return intElem{v: big.NewInt(0)} }

// One returns 1 ∈ ℤ.
func (IntRing) One() Element { return intElem{v: big.NewInt(1)} }

// FromInt embeds v into ℤ. Complexity: O(1).
func (IntRing) FromInt(v int64) Element { return intElem{v: big.NewInt(v)} }

// Inv returns the inverse of a unit of ℤ.
// Only +1 and −1 are invertible; everything else yields ErrNotUnit.
func (IntRing) Inv(e Element) (Element, error) {
	if e == nil {
		return nil, ErrNilElement
	}
	x := asInt(e)
	// |x| == 1 ⇔ x is a unit; a unit of ℤ is its own inverse.
	if x.v.CmpAbs(big.NewInt(1)) != 0 {
		return nil, ErrNotUnit
	}

	return intElem{v: new(big.Int).Set(x.v)}, nil
}

// Trivial reports false: ℤ has 0 ≠ 1.
func (IntRing) Trivial() bool { return false }

// String implements fmt.Stringer.
func (IntRing) String() string { return "ℤ" }

// Add returns receiver + x. Complexity: O(len).
func (e intElem) Add(x Element) Element {
	return intElem{v: new(big.Int).Add(e.v, asInt(x).v)}
}

// Sub returns receiver − x. Complexity: O(len).
func (e intElem) Sub(x Element) Element {
	return intElem{v: new(big.Int).Sub(e.v, asInt(x).v)}
}

// Neg returns −receiver. Complexity: O(len).
func (e intElem) Neg() Element {
	return intElem{v: new(big.Int).Neg(e.v)}
}

// Mul returns receiver · x. Complexity: O(len²) worst case (big.Int mul).
func (e intElem) Mul(x Element) Element {
	return intElem{v: new(big.Int).Mul(e.v, asInt(x).v)}
}

// IsZero reports receiver == 0.
func (e intElem) IsZero() bool { return e.v.Sign() == 0 }

// IsOne reports receiver == 1.
func (e intElem) IsOne() bool { return e.v.Cmp(big.NewInt(1)) == 0 }

// Equal reports receiver == x in ℤ.
func (e intElem) Equal(x Element) bool { return e.v.Cmp(asInt(x).v) == 0 }

// String renders the integer in base 10.
func (e intElem) String() string { return e.v.String() }
