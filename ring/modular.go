// SPDX-License-Identifier: MIT
// Package ring: modular arithmetic ℤ/nℤ on uint64, full 64-bit modulus range.

package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// ModRing is the quotient ring ℤ/nℤ. Obtain it via Modular(n).
// ModRing is comparable: Modular(7) == Modular(7) and != Modular(5).
type ModRing struct {
	n uint64 // modulus, >= 1
}

// Modular returns the ring ℤ/nℤ for modulus n ≥ 1.
// Panics on n == 0 (programmer error, same policy as option constructors).
//
// Behavior highlights:
//   - n prime ⇒ a field (ℤ/7ℤ is the usual small test field).
//   - n == 2 ⇒ a field of characteristic 2, where −1 == 1.
//   - n == 1 ⇒ the zero ring: 0 == 1, every element is a unit, Trivial()
//     reports true. Cardinality arguments never apply here; callers must
//     branch on Trivial() before reasoning about index sets.
//   - composite n ⇒ zero divisors exist (2·3 == 0 in ℤ/6ℤ); a determinant can
//     be a nonzero nonunit.
func Modular(n uint64) ModRing {
	if n == 0 {
		panic(panicZeroModulus)
	}

	return ModRing{n: n}
}

// Modulus returns n.
func (r ModRing) Modulus() uint64 { return r.n }

// modElem is a residue v ∈ [0, n). The modulus travels with the element so
// cross-modulus mixing is detected at the first operation.
type modElem struct {
	n uint64 // modulus copied from the owning ring
	v uint64 // canonical representative, always < n
}

// asMod asserts that x is a residue with the receiver's modulus.
// Foreign or nil values are programmer errors and panic.
func (r ModRing) asMod(x Element) modElem {
	if x == nil {
		panic(panicNilElement)
	}
	e, ok := x.(modElem)
	if !ok || e.n != r.n {
		panic(panicMixedRings)
	}

	return e
}

// Zero returns 0 ∈ ℤ/nℤ.
func (r ModRing) Zero() Element { return modElem{n: r.n, v: 0} }

// One returns 1 ∈ ℤ/nℤ (which is 0 when n == 1).
func (r ModRing) One() Element { return modElem{n: r.n, v: 1 % r.n} }

// FromInt embeds v into ℤ/nℤ with the canonical representative in [0, n).
// Negative inputs reduce to their positive residue. Complexity: O(1).
func (r ModRing) FromInt(v int64) Element {
	if v >= 0 {
		return modElem{n: r.n, v: uint64(v) % r.n}
	}
	// Magnitude of a negative int64 without overflowing at MinInt64.
	mag := uint64(-(v + 1)) + 1
	red := mag % r.n
	if red != 0 {
		red = r.n - red
	}

	return modElem{n: r.n, v: red}
}

// Inv returns the modular inverse of e, or ErrNotUnit when gcd(e, n) ≠ 1.
// The extended-gcd runs through big.Int.ModInverse for full-range moduli.
// In the zero ring (n == 1) the single element 0 is a unit: 0·0 == 0 == 1.
func (r ModRing) Inv(e Element) (Element, error) {
	if e == nil {
		return nil, ErrNilElement
	}
	x := r.asMod(e)
	if r.n == 1 {
		return modElem{n: 1, v: 0}, nil
	}
	inv := new(big.Int).ModInverse(
		new(big.Int).SetUint64(x.v),
		new(big.Int).SetUint64(r.n),
	)
	if inv == nil {
		return nil, ErrNotUnit
	}

	return modElem{n: r.n, v: inv.Uint64()}, nil
}

// Trivial reports whether this is the zero ring (n == 1, where 0 == 1).
func (r ModRing) Trivial() bool { return r.n == 1 }

// String implements fmt.Stringer.
func (r ModRing) String() string { return fmt.Sprintf("ℤ/%dℤ", r.n) }

// eq panics unless x shares the receiver's modulus, then returns it.
func (e modElem) eq(x Element) modElem {
	if x == nil {
		panic(panicNilElement)
	}
	o, ok := x.(modElem)
	if !ok || o.n != e.n {
		panic(panicMixedRings)
	}

	return o
}

// Add returns (receiver + x) mod n. Overflow-safe for any 64-bit modulus:
// a carry out of the 64-bit sum implies the true sum exceeds n exactly once,
// and the wrapping subtraction s−n recovers the residue.
func (e modElem) Add(x Element) Element {
	o := e.eq(x)
	s, carry := bits.Add64(e.v, o.v, 0)
	if carry == 1 || s >= e.n {
		s -= e.n // wrapping subtraction is exact here
	}

	return modElem{n: e.n, v: s}
}

// Sub returns (receiver − x) mod n using wrapping arithmetic.
func (e modElem) Sub(x Element) Element {
	o := e.eq(x)
	d := e.v - o.v // wraps when e.v < o.v
	if e.v < o.v {
		d += e.n // wraps back to the positive residue
	}

	return modElem{n: e.n, v: d}
}

// Neg returns (−receiver) mod n.
func (e modElem) Neg() Element {
	if e.v == 0 {
		return e
	}

	return modElem{n: e.n, v: e.n - e.v}
}

// Mul returns (receiver · x) mod n via a 128-bit intermediate product, so the
// full uint64 modulus range stays exact. bits.Div64 cannot trap: a, b < n
// forces the high product word below n.
func (e modElem) Mul(x Element) Element {
	o := e.eq(x)
	hi, lo := bits.Mul64(e.v, o.v)
	_, rem := bits.Div64(hi, lo, e.n)

	return modElem{n: e.n, v: rem}
}

// IsZero reports receiver == 0 mod n.
func (e modElem) IsZero() bool { return e.v == 0 }

// IsOne reports receiver == 1 mod n; in the zero ring that is every element.
func (e modElem) IsOne() bool { return e.v == 1%e.n }

// Equal reports equality of residues.
func (e modElem) Equal(x Element) bool { return e.eq(x).v == e.v }

// String renders the canonical representative.
func (e modElem) String() string { return fmt.Sprintf("%d", e.v) }
