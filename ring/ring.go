// SPDX-License-Identifier: MIT
// Package ring: core abstractions (Element, Ring) shared by every arithmetic
// backend. Concrete rings live in dedicated files (integers.go, rationals.go,
// modular.go) per the package conventions; errors live in errors.go.

package ring

// Internal panic messages (no magic strings). Panics fire only on programmer
// errors: mixing elements of different rings or constructing a ring from a
// nonsensical modulus. User-triggered conditions return sentinels instead.
const (
	panicMixedRings   = "ring: mixed elements of different rings"
	panicZeroModulus  = "ring: Modular: modulus must be >= 1"
	panicNilElement   = "ring: nil element"
	panicForeignValue = "ring: element does not belong to this ring"
)

// Element is a single value of some commutative ring.
//
// All operations are pure: the receiver and arguments are never mutated and
// a fresh Element is returned. Implementations accept only elements of their
// own ring and panic on foreign values (programmer error).
//
// Complexity notes: all methods are expected O(1) for fixed-size backends
// (Modular) and O(len) for arbitrary-precision backends (Integers, Rationals).
type Element interface {
	// Add returns the ring sum receiver + x.
	Add(x Element) Element

	// Sub returns the ring difference receiver − x.
	Sub(x Element) Element

	// Neg returns the additive inverse −receiver.
	Neg() Element

	// Mul returns the ring product receiver · x.
	Mul(x Element) Element

	// IsZero reports whether the element equals the additive identity.
	IsZero() bool

	// IsOne reports whether the element equals the multiplicative identity.
	// In the zero ring (Modular(1)) both IsZero and IsOne hold at once.
	IsOne() bool

	// Equal reports ring equality with x.
	Equal(x Element) bool

	// String renders the element for diagnostics and test failure messages.
	String() string
}

// Ring describes a commutative ring with identity: the factory side of the
// arithmetic. A Ring value is comparable; two values denote the same ring
// iff they compare ==.
type Ring interface {
	// Zero returns the additive identity 0.
	Zero() Element

	// One returns the multiplicative identity 1.
	One() Element

	// FromInt embeds an int64 into the ring (the canonical ℤ → R map).
	FromInt(v int64) Element

	// Inv returns the multiplicative inverse of e, or ErrNotUnit when e is
	// not invertible. Passing nil returns ErrNilElement. In the zero ring
	// every element is a unit (0·0 = 0 = 1), so Inv never fails there.
	Inv(e Element) (Element, error)

	// Trivial reports whether the ring collapses to a single element (0 = 1).
	// Callers that reason about cardinality MUST branch on this first.
	Trivial() bool

	// String names the ring for diagnostics, e.g. "ℤ", "ℚ", "ℤ/7ℤ".
	String() string
}
