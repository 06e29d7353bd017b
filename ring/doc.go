// Package ring defines the commutative-ring abstraction the rest of the
// library computes over, plus exact, ready-to-use ring implementations.
//
// 🚀 What is ring?
//
//	Every determinant in this library is an element of some commutative
//	ring R. This package pins down what the engine needs from R:
//	  • Element — one ring value: Add, Sub, Neg, Mul, IsZero, IsOne, Equal
//	  • Ring    — the ring itself: Zero, One, FromInt, Inv (units only)
//	  • Unit    — an invertible element paired with its inverse
//
// ✨ Shipped rings:
//   - Integers()  — ℤ on math/big, exact at any magnitude
//   - Rationals() — ℚ on math/big, a field of characteristic 0
//   - Modular(n)  — ℤ/nℤ on uint64; prime n gives a field, n=2 gives
//     characteristic 2, and n=1 gives the zero ring (0 = 1)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lindet/ring"
//
//	zr := ring.Integers()
//	a := zr.FromInt(2)
//	b := zr.FromInt(3)
//	c := a.Mul(b)            // 6, exact
//	_, err := zr.Inv(c)      // ErrNotUnit: 6 is not invertible in ℤ
//
// Contracts:
//
//   - Elements of different rings must never be mixed in one operation;
//     implementations type-assert their own element type and panic on
//     foreign values (programmer error, same policy as option misuse).
//   - Elements are immutable values; every operation returns a fresh one.
//   - Ring values are comparable: two Ring values are the same ring iff
//     they compare ==. Modular(7) == Modular(7), Modular(7) != Modular(5).
//
// See example_test.go for runnable walkthroughs.
package ring
