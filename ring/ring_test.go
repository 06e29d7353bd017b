package ring_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lindet/ring"
	"github.com/stretchr/testify/assert"
)

// TestIntegers_Arithmetic verifies exact ℤ arithmetic through the interface.
func TestIntegers_Arithmetic(t *testing.T) {
	zr := ring.Integers()

	a := zr.FromInt(2)
	b := zr.FromInt(3)

	assert.True(t, a.Mul(b).Equal(zr.FromInt(6)), "2*3 must be 6")
	assert.True(t, a.Add(b).Equal(zr.FromInt(5)), "2+3 must be 5")
	assert.True(t, a.Sub(b).Equal(zr.FromInt(-1)), "2-3 must be -1")
	assert.True(t, b.Neg().Equal(zr.FromInt(-3)), "-(3) must be -3")
	assert.True(t, zr.Zero().IsZero(), "Zero must report IsZero")
	assert.True(t, zr.One().IsOne(), "One must report IsOne")
	assert.False(t, zr.Trivial(), "ℤ is not the zero ring")
}

// TestIntegers_Inv accepts only ±1 as units of ℤ.
func TestIntegers_Inv(t *testing.T) {
	zr := ring.Integers()

	inv, err := zr.Inv(zr.FromInt(-1))
	assert.NoError(t, err, "-1 is a unit of ℤ")
	assert.True(t, inv.Equal(zr.FromInt(-1)), "-1 is its own inverse")

	_, err = zr.Inv(zr.FromInt(6))
	assert.ErrorIs(t, err, ring.ErrNotUnit, "6 must not be invertible in ℤ")

	_, err = zr.Inv(zr.Zero())
	assert.ErrorIs(t, err, ring.ErrNotUnit, "0 must not be invertible in ℤ")

	_, err = zr.Inv(nil)
	assert.ErrorIs(t, err, ring.ErrNilElement, "nil element must be rejected")
}

// TestRationals_FieldBehavior verifies ℚ inverses and fraction construction.
func TestRationals_FieldBehavior(t *testing.T) {
	qr := ring.Rationals()

	half := qr.FromFrac(1, 2)
	inv, err := qr.Inv(half)
	assert.NoError(t, err, "1/2 is a unit of ℚ")
	assert.True(t, inv.Equal(qr.FromInt(2)), "(1/2)^-1 must be 2")
	assert.True(t, half.Mul(inv).IsOne(), "x * x^-1 must be 1")

	_, err = qr.Inv(qr.Zero())
	assert.ErrorIs(t, err, ring.ErrNotUnit, "0 has no inverse even in a field")

	sum := qr.FromFrac(1, 3).Add(qr.FromFrac(1, 6))
	assert.True(t, sum.Equal(qr.FromFrac(1, 2)), "1/3 + 1/6 must be 1/2 exactly")
}

// TestModular_Arithmetic exercises ℤ/7ℤ including negative embedding.
func TestModular_Arithmetic(t *testing.T) {
	f7 := ring.Modular(7)

	a := f7.FromInt(5)
	b := f7.FromInt(4)
	assert.True(t, a.Add(b).Equal(f7.FromInt(2)), "5+4 must be 2 mod 7")
	assert.True(t, a.Mul(b).Equal(f7.FromInt(6)), "5*4 must be 6 mod 7")
	assert.True(t, a.Sub(b).Equal(f7.FromInt(1)), "5-4 must be 1 mod 7")
	assert.True(t, b.Sub(a).Equal(f7.FromInt(6)), "4-5 must be 6 mod 7")
	assert.True(t, a.Neg().Equal(f7.FromInt(2)), "-5 must be 2 mod 7")

	assert.True(t, f7.FromInt(-1).Equal(f7.FromInt(6)), "-1 must embed as 6 mod 7")
	assert.True(t, f7.FromInt(-14).IsZero(), "-14 must embed as 0 mod 7")
	assert.True(t, f7.FromInt(math.MinInt64).Equal(f7.FromInt(math.MinInt64%7+7)),
		"MinInt64 must reduce without overflow")
}

// TestModular_LargeModulus checks overflow-safety of Add/Mul near 2^64.
func TestModular_LargeModulus(t *testing.T) {
	// Largest uint64 prime; products and sums overflow 64 bits routinely.
	huge := ring.Modular(18446744073709551557)

	x := huge.FromInt(math.MaxInt64)
	sum := x.Add(x) // 2*(2^63-1) overflows int64 and crosses the modulus path
	assert.True(t, sum.Equal(x.Mul(huge.FromInt(2))), "x+x must agree with 2*x")

	inv, err := huge.Inv(x)
	assert.NoError(t, err, "nonzero residue of a prime modulus is a unit")
	assert.True(t, x.Mul(inv).IsOne(), "x * x^-1 must be 1 under the large prime")
}

// TestModular_Inv covers field, composite, and zero-divisor cases.
func TestModular_Inv(t *testing.T) {
	f7 := ring.Modular(7)
	inv, err := f7.Inv(f7.FromInt(3))
	assert.NoError(t, err, "3 is a unit mod 7")
	assert.True(t, inv.Equal(f7.FromInt(5)), "3*5 = 15 = 1 mod 7")

	z6 := ring.Modular(6)
	_, err = z6.Inv(z6.FromInt(2))
	assert.ErrorIs(t, err, ring.ErrNotUnit, "2 shares a factor with 6")
	inv, err = z6.Inv(z6.FromInt(5))
	assert.NoError(t, err, "5 is coprime to 6")
	assert.True(t, inv.Equal(z6.FromInt(5)), "5*5 = 25 = 1 mod 6")
}

// TestModular_ZeroRing pins the degenerate n=1 semantics: 0 == 1 and the
// single element is a unit.
func TestModular_ZeroRing(t *testing.T) {
	z1 := ring.Modular(1)

	assert.True(t, z1.Trivial(), "ℤ/1ℤ must report Trivial")
	assert.True(t, z1.One().IsZero(), "in the zero ring 1 == 0")
	assert.True(t, z1.Zero().IsOne(), "in the zero ring 0 == 1")
	assert.True(t, z1.Zero().Equal(z1.One()), "all elements are equal")

	inv, err := z1.Inv(z1.Zero())
	assert.NoError(t, err, "the unique element of the zero ring is a unit")
	assert.True(t, inv.IsZero(), "its inverse is itself")
}

// TestModular_PanicsOnZeroModulus treats Modular(0) as programmer error.
func TestModular_PanicsOnZeroModulus(t *testing.T) {
	assert.Panics(t, func() { ring.Modular(0) }, "modulus 0 must panic")
}

// TestRings_Comparable relies on == for ring identity across the library.
func TestRings_Comparable(t *testing.T) {
	assert.True(t, ring.Ring(ring.Integers()) == ring.Ring(ring.Integers()),
		"Integers() must compare equal to itself")
	assert.True(t, ring.Ring(ring.Modular(7)) == ring.Ring(ring.Modular(7)),
		"Modular(7) must compare equal to itself")
	assert.False(t, ring.Ring(ring.Modular(7)) == ring.Ring(ring.Modular(5)),
		"different moduli are different rings")
	assert.False(t, ring.Ring(ring.Integers()) == ring.Ring(ring.Rationals()),
		"ℤ and ℚ are different rings")
}

// TestMixedRings_Panic confirms the cross-ring misuse policy.
func TestMixedRings_Panic(t *testing.T) {
	zr := ring.Integers()
	f7 := ring.Modular(7)

	assert.Panics(t, func() { zr.FromInt(1).Add(f7.FromInt(1)) },
		"mixing ℤ with ℤ/7ℤ must panic")
	assert.Panics(t, func() { ring.Modular(5).FromInt(1).Mul(f7.FromInt(1)) },
		"mixing moduli must panic")
}

// TestUnit_GroupLaws checks Unit composition and reciprocal.
func TestUnit_GroupLaws(t *testing.T) {
	f7 := ring.Modular(7)

	u, err := ring.NewUnit(f7, f7.FromInt(3))
	assert.NoError(t, err, "3 is a unit mod 7")
	v, err := ring.NewUnit(f7, f7.FromInt(2))
	assert.NoError(t, err, "2 is a unit mod 7")

	prod := u.Mul(v)
	assert.True(t, prod.Val.Equal(f7.FromInt(6)), "3*2 must be 6")
	assert.True(t, prod.Val.Mul(prod.Inv).IsOne(), "product must stay a verified unit")

	rec := u.Recip()
	assert.True(t, rec.Val.Equal(u.Inv), "Recip must swap the pair")
	assert.True(t, u.Mul(rec).Val.IsOne(), "u * u^-1 must be the identity unit")

	_, err = ring.NewUnit(f7, f7.Zero())
	assert.ErrorIs(t, err, ring.ErrNotUnit, "0 must be rejected")
}
