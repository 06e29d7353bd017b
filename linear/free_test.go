// Package linear_test: free-module arithmetic, change-of-basis witnesses
// and matrix-backed endomorphisms.
package linear_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lindet/linear"
	"github.com/katalvlaran/lindet/matrix"
	"github.com/katalvlaran/lindet/ring"
)

// ---------- 1. Construction and vector arithmetic ----------

func TestFree_ConstructionErrors(t *testing.T) {
	t.Parallel()

	_, err := linear.Free(nil, 2)
	require.ErrorIs(t, err, linear.ErrBadFamily)
	_, err = linear.Free(ring.Integers(), -1)
	require.ErrorIs(t, err, linear.ErrBadIndex)
}

func TestFree_Basics(t *testing.T) {
	t.Parallel()

	z := ring.Integers()
	mod := MustFree(t, z, 3)
	require.Equal(t, ring.Ring(z), mod.Ring())
	require.Equal(t, 3, mod.Rank())
	require.Equal(t, "ℤ^3", mod.String())

	// The zero module is the rank-0 case.
	null := MustFree(t, ring.Rationals(), 0)
	require.Equal(t, 0, null.Rank())
	require.True(t, null.Equal(null.Zero(), null.Zero()))
}

func TestFree_Arithmetic(t *testing.T) {
	t.Parallel()

	m6 := ring.Modular(6)
	mod := MustFree(t, m6, 2)

	a := MustVec(t, mod, 4, 5)
	b := MustVec(t, mod, 3, 4)
	AssertVecEq(t, mod, MustVec(t, mod, 1, 3), mod.Add(a, b)) // 7≡1, 9≡3

	AssertVecEq(t, mod, MustVec(t, mod, 2, 1), mod.Neg(a)) // −4≡2, −5≡1

	// Zero divisors show up in scaled entries: 2·3 ≡ 0 (mod 6).
	AssertVecEq(t, mod, MustVec(t, mod, 0, 2), mod.Scale(m6.FromInt(2), MustVec(t, mod, 3, 1)))

	require.True(t, mod.Equal(a, MustVec(t, mod, 4, 5)))
	require.False(t, mod.Equal(a, b))
}

func TestFree_ForeignVectorPanics(t *testing.T) {
	t.Parallel()

	mod := MustFree(t, ring.Integers(), 2)
	ExpectPanic(t, func() { mod.Add(MustVec(t, mod, 1, 2), "not a vector") })
	ExpectPanic(t, func() { mod.Neg([]ring.Element{}) }) // wrong arity
	ExpectPanic(t, func() { mod.Scale(nil, MustVec(t, mod, 1, 2)) })
}

func TestFromInts_Arity(t *testing.T) {
	t.Parallel()

	mod := MustFree(t, ring.Integers(), 2)
	_, err := mod.FromInts(1, 2, 3)
	require.ErrorIs(t, err, linear.ErrBadFamily)
}

// ---------- 2. WitnessFromPair ----------

func TestWitnessFromPair_UnimodularOverIntegers(t *testing.T) {
	t.Parallel()

	z := ring.Integers()
	mod := MustFree(t, z, 2)
	b, err := matrix.FromInts(z, [][]int64{{2, 1}, {1, 1}})
	require.NoError(t, err)
	binv, err := matrix.FromInts(z, [][]int64{{1, -1}, {-1, 2}})
	require.NoError(t, err)

	w, err := linear.WitnessFromPair(mod, b, binv)
	require.NoError(t, err)
	require.Equal(t, 2, w.Dim())

	// Family vectors are the columns of b in standard coordinates.
	v0, err := w.Vec(0)
	require.NoError(t, err)
	AssertVecEq(t, mod, MustVec(t, mod, 2, 1), v0)

	// Coordinates go through the inverse: coords(e_0) = binv·e_0.
	coords, err := w.Coords(MustVec(t, mod, 1, 0))
	require.NoError(t, err)
	AssertElemEq(t, z.FromInt(1), coords[0])
	AssertElemEq(t, z.FromInt(-1), coords[1])

	// The rendered endomorphism is the conjugate binv·A·b; its determinant
	// matches the standard witness's (basis independence at witness level).
	f := MustMapFrom(t, mod, [][]int64{{2, 0}, {1, 3}})
	CompareInts(t, [][]int64{{-1, -2}, {6, 6}}, MustMatrixOf(t, w, f))

	alt, err := matrix.Det(MustMatrixOf(t, w, f))
	require.NoError(t, err)
	std, err := matrix.Det(MustMatrixOf(t, MustWitness(t, mod), f))
	require.NoError(t, err)
	AssertElemEq(t, std, alt) // both are 6
}

func TestWitnessFromPair_ComputedInverse(t *testing.T) {
	t.Parallel()

	// Over a field the inverse may be omitted; elimination supplies it.
	q := ring.Rationals()
	mod := MustFree(t, q, 2)
	b, err := matrix.FromInts(q, [][]int64{{2, 1}, {1, 1}})
	require.NoError(t, err)

	w, err := linear.WitnessFromPair(mod, b, nil)
	require.NoError(t, err)

	coords, err := w.Coords(MustVec(t, mod, 1, 0))
	require.NoError(t, err)
	AssertElemEq(t, q.FromInt(1), coords[0])
	AssertElemEq(t, q.FromInt(-1), coords[1])

	// Over ℤ the same request hits a non-unit pivot.
	zmod := MustFree(t, ring.Integers(), 2)
	zb, err := matrix.FromInts(ring.Integers(), [][]int64{{2, 1}, {1, 1}})
	require.NoError(t, err)
	_, err = linear.WitnessFromPair(zmod, zb, nil)
	require.ErrorIs(t, err, matrix.ErrNeedField)
}

func TestWitnessFromPair_Errors(t *testing.T) {
	t.Parallel()

	z := ring.Integers()
	mod := MustFree(t, z, 2)
	id2, err := matrix.NewIdentity(z, 2)
	require.NoError(t, err)

	_, err = linear.WitnessFromPair(nil, id2, id2)
	require.ErrorIs(t, err, linear.ErrBadFamily)

	_, err = linear.WitnessFromPair(mod, nil, id2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	wrongShape, err := matrix.NewIdentity(z, 3)
	require.NoError(t, err)
	_, err = linear.WitnessFromPair(mod, wrongShape, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = linear.WitnessFromPair(mod, id2, wrongShape)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	wrongRing, err := matrix.NewIdentity(ring.Rationals(), 2)
	require.NoError(t, err)
	_, err = linear.WitnessFromPair(mod, wrongRing, nil)
	require.ErrorIs(t, err, matrix.ErrRingMismatch)
	_, err = linear.WitnessFromPair(mod, id2, wrongRing)
	require.ErrorIs(t, err, matrix.ErrRingMismatch)

	// A claimed pair that is no pair.
	notInv, err := matrix.FromInts(z, [][]int64{{2, 0}, {0, 1}})
	require.NoError(t, err)
	_, err = linear.WitnessFromPair(mod, notInv, id2)
	require.ErrorIs(t, err, matrix.ErrNotInversePair)

	// A singular basis matrix cannot be inverted over ℚ either.
	qmod := MustFree(t, ring.Rationals(), 2)
	sing, err := matrix.FromInts(ring.Rationals(), [][]int64{{1, 2}, {2, 4}})
	require.NoError(t, err)
	_, err = linear.WitnessFromPair(qmod, sing, nil)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// The witness must keep working when the caller mutates the supplied
// inverse afterwards: construction snapshots everything it needs.
func TestWitnessFromPair_CapturesInverse(t *testing.T) {
	t.Parallel()

	z := ring.Integers()
	mod := MustFree(t, z, 2)
	b, err := matrix.FromInts(z, [][]int64{{2, 1}, {1, 1}})
	require.NoError(t, err)
	binv, err := matrix.FromInts(z, [][]int64{{1, -1}, {-1, 2}})
	require.NoError(t, err)

	w, err := linear.WitnessFromPair(mod, b, binv)
	require.NoError(t, err)

	require.NoError(t, binv.Set(0, 0, z.FromInt(99))) // damage the original

	coords, err := w.Coords(MustVec(t, mod, 1, 0))
	require.NoError(t, err)
	AssertElemEq(t, z.FromInt(1), coords[0]) // still the snapshot's answer
}

// ---------- 3. MapFromMatrix ----------

func TestMapFromMatrix_AppliesMatrix(t *testing.T) {
	t.Parallel()

	z := ring.Integers()
	mod := MustFree(t, z, 2)
	f := MustMapFrom(t, mod, [][]int64{
		{1, 2},
		{3, 4},
	})

	AssertVecEq(t, mod, MustVec(t, mod, 8, 18), f.Apply(MustVec(t, mod, 2, 3)))
	require.Equal(t, linear.Module(mod), f.ModuleOf())
}

func TestMapFromMatrix_Errors(t *testing.T) {
	t.Parallel()

	z := ring.Integers()
	mod := MustFree(t, z, 2)
	id2, err := matrix.NewIdentity(z, 2)
	require.NoError(t, err)

	_, err = linear.MapFromMatrix(nil, id2)
	require.ErrorIs(t, err, linear.ErrNilMap)
	_, err = linear.MapFromMatrix(mod, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(z, 2, 3)
	require.NoError(t, err)
	_, err = linear.MapFromMatrix(mod, rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	larger, err := matrix.NewIdentity(z, 3)
	require.NoError(t, err)
	_, err = linear.MapFromMatrix(mod, larger)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	qid, err := matrix.NewIdentity(ring.Rationals(), 2)
	require.NoError(t, err)
	_, err = linear.MapFromMatrix(mod, qid)
	require.ErrorIs(t, err, matrix.ErrRingMismatch)
}

func TestMapFromMatrix_CapturesMatrix(t *testing.T) {
	t.Parallel()

	z := ring.Integers()
	mod := MustFree(t, z, 2)
	a, err := matrix.FromInts(z, [][]int64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	f, err := linear.MapFromMatrix(mod, a)
	require.NoError(t, err)

	require.NoError(t, a.Set(0, 0, z.FromInt(99))) // later writes must not leak in

	v := MustVec(t, mod, 1, 1)
	AssertVecEq(t, mod, v, f.Apply(v))
}
