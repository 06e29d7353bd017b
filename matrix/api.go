// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or algebraic policy of underlying kernels.
//   - All arithmetic stays inside one ring.Ring; facades preserve this contract.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Determinant/RankOf/InverseOf are discoverability aliases for Det/Rank/Inverse.
//   - Adjugate satisfies m·Adjugate(m) = Det(m)·I over ANY commutative ring.

package matrix

import "github.com/katalvlaran/lindet/ring"

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols over rg.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero fill.
func NewZeros(rg ring.Ring, rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rg, rows, cols)
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	// Delegate to polymorphic clone on the concrete implementation.
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape and ring as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
func ZerosLike(m Matrix) (*Dense, error) {
	// Read shape once and call NewDense with the same ring and dimensions.
	return NewDense(m.Ring(), m.Rows(), m.Cols()) // errors (if any) bubble up
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	// Ensure the input is square using the centralized validator.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err) // wrap with call-site tag
	}
	// Construct the identity of matching dimension.
	return NewIdentity(m.Ring(), m.Rows()) // returns (*Dense, error)
}

// ScalarMatrix returns alpha·I_n: alpha on the diagonal, zeros elsewhere.
// Det(ScalarMatrix(rg, n, alpha)) = alpha^n with the 0^0 = 1 convention.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
//
// AI-Hints: Use to probe homogeneity, Det(alpha·m) = alpha^n·Det(m).
func ScalarMatrix(rg ring.Ring, n int, alpha ring.Element) (*Dense, error) {
	if alpha == nil {
		return nil, matrixErrorf("ScalarMatrix", ErrNilElement)
	}
	// Allocate an n×n zero matrix via the constructor.
	d, err := NewDense(rg, n, n)
	if err != nil {
		return nil, matrixErrorf("ScalarMatrix", err)
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		d.data[i*n+i] = alpha
	}

	// Return the scalar matrix.
	return d, nil
}

// ---------- Linear Algebra (facades map 1:1 to kernels; O(rc) unless noted) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
//
// AI-Hints: Prefer passing *Dense operands for single flat-loop fast-path.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
//
// AI-Hints: Prefer Dense to unlock the cache-friendly fast path.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ. Det(mᵀ) = Det(m).
// Complexity: O(rc).
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: alpha·m, element-wise.
// Complexity: O(rc).
func ScaleBy(m Matrix, alpha ring.Element) (Matrix, error) { return Scale(m, alpha) }

// MatVecMul is an alias for MatVec: y = m·x.
// Complexity: O(rc).
func MatVecMul(m Matrix, x []ring.Element) ([]ring.Element, error) { return MatVec(m, x) }

// Determinant is an alias for Det with the default algorithm.
// Complexity: see Det.
//
// AI-Hints: Pass WithLeibniz() to Det directly when cross-checking kernels.
func Determinant(m Matrix) (ring.Element, error) { return Det(m) }

// RankOf is an alias for Rank: number of unit pivots under row reduction.
// Complexity: O(min(r,c)·r·c). Requires invertible pivots; see ErrNeedField.
func RankOf(m Matrix) (int, error) { return Rank(m) }

// InverseOf is an alias for Inverse: returns m^{-1} via [m|I] reduction.
// Complexity: O(n^3).
func InverseOf(m Matrix) (Matrix, error) { return Inverse(m) }

// ---------- Cofactor calculus (compositions over Det; division-free) ----------

// Trace returns the sum of diagonal entries of a square matrix.
// Trace(a·b) = Trace(b·a); complements Det as a conjugation invariant.
// Complexity: O(n) element additions.
func Trace(m Matrix) (ring.Element, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("Trace", err)
	}
	rg := m.Ring()
	acc := rg.Zero()
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return nil, matrixErrorf("Trace", err)
		}
		acc = acc.Add(v)
	}

	// Empty diagonal sums to Zero; Trace of a 0×0 matrix is 0.
	return acc, nil
}

// Minor returns the determinant of m with row i and column j deleted.
// Contract: m square with n ≥ 1; 0 ≤ i, j < n.
// Complexity: O(n^2) submatrix copy + Det cost on (n-1)×(n-1).
func Minor(m Matrix, i, j int) (ring.Element, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("Minor", err)
	}
	n := m.Rows()
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, matrixErrorf("Minor", ErrOutOfRange)
	}

	// Copy the surviving (n-1)×(n-1) block with fixed row→col order.
	sub, err := NewDense(m.Ring(), n-1, n-1)
	if err != nil {
		return nil, matrixErrorf("Minor", err)
	}
	var sr int // next free row slot in sub
	for r := 0; r < n; r++ {
		if r == i {
			continue
		}
		var sc int
		for c := 0; c < n; c++ {
			if c == j {
				continue
			}
			v, aerr := m.At(r, c)
			if aerr != nil {
				return nil, matrixErrorf("Minor", aerr)
			}
			sub.data[sr*(n-1)+sc] = v
			sc++
		}
		sr++
	}

	// Delegate to the canonical determinant kernel.
	return Det(sub)
}

// CofactorAt returns (−1)^(i+j) · Minor(m, i, j).
// Complexity: as Minor.
func CofactorAt(m Matrix, i, j int) (ring.Element, error) {
	minor, err := Minor(m, i, j)
	if err != nil {
		return nil, err // Minor already tagged the error
	}
	if (i+j)%2 == 1 {
		return minor.Neg(), nil
	}

	return minor, nil
}

// Adjugate returns the classical adjugate adj(m): the transpose of the
// cofactor matrix. Over ANY commutative ring, m·adj(m) = adj(m)·m = Det(m)·I,
// so adj gives division-free inverses whenever Det(m) is a unit.
//
// Contract: m square (0×0 yields the empty adjugate).
// Determinism: fixed i→j cofactor order.
// Complexity: O(n^2) determinants of size n−1; exponential with the default
// cofactor kernel. Intended for small n and algebraic identity checks.
//
// AI-Hints: Combine with ring.Ring.Inv(Det(m)) to invert over non-fields
// (e.g. unimodular integer matrices) where Inverse reports ErrNeedField.
func Adjugate(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("Adjugate", err)
	}
	n := m.Rows()
	out, err := NewDense(m.Ring(), n, n)
	if err != nil {
		return nil, matrixErrorf("Adjugate", err)
	}
	var i, j int
	var cof ring.Element
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			cof, err = CofactorAt(m, i, j)
			if err != nil {
				return nil, err
			}
			// Transposed placement: adj[j][i] = cofactor(i, j).
			out.data[j*n+i] = cof
		}
	}

	return out, nil
}

// Pow returns m raised to a non-negative integer power by repeated Mul.
// Det(Pow(m, k)) = Det(m)^k. Pow(m, 0) is the identity of matching size.
//
// Contract: m square; k ≥ 0 (negative exponents are ErrOutOfRange — use
// InverseOf first when m is invertible).
// Complexity: O(k·n^3).
func Pow(m Matrix, k int) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("Pow", err)
	}
	if k < 0 {
		return nil, matrixErrorf("Pow", ErrOutOfRange)
	}

	// Start from I and fold k factors deterministically left to right.
	acc, err := IdentityLike(m)
	if err != nil {
		return nil, matrixErrorf("Pow", err)
	}
	var out Matrix = acc
	for step := 0; step < k; step++ {
		out, err = Mul(out, m)
		if err != nil {
			return nil, matrixErrorf("Pow", err)
		}
	}

	return out, nil
}
