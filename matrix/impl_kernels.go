// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling and matrix-vector products — all exact over the
// operand ring. All functions perform strict fail-fast validation and return
// clear errors on ring or dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels (signatures) used across the package.
//   - Define operation tags and shared helpers for determinism and error reporting.
//
// Notes:
//   - Determinant/elimination kernels live in dedicated files (impl_det.go,
//     impl_elimination.go); conjugation kernels in conjugation.go.
//   - All kernels must use central validators and return plain sentinels or
//     wrapped via matrixErrorf at the facade.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lindet/ring"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd            = "Add"
	opSub            = "Sub"
	opMul            = "Mul"
	opTranspose      = "Transpose"
	opScale          = "Scale"
	opMatVec         = "MatVec"
	opEqual          = "Equal"
	opDet            = "Det"
	opRank           = "Rank"
	opInverse        = "Inverse"
	opNullVector     = "NullVector"
	opReindex        = "Reindex"
	opInversePair    = "InversePairCheck"
	opIndexBijection = "IndexBijection"
	opConjugateDet   = "ConjugateDet"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across
// facades. Use only when err != nil to avoid wrapping a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a ± b. Inputs must share ring and shape.
// A fresh Dense is allocated; operands are not mutated. Internal helper for
// Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinaryCompatible(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Behavior highlights:
//   - Deterministic loop orders (flat in fast-path; i→j in fallback).
//   - Single result allocation; elements are immutable so no aliasing hazards.
//
// Inputs:
//   - a, b: conformable matrices (non-nil; same ring; same rows/cols).
//   - negate: false for Add, true for Sub (callers must enforce).
//   - opTag: opAdd for Add, opSub for Sub (for error wrapping).
//
// Returns:
//   - Matrix: newly allocated Dense with the result.
//   - error : validation/allocation failures wrapped with opAdd/opSub.
//
// Errors:
//   - ErrNilMatrix, ErrRingMismatch, ErrDimensionMismatch (from validation).
//
// Determinism:
//   - Fast-path: single flat slice walk 0..(r*c−1).
//   - Fallback: fixed nested loops i=0..r−1, j=0..c−1.
//
// Complexity:
//   - Time O(r*c) element operations, Space O(r*c) for the new result.
func addSub(a, b Matrix, negate bool, opTag string) (Matrix, error) {
	// Validate ring and shapes match
	if err := ValidateBinaryCompatible(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(a.Ring(), rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				if negate {
					res.data[idx] = da.data[idx].Sub(db.data[idx])
				} else {
					res.data[idx] = da.data[idx].Add(db.data[idx])
				}
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int            // loop iterators (deterministic order)
	var av, bv ring.Element // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Read a(i,j).
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Read b(i,j).
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Combine and write result(i,j).
			if negate {
				av = av.Sub(bv)
			} else {
				av = av.Add(bv)
			}
			if err = res.Set(i, j, av); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors: ErrNilMatrix, ErrRingMismatch, ErrDimensionMismatch.
// Determinism: flat 0..n-1 for *Dense; i→j for the generic path.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh Dense result.
//
// Errors: ErrNilMatrix, ErrRingMismatch, ErrDimensionMismatch.
// Determinism: flat 0..n-1 for *Dense; i→j for the generic path.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, true, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil), same ring, inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip
//     zeros; otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loops; no temporary tiles; one allocation for C.
//   - Zero-skip on A[i,k] is exact over any ring (0·x = 0, x + 0 = x).
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c), same ring as a.
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix, ErrRingMismatch, ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c) element operations, Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(a.Ring(), aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current ring.Element
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av.IsZero() {
						continue // exact zero-skip: 0·x contributes nothing
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] = res.data[rowOffsetR+j].Add(av.Mul(db.data[rowOffsetB+j]))
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = a.Ring().Zero()
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av.IsZero() {
					continue // exact zero-skip
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current = current.Add(av.Mul(bv)) // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path copies *Dense data via flat indexing; fallback uses At/Set.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use contiguous slice mapping; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Determinism:
//   - Fixed traversal orders independent of data values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(m.Ring(), cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var v ring.Element
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Scale returns a new matrix whose elements are alpha · m[i,j].
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path multiplies a *Dense backing slice in a single flat loop.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); reject nil alpha. Allocate Dense(rows, cols).
//   - Stage 2: If *Dense, flat multiply; else generic i→j At/Set scaling.
//
// Errors:
//   - ErrNilMatrix, ErrNilElement.
//
// Determinism:
//   - Fixed loop orders independent of values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - alpha must belong to m's ring; a foreign element panics at the first
//     product (ring package policy for mixed-ring arithmetic).
func Scale(m Matrix, alpha ring.Element) (Matrix, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if alpha == nil {
		return nil, matrixErrorf(opScale, ErrNilElement)
	}

	// Allocate result Dense
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(m.Ring(), rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = alpha.Mul(dm.data[idx])
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var i, j int
	var v ring.Element
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, alpha.Mul(v)); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// MatVec computes y = m · x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols(); no nil entries in x.
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []ring.Element) ([]ring.Element, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Validate x is well-formed and matches the number of columns.
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Prepare result vector y with length rows.
	rows, cols := m.Rows(), m.Cols()
	zero := m.Ring().Zero()
	y := make([]ring.Element, rows) // allocate exactly rows outputs

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int // indices and row base offset
		var acc, xv ring.Element
		for i = 0; i < d.r; i++ { // iterate rows deterministically
			acc = zero                // reset accumulator per row
			base = i * d.c            // compute flat base offset for row i
			for j = 0; j < d.c; j++ { // iterate columns
				xv = x[j]       // read x(j) once per iteration
				if !xv.IsZero() { // exact zero-skip
					acc = acc.Add(d.data[base+j].Mul(xv)) // accumulate a(i,j)*x(j)
				}
			}
			y[i] = acc // store y(i)
		}

		return y, nil // return on fast-path
	}

	// Fallback: interface-based dot-products via At.
	var i, j int        // loop indices
	var mv ring.Element // temporary to hold m(i,j)
	var err error
	for i = 0; i < rows; i++ { // iterate rows
		y[i] = zero                // initialize y(i) to zero
		for j = 0; j < cols; j++ { // iterate columns
			mv, err = m.At(i, j) // read m(i,j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] = y[i].Add(mv.Mul(x[j])) // accumulate
		}
	}

	return y, nil // return computed vector
}

// Equal reports whether a and b have the same ring, shape and entries.
//
// Contract: both non-nil; ring mismatch is an error, entry inequality is not.
// Determinism: fixed i→j scan with early exit on the first differing cell.
// Complexity: Time O(r*c), Space O(1).
func Equal(a, b Matrix) (bool, error) {
	// Validate ring and shape compatibility; a mismatch is misuse, not "false".
	if err := ValidateBinaryCompatible(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}

	// Fast-path: both *Dense → flat scan.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := 0; idx < len(da.data); idx++ {
				if !da.data[idx].Equal(db.data[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Fallback: interface path.
	var i, j int
	var av, bv ring.Element
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, err = a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opEqual, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opEqual, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if !av.Equal(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsIdentity reports whether m is the identity matrix of its ring.
//
// Contract: m non-nil and square (rectangular input errors).
// The empty 0×0 matrix is the identity of the zero module.
// Complexity: Time O(n²), Space O(1).
func IsIdentity(m Matrix) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	n := m.Rows()
	var i, j int
	var v ring.Element
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return false, matrixErrorf(opEqual, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if i == j {
				if !v.IsOne() {
					return false, nil
				}
			} else if !v.IsZero() {
				return false, nil
			}
		}
	}

	return true, nil
}
