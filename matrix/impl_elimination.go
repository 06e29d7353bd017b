// SPDX-License-Identifier: MIT
// Package matrix: unit-pivot Gaussian elimination and its consumers — Rank,
// Inverse and NullVector. Elimination divides, so unlike the determinant
// kernels these are total only when the pivots it meets are units: always
// over a field, opportunistically elsewhere, ErrNeedField otherwise.

package matrix

import "github.com/katalvlaran/lindet/ring"

// rowsOf copies a materialized Dense into mutable per-row slices.
// Elimination swaps and rewrites rows; slice-of-rows keeps that O(1)/O(c).
// Complexity: O(r*c).
func rowsOf(d *Dense) [][]ring.Element {
	rows := make([][]ring.Element, d.r)
	for i := 0; i < d.r; i++ {
		row := make([]ring.Element, d.c)
		copy(row, d.data[i*d.c:(i+1)*d.c])
		rows[i] = row
	}

	return rows
}

// reduce brings rows into row echelon form over columns [0, maxCol), using
// only unit pivots, and returns the pivot column list in ascending order.
// With full=true it produces the reduced form (Gauss–Jordan): pivot entries
// are normalized to one and eliminated above as well as below.
//
// Implementation:
//   - Stage 1: per column, scan rows at/below the pivot row for a UNIT entry;
//     a column with nonzero entries but no unit aborts with ErrNeedField
//     (over a field every nonzero element is a unit, so this never fires).
//   - Stage 2: swap the pivot row up, scale it by the pivot inverse, then
//     subtract multiples from the rows below (and above when full=true).
//
// Behavior highlights:
//   - Row operations span the ENTIRE row width, so augmented columns beyond
//     maxCol are transformed consistently (Inverse relies on this).
//   - Over the trivial ring every entry IsZero, so no pivots are found and
//     the reduction is a no-op with zero pivots. Cardinality arguments do
//     not apply there; callers special-case Trivial() where it matters.
//
// Determinism:
//   - Fixed col→row scan order; the first unit entry wins the pivot.
//
// Complexity:
//   - Time O(r·c·w) element operations (w = row width), Space O(r) for the
//     pivot bookkeeping; rows are mutated in place.
func reduce(rg ring.Ring, rows [][]ring.Element, maxCol int, full bool) ([]int, error) {
	r := len(rows)
	pivots := make([]int, 0, r)
	pivotRow := 0

	var col, i, j, sel int
	var sawNonzero bool
	var inv, factor ring.Element
	var err error
	for col = 0; col < maxCol && pivotRow < r; col++ {
		// Find a unit pivot at or below pivotRow in this column.
		sel = -1
		sawNonzero = false
		for i = pivotRow; i < r; i++ {
			if rows[i][col].IsZero() {
				continue
			}
			sawNonzero = true
			if _, err = rg.Inv(rows[i][col]); err == nil {
				sel = i

				break
			}
		}
		if sel < 0 {
			// Nonzero column with no unit entry: elimination cannot divide.
			if sawNonzero {
				return nil, ErrNeedField
			}

			continue // all-zero column contributes no pivot
		}

		// Swap the selected row into pivot position.
		rows[pivotRow], rows[sel] = rows[sel], rows[pivotRow]

		// Normalize the pivot row so the pivot entry becomes one.
		inv, _ = rg.Inv(rows[pivotRow][col]) // invertibility proven above
		for j = col; j < len(rows[pivotRow]); j++ {
			rows[pivotRow][j] = inv.Mul(rows[pivotRow][j])
		}

		// Eliminate the column from every other row (below; above if full).
		for i = 0; i < r; i++ {
			if i == pivotRow || (!full && i < pivotRow) {
				continue
			}
			factor = rows[i][col]
			if factor.IsZero() {
				continue
			}
			for j = col; j < len(rows[i]); j++ {
				rows[i][j] = rows[i][j].Sub(factor.Mul(rows[pivotRow][j]))
			}
		}

		pivots = append(pivots, col)
		pivotRow++
	}

	return pivots, nil
}

// Rank returns the row rank of m, computed by unit-pivot elimination.
//
// Contract: m non-nil; rectangular shapes welcome.
// Total over fields; over other rings it succeeds exactly when every pivot
// column it meets offers a unit entry, and returns ErrNeedField otherwise.
// Determinism: fixed elimination order.
// Complexity: Time O(r·c·min(r,c)) element operations, Space O(r·c).
func Rank(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	pivots, err := reduce(d.rg, rowsOf(d), d.c, false)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return len(pivots), nil
}

// Inverse computes m⁻¹ by Gauss–Jordan elimination on the augmented [m | I].
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); build the n×2n augmented row set.
//   - Stage 2: reduce the LEFT n columns to the identity with unit pivots;
//     the right half then holds m⁻¹. Fewer than n pivots means rank
//     deficiency: ErrSingular.
//
// Behavior highlights:
//   - Pivot search is confined to the left half, so rank deficiency surfaces
//     as the clean ErrSingular rather than an artifact of the augmentation.
//   - The 0×0 matrix is its own inverse (the zero module's identity).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrSingular  (rank < n).
//   - ErrNeedField (a nonzero pivot column with no unit entry).
//
// Determinism: fixed elimination order.
// Complexity: Time O(n³) element operations, Space O(n²).
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := d.r
	rg := d.rg

	// Build augmented rows [m | I] of width 2n.
	zero, one := rg.Zero(), rg.One()
	rows := make([][]ring.Element, n)
	var i, j int
	for i = 0; i < n; i++ {
		row := make([]ring.Element, 2*n)
		copy(row, d.data[i*n:(i+1)*n])
		for j = n; j < 2*n; j++ {
			row[j] = zero
		}
		row[n+i] = one
		rows[i] = row
	}

	// Jordan-reduce the left half only; row ops carry the right half along.
	pivots, err := reduce(rg, rows, n, true)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if len(pivots) < n {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	// Extract the right half as the inverse.
	inv, err := NewDense(rg, n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], rows[i][n:])
	}

	return inv, nil
}

// NullVector returns a nonzero vector x with m·x = 0, or ErrFullRank when the
// kernel is trivial. This is the computable face of "det = 0 over a field
// means not injective": the witness vector exhibits the collapse.
//
// Implementation:
//   - Stage 1: reduce m to reduced row echelon form with unit pivots.
//   - Stage 2: pick the first non-pivot (free) column f; set x[f] = 1 and
//     x[pivotCol] = −R[pivotRow][f] for each pivot. All other slots are zero.
//
// Behavior highlights:
//   - The constructed x satisfies R·x = 0 by the RREF pivot structure, and
//     row operations preserve the kernel, so m·x = 0 exactly.
//   - Full column rank (every column a pivot) yields ErrFullRank.
//
// Errors:
//   - ErrNilMatrix (validation), ErrNeedField (non-unit pivot), ErrFullRank.
//
// Determinism: the first free column is always chosen.
// Complexity: Time O(r·c·min(r,c)), Space O(r·c).
func NullVector(m Matrix) ([]ring.Element, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNullVector, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opNullVector, err)
	}
	rg := d.rg
	rows := rowsOf(d)
	pivots, err := reduce(rg, rows, d.c, true)
	if err != nil {
		return nil, matrixErrorf(opNullVector, err)
	}
	if len(pivots) == d.c {
		return nil, matrixErrorf(opNullVector, ErrFullRank)
	}

	// Locate the first free column.
	isPivot := make(map[int]int, len(pivots)) // pivot column -> pivot row
	for r, c := range pivots {
		isPivot[c] = r
	}
	free := -1
	for c := 0; c < d.c; c++ {
		if _, ok := isPivot[c]; !ok {
			free = c

			break
		}
	}

	// Assemble the kernel vector.
	x := make([]ring.Element, d.c)
	zero := rg.Zero()
	for c := 0; c < d.c; c++ {
		x[c] = zero
	}
	x[free] = rg.One()
	for c, r := range isPivot {
		x[c] = rows[r][free].Neg()
	}

	return x, nil
}
