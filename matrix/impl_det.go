// SPDX-License-Identifier: MIT
// Package matrix: exact determinant kernels over any commutative ring.
// Two interchangeable strategies live here — cofactor (Laplace) expansion and
// the Leibniz permutation sum — selected via functional options (options.go).
// Both are total: no division, no pivoting, no field assumption.

package matrix

import "github.com/katalvlaran/lindet/ring"

// toDense materializes any Matrix into a fresh *Dense for flat-slice access.
// A *Dense input is cloned (kernels must never mutate caller data in place).
// Complexity: O(r*c).
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := NewDense(m.Ring(), m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v ring.Element
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Det computes the determinant of a square matrix over its ring, exactly.
// Works over ANY commutative ring: integers, rationals, modular residues,
// zero rings; no division is ever performed.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); resolve options; materialize *Dense.
//   - Stage 2: dispatch to the configured kernel — cofactor expansion along
//     the first row (default) or the Leibniz permutation sum (WithLeibniz).
//
// Behavior highlights:
//   - Det of the 0×0 matrix is One (empty product); the zero module's only
//     endomorphism is invertible with determinant one.
//   - Zero-skip: vanishing entries prune whole cofactor/permutation branches,
//     which is exact over any ring.
//   - Both strategies agree on every input; WithLeibniz exists as an
//     independent cross-check and for property tests.
//
// Inputs:
//   - m: non-nil square matrix (n×n, n ≥ 0).
//   - opts: optional WithCofactor/WithLeibniz/WithAlgorithm selectors.
//
// Returns:
//   - ring.Element: det(m), an element of m.Ring().
//
// Errors:
//   - ErrNilMatrix          (from ValidateSquareNonNil when m is nil).
//   - ErrDimensionMismatch  (from ValidateSquareNonNil when m is rectangular).
//
// Determinism:
//   - Fixed expansion order (first row, left to right) and fixed permutation
//     order (lexicographic by column choice); identical results across runs.
//
// Complexity:
//   - Cofactor: O(n!) element multiplications worst case, heavily pruned by
//     zero entries; Space O(n²) for the working copy plus O(n) recursion.
//   - Leibniz: Θ(n·n!) worst case with the same zero pruning.
//
// Notes:
//   - Witness matrices in this library are small (module ranks, not datasets);
//     factorial cost is the price of ring-generality and is fine at that scale.
//   - For fields, elimination-based shortcuts exist but would not be total
//     over ℤ or ℤ/6ℤ; totality wins here.
func Det(m Matrix, opts ...Option) (ring.Element, error) {
	// Validate input non-nil and square.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDet, err)
	}
	// Resolve effective options.
	o := gatherOptions(opts...)
	// Materialize a working *Dense copy for flat indexing.
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opDet, err)
	}

	// Dispatch to the configured kernel.
	if o.algorithm == DetLeibniz {
		return leibnizDet(d), nil
	}

	// Default: cofactor expansion over the full column index set.
	cols := make([]int, d.r)
	for i := range cols {
		cols[i] = i
	}

	return cofactorDet(d, 0, cols), nil
}

// cofactorDet expands det along row `row` restricted to the active columns.
// The submatrix is never materialized: recursion passes the surviving column
// index set, keeping allocations to one small slice per frame.
//
// Contract: d non-nil; row + len(cols) == d.r (callers maintain the running
// square shape). len(cols) == 0 returns One — the empty product.
// Determinism: columns expand left to right; signs alternate (+,−,+,…).
// Complexity: T(k) = k·T(k−1) + O(k) for k active columns.
func cofactorDet(d *Dense, row int, cols []int) ring.Element {
	size := len(cols)
	// Base: the empty matrix has determinant One (neutral for products).
	if size == 0 {
		return d.rg.One()
	}
	// Base: a single cell is its own determinant.
	if size == 1 {
		return d.data[row*d.c+cols[0]]
	}

	acc := d.rg.Zero()
	base := row * d.c // flat offset of the expansion row
	var a, term ring.Element
	for idx, cj := range cols {
		a = d.data[base+cj]
		if a.IsZero() {
			continue // zero entry kills the whole cofactor branch
		}
		// Build the surviving column set (all active columns except cj).
		sub := make([]int, 0, size-1)
		sub = append(sub, cols[:idx]...)
		sub = append(sub, cols[idx+1:]...)
		// Cofactor term with alternating sign (−1)^idx.
		term = a.Mul(cofactorDet(d, row+1, sub))
		if idx%2 == 1 {
			term = term.Neg()
		}
		acc = acc.Add(term)
	}

	return acc
}

// leibnizDet evaluates the permutation-sum definition
// det = Σ_σ sgn(σ) · Π_i a[i,σ(i)] by recursive column selection.
//
// Sign tracking: choosing the j-th smallest remaining column introduces
// exactly j inversions, so the running parity flips when j is odd.
// Determinism: permutations are visited in lexicographic column order.
// Complexity: Θ(n·n!) worst case; zero entries prune entire subtrees.
func leibnizDet(d *Dense) ring.Element {
	n := d.r
	acc := d.rg.Zero()

	// Active column pool, consumed one pick per row.
	cols := make([]int, n)
	for i := range cols {
		cols[i] = i
	}

	var rec func(row int, remaining []int, negative bool, partial ring.Element)
	rec = func(row int, remaining []int, negative bool, partial ring.Element) {
		// A complete permutation contributes its signed product.
		if row == n {
			if negative {
				acc = acc.Add(partial.Neg())
			} else {
				acc = acc.Add(partial)
			}

			return
		}
		var a ring.Element
		for j, c := range remaining {
			a = d.data[row*n+c]
			if a.IsZero() {
				continue // the whole monomial vanishes
			}
			// Remaining columns after consuming index j.
			next := make([]int, 0, len(remaining)-1)
			next = append(next, remaining[:j]...)
			next = append(next, remaining[j+1:]...)
			rec(row+1, next, negative != (j%2 == 1), partial.Mul(a))
		}
	}
	rec(0, cols, false, d.rg.One())

	return acc
}
