// SPDX-License-Identifier: MIT
// Package matrix: the conjugation toolkit. A two-sided inverse pair of
// rectangular matrices (p: m×n, q: n×m with p·q = I_m and q·p = I_n) is the
// matrix form of "two bases index the same module". Over a nontrivial ring
// such a pair forces m == n, so any two finite bases agree in size; over the
// trivial ring (0 == 1) every equation holds vacuously and size proves
// nothing, which is why the bijection kernel refuses that ring outright.

package matrix

import "github.com/katalvlaran/lindet/ring"

// IsInversePair reports whether p·q and q·p are both identity matrices.
//
// Contract: p, q non-nil, same ring, with transposed shapes (p: m×n, q: n×m);
// incompatible shapes are misuse (error), a failed identity check is not.
// Determinism: two multiplications and two fixed scans.
// Complexity: Time O(m·n·(m+n)) element operations, Space O(m²+n²).
func IsInversePair(p, q Matrix) (bool, error) {
	if err := ValidateMulCompatible(p, q); err != nil {
		return false, matrixErrorf(opInversePair, err)
	}
	if err := ValidateMulCompatible(q, p); err != nil {
		return false, matrixErrorf(opInversePair, err)
	}

	// p·q must be I_m.
	pq, err := Mul(p, q)
	if err != nil {
		return false, matrixErrorf(opInversePair, err)
	}
	ok, err := IsIdentity(pq)
	if err != nil {
		return false, matrixErrorf(opInversePair, err)
	}
	if !ok {
		return false, nil
	}

	// q·p must be I_n.
	qp, err := Mul(q, p)
	if err != nil {
		return false, matrixErrorf(opInversePair, err)
	}
	ok, err = IsIdentity(qp)
	if err != nil {
		return false, matrixErrorf(opInversePair, err)
	}

	return ok, nil
}

// InversePairCheck asserts that (p, q) is a two-sided inverse pair,
// returning ErrNotInversePair when either product misses the identity.
// Thin assertion form of IsInversePair for callers that require the pair.
// Complexity: as IsInversePair.
func InversePairCheck(p, q Matrix) error {
	ok, err := IsInversePair(p, q)
	if err != nil {
		return err
	}
	if !ok {
		return matrixErrorf(opInversePair, ErrNotInversePair)
	}

	return nil
}

// IndexBijection derives the canonical relabeling of basis index sets from a
// two-sided inverse pair. This is the compatibility lemma in computable form:
// over a nontrivial ring, p: m×n and q: n×m with p·q = I_m, q·p = I_n force
// m == n, and the index sets are identified by the identity bijection 0..n-1.
//
// Implementation:
//   - Stage 1: refuse the trivial ring (ErrTrivialRing) — when 0 == 1 every
//     matrix equation holds and cardinality arguments are void; callers must
//     branch on ring.Trivial() before reasoning about index sets.
//   - Stage 2: reject m != n outright (ErrIndexMismatch): over a nontrivial
//     ring no two-sided pair with mismatched index sets exists, so the claim
//     is refuted by shape alone, before any multiplication.
//   - Stage 3: verify the pair (ErrNotInversePair on failure) and return the
//     identity bijection [0, 1, …, n-1].
//
// Behavior highlights:
//   - The returned slice is freshly allocated; callers may permute it freely
//     and transport matrices along it with Reindex.
//
// Errors:
//   - ErrTrivialRing, ErrNotInversePair, ErrIndexMismatch, plus validation
//     sentinels from IsInversePair.
//
// Determinism: pure function of the inputs.
// Complexity: dominated by the pair check, Time O(m·n·(m+n)).
func IndexBijection(p, q Matrix) ([]int, error) {
	if err := ValidateNotNil(p); err != nil {
		return nil, matrixErrorf(opIndexBijection, err)
	}
	// Cardinality reasoning is meaningless over the zero ring.
	if p.Ring().Trivial() {
		return nil, matrixErrorf(opIndexBijection, ErrTrivialRing)
	}
	// A two-sided pair over a nontrivial ring forces square shapes, so a
	// rectangular claim is refuted before any multiplication.
	if p.Rows() != p.Cols() {
		return nil, matrixErrorf(opIndexBijection, ErrIndexMismatch)
	}
	if err := InversePairCheck(p, q); err != nil {
		return nil, err
	}

	n := p.Rows()
	bij := make([]int, n)
	for i := 0; i < n; i++ {
		bij[i] = i
	}

	return bij, nil
}

// validatePermutation checks that perm is a permutation of 0..n-1.
// Returns ErrBadPermutation on wrong length, range escape, or duplicates.
// Complexity: Time O(n), Space O(n).
func validatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return ErrBadPermutation
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return ErrBadPermutation
		}
		seen[p] = true
	}

	return nil
}

// Reindex transports a square matrix along a bijection of its index set:
// out[i][j] = a[perm[i]][perm[j]]. Relabeling rows and columns by the SAME
// permutation conjugates by a permutation matrix, so Det(Reindex(a, perm))
// equals Det(a) for every permutation — the sign cancels against itself.
//
// Contract: a non-nil square; perm a permutation of 0..a.Rows()-1.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrBadPermutation.
// Determinism: fixed i→j copy order.
// Complexity: Time O(n²), Space O(n²).
func Reindex(a Matrix, perm []int) (Matrix, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opReindex, err)
	}
	n := a.Rows()
	if err := validatePermutation(perm, n); err != nil {
		return nil, matrixErrorf(opReindex, err)
	}

	out, err := NewDense(a.Ring(), n, n)
	if err != nil {
		return nil, matrixErrorf(opReindex, err)
	}
	var i, j int
	var v ring.Element
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = a.At(perm[i], perm[j])
			if err != nil {
				return nil, matrixErrorf(opReindex, err)
			}
			out.data[i*n+j] = v
		}
	}

	return out, nil
}

// ConjugateDet returns det(p·a·q) for a two-sided inverse pair (p, q),
// computed as Det(a) — the conjugation law det(M·N·M⁻¹) = det(N) applied as
// a fast path instead of forming the triple product.
//
// Implementation:
//   - Stage 1: shape checks (a must be p.Cols × q.Rows) and the full
//     InversePairCheck; a pair that fails the check gets ErrNotInversePair
//     rather than a silently wrong shortcut.
//   - Stage 2: Det(a, opts...) — by det commutation,
//     det(p·a·q) = det(a·q·p) = det(a·I) = det(a).
//
// Behavior highlights:
//   - Works for the rectangular generalization too: when p: m×n, q: n×m is a
//     genuine pair, det((p·a·q): m×m) = det(a: n×n) even before knowing
//     m == n (which the nontrivial-ring lemma then guarantees anyway).
//
// Errors:
//   - Validation sentinels, ErrDimensionMismatch (a misshaped), ErrNotInversePair.
//
// Determinism: inherited from Det.
// Complexity: pair check O(m·n·(m+n)) + Det cost on n×n.
func ConjugateDet(p, a, q Matrix, opts ...Option) (ring.Element, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opConjugateDet, err)
	}
	if err := ValidateMulCompatible(p, a); err != nil {
		return nil, matrixErrorf(opConjugateDet, err)
	}
	if err := ValidateMulCompatible(a, q); err != nil {
		return nil, matrixErrorf(opConjugateDet, err)
	}
	if err := InversePairCheck(p, q); err != nil {
		return nil, err
	}

	// det(p·a·q) = det(a): evaluate the cheap side.
	return Det(a, opts...)
}
