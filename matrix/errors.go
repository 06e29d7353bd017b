// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> ring mismatch -> dimension mismatch -> algebraic
// failures (ErrSingular, ErrNeedField) -> conjugation contract violations.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative rows
	// or columns). Zero dimensions are legal: the 0×0 matrix exists and its
	// determinant is one.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, Mul where a.Cols != b.Rows, or a
	// square-only kernel (Det) fed a rectangular matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilRing indicates a constructor was invoked with a nil ring.Ring.
	ErrNilRing = errors.New("matrix: nil ring")

	// ErrNilElement indicates a nil ring.Element was written into a matrix.
	ErrNilElement = errors.New("matrix: nil element value")

	// ErrRingMismatch indicates operands whose rings differ. Elements of
	// distinct rings never mix; the check is by ring comparison, not per cell.
	ErrRingMismatch = errors.New("matrix: operands belong to different rings")

	// ErrSingular is returned by Inverse (and KernelVector callers) when the
	// matrix has no inverse over its ring.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNeedField signals that elimination hit a nonzero pivot with no ring
	// inverse. Rank/Inverse are total over fields; over ℤ or ℤ/6ℤ they fail
	// with this sentinel instead of silently dividing.
	ErrNeedField = errors.New("matrix: pivot is not a unit; elimination needs a field")

	// ErrFullRank is returned by NullVector when the kernel is trivial: a
	// matrix of full column rank annihilates only the zero vector.
	ErrFullRank = errors.New("matrix: full column rank; kernel is trivial")

	// ErrNotInversePair is returned by the conjugation kernels when p·q or q·p
	// is not the identity of the expected size.
	ErrNotInversePair = errors.New("matrix: matrices are not a two-sided inverse pair")

	// ErrIndexMismatch signals a violated conjugation contract: a two-sided
	// inverse pair over a nontrivial ring whose shapes m×n and n×m differ in
	// m and n cannot exist, so the caller's inputs are inconsistent.
	ErrIndexMismatch = errors.New("matrix: index sets of an inverse pair differ in size")

	// ErrTrivialRing marks a cardinality argument attempted over the zero ring
	// (0 == 1), where every matrix equation holds and sizes prove nothing.
	// Callers MUST special-case Trivial() rings before deriving bijections.
	ErrTrivialRing = errors.New("matrix: cardinality reasoning is void over the trivial ring")

	// ErrBadPermutation indicates a reindexing argument that is not a
	// permutation of 0..n-1 (wrong length, out-of-range, or repeated entry).
	ErrBadPermutation = errors.New("matrix: not a permutation of the index set")
)
