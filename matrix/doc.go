// Package matrix offers dense matrices over any commutative ring, with the
// exact determinant and conjugation toolkit the rest of the library builds on.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of ring.Element values with bounds-checked
//     accessors; the 0×0 shape is legal (and has determinant one).
//   - Linear-algebra kernels: Add, Sub, Mul, Scale, Transpose, MatVec.
//   - Det over any commutative ring — cofactor expansion by default, the
//     Leibniz permutation sum via WithLeibniz() — plus Rank and Inverse for
//     rings whose nonzero elements are units.
//   - The conjugation toolkit: inverse-pair validation, index-bijection
//     derivation, permutation reindexing, and ConjugateDet, the computed
//     form of det(M·N·M⁻¹) = det(N).
//
// All kernels are exact (no floating point), deterministic (fixed loop
// orders), and return sentinel errors checked via errors.Is.
//
// See the examples in this package and det for usage patterns.
package matrix
