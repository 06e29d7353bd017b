// Package det is the determinant engine: it assigns an exact determinant to
// every endomorphism of every module, finite basis or not, and exposes the
// algebra that makes the number useful.
//
// The det package provides:
//
//   - Engine, the entry point: New(...) configures an engine whose Det is a
//     total function on endomorphisms. Modules with a finite basis go
//     through the witness's matrix view and matrix.Det; modules without one
//     get the documented fallback value One, never an error.
//   - Cache, the witness memo shared by engines: at most one FindBasis
//     answer (present or absent) is remembered per module instance, and
//     concurrent discovery of the same module is collapsed into a single
//     oracle call.
//   - Dim, HasFiniteBasis and KernelVector, the derived operations: rank
//     queries, the fallback/finite distinction, and an explicit nonzero
//     kernel vector when the determinant vanishes over a field.
//   - EquivDet, the group homomorphism Aut(M) → Units(R): determinants of
//     self-equivalences land in ring.Unit with the inverse determinant as
//     the invertibility witness.
//   - BasisForm, the alternating multilinear form of a witness: Eval feeds
//     candidate families through the coordinate matrix, IsBasis asks whether
//     the result is a unit.
//
// Determinants computed here are basis independent: any witness the oracle
// returns yields the same value, so callers never learn (and never need to
// learn) which basis was used.
package det
