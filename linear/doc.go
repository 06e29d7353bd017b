// Package linear models modules over commutative rings and the structure-
// preserving maps between them. It is the data layer under the determinant
// engine: modules supply vectors and a basis oracle, witnesses turn
// endomorphisms into matrices, and everything downstream works on those.
//
// The linear package provides:
//
//   - Module, the minimal interface a coefficient module implements: vector
//     arithmetic plus FindBasis, the oracle that either produces a finite
//     basis Witness or reports that none is available.
//   - Witness, a trusted finite basis: an ordered family of vectors and a
//     coordinate map. Witness.Matrix renders any endomorphism as a concrete
//     matrix over the module's ring, column j holding the coordinates of the
//     image of basis vector j.
//   - Map, an endomorphism of one module, with the usual constructors:
//     Identity, ZeroMap, Compose, ScaleMap, AddMap.
//   - Equiv, an isomorphism between two modules carried as an explicit pair
//     of mutually inverse functions, and Conjugate, which transports an
//     endomorphism along an Equiv.
//   - Concrete modules: Free(R, n), the rank-n column module R^n (the rank-0
//     case is the zero module), and InfiniteSum(R), the countable direct sum
//     whose FindBasis deliberately fails.
//
// Witnesses are trusted, never validated: FindBasis answers are taken as
// correct, and basis-independence of downstream results is a theorem, not a
// runtime check. Module identity is per instance: two calls to Free with the
// same arguments build distinct modules whose vectors must not be mixed.
package linear
