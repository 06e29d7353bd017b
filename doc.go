// Package lindet computes determinants of linear endomorphisms without ever
// asking you to pick a basis — over any commutative ring, exactly.
//
// 🚀 What is lindet?
//
//	A small, exact, coordinate-free linear algebra library that brings together:
//		• Ring primitives: integers, rationals, modular arithmetic behind one interface
//		• Dense matrices over any commutative ring: multiply, transpose, determinant
//		• Modules & endomorphisms: free modules, infinite direct sums, linear maps
//		• Basis witnesses: coordinate views that turn maps into matrices on demand
//		• The determinant engine: det(f) as a pure function of the map, not the basis
//		• Algebraic facades: unit-valued determinants of isomorphisms, basis forms
//
// ✨ Why choose lindet?
//
//   - Exact arithmetic – big.Int / big.Rat / modular, never a float in sight
//   - Basis-independent – any two witnesses give the same answer, provably
//   - Total API – modules without a finite basis get det = 1, never a panic
//   - Extensible – implement Module and Ring, the engine does the rest
//
// Under the hood, everything is organized under four subpackages:
//
//	ring/   — commutative ring elements, units, concrete rings (ℤ, ℚ, ℤ/nℤ)
//	matrix/ — dense matrices over a ring: kernels, Det, conjugation toolkit
//	linear/ — modules, vectors, endomorphisms, equivalences, basis witnesses
//	det/    — the engine: cached witnesses, Det, EquivDet, alternating forms
//
// Quick ASCII example:
//
//	    f = [2 0]      det(f) = 2·3 − 0·1 = 6
//	        [1 3]
//
//	and the answer is the same in every basis you could have chosen.
//
// Dive into the per-package docs for the full API, determinant laws, and the
// conjugation-invariance machinery that makes basis freedom actually work.
//
//	go get github.com/katalvlaran/lindet
package lindet
