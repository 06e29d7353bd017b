// SPDX-License-Identifier: MIT
// Package det: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the det
// package. All operations MUST return these sentinels (or propagate matrix
// and linear sentinels unchanged) and tests MUST check them via errors.Is.

package det

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "det: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// DEGENERATE RESULTS ARE NOT ERRORS: a module without a finite basis has
// determinant One, the zero module's identity has determinant One, and the
// zero map on a rank-d module has determinant 0^d. Sentinels below mark
// contract violations only.

var (
	// ErrNotEndo is returned by EquivDet when the equivalence is not a
	// self-equivalence: its domain and codomain are different module
	// instances, so no determinant in a single ring is defined.
	ErrNotEndo = errors.New("det: equivalence is not an endomorphism of one module")

	// ErrNonSingular is returned by KernelVector when the map is injective
	// on coordinates (full column rank): the kernel is trivial and no
	// nonzero witness vector exists.
	ErrNonSingular = errors.New("det: map is nonsingular; kernel is trivial")

	// ErrNoBasis marks operations that genuinely require a finite basis
	// (KernelVector, BasisForm) applied to a module whose oracle reports
	// none. Det itself never returns it; the fallback value One applies.
	ErrNoBasis = errors.New("det: module has no finite basis witness")
)
