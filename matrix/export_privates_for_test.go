// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Kernels and Options Snapshot
//
// Purpose:
//   - Expose UNEXPORTED determinant kernels and the internal options snapshot
//     to matrix_test ONLY, without widening the production API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds while the
//     matrix package name grants access to private symbols.
//
// Provided Surface:
//   - GatherAlgorithm_TestOnly: resolved DetAlgorithm after option application.
//   - CofactorDet_TestOnly / LeibnizDet_TestOnly: direct kernel entry points
//     for fast-path vs cross-check comparisons without facade validation.
//   - ValidatePermutation_TestOnly: the Reindex permutation guard.
//   - PanicAlgorithmInvalid_TestOnly: panic text without magic strings.
//
// Risks & Maintenance:
//   - Keep bridges in sync with private signatures; tests will catch drift.

import "github.com/katalvlaran/lindet/ring"

// PanicAlgorithmInvalid_TestOnly mirrors the WithAlgorithm panic message.
const PanicAlgorithmInvalid_TestOnly = panicAlgorithmInvalid

// GatherAlgorithm_TestOnly returns the algorithm selected after applying opts
// over documented defaults. Thin pass-through to gatherOptions.
func GatherAlgorithm_TestOnly(opts ...Option) DetAlgorithm {
	return gatherOptions(opts...).algorithm
}

// CofactorDet_TestOnly forwards to the private cofactorDet kernel on a full
// column window, bypassing facade validation and option resolution.
func CofactorDet_TestOnly(d *Dense) ring.Element {
	cols := make([]int, d.c)
	for j := 0; j < d.c; j++ {
		cols[j] = j
	}

	return cofactorDet(d, 0, cols)
}

// LeibnizDet_TestOnly forwards to the private leibnizDet kernel.
func LeibnizDet_TestOnly(d *Dense) ring.Element {
	return leibnizDet(d)
}

// ValidatePermutation_TestOnly forwards to the private permutation guard.
func ValidatePermutation_TestOnly(perm []int, n int) error {
	return validatePermutation(perm, n)
}
