// SPDX-License-Identifier: MIT
// Package linear: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the linear
// package. All constructors and kernels MUST return these sentinels and tests
// MUST check them via errors.Is. Panics are reserved for module-contract
// violations (foreign vector representations), which are programmer errors.

package linear

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linear: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil components -> module identity -> index/family shape -> algebraic
// failures propagated from the matrix package.

var (
	// ErrModuleMismatch indicates operands attached to different module
	// instances. Module identity is per instance, never structural: maps on
	// two separately built Free(R, n) modules do not compose.
	ErrModuleMismatch = errors.New("linear: operands live on different modules")

	// ErrNilMap indicates a nil *Map, a nil apply function, or a nil module
	// handed to a constructor.
	ErrNilMap = errors.New("linear: nil map or nil map component")

	// ErrBadIndex indicates a basis index outside [0, Dim).
	ErrBadIndex = errors.New("linear: index outside the basis family range")

	// ErrBadFamily indicates structurally malformed witness or vector data:
	// a nil module or coordinate function at construction, nil family
	// entries, a coordinate vector of the wrong length, or a vector literal
	// whose arity does not match the module rank. Structural checks only;
	// linear independence is trusted, not verified.
	ErrBadFamily = errors.New("linear: malformed basis family or coordinate data")
)
