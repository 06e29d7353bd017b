// SPDX-License-Identifier: MIT
// Package ring: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the ring
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors (mixed-ring elements, bad moduli).

package ring

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ring: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNotUnit is returned by Ring.Inv (and NewUnit) when the element has no
	// multiplicative inverse in the ring: zero in a field, anything but ±1 in ℤ,
	// any element sharing a factor with the modulus in ℤ/nℤ.
	ErrNotUnit = errors.New("ring: element is not a unit")

	// ErrNilElement indicates that a nil Element was passed where a value is
	// required. Typed-nil and interface-nil are both rejected.
	ErrNilElement = errors.New("ring: nil element")
)
