// SPDX-License-Identifier: MIT
// Package linear: core vocabulary shared by every file in the package.
//
// Purpose:
//   - Declare the Vector alias and the Module interface (the module contract).
//   - Define operation tags and the shared error wrapper for uniform reporting.
//
// Notes:
//   - Concrete modules live in dedicated files (free.go, infinite.go).
//   - Witness/Map/Equiv kernels wrap sentinels via linearErrorf at the facade.

package linear

import (
	"fmt"

	"github.com/katalvlaran/lindet/ring"
)

// Vector is an opaque module element. Each Module implementation fixes its
// own representation (a slice for Free, a finite-support map for InfiniteSum)
// and only that module's methods may interpret it. Vectors are value-like:
// module operations never mutate their inputs.
type Vector = any

// Module is the contract a coefficient module implements. All arithmetic is
// exact over Ring(); implementations panic with panicForeignVector when
// handed a vector of the wrong representation (programmer error, per the
// package error policy).
//
// FindBasis is the basis oracle: it returns a finite basis Witness and true,
// or (nil, false) when the module has no finite basis the oracle can
// produce. Witnesses are trusted as correct; repeated calls may return
// distinct but equally valid witnesses.
//
// Module identity is per instance. Implementations are handed around as
// pointers, and all identity checks (ErrModuleMismatch) compare interface
// values, so structurally equal modules built separately never mix.
type Module interface {
	// Ring returns the coefficient ring. Constant for the module lifetime.
	Ring() ring.Ring

	// Zero returns the zero vector.
	Zero() Vector

	// Add returns a + b.
	Add(a, b Vector) Vector

	// Neg returns -v.
	Neg(v Vector) Vector

	// Scale returns c·v. A nil scalar panics with ring.ErrNilElement text.
	Scale(c ring.Element, v Vector) Vector

	// Equal reports a == b as module elements.
	Equal(a, b Vector) bool

	// FindBasis returns a finite basis witness, or (nil, false) when the
	// module has none to offer.
	FindBasis() (*Witness, bool)

	// String names the module for diagnostics, e.g. "ℤ^3" or "⊕ℕ ℚ".
	String() string
}

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewWitness      = "NewWitness"
	opVec             = "Vec"
	opCoords          = "Coords"
	opMatrixView      = "Matrix"
	opNewMap          = "NewMap"
	opIdentity        = "Identity"
	opZeroMap         = "ZeroMap"
	opCompose         = "Compose"
	opScaleMap        = "ScaleMap"
	opAddMap          = "AddMap"
	opNewEquiv        = "NewEquiv"
	opAsMap           = "AsMap"
	opConjugate       = "Conjugate"
	opFree            = "Free"
	opFromInts        = "FromInts"
	opWitnessFromPair = "WitnessFromPair"
	opMapFromMatrix   = "MapFromMatrix"
	opInfiniteSum     = "InfiniteSum"
	opNewVec          = "NewVec"
	opGen             = "Gen"
	opDiagonal        = "Diagonal"
)

// Panic messages for module-contract violations (programmer errors, never
// data-dependent). User-triggered conditions return sentinels instead.
const (
	panicForeignVector = "linear: vector does not belong to this module"
	panicNilScalar     = "linear: nil scalar element"
)

// linearErrorf wraps err with an operation tag, preserving the original error
// via %w. Keeps a stable "Op: underlying" shape across the package.
// Complexity: O(1).
func linearErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
