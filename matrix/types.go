// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types. This file contains ONLY the public
// Matrix interface; the canonical implementation (Dense) lives in dense.go,
// errors and options live in dedicated files (errors.go, options.go) per the
// package conventions.
package matrix

import "github.com/katalvlaran/lindet/ring"

// Matrix represents a two-dimensional array of ring elements. All entries
// belong to the single ring reported by Ring(); implementations never mix
// rings inside one matrix.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// Ring returns the coefficient ring every entry belongs to.
	// Complexity: O(1).
	Ring() ring.Ring

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (ring.Element, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange on invalid indices and ErrNilElement on nil v.
	// Complexity: O(1).
	Set(i, j int, v ring.Element) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
