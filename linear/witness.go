// SPDX-License-Identifier: MIT
// Package linear: finite basis witnesses and the matrix view of a map.
// A Witness packages an ordered basis family with its coordinate function;
// Witness.Matrix is the bridge from abstract endomorphisms to the exact
// matrix kernels: column j of the result holds the coordinates of f(e_j).

package linear

import (
	"github.com/katalvlaran/lindet/matrix"
	"github.com/katalvlaran/lindet/ring"
)

// Witness is a finite basis of a module, trusted as correct by everything
// that consumes it. It carries the ordered family (e_0, …, e_{d−1}) and the
// coordinate function that expands arbitrary vectors over that family.
//
// Witnesses are immutable after construction: accessors hand out copies of
// the family slice, and Matrix recomputes its result on every call.
type Witness struct {
	mod    Module
	family []Vector
	coords func(Vector) []ring.Element
}

// NewWitness builds a witness from an ordered family and a coordinate
// function. Checks are structural only: the module and coords must be
// non-nil and the family must contain no nil vectors. Whether the family
// actually is a basis is the caller's claim and is never verified.
//
// An empty (or nil) family is legal and describes the zero module's basis.
//
// Errors: ErrBadFamily on nil module, nil coords, or a nil family entry.
// Complexity: O(d) scan + one slice copy.
func NewWitness(mod Module, family []Vector, coords func(Vector) []ring.Element) (*Witness, error) {
	if mod == nil || coords == nil {
		return nil, linearErrorf(opNewWitness, ErrBadFamily)
	}
	for _, v := range family {
		if v == nil {
			return nil, linearErrorf(opNewWitness, ErrBadFamily)
		}
	}

	// Copy the family so later caller mutations cannot reach the witness.
	fam := make([]Vector, len(family))
	copy(fam, family)

	return &Witness{mod: mod, family: fam, coords: coords}, nil
}

// Module returns the module this witness describes.
func (w *Witness) Module() Module { return w.mod }

// Dim returns the basis cardinality d (the module rank under this witness).
func (w *Witness) Dim() int { return len(w.family) }

// Vec returns basis vector e_i.
// Errors: ErrBadIndex when i is outside [0, Dim).
func (w *Witness) Vec(i int) (Vector, error) {
	if i < 0 || i >= len(w.family) {
		return nil, linearErrorf(opVec, ErrBadIndex)
	}

	return w.family[i], nil
}

// Family returns a copy of the ordered basis family. The copy is the
// caller's to permute or truncate; the witness keeps its own slice.
// Complexity: O(d).
func (w *Witness) Family() []Vector {
	out := make([]Vector, len(w.family))
	copy(out, w.family)

	return out
}

// Coords expands v over the basis family and returns its d coordinates.
// The result is freshly produced by the witness's coordinate function; the
// caller owns it.
//
// Structural guard: a coordinate vector of the wrong length or with nil
// entries is reported as ErrBadFamily (the witness itself is inconsistent).
// Complexity: the coordinate function's cost plus an O(d) scan.
func (w *Witness) Coords(v Vector) ([]ring.Element, error) {
	out := w.coords(v)
	if len(out) != len(w.family) {
		return nil, linearErrorf(opCoords, ErrBadFamily)
	}
	for _, c := range out {
		if c == nil {
			return nil, linearErrorf(opCoords, ErrBadFamily)
		}
	}

	return out, nil
}

// Matrix renders the endomorphism f as a d×d matrix over the module ring:
// entry (i, j) is coordinate i of f(e_j), so columns are images of basis
// vectors. This is the only bridge between maps and the matrix kernels.
//
// Implementation:
//   - Stage 1: validate f non-nil and attached to this witness's module;
//     allocate the d×d result.
//   - Stage 2: for each j, apply f to e_j, expand through Coords, and write
//     the column top to bottom.
//
// Behavior highlights:
//   - Matrix(Identity) = I and Matrix(f∘g) = Matrix(f)·Matrix(g) for every
//     genuine witness; both laws are exercised in tests.
//   - The result is freshly allocated per call and never cached, so callers
//     may mutate it freely.
//   - d = 0 yields the 0×0 matrix, whose determinant is One.
//
// Inputs:
//   - f: non-nil endomorphism of w.Module().
//
// Returns:
//   - *matrix.Dense: the coordinate matrix of f in this basis.
//
// Errors:
//   - ErrNilMap         when f is nil.
//   - ErrModuleMismatch when f lives on a different module instance.
//   - ErrBadFamily      when the coordinate function misbehaves structurally.
//
// Determinism:
//   - Fixed column-major fill order (j, then i); identical output per input.
//
// Complexity:
//   - d applications of f and d coordinate expansions, plus O(d²) writes.
//
// Notes:
//   - Different witnesses of one module give conjugate matrices; determinant
//     and trace agree across them, individual entries do not.
func (w *Witness) Matrix(f *Map) (*matrix.Dense, error) {
	if f == nil || f.apply == nil {
		return nil, linearErrorf(opMatrixView, ErrNilMap)
	}
	if f.mod != w.mod {
		return nil, linearErrorf(opMatrixView, ErrModuleMismatch)
	}

	d := len(w.family)
	out, err := matrix.NewDense(w.mod.Ring(), d, d)
	if err != nil {
		return nil, linearErrorf(opMatrixView, err)
	}

	var col []ring.Element
	for j := 0; j < d; j++ {
		// Column j: coordinates of the image of basis vector j.
		if col, err = w.Coords(f.Apply(w.family[j])); err != nil {
			return nil, linearErrorf(opMatrixView, err)
		}
		for i := 0; i < d; i++ {
			if err = out.Set(i, j, col[i]); err != nil {
				return nil, linearErrorf(opMatrixView, err)
			}
		}
	}

	return out, nil
}
