// SPDX-License-Identifier: MIT
// Package linear: endomorphisms of a single module and their combinators.
// Maps carry no matrix and no basis; they are bare functions tagged with the
// module they act on. Witness.Matrix is what turns them into numbers.

package linear

import "github.com/katalvlaran/lindet/ring"

// Map is an endomorphism f : M → M of one module. The apply function is
// trusted to be linear over M's ring; linearity is a contract, not a runtime
// check (witness policy). Constructed maps always have non-nil fields.
type Map struct {
	mod   Module
	apply func(Vector) Vector
}

// NewMap wraps a linear function on mod as an endomorphism.
// Errors: ErrNilMap when mod or apply is nil.
func NewMap(mod Module, apply func(Vector) Vector) (*Map, error) {
	if mod == nil || apply == nil {
		return nil, linearErrorf(opNewMap, ErrNilMap)
	}

	return &Map{mod: mod, apply: apply}, nil
}

// Identity returns the identity endomorphism of mod.
func Identity(mod Module) (*Map, error) {
	if mod == nil {
		return nil, linearErrorf(opIdentity, ErrNilMap)
	}

	return &Map{mod: mod, apply: func(v Vector) Vector { return v }}, nil
}

// ZeroMap returns the endomorphism sending every vector to zero.
func ZeroMap(mod Module) (*Map, error) {
	if mod == nil {
		return nil, linearErrorf(opZeroMap, ErrNilMap)
	}

	return &Map{mod: mod, apply: func(Vector) Vector { return mod.Zero() }}, nil
}

// ModuleOf returns the module this map acts on.
func (f *Map) ModuleOf() Module { return f.mod }

// Apply evaluates the map at v. The vector must belong to f's module;
// foreign representations panic inside the module arithmetic.
func (f *Map) Apply(v Vector) Vector { return f.apply(v) }

// Compose returns f∘g (g first, then f). Both maps must act on the same
// module instance.
// Errors: ErrNilMap, ErrModuleMismatch.
func Compose(f, g *Map) (*Map, error) {
	if f == nil || g == nil {
		return nil, linearErrorf(opCompose, ErrNilMap)
	}
	if f.mod != g.mod {
		return nil, linearErrorf(opCompose, ErrModuleMismatch)
	}

	return &Map{mod: f.mod, apply: func(v Vector) Vector { return f.apply(g.apply(v)) }}, nil
}

// ScaleMap returns c·f, the map v ↦ c·f(v).
// Errors: ErrNilMap; ring.ErrNilElement for a nil scalar.
func ScaleMap(c ring.Element, f *Map) (*Map, error) {
	if f == nil {
		return nil, linearErrorf(opScaleMap, ErrNilMap)
	}
	if c == nil {
		return nil, linearErrorf(opScaleMap, ring.ErrNilElement)
	}
	mod := f.mod

	return &Map{mod: mod, apply: func(v Vector) Vector { return mod.Scale(c, f.apply(v)) }}, nil
}

// AddMap returns the pointwise sum f + g on a shared module.
// Errors: ErrNilMap, ErrModuleMismatch.
func AddMap(f, g *Map) (*Map, error) {
	if f == nil || g == nil {
		return nil, linearErrorf(opAddMap, ErrNilMap)
	}
	if f.mod != g.mod {
		return nil, linearErrorf(opAddMap, ErrModuleMismatch)
	}
	mod := f.mod

	return &Map{mod: mod, apply: func(v Vector) Vector { return mod.Add(f.apply(v), g.apply(v)) }}, nil
}
