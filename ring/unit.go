// SPDX-License-Identifier: MIT
// Package ring: Unit — an invertible element carried together with its
// inverse. Units(R) is the codomain of determinants of isomorphisms.

package ring

// Unit is an invertible ring element bundled with a witness of invertibility.
// The invariant Val·Inv == One is established at construction (NewUnit) or by
// the producer (e.g. det.EquivDet derives Inv from the inverse map) and is
// preserved by every method.
type Unit struct {
	Val Element // the unit u
	Inv Element // its two-sided inverse u⁻¹
}

// NewUnit checks invertibility of e in r and packages the pair.
// Returns ErrNotUnit when e has no inverse and ErrNilElement on nil input.
func NewUnit(r Ring, e Element) (Unit, error) {
	inv, err := r.Inv(e)
	if err != nil {
		return Unit{}, err
	}

	return Unit{Val: e, Inv: inv}, nil
}

// Mul returns the product in the unit group: (u·v, v⁻¹·u⁻¹).
func (u Unit) Mul(v Unit) Unit {
	return Unit{Val: u.Val.Mul(v.Val), Inv: v.Inv.Mul(u.Inv)}
}

// Recip returns the group inverse by swapping the pair.
func (u Unit) Recip() Unit { return Unit{Val: u.Inv, Inv: u.Val} }

// Equal compares the underlying values; inverses are determined by them.
func (u Unit) Equal(v Unit) bool { return u.Val.Equal(v.Val) }

// String renders the unit's value.
func (u Unit) String() string { return u.Val.String() }
