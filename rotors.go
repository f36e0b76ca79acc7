/*
 * rotors.go, part of torsion.
 *
 * Copyright 2023 The torsion developers.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package torsion

//BondPredicate is a boolean test over a bond, used to select which bonds
//a conformer sampler treats as flexible.
type BondPredicate func(*Bond) bool

//AtomPredicate is a boolean test over an atom.
type AtomPredicate func(*Atom) bool

//OrBond returns a predicate that accepts a bond accepted by p or q.
func OrBond(p, q BondPredicate) BondPredicate {
	return func(b *Bond) bool { return p(b) || q(b) }
}

//AndBond returns a predicate that accepts a bond accepted by both p and q.
func AndBond(p, q BondPredicate) BondPredicate {
	return func(b *Bond) bool { return p(b) && q(b) }
}

//HasAtomIndex returns a predicate that accepts an atom whose index is one
//of the given ones.
func HasAtomIndex(indexes ...int) AtomPredicate {
	return func(a *Atom) bool {
		for _, i := range indexes {
			if a.Index == i {
				return true
			}
		}
		return false
	}
}

//IsRotor is the topological rotor test: a single (or undetermined-order)
//bond, not part of a ring, with at least two heavy neighbors on each
//side. Terminal groups like methyl or NH2 are not rotors under this
//test, and neither are bonds with partial double character that the
//topology doesn't show; IsFlexibleBond covers those.
func (M *Molecule) IsRotor(b *Bond) bool {
	if b.Order > 1 {
		return false
	}
	if heavyDegree(b.At1) < 2 || heavyDegree(b.At2) < 2 {
		return false
	}
	return !M.InRing(b)
}

//IsFlexibleBond is the domain rotatable-bond test covering the
//amide/conjugation exceptions the topological test misses: a non-ring
//single bond between two heavy atoms where at least one of the two is
//conjugated, i.e. carries a multiple bond to a third atom.
func (M *Molecule) IsFlexibleBond(b *Bond) bool {
	if b.Order > 1 {
		return false
	}
	if b.At1.IsHydrogen() || b.At2.IsHydrogen() {
		return false
	}
	if !isConjugated(b.At1, b) && !isConjugated(b.At2, b) {
		return false
	}
	return !M.InRing(b)
}

//isConjugated returns whether at carries a multiple bond other than via.
func isConjugated(at *Atom, via *Bond) bool {
	for _, b := range at.Bonds {
		if b != via && b.Order >= 2 {
			return true
		}
	}
	return false
}

//WithinOneBondOf returns a predicate accepting bonds whose two atoms both
//lie within one bond of the central b-c bond, i.e. in {b, c} or directly
//bonded to b or c.
func WithinOneBondOf(mol *Molecule, b, c int) BondPredicate {
	near := map[int]bool{b: true, c: true}
	for _, i := range []int{b, c} {
		for _, bond := range mol.Atom(i).Bonds {
			near[bond.Cross(mol.Atom(i)).Index] = true
		}
	}
	return func(bd *Bond) bool {
		return near[bd.At1.Index] && near[bd.At2.Index]
	}
}

//RotorPolicy selects how the rotatable-bond predicate for conformer
//sampling is composed.
type RotorPolicy int

const (
	//PolicyGeneral, the default: a bond is flexible if it passes the
	//topological rotor test or the domain rotatable-bond test.
	PolicyGeneral RotorPolicy = iota
	//PolicyDistanceRestricted: as PolicyGeneral, but the bond must also
	//lie within one bond of the central bond of the dihedral of
	//interest. Legacy policy, not the default.
	PolicyDistanceRestricted
	//PolicyCustomOnly: only the domain rotatable-bond test. Narrower
	//than the default, as it excludes ordinary single-bond rotors.
	//Legacy policy, not the default.
	PolicyCustomOnly
)

//RotorPredicate composes the rotatable-bond predicate for mol according
//to policy. dih is only consulted by PolicyDistanceRestricted, which
//restricts sampling to the neighborhood of its central bond.
func RotorPredicate(mol *Molecule, policy RotorPolicy, dih *Dihedral) BondPredicate {
	general := OrBond(mol.IsRotor, mol.IsFlexibleBond)
	switch policy {
	case PolicyDistanceRestricted:
		ats := dih.Atoms()
		return AndBond(WithinOneBondOf(mol, ats[1], ats[2]), general)
	case PolicyCustomOnly:
		return mol.IsFlexibleBond
	default:
		return general
	}
}
