/*
 * bonds.go, part of torsion.
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

import (
	"fmt"
	"sort"

	v3 "github.com/qcgrid/torsion/v3"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

//Bond joins two atoms of a molecule. Order 0 means undetermined, which
//the rotor tests treat as a single bond.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Dist  float64
	Order float64
}

//Cross returns the atom of the bond that is not the origin atom. It
//panics if origin is not part of the bond, as that has to be a
//programming error.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.Index == B.At1.Index {
		return B.At2
	}
	if origin.Index == B.At2.Index {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!")
}

//Contains returns whether the atom with the given index is one of the
//two atoms of the bond.
func (B *Bond) Contains(index int) bool {
	return B.At1.Index == index || B.At2.Index == index
}

//AssignBonds perceives single bonds for a molecule from the interatomic
//distances in coord, with the simple covalent-radius criterion of
//DOI:10.1186/1758-2946-3-33. Previously existing bonds are discarded.
//It might get slow for large systems; it's really not thought for
//proteins or macromolecules.
func AssignBonds(coord *v3.Matrix, mol *Molecule) error {
	mol.FillIndexes()
	mol.bonds = nil
	for _, at := range mol.Atoms {
		at.Bonds = nil
	}
	tot := mol.Len()
	t3 := v3.Zeros(1)
	for i := 0; i < tot; i++ {
		at1 := mol.Atom(i)
		cov1 := symbolCovrad[at1.Symbol]
		if cov1 == 0 {
			err := &CError{msg: fmt.Sprintf("Couldn't find the covalent radius for %s %d", at1.Symbol, i)}
			err.Decorate("AssignBonds")
			return err
		}
		t1 := coord.VecView(i)
		for j := i + 1; j < tot; j++ {
			at2 := mol.Atom(j)
			cov2 := symbolCovrad[at2.Symbol]
			if cov2 == 0 {
				err := &CError{msg: fmt.Sprintf("Couldn't find the covalent radius for %s %d", at2.Symbol, j)}
				err.Decorate("AssignBonds")
				return err
			}
			t2 := coord.VecView(j)
			t3.Sub(t2, t1)
			d := t3.Norm(2)
			if d < cov1+cov2+bondtol && d > tooclose {
				b := mol.NewBond(i, j, 1)
				b.Dist = d
			}
		}
	}
	//Now we check that no atom has too many bonds, dropping the longest
	//ones until the count fits.
	for i := 0; i < tot; i++ {
		at := mol.Atom(i)
		max := symbolMaxBonds[at.Symbol]
		if max == 0 { //no specified number of bonds for this element.
			continue
		}
		sort.Slice(at.Bonds, func(i, j int) bool { return at.Bonds[i].Dist < at.Bonds[j].Dist })
		for len(at.Bonds) > max {
			mol.removeBond(at.Bonds[len(at.Bonds)-1])
		}
	}
	return nil
}

//removeBond detaches b from both its atoms and from the molecule.
func (M *Molecule) removeBond(b *Bond) {
	take := func(bonds []*Bond) []*Bond {
		newb := make([]*Bond, 0, len(bonds))
		for _, v := range bonds {
			if v != b {
				newb = append(newb, v)
			}
		}
		return newb
	}
	b.At1.Bonds = take(b.At1.Bonds)
	b.At2.Bonds = take(b.At2.Bonds)
	M.bonds = take(M.bonds)
}

//BondBetween returns the bond joining the atoms with indexes i and j, or
//nil if they are not bonded.
func (M *Molecule) BondBetween(i, j int) *Bond {
	for _, b := range M.Atom(i).Bonds {
		if b.Contains(j) {
			return b
		}
	}
	return nil
}

//heavyDegree returns the number of non-hydrogen atoms bonded to A.
func heavyDegree(A *Atom) int {
	var n int
	for _, b := range A.Bonds {
		if !b.Cross(A).IsHydrogen() {
			n++
		}
	}
	return n
}

//pathExists walks the bond lists and reports whether to can be reached
//from from without ever crossing the excluded bond. With excluded being
//one of the bonds joining the two atoms, it answers whether that bond is
//part of a ring.
func pathExists(from, to *Atom, excluded *Bond) bool {
	if from.Index == to.Index {
		return true
	}
	seen := map[int]bool{from.Index: true}
	queue := []*Atom{from}
	for len(queue) > 0 {
		at := queue[0]
		queue = queue[1:]
		for _, b := range at.Bonds {
			if b == excluded {
				continue
			}
			next := b.Cross(at)
			if next.Index == to.Index {
				return true
			}
			if !seen[next.Index] {
				seen[next.Index] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

//InRing returns whether the bond b is part of a ring of the molecule,
//i.e. whether its atoms stay connected when the bond is removed.
func (M *Molecule) InRing(b *Bond) bool {
	return pathExists(b.At1, b.At2, b)
}

//sideOfBond returns the indexes of every atom reachable from start
//without crossing the bond b. start must be one of the two atoms of b,
//and is included in the result.
func sideOfBond(b *Bond, start *Atom) []int {
	side := []int{start.Index}
	seen := map[int]bool{start.Index: true}
	queue := []*Atom{start}
	for len(queue) > 0 {
		at := queue[0]
		queue = queue[1:]
		for _, bond := range at.Bonds {
			if bond == b {
				continue
			}
			next := bond.Cross(at)
			if !seen[next.Index] {
				seen[next.Index] = true
				side = append(side, next.Index)
				queue = append(queue, next)
			}
		}
	}
	sort.Ints(side)
	return side
}
