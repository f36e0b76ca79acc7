/*
 * dihedral.go, part of torsion.
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
	"strconv"
	"strings"

	v3 "github.com/qcgrid/torsion/v3"
)

//Dihedral identifies a torsion of interest by the 0-based indexes of its
//four atoms. The torsion rotates about the central b-c bond. In SD data
//the indexes are persisted 1-based.
type Dihedral struct {
	ats [4]int
}

//NewDihedral builds a Dihedral from four 0-based atom indexes, checking
//that they are distinct and within range for a molecule of natoms atoms.
func NewDihedral(a, b, c, d, natoms int) (*Dihedral, error) {
	D := &Dihedral{ats: [4]int{a, b, c, d}}
	for i, v := range D.ats {
		if v < 0 || v >= natoms {
			return nil, newOutOfRangeError(v, natoms)
		}
		for j := 0; j < i; j++ {
			if D.ats[j] == v {
				return nil, &CError{msg: fmt.Sprintf("Dihedral: repeated atom index %d", v)}
			}
		}
	}
	return D, nil
}

//Atoms returns the four 0-based atom indexes of the dihedral.
func (D *Dihedral) Atoms() [4]int { return D.ats }

//String prints the dihedral as the 1-based, whitespace-separated list
//used in SD data.
func (D *Dihedral) String() string {
	return fmt.Sprintf("%d %d %d %d", D.ats[0]+1, D.ats[1]+1, D.ats[2]+1, D.ats[3]+1)
}

//Measure returns the current value of the dihedral, in radians in
//(-pi, pi], for the given conformer.
func (D *Dihedral) Measure(conf *Conformer) float64 {
	c := conf.Coords()
	return DihedralAngle(c.VecView(D.ats[0]), c.VecView(D.ats[1]), c.VecView(D.ats[2]), c.VecView(D.ats[3]))
}

//Set rigidly rotates the atoms on the far side of the central bond so
//that the dihedral takes the value angle (radians), exactly. mol
//supplies the bond topology; conf holds the coordinates to modify and
//does not need to be attached to mol. Fails if the central atoms are not
//bonded or if the central bond is part of a ring.
func (D *Dihedral) Set(mol *Molecule, conf *Conformer, angle float64) error {
	b := mol.BondBetween(D.ats[1], D.ats[2])
	if b == nil {
		return &CError{msg: fmt.Sprintf("Dihedral.Set: central atoms %d and %d are not bonded", D.ats[1], D.ats[2])}
	}
	moving := sideOfBond(b, mol.Atom(D.ats[2]))
	for _, i := range moving {
		if i == D.ats[0] || i == D.ats[1] {
			return &CError{msg: "Dihedral.Set: the central bond is part of a ring"}
		}
	}
	cur := D.Measure(conf)
	delta := angle - cur
	coords := conf.Coords()
	side := v3.Zeros(len(moving))
	side.SomeVecs(coords, moving)
	//Rotating the far side right-handed about the b->c axis increases
	//the dihedral by the rotation angle.
	rot, err := RotateAbout(side, coords.VecView(D.ats[1]), coords.VecView(D.ats[2]), delta)
	if err != nil {
		return errDecorate(err, "Dihedral.Set")
	}
	coords.SetVecs(rot, moving)
	return nil
}

//DihedralFromSDData reads and validates the dihedral of interest from
//the TORSION_ATOMS_FRAGMENT tag of a molecule. It is pure: the molecule
//is never modified. It fails with MissingTagError if the tag is absent
//and with MalformedTagError if the tag does not hold exactly 4 distinct,
//in-range, 1-based atom indexes.
func DihedralFromSDData(mol *Molecule) (*Dihedral, error) {
	if !mol.HasSDData(TagTorsionAtoms) {
		return nil, newMissingTagError(TagTorsionAtoms)
	}
	raw := mol.SDData(TagTorsionAtoms)
	fields := strings.Fields(raw)
	if len(fields) != 4 {
		return nil, newMalformedTagError(TagTorsionAtoms, raw, fmt.Sprintf("expected 4 atom indexes, got %d", len(fields)))
	}
	var idx [4]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, newMalformedTagError(TagTorsionAtoms, raw, fmt.Sprintf("'%s' is not an integer", f))
		}
		idx[i] = v - 1 //1-based in SD data
	}
	D, err := NewDihedral(idx[0], idx[1], idx[2], idx[3], mol.Len())
	if err != nil {
		return nil, newMalformedTagError(TagTorsionAtoms, raw, err.Error())
	}
	return D, nil
}
