/*
 * molecule.go, part of torsion.
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

	v3 "github.com/qcgrid/torsion/v3"
)

/**Note: Several functions here panic instead of returning errors. This is
 * because they are "fundamental" functions: if something goes wrong in them,
 * the program is way-most-likely wrong and should crash. The panics are
 * related to using a function on a nil object or accessing out-of-bounds
 * fields.**/

//Atom contains the topological information for one atom. The coordinates
//live in the Conformers of the owning Molecule, not here.
type Atom struct {
	Name   string
	ID     int //1-based, the id an SD file would carry
	Index  int //0-based position in the molecule
	Symbol string
	Mass   float64
	Bonds  []*Bond
}

//Copy returns a copy of the Atom. The Bonds slice is not copied, as
//bonds are owned and rewired by the Molecule.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	newat := new(Atom)
	newat.Name = A.Name
	newat.ID = A.ID
	newat.Index = A.Index
	newat.Symbol = A.Symbol
	newat.Mass = A.Mass
	return newat
}

//IsHydrogen returns whether the atom is a hydrogen.
func (A *Atom) IsHydrogen() bool {
	return A.Symbol == "H"
}

//Conformer is one 3D coordinate assignment for the topology of its
//owning molecule. It carries its own title and its own string and
//numeric SD data, in addition to the molecule-level data.
type Conformer struct {
	coords *v3.Matrix
	title  string
	data   map[string]string
	fdata  map[string]float64
}

//NewConformer returns a conformer wrapping the given coordinates.
//The coordinates are not copied.
func NewConformer(coords *v3.Matrix) *Conformer {
	if coords == nil {
		panic("Attempted to build a conformer with nil coordinates")
	}
	return &Conformer{coords: coords}
}

//Coords returns the coordinate matrix of the conformer.
func (C *Conformer) Coords() *v3.Matrix { return C.coords }

//Title returns the title of the conformer.
func (C *Conformer) Title() string { return C.title }

//SetTitle sets the title of the conformer.
func (C *Conformer) SetTitle(t string) { C.title = t }

//SDData returns the value for the string tag key, or "" if absent.
func (C *Conformer) SDData(key string) string { return C.data[key] }

//HasSDData returns whether the conformer carries the string tag key.
func (C *Conformer) HasSDData(key string) bool {
	_, ok := C.data[key]
	return ok
}

//SetSDData sets the string tag key to value.
func (C *Conformer) SetSDData(key, value string) {
	if C.data == nil {
		C.data = make(map[string]string)
	}
	C.data[key] = value
}

//FloatData returns the value of the numeric tag key, or 0 if absent.
func (C *Conformer) FloatData(key string) float64 { return C.fdata[key] }

//HasFloatData returns whether the conformer carries the numeric tag key.
func (C *Conformer) HasFloatData(key string) bool {
	_, ok := C.fdata[key]
	return ok
}

//SetFloatData sets the numeric tag key to value.
func (C *Conformer) SetFloatData(key string, value float64) {
	if C.fdata == nil {
		C.fdata = make(map[string]float64)
	}
	C.fdata[key] = value
}

//CopySDData copies every string and numeric tag of from into the
//receiver, overwriting on collision.
func (C *Conformer) CopySDData(from *Conformer) {
	for k, v := range from.data {
		C.SetSDData(k, v)
	}
	for k, v := range from.fdata {
		C.SetFloatData(k, v)
	}
}

//Copy returns a deep copy of the conformer, sharing no coordinate
//storage or tag maps with the original.
func (C *Conformer) Copy() *Conformer {
	R := NewConformer(C.coords.Clone())
	R.title = C.title
	R.CopySDData(C)
	return R
}

//Molecule is an atom/bond topology plus one or more conformers sharing
//it, a title and a string-keyed SD data store.
type Molecule struct {
	Atoms []*Atom
	bonds []*Bond
	confs []*Conformer
	title string
	data  map[string]string
}

//NewMolecule builds a molecule from the given atoms. Indexes are
//(re)assigned from the slice order, 1-based IDs are filled where
//missing, and masses are looked up for atoms that don't bring one.
func NewMolecule(atoms []*Atom, title string) (*Molecule, error) {
	if atoms == nil {
		return nil, &CError{msg: "Supplied a nil atom slice"}
	}
	M := new(Molecule)
	M.Atoms = atoms
	M.title = title
	M.FillIndexes()
	for _, at := range M.Atoms {
		if at.Mass == 0 {
			at.Mass = symbolMass[at.Symbol]
		}
	}
	return M, nil
}

//FillIndexes sets the current order of the atoms as their Index and,
//where missing, their 1-based ID.
func (M *Molecule) FillIndexes() {
	for i, at := range M.Atoms {
		at.Index = i
		if at.ID == 0 {
			at.ID = i + 1
		}
	}
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int { return len(M.Atoms) }

//Atom returns the atom corresponding to the index i. Panics if out of
//range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= M.Len() {
		panic("Molecule: Requested Atom out of bounds")
	}
	return M.Atoms[i]
}

//Bonds returns the bond list of the molecule.
func (M *Molecule) Bonds() []*Bond { return M.bonds }

//NewBond creates a bond of the given order between atoms i and j,
//registers it on both atoms and on the molecule, and returns it.
func (M *Molecule) NewBond(i, j int, order float64) *Bond {
	at1 := M.Atom(i)
	at2 := M.Atom(j)
	b := &Bond{Index: len(M.bonds), At1: at1, At2: at2, Order: order}
	at1.Bonds = append(at1.Bonds, b)
	at2.Bonds = append(at2.Bonds, b)
	M.bonds = append(M.bonds, b)
	return b
}

//NConfs returns the number of conformers in the molecule.
func (M *Molecule) NConfs() int { return len(M.confs) }

//Conf returns the ith conformer. Panics if out of range.
func (M *Molecule) Conf(i int) *Conformer {
	if i < 0 || i >= M.NConfs() {
		panic(fmt.Sprintf("Molecule: Conformer requested (%d) out of range", i))
	}
	return M.confs[i]
}

//Confs returns the conformer slice of the molecule.
func (M *Molecule) Confs() []*Conformer { return M.confs }

//AddConf appends a conformer to the molecule. It panics if the number of
//coordinates doesn't match the number of atoms.
func (M *Molecule) AddConf(c *Conformer) {
	if c == nil {
		panic("Attempted to add a nil conformer")
	}
	if c.coords.NVecs() != M.Len() {
		panic(fmt.Sprintf("Wrong number of coordinates (%d) for %d atoms", c.coords.NVecs(), M.Len()))
	}
	M.confs = append(M.confs, c)
}

//DelConf removes the ith conformer. Panics if out of range.
func (M *Molecule) DelConf(i int) {
	if i < 0 || i >= M.NConfs() {
		panic("Molecule: Tried to delete a conformer out of bounds")
	}
	M.confs = append(M.confs[:i], M.confs[i+1:]...)
}

//ClearConfs removes every conformer from the molecule.
func (M *Molecule) ClearConfs() { M.confs = nil }

//Title returns the title of the molecule.
func (M *Molecule) Title() string { return M.title }

//SetTitle sets the title of the molecule.
func (M *Molecule) SetTitle(t string) { M.title = t }

//SDData returns the value of the molecule-level string tag key, or "".
func (M *Molecule) SDData(key string) string { return M.data[key] }

//HasSDData returns whether the molecule carries the string tag key.
func (M *Molecule) HasSDData(key string) bool {
	_, ok := M.data[key]
	return ok
}

//SetSDData sets the molecule-level string tag key to value.
func (M *Molecule) SetSDData(key, value string) {
	if M.data == nil {
		M.data = make(map[string]string)
	}
	M.data[key] = value
}

//ClearSDData removes every molecule-level tag.
func (M *Molecule) ClearSDData() { M.data = nil }

//CopySDData copies every molecule-level tag of from into the receiver,
//overwriting on collision.
func (M *Molecule) CopySDData(from *Molecule) {
	for k, v := range from.data {
		M.SetSDData(k, v)
	}
}

//Copy returns a deep copy of the molecule: atoms, bonds, conformers and
//tags share no storage with the original.
func (M *Molecule) Copy() *Molecule {
	R := new(Molecule)
	R.title = M.title
	R.Atoms = make([]*Atom, M.Len())
	for i, at := range M.Atoms {
		R.Atoms[i] = at.Copy()
	}
	R.bonds = make([]*Bond, 0, len(M.bonds))
	for _, b := range M.bonds {
		nb := &Bond{Index: b.Index, At1: R.Atoms[b.At1.Index], At2: R.Atoms[b.At2.Index], Dist: b.Dist, Order: b.Order}
		nb.At1.Bonds = append(nb.At1.Bonds, nb)
		nb.At2.Bonds = append(nb.At2.Bonds, nb)
		R.bonds = append(R.bonds, nb)
	}
	for _, c := range M.confs {
		R.confs = append(R.confs, c.Copy())
	}
	for k, v := range M.data {
		R.SetSDData(k, v)
	}
	return R
}
