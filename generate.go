/*
 * generate.go, part of torsion.
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
	"strings"
)

//SD data tags consumed and produced by this package.
const (
	//TagTorsionAtoms holds the 4 atom indexes of the dihedral of
	//interest, 1-based, whitespace-separated. Written upstream by the
	//fragmentation step and rewritten here after generation.
	TagTorsionAtoms = "TORSION_ATOMS_FRAGMENT"
	//TagParentMol holds the dihedral indexes in the parent molecule the
	//fragment was cut from. Opaque here, copied forward unchanged.
	TagParentMol = "TORSION_ATOMS_ParentMol"
	//TagAtomProp is the atom-property rendering of the dihedral written
	//for downstream visualization tools.
	TagAtomProp = "TORSION_ATOMPROP"
	//TagConformerLabel uniquely identifies a conformer within its
	//ensemble. Mirrored into the conformer title.
	TagConformerLabel = "CONFORMER_LABEL"
	//TagTorsionAngle holds the nominal grid angle of a scanned
	//conformer, as a rounded-integer-degree string and, in the parallel
	//numeric tag, as a float64.
	TagTorsionAngle = "TORSION_ANGLE"
	//TagEnergy is the per-conformer energy stamped by engines that
	//compute one.
	TagEnergy = "ENERGY"
)

//GenOptions configures ensemble generation.
type GenOptions struct {
	//NumConfs is the maximum number of conformers generated. With
	//NumConfs <= 1 sampling is skipped altogether and the input
	//conformer is passed through. Default 100.
	NumConfs int
	//RMSCutoff is the minimum RMS distance between retained conformers.
	//Default 0.0 (disabled).
	RMSCutoff float64
	//EnergyWindow is the maximum energy above the lowest-energy
	//conformer for retention. Default 25.
	EnergyWindow float64
	//Policy selects the rotatable-bond predicate composition.
	//Default PolicyGeneral.
	Policy RotorPolicy
}

//DefaultGenOptions returns the default generation settings.
func DefaultGenOptions() *GenOptions {
	return &GenOptions{
		NumConfs:     100,
		RMSCutoff:    0.0,
		EnergyWindow: 25.0,
		Policy:       PolicyGeneral,
	}
}

//GenerateEnsemble builds a labeled conformer ensemble for the dihedral
//of interest of mol, sampling with the given engine restricted to the
//rotatable bonds near the dihedral. Every rule in lib is loaded into the
//engine's torsion rule table first; a rejected rule aborts immediately.
//The input molecule is never modified: the returned ensemble is a fresh
//molecule whose TORSION_ATOMS_FRAGMENT and TORSION_ATOMPROP tags hold
//the dihedral indexes re-derived after any renumbering done by the
//engine, and whose conformers are labeled
//<title>_<parent-tag-fields>_<2-digit index>.
func GenerateEnsemble(mol *Molecule, lib []string, sampler Sampler, o *GenOptions) (*Molecule, error) {
	if o == nil {
		o = DefaultGenOptions()
	}
	dih, err := DihedralFromSDData(mol)
	if err != nil {
		return nil, errDecorate(err, "GenerateEnsemble")
	}
	work := mol.Copy()
	if o.NumConfs > 1 {
		opts := &SamplerOptions{
			Dense:           true,
			EnumRings:       false,
			EnumNitrogen:    false,
			SampleHydrogens: true,
			IncludeInput:    false,
			EnergyWindow:    o.EnergyWindow,
			MaxConfs:        o.NumConfs,
			RMSCutoff:       o.RMSCutoff,
			Rotor:           RotorPredicate(work, o.Policy, dih),
		}
		for _, rule := range lib {
			if !sampler.LoadTorsionRule(rule) {
				return nil, newRuleLoadError(rule)
			}
		}
		ats := dih.Atoms()
		ens, remap, err := sampler.Sample(work, opts, HasAtomIndex(ats[0], ats[1], ats[2], ats[3]))
		if err != nil {
			return nil, errDecorate(err, "GenerateEnsemble")
		}
		if ens.NConfs() == 0 {
			return nil, newGenerationError(mol.Title())
		}
		newdih, err := remapDihedral(dih, remap, ens.Len())
		if err != nil {
			return nil, errDecorate(err, "GenerateEnsemble")
		}
		nd := newdih.Atoms()
		ens.ClearSDData()
		ens.SetSDData(TagTorsionAtoms, newdih.String())
		ens.SetSDData(TagParentMol, mol.SDData(TagParentMol))
		ens.SetSDData(TagAtomProp, fmt.Sprintf("cs1:0:1;1%%%d:1%%%d:1%%%d:1%%%d", nd[0]+1, nd[1]+1, nd[2]+1, nd[3]+1))
		work = ens
	}
	parent := strings.Join(strings.Fields(mol.SDData(TagParentMol)), "_")
	for i, conf := range work.Confs() {
		label := fmt.Sprintf("%s_%s_%02d", mol.Title(), parent, i)
		conf.SetSDData(TagConformerLabel, label)
		conf.SetTitle(label)
	}
	return work, nil
}

//remapDihedral follows the 4 dihedral atoms through the index mapping
//returned by a sampling engine.
func remapDihedral(dih *Dihedral, remap []int, natoms int) (*Dihedral, error) {
	ats := dih.Atoms()
	var nd [4]int
	for i, old := range ats {
		if old >= len(remap) {
			return nil, &CError{msg: fmt.Sprintf("Sampler returned an index map of length %d, which does not cover atom %d", len(remap), old)}
		}
		nd[i] = remap[old]
	}
	newdih, err := NewDihedral(nd[0], nd[1], nd[2], nd[3], natoms)
	if err != nil {
		return nil, errDecorate(err, "remapDihedral")
	}
	return newdih, nil
}
