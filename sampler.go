/*
 * sampler.go, part of torsion.
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

//This allows running conformer sampling and torsion scanning with
//different engines. The ff subpackage carries a deterministic reference
//implementation; production setups wrap an external geometry engine.

//SamplerOptions configures a conformer sampling run.
type SamplerOptions struct {
	//Dense requests the densest sampling mode of the engine.
	Dense bool
	//EnumRings and EnumNitrogen toggle ring-conformation and
	//nitrogen-inversion enumeration.
	EnumRings    bool
	EnumNitrogen bool
	//SampleHydrogens requests sampling of explicit-hydrogen torsions.
	SampleHydrogens bool
	//IncludeInput retains the input conformer in the output ensemble.
	IncludeInput bool
	//EnergyWindow is the maximum energy above the lowest-energy
	//conformer for a conformer to be retained.
	EnergyWindow float64
	//MaxConfs caps the number of conformers produced.
	MaxConfs int
	//RMSCutoff is the minimum RMS distance between retained conformers.
	//0 disables the geometric dedup.
	RMSCutoff float64
	//Rotor selects the bonds sampled as flexible.
	Rotor BondPredicate
}

//Sampler is a conformer-generation engine.
type Sampler interface {
	//LoadTorsionRule adds one rule to the torsion rule table of the
	//engine, returning whether the rule was accepted.
	LoadTorsionRule(rule string) bool

	//Sample builds a conformer ensemble for mol, restricted to the
	//neighborhood of the atoms accepted by region. The engine may
	//renumber atoms: the returned slice maps every input atom index to
	//the index of the same atom in the returned molecule. The input
	//molecule must not be modified.
	Sample(mol *Molecule, opts *SamplerOptions, region AtomPredicate) (*Molecule, []int, error)
}

//Identifiers for the fixed force-field setup of torsion scans.
const (
	ForceFieldMMFF94 = "MMFF94"
	SolventNone      = "none"
)

//ScanOptions configures a torsion-scan run.
type ScanOptions struct {
	//DeltaDeg is the angular step of the scan, in degrees.
	DeltaDeg float64
	//ForceField identifies the force field used for the per-angle
	//relaxation.
	ForceField string
	//Solvent identifies the implicit solvent model, SolventNone for
	//vacuum.
	Solvent string
}

//Scanner is a fixed-dihedral torsion-scan engine: it drives dih across a
//full turn with the given angular step, relaxing the remaining internal
//coordinates at each step, and returns the resulting conformer set as a
//new molecule. The input molecule must not be modified, and atoms must
//not be renumbered.
type Scanner interface {
	ScanTorsion(mol *Molecule, dih *Dihedral, opts *ScanOptions) (*Molecule, error)
}
