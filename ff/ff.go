/*
 * ff.go, part of torsion.
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

//Package ff is a self-contained conformer sampler and torsion scanner
//built on torsion driving plus a pairwise steric score. It is fully
//deterministic and has no external dependencies, which makes it the
//reference engine for the rest of the library; production setups would
//instead wrap a real force-field program behind the same interfaces.
package ff

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	chem "github.com/qcgrid/torsion"
	"github.com/qcgrid/torsion/chemgraph"
	v3 "github.com/qcgrid/torsion/v3"
)

//Error is the error type of the package.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string { return err.message }

//Decorate adds dec to the decoration slice of the error and returns the
//resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//rule is one entry of the torsion rule table: a match pattern plus the
//drive angles, in degrees, used for bonds matching it.
type rule struct {
	pattern string
	angles  []int
}

const defaultMaxCandidates = 5000

//The staggered rotamers of an sp3-sp3 bond.
var defaultDriveAngles = []int{60, 180, 300}

//Driver implements the Sampler and Scanner interfaces of the parent
//package by enumerating rotamers over a discrete drive-angle grid and
//ranking them with the steric score. The zero value is ready to use.
type Driver struct {
	rules []rule
	//MaxCandidates caps the rotamer enumeration of Sample. 0 means the
	//built-in default.
	MaxCandidates int
}

//New returns a Driver with an empty rule table.
func New() *Driver {
	return &Driver{}
}

//LoadTorsionRule parses one torsion rule of the form
//"pattern angle [angle...]", with the angles as integer degrees in
//[0, 360), and adds it to the rule table. It reports whether the rule
//was accepted. The drive-angle grid of the driver is the union of the
//angles of its rules, so loaded rules replace the default grid.
func (D *Driver) LoadTorsionRule(r string) bool {
	fields := strings.Fields(r)
	if len(fields) < 2 {
		return false
	}
	nr := rule{pattern: fields[0]}
	for _, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 || v >= 360 {
			return false
		}
		nr.angles = append(nr.angles, v)
	}
	D.rules = append(D.rules, nr)
	return true
}

//driveAngles returns the sorted union of the angles of the rule table,
//or the default staggered grid if the table is empty.
func (D *Driver) driveAngles() []int {
	if len(D.rules) == 0 {
		return defaultDriveAngles
	}
	set := make(map[int]bool)
	for _, r := range D.rules {
		for _, a := range r.angles {
			set[a] = true
		}
	}
	angles := make([]int, 0, len(set))
	for a := range set {
		angles = append(angles, a)
	}
	sort.Ints(angles)
	return angles
}

//rotor is a drivable bond plus the reference dihedral used to read and
//set its rotation state.
type rotor struct {
	bond *chem.Bond
	dih  *chem.Dihedral
}

//refNeighbor picks the reference atom for a rotor dihedral: the
//lowest-index neighbor of at other than excl, preferring heavy atoms.
//With sampleH false, all-hydrogen ends make the bond non-drivable.
func refNeighbor(at, excl *chem.Atom, sampleH bool) *chem.Atom {
	var heavy, hydrogen *chem.Atom
	for _, b := range at.Bonds {
		n := b.Cross(at)
		if n.Index == excl.Index {
			continue
		}
		if n.IsHydrogen() {
			if hydrogen == nil || n.Index < hydrogen.Index {
				hydrogen = n
			}
		} else if heavy == nil || n.Index < heavy.Index {
			heavy = n
		}
	}
	if heavy != nil {
		return heavy
	}
	if !sampleH {
		return nil
	}
	return hydrogen
}

//findRotors collects the drivable bonds of mol: those accepted by pred,
//with both atoms in the within set (nil means anywhere), and with a
//reference neighbor available on each end.
func findRotors(mol *chem.Molecule, pred chem.BondPredicate, within map[int]bool, sampleH bool) ([]rotor, error) {
	var rotors []rotor
	for _, b := range mol.Bonds() {
		if pred != nil && !pred(b) {
			continue
		}
		if within != nil && (!within[b.At1.Index] || !within[b.At2.Index]) {
			continue
		}
		a := refNeighbor(b.At1, b.At2, sampleH)
		d := refNeighbor(b.At2, b.At1, sampleH)
		if a == nil || d == nil {
			continue
		}
		dih, err := chem.NewDihedral(a.Index, b.At1.Index, b.At2.Index, d.Index, mol.Len())
		if err != nil {
			return nil, err
		}
		rotors = append(rotors, rotor{bond: b, dih: dih})
	}
	return rotors, nil
}

//stericExclusions marks the 1-2 and 1-3 atom pairs, which the steric
//score skips.
func stericExclusions(mol *chem.Molecule) [][]bool {
	n := mol.Len()
	excl := make([][]bool, n)
	for i := range excl {
		excl[i] = make([]bool, n)
		excl[i][i] = true
	}
	mark := func(i, j int) {
		excl[i][j] = true
		excl[j][i] = true
	}
	for _, b := range mol.Bonds() {
		mark(b.At1.Index, b.At2.Index)
	}
	for i := 0; i < n; i++ {
		at := mol.Atom(i)
		for _, b1 := range at.Bonds {
			for _, b2 := range at.Bonds {
				n1 := b1.Cross(at)
				n2 := b2.Cross(at)
				if n1.Index != n2.Index {
					mark(n1.Index, n2.Index)
				}
			}
		}
	}
	return excl
}

//Energy is the steric score of a conformer: a 6-12 pairwise term over
//the van der Waals radii, skipping the 1-2 and 1-3 pairs. It is not a
//physical energy; it only ranks rotamers of one same molecule. excl is
//the exclusion table from stericExclusions.
func Energy(mol *chem.Molecule, conf *chem.Conformer, excl [][]bool) float64 {
	coords := conf.Coords()
	n := mol.Len()
	diff := v3.Zeros(1)
	var e float64
	for i := 0; i < n; i++ {
		vi := coords.VecView(i)
		ri := chem.VdwRad(mol.Atom(i).Symbol)
		for j := i + 1; j < n; j++ {
			if excl[i][j] {
				continue
			}
			diff.Sub(coords.VecView(j), vi)
			r := diff.Norm(2)
			if r < 1e-6 {
				r = 1e-6
			}
			s6 := math.Pow((ri+chem.VdwRad(mol.Atom(j).Symbol))/r, 6)
			e += s6*s6 - 2*s6
		}
	}
	return e
}

type candidate struct {
	conf   *chem.Conformer
	energy float64
}

//rmsRedundant reports whether c sits within cutoff RMS of an already
//kept conformer.
func rmsRedundant(c *chem.Conformer, kept []candidate, cutoff float64) bool {
	for _, k := range kept {
		r, err := chem.RMSD(c.Coords(), k.conf.Coords())
		if err == nil && r < cutoff {
			return true
		}
	}
	return false
}

//Sample enumerates the rotamers of the first conformer of mol over the
//drive-angle grid of the driver, one choice per drivable bond, ranks
//them by the steric score and returns the survivors of the energy
//window, RMS dedup and conformer cap of opts. With region non-nil,
//driving is restricted to the connected fragment holding the accepted
//atoms. The returned molecule has its atoms renumbered heavy-first; the
//returned slice maps every input atom index to its new index.
func (D *Driver) Sample(mol *chem.Molecule, opts *chem.SamplerOptions, region chem.AtomPredicate) (*chem.Molecule, []int, error) {
	if opts == nil {
		opts = &chem.SamplerOptions{SampleHydrogens: true}
	}
	if mol.NConfs() == 0 {
		return nil, nil, &Error{message: "Sample: the input molecule has no conformers"}
	}
	work := mol.Copy()
	work.ClearConfs()
	seed := mol.Conf(0).Copy()
	var within map[int]bool
	if region != nil {
		T := chemgraph.New(work)
		within = make(map[int]bool)
		for i := 0; i < work.Len(); i++ {
			if region(work.Atom(i)) {
				for k := range T.ComponentOf(i) {
					within[k] = true
				}
			}
		}
	}
	pred := opts.Rotor
	if pred == nil {
		pred = chem.OrBond(work.IsRotor, work.IsFlexibleBond)
	}
	rotors, err := findRotors(work, pred, within, opts.SampleHydrogens)
	if err != nil {
		return nil, nil, err
	}
	angles := D.driveAngles()
	excl := stericExclusions(work)
	max := D.MaxCandidates
	if max == 0 {
		max = defaultMaxCandidates
	}
	var cands []candidate
	if opts.IncludeInput || len(rotors) == 0 {
		c := seed.Copy()
		cands = append(cands, candidate{c, Energy(work, c, excl)})
	}
	if len(rotors) > 0 {
		counter := make([]int, len(rotors))
		for {
			c := seed.Copy()
			ok := true
			for ri, r := range rotors {
				if err := r.dih.Set(work, c, chem.Deg2Rad(float64(angles[counter[ri]]))); err != nil {
					ok = false
					break
				}
			}
			if ok {
				cands = append(cands, candidate{c, Energy(work, c, excl)})
			}
			if len(cands) >= max {
				break
			}
			//advance the odometer
			i := 0
			for ; i < len(counter); i++ {
				counter[i]++
				if counter[i] < len(angles) {
					break
				}
				counter[i] = 0
			}
			if i == len(counter) {
				break
			}
		}
	}
	if len(cands) == 0 {
		return nil, nil, &Error{message: fmt.Sprintf("Sample: no conformers could be built for %s", mol.Title())}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].energy < cands[j].energy })
	emin := cands[0].energy
	var kept []candidate
	for _, c := range cands {
		if opts.EnergyWindow > 0 && c.energy-emin > opts.EnergyWindow {
			continue
		}
		if opts.RMSCutoff > 0 && rmsRedundant(c.conf, kept, opts.RMSCutoff) {
			continue
		}
		kept = append(kept, c)
		if opts.MaxConfs > 0 && len(kept) >= opts.MaxConfs {
			break
		}
	}
	for _, c := range kept {
		c.conf.SetFloatData(chem.TagEnergy, c.energy)
		work.AddConf(c.conf)
	}
	return renumberHeavyFirst(work)
}

//renumberHeavyFirst rebuilds mol with the heavy atoms first and the
//hydrogens after, preserving relative order within each group, and
//returns the rebuilt molecule plus the map from old to new atom indexes.
func renumberHeavyFirst(mol *chem.Molecule) (*chem.Molecule, []int, error) {
	n := mol.Len()
	remap := make([]int, n)
	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !mol.Atom(i).IsHydrogen() {
			order = append(order, i)
		}
	}
	for i := 0; i < n; i++ {
		if mol.Atom(i).IsHydrogen() {
			order = append(order, i)
		}
	}
	ats := make([]*chem.Atom, n)
	for newi, oldi := range order {
		remap[oldi] = newi
		a := mol.Atom(oldi).Copy()
		a.ID = 0 //reassigned from the new order
		ats[newi] = a
	}
	out, err := chem.NewMolecule(ats, mol.Title())
	if err != nil {
		return nil, nil, err
	}
	for _, b := range mol.Bonds() {
		nb := out.NewBond(remap[b.At1.Index], remap[b.At2.Index], b.Order)
		nb.Dist = b.Dist
	}
	out.CopySDData(mol)
	for _, c := range mol.Confs() {
		coords := c.Coords()
		nc := v3.Zeros(n)
		for oldi := 0; oldi < n; oldi++ {
			nc.SetMatrix(remap[oldi], 0, coords.VecView(oldi))
		}
		conf := chem.NewConformer(nc)
		conf.SetTitle(c.Title())
		conf.CopySDData(c)
		out.AddConf(conf)
	}
	return out, remap, nil
}

//ScanTorsion drives dih from 0 to 360 degrees inclusive in steps of
//opts.DeltaDeg, starting from the first conformer of mol. At each step
//the rotors away from the driven dihedral are relaxed greedily over the
//drive-angle grid under the steric score, which stands in for the
//force-field minimization of a real engine. Both the 0 and the 360
//degree endpoints are emitted, as separate conformers of the same
//geometry. Atoms are not renumbered.
func (D *Driver) ScanTorsion(mol *chem.Molecule, dih *chem.Dihedral, opts *chem.ScanOptions) (*chem.Molecule, error) {
	if opts == nil || opts.DeltaDeg <= 0 {
		return nil, &Error{message: "ScanTorsion: a positive angular step is required"}
	}
	if opts.ForceField != "" && opts.ForceField != chem.ForceFieldMMFF94 {
		return nil, &Error{message: fmt.Sprintf("ScanTorsion: unsupported force field '%s'", opts.ForceField)}
	}
	if opts.Solvent != "" && opts.Solvent != chem.SolventNone {
		return nil, &Error{message: fmt.Sprintf("ScanTorsion: unsupported solvent model '%s'", opts.Solvent)}
	}
	if mol.NConfs() == 0 {
		return nil, &Error{message: "ScanTorsion: the input molecule has no conformers"}
	}
	n := int(math.Round(360.0 / opts.DeltaDeg))
	if n < 1 {
		return nil, &Error{message: fmt.Sprintf("ScanTorsion: angular step %g leaves no grid points", opts.DeltaDeg)}
	}
	work := mol.Copy()
	seed := work.Conf(0).Copy()
	work.ClearConfs()
	ats := dih.Atoms()
	fixed := map[int]bool{ats[0]: true, ats[1]: true, ats[2]: true, ats[3]: true}
	all, err := findRotors(work, chem.OrBond(work.IsRotor, work.IsFlexibleBond), nil, false)
	if err != nil {
		return nil, err
	}
	//Rotors touching the driven dihedral would fight it, so they stay
	//frozen. Any other rotor moves its whole side rigidly, which keeps
	//the driven dihedral untouched.
	var relax []rotor
	for _, r := range all {
		if fixed[r.bond.At1.Index] || fixed[r.bond.At2.Index] {
			continue
		}
		relax = append(relax, r)
	}
	excl := stericExclusions(work)
	angles := D.driveAngles()
	for i := 0; i <= n; i++ {
		c := seed.Copy()
		if err := dih.Set(work, c, 2*math.Pi*float64(i)/float64(n)); err != nil {
			return nil, err
		}
		for _, r := range relax {
			best := r.dih.Measure(c)
			bestE := Energy(work, c, excl)
			for _, a := range angles {
				if err := r.dih.Set(work, c, chem.Deg2Rad(float64(a))); err != nil {
					continue
				}
				if e := Energy(work, c, excl); e < bestE {
					bestE = e
					best = chem.Deg2Rad(float64(a))
				}
			}
			if err := r.dih.Set(work, c, best); err != nil {
				return nil, err
			}
		}
		c.SetFloatData(chem.TagEnergy, Energy(work, c, excl))
		work.AddConf(c)
	}
	return work, nil
}
