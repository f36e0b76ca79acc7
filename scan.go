/*
 * scan.go, part of torsion.
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
	"math"
	"strconv"
)

//AngleGrid returns the n scan angles 2*pi*i/n, i=0..n-1, in radians.
func AngleGrid(n int) []float64 {
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = 2 * math.Pi * float64(i) / float64(n)
	}
	return grid
}

//ScanTorsion scans the dihedral of interest of mol over a uniform grid
//of numPoints angles covering the full turn, using the given engine with
//the fixed MMFF94/vacuum setup. Scan engines that step from 0 to 360
//inclusive return one conformer too many, with the first and last grid
//points describing the same geometry; the duplicate is detected by the
//measured angle and dropped. Every returned conformer is then snapped
//exactly onto its grid angle and stamped with its nominal angle, both as
//a rounded-degree string and as the parallel numeric tag, and labeled
//<title>_<2-digit index>. The input molecule is not modified; its
//molecule-level SD data is carried over to the result.
func ScanTorsion(mol *Molecule, dih *Dihedral, numPoints int, scanner Scanner) (*Molecule, error) {
	if numPoints < 1 {
		return nil, &CError{msg: fmt.Sprintf("ScanTorsion: invalid number of grid points %d", numPoints)}
	}
	opts := &ScanOptions{
		DeltaDeg:   360.0 / float64(numPoints),
		ForceField: ForceFieldMMFF94,
		Solvent:    SolventNone,
	}
	out, err := scanner.ScanTorsion(mol, dih, opts)
	if err != nil {
		return nil, errDecorate(err, "ScanTorsion")
	}
	out.CopySDData(mol)
	for out.NConfs() > numPoints {
		out.DelConf(wraparoundIndex(out, dih, numPoints))
	}
	if out.NConfs() < numPoints {
		return nil, &CError{msg: fmt.Sprintf("ScanTorsion: engine returned %d conformers for a %d-point scan", out.NConfs(), numPoints)}
	}
	grid := AngleGrid(numPoints)
	for i, conf := range out.Confs() {
		if err := dih.Set(out, conf, grid[i]); err != nil {
			return nil, errDecorate(err, "ScanTorsion")
		}
		deg := int(math.Round(Rad2Deg(grid[i])))
		label := fmt.Sprintf("%s_%02d", mol.Title(), i)
		conf.SetSDData(TagConformerLabel, label)
		conf.SetSDData(TagTorsionAngle, strconv.Itoa(deg))
		conf.SetFloatData(TagTorsionAngle, float64(deg))
		conf.SetTitle(fmt.Sprintf("%s: Angle %d", label, deg))
	}
	return out, nil
}

//wraparoundIndex picks the conformer to drop from an over-full scan: a
//conformer sitting on the 0/360 seam. If two or more conformers sit on
//the seam, the later-enumerated one is the duplicate; otherwise the one
//closest to the full turn from above is.
func wraparoundIndex(mol *Molecule, dih *Dihedral, numPoints int) int {
	half := math.Pi / float64(numPoints) //half a grid step
	var seam []int
	for i, conf := range mol.Confs() {
		a := fullTurnAngle(dih.Measure(conf))
		if a <= half || 2*math.Pi-a <= half {
			seam = append(seam, i)
		}
	}
	if len(seam) >= 2 {
		return seam[len(seam)-1]
	}
	best := 0
	bestdist := math.Inf(1)
	for i, conf := range mol.Confs() {
		if d := 2*math.Pi - fullTurnAngle(dih.Measure(conf)); d < bestdist {
			bestdist = d
			best = i
		}
	}
	return best
}

//fullTurnAngle maps an angle in (-pi, pi] to [0, 2*pi).
func fullTurnAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
