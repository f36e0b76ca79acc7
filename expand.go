/*
 * expand.go, part of torsion.
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

//ExpandTorsions expands every conformer of mol into numPoints rigid
//copies, one per grid angle of the dihedral of interest: no relaxation,
//only the far side of the central bond moves. The result holds
//len(input conformers) * numPoints conformers (plus the input conformers
//first, if includeInput), each labeled <parent-label>_<2-digit angle
//index> and stamped with its nominal angle. The input is not modified.
func ExpandTorsions(mol *Molecule, dih *Dihedral, numPoints int, includeInput bool) (*Molecule, error) {
	if numPoints < 1 {
		return nil, &CError{msg: fmt.Sprintf("ExpandTorsions: invalid number of grid points %d", numPoints)}
	}
	out := mol.Copy()
	parents := out.Confs()
	if !includeInput {
		out.ClearConfs()
	}
	grid := AngleGrid(numPoints)
	for _, parent := range parents {
		base := parentLabel(mol, parent)
		for i, angle := range grid {
			nc := parent.Copy()
			if err := dih.Set(out, nc, angle); err != nil {
				return nil, errDecorate(err, "ExpandTorsions")
			}
			deg := int(math.Round(Rad2Deg(angle)))
			label := fmt.Sprintf("%s_%02d", base, i)
			nc.SetSDData(TagConformerLabel, label)
			nc.SetSDData(TagTorsionAngle, strconv.Itoa(deg))
			nc.SetFloatData(TagTorsionAngle, float64(deg))
			nc.SetTitle(fmt.Sprintf("%s: Angle %d", label, deg))
			out.AddConf(nc)
		}
	}
	return out, nil
}

//parentLabel returns the label stem for the expansion of a conformer:
//its CONFORMER_LABEL tag, falling back to its title and then to the
//molecule title.
func parentLabel(mol *Molecule, conf *Conformer) string {
	if conf.HasSDData(TagConformerLabel) {
		return conf.SDData(TagConformerLabel)
	}
	if conf.Title() != "" {
		return conf.Title()
	}
	return mol.Title()
}

//ConfSplitter yields the conformers of a multi-conformer molecule one at
//a time, each as a fresh single-conformer molecule.
type ConfSplitter struct {
	mol     *Molecule
	current int
}

//SplitConformers returns a splitter over the conformers of mol. Each
//call starts a fresh pass; mol must not gain or lose conformers while
//the splitter is in use.
func SplitConformers(mol *Molecule) *ConfSplitter {
	return &ConfSplitter{mol: mol}
}

//Next returns the next conformer as a single-conformer molecule, or nil
//when the conformers are exhausted. The returned molecule shares no
//storage with the original; it carries the molecule-level tags of the
//original and takes the conformer's title as its own.
func (S *ConfSplitter) Next() *Molecule {
	if S.current >= S.mol.NConfs() {
		return nil
	}
	conf := S.mol.Conf(S.current)
	S.current++
	R := S.mol.Copy()
	R.ClearConfs()
	R.AddConf(conf.Copy())
	if conf.Title() != "" {
		R.SetTitle(conf.Title())
	}
	return R
}
