/*
 * profile.go, part of torsion.
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

//Package scanplot draws torsional energy profiles from scanned
//conformer ensembles.
package scanplot

import (
	"fmt"
	"sort"

	chem "github.com/qcgrid/torsion"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
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

//Points extracts the angle/energy profile of a scanned ensemble: one
//point per conformer, taken from the numeric angle and energy tags,
//sorted by angle. It fails if any conformer lacks either tag.
func Points(mol *chem.Molecule) (plotter.XYs, error) {
	if mol.NConfs() == 0 {
		return nil, &Error{message: "Points: the molecule has no conformers"}
	}
	xys := make(plotter.XYs, 0, mol.NConfs())
	for i, conf := range mol.Confs() {
		if !conf.HasFloatData(chem.TagTorsionAngle) {
			return nil, &Error{message: fmt.Sprintf("Points: conformer %d carries no numeric angle tag", i)}
		}
		if !conf.HasFloatData(chem.TagEnergy) {
			return nil, &Error{message: fmt.Sprintf("Points: conformer %d carries no numeric energy tag", i)}
		}
		xys = append(xys, plotter.XY{X: conf.FloatData(chem.TagTorsionAngle), Y: conf.FloatData(chem.TagEnergy)})
	}
	sort.Slice(xys, func(i, j int) bool { return xys[i].X < xys[j].X })
	return xys, nil
}

//Profile builds the energy-vs-angle plot for a scanned ensemble.
func Profile(mol *chem.Molecule, title string) (*plot.Plot, error) {
	xys, err := Points(mol)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Dihedral angle (deg)"
	p.Y.Label.Text = "Energy"
	//Constant X axis: the scan always covers the full turn
	p.X.Min = 0
	p.X.Max = 360
	p.Add(plotter.NewGrid())
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	p.Add(line, points)
	return p, nil
}

//SaveProfile builds the energy profile plot of mol and writes it to
//filename, with the format taken from the extension (png, pdf, svg...).
func SaveProfile(mol *chem.Molecule, title, filename string) error {
	p, err := Profile(mol, title)
	if err != nil {
		return err
	}
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename)
}
