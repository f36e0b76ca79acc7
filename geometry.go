/*
 * geometry.go, part of torsion.
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

	v3 "github.com/qcgrid/torsion/v3"
)

const appzero float64 = 0.0000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Deg2Rad converts an angle in degrees to radians.
func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

//Rad2Deg converts an angle in radians to degrees.
func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

//Angle takes 2 vectors and calculates the angle in radians between them.
//It does not check for correctness or return errors!
func Angle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm(2) * v2.Norm(2)
	argument := v1.Dot(v2) / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

//DihedralAngle calculates the dihedral between the points a, b, c, d,
//where the first plane is defined by abc and the second by bcd. The
//result is in radians, in (-pi, pi].
func DihedralAngle(a, b, c, d *v3.Matrix) float64 {
	all := []*v3.Matrix{a, b, c, d}
	for number, point := range all {
		if point == nil {
			panic(fmt.Sprintf("Vector %d is nil", number))
		}
		pr, pc := point.Dims()
		if pr != 1 || pc != 3 {
			panic(fmt.Sprintf("Vector %d has invalid shape", number))
		}
	}
	//bma=b minus a
	bma := v3.Zeros(1)
	cmb := v3.Zeros(1)
	dmc := v3.Zeros(1)
	bmascaled := v3.Zeros(1)
	bma.Sub(b, a)
	cmb.Sub(c, b)
	dmc.Sub(d, c)
	bmascaled.Scale(cmb.Norm(2), bma)
	v1 := v3.Zeros(1)
	v2 := v3.Zeros(1)
	v1.Cross(bma, cmb)
	v2.Cross(cmb, dmc)
	first := bmascaled.Dot(v2)
	second := v1.Dot(v2)
	return math.Atan2(first, second)
}

//RMSD returns the root of the mean square deviation between the sets of
//cartesian coordinates in test and template, without superposition.
func RMSD(test, template *v3.Matrix) (float64, error) {
	tmr, tmc := template.Dims()
	tsr, tsc := test.Dims()
	if tmr != tsr || tmc != 3 || tsc != 3 {
		return 0, &CError{msg: "Ill formed matrices for RMSD calculation"}
	}
	ctempla := template.Clone()
	ctempla.Sub(ctempla, test)
	var rmsd float64
	for i := 0; i < tmr; i++ {
		temp := ctempla.VecView(i)
		rmsd += math.Pow(temp.Norm(2), 2)
	}
	rmsd = rmsd / float64(tmr)
	return math.Sqrt(rmsd), nil
}

//RotateAbout rotates the coordinates in coordsorig by angle radians
//around the axis given by the vector ax2-ax1, passing through ax1. It
//returns the rotated coordinates; the original is not affected. Uses
//Clifford algebra.
func RotateAbout(coordsorig, ax1, ax2 *v3.Matrix, angle float64) (*v3.Matrix, error) {
	if ax1.NVecs() != 1 || ax2.NVecs() != 1 {
		return nil, &CError{msg: "RotateAbout: axis endpoints must be 1x3 vectors"}
	}
	axis := v3.Zeros(1)
	axis.Sub(ax2, ax1)
	if axis.Norm(2) <= appzero {
		return nil, &CError{msg: "RotateAbout: the two axis points coincide"}
	}
	coords := v3.Zeros(coordsorig.NVecs())
	coords.SubVec(coordsorig, ax1)
	rot := CliRotate(coords, axis, angle)
	rot.AddVec(rot, ax1)
	return rot, nil
}
