/*
 * clifford.go, part of torsion.
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
	"math"

	v3 "github.com/qcgrid/torsion/v3"
)

//paravector is an element of the Clifford algebra of 3D space: a scalar,
//a pseudoscalar and the real and imaginary vector components.
type paravector struct {
	real  float64
	imag  float64
	vreal [3]float64
	vimag [3]float64
}

//paravectorFromVec builds a paravector from a 1x3 row vector. The values
//are copied, so the paravector is not affected by later changes to the
//vector.
func paravectorFromVec(A *v3.Matrix) *paravector {
	P := new(paravector)
	for i := 0; i < 3; i++ {
		P.vreal[i] = A.At(0, i)
	}
	return P
}

//reverse returns the reverse of the paravector.
func (P *paravector) reverse() *paravector {
	R := new(paravector)
	R.real = P.real
	R.imag = -P.imag
	R.vreal = P.vreal
	for i := 0; i < 3; i++ {
		R.vimag[i] = -P.vimag[i]
	}
	return R
}

//normalize returns the normalized version of P.
func (P *paravector) normalize() *paravector {
	norm := P.real*P.real + P.imag*P.imag
	for i := 0; i < 3; i++ {
		norm += P.vreal[i]*P.vreal[i] + P.vimag[i]*P.vimag[i]
	}
	norm = math.Sqrt(norm)
	R := new(paravector)
	R.real = P.real / norm
	R.imag = P.imag / norm
	for i := 0; i < 3; i++ {
		R.vreal[i] = P.vreal[i] / norm
		R.vimag[i] = P.vimag[i] / norm
	}
	return R
}

//cliProduct is the Clifford product of 2 paravectors, with the imaginary
//vector part of the result set to zero, which is the case at every step
//when rotating 3D real vectors.
func cliProduct(A, B *paravector) *paravector {
	R := new(paravector)
	R.real = A.real*B.real - A.imag*B.imag
	for i := 0; i < 3; i++ {
		R.real += A.vreal[i]*B.vreal[i] - A.vimag[i]*B.vimag[i]
	}
	R.imag = A.real*B.imag + A.imag*B.real
	for i := 0; i < 3; i++ {
		R.imag += A.vreal[i]*B.vimag[i] + A.vimag[i]*B.vreal[i]
	}
	//Now the real vector part
	R.vreal[0] = A.real*B.vreal[0] + B.real*A.vreal[0] - A.imag*B.vimag[0] - B.imag*A.vimag[0] +
		A.vimag[2]*B.vreal[1] - A.vimag[1]*B.vreal[2] + A.vreal[2]*B.vimag[1] - A.vreal[1]*B.vimag[2]
	R.vreal[1] = A.real*B.vreal[1] + B.real*A.vreal[1] - A.imag*B.vimag[1] - B.imag*A.vimag[1] +
		A.vimag[0]*B.vreal[2] - A.vimag[2]*B.vreal[0] + A.vreal[0]*B.vimag[2] - A.vreal[2]*B.vimag[0]
	R.vreal[2] = A.real*B.vreal[2] + B.real*A.vreal[2] - A.imag*B.vimag[2] - B.imag*A.vimag[2] +
		A.vimag[1]*B.vreal[0] - A.vimag[0]*B.vreal[1] + A.vreal[1]*B.vimag[0] - A.vreal[0]*B.vimag[1]
	return R
}

//cliRotation rotates the paravector A by angle radians around axis,
//using Clifford algebra. axis must be normalized.
func cliRotation(A, axis *paravector, angle float64) *paravector {
	R := new(paravector)
	R.real = math.Cos(angle / 2.0)
	for i := 0; i < 3; i++ {
		R.vimag[i] = math.Sin(angle/2.0) * axis.vreal[i]
	}
	tmp := cliProduct(R.reverse(), A)
	return cliProduct(tmp, R)
}

//CliRotate takes the matrix Target and uses Clifford algebra to rotate
//each of its rows by angle radians around axis. Axis must be a 3D row
//vector. The rotation is right-handed with respect to the direction of
//axis. Target is not modified.
func CliRotate(Target, axis *v3.Matrix, angle float64) *v3.Matrix {
	paxis := paravectorFromVec(axis).normalize()
	R := v3.Zeros(Target.NVecs())
	for i := 0; i < Target.NVecs(); i++ {
		rot := cliRotation(paravectorFromVec(Target.VecView(i)), paxis, angle)
		for j := 0; j < 3; j++ {
			R.Set(i, j, rot.vreal[j])
		}
	}
	return R
}
