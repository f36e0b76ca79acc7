/*
 * v3.go, part of torsion.
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

//Package v3 implements matrices of 3D cartesian vectors on top of
//gonum's mat.Dense. Within the package it is understood that a "vector"
//is a row vector, i.e. the cartesian coordinates of a point in 3D space.
//The names of several functions in the package reflect this.
package v3

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, one vector per row.
//It must be able to implement any gonum mat interface.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the underlying gonum matrix of A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a 3-column gonum matrix into a Matrix.
//It panics if A doesn't have exactly 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{message: "Input slice length not divisible by 3", deco: []string{"NewMatrix"}}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of the matrix. Changes in the
//view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from i,j and spanning r rows and c columns.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	ret := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{ret}
}

//Clone returns a copy of the matrix that shares no data with the original.
func (F *Matrix) Clone() *Matrix {
	r := F.NVecs()
	R := Zeros(r)
	R.Dense.Copy(F.Dense)
	return R
}

//SetMatrix puts the matrix A in the receiver, starting from the ith vector
//and jth column of the receiver. Panics if A doesn't fit.
func (F *Matrix) SetMatrix(i, j int, A *Matrix) {
	ar, ac := A.Dims()
	if ar+i > F.NVecs() || ac+j > 3 {
		panic(ErrShape)
	}
	for k := 0; k < ar; k++ {
		for l := 0; l < ac; l++ {
			F.Set(k+i, l+j, A.At(k, l))
		}
	}
}

//SomeVecs copies the vectors of A given by the list of indexes clist
//into the receiver, in order. The receiver must have len(clist) vectors.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) {
		panic(ErrShape)
	}
	for k, j := range clist {
		if j >= A.NVecs() {
			panic(ErrIndexOutOfRange)
		}
		for l := 0; l < 3; l++ {
			F.Set(k, l, A.At(j, l))
		}
	}
}

//SetVecs replaces the vectors of the receiver indicated by clist with the
//vectors of A, in order. A must have len(clist) vectors.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	if A.NVecs() != len(clist) {
		panic(ErrShape)
	}
	for k, j := range clist {
		if j >= F.NVecs() {
			panic(ErrIndexOutOfRange)
		}
		for l := 0; l < 3; l++ {
			F.Set(j, l, A.At(k, l))
		}
	}
}

//SwapVecs swaps the vectors i and j of the receiver.
func (F *Matrix) SwapVecs(i, j int) {
	if i >= F.NVecs() || j >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	for k := 0; k < 3; k++ {
		vi := F.At(i, k)
		F.Set(i, k, F.At(j, k))
		F.Set(j, k, vi)
	}
}

//Add puts in the receiver the sum A+B. Panics on mismatched dimensions.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

//Sub puts in the receiver the difference A-B. Panics on mismatched dimensions.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

//Scale puts in the receiver the matrix A scaled by v.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

//AddVec adds the 1x3 vector vec to every vector of A and puts the result
//in the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	if vec.NVecs() != 1 {
		panic(ErrShape)
	}
	r := A.NVecs()
	if F.NVecs() != r {
		panic(ErrShape)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)+vec.At(0, j))
		}
	}
}

//SubVec subtracts the 1x3 vector vec from every vector of A and puts the
//result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	if vec.NVecs() != 1 {
		panic(ErrShape)
	}
	neg := Zeros(1)
	neg.Scale(-1, vec)
	F.AddVec(A, neg)
}

//Cross puts the cross product of the 1x3 vectors a and b in the receiver,
//which must also be 1x3.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() != 1 || b.NVecs() != 1 || F.NVecs() != 1 {
		panic(ErrNoCrossProduct)
	}
	ax, ay, az := a.At(0, 0), a.At(0, 1), a.At(0, 2)
	bx, by, bz := b.At(0, 0), b.At(0, 1), b.At(0, 2)
	F.Set(0, 0, ay*bz-az*by)
	F.Set(0, 1, az*bx-ax*bz)
	F.Set(0, 2, ax*by-ay*bx)
}

//Dot returns the dot product of the receiver and B, both 1x3 vectors.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() != 1 || B.NVecs() != 1 {
		panic(ErrShape)
	}
	var d float64
	for i := 0; i < 3; i++ {
		d += F.At(0, i) * B.At(0, i)
	}
	return d
}

//Norm returns the i-norm of the receiver. Most commonly used with i=2,
//the Frobenius norm, which for a 1x3 vector is its euclidean length.
func (F *Matrix) Norm(i float64) float64 {
	return mat.Norm(F.Dense, i)
}

//Unit puts in the receiver the unit vector pointing in the direction of
//the 1x3 vector A.
func (F *Matrix) Unit(A *Matrix) {
	n := A.Norm(2)
	if n <= appzero {
		panic(ErrNullVector)
	}
	F.Scale(1.0/n, A)
}

//Dist returns the euclidean distance between the 1x3 vectors a and b.
func Dist(a, b *Matrix) float64 {
	var d float64
	for i := 0; i < 3; i++ {
		v := a.At(0, i) - b.At(0, i)
		d += v * v
	}
	return math.Sqrt(d)
}
