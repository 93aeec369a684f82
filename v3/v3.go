/*
 * v3.go, part of fragprep.
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
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

/*Package v3 implements a Matrix type representing a row-major set of
vectors in 3D space (i.e. an Nx3 matrix). It is used in fragprep to
represent the cartesian coordinates of the atoms in a conformer. It is
based on gonum's Dense type, with additional restrictions stemming
from the fixed number of columns.*/
package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of row vectors in 3D space. Within the package it is
//understood that a "vector" is a row vector, i.e. the cartesian
//coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

//Dense2Matrix wraps a 3-col gonum Dense into a Matrix. It panics if
//the matrix given doesn't have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(fmt.Sprintf("v3: can't wrap a Dense with %d columns", c))
	}
	return &Matrix{A}
}

//Matrix2Dense returns the gonum Dense underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the
//other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of the matrix. Changes in
//the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from i and spanning r rows.
func (F *Matrix) View(i, r int) *Matrix {
	ret := F.Dense.Slice(i, i+r, 0, 3).(*mat.Dense)
	return &Matrix{ret}
}

//Copy copies A into the receiver. It panics if the receiver is too
//small to contain A.
func (F *Matrix) Copy(A *Matrix) {
	F.Dense.Copy(A.Dense)
}

//SetVecs puts the vectors of A in the receiver, starting from the
//vector i of the receiver.
func (F *Matrix) SetVecs(i int, A *Matrix) {
	ar, _ := A.Dims()
	if i+ar > F.NVecs() {
		panic("v3: SetVecs out of range")
	}
	for k := 0; k < ar; k++ {
		for j := 0; j < 3; j++ {
			F.Set(i+k, j, A.At(k, j))
		}
	}
}

//SwapVecs swaps the vectors i and j of the receiver.
func (F *Matrix) SwapVecs(i, j int) {
	if i >= F.NVecs() || j >= F.NVecs() {
		panic("v3: SwapVecs out of range")
	}
	for k := 0; k < 3; k++ {
		fi := F.At(i, k)
		F.Set(i, k, F.At(j, k))
		F.Set(j, k, fi)
	}
}

//Add puts in the receiver the sum A+B. The receiver may be one of the
//arguments.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

//Sub puts in the receiver the difference A-B. The receiver may be one
//of the arguments.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

//Scale puts in the receiver the matrix A scaled by i.
func (F *Matrix) Scale(i float64, A *Matrix) {
	F.Dense.Scale(i, A.Dense)
}

//Mul wraps the gonum multiplication to take care of the case when one
//of the arguments is also the receiver. Since the receiver is a
//Matrix, the gonum function could compare A (mat.Dense) with F
//(Matrix) and not know that internally F.Dense==A, hence the need for
//this function.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if C, ok := A.(*Matrix); ok {
		A = C.Dense
	}
	if C, ok := B.(*Matrix); ok {
		B = C.Dense
	}
	F.Dense.Mul(A, B)
}

//AddVec adds the row vector vec to each vector of A and puts the
//result in the receiver. It panics if vec is not a 1x3 matrix.
func (F *Matrix) AddVec(A, vec *Matrix) {
	vr, vc := vec.Dims()
	if vr != 1 || vc != 3 {
		panic("v3: AddVec requires a 1x3 matrix as second argument")
	}
	ar, _ := A.Dims()
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)+vec.At(0, j))
		}
	}
}

//SubVec subtracts the row vector vec from each vector of A and puts
//the result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	v := Zeros(1)
	v.Scale(-1, vec)
	F.AddVec(A, v)
}

//Mean returns a 1x3 matrix with the mean of each column of F.
func (F *Matrix) Mean() *Matrix {
	r, _ := F.Dims()
	m := Zeros(1)
	for i := 0; i < r; i++ {
		for j := 0; j < 3; j++ {
			m.Set(0, j, m.At(0, j)+F.At(i, j))
		}
	}
	m.Scale(1.0/float64(r), m)
	return m
}

//Norm returns the Frobenius norm of the matrix, which, for a single
//vector, is its magnitude.
func (F *Matrix) Norm() float64 {
	return mat.Norm(F.Dense, 2)
}

//Dot returns the dot product between the receiver and A, both of
//which must be 1x3 matrices.
func (F *Matrix) Dot(A *Matrix) float64 {
	if F.NVecs() != 1 || A.NVecs() != 1 {
		panic("v3: Dot requires 1x3 matrices")
	}
	var d float64
	for j := 0; j < 3; j++ {
		d += F.At(0, j) * A.At(0, j)
	}
	return d
}

//Cross puts in the receiver, which must be a 1x3 matrix, the cross
//product of a and b, also 1x3 matrices.
func (F *Matrix) Cross(a, b *Matrix) {
	if F.NVecs() != 1 || a.NVecs() != 1 || b.NVecs() != 1 {
		panic("v3: Cross requires 1x3 matrices")
	}
	c0 := a.At(0, 1)*b.At(0, 2) - a.At(0, 2)*b.At(0, 1)
	c1 := a.At(0, 2)*b.At(0, 0) - a.At(0, 0)*b.At(0, 2)
	c2 := a.At(0, 0)*b.At(0, 1) - a.At(0, 1)*b.At(0, 0)
	F.Set(0, 0, c0)
	F.Set(0, 1, c1)
	F.Set(0, 2, c2)
}

//Error is the error type for the v3 package. It implements the
//fragprep Error interface.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return err.message }

//Decorate adds new information to the error and returns the current
//decoration slice. If deco is empty, nothing is added.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
