/*
 * matrix.go, part of goeam.
 *
 *
 * Copyright 2023 C. J. Williams
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, one per row.
type Matrix struct {
	*mat.Dense
}

//Zeros returns a zero-filled Matrix with vecs vectors. vecs can be 0.
func Zeros(vecs int) *Matrix {
	if vecs == 0 {
		return &Matrix{&mat.Dense{}}
	}
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

//NewMatrix generates and returns a Matrix with 3 columns from data. data is used,
//not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l == 0 || l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not a positive multiple of %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

//Dense2Matrix wraps a gonum Dense with 3 columns. It panics otherwise.
func Dense2Matrix(A *mat.Dense) *Matrix {
	if _, c := A.Dims(); c != 3 {
		panic(ErrNot3xX)
	}
	return &Matrix{A}
}

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	if F.Dense.IsEmpty() {
		return 0
	}
	r, _ := F.Dims()
	return r
}

//Vec returns a copy of the ith vector.
func (F *Matrix) Vec(i int) [3]float64 {
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v [3]float64) {
	F.SetRow(i, v[:])
}

//AddVec adds the vector vec to each vector of A, putting the result in the receiver.
//Panics if the matrices are mismatched.
func (F *Matrix) AddVec(A *Matrix, vec [3]float64) {
	ar := A.NVecs()
	if F.NVecs() != ar {
		panic(mat.ErrShape)
	}
	for i := 0; i < ar; i++ {
		row := A.RawRowView(i)
		F.Set(i, 0, row[0]+vec[0])
		F.Set(i, 1, row[1]+vec[1])
		F.Set(i, 2, row[2]+vec[2])
	}
}

//Stack puts in the receiver A over B. It returns the new matrix, since
//the receiver can't always be resized in place.
func Stack(A, B *Matrix) *Matrix {
	switch {
	case A.NVecs() == 0 && B.NVecs() == 0:
		return Zeros(0)
	case A.NVecs() == 0:
		return Dense2Matrix(mat.DenseCopyOf(B.Dense))
	case B.NVecs() == 0:
		return Dense2Matrix(mat.DenseCopyOf(A.Dense))
	}
	F := Zeros(A.NVecs() + B.NVecs())
	F.Dense.Stack(A.Dense, B.Dense)
	return F
}

//Extents returns the maximum minus the minimum value of each coordinate.
func (F *Matrix) Extents() [3]float64 {
	var ret [3]float64
	if F.NVecs() == 0 {
		return ret
	}
	col := make([]float64, F.NVecs())
	for j := 0; j < 3; j++ {
		mat.Col(col, j, F)
		ret[j] = floats.Max(col) - floats.Min(col)
	}
	return ret
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		v = append(v, fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2]))
	}
	return "\n[" + strings.TrimPrefix(strings.Join(v, "\n"), " ") + " ]"
}

//Errors

//Error is the error type of v3. It has the same methods as eam.Error, it is
//redeclared here to avoid a circular import.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("goeam/v3: %s", err.message)
}

//Decorate Adds new information to the error
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//PanicMsg is the type of the panics of this package.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const ErrNot3xX = PanicMsg("goeam/v3: A v3.Matrix should have 3 columns")
