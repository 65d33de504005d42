/*
 * v3_test.go, part of goeam.
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
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("NVecs: %d", A.NVecs())
	}
	if v := A.Vec(1); v != [3]float64{4, 5, 6} {
		Te.Errorf("Vec(1): %v", v)
	}
	A.SetVec(1, [3]float64{100, 5, 6})
	if A.At(1, 0) != 100 || a[3] != 100 {
		Te.Error("SetVec doesn't write through to the data slice")
	}
	if _, err := NewMatrix([]float64{1, 2}); err == nil {
		Te.Error("NewMatrix should refuse a slice whose length is not a multiple of 3")
	}
}

func TestAddVecStack(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0, 1, 1, 1})
	B := Zeros(2)
	B.AddVec(A, [3]float64{1, 2, 3})
	want := mat.NewDense(2, 3, []float64{1, 2, 3, 2, 3, 4})
	if !mat.Equal(B, want) {
		Te.Errorf("AddVec:%s", B)
	}
	S := Stack(A, B)
	if S.NVecs() != 4 || S.Vec(3) != [3]float64{2, 3, 4} {
		Te.Errorf("Stack:%s", S)
	}
	E := Stack(Zeros(0), A)
	if E.NVecs() != 2 || Zeros(0).NVecs() != 0 {
		Te.Errorf("Stack with an empty matrix:%s", E)
	}
	if x := S.Extents(); x != [3]float64{2, 3, 4} {
		Te.Errorf("Extents: %v", x)
	}
}

func TestDense2MatrixPanics(Te *testing.T) {
	defer func() {
		if r := recover(); r != ErrNot3xX {
			Te.Errorf("expected ErrNot3xX, got %v", r)
		}
	}()
	Dense2Matrix(mat.NewDense(2, 2, nil))
}
