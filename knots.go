/*
 * knots.go, part of goeam.
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

package eam

import (
	"cmp"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

//Knot is one term a·(r_p - r)³ of a cubic knot sum.
type Knot struct {
	Coef   float64
	Radius float64
}

//KnotTable is an ordered set of knots. The order doesn't change the value,
//since each term is gated on its own, but it is kept as given so sums are
//accumulated in a reproducible order.
type KnotTable []Knot

//Eval returns Σ a·(r_p-r)³·H(r_p-r) over the table.
func (K KnotTable) Eval(r float64) float64 {
	var sum float64
	for _, k := range K {
		//a closed gate adds nothing, even where (r_p-r)³ would overflow
		if d := k.Radius - r; Heaviside(d) > 0 {
			sum += k.Coef * math.Pow(d, 3)
		}
	}
	return sum
}

//Radii returns the knot radii, in table order.
func (K KnotTable) Radii() []float64 {
	ret := make([]float64, len(K))
	for i, k := range K {
		ret[i] = k.Radius
	}
	return ret
}

//MaxRadius returns the largest knot radius. Beyond it the table is identically zero.
//It returns 0 for an empty table.
func (K KnotTable) MaxRadius() float64 {
	if len(K) == 0 {
		return 0
	}
	return floats.Max(K.Radii())
}

//Sorted returns a copy of the table ordered by increasing radius.
func (K KnotTable) Sorted() KnotTable {
	ret := slices.Clone(K)
	slices.SortStableFunc(ret, func(a, b Knot) int { return cmp.Compare(a.Radius, b.Radius) })
	return ret
}

func (K KnotTable) String() string {
	s := make([]string, 0, len(K))
	for _, k := range K {
		s = append(s, fmt.Sprintf("%.4g@%.2f", k.Coef, k.Radius))
	}
	return "[" + strings.Join(s, " ") + "]"
}

//Poly is the power series Σ c_k·x^(k+From), k = 0...len(Coef)-1.
type Poly struct {
	From int
	Coef []float64
}

func (P Poly) Eval(x float64) float64 {
	var sum float64
	for i, c := range P.Coef {
		sum += c * math.Pow(x, float64(i+P.From))
	}
	return sum
}
