/*
 * lattice.go, part of goeam.
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

//Package lattice builds crystal lattices, with optional vacancies, and writes
//them as xyz files. It is meant to produce starting structures for MD runs with
//the tables generated by goeam.
package lattice

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cjwilliams/goeam/v3"
	"gonum.org/v1/gonum/floats"
)

//Site is a lattice site. Pos is in units of the lattice parameter when
//the Site is part of a motif, and in Å otherwise. Tag is the column written
//before the coordinates in an xyz file, normally an atom type.
type Site struct {
	Tag int
	Pos [3]float64
}

//BCC is the two-site motif of the body-centered cubic lattice.
var BCC = []Site{
	{0, [3]float64{0, 0, 0}},
	{0, [3]float64{0.5, 0.5, 0.5}},
}

//Cubic returns the unit basis vectors, one per row.
func Cubic() *v3.Matrix {
	B, _ := v3.NewMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	return B
}

//Lattice is a set of tagged sites.
type Lattice struct {
	Tags   []int
	Coords *v3.Matrix
}

//Len returns the number of sites in L.
func (L *Lattice) Len() int {
	return len(L.Tags)
}

//Site returns the ith site of L.
func (L *Lattice) Site(i int) Site {
	return Site{Tag: L.Tags[i], Pos: L.Coords.Vec(i)}
}

//Translate moves every site of L by d.
func (L *Lattice) Translate(d [3]float64) {
	if L.Len() == 0 {
		return
	}
	L.Coords.AddVec(L.Coords, d)
}

//Retag sets the tag of every site in L to tag.
func (L *Lattice) Retag(tag int) {
	for i := range L.Tags {
		L.Tags[i] = tag
	}
}

//Append adds the sites of O after those of L.
func (L *Lattice) Append(O *Lattice) {
	L.Tags = append(L.Tags, O.Tags...)
	L.Coords = v3.Stack(L.Coords, O.Coords)
}

//Filter returns a new Lattice with the sites of L for which keep is true, in
//the same order.
func (L *Lattice) Filter(keep func(Site) bool) *Lattice {
	sites := make([]Site, 0, L.Len())
	for i := 0; i < L.Len(); i++ {
		if s := L.Site(i); keep(s) {
			sites = append(sites, s)
		}
	}
	return fromSites(sites)
}

//Jitter moves each site of L by a uniform random amount in [-amp, amp) along
//every axis for which move is true. The draws come from rng, site by site and
//axis by axis, so a seeded rng gives the same lattice each time.
func (L *Lattice) Jitter(amp float64, move [3]bool, rng *rand.Rand) {
	for i := 0; i < L.Len(); i++ {
		v := L.Coords.Vec(i)
		for j, m := range move {
			if m {
				v[j] += amp * (2*rng.Float64() - 1)
			}
		}
		L.Coords.SetVec(i, v)
	}
}

//Extents returns the span of the sites of L along each axis.
func (L *Lattice) Extents() [3]float64 {
	return L.Coords.Extents()
}

func fromSites(sites []Site) *Lattice {
	L := &Lattice{Tags: make([]int, len(sites)), Coords: v3.Zeros(len(sites))}
	for i, s := range sites {
		L.Tags[i] = s.Tag
		L.Coords.SetVec(i, s.Pos)
	}
	return L
}

//Build repeats motif over shape[0]×shape[1]×shape[2] cells of the given basis
//(one basis vector per row, nil means Cubic), scaled by param. Cells are visited
//with the last index running fastest, and the motif sites in order inside each cell.
//Only the sites for which keep, if not nil, returns true are kept.
//It returns param·shape, the nominal size of the box, and the lattice.
func Build(shape [3]int, param float64, basis *v3.Matrix, motif []Site, keep func([3]float64) bool) ([3]float64, *Lattice, error) {
	var extents [3]float64
	if param <= 0 || math.IsNaN(param) || math.IsInf(param, 0) {
		return extents, nil, Error{fmt.Sprintf("invalid lattice parameter %g", param), []string{"Build"}, true}
	}
	for _, n := range shape {
		if n < 0 {
			return extents, nil, Error{fmt.Sprintf("invalid shape %v", shape), []string{"Build"}, true}
		}
	}
	if basis == nil {
		basis = Cubic()
	}
	if basis.NVecs() != 3 {
		return extents, nil, Error{fmt.Sprintf("the basis has %d vectors, 3 needed", basis.NVecs()), []string{"Build"}, true}
	}
	b0, b1, b2 := basis.Vec(0), basis.Vec(1), basis.Vec(2)
	sites := make([]Site, 0, shape[0]*shape[1]*shape[2]*len(motif))
	pos := make([]float64, 3)
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				cell := make([]float64, 3)
				floats.AddScaled(cell, float64(i), b0[:])
				floats.AddScaled(cell, float64(j), b1[:])
				floats.AddScaled(cell, float64(k), b2[:])
				for _, m := range motif {
					floats.AddTo(pos, cell, m.Pos[:])
					floats.Scale(param, pos)
					v := [3]float64{pos[0], pos[1], pos[2]}
					if keep == nil || keep(v) {
						sites = append(sites, Site{Tag: m.Tag, Pos: v})
					}
				}
			}
		}
	}
	for i, n := range shape {
		extents[i] = param * float64(n)
	}
	return extents, fromSites(sites), nil
}

//VacancyAt returns a keep function for Build that rejects the sites closer
//than tol to any of points.
func VacancyAt(points [][3]float64, tol float64) func([3]float64) bool {
	return func(v [3]float64) bool {
		for _, p := range points {
			if floats.Distance(v[:], p[:], 2) < tol {
				return false
			}
		}
		return true
	}
}

//AtomicVolume returns the volume per atom, in Å³, of bcc iron at temperature
//temp, in K.
func AtomicVolume(temp float64) float64 {
	t := temp
	return 11.64012 + 9.37798e-5*t + 3.643134e-7*t*t - 1.851593e-10*t*t*t + 5.669148e-14*t*t*t*t
}

//ThermalLatticeParameter returns the lattice parameter of bcc iron at temperature
//temp, in K, from its thermal expansion.
func ThermalLatticeParameter(temp float64) float64 {
	return math.Cbrt(2 * AtomicVolume(temp))
}

//Errors

//Error is the error type of the lattice package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return "goeam/lattice: " + err.message }

//Decorate Adds new information to the error
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = e.Decorate(caller)
		return e
	}
	return err
}
