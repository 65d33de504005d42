/*
 * grid.go, part of goeam.
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

package setfl

import (
	"fmt"
	"math"

	eam "github.com/cjwilliams/goeam"
)

//ValuesPerLine is the number of values in each numeric line of a setfl file.
const ValuesPerLine = 5

//Grid describes the two sampling grids of a setfl file. Both start at 0.
type Grid struct {
	NRho   int     //number of density points
	DRho   float64 //density step
	NR     int     //number of distance points
	DR     float64 //distance step, angstrom
	Cutoff float64 //angstrom
}

//NewGrid returns a grid with the distance step derived from the cutoff, dr = cutoff/nr.
func NewGrid(nrho int, drho float64, nr int, cutoff float64) Grid {
	return Grid{NRho: nrho, DRho: drho, NR: nr, DR: cutoff / float64(nr), Cutoff: cutoff}
}

//DefaultGrid is 10000 points on both grids, drho = 0.03, and a 5.3 Å cutoff.
func DefaultGrid() Grid {
	return NewGrid(10000, 0.03, 10000, 5.3)
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

//Validate returns an error if the grid can't be written as a setfl file.
func (G Grid) Validate() error {
	if G.NRho <= 0 || G.NRho%ValuesPerLine != 0 {
		return newError(ErrGrid, "", "Validate", "Nrho=%d is not a positive multiple of %d", G.NRho, ValuesPerLine)
	}
	if G.NR <= 0 || G.NR%ValuesPerLine != 0 {
		return newError(ErrGrid, "", "Validate", "Nr=%d is not a positive multiple of %d", G.NR, ValuesPerLine)
	}
	if !positiveFinite(G.DRho) || !positiveFinite(G.DR) || !positiveFinite(G.Cutoff) {
		return newError(ErrGrid, "", "Validate", "steps and cutoff must be positive and finite (drho=%g dr=%g cutoff=%g)", G.DRho, G.DR, G.Cutoff)
	}
	return nil
}

//Rho returns the kth point of the density grid.
func (G Grid) Rho(k int) float64 {
	return float64(k) * G.DRho
}

//R returns the kth point of the distance grid.
func (G Grid) R(k int) float64 {
	return float64(k) * G.DR
}

//String renders the grid as line 5 of a setfl file (without the newline).
func (G Grid) String() string {
	return fmt.Sprintf("%d %.16e %d %.16e %.16e", G.NRho, G.DRho, G.NR, G.DR, G.Cutoff)
}

//Element is the per-element metadata of a setfl file.
type Element struct {
	Species   eam.Species
	Number    int     //atomic number
	Mass      float64 //amu
	Lattice   float64 //lattice constant, angstrom
	Structure string  //lattice type, e.g. BCC
}

//NewElement fills an Element with the reference data of the species.
func NewElement(s eam.Species) Element {
	a, st := s.Lattice()
	return Element{Species: s, Number: int(s.Z()), Mass: s.Mass(), Lattice: a, Structure: st}
}

//DefaultElements returns Fe and H, in that order.
func DefaultElements() []Element {
	species := eam.AllSpecies()
	ret := make([]Element, 0, len(species))
	for _, s := range species {
		ret = append(ret, NewElement(s))
	}
	return ret
}

//String renders the element metadata line.
func (E Element) String() string {
	return fmt.Sprintf("%d %g %g %s", E.Number, E.Mass, E.Lattice, E.Structure)
}
