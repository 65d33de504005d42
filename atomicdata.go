/*
 * atomicdata.go, part of goeam.
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

import "golang.org/x/exp/slices"

//Species is one of the two kinds of atoms this potential knows about.
type Species uint8

const (
	Fe Species = iota
	H
	nspecies
)

var allSpecies = [...]Species{Fe, H}

//AllSpecies returns the species in the global element order used for setfl
//tables. The slice is a copy, callers can modify it.
func AllSpecies() []Species {
	return slices.Clone(allSpecies[:])
}

//Per-species data, indexed by Species.
var speciesSymbol = [nspecies]string{"Fe", "H"}

var speciesZ = [nspecies]float64{
	26.0,
	1.0,
}

//Masses as written in the element lines of the setfl header (amu).
var speciesMass = [nspecies]float64{
	55.847,
	1.008,
}

//Lattice constant (angstrom) and structure tags for the setfl header. The
//H entry is nominal, engines don't use it.
var speciesLattice = [nspecies]float64{
	2.8553,
	1.8,
}

var speciesStructure = [nspecies]string{"BCC", "BCC"}

//Valid returns true if s is one of the known species.
func (s Species) Valid() bool {
	return s < nspecies
}

func (s Species) String() string {
	if !s.Valid() {
		return "Species(?)"
	}
	return speciesSymbol[s]
}

//Z returns the atomic number of s. It panics for an invalid species.
func (s Species) Z() float64 {
	return speciesZ[s]
}

//Mass returns the atomic mass of s in amu.
func (s Species) Mass() float64 {
	return speciesMass[s]
}

//Lattice returns the reference lattice constant and structure tag of s.
func (s Species) Lattice() (float64, string) {
	return speciesLattice[s], speciesStructure[s]
}

//ParseSpecies returns the Species with the given chemical symbol.
func ParseSpecies(symbol string) (Species, error) {
	for i, v := range speciesSymbol {
		if v == symbol {
			return Species(i), nil
		}
	}
	return 0, newError(ErrUnknownSpecies, "ParseSpecies", "%q", symbol)
}

//Pair is an ordered couple of species. Pair potentials are symmetric, densities are not.
type Pair struct {
	I, J Species
}

//Canonical returns the pair with the lowest species first, so Fe-H and H-Fe
//give the same value.
func (p Pair) Canonical() Pair {
	if p.J < p.I {
		return Pair{p.J, p.I}
	}
	return p
}

func (p Pair) String() string {
	return p.I.String() + "-" + p.J.String()
}

func (p Pair) valid() bool {
	return p.I.Valid() && p.J.Valid()
}

//UniquePairs returns the unordered pairs in the canonical order (all i, then all j ≥ i),
//i.e. Fe-Fe, Fe-H, H-H.
func UniquePairs() []Pair {
	ret := make([]Pair, 0, 3)
	for i := range allSpecies {
		for j := i; j < len(allSpecies); j++ {
			ret = append(ret, Pair{allSpecies[i], allSpecies[j]})
		}
	}
	return ret
}
