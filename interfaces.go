/*
 * interfaces.go, part of goeam.
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

//Pairer is implemented by anything that can give the pair term r·φ(r) for a
//couple of species.
type Pairer interface {
	Pair(i, j Species, r float64) (float64, error)
}

//Densitier is implemented by anything that can give the electron density
//contributed by an atom of species j at an atom of species i, at a distance r.
type Densitier interface {
	Density(i, j Species, r float64) (float64, error)
}

//Embedder gives the energy cost of placing an atom of the given species
//in an electron density rho.
type Embedder interface {
	Embed(s Species, rho float64) (float64, error)
}

//Functions is the full set of analytic functions an EAM table is made of.
//*Potential implements it.
type Functions interface {
	Pairer
	Densitier
	Embedder
	Name() string
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the name of a function in the calling stack and returns the whole list. An empty string just returns the current list.
	Critical() bool
}
