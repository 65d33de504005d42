/*
 * constants.go, part of goeam.
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

import "math"

//Physical constants, CODATA 2018.
const (
	ElementaryCharge   = 1.602176634e-19  // C
	VacuumPermittivity = 8.8541878128e-12 // F/m
	BohrRadius         = 0.529177210903   // angstrom
)

//CoulombEVA is e/(4πε₀) scaled so that Z_i·Z_j·CoulombEVA/r is an energy in eV
//when r is in angstrom. The 1e10 goes from metres to angstrom.
var CoulombEVA = ElementaryCharge * 1e10 / (4 * math.Pi * VacuumPermittivity)

//Constants for the H-H interaction.
const (
	hhBinding     = 2.37   //E_b, eV/atom
	hhBondLength  = 0.74   //r_0, angstrom
	hhLambda      = 0.4899 //λ
	hhDensityPref = 1800.0 //C_PHH
)

//FirsovLength returns the screening length 0.88534·a₀/sqrt(Zi^(2/3)+Zj^(2/3)),
//in angstrom.
func FirsovLength(zi, zj float64) float64 {
	return 0.88534 * BohrRadius / math.Sqrt(math.Pow(zi, 2.0/3.0)+math.Pow(zj, 2.0/3.0))
}
