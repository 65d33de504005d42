/*
 * screen.go, part of goeam.
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

//Heaviside returns 0 for x <= 0 and 1 otherwise. It is used as the gate
//of the knot sums: a knot contributes while its radius is larger than r.
func Heaviside(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return 1
}

//Screen is the universal screening function
//0.1818e^(-3.2x) + 0.5099e^(-0.9423x) + 0.2802e^(-0.4029x) + 0.02817e^(-0.2016x).
func Screen(x float64) float64 {
	return 0.1818*math.Exp(-3.2*x) +
		0.5099*math.Exp(-0.9423*x) +
		0.2802*math.Exp(-0.4029*x) +
		0.02817*math.Exp(-0.2016*x)
}

//FCut is the smooth cutoff exp(1/(r-rcut)) for r < rcut, and exactly 0 otherwise.
func FCut(r, rcut float64) float64 {
	if r < rcut {
		return math.Exp(1 / (r - rcut))
	}
	return 0
}

//Switch goes from 1 to 0 around 0.9 Å. It blends the molecular and the
//embedded regimes of the H-H interaction.
func Switch(r float64) float64 {
	return 0.5 * (1 - math.Tanh(25*(r-0.9)))
}

//MolecularEnergy is the Morse-like binding curve of the H2 molecule,
//-2E_b(1+a)exp(-a), with a = (r-r_0)/(r_0·λ).
func MolecularEnergy(r float64) float64 {
	a := (r - hhBondLength) / (hhBondLength * hhLambda)
	return -2 * hhBinding * (1 + a) * math.Exp(-a)
}

//screenedCoulomb returns screen(r/rs)·prefactor. With prefactor = Zi·Zj·CoulombEVA
//this is r times the screened Coulomb repulsion, in eV·Å.
func screenedCoulomb(r, rs, prefactor float64) float64 {
	return Screen(r/rs) * prefactor
}
