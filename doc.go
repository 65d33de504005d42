/*
 * doc.go, part of goeam.
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

/*Package eam is the main package of the goeam library. It provides the analytic
pieces of an embedded-atom method (EAM) potential for the iron-hydrogen system:
pair potentials, electron density contributions and embedding energies for the
Fe-Fe, Fe-H and H-H interactions.


	**goeam Capabilities**

    Evaluates the pair term r·φ(r) for Fe-Fe, Fe-H and H-H. Each metallic pair
	is a three-branch function: a screened Coulomb repulsion at short range, an
	exponential or polynomial bridge, and a cubic knot sum at long range.

    Evaluates the electron density ρ(i,j,r) for every ordered pair of species,
	including the asymmetric Fe-H / H-Fe contributions.

    Evaluates the embedding energy F(ρ) for Fe and H.

    Ships two coefficient sets, "baseA" and "baseB", as immutable Potential
	values. BaseB is the default.

    Tabulates any Potential into a setfl file (see the setfl subpackage) and
	builds bcc lattices for the same system (see the lattice subpackage).

Species are a closed set (Fe, H). Asking for anything else is an error, never
a made-up number. The same goes for negative densities and negative or NaN
radii: all of them produce an error that satisfies the Error interface of this
package.

Units are eV for energies and angstrom for lengths. The pair functions return
r·φ(r) in eV·Å, which is the quantity stored in setfl files.*/
package eam
