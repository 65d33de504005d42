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

/***************************************************************************************************

Package setfl tabulates EAM functions into the "setfl" text format read by
molecular dynamics engines (LAMMPS pair_style eam/fs and eam/alloy, among others).

A setfl document is:

Lines 1-3: free text.

Line 4: the number of elements followed by their symbols, e.g. "2 Fe H".

Line 5: Nrho drho Nr dr cutoff. The counts are integers, the others are written
with "%.16e".

For each element, in the order of line 4: a line with the atomic number, mass,
lattice constant and lattice type; Nrho/5 lines with the embedding function
F(rho) at rho = k·drho, k = 0...Nrho-1; then, for every element in the order
of line 4, Nr/5 lines with the density rho(self, other, r) at r = k·dr.

Finally, for each unordered element pair (i, then every j >= i), Nr/5 lines
with r·phi(r).

Every numeric line carries 5 values in "%.16e" format separated by two spaces,
so Nrho and Nr have to be multiples of 5. A Tabulator refuses to write anything
otherwise.

Engines read the tables positionally: the order of the sections and of the
rows inside each section is fixed, even when the rows are computed
concurrently.

***************************************************************************************************/

package setfl
