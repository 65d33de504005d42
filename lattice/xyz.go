/*
 * xyz.go, part of goeam.
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

package lattice

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cjwilliams/goeam/outfile"
)

//WriteXYZ writes L to w in xyz format: the number of sites, the comment and one
//"tag x y z" line per site. The comment can't contain line breaks.
func WriteXYZ(w io.Writer, L *Lattice, comment string) error {
	if strings.ContainsAny(comment, "\r\n") {
		return Error{fmt.Sprintf("the xyz comment %q spans more than one line", comment), []string{"WriteXYZ"}, true}
	}
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "%d\n%s\n", L.Len(), comment)
	for i := 0; i < L.Len(); i++ {
		c := L.Coords.RawRowView(i)
		if _, err := fmt.Fprintf(out, "%d %.8f %.8f %.8f\n", L.Tags[i], c[0], c[1], c[2]); err != nil {
			return Error{err.Error(), []string{"WriteXYZ"}, true}
		}
	}
	if err := out.Flush(); err != nil {
		return Error{err.Error(), []string{"WriteXYZ"}, true}
	}
	return nil
}

//WriteXYZFile writes L to the file name, which is only replaced if everything
//goes well. Names ending in .gz or .zst are compressed. It returns the size of
//the file.
func WriteXYZFile(name string, L *Lattice, comment string) (int64, error) {
	f, err := outfile.Create(name)
	if err != nil {
		return 0, Error{err.Error(), []string{"WriteXYZFile"}, true}
	}
	if err := WriteXYZ(f, L, comment); err != nil {
		f.Abort()
		return 0, errDecorate(err, "WriteXYZFile")
	}
	size, err := f.Commit()
	if err != nil {
		return 0, Error{err.Error(), []string{"WriteXYZFile"}, true}
	}
	return size, nil
}

//Comment returns the comment line latgen writes, stating temperature and box size.
func Comment(temp float64, extents [3]float64) string {
	return fmt.Sprintf("Generated .xyz @ %g kelvin, extents = [%g %g %g]", temp, extents[0], extents[1], extents[2])
}
