/*
 * file.go, part of goeam.
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
	eam "github.com/cjwilliams/goeam"
	"github.com/cjwilliams/goeam/outfile"
)

//FileStats adds to Stats what is specific to a file on disk.
type FileStats struct {
	Stats
	Path        string
	FileBytes   int64 //size on disk, after compression
	Compression outfile.Compression
}

//WriteFile writes the document for P to name. The output goes to a temporary
//file that is renamed to name only when everything went well, so on error there
//is no new file at name (an older one, if any, is left alone). Names ending in
//.gz or .zst are compressed.
func (T *Tabulator) WriteFile(name string, P eam.Functions) (FileStats, error) {
	if err := T.Validate(); err != nil {
		return FileStats{}, errDecorate(err, "WriteFile")
	}
	f, err := outfile.Create(name)
	if err != nil {
		e := newError(ErrSink, name, "WriteFile", "")
		e.cause = err
		return FileStats{}, e
	}
	st, err := T.Write(f, P)
	if err != nil {
		f.Abort()
		if e, ok := err.(Error); ok {
			e.filename = name
			err = e
		}
		return FileStats{}, errDecorate(err, "WriteFile")
	}
	size, err := f.Commit()
	if err != nil {
		e := newError(ErrSink, name, "WriteFile", "")
		e.cause = err
		return FileStats{}, e
	}
	return FileStats{Stats: st, Path: name, FileBytes: size, Compression: f.Compression()}, nil
}
