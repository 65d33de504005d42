/*
 * outfile.go, part of goeam.
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

//Package outfile writes generated files atomically. Data goes to a temporary
//file next to the destination, and only a successful Commit renames it into
//place, so a failed run never leaves a truncated table where an MD engine
//could pick it up. The name of the destination selects an optional compression:
//".gz" is gzip and ".zst" is Zstandard, anything else is written as is.
package outfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Compression is the on-disk encoding of a File.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "none"
	}
}

//CompressionFor returns the compression implied by the name of a file.
func CompressionFor(name string) Compression {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	default:
		return None
	}
}

//File is an output file that only appears under its final name after Commit.
type File struct {
	name   string
	f      *os.File
	w      io.Writer
	z      io.WriteCloser //nil when uncompressed
	comp   Compression
	closed bool
}

//Create opens a temporary file in the directory of name. The compression is
//chosen from the extension of name.
func Create(name string) (*File, error) {
	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return nil, fmt.Errorf("outfile: can't create a temporary file for %s: %w", name, err)
	}
	F := &File{name: name, f: f, w: f, comp: CompressionFor(name)}
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, gzip.BestCompression) }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	var z io.WriteCloser
	switch F.comp {
	case Gzip:
		z, err = gzipwriter(f)
	case Zstd:
		z, err = zstdwriter(f)
	}
	if err != nil {
		F.Abort()
		return nil, fmt.Errorf("outfile: can't set up %s compression for %s: %w", F.comp, name, err)
	}
	if F.comp != None {
		F.z = z
		F.w = z
	}
	return F, nil
}

//Name returns the final name of the file.
func (F *File) Name() string { return F.name }

//Compression returns the encoding used for the file.
func (F *File) Compression() Compression { return F.comp }

func (F *File) Write(p []byte) (int, error) {
	if F.closed {
		return 0, os.ErrClosed
	}
	return F.w.Write(p)
}

//Commit flushes everything and renames the temporary file to its final name.
//It returns the size of the file on disk. On error, the temporary file is removed.
func (F *File) Commit() (int64, error) {
	if F.closed {
		return 0, os.ErrClosed
	}
	F.closed = true
	tmp := F.f.Name()
	fail := func(err error) (int64, error) {
		F.f.Close()
		os.Remove(tmp)
		return 0, fmt.Errorf("outfile: can't write %s: %w", F.name, err)
	}
	if F.z != nil {
		if err := F.z.Close(); err != nil {
			return fail(err)
		}
	}
	if err := F.f.Sync(); err != nil {
		return fail(err)
	}
	info, err := F.f.Stat()
	if err != nil {
		return fail(err)
	}
	if err := F.f.Close(); err != nil {
		os.Remove(tmp)
		return 0, fmt.Errorf("outfile: can't write %s: %w", F.name, err)
	}
	//CreateTemp uses 0600
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return 0, fmt.Errorf("outfile: can't write %s: %w", F.name, err)
	}
	if err := os.Rename(tmp, F.name); err != nil {
		os.Remove(tmp)
		return 0, fmt.Errorf("outfile: can't move the output into %s: %w", F.name, err)
	}
	return info.Size(), nil
}

//Abort discards the temporary file. It is safe to call after Commit, in
//which case it does nothing.
func (F *File) Abort() {
	if F.closed {
		return
	}
	F.closed = true
	if F.z != nil {
		F.z.Close()
	}
	F.f.Close()
	os.Remove(F.f.Name())
}
