/*
 * tabulate.go, part of goeam.
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
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"strconv"
	"strings"

	eam "github.com/cjwilliams/goeam"
	"github.com/dgravesa/go-parallel/parallel"
	"golang.org/x/exp/slices"
)

//Tabulator samples a set of EAM functions on a grid and writes them as a setfl document.
type Tabulator struct {
	Grid     Grid
	Elements []Element
	Header   [3]string
	//Workers is the number of goroutines used to evaluate each table. Values
	//below 2 mean serial evaluation. The output doesn't depend on it.
	Workers int
}

//New returns a Tabulator with the default grid and the Fe, H elements.
func New(header [3]string) *Tabulator {
	return &Tabulator{Grid: DefaultGrid(), Elements: DefaultElements(), Header: header}
}

//Stats describes a written document.
type Stats struct {
	Lines  int
	Bytes  int64
	SHA256 string //of the uncompressed document
}

//ExpectedLines returns the number of lines of the document T would write.
func (T *Tabulator) ExpectedLines() int {
	n := len(T.Elements)
	rhoRows := T.Grid.NRho / ValuesPerLine
	rRows := T.Grid.NR / ValuesPerLine
	return 3 + 1 + 1 + n*(1+rhoRows+n*rRows) + n*(n+1)/2*rRows
}

//Validate checks everything that can be checked before writing a single byte.
func (T *Tabulator) Validate() error {
	if err := T.Grid.Validate(); err != nil {
		return errDecorate(err, "Tabulator.Validate")
	}
	if len(T.Elements) == 0 {
		return newError(ErrElements, "", "Tabulator.Validate", "no elements")
	}
	for i, e := range T.Elements {
		if !e.Species.Valid() {
			return newError(ErrElements, "", "Tabulator.Validate", "element %d has an unknown species", i)
		}
		if slices.ContainsFunc(T.Elements[:i], func(o Element) bool { return o.Species == e.Species }) {
			return newError(ErrElements, "", "Tabulator.Validate", "%s given twice", e.Species)
		}
		if e.Structure == "" || strings.ContainsAny(e.Structure, " \t\n") {
			return newError(ErrElements, "", "Tabulator.Validate", "bad lattice type %q for %s", e.Structure, e.Species)
		}
	}
	for i, h := range T.Header {
		if strings.ContainsAny(h, "\r\n") {
			return newError(ErrHeader, "", "Tabulator.Validate", "header line %d contains a line break", i+1)
		}
	}
	return nil
}

//Embedding returns F(rho) of species s on the density grid.
func (T *Tabulator) Embedding(P eam.Embedder, s eam.Species) ([]float64, error) {
	return T.sample(T.Grid.NRho, T.Grid.Rho, func(rho float64) (float64, error) {
		return P.Embed(s, rho)
	}, "Embedding")
}

//Density returns rho(i, j, r) on the distance grid.
func (T *Tabulator) Density(P eam.Densitier, i, j eam.Species) ([]float64, error) {
	return T.sample(T.Grid.NR, T.Grid.R, func(r float64) (float64, error) {
		return P.Density(i, j, r)
	}, "Density")
}

//Pair returns r·phi(i, j, r) on the distance grid.
func (T *Tabulator) Pair(P eam.Pairer, i, j eam.Species) ([]float64, error) {
	return T.sample(T.Grid.NR, T.Grid.R, func(r float64) (float64, error) {
		return P.Pair(i, j, r)
	}, "Pair")
}

//sample evaluates f at x(k), k = 0...n-1. With more than one worker the points
//are split among goroutines, each of which writes only its own slots. If
//several points fail, the error of the lowest index is returned.
func (T *Tabulator) sample(n int, x func(int) float64, f func(float64) (float64, error), caller string) ([]float64, error) {
	ret := make([]float64, n)
	if T.Workers < 2 {
		for k := range ret {
			v, err := f(x(k))
			if err != nil {
				return nil, evalError(err, caller, "grid point %d (x=%g)", k, x(k))
			}
			ret[k] = v
		}
		return ret, nil
	}
	type failure struct {
		k   int
		err error
	}
	fails := make([]failure, T.Workers)
	for i := range fails {
		fails[i].k = n
	}
	parallel.WithNumGoroutines(T.Workers).For(n, func(k, gr int) {
		v, err := f(x(k))
		if err != nil {
			if k < fails[gr].k {
				fails[gr] = failure{k, err}
			}
			return
		}
		ret[k] = v
	})
	first := failure{k: n}
	for _, v := range fails {
		if v.k < first.k {
			first = v
		}
	}
	if first.err != nil {
		return nil, evalError(first.err, caller, "grid point %d (x=%g)", first.k, x(first.k))
	}
	return ret, nil
}

//counter keeps track of what went through a writer.
type counter struct {
	w     io.Writer
	h     hash.Hash
	bytes int64
	lines int
}

func (c *counter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.h.Write(p[:n])
	c.bytes += int64(n)
	for _, b := range p[:n] {
		if b == '\n' {
			c.lines++
		}
	}
	return n, err
}

//Write validates T, then writes the whole document for P to w. Nothing is
//written if the validation fails. An evaluation error aborts the document;
//w may have received part of it by then (WriteFile never leaves such a file behind).
func (T *Tabulator) Write(w io.Writer, P eam.Functions) (Stats, error) {
	if err := T.Validate(); err != nil {
		return Stats{}, errDecorate(err, "Tabulator.Write")
	}
	c := &counter{w: w, h: sha256.New()}
	bw := bufio.NewWriterSize(c, 64*1024)
	row := make([]byte, 0, 128)
	fail := func(err error) (Stats, error) {
		return Stats{}, errDecorate(err, "Tabulator.Write")
	}
	sinkErr := func(err error) (Stats, error) {
		e := newError(ErrSink, "", "Tabulator.Write", "")
		e.cause = err
		return Stats{}, e
	}

	for _, h := range T.Header {
		bw.WriteString(h)
		bw.WriteByte('\n')
	}
	syms := make([]string, 0, len(T.Elements)+1)
	syms = append(syms, strconv.Itoa(len(T.Elements)))
	for _, e := range T.Elements {
		syms = append(syms, e.Species.String())
	}
	bw.WriteString(strings.Join(syms, " "))
	bw.WriteByte('\n')
	bw.WriteString(T.Grid.String())
	bw.WriteByte('\n')

	for _, e := range T.Elements {
		bw.WriteString(e.String())
		bw.WriteByte('\n')
		vals, err := T.Embedding(P, e.Species)
		if err != nil {
			return fail(err)
		}
		row = writeRows(bw, vals, row)
		for _, o := range T.Elements {
			vals, err = T.Density(P, e.Species, o.Species)
			if err != nil {
				return fail(err)
			}
			row = writeRows(bw, vals, row)
		}
		//bufio keeps the first write error, check once per block
		if err := bw.Flush(); err != nil {
			return sinkErr(err)
		}
	}
	for i, e := range T.Elements {
		for _, o := range T.Elements[i:] {
			vals, err := T.Pair(P, e.Species, o.Species)
			if err != nil {
				return fail(err)
			}
			row = writeRows(bw, vals, row)
		}
	}
	if err := bw.Flush(); err != nil {
		return sinkErr(err)
	}
	return Stats{Lines: c.lines, Bytes: c.bytes, SHA256: hex.EncodeToString(c.h.Sum(nil))}, nil
}

//writeRows writes vals, 5 per line. buf is scratch space, returned for reuse.
//len(vals) is a multiple of 5, Validate ensures that.
func writeRows(bw *bufio.Writer, vals []float64, buf []byte) []byte {
	for i := 0; i < len(vals); i += ValuesPerLine {
		buf = buf[:0]
		for j, v := range vals[i : i+ValuesPerLine] {
			if j > 0 {
				buf = append(buf, ' ', ' ')
			}
			buf = strconv.AppendFloat(buf, v, 'e', 16, 64)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	return buf
}
