/*
 * main.go, part of goeam.
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

// Command latgen writes a bcc iron lattice, optionally with vacancies, as an xyz file.
// With --slab it also stacks a jittered surface layer of a second atom type on top
// of the crystal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/cjwilliams/goeam/lattice"
)

//triplet is a flag.Value for "x,y,z" arguments.
type triplet [3]float64

func (t *triplet) String() string {
	return fmt.Sprintf("%g,%g,%g", t[0], t[1], t[2])
}

func (t *triplet) Set(s string) error {
	v, err := parseTriplet(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func parseTriplet(s string) ([3]float64, error) {
	var ret [3]float64
	f := strings.Split(s, ",")
	if len(f) != 3 {
		return ret, fmt.Errorf("%q is not of the form x,y,z", s)
	}
	for i, v := range f {
		x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return ret, fmt.Errorf("%q: %w", s, err)
		}
		ret[i] = x
	}
	return ret, nil
}

//offset is a flag.Value that takes either x,y,z or a single value for all three axes.
type offset [3]float64

func (o *offset) String() string {
	return fmt.Sprintf("%g,%g,%g", o[0], o[1], o[2])
}

func (o *offset) Set(s string) error {
	if !strings.Contains(s, ",") {
		x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("%q: %w", s, err)
		}
		*o = offset{x, x, x}
		return nil
	}
	v, err := parseTriplet(s)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

//points collects repeated --vacancy flags.
type points [][3]float64

func (p *points) String() string { return fmt.Sprint(*p) }

func (p *points) Set(s string) error {
	v, err := parseTriplet(s)
	if err != nil {
		return err
	}
	*p = append(*p, v)
	return nil
}

type config struct {
	Out     string
	Shape   [3]int
	Temp    float64
	Shift   offset
	Vacancy points //in units of the lattice parameter
	Tol     float64
	Verbose bool

	Slab    int //cells along z of the surface layer, 0 for none
	SlabTag int
	Jitter  float64 //Å, in x and y only
	ZMax    float64 //surface sites at or beyond this z are dropped, 0 keeps them all
	Seed    int64
}

func parseConfig(args []string, stderr io.Writer) (config, error) {
	c := config{Shape: [3]int{6, 6, 6}, Temp: 300, Shift: offset{1, 1, 1}, Tol: 0.5, SlabTag: 1, Jitter: 0.05, ZMax: 15, Seed: 1}
	shape := triplet{6, 6, 6}
	fset := flag.NewFlagSet("latgen", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.StringVar(&c.Out, "out", "", "the xyz file to write (.gz and .zst are compressed)")
	fset.Var(&shape, "shape", "number of cells along each axis, nx,ny,nz")
	fset.Float64Var(&c.Temp, "temp", c.Temp, "temperature (K), sets the lattice parameter")
	fset.Var(&c.Shift, "shift", "added to the coordinates (Å), x,y,z or one value for all")
	fset.Var(&c.Vacancy, "vacancy", "vacancy position x,y,z in lattice parameters, can be repeated")
	fset.Float64Var(&c.Tol, "tol", c.Tol, "sites closer than this to a vacancy are removed (Å)")
	fset.BoolVar(&c.Verbose, "v", false, "debug output")
	fset.IntVar(&c.Slab, "slab", 0, "cells along z of a surface layer put over the crystal, 0 for none")
	fset.IntVar(&c.SlabTag, "slab-tag", c.SlabTag, "atom type of the surface layer")
	fset.Float64Var(&c.Jitter, "jitter", c.Jitter, "surface sites are moved at random up to this much in x and y (Å)")
	fset.Float64Var(&c.ZMax, "zmax", c.ZMax, "surface sites with z at or above this are dropped (Å), 0 keeps all")
	fset.Int64Var(&c.Seed, "seed", c.Seed, "seed for the surface jitter")
	if err := fset.Parse(args); err != nil {
		return c, err
	}
	if c.Out == "" {
		return c, errors.New("an output file is required (--out)")
	}
	for i, v := range shape {
		if v < 0 || v != float64(int(v)) {
			return c, fmt.Errorf("invalid shape %s", shape.String())
		}
		c.Shape[i] = int(v)
	}
	if c.Slab < 0 || c.Jitter < 0 || c.ZMax < 0 {
		return c, fmt.Errorf("--slab, --jitter and --zmax can't be negative")
	}
	return c, nil
}

func main() {
	c, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "latgen:", err)
		os.Exit(2)
	}
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if err := run(c); err != nil {
		slog.Error("latgen failed", "error", err)
		os.Exit(1)
	}
}

func run(c config) error {
	a := lattice.ThermalLatticeParameter(c.Temp)
	slog.Debug("lattice parameter", "temp", c.Temp, "a", a)
	var keep func([3]float64) bool
	if len(c.Vacancy) > 0 {
		holes := make([][3]float64, len(c.Vacancy))
		for i, v := range c.Vacancy {
			holes[i] = [3]float64{v[0] * a, v[1] * a, v[2] * a}
		}
		keep = lattice.VacancyAt(holes, c.Tol)
	}
	extents, L, err := lattice.Build(c.Shape, a, nil, lattice.BCC, keep)
	if err != nil {
		return err
	}
	L.Translate(c.Shift)
	if c.Slab > 0 {
		S, err := surface(c, a, extents)
		if err != nil {
			return err
		}
		slog.Debug("surface layer", "cells", c.Slab, "sites", S.Len(), "tag", c.SlabTag)
		L.Append(S)
	}
	size, err := lattice.WriteXYZFile(c.Out, L, lattice.Comment(c.Temp, extents))
	if err != nil {
		return err
	}
	slog.Info("lattice written", "path", c.Out, "sites", L.Len(), "vacancies", len(c.Vacancy), "a", a, "size", humanize.Bytes(uint64(size)))
	return nil
}

//surface builds the slab that goes on top of a crystal of the given extents:
//same cells in x and y, c.Slab cells in z, jittered in x and y, retagged and
//cut at c.ZMax.
func surface(c config, a float64, extents [3]float64) (*lattice.Lattice, error) {
	_, S, err := lattice.Build([3]int{c.Shape[0], c.Shape[1], c.Slab}, a, nil, lattice.BCC, nil)
	if err != nil {
		return nil, err
	}
	S.Translate([3]float64{c.Shift[0], c.Shift[1], c.Shift[2] + extents[2]})
	S.Jitter(c.Jitter, [3]bool{true, true, false}, rand.New(rand.NewSource(c.Seed)))
	S.Retag(c.SlabTag)
	if c.ZMax > 0 {
		S = S.Filter(func(s lattice.Site) bool { return s.Pos[2] < c.ZMax })
	}
	return S, nil
}
