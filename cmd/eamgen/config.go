/*
 * config.go, part of goeam.
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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

type config struct {
	Out     string
	Variant string
	NPts    int
	DRho    float64
	Cutoff  float64
	Workers int
	Catalog string //empty means no catalog
	Title   string
	Author  string
	Verbose bool
}

func defaultConfig() config {
	return config{
		Variant: "baseB",
		NPts:    10000,
		DRho:    0.03,
		Cutoff:  5.3,
		Workers: runtime.GOMAXPROCS(0),
		Title:   "Fe-H",
		Author:  "C. J. Williams",
	}
}

//loadEnv reads a .env style file into the environment. Variables already set
//are not overwritten. A missing file is fine.
func loadEnv(name string) error {
	err := godotenv.Load(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

//fromEnv overrides the values in c with those of the EAMGEN_* variables found
//through getenv.
func (c *config) fromEnv(getenv func(string) string) error {
	str := map[string]*string{
		"EAMGEN_TITLE":   &c.Title,
		"EAMGEN_AUTHOR":  &c.Author,
		"EAMGEN_VARIANT": &c.Variant,
		"EAMGEN_CATALOG": &c.Catalog,
	}
	for k, p := range str {
		if v := getenv(k); v != "" {
			*p = v
		}
	}
	ints := map[string]*int{
		"EAMGEN_NPTS":    &c.NPts,
		"EAMGEN_WORKERS": &c.Workers,
	}
	for k, p := range ints {
		v := getenv(k)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		*p = n
	}
	fl := map[string]*float64{
		"EAMGEN_DRHO":   &c.DRho,
		"EAMGEN_CUTOFF": &c.Cutoff,
	}
	for k, p := range fl {
		v := getenv(k)
		if v == "" {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		*p = x
	}
	return nil
}

//parseConfig builds the configuration from the defaults, then the environment,
//then the command line.
func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	c := defaultConfig()
	if err := c.fromEnv(getenv); err != nil {
		return c, err
	}
	fset := flag.NewFlagSet("eamgen", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.StringVar(&c.Out, "out", c.Out, "the setfl file to write (.gz and .zst are compressed)")
	fset.StringVar(&c.Out, "o", c.Out, "short for -out")
	fset.StringVar(&c.Variant, "variant", c.Variant, "coefficient set")
	fset.IntVar(&c.NPts, "npts", c.NPts, "number of points on each grid, a multiple of 5")
	fset.Float64Var(&c.DRho, "drho", c.DRho, "density step")
	fset.Float64Var(&c.Cutoff, "cutoff", c.Cutoff, "cutoff radius (Å)")
	fset.IntVar(&c.Workers, "workers", c.Workers, "goroutines used to sample each table")
	fset.StringVar(&c.Catalog, "catalog", c.Catalog, "SQLite catalog to record the table in")
	fset.StringVar(&c.Title, "title", c.Title, "first header line")
	fset.StringVar(&c.Author, "author", c.Author, "second header line")
	fset.BoolVar(&c.Verbose, "v", false, "debug output")
	if err := fset.Parse(args); err != nil {
		return c, err
	}
	if fset.NArg() > 0 {
		return c, fmt.Errorf("unexpected arguments: %v", fset.Args())
	}
	if c.Out == "" {
		return c, errors.New("an output file is required (--out)")
	}
	return c, nil
}
