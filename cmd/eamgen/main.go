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

// Command eamgen writes the Fe-H EAM potential as a setfl table.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	eam "github.com/cjwilliams/goeam"
	"github.com/cjwilliams/goeam/catalog"
	"github.com/cjwilliams/goeam/setfl"
)

func main() {
	if err := loadEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "eamgen: reading .env:", err)
		os.Exit(2)
	}
	c, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "eamgen:", err)
		os.Exit(2)
	}
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if err := run(c, time.Now()); err != nil {
		slog.Error("eamgen failed", "error", err)
		os.Exit(1)
	}
}

func header(c config, now time.Time) [3]string {
	return [3]string{c.Title, c.Author, "Rendered at: " + now.Format("2006-01-02 15:04:05.000000")}
}

func run(c config, now time.Time) error {
	P, err := eam.Variant(c.Variant)
	if err != nil {
		return err
	}
	T := setfl.New(header(c, now))
	T.Grid = setfl.NewGrid(c.NPts, c.DRho, c.NPts, c.Cutoff)
	T.Workers = c.Workers
	if err := T.Validate(); err != nil {
		return err
	}
	if rc := P.Cutoff(); rc > T.Grid.Cutoff {
		slog.Warn("the table cutoff is shorter than the range of the potential", "table", T.Grid.Cutoff, "potential", rc)
	}
	slog.Info("writing table", "variant", P.Name(), "grid", T.Grid.String(), "workers", T.Workers, "out", c.Out)
	slog.Debug("expected size", "lines", humanize.Comma(int64(T.ExpectedLines())))
	slog.Debug("species", "order", fmt.Sprint(P.Species()))
	for _, p := range eam.UniquePairs() {
		slog.Debug("knot tail", "pair", p.String(), "knots", P.Tail(p).String())
	}

	start := time.Now()
	st, err := T.WriteFile(c.Out, P)
	if err != nil {
		var fe setfl.Error
		if errors.As(err, &fe) && fe.FileName() != "" {
			slog.Error("no table written", "file", fe.FileName(), "critical", fe.Critical())
		}
		return err
	}
	slog.Info("table written",
		"path", st.Path,
		"lines", humanize.Comma(int64(st.Lines)),
		"size", humanize.Bytes(uint64(st.Bytes)),
		"on_disk", humanize.Bytes(uint64(st.FileBytes)),
		"compression", st.Compression.String(),
		"sha256", st.SHA256,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	if c.Catalog == "" {
		return nil
	}
	db, err := catalog.Open(c.Catalog)
	if err != nil {
		return err
	}
	defer db.Close()
	abs, err := filepath.Abs(st.Path)
	if err != nil {
		abs = st.Path
	}
	e, err := db.Record(catalog.Entry{
		Path:    abs,
		Variant: P.Name(),
		NRho:    T.Grid.NRho,
		DRho:    T.Grid.DRho,
		NR:      T.Grid.NR,
		DR:      T.Grid.DR,
		Cutoff:  T.Grid.Cutoff,
		Lines:   st.Lines,
		Bytes:   st.Bytes,
		SHA256:  st.SHA256,
		Created: now,
	})
	if err != nil {
		return err
	}
	slog.Info("recorded in catalog", "catalog", c.Catalog, "id", e.ID)
	return nil
}
