/*
 * catalog_test.go, part of goeam.
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

package catalog

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestRecordList(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "catalog.db")
	db, err := Open(path)
	if err != nil {
		Te.Fatal(err)
	}
	t0 := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	first, err := db.Record(Entry{Path: "a.eam.fs", Variant: "baseA", NRho: 10000, DRho: 0.03, NR: 10000, DR: 5.3e-4, Cutoff: 5.3, Lines: 50, Bytes: 1000, SHA256: "aaaa", Created: t0})
	if err != nil {
		Te.Fatal(err)
	}
	if len(first.ID) != 36 {
		Te.Errorf("id %q doesn't look like a uuid", first.ID)
	}
	second, err := db.Record(Entry{Path: "b.eam.fs.zst", Variant: "baseB", SHA256: "bbbb", Created: t0.Add(time.Hour)})
	if err != nil {
		Te.Fatal(err)
	}
	if first.ID == second.ID {
		Te.Error("repeated ids")
	}
	if _, err := db.Record(Entry{ID: first.ID, Path: "c"}); err == nil {
		Te.Error("duplicated id accepted")
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer db.Close()
	l, err := db.List()
	if err != nil {
		Te.Fatal(err)
	}
	if len(l) != 2 || l[0].ID != second.ID || l[1].ID != first.ID {
		Te.Fatalf("list: %+v", l)
	}
	if l[1] != first {
		Te.Errorf("stored %+v\n read %+v", first, l[1])
	}
	e, err := db.Find("aaaa")
	if err != nil || e.Path != "a.eam.fs" || !e.Created.Equal(t0) {
		Te.Errorf("find: %+v %v", e, err)
	}
	if _, err := db.Find("cccc"); !errors.Is(err, ErrNotFound) {
		Te.Errorf("find of a missing checksum: %v", err)
	}
}
