/*
 * catalog.go, part of goeam.
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

//Package catalog keeps a record of the generated tables in a SQLite database:
//where each one was written, with which coefficients and grid, and the checksum
//of its content, so a table found on disk can be traced back to the run that
//made it.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

//ErrNotFound is returned by Find when no entry has the given checksum.
var ErrNotFound = errors.New("catalog: no such entry")

//Entry describes one generated table.
type Entry struct {
	ID      string
	Path    string
	Variant string
	NRho    int
	DRho    float64
	NR      int
	DR      float64
	Cutoff  float64
	Lines   int
	Bytes   int64 //uncompressed
	SHA256  string
	Created time.Time
}

type row struct {
	ID      string  `db:"id"`
	Path    string  `db:"path"`
	Variant string  `db:"variant"`
	NRho    int     `db:"nrho"`
	DRho    float64 `db:"drho"`
	NR      int     `db:"nr"`
	DR      float64 `db:"dr"`
	Cutoff  float64 `db:"cutoff"`
	Lines   int     `db:"lines"`
	Bytes   int64   `db:"bytes"`
	SHA256  string  `db:"sha256"`
	Created int64   `db:"created_at"` //Unix time in ns
}

func (r row) entry() Entry {
	return Entry{
		ID: r.ID, Path: r.Path, Variant: r.Variant,
		NRho: r.NRho, DRho: r.DRho, NR: r.NR, DR: r.DR, Cutoff: r.Cutoff,
		Lines: r.Lines, Bytes: r.Bytes, SHA256: r.SHA256,
		Created: time.Unix(0, r.Created).UTC(),
	}
}

//DB is an open catalog.
type DB struct {
	conn *sqlx.DB
}

//Open opens the catalog at path, creating it if needed.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("catalog: migrate %s: %w", path, err)
	}
	return db, nil
}

//Close closes the database.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS eam_tables (
		id TEXT PRIMARY KEY,
		path TEXT NOT NULL,
		variant TEXT NOT NULL,
		nrho INTEGER NOT NULL,
		drho REAL NOT NULL,
		nr INTEGER NOT NULL,
		dr REAL NOT NULL,
		cutoff REAL NOT NULL,
		lines INTEGER NOT NULL,
		bytes INTEGER NOT NULL,
		sha256 TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_eam_tables_sha256 ON eam_tables(sha256);
	CREATE INDEX IF NOT EXISTS idx_eam_tables_created ON eam_tables(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

//Record stores e. An empty ID gets a new random one, a zero Created time
//is set to now. It returns the entry as stored.
func (db *DB) Record(e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Created.IsZero() {
		e.Created = time.Now()
	}
	e.Created = e.Created.UTC()
	r := row{
		ID: e.ID, Path: e.Path, Variant: e.Variant,
		NRho: e.NRho, DRho: e.DRho, NR: e.NR, DR: e.DR, Cutoff: e.Cutoff,
		Lines: e.Lines, Bytes: e.Bytes, SHA256: e.SHA256,
		Created: e.Created.UnixNano(),
	}
	_, err := db.conn.NamedExec(`INSERT INTO eam_tables
		(id, path, variant, nrho, drho, nr, dr, cutoff, lines, bytes, sha256, created_at)
		VALUES (:id, :path, :variant, :nrho, :drho, :nr, :dr, :cutoff, :lines, :bytes, :sha256, :created_at)`, r)
	if err != nil {
		return Entry{}, fmt.Errorf("catalog: record %s: %w", e.Path, err)
	}
	return r.entry(), nil
}

//List returns all the entries, newest first.
func (db *DB) List() ([]Entry, error) {
	var rows []row
	if err := db.conn.Select(&rows, "SELECT * FROM eam_tables ORDER BY created_at DESC, rowid DESC"); err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	ret := make([]Entry, len(rows))
	for i, r := range rows {
		ret[i] = r.entry()
	}
	return ret, nil
}

//Find returns the newest entry whose content has the given checksum.
func (db *DB) Find(sha string) (Entry, error) {
	var r row
	err := db.conn.Get(&r, "SELECT * FROM eam_tables WHERE sha256 = ? ORDER BY created_at DESC, rowid DESC LIMIT 1", sha)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("catalog: find %s: %w", sha, err)
	}
	return r.entry(), nil
}
