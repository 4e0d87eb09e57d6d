// Package db owns the SQLite store. The schema lives in embedded migration
// files and every writer follows the same pattern: upsert keyed on the
// feed's own identifiers so repeat runs converge instead of duplicating.
package db

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type DB struct {
	*sqlx.DB
}

// Open opens the SQLite file at path, creating it and its parent directory
// if needed, and brings the schema up to date.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "creating database directory %s", dir)
		}
	}

	conn, err := sqlx.Open("sqlite3", "file:"+path+"?_foreign_keys=on")
	if err != nil {
		return nil, errors.Wrapf(err, "opening database %s", path)
	}
	// SQLite serializes writers anyway, and a single connection keeps the
	// foreign key pragma applied to every statement.
	conn.SetMaxOpenConns(1)

	d := &DB{conn}
	if err := d.migrateUp(); err != nil {
		conn.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) migrateUp() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "loading embedded migrations")
	}
	driver, err := migratesqlite.WithInstance(d.DB.DB, &migratesqlite.Config{})
	if err != nil {
		return errors.Wrap(err, "preparing migration driver")
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return errors.Wrap(err, "initializing migrations")
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "applying migrations")
	}
	return nil
}

// Reset deletes the database file and rebuilds an empty schema. The confirm
// flag exists so a typo'd CLI invocation cannot wipe the store.
func Reset(path string, confirm bool) (*DB, error) {
	if !confirm {
		return nil, errors.New("refusing to reset database without confirmation")
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "removing database %s", path)
	}
	zap.S().Infow("database reset", "path", path)
	return Open(path)
}
