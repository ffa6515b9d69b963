// Package migrations embeds the library schema and applies it with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const (
	sourceName   = "iofs"
	databaseName = "postgres"
	sqlDir       = "sql"

	// MigrationsTable is the table golang-migrate uses to track the applied version.
	MigrationsTable = "library_schema_migrations"
)

//go:embed sql/*.sql
var files embed.FS

var (
	// ErrOpeningSourceFailed is returned when the embedded migration files cannot be read.
	ErrOpeningSourceFailed = errors.New("opening migration source failed")

	// ErrOpeningDatabaseFailed is returned when the migration driver cannot attach to the database.
	ErrOpeningDatabaseFailed = errors.New("opening migration database failed")

	// ErrMigratingFailed is returned when applying or reverting migrations fails.
	ErrMigratingFailed = errors.New("migrating failed")
)

// Migrator applies the embedded schema to one database.
// Closing it also closes the *sql.DB it was created with.
type Migrator struct {
	m *migrate.Migrate
}

// New attaches a Migrator to db.
func New(db *sql.DB) (*Migrator, error) {
	source, err := iofs.New(files, sqlDir)
	if err != nil {
		return nil, errors.Join(ErrOpeningSourceFailed, err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: MigrationsTable})
	if err != nil {
		return nil, errors.Join(ErrOpeningDatabaseFailed, err)
	}

	m, err := migrate.NewWithInstance(sourceName, source, databaseName, driver)
	if err != nil {
		return nil, errors.Join(ErrMigratingFailed, err)
	}

	return &Migrator{m: m}, nil
}

// Up applies all pending migrations. An already current schema is not an error.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Join(ErrMigratingFailed, err)
	}

	return nil
}

// Down reverts the given number of migrations.
func (mg *Migrator) Down(steps int) error {
	if err := mg.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Join(ErrMigratingFailed, err)
	}

	return nil
}

// Version reports the applied schema version and whether the last migration left it dirty.
// A fresh database reports version 0.
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, errors.Join(ErrMigratingFailed, err)
	}

	return version, dirty, nil
}

// Close releases the migration source and the database.
func (mg *Migrator) Close() error {
	sourceErr, dbErr := mg.m.Close()

	return errors.Join(sourceErr, dbErr)
}
