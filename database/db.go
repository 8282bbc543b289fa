package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// ErrNotFound is returned by updates and deletes that matched no row.
var ErrNotFound = errors.New("record not found")

// ErrConstraint matches writes the schema rejected: a parent row that does
// not exist or a duplicate unique value.
var ErrConstraint = errors.New("constraint violation")

// ConstraintError is returned in place of the driver error when a write
// breaks a foreign key or unique constraint. errors.Is(err, ErrConstraint)
// holds for it.
type ConstraintError struct {
	ForeignKey bool
	// Column is the duplicated column of a unique violation, e.g. "name".
	Column string
	err    error
}

func (e *ConstraintError) Error() string        { return e.err.Error() }
func (e *ConstraintError) Unwrap() error        { return e.err }
func (e *ConstraintError) Is(target error) bool { return target == ErrConstraint }

// constraintError converts sqlite foreign key and unique failures to
// *ConstraintError and passes every other error through.
func constraintError(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintForeignKey:
		return &ConstraintError{ForeignKey: true, err: err}
	case sqlite3.ErrConstraintUnique:
		// "UNIQUE constraint failed: communication_templates.name"
		msg := sqliteErr.Error()
		col := msg[strings.LastIndex(msg, ".")+1:]
		return &ConstraintError{Column: col, err: err}
	}
	return err
}

// Open opens the sqlite store with foreign keys enforced.
func Open(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Migrate applies every pending up migration to the database file at path.
// It opens its own connection so closing the migrator leaves callers' handles alone.
func Migrate(path string) error {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite3://"+path)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// MigrationVersion reports the applied schema version.
func MigrationVersion(path string) (uint, bool, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return 0, false, fmt.Errorf("failed to read embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite3://"+path)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// WithTx runs fn inside a transaction, committing only when fn succeeds.
func WithTx(db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func getByID[T any](db sqlx.Queryer, query string, id int64) (*T, error) {
	var out T
	if err := sqlx.Get(db, &out, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func expectOne(res sql.Result, err error) error {
	if err != nil {
		return constraintError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
