// Package dbtest opens migrated throwaway databases for handler tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"propdesk/database"
	"propdesk/model"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// Open migrates a fresh database under t.TempDir and closes it on cleanup.
func Open(t testing.TB) *sqlx.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "propdesk_test.db")
	require.NoError(t, database.Migrate(path))

	db, err := database.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateProperty inserts an active property and returns its id.
func CreateProperty(t testing.TB, db *sqlx.DB, name string) int64 {
	t.Helper()
	var id int64
	err := database.WithTx(db, func(tx *sqlx.Tx) error {
		var err error
		id, err = database.CreatePropertyInTx(tx, &model.Property{
			Name:    name,
			Address: "1 Main St",
			Status:  model.PropertyStatusActive,
		})
		return err
	})
	require.NoError(t, err)
	return id
}
