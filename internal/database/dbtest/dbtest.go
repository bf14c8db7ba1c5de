// Package dbtest opens throwaway stores for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-component-shop/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// NewSQLite opens a schema-ready SQLite store under t.TempDir and closes it
// when the test ends.
func NewSQLite(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := database.Open(context.Background(), &database.Config{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "shop.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.EnsureSchema(context.Background(), db))
	return db
}
