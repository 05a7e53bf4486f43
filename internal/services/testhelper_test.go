package services

import (
	"database/sql"
	"testing"

	"github.com/naveenrjn/prep-hub-be/internal/database"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a migrated in-memory database. MaxOpenConns is pinned to 1
// because each new connection to :memory: would get its own empty database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { db.Close() })
	return db
}

func insertSubject(t *testing.T, db *sql.DB, id, name string) {
	t.Helper()
	_, err := db.Exec("INSERT INTO subjects (id, name, color) VALUES (?, ?, 'bg-blue-500')", id, name)
	require.NoError(t, err)
}
