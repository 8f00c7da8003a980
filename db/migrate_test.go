package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestOpen(t *testing.T) {
	t.Run("opens database successfully", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")

		database, err := Open(dbPath, zaptest.NewLogger(t).Sugar())
		require.NoError(t, err)
		defer database.Close()

		require.NoError(t, database.Ping())

		var journalMode string
		require.NoError(t, database.QueryRow("PRAGMA journal_mode").Scan(&journalMode))
		assert.Equal(t, "wal", journalMode)
	})

	t.Run("works without logger", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")

		database, err := Open(dbPath, nil)
		require.NoError(t, err)
		defer database.Close()

		require.NoError(t, database.Ping())
	})
}

func TestMigrate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := Open(dbPath, nil)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database, zaptest.NewLogger(t).Sugar()))

	// Both network tables exist and are writable.
	_, err = database.Exec(`INSERT INTO heroes (id, name, created_at) VALUES ('h1', 'dataiskole', '2025-06-01')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO heroes (id, name, created_at) VALUES ('h2', 'Nightwing', '2025-06-02')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO links (source, target) VALUES ('h1', 'h2')`)
	require.NoError(t, err)

	// Canonical-order check constraint rejects reversed pairs.
	_, err = database.Exec(`INSERT INTO links (source, target) VALUES ('h2', 'h1')`)
	assert.Error(t, err)
}

func TestMigrateIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := Open(dbPath, nil)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database, nil))
	require.NoError(t, Migrate(database, nil))

	var applied int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied))
	assert.Equal(t, 2, applied)
}
