package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_AppliesMigrations(t *testing.T) {
	db, err := Open(context.Background(), "file:storetest?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// The credentials table must exist and accept the fixed-key row.
	_, err = db.Exec(`INSERT INTO credentials (key, value) VALUES ('token', 'T1')`)
	require.NoError(t, err)

	var value string
	require.NoError(t, db.QueryRow(`SELECT value FROM credentials WHERE key = 'token'`).Scan(&value))
	require.Equal(t, "T1", value)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db, err := Open(context.Background(), "file:storetest2?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(context.Background(), db))
}
