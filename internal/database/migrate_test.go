package database

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateSQLiteIsIdempotent(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	applied, err := Migrate(ctx, db, SQLite)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0001_create_venues",
		"0002_create_artists",
		"0003_create_shows",
		"0004_add_venue_completed",
	}, applied)

	again, err := Migrate(ctx, db, SQLite)
	require.NoError(t, err)
	assert.Empty(t, again)

	var latest int64
	require.NoError(t, db.QueryRow(`SELECT MAX(version_id) FROM goose_db_version WHERE is_applied`).Scan(&latest))
	assert.EqualValues(t, 4, latest)

	var completed bool
	_, err = db.Exec(`INSERT INTO venues (name, city, state) VALUES ('Blue Note', 'NYC', 'NY')`)
	require.NoError(t, err)
	require.NoError(t, db.QueryRow(`SELECT completed FROM venues WHERE name = 'Blue Note'`).Scan(&completed))
	assert.False(t, completed)
}

func TestMigrateUnknownDialect(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = Migrate(context.Background(), db, "oracle")
	assert.Error(t, err)
}

func TestMySQLAndSQLiteShipSameVersions(t *testing.T) {
	my, err := migrationFS.ReadDir("migrations/mysql")
	require.NoError(t, err)
	lite, err := migrationFS.ReadDir("migrations/sqlite")
	require.NoError(t, err)
	require.Len(t, lite, len(my))
	for i := range my {
		assert.Equal(t, my[i].Name(), lite[i].Name())
	}
}

func TestMigrationsCarryGooseAnnotations(t *testing.T) {
	for _, dialect := range []string{MySQL, SQLite} {
		entries, err := migrationFS.ReadDir("migrations/" + dialect)
		require.NoError(t, err)
		for _, e := range entries {
			body, err := migrationFS.ReadFile("migrations/" + dialect + "/" + e.Name())
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(body), "-- +goose Up\n"), "%s/%s", dialect, e.Name())
			assert.Contains(t, string(body), "-- +goose Down\n", "%s/%s", dialect, e.Name())
		}
	}
}
