package database_test

import (
	"testing"

	"github.com/flameunter/fanclub/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDBCreatesSchema(t *testing.T) {
	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardown()

	for _, table := range []string{"players", "player_stats", "schedule", "team_news"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, "expected table %s to exist", table)
		assert.Equal(t, table, name)
	}
}

func TestInitDBIsIdempotent(t *testing.T) {
	path := t.TempDir() + "/club.db"

	db, teardown, err := database.InitDB(path, "", "")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO players (id, name, password) VALUES ('p1', 'Player One', 'pw')")
	require.NoError(t, err)
	teardown()

	// Re-opening the same file must not wipe existing data.
	db2, teardown2, err := database.InitDB(path, "", "")
	require.NoError(t, err)
	defer teardown2()

	var count int
	require.NoError(t, db2.QueryRow("SELECT COUNT(*) FROM players").Scan(&count))
	assert.Equal(t, 1, count)
}
