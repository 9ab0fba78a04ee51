package database

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// InitDB opens the club database and ensures the schema exists. With no
// primary URL it opens a local SQLite file (":memory:" for tests); with one
// it connects to the remote Turso database instead. The returned teardown
// closes the connection.
func InitDB(dbPath, primaryURL, authToken string) (*sql.DB, func(), error) {
	var (
		db  *sql.DB
		err error
	)
	if primaryURL == "" {
		log.Info("Initializing local SQLite database", "path", dbPath)
		db, err = sql.Open("sqlite3", dbPath)
		if err == nil && dbPath == ":memory:" {
			// Every pooled connection would otherwise get its own empty
			// in-memory database.
			db.SetMaxOpenConns(1)
		}
	} else {
		log.Info("Initializing Turso database", "url", primaryURL)
		db, err = sql.Open("libsql", primaryURL+"?authToken="+authToken)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = createTables(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create tables: %w", err)
	}

	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}
	return db, teardown, nil
}

func createTables(db *sql.DB) error {
	// Foreign key support is not enabled by default in SQLite
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		log.Error("Error enabling foreign keys", "error", err)
		return err
	}

	createPlayersTable := `
    CREATE TABLE IF NOT EXISTS players (
        id TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        password TEXT NOT NULL
    );`

	createPlayerStatsTable := `
	CREATE TABLE IF NOT EXISTS player_stats (
		player_id TEXT NOT NULL,
		scope TEXT NOT NULL CHECK (scope IN ('season', 'all_time')),
		position INTEGER NOT NULL,
		label TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (player_id, scope, position),
		FOREIGN KEY (player_id) REFERENCES players(id) ON DELETE CASCADE
	);`

	// Schedule entries have no identity of their own; position is the
	// schedule order and the whole table is replaced on every update.
	createScheduleTable := `
	CREATE TABLE IF NOT EXISTS schedule (
		position INTEGER PRIMARY KEY,
		opponent TEXT NOT NULL,
		competition TEXT NOT NULL,
		match_date TEXT NOT NULL,
		kickoff TEXT NOT NULL,
		venue TEXT NOT NULL,
		score TEXT
	);`

	createTeamNewsTable := `
	CREATE TABLE IF NOT EXISTS team_news (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL
	);`

	for _, stmt := range []string{createPlayersTable, createPlayerStatsTable, createScheduleTable, createTeamNewsTable} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	log.Info("Database initialized successfully")
	return nil
}
