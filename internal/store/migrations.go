package store

import "database/sql"

// Migration represents a single schema migration step for the embedded
// artifact. The remote Postgres schema is owned elsewhere.
type Migration struct {
	Version     int
	Description string
	Up          func(tx *sql.Tx) error
}

// migrations is the ordered list of all schema migrations.
// Append new migrations to the end with incrementing Version numbers.
var migrations = []Migration{
	{
		Version:     1,
		Description: "initial schema",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS parties (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    country TEXT NOT NULL,
    founded INTEGER,
    website TEXT,
    econ_freedom REAL,
    personal_freedom REAL
);

CREATE INDEX IF NOT EXISTS idx_parties_country ON parties(country);

CREATE TABLE IF NOT EXISTS llm_responses (
    party_id TEXT NOT NULL REFERENCES parties(id),
    chunk_index INTEGER NOT NULL,
    policy_id INTEGER NOT NULL,
    policy_text TEXT,
    short_name TEXT,
    impact TEXT,
    impact_explanation TEXT,
    category TEXT,
    explanation TEXT,
    econ_freedom REAL,
    personal_freedom REAL,
    weight REAL,
    error TEXT,
    PRIMARY KEY (party_id, chunk_index, policy_id)
);
`)
			return err
		},
	},
}

func latestVersion() int {
	return migrations[len(migrations)-1].Version
}
