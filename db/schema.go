// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The DDL is selected by
// databaseType ("sqlite" or "postgres"): the two dialects spell id
// generation differently and share everything else.
func CreateSchema(db *sql.DB, databaseType string) error {
	ddl := schemaSQLite
	if databaseType == "postgres" {
		ddl = schemaPostgres
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// InitVotingStatus seeds the singleton voting window row, initially closed.
// Safe to call multiple times; an existing row is left untouched.
func InitVotingStatus(db *sql.DB) error {
	var count int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM voting_status`).Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect voting_status: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO voting_status (id, is_open, opened_at, closed_at)
		VALUES (1, 0, NULL, NULL)
	`)
	if err != nil {
		return fmt.Errorf("failed to seed voting_status: %w", err)
	}
	return nil
}

const schemaSQLite = `
-- Guest roster (doubles as the candidate list while active)
CREATE TABLE IF NOT EXISTS guest (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    costume TEXT,
    is_active INTEGER NOT NULL DEFAULT 1,
    registered_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_guest_is_active ON guest(is_active);

-- Guest sessions
CREATE TABLE IF NOT EXISTS session (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    guest_id INTEGER NOT NULL REFERENCES guest(id) ON DELETE CASCADE,
    token TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_token ON session(token);

-- Voting window singleton (id is always 1)
CREATE TABLE IF NOT EXISTS voting_status (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    is_open INTEGER NOT NULL DEFAULT 0,
    opened_at TIMESTAMP,
    closed_at TIMESTAMP
);

-- Ranked ballots, one per voter
CREATE TABLE IF NOT EXISTS vote (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    voter_id INTEGER NOT NULL UNIQUE REFERENCES guest(id) ON DELETE CASCADE,
    first_choice_id INTEGER NOT NULL,
    second_choice_id INTEGER NOT NULL,
    third_choice_id INTEGER NOT NULL,
    submitted_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_voter_id ON vote(voter_id);
`

// is_open and is_active stay INTEGER rather than BOOLEAN so the 0/1
// comparisons in queries work identically on both drivers.
const schemaPostgres = `
-- Guest roster (doubles as the candidate list while active)
CREATE TABLE IF NOT EXISTS guest (
    id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    costume TEXT,
    is_active INTEGER NOT NULL DEFAULT 1,
    registered_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_guest_is_active ON guest(is_active);

-- Guest sessions
CREATE TABLE IF NOT EXISTS session (
    id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    guest_id BIGINT NOT NULL REFERENCES guest(id) ON DELETE CASCADE,
    token TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_token ON session(token);

-- Voting window singleton (id is always 1)
CREATE TABLE IF NOT EXISTS voting_status (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    is_open INTEGER NOT NULL DEFAULT 0,
    opened_at TIMESTAMPTZ,
    closed_at TIMESTAMPTZ
);

-- Ranked ballots, one per voter
CREATE TABLE IF NOT EXISTS vote (
    id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    voter_id BIGINT NOT NULL UNIQUE REFERENCES guest(id) ON DELETE CASCADE,
    first_choice_id BIGINT NOT NULL,
    second_choice_id BIGINT NOT NULL,
    third_choice_id BIGINT NOT NULL,
    submitted_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_voter_id ON vote(voter_id);
`
