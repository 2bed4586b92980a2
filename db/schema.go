// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is kept portable across PostgreSQL and SQLite.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Counties (47 fixed administrative units, seeded once)
CREATE TABLE IF NOT EXISTS county (
    id TEXT PRIMARY KEY,
    code INTEGER NOT NULL UNIQUE CHECK (code >= 1 AND code <= 47),
    name TEXT NOT NULL
);

-- Constituencies (each belongs to exactly one county)
CREATE TABLE IF NOT EXISTS constituency (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    county_id TEXT NOT NULL REFERENCES county(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_constituency_county_id ON constituency(county_id);

-- Candidates (static per election cycle)
CREATE TABLE IF NOT EXISTS candidate (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    party TEXT,
    office TEXT NOT NULL CHECK (office IN ('president', 'governor', 'mp')),
    bio TEXT,
    home_county_id TEXT REFERENCES county(id),
    constituency_id TEXT REFERENCES constituency(id)
);

CREATE INDEX IF NOT EXISTS idx_candidate_office ON candidate(office);
CREATE INDEX IF NOT EXISTS idx_candidate_home_county ON candidate(home_county_id);
CREATE INDEX IF NOT EXISTS idx_candidate_constituency ON candidate(constituency_id);

-- Votes: at most one row per (session, office).
-- office is a snapshot of the candidate's office at submission time so the
-- invariant is enforceable as a constraint and the submit path can be a
-- single atomic upsert.
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    county_id TEXT NOT NULL REFERENCES county(id),
    candidate_id TEXT NOT NULL REFERENCES candidate(id),
    constituency_id TEXT REFERENCES constituency(id),
    office TEXT NOT NULL CHECK (office IN ('president', 'governor', 'mp')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (session_id, office)
);

CREATE INDEX IF NOT EXISTS idx_vote_county_id ON vote(county_id);
CREATE INDEX IF NOT EXISTS idx_vote_candidate_id ON vote(candidate_id);
CREATE INDEX IF NOT EXISTS idx_vote_constituency_id ON vote(constituency_id);
CREATE INDEX IF NOT EXISTS idx_vote_session ON vote(session_id, office);
`
