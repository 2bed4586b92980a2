// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/otienojakes/kura/cliparse"
	"github.com/otienojakes/kura/db"
	"github.com/otienojakes/kura/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// A single pooled connection keeps the memory database alive for the whole
// test and sidesteps SQLite write locking.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3047,
		DatabaseURL:  "file::memory:",
		DatabaseType: "sqlite",
	}
}

// SeedCounty inserts a county and returns its ID
func SeedCounty(t *testing.T, conn *sql.DB, id string, code int, name string) string {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO county (id, code, name)
		VALUES ($1, $2, $3)
	`, id, code, name)
	if err != nil {
		t.Fatalf("Failed to seed county: %v", err)
	}

	return id
}

// SeedConstituency inserts a constituency and returns its ID
func SeedConstituency(t *testing.T, conn *sql.DB, id, name, countyID string) string {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO constituency (id, name, county_id)
		VALUES ($1, $2, $3)
	`, id, name, countyID)
	if err != nil {
		t.Fatalf("Failed to seed constituency: %v", err)
	}

	return id
}

// SeedCandidate inserts a candidate and returns its ID.
// party may be empty (stored NULL); constituencyID may be empty for
// president and governor candidates.
func SeedCandidate(t *testing.T, conn *sql.DB, id, name, party, office, constituencyID string) string {
	t.Helper()

	var partyVal, constiVal interface{}
	if party != "" {
		partyVal = party
	}
	if constituencyID != "" {
		constiVal = constituencyID
	}

	_, err := conn.Exec(`
		INSERT INTO candidate (id, name, party, office, constituency_id)
		VALUES ($1, $2, $3, $4, $5)
	`, id, name, partyVal, office, constiVal)
	if err != nil {
		t.Fatalf("Failed to seed candidate: %v", err)
	}

	return id
}

// SeedVote inserts a vote row directly, bypassing the collect handler.
// constituencyID may be empty (stored NULL).
func SeedVote(t *testing.T, conn *sql.DB, sessionID, countyID, candidateID, constituencyID, office string) string {
	t.Helper()

	var constiVal interface{}
	if constituencyID != "" {
		constiVal = constituencyID
	}

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO vote (id, session_id, county_id, candidate_id, constituency_id, office, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, id, sessionID, countyID, candidateID, constiVal, office, now, now)
	if err != nil {
		t.Fatalf("Failed to seed vote: %v", err)
	}

	return id
}

// GetVote fetches the session's vote row for an office. Fails the test when
// no such row exists; timestamps are not loaded.
func GetVote(t *testing.T, conn *sql.DB, sessionID, office string) models.Vote {
	t.Helper()

	var v models.Vote
	err := conn.QueryRow(`
		SELECT id, session_id, county_id, candidate_id, constituency_id, office
		FROM vote
		WHERE session_id = $1 AND office = $2
	`, sessionID, office).Scan(&v.ID, &v.SessionID, &v.CountyID, &v.CandidateID, &v.ConstituencyID, &v.Office)
	if err != nil {
		t.Fatalf("Failed to fetch vote for session %s office %s: %v", sessionID, office, err)
	}

	return v
}

// CountVotes returns the number of vote rows matching the session (all
// offices when office is empty).
func CountVotes(t *testing.T, conn *sql.DB, sessionID, office string) int {
	t.Helper()

	var n int
	var err error
	if office == "" {
		err = conn.QueryRow(`SELECT COUNT(*) FROM vote WHERE session_id = $1`, sessionID).Scan(&n)
	} else {
		err = conn.QueryRow(`SELECT COUNT(*) FROM vote WHERE session_id = $1 AND office = $2`, sessionID, office).Scan(&n)
	}
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}

	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
