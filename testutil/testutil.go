// Copyright (c) 2025 Daniel Kuo.
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

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ranked-pick/auth"
	"github.com/danielhkuo/ranked-pick/cliparse"
	"github.com/danielhkuo/ranked-pick/db"
)

// TestAdminToken is the admin token used across tests
const TestAdminToken = "test-admin-token"

// SetupTestDB opens a fresh in-memory SQLite database with the full schema
// and the voting window seeded closed.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A single connection keeps every statement on the same in-memory
	// database.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.InitVotingStatus(conn); err != nil {
		t.Fatalf("Failed to seed voting status: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3320,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminToken:   TestAdminToken,
	}
}

// CreateTestGuest registers an active guest and returns its ID
func CreateTestGuest(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO guest (name, costume, is_active, registered_at)
		VALUES ($1, NULL, 1, $2)
		RETURNING id
	`, name, time.Now()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test guest %q: %v", name, err)
	}
	return id
}

// DeactivateTestGuest marks a guest inactive
func DeactivateTestGuest(t *testing.T, conn *sql.DB, guestID int64) {
	t.Helper()

	if _, err := conn.Exec(`UPDATE guest SET is_active = 0 WHERE id = $1`, guestID); err != nil {
		t.Fatalf("Failed to deactivate guest %d: %v", guestID, err)
	}
}

// OpenTestVoting flips the voting window open
func OpenTestVoting(t *testing.T, conn *sql.DB) {
	t.Helper()

	_, err := conn.Exec(`
		UPDATE voting_status SET is_open = 1, opened_at = $1, closed_at = NULL WHERE id = 1
	`, time.Now())
	if err != nil {
		t.Fatalf("Failed to open test voting: %v", err)
	}
}

// CloseTestVoting flips the voting window closed
func CloseTestVoting(t *testing.T, conn *sql.DB) {
	t.Helper()

	_, err := conn.Exec(`
		UPDATE voting_status SET is_open = 0, closed_at = $1 WHERE id = 1
	`, time.Now())
	if err != nil {
		t.Fatalf("Failed to close test voting: %v", err)
	}
}

// CreateTestSession claims a session for a guest and returns the token
func CreateTestSession(t *testing.T, conn *sql.DB, guestID int64) string {
	t.Helper()

	token := auth.GenerateSessionToken()
	_, err := conn.Exec(`
		INSERT INTO session (guest_id, token, created_at)
		VALUES ($1, $2, $3)
	`, guestID, token, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return token
}

// SubmitTestVote inserts a ballot directly, bypassing validation
func SubmitTestVote(t *testing.T, conn *sql.DB, voterID, first, second, third int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (voter_id, first_choice_id, second_choice_id, third_choice_id, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voterID, first, second, third, time.Now())
	if err != nil {
		t.Fatalf("Failed to insert test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
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
