// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	_ "modernc.org/sqlite"

	"pollbox/auth"
	"pollbox/cliparse"
	"pollbox/db"
	"pollbox/store"
)

// TestTime is the fixed "now" the fake clock starts at.
var TestTime = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

var dbCounter atomic.Int64

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each call gets its own database; no server required.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// A named shared-cache memory DB keeps the data visible across pool
	// connections; the unique name isolates tests from each other.
	dsn := fmt.Sprintf("file:pollbox_test_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", dbCounter.Add(1))
	conn, err := sql.Open("sqlite", dsn)
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
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminKeySalt: "test-admin-salt",
	}
}

// FakeClock returns a clock frozen at TestTime.
func FakeClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(TestTime)
}

// CreateTestQuestion creates a question published at the given time and
// returns its ID and admin key.
func CreateTestQuestion(t *testing.T, conn *sql.DB, cfg cliparse.Config, text string, pubDate time.Time) (questionID, adminKey string) {
	t.Helper()

	q, err := store.New(conn).CreateQuestion(context.Background(), text, pubDate)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return q.ID, auth.GenerateAdminKey(q.ID, cfg.AdminKeySalt)
}

// AddTestChoice adds a choice to a question and returns the choice ID
func AddTestChoice(t *testing.T, conn *sql.DB, questionID, text string) string {
	t.Helper()

	c, err := store.New(conn).AddChoice(context.Background(), questionID, text)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}

	return c.ID
}

// GetVotes reads a choice's current tally straight from the database
func GetVotes(t *testing.T, conn *sql.DB, choiceID string) int64 {
	t.Helper()

	var votes int64
	if err := conn.QueryRow(`SELECT votes FROM choice WHERE id = $1`, choiceID).Scan(&votes); err != nil {
		t.Fatalf("Failed to read votes for choice %s: %v", choiceID, err)
	}

	return votes
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
