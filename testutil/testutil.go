// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/cohortvote/cliparse"
	"github.com/danielhkuo/cohortvote/db"
)

// SetupTestDB creates a fresh SQLite database with the full schema in a
// temporary directory. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := "file:" + filepath.Join(t.TempDir(), "cohortvote_test.db")
	conn, err := db.Open(context.Background(), db.TypeSQLite, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		DatabaseURL:   "file::memory:",
		DatabaseType:  db.TypeSQLite,
		MaxCohortSize: 18,
		MaxWinners:    5,
		CutoffHour:    11,
		Location:      time.UTC,
		Seed:          42,
	}
}

// CreateTestUser inserts a user and returns its ID. The voter key is
// "key-" + id.
func CreateTestUser(t *testing.T, conn *sql.DB, id string) string {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO user_account (id, voter_key, created_at)
		VALUES (?, ?, ?)
	`, id, "key-"+id, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestShowcase inserts a showcase owned by userID.
func CreateTestShowcase(t *testing.T, conn *sql.DB, id, userID string) string {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO showcase (id, user_id, title, created_at)
		VALUES (?, ?, ?, ?)
	`, id, userID, "Showcase "+id, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test showcase: %v", err)
	}

	return id
}

// DeleteTestShowcase soft-deletes a showcase.
func DeleteTestShowcase(t *testing.T, conn *sql.DB, id string) {
	t.Helper()

	if _, err := conn.Exec(`UPDATE showcase SET deleted = TRUE WHERE id = ?`, id); err != nil {
		t.Fatalf("Failed to delete test showcase: %v", err)
	}
}

// CreateTestCohort inserts an unprocessed cohort with members and voters.
func CreateTestCohort(t *testing.T, conn *sql.DB, id string, showcaseIDs, voterIDs []string) string {
	t.Helper()

	start := time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)
	_, err := conn.Exec(`
		INSERT INTO cohort (id, starts_at, ends_at, created_at)
		VALUES (?, ?, ?, ?)
	`, id, start, start.Add(23*time.Hour), time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test cohort: %v", err)
	}

	for i, sid := range showcaseIDs {
		_, err := conn.Exec(`
			INSERT INTO cohort_showcase (cohort_id, showcase_id, position)
			VALUES (?, ?, ?)
		`, id, sid, i)
		if err != nil {
			t.Fatalf("Failed to add test cohort member: %v", err)
		}
	}

	for _, uid := range voterIDs {
		_, err := conn.Exec(`
			INSERT INTO cohort_voter (cohort_id, user_id)
			VALUES (?, ?)
		`, id, uid)
		if err != nil {
			t.Fatalf("Failed to assign test voter: %v", err)
		}
	}

	return id
}

var voteSeq int

// CastTestVote records a vote and returns its ID.
func CastTestVote(t *testing.T, conn *sql.DB, cohortID, voterKey, showcaseID string, points float64) string {
	t.Helper()

	voteSeq++
	id := fmt.Sprintf("vote-%04d", voteSeq)
	_, err := conn.Exec(`
		INSERT INTO vote (id, cohort_id, voter_key, showcase_id, points, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, cohortID, voterKey, showcaseID, points, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return id
}

// QueryOutcomes returns showcase ID -> outcome for a cohort.
func QueryOutcomes(t *testing.T, conn *sql.DB, cohortID string) map[string]string {
	t.Helper()

	rows, err := conn.Query(`
		SELECT showcase_id, outcome FROM cohort_showcase WHERE cohort_id = ?
	`, cohortID)
	if err != nil {
		t.Fatalf("Failed to query outcomes: %v", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var id, outcome string
		if err := rows.Scan(&id, &outcome); err != nil {
			t.Fatalf("Failed to scan outcome: %v", err)
		}
		out[id] = outcome
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Failed to read outcomes: %v", err)
	}

	return out
}

// IsProcessed reports a cohort's processed flag.
func IsProcessed(t *testing.T, conn *sql.DB, cohortID string) bool {
	t.Helper()

	var processed bool
	if err := conn.QueryRow(`SELECT processed FROM cohort WHERE id = ?`, cohortID).Scan(&processed); err != nil {
		t.Fatalf("Failed to query cohort: %v", err)
	}

	return processed
}
