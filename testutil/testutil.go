// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/db"
	"github.com/danielhkuo/quickly-tally/models"
)

// SetupTestDB creates a fresh sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, filepath.Join(t.TempDir(), "tally.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Threshold:    0.5,
		DatabaseType: db.TypeSQLite,
	}
}

// CreateBallotTable creates a table with an id column and one INTEGER
// column per candidate, then inserts rows. A nil cell is stored as NULL.
func CreateBallotTable(t *testing.T, conn *sql.DB, table string, candidates []string, rows [][]interface{}) {
	t.Helper()

	cols := make([]string, len(candidates))
	for i, name := range candidates {
		cols[i] = fmt.Sprintf("%q INTEGER", name)
	}

	_, err := conn.Exec(fmt.Sprintf("CREATE TABLE %s (id INTEGER PRIMARY KEY, %s)", table, strings.Join(cols, ", ")))
	if err != nil {
		t.Fatalf("Failed to create ballot table: %v", err)
	}

	quoted := make([]string, len(candidates))
	placeholders := make([]string, len(candidates))
	for i, name := range candidates {
		quoted[i] = fmt.Sprintf("%q", name)
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(quoted, ", "), strings.Join(placeholders, ", "))

	for _, row := range rows {
		if _, err := conn.Exec(insert, row...); err != nil {
			t.Fatalf("Failed to insert ballot row: %v", err)
		}
	}
}

// WriteCSV writes content to a file in a temporary directory and returns
// its path
func WriteCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ballots.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write CSV: %v", err)
	}
	return path
}

// RecordingReporter keeps every event it receives
type RecordingReporter struct {
	Invalid  []models.Record
	Errors   []error
	Counts   [][]uint64
	Statuses []models.CountStatus
}

func (r *RecordingReporter) InvalidBallot(rec models.Record, err error) {
	r.Invalid = append(r.Invalid, rec)
	r.Errors = append(r.Errors, err)
}

func (r *RecordingReporter) CurrentCount(totals []uint64, _ models.Candidates) {
	r.Counts = append(r.Counts, totals)
}

func (r *RecordingReporter) Status(status models.CountStatus, _ models.Candidates) {
	r.Statuses = append(r.Statuses, status)
}
