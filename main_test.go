// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-tally/db"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/testutil"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TALLY_THRESHOLD", "TALLY_REPORT", "DATABASE_URL", "DATABASE_TYPE", "BALLOT_TABLE", "BALLOT_IGNORE_COLUMNS", "NO_COLOR"} {
		t.Setenv(k, "")
	}
}

func TestRun_CSVWinner(t *testing.T) {
	clearEnv(t)
	path := testutil.WriteCSV(t, "A,B,C\n1,2,\n1,2,\n1,2,\n,1,2\n,1,2\n2,,1\n")

	var out bytes.Buffer
	code := run(context.Background(), []string{path}, &out)

	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	if out.String() != "Winner: A\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRun_Report(t *testing.T) {
	clearEnv(t)
	path := testutil.WriteCSV(t, "A,B\n1,\n,1\n1,1\n")

	var out bytes.Buffer
	code := run(context.Background(), []string{"-report", path}, &out)

	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	for _, want := range []string{
		"Invalid Ballot: 1,1 (line: 4)",
		"Current Count:",
		"Resolving tie between: A, B",
		"The election was a tie",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestRun_ThresholdClamped(t *testing.T) {
	clearEnv(t)
	path := testutil.WriteCSV(t, "A,B\n1,\n1,\n,1\n")

	var out bytes.Buffer
	code := run(context.Background(), []string{"-t", "7", path}, &out)

	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	if !strings.Contains(out.String(), "above the allowed range, and set to 1") {
		t.Errorf("expected clamp warning, got %q", out.String())
	}
	// At threshold 1 B is eliminated first, then A holds every vote
	if !strings.Contains(out.String(), "Winner: A") {
		t.Errorf("expected A to win, got %q", out.String())
	}
}

func TestRun_MissingFile(t *testing.T) {
	clearEnv(t)

	var out bytes.Buffer
	code := run(context.Background(), []string{filepath.Join(t.TempDir(), "nope.csv")}, &out)

	if code != exitDataErr {
		t.Errorf("expected exit %d, got %d", exitDataErr, code)
	}
	if !strings.Contains(out.String(), "Source Error:") {
		t.Errorf("expected source error, got %q", out.String())
	}
}

func TestRun_BadFlags(t *testing.T) {
	clearEnv(t)

	var out bytes.Buffer
	if code := run(context.Background(), []string{}, &out); code != exitUsage {
		t.Errorf("expected exit %d, got %d", exitUsage, code)
	}
}

func TestRun_TableRecordJSON(t *testing.T) {
	clearEnv(t)
	dbPath := filepath.Join(t.TempDir(), "tally.db")

	conn, err := db.Open(db.TypeSQLite, dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	testutil.CreateBallotTable(t, conn, "ballots", []string{"Alice", "Bob"}, [][]interface{}{
		{1, 2},
		{1, nil},
		{2, 1},
		{nil, nil},
	})

	var out bytes.Buffer
	code := run(context.Background(), []string{
		"-d", dbPath, "-db-type", "sqlite", "-table", "ballots", "-ignore", "id", "-record", "-json",
	}, &out)
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d (output %q)", exitOK, code, out.String())
	}

	var printed models.Run
	if err := json.Unmarshal(out.Bytes(), &printed); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out.String(), err)
	}
	if printed.Winner == nil || *printed.Winner != "Alice" {
		t.Errorf("expected Alice to win, got %+v", printed)
	}
	if printed.Accepted != 3 || printed.Rejected != 1 {
		t.Errorf("unexpected ballot counts %+v", printed)
	}
	if printed.Source != "table:ballots" {
		t.Errorf("unexpected source %q", printed.Source)
	}

	stored, err := db.GetRun(context.Background(), conn, printed.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if stored.InputsHash != printed.InputsHash || stored.Rounds != printed.Rounds {
		t.Errorf("stored run %+v does not match printed %+v", stored, printed)
	}
}
