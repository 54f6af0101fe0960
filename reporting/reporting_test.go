// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reporting

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-tally/models"
)

var testCandidates = models.NewCandidates([]string{"Alice", "Bob", "Carol"})

func TestConsole_InvalidBallot(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)

	c.InvalidBallot(models.Record{Line: 4, Raw: models.RawBallot{1, models.NoPreference, 1}}, errors.New("dup"))

	expected := "Invalid Ballot: 1,_,1 (line: 4)\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestConsole_QuietSuppressesProgress(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	c.InvalidBallot(models.Record{Line: 2, Raw: models.RawBallot{models.NoPreference}}, nil)
	c.CurrentCount([]uint64{1, 2, 3}, testCandidates)
	c.Status(models.Runoff([]int{0}), testCandidates)

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}

	// Results are printed regardless
	c.Winner(models.Outcome{Winner: 1, Name: "Bob"})
	if buf.String() != "Winner: Bob\n" {
		t.Errorf("expected winner line, got %q", buf.String())
	}
}

func TestConsole_CurrentCount(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)

	c.CurrentCount([]uint64{1500, 500, 0}, testCandidates)

	out := buf.String()
	for _, want := range []string{
		"Current Count:",
		"    Alice : 1,500 (75%)",
		"    Bob : 500 (25%)",
		"    Carol : 0 (0%)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestConsole_Status(t *testing.T) {
	tests := []struct {
		name     string
		status   models.CountStatus
		expected string
	}{
		{"runoff", models.Runoff([]int{1, 2}), "Eliminating: Bob, Carol\n"},
		{"promotion", models.Promotion([]int{0, 1}), "Resolving tie between: Alice, Bob\n"},
		{"winner", models.Winner(0), ""},
		{"tie", models.Tie(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewConsole(&buf, true).Status(tt.status, testCandidates)
			if buf.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestConsole_Tie(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, false).Winner(models.Outcome{Tie: true})

	if buf.String() != "The election was a tie\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestConsole_ThresholdSquash(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	c.ThresholdSquash(0.3, 0)
	if buf.Len() != 0 {
		t.Errorf("expected no warning for an unclamped threshold, got %q", buf.String())
	}

	c.ThresholdSquash(-2, -1)
	c.ThresholdSquash(1.5, 1)
	out := buf.String()
	if !strings.Contains(out, "below the allowed range, and set to 0") {
		t.Errorf("missing low warning: %q", out)
	}
	if !strings.Contains(out, "above the allowed range, and set to 1") {
		t.Errorf("missing high warning: %q", out)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	winner := "Alice"
	run := models.Run{ID: "abc", Winner: &winner, Rounds: 2}

	if err := WriteJSON(&buf, run); err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["winner"] != "Alice" {
		t.Errorf("expected winner Alice, got %v", decoded["winner"])
	}
	if decoded["rounds"] != float64(2) {
		t.Errorf("expected 2 rounds, got %v", decoded["rounds"])
	}
}
