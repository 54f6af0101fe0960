// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// clearEnv blanks every variable ParseFlags reads
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TALLY_THRESHOLD", "TALLY_REPORT", "DATABASE_URL", "DATABASE_TYPE", "BALLOT_TABLE", "BALLOT_IGNORE_COLUMNS"} {
		t.Setenv(k, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := ParseFlags([]string{"ballots.csv"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Path != "ballots.csv" {
		t.Errorf("expected path ballots.csv, got %q", cfg.Path)
	}
	if cfg.Threshold != DefaultThreshold {
		t.Errorf("expected threshold %v, got %v", DefaultThreshold, cfg.Threshold)
	}
	if cfg.Report || cfg.JSON || cfg.Record {
		t.Errorf("expected switches off, got %+v", cfg)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.Source() != "ballots.csv" {
		t.Errorf("unexpected source %q", cfg.Source())
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("TALLY_THRESHOLD", "0.66")
	t.Setenv("TALLY_REPORT", "true")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("BALLOT_TABLE", "ballots")
	t.Setenv("BALLOT_IGNORE_COLUMNS", "id, cast_at")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Threshold != 0.66 {
		t.Errorf("expected threshold 0.66, got %v", cfg.Threshold)
	}
	if !cfg.Report {
		t.Error("expected report from env")
	}
	if cfg.DatabaseType != "postgres" || cfg.DatabaseURL != "postgres://test" {
		t.Errorf("unexpected database settings %+v", cfg)
	}
	if cfg.Source() != "table:ballots" {
		t.Errorf("unexpected source %q", cfg.Source())
	}
	if !reflect.DeepEqual(cfg.IgnoreColumns, []string{"id", "cast_at"}) {
		t.Errorf("unexpected ignore columns %v", cfg.IgnoreColumns)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TALLY_THRESHOLD", "0.9")
	t.Setenv("TALLY_REPORT", "true")

	cfg, err := ParseFlags([]string{"-t", "0.4", "-report=false", "ballots.csv"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Threshold != 0.4 {
		t.Errorf("CLI should override env: expected 0.4, got %v", cfg.Threshold)
	}
	if cfg.Report {
		t.Error("CLI should override env: expected report off")
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"no source", []string{}, nil},
		{"two files", []string{"a.csv", "b.csv"}, nil},
		{"file and table", []string{"-table", "ballots", "-d", "x", "a.csv"}, nil},
		{"table without database", []string{"-table", "ballots"}, nil},
		{"record without database", []string{"-record", "a.csv"}, nil},
		{"bad threshold env", []string{"a.csv"}, map[string]string{"TALLY_THRESHOLD": "half"}},
		{"bad report env", []string{"a.csv"}, map[string]string{"TALLY_REPORT": "sometimes"}},
		{"nan threshold", []string{"-t", "NaN", "a.csv"}, nil},
		{"unknown flag", []string{"-bogus", "a.csv"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Errorf("expected error for args %v", tt.args)
			}
		})
	}
}

func TestClampThreshold(t *testing.T) {
	tests := []struct {
		in        float64
		expected  float64
		direction int
	}{
		{0.5, 0.5, 0},
		{0, 0, 0},
		{1, 1, 0},
		{-0.1, 0, -1},
		{3, 1, 1},
	}

	for _, tt := range tests {
		got, direction := ClampThreshold(tt.in)
		if got != tt.expected || direction != tt.direction {
			t.Errorf("ClampThreshold(%v) = %v, %d; expected %v, %d", tt.in, got, direction, tt.expected, tt.direction)
		}
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TALLY_TEST_VALUE=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TALLY_TEST_VALUE", "")
	os.Unsetenv("TALLY_TEST_VALUE")

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile failed: %v", err)
	}
	if got := os.Getenv("TALLY_TEST_VALUE"); got != "from-file" {
		t.Errorf("expected from-file, got %q", got)
	}

	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing file should not be an error, got %v", err)
	}
}
