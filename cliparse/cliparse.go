// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultThreshold = 0.5

type Config struct {
	Path          string
	Threshold     float64
	Report        bool
	JSON          bool
	Record        bool
	DatabaseURL   string
	DatabaseType  string
	Table         string
	IgnoreColumns []string
}

// Source names where the ballots come from, for logs and stored runs
func (c Config) Source() string {
	if c.Table != "" {
		return "table:" + c.Table
	}
	return c.Path
}

// ParseFlags validates flags and fills unset values from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var ignore string

	fs := flag.NewFlagSet("quickly-tally", flag.ContinueOnError)

	// Counting
	fs.Float64Var(&cfg.Threshold, "t", DefaultThreshold, "Share of live votes needed to win (0-1)")
	fs.Float64Var(&cfg.Threshold, "threshold", DefaultThreshold, "Share of live votes needed to win (0-1)")
	fs.BoolVar(&cfg.Report, "report", false, "Print every round of the count")
	fs.BoolVar(&cfg.JSON, "json", false, "Print the result as JSON")

	// Database (ballot table source and result store)
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "db-type", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.Table, "table", "", "Read ballots from this database table instead of a CSV file")
	fs.StringVar(&ignore, "ignore", "", "Comma-separated table columns that are not candidates")
	fs.BoolVar(&cfg.Record, "record", false, "Save the result to the database")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Path = fs.Arg(0)
	default:
		return Config{}, errors.New("only one ballot file may be given")
	}

	// Fall back to environment variables
	if !set["t"] && !set["threshold"] {
		if s := os.Getenv("TALLY_THRESHOLD"); s != "" {
			t, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return Config{}, errors.New("invalid TALLY_THRESHOLD env variable")
			}
			cfg.Threshold = t
		}
	}
	if math.IsNaN(cfg.Threshold) {
		return Config{}, errors.New("threshold must be a number")
	}

	if !set["report"] {
		if s := os.Getenv("TALLY_REPORT"); s != "" {
			report, err := strconv.ParseBool(s)
			if err != nil {
				return Config{}, errors.New("invalid TALLY_REPORT env variable")
			}
			cfg.Report = report
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.Table == "" {
		cfg.Table = os.Getenv("BALLOT_TABLE")
	}
	if ignore == "" {
		ignore = os.Getenv("BALLOT_IGNORE_COLUMNS")
	}
	for _, col := range strings.Split(ignore, ",") {
		if col = strings.TrimSpace(col); col != "" {
			cfg.IgnoreColumns = append(cfg.IgnoreColumns, col)
		}
	}

	// Exactly one ballot source
	if cfg.Path == "" && cfg.Table == "" {
		return Config{}, errors.New("ballot file or -table required")
	}
	if cfg.Path != "" && cfg.Table != "" {
		return Config{}, errors.New("give either a ballot file or -table, not both")
	}

	if (cfg.Table != "" || cfg.Record) && cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	return cfg, nil
}

// ClampThreshold forces t into [0, 1]. The second result is -1 if t was
// raised to 0, 1 if it was lowered to 1, and 0 if it was already in range.
func ClampThreshold(t float64) (float64, int) {
	switch {
	case t < 0:
		return 0, -1
	case t > 1:
		return 1, 1
	default:
		return t, 0
	}
}

// LoadEnvFile sets environment variables from a .env file. Variables that
// are already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
