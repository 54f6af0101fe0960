// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Path: CSV ballot file (positional argument)
  - Threshold: share of live votes needed to win (default: 0.5)
  - Report: print every round
  - JSON: print the result as JSON
  - Record: save the result to the database
  - DatabaseURL / DatabaseType: connection for -table and -record
  - Table / IgnoreColumns: read ballots from a database table

# CLI Flags

	-t, -threshold  Winning threshold
	-report         Print the count round by round
	-json           Print the result as JSON
	-d              Database URL
	-db-type        sqlite or postgres
	-table          Ballot table name
	-ignore         Columns of the ballot table that are not candidates
	-record         Save the result

Flags must come before the ballot file.

# Environment Variables

Flags fall back to environment variables:

	TALLY_THRESHOLD       → -t
	TALLY_REPORT          → -report
	DATABASE_URL          → -d
	DATABASE_TYPE         → -db-type
	BALLOT_TABLE          → -table
	BALLOT_IGNORE_COLUMNS → -ignore

CLI flags take precedence over environment variables. LoadEnvFile reads a
.env file into the environment first; variables already set are kept.

# Validation

ParseFlags returns an error if:

  - neither a ballot file nor -table is given, or both are
  - -table or -record is used without a database URL
  - the threshold is not a number

The threshold is not range-checked here. ClampThreshold forces it into
[0, 1] and reports which way it moved so the caller can warn.
*/
package cliparse
