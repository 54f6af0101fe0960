// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and stores finished counts.

# Connections

Open accepts the database type (sqlite or postgres) and a connection URL,
and pings before returning:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

The same connection serves ballot tables read by package source.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - count_run: one row per finished count (source, threshold, winner or
    tie, rounds, accepted and rejected ballots, inputs hash)

Only final results are stored; round-by-round state never outlives the
process.

# Runs

	err := db.SaveRun(ctx, conn, &run) // assigns run.ID if empty
	run, err := db.GetRun(ctx, conn, id)
	runs, err := db.ListRuns(ctx, conn, "ballots.csv")
*/
package db
