// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/danielhkuo/quickly-tally/ballotbox"
	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/count"
	"github.com/danielhkuo/quickly-tally/db"
	"github.com/danielhkuo/quickly-tally/ingest"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/reporting"
	"github.com/danielhkuo/quickly-tally/source"
)

// Exit codes follow sysexits.h
const (
	exitOK      = 0
	exitUsage   = 64
	exitDataErr = 65
	exitIOErr   = 74
)

func main() {
	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(exitUsage)
	}

	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return exitUsage
	}

	rep := reporting.NewConsole(stdout, cfg.Report && !cfg.JSON)

	threshold, direction := cliparse.ClampThreshold(cfg.Threshold)
	if direction != 0 {
		slog.Warn("threshold clamped", "given", cfg.Threshold, "used", threshold)
		if !cfg.JSON {
			rep.ThresholdSquash(cfg.Threshold, direction)
		}
	}

	var conn *sql.DB
	if cfg.Table != "" || cfg.Record {
		conn, err = db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			return exitIOErr
		}
		defer conn.Close()
	}

	box, summary, err := load(ctx, cfg, conn, rep)
	if err != nil {
		slog.Error("failed to read ballots", "source", cfg.Source(), "error", err)
		if !cfg.JSON {
			rep.SourceError(err)
		}
		return exitDataErr
	}

	result := count.Run(box, threshold, rep)
	slog.Info("count finished", "source", cfg.Source(), "rounds", result.Rounds, "tie", result.Outcome.Tie)

	record := models.Run{
		Source:     cfg.Source(),
		Method:     models.MethodIRV,
		Threshold:  threshold,
		Tie:        result.Outcome.Tie,
		Rounds:     result.Rounds,
		Accepted:   summary.Accepted,
		Rejected:   summary.Rejected,
		InputsHash: summary.Digest,
		ComputedAt: time.Now(),
	}
	if !result.Outcome.Tie {
		name := result.Outcome.Name
		record.Winner = &name
	}

	if cfg.Record {
		if err := db.CreateSchema(conn); err != nil {
			slog.Error("schema creation failed", "error", err)
			return exitIOErr
		}
		if err := db.SaveRun(ctx, conn, &record); err != nil {
			slog.Error("failed to record result", "error", err)
			return exitIOErr
		}
		slog.Info("count recorded", "id", record.ID)
	}

	if cfg.JSON {
		if err := reporting.WriteJSON(stdout, record); err != nil {
			return exitIOErr
		}
		return exitOK
	}

	rep.Winner(result.Outcome)
	return exitOK
}

// load opens the configured ballot source and fills a ballot box from it
func load(ctx context.Context, cfg cliparse.Config, conn *sql.DB, rep reporting.Reporter) (*ballotbox.BallotBox, ingest.Summary, error) {
	if cfg.Table != "" {
		table, err := source.OpenSQL(ctx, conn, cfg.Table, cfg.IgnoreColumns...)
		if err != nil {
			return nil, ingest.Summary{}, err
		}
		defer table.Close()
		return ingest.Load(table, rep)
	}

	table, err := source.OpenCSV(cfg.Path)
	if err != nil {
		return nil, ingest.Summary{}, err
	}
	defer table.Close()
	return ingest.Load(table, rep)
}
