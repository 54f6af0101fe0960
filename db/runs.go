// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-tally/models"
)

var ErrRunNotFound = errors.New("count run not found")

// SaveRun stores a finished count. An empty ID is replaced with a new UUID
// and a zero ComputedAt with the current time; both are written back to run.
func SaveRun(ctx context.Context, db *sql.DB, run *models.Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.ComputedAt.IsZero() {
		run.ComputedAt = time.Now()
	}
	if run.Method == "" {
		run.Method = models.MethodIRV
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO count_run (id, source, method, threshold, winner, tie, rounds,
		                       accepted, rejected, inputs_hash, computed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, run.ID, run.Source, run.Method, run.Threshold, run.Winner, run.Tie, run.Rounds,
		run.Accepted, run.Rejected, run.InputsHash, run.ComputedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save count run: %w", err)
	}

	return nil
}

// GetRun loads a stored count by ID
func GetRun(ctx context.Context, db *sql.DB, id string) (models.Run, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, source, method, threshold, winner, tie, rounds,
		       accepted, rejected, inputs_hash, computed_at
		FROM count_run
		WHERE id = $1
	`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return models.Run{}, ErrRunNotFound
	}
	if err != nil {
		return models.Run{}, fmt.Errorf("failed to load count run: %w", err)
	}

	return run, nil
}

// ListRuns returns every stored count of source, oldest first
func ListRuns(ctx context.Context, db *sql.DB, source string) ([]models.Run, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, source, method, threshold, winner, tie, rounds,
		       accepted, rejected, inputs_hash, computed_at
		FROM count_run
		WHERE source = $1
		ORDER BY computed_at, id
	`, source)
	if err != nil {
		return nil, fmt.Errorf("failed to query count runs: %w", err)
	}
	defer rows.Close()

	runs := []models.Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan count run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(s scanner) (models.Run, error) {
	var run models.Run
	var winner sql.NullString
	var computedAt int64

	err := s.Scan(
		&run.ID, &run.Source, &run.Method, &run.Threshold, &winner, &run.Tie,
		&run.Rounds, &run.Accepted, &run.Rejected, &run.InputsHash, &computedAt,
	)
	if err != nil {
		return models.Run{}, err
	}

	if winner.Valid {
		run.Winner = &winner.String
	}
	run.ComputedAt = time.Unix(computedAt, 0)

	return run, nil
}
