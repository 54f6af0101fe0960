// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package source

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"regexp"

	"github.com/danielhkuo/quickly-tally/models"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLTable reads ballots from a database table. Every column not listed
// as ignored is a candidate; each row is one ballot holding a rank or NULL
// per candidate.
type SQLTable struct {
	rows    *sql.Rows
	columns []int
	names   []string
	width   int
	row     int
}

// OpenSQL starts reading table. Columns named in ignore (an ID, a
// timestamp) are not treated as candidates.
func OpenSQL(ctx context.Context, db *sql.DB, table string, ignore ...string) (*SQLTable, error) {
	if !identifier.MatchString(table) {
		return nil, fmt.Errorf("%w: bad table name %q", ErrInvalidTable, table)
	}

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, fmt.Errorf("failed to query ballot table: %w", err)
	}

	cols, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to read ballot columns: %w", err)
	}

	skip := make(map[string]struct{}, len(ignore))
	for _, name := range ignore {
		skip[name] = struct{}{}
	}

	t := &SQLTable{rows: rows, width: len(cols)}
	for i, name := range cols {
		if _, ok := skip[name]; ok {
			continue
		}
		t.columns = append(t.columns, i)
		t.names = append(t.names, name)
	}

	if len(t.names) == 0 {
		rows.Close()
		return nil, fmt.Errorf("%w: table %q has no candidate columns", ErrInvalidTable, table)
	}

	return t, nil
}

// Candidates returns the candidate column names in table order
func (t *SQLTable) Candidates() []string {
	return t.names
}

// Next returns the next ballot record, or io.EOF after the last row.
// Record.Line is the 1-based row number.
func (t *SQLTable) Next() (models.Record, error) {
	if !t.rows.Next() {
		if err := t.rows.Err(); err != nil {
			return models.Record{}, fmt.Errorf("failed to read ballot row: %w", err)
		}
		return models.Record{}, io.EOF
	}

	values := make([]sql.NullString, t.width)
	dest := make([]interface{}, t.width)
	for i := range values {
		dest[i] = &values[i]
	}
	if err := t.rows.Scan(dest...); err != nil {
		return models.Record{}, fmt.Errorf("failed to scan ballot row: %w", err)
	}
	t.row++

	raw := make(models.RawBallot, len(t.columns))
	for i, col := range t.columns {
		if !values[col].Valid {
			raw[i] = models.NoPreference
			continue
		}
		raw[i] = parseRank(values[col].String)
	}

	return models.Record{Line: t.row, Raw: raw}, nil
}

// Close releases the result set
func (t *SQLTable) Close() error {
	return t.rows.Close()
}
