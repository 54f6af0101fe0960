// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/danielhkuo/quickly-tally/models"
)

// CSV reads ballots from comma-separated text. The header row names the
// candidates; every following row is one ballot.
type CSV struct {
	r      *csv.Reader
	closer io.Closer
	header []string
}

// OpenCSV opens the ballot file at path
func OpenCSV(path string) (*CSV, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ballot file: %w", err)
	}

	c, err := NewCSV(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	c.closer = f
	return c, nil
}

// NewCSV reads the header from r and returns a table positioned at the
// first ballot
func NewCSV(r io.Reader) (*CSV, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", ErrInvalidTable)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Rows must match the header width
	cr.FieldsPerRecord = len(header)

	names := make([]string, len(header))
	copy(names, header)

	return &CSV{r: cr, header: names}, nil
}

// Candidates returns the candidate names from the header
func (c *CSV) Candidates() []string {
	return c.header
}

// Next returns the next ballot record, or io.EOF after the last one
func (c *CSV) Next() (models.Record, error) {
	cells, err := c.r.Read()
	if errors.Is(err, io.EOF) {
		return models.Record{}, io.EOF
	}
	if err != nil {
		return models.Record{}, fmt.Errorf("failed to read ballot row: %w", err)
	}

	line, _ := c.r.FieldPos(0)
	return models.Record{Line: line, Raw: parseRow(cells)}, nil
}

// Close releases the underlying file, if any
func (c *CSV) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}
