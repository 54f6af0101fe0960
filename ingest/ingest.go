// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ingest

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/zeebo/blake3"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/ballotbox"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/reporting"
)

var ErrNoCandidates = errors.New("ballot table names no candidates")

// Table is a source of ballot records. Next returns io.EOF after the last
// record; any other error means the table itself is broken.
type Table interface {
	Candidates() []string
	Next() (models.Record, error)
}

// Summary describes what was read from a table
type Summary struct {
	Accepted int
	Rejected int
	// Digest is a blake3 hash of the accepted ballots in source order
	Digest   string
}

// Load reads every record of t into a new ballot box. Invalid records are
// passed to rep and skipped; a structural error aborts the load.
func Load(t Table, rep reporting.Reporter) (*ballotbox.BallotBox, Summary, error) {
	names := t.Candidates()
	if len(names) == 0 {
		return nil, Summary{}, ErrNoCandidates
	}

	candidates := models.NewCandidates(names)
	box := ballotbox.New(candidates)
	hasher := blake3.New()
	var summary Summary

	for {
		rec, err := t.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, Summary{}, err
		}
		if len(rec.Raw) != candidates.Len() {
			return nil, Summary{}, fmt.Errorf("line %d: %d fields for %d candidates", rec.Line, len(rec.Raw), candidates.Len())
		}

		b, err := ballot.FromRaw(rec.Raw)
		if err != nil {
			summary.Rejected++
			slog.Debug("ballot rejected", "line", rec.Line, "error", err)
			rep.InvalidBallot(rec, err)
			continue
		}

		summary.Accepted++
		writeBallot(hasher, b)
		box.Push(b, 1)
	}

	summary.Digest = hex.EncodeToString(hasher.Sum(nil))
	slog.Info("ballots loaded",
		"candidates", candidates.Len(),
		"accepted", summary.Accepted,
		"rejected", summary.Rejected,
	)

	return box, summary, nil
}

// writeBallot appends the ballot's length and preferences as uvarints
func writeBallot(w io.Writer, b ballot.Ballot) {
	buf := make([]byte, 0, binary.MaxVarintLen64*(b.Len()+1))
	buf = binary.AppendUvarint(buf, uint64(b.Len()))
	for i := 0; i < b.Len(); i++ {
		buf = binary.AppendUvarint(buf, uint64(b.At(i)))
	}
	w.Write(buf)
}
