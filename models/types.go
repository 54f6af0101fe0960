// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strconv"
	"strings"
	"time"
)

// Counting method constants
const (
	MethodIRV = "irv"
)

// NoPreference marks a cell of a raw ballot where no rank was expressed
const NoPreference = -1

// Candidates is the ordered candidate registry. A candidate is referred to
// everywhere else by its index into this list.
type Candidates struct {
	names []string
}

// NewCandidates creates a registry from names in column order
func NewCandidates(names []string) Candidates {
	c := make([]string, len(names))
	copy(c, names)
	return Candidates{names: c}
}

// Len returns the number of candidates
func (c Candidates) Len() int {
	return len(c.names)
}

// Name returns the name of the candidate at index i
func (c Candidates) Name(i int) (string, bool) {
	if i < 0 || i >= len(c.names) {
		return "", false
	}
	return c.names[i], true
}

// Names resolves a set of candidate indices to their names
func (c Candidates) Names(indices []int) []string {
	names := make([]string, 0, len(indices))
	for _, i := range indices {
		if name, ok := c.Name(i); ok {
			names = append(names, name)
		}
	}
	return names
}

// RawBallot holds one rank per candidate column, or NoPreference
type RawBallot []int

// String renders the ballot the way it appeared in the source,
// with "_" for cells that expressed nothing.
func (r RawBallot) String() string {
	segments := make([]string, len(r))
	for i, rank := range r {
		if rank == NoPreference {
			segments[i] = "_"
		} else {
			segments[i] = strconv.Itoa(rank)
		}
	}
	return strings.Join(segments, ",")
}

// Record is a raw ballot together with its 1-based position in the source
type Record struct {
	Line int
	Raw  RawBallot
}

// Outcome is the externally observable result of a count
type Outcome struct {
	Winner int    `json:"-"`
	Name   string `json:"winner,omitempty"`
	Tie    bool   `json:"tie"`
}

// Run is a finished count as stored in the database
type Run struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Method     string    `json:"method"`
	Threshold  float64   `json:"threshold"`
	Winner     *string   `json:"winner,omitempty"`
	Tie        bool      `json:"tie"`
	Rounds     int       `json:"rounds"`
	Accepted   int       `json:"accepted"`
	Rejected   int       `json:"rejected"`
	InputsHash string    `json:"inputs_hash"` // blake3 digest of the accepted ballots
	ComputedAt time.Time `json:"computed_at"`
}
