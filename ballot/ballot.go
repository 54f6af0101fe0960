// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"errors"
	"sort"

	"github.com/danielhkuo/quickly-tally/models"
)

var (
	ErrDuplicatePreference = errors.New("preference expressed more than once")
	ErrNoPreference        = errors.New("no preference expressed")
)

// Ballot is an ordered list of distinct candidate indices, most preferred
// first. A Ballot is never empty and never changes once built.
type Ballot struct {
	prefs []int
}

// New creates a ballot from candidate indices in order of preference.
// The caller guarantees prefs is non-empty and free of duplicates.
func New(prefs []int) Ballot {
	p := make([]int, len(prefs))
	copy(p, prefs)
	return Ballot{prefs: p}
}

// FromRaw converts a per-candidate rank record into a Ballot.
// Ranks only establish order; their numeric values are discarded.
func FromRaw(raw models.RawBallot) (Ballot, error) {
	type pair struct {
		rank      int
		candidate int
	}

	pairs := make([]pair, 0, len(raw))
	seen := make(map[int]struct{}, len(raw))

	for candidate, rank := range raw {
		if rank == models.NoPreference {
			continue
		}
		if _, dup := seen[rank]; dup {
			return Ballot{}, ErrDuplicatePreference
		}
		seen[rank] = struct{}{}
		pairs = append(pairs, pair{rank: rank, candidate: candidate})
	}

	if len(pairs) == 0 {
		return Ballot{}, ErrNoPreference
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].rank < pairs[j].rank
	})

	prefs := make([]int, len(pairs))
	for i, p := range pairs {
		prefs[i] = p.candidate
	}

	return Ballot{prefs: prefs}, nil
}

// First returns the most preferred candidate
func (b Ballot) First() int {
	return b.prefs[0]
}

// Len returns the number of preferences expressed
func (b Ballot) Len() int {
	return len(b.prefs)
}

// At returns the candidate at preference position i
func (b Ballot) At(i int) int {
	return b.prefs[i]
}

// Preferences returns a copy of the candidate indices in preference order
func (b Ballot) Preferences() []int {
	p := make([]int, len(b.prefs))
	copy(p, b.prefs)
	return p
}

// Without returns a new ballot with every candidate marked in eliminated
// removed, keeping the relative order of the rest. The second result is
// false when nothing is left.
func (b Ballot) Without(eliminated []bool) (Ballot, bool) {
	prefs := make([]int, 0, len(b.prefs))
	for _, c := range b.prefs {
		if c < len(eliminated) && eliminated[c] {
			continue
		}
		prefs = append(prefs, c)
	}

	if len(prefs) == 0 {
		return Ballot{}, false
	}
	return Ballot{prefs: prefs}, true
}
