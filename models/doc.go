// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types shared by every stage of a count.

# Candidates

Candidates is the ordered registry built from the header of the ballot
table. Everything else refers to a candidate by its dense, zero-based
index:

	c := models.NewCandidates([]string{"Alice", "Bob"})
	name, ok := c.Name(1) // "Bob", true

# Raw Ballots

RawBallot holds one rank per candidate column, with NoPreference where the
cell was empty or malformed. Record pairs it with its 1-based position in
the source so rejected ballots can be reported.

# Count Status

CountStatus classifies a round:

  - StatusWinner: Winner holds the candidate index
  - StatusTie: nothing else
  - StatusPromotion: Candidates holds the tied leaders
  - StatusRunoff: Candidates holds the candidates to eliminate

# Results

Outcome is what the engine returns to its caller (a winner name or a tie).
Run is the final record of a count as stored by package db.
*/
package models
