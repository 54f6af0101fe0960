// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballot validates raw ballot records and represents ballots.

# Validation

FromRaw turns a per-candidate rank record into a Ballot:

	b, err := ballot.FromRaw(models.RawBallot{2, models.NoPreference, 1})
	// b.Preferences() == []int{2, 0}

A record is rejected when:

  - the same rank appears twice (ErrDuplicatePreference)
  - no cell expresses a rank (ErrNoPreference)

# Elimination

Without strips eliminated candidates and returns a new Ballot. A ballot
whose preferences are all eliminated is exhausted and reported as false.
*/
package ballot
