// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballotbox stores ballots in a preference trie and resolves rounds.

# Storage

Every ballot is a path from a top-level slot (its first preference) down
through one node per further preference. Each node keeps:

  - totalBeneath: votes passing through this prefix
  - endings: votes whose preferences stop exactly here

so that totalBeneath == endings + the sum of the children's totalBeneath.
Identical ballots share one path; Push adds a quantity in O(len(ballot)).

# Rounds

Status reads the top-level totals and classifies the round, in order:

 1. Tie: no live votes remain
 2. Winner: a single leader holding at least threshold of the live votes
 3. Promotion: every remaining candidate is tied at the top
 4. Runoff: the candidates with the fewest non-zero votes

Promote and Runoff detach the selected top-level subtrees, rebuild the
ballot fragments below them, strip every eliminated candidate and push the
rest back. Runoff also eliminates the selected candidates; Promote does
not. Fragments with nothing left are exhausted and leave the count.

# Concurrency

A BallotBox is not safe for concurrent use. Redistribution needs exclusive
access to the whole box.
*/
package ballotbox
