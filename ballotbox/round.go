// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballotbox

import (
	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/models"
)

// Status classifies the current round. threshold must already be clamped
// to [0, 1]; Status does not validate it. Status does not modify the box.
func (bb *BallotBox) Status(threshold float64) models.CountStatus {
	totals := bb.Totals()

	var highest, lowest uint64
	for _, total := range totals {
		if total > highest {
			highest = total
		}
		if total != 0 && (lowest == 0 || total < lowest) {
			lowest = total
		}
	}

	// All votes have been exhausted
	if highest == 0 {
		return models.Tie()
	}

	var winners, losers []int
	for c, total := range totals {
		if total == highest {
			winners = append(winners, c)
		}
		if total == lowest {
			losers = append(losers, c)
		}
	}

	if len(winners) == 1 && float64(highest) >= threshold*float64(bb.totalVotes) {
		return models.Winner(winners[0])
	}

	// Everyone still standing is level, so nobody can be eliminated
	if len(winners) == bb.Remaining() {
		return models.Promotion(winners)
	}

	return models.Runoff(losers)
}

// Promote moves the votes of the given candidates to their next
// preferences without eliminating them.
func (bb *BallotBox) Promote(candidates []int) {
	bb.redistribute(candidates, false)
}

// Runoff eliminates the given candidates and moves their votes to the
// next surviving preferences.
func (bb *BallotBox) Runoff(candidates []int) {
	bb.redistribute(candidates, true)
}

type pendingVote struct {
	prefs    []int
	quantity uint64
}

func (bb *BallotBox) redistribute(candidates []int, eliminate bool) {
	var pending []pendingVote

	for _, c := range candidates {
		detached := bb.nodes[c]
		bb.nodes[c] = nil

		if detached != nil {
			bb.totalVotes -= detached.totalBeneath
			collect(detached, nil, &pending)
		}

		if eliminate {
			bb.eliminated[c] = true
		}
	}

	for _, v := range pending {
		b, ok := ballot.New(v.prefs).Without(bb.eliminated)
		if !ok {
			// exhausted
			continue
		}
		bb.insert(b, v.quantity)
	}
}

// collect walks a detached subtree and emits one pending vote per node with
// endings. path excludes the detached top-level candidate, so ballots that
// ended at the top emit nothing.
func collect(n *node, path []int, pending *[]pendingVote) {
	for c, child := range n.children {
		if child == nil {
			continue
		}
		next := make([]int, len(path)+1)
		copy(next, path)
		next[len(path)] = c
		collect(child, next, pending)
	}

	if n.endings > 0 && len(path) > 0 {
		*pending = append(*pending, pendingVote{prefs: path, quantity: n.endings})
	}
}
