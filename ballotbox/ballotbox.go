// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballotbox

import (
	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/models"
)

// node is one preference prefix. Each node owns its children; no node is
// reachable from two places.
type node struct {
	totalBeneath uint64
	endings      uint64
	children     []*node
}

func newNode(candidates int) *node {
	return &node{children: make([]*node, candidates)}
}

// BallotBox stores every ballot as a path in a trie keyed by preference
// order. nodes[c] is the subtree of ballots whose first preference is c.
type BallotBox struct {
	candidates models.Candidates
	eliminated []bool
	totalVotes uint64
	mass       uint64
	nodes      []*node
}

// New creates an empty ballot box. Every candidate starts eliminated and
// becomes eligible once a ballot names them as first preference.
func New(candidates models.Candidates) *BallotBox {
	n := candidates.Len()
	eliminated := make([]bool, n)
	for i := range eliminated {
		eliminated[i] = true
	}

	return &BallotBox{
		candidates: candidates,
		eliminated: eliminated,
		nodes:      make([]*node, n),
	}
}

// Candidates returns the registry the box was built for
func (bb *BallotBox) Candidates() models.Candidates {
	return bb.candidates
}

// TotalVotes returns the number of live first-preference votes
func (bb *BallotBox) TotalVotes() uint64 {
	return bb.totalVotes
}

// PreferenceMass returns the summed length of every ballot added with Push,
// weighted by quantity. Redistribution does not change it.
func (bb *BallotBox) PreferenceMass() uint64 {
	return bb.mass
}

// Push adds quantity copies of b. Pushing a zero quantity is a no-op.
func (bb *BallotBox) Push(b ballot.Ballot, quantity uint64) {
	if quantity == 0 {
		return
	}
	bb.mass += uint64(b.Len()) * quantity
	bb.insert(b, quantity)
}

func (bb *BallotBox) insert(b ballot.Ballot, quantity uint64) {
	n := bb.candidates.Len()

	bb.eliminated[b.First()] = false
	bb.totalVotes += quantity

	level := bb.nodes
	var current *node
	for i := 0; i < b.Len(); i++ {
		c := b.At(i)
		if level[c] == nil {
			level[c] = newNode(n)
		}
		current = level[c]
		current.totalBeneath += quantity
		level = current.children
	}

	current.endings += quantity
}

// Totals returns the first-preference vote count of every candidate
func (bb *BallotBox) Totals() []uint64 {
	totals := make([]uint64, len(bb.nodes))
	for c, n := range bb.nodes {
		if n != nil {
			totals[c] = n.totalBeneath
		}
	}
	return totals
}

// IsEliminated reports whether candidate c is currently unable to win
func (bb *BallotBox) IsEliminated(c int) bool {
	return bb.eliminated[c]
}

// Eliminated returns every candidate that is currently unable to win
func (bb *BallotBox) Eliminated() []int {
	var eliminated []int
	for c, e := range bb.eliminated {
		if e {
			eliminated = append(eliminated, c)
		}
	}
	return eliminated
}

// Remaining returns the number of candidates still in the race
func (bb *BallotBox) Remaining() int {
	remaining := 0
	for _, e := range bb.eliminated {
		if !e {
			remaining++
		}
	}
	return remaining
}
