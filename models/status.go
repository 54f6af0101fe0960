// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// StatusKind tells how the count should proceed after a round
type StatusKind int

const (
	// StatusWinner: a single candidate reached the threshold.
	StatusWinner StatusKind = iota
	// StatusTie: no live votes remain at the top level.
	StatusTie
	// StatusPromotion: every remaining candidate is tied at the top.
	StatusPromotion
	// StatusRunoff: the trailing candidates are eliminated.
	StatusRunoff
)

func (k StatusKind) String() string {
	switch k {
	case StatusWinner:
		return "winner"
	case StatusTie:
		return "tie"
	case StatusPromotion:
		return "promotion"
	case StatusRunoff:
		return "runoff"
	default:
		return "unknown"
	}
}

// CountStatus is the classification of a round. Winner is only meaningful
// for StatusWinner, Candidates only for StatusPromotion and StatusRunoff.
type CountStatus struct {
	Kind       StatusKind
	Winner     int
	Candidates []int
}

// Winner builds a StatusWinner for the given candidate
func Winner(candidate int) CountStatus {
	return CountStatus{Kind: StatusWinner, Winner: candidate}
}

// Tie builds a StatusTie
func Tie() CountStatus {
	return CountStatus{Kind: StatusTie}
}

// Promotion builds a StatusPromotion over the tied leaders
func Promotion(candidates []int) CountStatus {
	return CountStatus{Kind: StatusPromotion, Candidates: candidates}
}

// Runoff builds a StatusRunoff over the candidates to eliminate
func Runoff(candidates []int) CountStatus {
	return CountStatus{Kind: StatusRunoff, Candidates: candidates}
}

// Terminal reports whether the count is over
func (s CountStatus) Terminal() bool {
	return s.Kind == StatusWinner || s.Kind == StatusTie
}
