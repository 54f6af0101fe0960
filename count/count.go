// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package count

import (
	"fmt"
	"log/slog"

	"github.com/danielhkuo/quickly-tally/ballotbox"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/reporting"
)

// Result is the outcome of a count and the number of rounds it took
type Result struct {
	Outcome models.Outcome
	Rounds  int
}

// Run counts box to completion. threshold is the share of live votes a
// single leader needs to win and must already be clamped to [0, 1].
//
// Every round is reported to rep: the current tally, then the candidates
// eliminated or promoted. Run mutates box.
func Run(box *ballotbox.BallotBox, threshold float64, rep reporting.Reporter) Result {
	candidates := box.Candidates()

	// Each runoff removes a candidate and each promotion shortens at least
	// one ballot, so the count cannot take longer than this.
	limit := uint64(candidates.Len()) + box.PreferenceMass() + 1

	for round := 1; ; round++ {
		status := box.Status(threshold)

		rep.CurrentCount(box.Totals(), candidates)
		rep.Status(status, candidates)

		slog.Debug("round resolved",
			"round", round,
			"status", status.Kind.String(),
			"live_votes", box.TotalVotes(),
			"candidates", candidates.Names(status.Candidates),
		)

		switch status.Kind {
		case models.StatusWinner:
			name, _ := candidates.Name(status.Winner)
			return Result{
				Outcome: models.Outcome{Winner: status.Winner, Name: name},
				Rounds:  round,
			}
		case models.StatusTie:
			return Result{
				Outcome: models.Outcome{Winner: -1, Tie: true},
				Rounds:  round,
			}
		case models.StatusPromotion:
			box.Promote(status.Candidates)
		case models.StatusRunoff:
			box.Runoff(status.Candidates)
		}

		if uint64(round) > limit {
			panic(fmt.Sprintf("count: no result after %d rounds", round))
		}
	}
}
