// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package count drives a ranked-choice count to its result.

	result := count.Run(box, 0.5, reporter)
	if result.Outcome.Tie {
		// no winner
	}

Run repeatedly classifies the round with BallotBox.Status and, until a
winner or a tie is reached, eliminates the trailing candidates (Runoff) or
pushes every tied leader's ballots down one preference (Promotion).

The threshold is not validated here; callers clamp it first with
cliparse.ClampThreshold.
*/
package count
