// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reporting prints the progress and result of a count.

# Reporter

Ingestion and counting publish events through the Reporter interface:

  - InvalidBallot: a rejected record with its source line
  - CurrentCount: the first-preference tally after each status check
  - Status: the candidates eliminated or promoted this round

Nop discards everything; Console prints a coloured report.

# Console

	rep := reporting.NewConsole(os.Stdout, cfg.Report)
	rep.Winner(result.Outcome)

Round and ballot events are only printed when verbose. Winner,
ThresholdSquash and SourceError always print. Colour is enabled when the
output is a terminal and NO_COLOR is unset.

# JSON

WriteJSON prints the final run record as indented JSON.
*/
package reporting
