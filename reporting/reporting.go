// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reporting

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/quickly-tally/models"
)

// Reporter receives progress events from ingestion and counting
type Reporter interface {
	InvalidBallot(rec models.Record, err error)
	CurrentCount(totals []uint64, candidates models.Candidates)
	Status(status models.CountStatus, candidates models.Candidates)
}

// Nop discards every event
type Nop struct{}

func (Nop) InvalidBallot(models.Record, error)          {}
func (Nop) CurrentCount([]uint64, models.Candidates)    {}
func (Nop) Status(models.CountStatus, models.Candidates) {}

const (
	ansiReset         = "\x1b[0m"
	ansiBold          = "\x1b[1m"
	ansiRed           = "\x1b[31m"
	ansiYellow        = "\x1b[33m"
	ansiBrightGreen   = "\x1b[92m"
	ansiBrightYellow  = "\x1b[93m"
	ansiBrightBlue    = "\x1b[94m"
	ansiBrightMagenta = "\x1b[95m"
	ansiBrightCyan    = "\x1b[96m"
)

// Console prints a human-readable report. Round and ballot events are
// only printed when verbose; results and warnings always are.
type Console struct {
	out     io.Writer
	verbose bool
	color   bool
}

// NewConsole creates a console reporter. Colour is used only when out is a
// terminal and NO_COLOR is unset.
func NewConsole(out io.Writer, verbose bool) *Console {
	color := false
	if f, ok := out.(*os.File); ok && os.Getenv("NO_COLOR") == "" {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Console{out: out, verbose: verbose, color: color}
}

func (c *Console) paint(text string, codes ...string) string {
	if !c.color {
		return text
	}
	return strings.Join(codes, "") + text + ansiReset
}

// InvalidBallot prints a rejected record as it appeared in the source
func (c *Console) InvalidBallot(rec models.Record, err error) {
	if !c.verbose {
		return
	}
	fmt.Fprintf(c.out, "%s %s (line: %d)\n", c.paint("Invalid Ballot:", ansiBrightGreen, ansiBold), rec.Raw, rec.Line)
}

// CurrentCount prints the first-preference tally of every candidate
func (c *Console) CurrentCount(totals []uint64, candidates models.Candidates) {
	if !c.verbose {
		return
	}

	var sum uint64
	for _, v := range totals {
		sum += v
	}

	fmt.Fprintln(c.out, c.paint("Current Count:", ansiBrightYellow, ansiBold))
	for i, votes := range totals {
		name, _ := candidates.Name(i)
		share := 0.0
		if sum > 0 {
			share = 100 * float64(votes) / float64(sum)
		}
		fmt.Fprintf(c.out, "    %s : %s (%s%%)\n", name, humanize.Comma(int64(votes)), humanize.FtoaWithDigits(share, 1))
	}
}

// Status prints who is eliminated or promoted this round
func (c *Console) Status(status models.CountStatus, candidates models.Candidates) {
	if !c.verbose {
		return
	}

	names := strings.Join(candidates.Names(status.Candidates), ", ")
	switch status.Kind {
	case models.StatusRunoff:
		fmt.Fprintf(c.out, "%s %s\n", c.paint("Eliminating:", ansiBrightMagenta), names)
	case models.StatusPromotion:
		fmt.Fprintf(c.out, "Resolving tie between: %s\n", c.paint(names, ansiBrightCyan))
	}
}

// Winner prints the final result
func (c *Console) Winner(outcome models.Outcome) {
	if outcome.Tie {
		fmt.Fprintln(c.out, c.paint("The election was a tie", ansiBrightBlue))
		return
	}
	fmt.Fprintf(c.out, "%s %s\n", c.paint("Winner:", ansiBrightBlue), outcome.Name)
}

// ThresholdSquash warns that the threshold was clamped into [0, 1].
// direction is negative when it was raised to 0, positive when lowered to 1.
func (c *Console) ThresholdSquash(prev float64, direction int) {
	switch {
	case direction < 0:
		fmt.Fprintf(c.out, "%s Threshold %v was below the allowed range, and set to 0\n", c.paint("Warning:", ansiYellow, ansiBold), prev)
	case direction > 0:
		fmt.Fprintf(c.out, "%s Threshold %v was above the allowed range, and set to 1\n", c.paint("Warning:", ansiYellow, ansiBold), prev)
	}
}

// SourceError prints a fatal error reading the ballot table
func (c *Console) SourceError(err error) {
	fmt.Fprintf(c.out, "%s %v\n", c.paint("Source Error:", ansiRed, ansiBold), err)
}

// WriteJSON writes v as indented JSON
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		slog.Error("failed to encode JSON result", "error", err)
		return err
	}
	return nil
}
