// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package source

import (
	"errors"
	"strconv"
	"strings"

	"github.com/danielhkuo/quickly-tally/models"
)

var (
	ErrInvalidTable = errors.New("invalid ballot table")
)

// parseRank reads one cell. Empty, negative or non-numeric cells express
// no preference.
func parseRank(cell string) int {
	rank, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil || rank < 0 {
		return models.NoPreference
	}
	return rank
}

func parseRow(cells []string) models.RawBallot {
	raw := make(models.RawBallot, len(cells))
	for i, cell := range cells {
		raw[i] = parseRank(cell)
	}
	return raw
}
