// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package source reads ballot tables.

A ballot table has one column per candidate and one row per ballot. Each
cell holds the rank the voter gave that candidate; empty, negative and
non-numeric cells mean no preference was expressed for that candidate.

# CSV

The header row names the candidates. Every row must have as many fields as
the header; a ragged row is a structural error.

	table, err := source.OpenCSV("ballots.csv")
	defer table.Close()

Record.Line is the line number in the file, so the first ballot is line 2.

# SQL

Every column of the table is a candidate unless listed as ignored. NULL
cells mean no preference.

	table, err := source.OpenSQL(ctx, conn, "ballots", "id")

Record.Line is the 1-based row number. Table names are restricted to plain
identifiers (ErrInvalidTable otherwise).
*/
package source
