// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ingest fills a ballot box from a ballot table.

	table, err := source.OpenCSV("ballots.csv")
	box, summary, err := ingest.Load(table, reporter)

Each record is validated with ballot.FromRaw. Rejected records are counted,
passed to the reporter with their source line, and otherwise ignored, so
one bad ballot never stops the count. A structural error from the table
(unreadable row, wrong field count) aborts the load before counting starts.

Summary.Digest identifies the accepted ballots, so two runs over the same
input can be matched up in the result store.
*/
package ingest
