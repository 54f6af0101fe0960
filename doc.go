// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Tally vote counter.

Quickly Tally counts a ranked-choice (preferential) election. Each ballot
ranks some or all candidates; the count eliminates trailing candidates, or
pushes tied leaders' ballots down a preference, until one candidate holds
the winning threshold of live votes or no votes remain (a tie).

# Running a Count

From a CSV file whose header row names the candidates:

	quickly-tally -t 0.5 -report ballots.csv

From a database table with one rank column per candidate:

	DATABASE_URL=postgres://... quickly-tally -db-type postgres -table ballots -ignore id

Add -record to save the result and -json to print it as JSON.

# Exit Codes

  - 0: the count finished (winner or tie)
  - 64: bad command line
  - 65: the ballot source could not be read
  - 74: the database could not be reached or written

# Architecture

  - models: candidates, raw records, round status, stored runs
  - ballot: ballot validation
  - ballotbox: preference trie and round resolution
  - ingest: loading a ballot table into a ballot box
  - source: CSV and SQL ballot tables
  - count: the counting loop
  - reporting: console and JSON output
  - cliparse: configuration parsing
  - db: database connection and result store

See package documentation for each component.
*/
package main
