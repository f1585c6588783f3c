// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Command tally-votes closes every unprocessed cohort.

For each cohort it checks that every vote came from a voter assigned to the
cohort, sums the points per showcase and picks the top five as winners. The
rest are marked lost and will not be placed in another cohort. Winners go
back into the pool.

# Running

	DATABASE_URL=file:cohorts.db tally-votes

Or with flags:

	tally-votes -t postgres -d "postgres://..."

# Configuration

  - DATABASE_URL (-d): connection string, required
  - DATABASE_TYPE (-t): sqlite, postgres or pgx (default: sqlite)
  - COHORT_MAX_WINNERS: winners per cohort (default: 5)

Variables are also read from a .env file (-env to choose another).

# Failure

A vote from an unknown voter key, or a cohort in which nothing scored,
stops the run before anything is written. The error names the cohort.
Updates are written ten cohorts at a time; a failure part way through
leaves earlier chunks applied, and re-running picks up the rest.

Exits 1 on any failure.
*/
package main
