// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Command create-cohorts places every showcase that needs one into a new
review cohort and assigns voters to review it.

Showcases are shuffled and cut into cohorts of at most 18. Every user who
has submitted a showcase is a voter; each goes to the cohort with the fewest
voters that does not contain their own showcase. All cohorts share one
23-hour review window starting at the next 11:00.

The plan is printed and must be confirmed before anything is written.
Without a terminal on stdout, progress goes to the log and the prompt is
declined unless -y is given.

# Running

	DATABASE_URL=file:cohorts.db create-cohorts

# Configuration

  - DATABASE_URL (-d): connection string, required
  - DATABASE_TYPE (-t): sqlite, postgres or pgx (default: sqlite)
  - -y: create without asking
  - COHORT_MAX_SIZE: showcases per cohort (default: 18)
  - REVIEW_CUTOFF_HOUR: hour the review window opens (default: 11)
  - REVIEW_TIMEZONE: IANA zone for the cutoff (default: local)
  - COHORT_SEED: shuffle seed, for reproducible runs (default: random)

# Output

Voters who cannot be placed anywhere are listed as warnings. Cohorts are
created ten at a time; a failure stops the run with earlier chunks kept.
Declining the prompt prints "Exiting" and changes nothing.
*/
package main
