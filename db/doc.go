// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Opening

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

Open selects the driver, pings the server and runs CreateSchema. Supported
types:

  - sqlite: modernc.org/sqlite (pure Go, default)
  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib

# Schema Creation

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - user_account: voters and their voter keys
  - showcase: submitted entries
  - cohort: review window and processed flag
  - cohort_showcase: member entries with position and outcome
  - cohort_voter: voters assigned to a cohort
  - vote: one row per vote with its points

# Relationships

	user_account 1──* showcase
	cohort 1──* cohort_showcase *──1 showcase
	cohort 1──* cohort_voter *──1 user_account
	cohort 1──* vote

All foreign keys use ON DELETE CASCADE.

# Derived State

An entry's active cohort is the unprocessed cohort listing it. A prior loss
is a cohort_showcase row with outcome 'lost'. Scores are SUM(vote.points)
for the entry within its cohort.
*/
package db
