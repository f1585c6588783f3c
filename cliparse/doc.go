// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - DatabaseURL: store connection string (required)
  - DatabaseType: sqlite, postgres or pgx (default: sqlite)
  - MaxCohortSize: entries per cohort (default: 18)
  - MaxWinners: winners per cohort (default: 5)
  - CutoffHour: hour review windows open (default: 11)
  - Location: time zone of the cutoff hour (default: local)
  - Seed: shuffle seed, 0 seeds from the clock (default: 0)

# CLI Flags

	-d    Database URL
	-t    Database type
	-env  Environment file (default: .env)

# Environment Variables

	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	COHORT_MAX_SIZE
	COHORT_MAX_WINNERS
	REVIEW_CUTOFF_HOUR
	REVIEW_TIMEZONE     (IANA name, e.g. America/New_York)
	COHORT_SEED

Variables may also come from the env file, loaded with godotenv. Variables
already set in the environment win over the file, and CLI flags win over
both. A missing env file is not an error.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - DATABASE_TYPE is not sqlite, postgres or pgx
  - a tuning variable is not a number or out of range
  - REVIEW_TIMEZONE is unknown

# Example

	// In cmd/tally-votes/main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
*/
package cliparse
