// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The statements stick to types and syntax that PostgreSQL and SQLite share.
const schema = `
-- Users (voters)
CREATE TABLE IF NOT EXISTS user_account (
    id TEXT PRIMARY KEY,
    voter_key TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Showcases (entries)
CREATE TABLE IF NOT EXISTS showcase (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES user_account(id) ON DELETE CASCADE,
    title TEXT NOT NULL DEFAULT '',
    deleted BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_showcase_user_id ON showcase(user_id);

-- Cohorts
CREATE TABLE IF NOT EXISTS cohort (
    id TEXT PRIMARY KEY,
    starts_at TIMESTAMP NOT NULL,
    ends_at TIMESTAMP NOT NULL,
    processed BOOLEAN NOT NULL DEFAULT FALSE,
    processed_at TIMESTAMP,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_cohort_processed ON cohort(processed);

-- Cohort members
CREATE TABLE IF NOT EXISTS cohort_showcase (
    cohort_id TEXT NOT NULL REFERENCES cohort(id) ON DELETE CASCADE,
    showcase_id TEXT NOT NULL REFERENCES showcase(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    outcome TEXT NOT NULL DEFAULT 'pending' CHECK (outcome IN ('pending', 'won', 'lost')),
    PRIMARY KEY (cohort_id, showcase_id)
);

CREATE INDEX IF NOT EXISTS idx_cohort_showcase_showcase_id ON cohort_showcase(showcase_id);

-- Assigned voters
CREATE TABLE IF NOT EXISTS cohort_voter (
    cohort_id TEXT NOT NULL REFERENCES cohort(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL REFERENCES user_account(id) ON DELETE CASCADE,
    PRIMARY KEY (cohort_id, user_id)
);

-- Votes (voter_key is not a foreign key: unknown keys must survive until validation)
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    cohort_id TEXT NOT NULL REFERENCES cohort(id) ON DELETE CASCADE,
    voter_key TEXT NOT NULL,
    showcase_id TEXT NOT NULL REFERENCES showcase(id) ON DELETE CASCADE,
    points REAL NOT NULL DEFAULT 1 CHECK (points >= 0),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_vote_cohort_id ON vote(cohort_id);
CREATE INDEX IF NOT EXISTS idx_vote_showcase_id ON vote(cohort_id, showcase_id);
`
