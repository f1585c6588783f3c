// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the records the cohort jobs read and write.

# Store Interface

Reads answer the questions the jobs ask:

  - UnprocessedCohorts: cohorts waiting for a tally
  - CohortVotes: votes recorded for one cohort
  - CohortEntries: a cohort's live entries with scores, highest first
  - EligibleVoters: users who have submitted an entry
  - EntriesNeedingCohort: entries with no active cohort and no loss

Writes take at most MaxBatchSize records per call:

  - CreateCohorts: insert cohorts, members and voters; returns new IDs
  - UpdateCohorts: mark cohorts processed with winners and losers

Processing is one-way. Updating a processed cohort returns
ErrAlreadyProcessed and changes nothing.

# Implementations

  - SQL: database/sql over the schema in package db (SQLite or PostgreSQL)
  - Memory: mutex-guarded maps for tests, answering queries through the
    eligibility filter in package cohort

Cohort IDs are random UUIDs in both.
*/
package store
