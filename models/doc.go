// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the records shared by the cohort jobs and the stores.

# Domain Types

  - Entry: a submitted showcase with its owner, active cohort, score and losses
  - Cohort: a group of entries reviewed together over one review window
  - Voter: a user allowed to review, identified by a voter key
  - Vote: one vote for an entry inside a cohort, read-only to the jobs

# Write Intents

Types handed to the store in batches of at most ten:

  - NewCohort: start/end, member entries and assigned voters
  - CohortResult: winners and losers; applying it marks the cohort processed

# Constants

Member outcomes:

	OutcomePending = "pending"
	OutcomeWon     = "won"
	OutcomeLost    = "lost"
*/
package models
