// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/cohortvote/models"
)

// MaxBatchSize is the most records CreateCohorts and UpdateCohorts accept per call.
const MaxBatchSize = 10

var (
	ErrBatchTooLarge    = errors.New("batch too large")
	ErrAlreadyProcessed = errors.New("cohort already processed")
	ErrUnknownCohort    = errors.New("unknown cohort")
	ErrUnknownEntry     = errors.New("unknown entry")
	ErrUnknownVoter     = errors.New("unknown voter")
)

// Store is the record store the jobs read from and write to.
type Store interface {
	// UnprocessedCohorts returns every cohort not yet tallied, with its
	// members, assigned voters and allowed voter keys.
	UnprocessedCohorts(ctx context.Context) ([]models.Cohort, error)

	// CohortVotes returns all votes recorded against a cohort.
	CohortVotes(ctx context.Context, cohortID string) ([]models.Vote, error)

	// CohortEntries returns the non-deleted entries whose active cohort is
	// cohortID, with aggregated scores, highest score first.
	CohortEntries(ctx context.Context, cohortID string) ([]models.Entry, error)

	// EligibleVoters returns users who have submitted at least one entry.
	EligibleVoters(ctx context.Context) ([]models.Voter, error)

	// EntriesNeedingCohort returns entries with no active cohort and no loss.
	EntriesNeedingCohort(ctx context.Context) ([]models.Entry, error)

	// CreateCohorts writes up to MaxBatchSize cohorts and returns their IDs
	// in input order.
	CreateCohorts(ctx context.Context, cohorts []models.NewCohort) ([]string, error)

	// UpdateCohorts marks up to MaxBatchSize cohorts processed with their
	// winners and losers. A cohort can only be processed once.
	UpdateCohorts(ctx context.Context, results []models.CohortResult) error
}

func checkBatch(n int) error {
	if n > MaxBatchSize {
		return fmt.Errorf("%w: %d records (max %d)", ErrBatchTooLarge, n, MaxBatchSize)
	}
	return nil
}
