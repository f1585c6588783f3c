// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/cohortvote/batch"
	"github.com/danielhkuo/cohortvote/cliparse"
	"github.com/danielhkuo/cohortvote/cohort"
	"github.com/danielhkuo/cohortvote/models"
	"github.com/danielhkuo/cohortvote/progress"
	"github.com/danielhkuo/cohortvote/store"
)

// TallyJob tallies every unprocessed cohort.
type TallyJob struct {
	store    store.Store
	reporter progress.Reporter
	cfg      cliparse.Config
}

func NewTallyJob(st store.Store, rep progress.Reporter, cfg cliparse.Config) *TallyJob {
	return &TallyJob{store: st, reporter: rep, cfg: cfg}
}

// TallySummary counts what a tally run wrote.
type TallySummary struct {
	Cohorts int
	Winners int
	Losers  int
	Partial int // cohorts where some showcases had no score
}

// Run validates and ranks every unprocessed cohort, then marks them all
// processed. Any invalid vote or cohort without a winner stops the run
// before anything is written.
func (j *TallyJob) Run(ctx context.Context) (TallySummary, error) {
	cohorts, err := progress.Load(j.reporter, "Loading unprocessed cohorts", func() ([]models.Cohort, error) {
		return j.store.UnprocessedCohorts(ctx)
	})
	if err != nil {
		return TallySummary{}, fmt.Errorf("failed to load cohorts: %w", err)
	}
	cohorts = cohort.UnprocessedCohorts(cohorts)
	slog.Info("found unprocessed cohorts", "count", len(cohorts))

	var summary TallySummary
	results := make([]models.CohortResult, 0, len(cohorts))
	for _, c := range cohorts {
		sel, err := j.tallyCohort(ctx, c)
		if err != nil {
			return TallySummary{}, err
		}

		results = append(results, sel.Result(c.ID))
		summary.Winners += len(sel.WinnerIDs)
		summary.Losers += len(sel.LoserIDs)
		if sel.Partial() {
			summary.Partial++
		}
	}

	if len(results) == 0 {
		slog.Info("no cohorts to tally")
		return TallySummary{}, nil
	}

	applied, err := batch.Write(ctx, j.reporter, "Updating cohorts", results, store.MaxBatchSize, j.store.UpdateCohorts)
	summary.Cohorts = applied
	if err != nil {
		return summary, fmt.Errorf("failed to update cohorts: %w", err)
	}

	slog.Info("cohorts tallied", "cohorts", summary.Cohorts, "winners", summary.Winners, "losers", summary.Losers)
	return summary, nil
}

func (j *TallyJob) tallyCohort(ctx context.Context, c models.Cohort) (cohort.Selection, error) {
	votes, err := progress.Load(j.reporter, fmt.Sprintf("Loading votes for cohort %s", c.ID), func() ([]models.Vote, error) {
		return j.store.CohortVotes(ctx, c.ID)
	})
	if err != nil {
		return cohort.Selection{}, fmt.Errorf("failed to load votes for cohort %s: %w", c.ID, err)
	}

	if err := cohort.ValidateVotes(c, votes); err != nil {
		var verr *cohort.ValidationError
		if errors.As(err, &verr) {
			for _, key := range verr.InvalidKeys {
				slog.Error("invalid voter key", "cohort_id", c.ID, "voter_key", key)
			}
		}
		return cohort.Selection{}, err
	}
	slog.Info("all votes are valid", "cohort_id", c.ID, "votes", len(votes))

	entries, err := progress.Load(j.reporter, fmt.Sprintf("Loading showcases for cohort %s", c.ID), func() ([]models.Entry, error) {
		return j.store.CohortEntries(ctx, c.ID)
	})
	if err != nil {
		return cohort.Selection{}, fmt.Errorf("failed to load showcases for cohort %s: %w", c.ID, err)
	}

	scores := make([]float64, len(entries))
	for i, e := range entries {
		scores[i] = e.Score
	}
	slog.Info("found showcases", "cohort_id", c.ID, "count", len(entries), "scores", scores)

	sel, err := cohort.SelectWinners(c.ID, entries, j.cfg.MaxWinners)
	if err != nil {
		return cohort.Selection{}, err
	}

	if sel.Partial() {
		j.reporter.Warn(fmt.Sprintf("Some showcases have no scores in cohort %s (%d of %d)", c.ID, sel.Unscored, len(entries)))
		slog.Warn("some showcases have no scores", "cohort_id", c.ID, "unscored", sel.Unscored)
	}

	return sel, nil
}
