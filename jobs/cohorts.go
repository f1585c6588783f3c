// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/cohortvote/batch"
	"github.com/danielhkuo/cohortvote/cliparse"
	"github.com/danielhkuo/cohortvote/cohort"
	"github.com/danielhkuo/cohortvote/models"
	"github.com/danielhkuo/cohortvote/progress"
	"github.com/danielhkuo/cohortvote/store"
)

// CohortJob forms new cohorts from the showcases that need one.
type CohortJob struct {
	store    store.Store
	reporter progress.Reporter
	cfg      cliparse.Config

	now func() time.Time
	rng *rand.Rand
}

func NewCohortJob(st store.Store, rep progress.Reporter, cfg cliparse.Config) *CohortJob {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	slog.Info("shuffle seed", "seed", seed)

	return &CohortJob{
		store:    st,
		reporter: rep,
		cfg:      cfg,
		now:      time.Now,
		rng:      rand.New(rand.NewPCG(seed, seed)),
	}
}

// CohortPlan is what a run would write.
type CohortPlan struct {
	Window     cohort.Window
	Cohorts    []models.NewCohort
	Unassigned []string
}

// CohortSummary reports a run.
type CohortSummary struct {
	Plan      CohortPlan
	Confirmed bool
	CohortIDs []string
}

// Plan loads eligible showcases and voters, partitions and balances them.
// Nothing is written.
func (j *CohortJob) Plan(ctx context.Context) (CohortPlan, error) {
	voters, err := progress.Load(j.reporter, "Finding eligible voters", func() ([]models.Voter, error) {
		return j.store.EligibleVoters(ctx)
	})
	if err != nil {
		return CohortPlan{}, fmt.Errorf("failed to load voters: %w", err)
	}
	voters = cohort.EligibleVoters(voters)
	slog.Info("found voters", "count", len(voters))

	entries, err := progress.Load(j.reporter, "Finding projects that need cohorts", func() ([]models.Entry, error) {
		return j.store.EntriesNeedingCohort(ctx)
	})
	if err != nil {
		return CohortPlan{}, fmt.Errorf("failed to load showcases: %w", err)
	}
	entries = cohort.EligibleEntries(entries)
	slog.Info("found projects that need cohorts", "count", len(entries))

	now := j.now()
	if j.cfg.Location != nil {
		now = now.In(j.cfg.Location)
	}
	plan := CohortPlan{Window: cohort.ReviewWindow(now, j.cfg.CutoffHour)}

	prospects := cohort.Partition(j.rng, entries, j.cfg.MaxCohortSize)
	if len(prospects) == 0 {
		return plan, nil
	}

	assignment := cohort.Balance(cohort.Shuffle(j.rng, voters), prospects)
	for _, id := range assignment.Unassigned {
		j.reporter.Warn(fmt.Sprintf("Can't assign voter to any cohort: %s", id))
		slog.Warn("voter not assigned", "voter_id", id)
	}

	plan.Unassigned = assignment.Unassigned
	plan.Cohorts = make([]models.NewCohort, len(assignment.Prospects))
	for i, p := range assignment.Prospects {
		plan.Cohorts[i] = models.NewCohort{
			StartsAt: plan.Window.Start,
			EndsAt:   plan.Window.End,
			EntryIDs: p.EntryIDs,
			VoterIDs: p.VoterIDs,
		}
	}

	return plan, nil
}

// Run plans the cohorts, asks for confirmation and creates them.
func (j *CohortJob) Run(ctx context.Context) (CohortSummary, error) {
	plan, err := j.Plan(ctx)
	if err != nil {
		return CohortSummary{}, err
	}
	summary := CohortSummary{Plan: plan}

	if len(plan.Cohorts) == 0 {
		slog.Info("no projects need cohorts")
		return summary, nil
	}

	ok, err := j.reporter.Confirm(confirmPrompt(plan, j.now()))
	if err != nil {
		return summary, err
	}
	if !ok {
		slog.Info("cohort creation declined")
		return summary, nil
	}
	summary.Confirmed = true

	create := func(ctx context.Context, chunk []models.NewCohort) error {
		ids, err := j.store.CreateCohorts(ctx, chunk)
		summary.CohortIDs = append(summary.CohortIDs, ids...)
		return err
	}
	if _, err := batch.Write(ctx, j.reporter, "Creating chunk", plan.Cohorts, store.MaxBatchSize, create); err != nil {
		return summary, fmt.Errorf("failed to create cohorts: %w", err)
	}

	slog.Info("created cohorts", "count", len(summary.CohortIDs))
	return summary, nil
}

// confirmPrompt describes plan relative to now.
func confirmPrompt(plan CohortPlan, now time.Time) string {
	return fmt.Sprintf("About to create %s with %s.\nThe cohorts are active from %s (%s) to %s.\nContinue?",
		english.Plural(len(plan.Cohorts), "cohort", ""),
		english.Plural(len(plan.Unassigned), "unassigned voter", ""),
		plan.Window.Start.Format(time.RFC3339),
		humanize.RelTime(plan.Window.Start, now, "ago", "from now"),
		plan.Window.End.Format(time.RFC3339),
	)
}
