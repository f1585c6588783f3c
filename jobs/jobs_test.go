// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/danielhkuo/cohortvote/models"
	"github.com/danielhkuo/cohortvote/progress"
	"github.com/danielhkuo/cohortvote/store"
)

// recorder is a progress.Reporter that remembers everything it was told and
// answers Confirm with a fixed reply.
type recorder struct {
	mu sync.Mutex

	answer     bool
	confirmErr error

	started  []string
	failed   []string
	warnings []string
	prompts  []string
}

var _ progress.Reporter = (*recorder)(nil)

func (r *recorder) Start(msg string) progress.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.started = append(r.started, msg)
	return &recorderTask{r: r, msg: msg}
}

func (r *recorder) Warn(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.warnings = append(r.warnings, msg)
}

func (r *recorder) Confirm(prompt string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prompts = append(r.prompts, prompt)
	return r.answer, r.confirmErr
}

type recorderTask struct {
	r   *recorder
	msg string
}

func (t *recorderTask) Succeed() {}

func (t *recorderTask) Fail(err error) {
	t.r.mu.Lock()
	defer t.r.mu.Unlock()

	t.r.failed = append(t.r.failed, t.msg)
}

// failingStore wraps a Store and fails the named operation.
type failingStore struct {
	store.Store
	op  string
	err error
}

func (f *failingStore) fail(op string) error {
	if f.op == op {
		return f.err
	}
	return nil
}

func (f *failingStore) UnprocessedCohorts(ctx context.Context) ([]models.Cohort, error) {
	if err := f.fail("UnprocessedCohorts"); err != nil {
		return nil, err
	}
	return f.Store.UnprocessedCohorts(ctx)
}

func (f *failingStore) CohortVotes(ctx context.Context, cohortID string) ([]models.Vote, error) {
	if err := f.fail("CohortVotes"); err != nil {
		return nil, err
	}
	return f.Store.CohortVotes(ctx, cohortID)
}

func (f *failingStore) EligibleVoters(ctx context.Context) ([]models.Voter, error) {
	if err := f.fail("EligibleVoters"); err != nil {
		return nil, err
	}
	return f.Store.EligibleVoters(ctx)
}

func (f *failingStore) CreateCohorts(ctx context.Context, cohorts []models.NewCohort) ([]string, error) {
	if err := f.fail("CreateCohorts"); err != nil {
		return nil, err
	}
	return f.Store.CreateCohorts(ctx, cohorts)
}

func (f *failingStore) UpdateCohorts(ctx context.Context, results []models.CohortResult) error {
	if err := f.fail("UpdateCohorts"); err != nil {
		return err
	}
	return f.Store.UpdateCohorts(ctx, results)
}

var errStoreDown = errors.New("store down")

// seedSubmitters adds n users u00.. each owning one showcase s00..
func seedSubmitters(m *store.Memory, n int) {
	for i := range n {
		uid := fmt.Sprintf("u%02d", i)
		m.AddVoter(models.Voter{ID: uid, Key: "key-" + uid})
		m.AddEntry(models.Entry{ID: fmt.Sprintf("s%02d", i), OwnerID: uid})
	}
}
