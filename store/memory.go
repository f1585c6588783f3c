// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/danielhkuo/cohortvote/cohort"
	"github.com/danielhkuo/cohortvote/models"
)

// Memory is an in-memory Store for tests and dry runs. Records keep their
// insertion order so query results are deterministic.
type Memory struct {
	mu sync.RWMutex

	voters  map[string]models.Voter
	entries map[string]models.Entry
	cohorts map[string]models.Cohort
	votes   []models.Vote

	voterOrder  []string
	entryOrder  []string
	cohortOrder []string

	createCalls int
	updateCalls int
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		voters:  make(map[string]models.Voter),
		entries: make(map[string]models.Entry),
		cohorts: make(map[string]models.Cohort),
	}
}

// AddVoter seeds a voter. HasSubmitted is ignored and derived from the
// entries the store holds.
func (m *Memory) AddVoter(v models.Voter) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.voters[v.ID]; !ok {
		m.voterOrder = append(m.voterOrder, v.ID)
	}
	v.HasSubmitted = false
	for _, e := range m.entries {
		if e.OwnerID == v.ID {
			v.HasSubmitted = true
		}
	}
	m.voters[v.ID] = v
}

// AddEntry seeds an entry and marks its owner as having submitted.
func (m *Memory) AddEntry(e models.Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[e.ID]; !ok {
		m.entryOrder = append(m.entryOrder, e.ID)
	}
	e.LostCohortIDs = slices.Clone(e.LostCohortIDs)
	m.entries[e.ID] = e

	if v, ok := m.voters[e.OwnerID]; ok {
		v.HasSubmitted = true
		m.voters[e.OwnerID] = v
	}
}

// AddCohort seeds a cohort with a known ID. Member entries get it as their
// active cohort while it is unprocessed. Allowed voter keys are derived from
// the assigned voters unless given.
func (m *Memory) AddCohort(c models.Cohort) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cohorts[c.ID]; !ok {
		m.cohortOrder = append(m.cohortOrder, c.ID)
	}
	if c.AllowedVoterKeys == nil {
		c.AllowedVoterKeys = m.keysFor(c.VoterIDs)
	}
	m.cohorts[c.ID] = cloneCohort(c)

	if !c.Processed {
		for _, id := range c.EntryIDs {
			if e, ok := m.entries[id]; ok {
				e.ActiveCohortID = c.ID
				m.entries[id] = e
			}
		}
		return
	}
	for _, id := range c.LoserIDs {
		if e, ok := m.entries[id]; ok {
			e.LostCohortIDs = append(e.LostCohortIDs, c.ID)
			m.entries[id] = e
		}
	}
}

// AddVote seeds a vote.
func (m *Memory) AddVote(v models.Vote) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.votes = append(m.votes, v)
}

// Cohort returns a copy of a stored cohort.
func (m *Memory) Cohort(id string) (models.Cohort, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.cohorts[id]
	return cloneCohort(c), ok
}

// Cohorts returns copies of all stored cohorts in insertion order.
func (m *Memory) Cohorts() []models.Cohort {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Cohort, 0, len(m.cohortOrder))
	for _, id := range m.cohortOrder {
		out = append(out, cloneCohort(m.cohorts[id]))
	}
	return out
}

// Entry returns a copy of a stored entry.
func (m *Memory) Entry(id string) (models.Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[id]
	e.LostCohortIDs = slices.Clone(e.LostCohortIDs)
	return e, ok
}

// WriteCalls returns how many CreateCohorts and UpdateCohorts calls succeeded.
func (m *Memory) WriteCalls() (creates, updates int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.createCalls, m.updateCalls
}

func (m *Memory) UnprocessedCohorts(ctx context.Context) ([]models.Cohort, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return cohort.UnprocessedCohorts(m.Cohorts()), nil
}

func (m *Memory) CohortVotes(ctx context.Context, cohortID string) ([]models.Vote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Vote
	for _, v := range m.votes {
		if v.CohortID == cohortID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *Memory) CohortEntries(ctx context.Context, cohortID string) ([]models.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.cohorts[cohortID]
	if !ok {
		return nil, nil
	}

	scores := make(map[string]float64)
	for _, v := range m.votes {
		if v.CohortID == cohortID {
			scores[v.EntryID] += v.Points
		}
	}

	var out []models.Entry
	for _, id := range c.EntryIDs {
		e, ok := m.entries[id]
		if !ok || e.Deleted || e.ActiveCohortID != cohortID {
			continue
		}
		e.Score = scores[id]
		e.LostCohortIDs = slices.Clone(e.LostCohortIDs)
		out = append(out, e)
	}
	return cohort.RankEntries(out), nil
}

func (m *Memory) EligibleVoters(ctx context.Context) ([]models.Voter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]models.Voter, 0, len(m.voterOrder))
	for _, id := range m.voterOrder {
		all = append(all, m.voters[id])
	}
	return cohort.EligibleVoters(all), nil
}

func (m *Memory) EntriesNeedingCohort(ctx context.Context) ([]models.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]models.Entry, 0, len(m.entryOrder))
	for _, id := range m.entryOrder {
		all = append(all, m.entries[id])
	}
	return cohort.EligibleEntries(all), nil
}

func (m *Memory) CreateCohorts(ctx context.Context, cohorts []models.NewCohort) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkBatch(len(cohorts)); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Check the whole call before touching anything.
	for _, nc := range cohorts {
		for _, id := range nc.EntryIDs {
			if _, ok := m.entries[id]; !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownEntry, id)
			}
		}
		for _, id := range nc.VoterIDs {
			if _, ok := m.voters[id]; !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownVoter, id)
			}
		}
	}

	ids := make([]string, len(cohorts))
	for i, nc := range cohorts {
		c := models.Cohort{
			ID:               uuid.NewString(),
			StartsAt:         nc.StartsAt,
			EndsAt:           nc.EndsAt,
			EntryIDs:         slices.Clone(nc.EntryIDs),
			VoterIDs:         slices.Clone(nc.VoterIDs),
			AllowedVoterKeys: m.keysFor(nc.VoterIDs),
		}
		m.cohorts[c.ID] = c
		m.cohortOrder = append(m.cohortOrder, c.ID)

		for _, id := range c.EntryIDs {
			e := m.entries[id]
			e.ActiveCohortID = c.ID
			m.entries[id] = e
		}
		ids[i] = c.ID
	}

	m.createCalls++
	return ids, nil
}

func (m *Memory) UpdateCohorts(ctx context.Context, results []models.CohortResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkBatch(len(results)); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]bool, len(results))
	for _, r := range results {
		c, ok := m.cohorts[r.CohortID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCohort, r.CohortID)
		}
		if c.Processed || seen[r.CohortID] {
			return fmt.Errorf("%w: %s", ErrAlreadyProcessed, r.CohortID)
		}
		seen[r.CohortID] = true
	}

	for _, r := range results {
		c := m.cohorts[r.CohortID]
		c.Processed = true
		c.WinnerIDs = slices.Clone(r.WinnerIDs)
		c.LoserIDs = slices.Clone(r.LoserIDs)
		m.cohorts[c.ID] = c

		for _, id := range c.EntryIDs {
			e, ok := m.entries[id]
			if ok && e.ActiveCohortID == c.ID {
				e.ActiveCohortID = ""
				m.entries[id] = e
			}
		}
		for _, id := range c.LoserIDs {
			if e, ok := m.entries[id]; ok {
				e.LostCohortIDs = append(e.LostCohortIDs, c.ID)
				m.entries[id] = e
			}
		}
	}

	m.updateCalls++
	return nil
}

// keysFor maps voter IDs to voter keys. Caller holds m.mu.
func (m *Memory) keysFor(voterIDs []string) []string {
	keys := make([]string, 0, len(voterIDs))
	for _, id := range voterIDs {
		if v, ok := m.voters[id]; ok {
			keys = append(keys, v.Key)
		}
	}
	return keys
}

func cloneCohort(c models.Cohort) models.Cohort {
	c.EntryIDs = slices.Clone(c.EntryIDs)
	c.VoterIDs = slices.Clone(c.VoterIDs)
	c.AllowedVoterKeys = slices.Clone(c.AllowedVoterKeys)
	c.WinnerIDs = slices.Clone(c.WinnerIDs)
	c.LoserIDs = slices.Clone(c.LoserIDs)
	return c
}
