package models

import "time"

// Cohort outcome constants, as stored per member entry
const (
	OutcomePending = "pending"
	OutcomeWon     = "won"
	OutcomeLost    = "lost"
)

// Domain types

// Entry is a submitted showcase. Score is aggregated by the store from the
// votes cast in the entry's active cohort.
type Entry struct {
	ID             string   `json:"id"`
	OwnerID        string   `json:"owner_id"`
	ActiveCohortID string   `json:"active_cohort_id,omitempty"`
	Score          float64  `json:"score"`
	Deleted        bool     `json:"deleted"`
	LostCohortIDs  []string `json:"lost_cohort_ids,omitempty"`
}

type Cohort struct {
	ID               string    `json:"id"`
	StartsAt         time.Time `json:"starts_at"`
	EndsAt           time.Time `json:"ends_at"`
	EntryIDs         []string  `json:"entry_ids"`
	VoterIDs         []string  `json:"voter_ids"`
	AllowedVoterKeys []string  `json:"allowed_voter_keys"`
	Processed        bool      `json:"processed"`
	WinnerIDs        []string  `json:"winner_ids,omitempty"`
	LoserIDs         []string  `json:"loser_ids,omitempty"`
}

// Voter is a user who may review cohorts. Key is what votes are signed with.
type Voter struct {
	ID           string `json:"id"`
	Key          string `json:"key"`
	HasSubmitted bool   `json:"has_submitted"`
}

type Vote struct {
	ID       string  `json:"id"`
	CohortID string  `json:"cohort_id"`
	VoterKey string  `json:"-"` // Never expose in JSON
	EntryID  string  `json:"entry_id"`
	Points   float64 `json:"points"`
}

// Write intents

// NewCohort is a cohort waiting to be created. The store assigns the ID.
type NewCohort struct {
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	EntryIDs []string  `json:"entry_ids"`
	VoterIDs []string  `json:"voter_ids"`
}

// CohortResult marks a cohort processed with its final winners and losers.
type CohortResult struct {
	CohortID  string   `json:"cohort_id"`
	WinnerIDs []string `json:"winner_ids"`
	LoserIDs  []string `json:"loser_ids"`
}
