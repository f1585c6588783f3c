// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cohort

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidVoterKey is matched by a ValidationError with unknown voter keys.
	ErrInvalidVoterKey = errors.New("invalid voter key")

	// ErrForeignVote is matched by a ValidationError holding votes recorded
	// against a different cohort.
	ErrForeignVote = errors.New("vote belongs to another cohort")

	// ErrNoScoredEntries is matched by a NoWinnerError.
	ErrNoScoredEntries = errors.New("no entries have scores")
)

// ValidationError rejects a cohort's votes as a whole.
type ValidationError struct {
	CohortID    string
	InvalidKeys []string // sorted, distinct
	ForeignIDs  []string // vote IDs recorded for another cohort
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.InvalidKeys) > 0 {
		parts = append(parts, fmt.Sprintf("invalid voter keys [%s]", strings.Join(e.InvalidKeys, ", ")))
	}
	if len(e.ForeignIDs) > 0 {
		parts = append(parts, fmt.Sprintf("foreign votes [%s]", strings.Join(e.ForeignIDs, ", ")))
	}
	return fmt.Sprintf("invalid votes for cohort %s: %s", e.CohortID, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrInvalidVoterKey:
		return len(e.InvalidKeys) > 0
	case ErrForeignVote:
		return len(e.ForeignIDs) > 0
	}
	return false
}

// NoWinnerError reports a cohort where no entry received a positive score.
type NoWinnerError struct {
	CohortID string
	Entries  int
}

func (e *NoWinnerError) Error() string {
	return fmt.Sprintf("no showcases have scores for cohort %s (%d entries)", e.CohortID, e.Entries)
}

func (e *NoWinnerError) Unwrap() error {
	return ErrNoScoredEntries
}
