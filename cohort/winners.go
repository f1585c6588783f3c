// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cohort

import (
	"cmp"
	"slices"

	"github.com/danielhkuo/cohortvote/models"
)

// DefaultMaxWinners is how many entries can win a cohort.
const DefaultMaxWinners = 5

// Selection is a cohort's tally outcome.
type Selection struct {
	WinnerIDs []string
	LoserIDs  []string
	Scored    int
	Unscored  int
}

// Partial reports whether some entries received no votes.
func (s Selection) Partial() bool {
	return s.Unscored > 0
}

// Result converts the selection into the update written back to the store.
func (s Selection) Result(cohortID string) models.CohortResult {
	return models.CohortResult{
		CohortID:  cohortID,
		WinnerIDs: s.WinnerIDs,
		LoserIDs:  s.LoserIDs,
	}
}

// RankEntries returns entries ordered by score (descending) then ID (ascending).
func RankEntries(entries []models.Entry) []models.Entry {
	ranked := slices.Clone(entries)
	slices.SortStableFunc(ranked, func(a, b models.Entry) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return ranked
}

// SelectWinners splits a cohort's entries into winners and losers. The top
// maxWinners entries with a positive score win; the remaining scored entries
// and every unscored entry lose. With no positive score there is no winner
// and a *NoWinnerError is returned.
func SelectWinners(cohortID string, entries []models.Entry, maxWinners int) (Selection, error) {
	if maxWinners < 1 {
		maxWinners = DefaultMaxWinners
	}

	var scored, unscored []string
	for _, e := range RankEntries(entries) {
		// Negative scores cannot happen with a sane store; count them as unscored.
		if e.Score > 0 {
			scored = append(scored, e.ID)
		} else {
			unscored = append(unscored, e.ID)
		}
	}

	if len(scored) == 0 {
		return Selection{}, &NoWinnerError{CohortID: cohortID, Entries: len(entries)}
	}

	n := min(maxWinners, len(scored))
	losers := make([]string, 0, len(entries)-n)
	losers = append(losers, scored[n:]...)
	losers = append(losers, unscored...)

	return Selection{
		WinnerIDs: slices.Clone(scored[:n]),
		LoserIDs:  losers,
		Scored:    len(scored),
		Unscored:  len(unscored),
	}, nil
}
