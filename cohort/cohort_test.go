// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cohort

import (
	"fmt"
	"math/rand/v2"

	"github.com/danielhkuo/cohortvote/models"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// makeEntries returns n entries, each owned by a distinct user.
func makeEntries(n int) []models.Entry {
	entries := make([]models.Entry, n)
	for i := range entries {
		entries[i] = models.Entry{
			ID:      fmt.Sprintf("entry-%02d", i),
			OwnerID: fmt.Sprintf("user-%02d", i),
		}
	}
	return entries
}

func makeVoters(ids ...string) []models.Voter {
	voters := make([]models.Voter, len(ids))
	for i, id := range ids {
		voters[i] = models.Voter{ID: id, Key: "key-" + id, HasSubmitted: true}
	}
	return voters
}

func scoredEntries(scores ...float64) []models.Entry {
	entries := make([]models.Entry, len(scores))
	for i, s := range scores {
		entries[i] = models.Entry{ID: fmt.Sprintf("e%d", i+1), Score: s}
	}
	return entries
}
