// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cohort

import (
	"math/rand/v2"
	"slices"

	"github.com/danielhkuo/cohortvote/models"
)

// DefaultMaxCohortSize is the largest number of entries in one cohort.
const DefaultMaxCohortSize = 18

// Prospect is a cohort that has not been written yet.
type Prospect struct {
	EntryIDs []string
	// Ineligible holds the owners of EntryIDs. They may not review this cohort.
	Ineligible map[string]struct{}
	VoterIDs   []string
}

// Admits reports whether voterID may be assigned to the prospect.
func (p Prospect) Admits(voterID string) bool {
	_, barred := p.Ineligible[voterID]
	return !barred
}

// Shuffle returns a shuffled copy of items.
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	out := slices.Clone(items)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Partition shuffles entries and slices them into prospects of at most
// maxSize entries. The last prospect may be smaller. No entries, no prospects.
func Partition(rng *rand.Rand, entries []models.Entry, maxSize int) []Prospect {
	if maxSize < 1 {
		maxSize = DefaultMaxCohortSize
	}

	shuffled := Shuffle(rng, entries)
	prospects := make([]Prospect, 0, (len(shuffled)+maxSize-1)/maxSize)
	for start := 0; start < len(shuffled); start += maxSize {
		end := min(start+maxSize, len(shuffled))
		chunk := shuffled[start:end]

		p := Prospect{
			EntryIDs:   make([]string, len(chunk)),
			Ineligible: make(map[string]struct{}, len(chunk)),
		}
		for i, e := range chunk {
			p.EntryIDs[i] = e.ID
			p.Ineligible[e.OwnerID] = struct{}{}
		}
		prospects = append(prospects, p)
	}

	return prospects
}
