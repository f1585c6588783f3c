// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cohort

import (
	"slices"

	"github.com/danielhkuo/cohortvote/models"
)

// Assignment is the outcome of Balance.
type Assignment struct {
	Prospects []Prospect
	// Unassigned lists voters who own an entry in every prospect.
	Unassigned []string
}

// Balance assigns each voter, in the given order, to the admitting prospect
// with the fewest voters so far. Ties go to the earlier prospect. Callers
// shuffle voters beforehand; Balance itself is deterministic.
//
// The returned prospects are copies; the input slice is left untouched.
func Balance(voters []models.Voter, prospects []Prospect) Assignment {
	out := Assignment{Prospects: make([]Prospect, len(prospects))}
	for i, p := range prospects {
		out.Prospects[i] = p
		out.Prospects[i].VoterIDs = slices.Clone(p.VoterIDs)
	}

	for _, v := range voters {
		best := -1
		for i, p := range out.Prospects {
			if !p.Admits(v.ID) {
				continue
			}
			if best == -1 || len(p.VoterIDs) < len(out.Prospects[best].VoterIDs) {
				best = i
			}
		}

		if best == -1 {
			out.Unassigned = append(out.Unassigned, v.ID)
			continue
		}
		out.Prospects[best].VoterIDs = append(out.Prospects[best].VoterIDs, v.ID)
	}

	return out
}

// Assigned returns the number of voters placed in a prospect.
func (a Assignment) Assigned() int {
	n := 0
	for _, p := range a.Prospects {
		n += len(p.VoterIDs)
	}
	return n
}
