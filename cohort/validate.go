// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cohort

import (
	"slices"

	"github.com/danielhkuo/cohortvote/models"
)

// ValidateVotes checks every distinct voter key in votes against the cohort's
// allow-list. Any unknown key, or any vote recorded for another cohort,
// rejects the cohort with a *ValidationError.
func ValidateVotes(c models.Cohort, votes []models.Vote) error {
	allowed := make(map[string]struct{}, len(c.AllowedVoterKeys))
	for _, k := range c.AllowedVoterKeys {
		allowed[k] = struct{}{}
	}

	seen := make(map[string]struct{})
	var invalid, foreign []string
	for _, v := range votes {
		if v.CohortID != c.ID {
			foreign = append(foreign, v.ID)
		}
		if _, dup := seen[v.VoterKey]; dup {
			continue
		}
		seen[v.VoterKey] = struct{}{}
		if _, ok := allowed[v.VoterKey]; !ok {
			invalid = append(invalid, v.VoterKey)
		}
	}

	if len(invalid) == 0 && len(foreign) == 0 {
		return nil
	}

	slices.Sort(invalid)
	return &ValidationError{
		CohortID:    c.ID,
		InvalidKeys: invalid,
		ForeignIDs:  foreign,
	}
}
