// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cohort

import "github.com/danielhkuo/cohortvote/models"

// UnprocessedCohorts returns the cohorts that still need a tally.
func UnprocessedCohorts(cohorts []models.Cohort) []models.Cohort {
	out := make([]models.Cohort, 0, len(cohorts))
	for _, c := range cohorts {
		if !c.Processed {
			out = append(out, c)
		}
	}
	return out
}

// EligibleEntries returns entries that may join a new cohort: not deleted,
// not in an active cohort and never lost before.
func EligibleEntries(entries []models.Entry) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Deleted || e.ActiveCohortID != "" || len(e.LostCohortIDs) > 0 {
			continue
		}
		out = append(out, e)
	}
	return out
}

// EligibleVoters returns voters who have submitted at least one entry.
func EligibleVoters(voters []models.Voter) []models.Voter {
	out := make([]models.Voter, 0, len(voters))
	for _, v := range voters {
		if v.HasSubmitted {
			out = append(out, v)
		}
	}
	return out
}
