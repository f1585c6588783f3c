// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cohort

import (
	"testing"

	"github.com/danielhkuo/cohortvote/models"
	"github.com/stretchr/testify/require"
)

func TestUnprocessedCohorts(t *testing.T) {
	cohorts := []models.Cohort{
		{ID: "c1", Processed: true},
		{ID: "c2"},
		{ID: "c3"},
	}

	got := UnprocessedCohorts(cohorts)

	require.Len(t, got, 2)
	require.Equal(t, "c2", got[0].ID)
	require.Equal(t, "c3", got[1].ID)
}

func TestEligibleEntries(t *testing.T) {
	entries := []models.Entry{
		{ID: "fresh", OwnerID: "u1"},
		{ID: "deleted", OwnerID: "u2", Deleted: true},
		{ID: "active", OwnerID: "u3", ActiveCohortID: "c1"},
		{ID: "lost", OwnerID: "u4", LostCohortIDs: []string{"c0"}},
		{ID: "winner", OwnerID: "u5"},
	}

	got := EligibleEntries(entries)

	ids := make([]string, len(got))
	for i, e := range got {
		ids[i] = e.ID
	}
	require.Equal(t, []string{"fresh", "winner"}, ids)
	require.Len(t, entries, 5, "input must not be modified")
}

func TestEligibleVoters(t *testing.T) {
	voters := []models.Voter{
		{ID: "v1", HasSubmitted: true},
		{ID: "v2"},
		{ID: "v3", HasSubmitted: true},
	}

	got := EligibleVoters(voters)

	require.Len(t, got, 2)
	require.Equal(t, "v1", got[0].ID)
	require.Equal(t, "v3", got[1].ID)
}
