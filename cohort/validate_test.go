// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cohort

import (
	"errors"
	"testing"

	"github.com/danielhkuo/cohortvote/models"
	"github.com/stretchr/testify/require"
)

func TestValidateVotes(t *testing.T) {
	c := models.Cohort{ID: "cohort-1", AllowedVoterKeys: []string{"A", "B"}}

	tests := []struct {
		name        string
		votes       []models.Vote
		wantErr     error
		wantInvalid []string
	}{
		{
			name: "all keys allowed",
			votes: []models.Vote{
				{ID: "1", CohortID: "cohort-1", VoterKey: "A", EntryID: "e1"},
				{ID: "2", CohortID: "cohort-1", VoterKey: "B", EntryID: "e2"},
				{ID: "3", CohortID: "cohort-1", VoterKey: "A", EntryID: "e2"},
			},
		},
		{
			name: "no votes",
		},
		{
			name: "unknown key rejects the cohort",
			votes: []models.Vote{
				{ID: "1", CohortID: "cohort-1", VoterKey: "A", EntryID: "e1"},
				{ID: "2", CohortID: "cohort-1", VoterKey: "X", EntryID: "e2"},
			},
			wantErr:     ErrInvalidVoterKey,
			wantInvalid: []string{"X"},
		},
		{
			name: "invalid keys are distinct and sorted",
			votes: []models.Vote{
				{ID: "1", CohortID: "cohort-1", VoterKey: "Z", EntryID: "e1"},
				{ID: "2", CohortID: "cohort-1", VoterKey: "X", EntryID: "e2"},
				{ID: "3", CohortID: "cohort-1", VoterKey: "Z", EntryID: "e2"},
			},
			wantErr:     ErrInvalidVoterKey,
			wantInvalid: []string{"X", "Z"},
		},
		{
			name: "vote recorded against another cohort",
			votes: []models.Vote{
				{ID: "9", CohortID: "cohort-2", VoterKey: "A", EntryID: "e1"},
			},
			wantErr: ErrForeignVote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVotes(c, tt.votes)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Equal(t, "cohort-1", verr.CohortID)
			require.Equal(t, tt.wantInvalid, verr.InvalidKeys)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	c := models.Cohort{ID: "rec123", AllowedVoterKeys: []string{"A", "B"}}
	votes := []models.Vote{{ID: "v1", CohortID: "rec123", VoterKey: "X", EntryID: "e1"}}

	err := ValidateVotes(c, votes)

	require.Error(t, err)
	require.Contains(t, err.Error(), "X")
	require.Contains(t, err.Error(), "rec123")
	require.NotErrorIs(t, err, ErrForeignVote)
}
