// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/cohortvote/db"
	"github.com/danielhkuo/cohortvote/models"
)

// SQL is a Store backed by the schema in package db. Queries are written with
// ? placeholders and rebound to $n for PostgreSQL drivers.
type SQL struct {
	db     *sql.DB
	dbType string
	now    func() time.Time
}

var _ Store = (*SQL)(nil)

func NewSQL(conn *sql.DB, dbType string) *SQL {
	return &SQL{db: conn, dbType: dbType, now: time.Now}
}

func (s *SQL) rebind(query string) string {
	if s.dbType == db.TypeSQLite {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *SQL) UnprocessedCohorts(ctx context.Context) ([]models.Cohort, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, starts_at, ends_at
		FROM cohort
		WHERE NOT processed
		ORDER BY starts_at, id
	`))
	if err != nil {
		return nil, fmt.Errorf("failed to query cohorts: %w", err)
	}

	var cohorts []models.Cohort
	for rows.Next() {
		var c models.Cohort
		if err := rows.Scan(&c.ID, &c.StartsAt, &c.EndsAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan cohort: %w", err)
		}
		cohorts = append(cohorts, c)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	// SQLite runs on one connection; release it before the member queries.
	rows.Close()

	for i := range cohorts {
		c := &cohorts[i]

		c.EntryIDs, err = s.queryStrings(ctx, `
			SELECT showcase_id FROM cohort_showcase
			WHERE cohort_id = ?
			ORDER BY position
		`, c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to query members of cohort %s: %w", c.ID, err)
		}

		c.VoterIDs, c.AllowedVoterKeys, err = s.cohortVoters(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to query voters of cohort %s: %w", c.ID, err)
		}
	}

	return cohorts, nil
}

func (s *SQL) cohortVoters(ctx context.Context, cohortID string) (ids, keys []string, err error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT u.id, u.voter_key
		FROM cohort_voter cv
		JOIN user_account u ON u.id = cv.user_id
		WHERE cv.cohort_id = ?
		ORDER BY u.id
	`), cohortID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	ids, keys = []string{}, []string{}
	for rows.Next() {
		var id, key string
		if err := rows.Scan(&id, &key); err != nil {
			return nil, nil, err
		}
		ids = append(ids, id)
		keys = append(keys, key)
	}
	return ids, keys, rows.Err()
}

func (s *SQL) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *SQL) CohortVotes(ctx context.Context, cohortID string) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, cohort_id, voter_key, showcase_id, points
		FROM vote
		WHERE cohort_id = ?
		ORDER BY id
	`), cohortID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	var votes []models.Vote
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.CohortID, &v.VoterKey, &v.EntryID, &v.Points); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

func (s *SQL) CohortEntries(ctx context.Context, cohortID string) ([]models.Entry, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT s.id, s.user_id, s.deleted,
		       COALESCE((
		           SELECT SUM(v.points) FROM vote v
		           WHERE v.cohort_id = cs.cohort_id AND v.showcase_id = s.id
		       ), 0) AS score
		FROM cohort_showcase cs
		JOIN cohort c ON c.id = cs.cohort_id
		JOIN showcase s ON s.id = cs.showcase_id
		WHERE cs.cohort_id = ? AND NOT c.processed AND NOT s.deleted
		ORDER BY score DESC, s.id
	`), cohortID)
	if err != nil {
		return nil, fmt.Errorf("failed to query showcases: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		e := models.Entry{ActiveCohortID: cohortID}
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Deleted, &e.Score); err != nil {
			return nil, fmt.Errorf("failed to scan showcase: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQL) EligibleVoters(ctx context.Context) ([]models.Voter, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT u.id, u.voter_key
		FROM user_account u
		WHERE EXISTS (SELECT 1 FROM showcase s WHERE s.user_id = u.id)
		ORDER BY u.id
	`))
	if err != nil {
		return nil, fmt.Errorf("failed to query voters: %w", err)
	}
	defer rows.Close()

	var voters []models.Voter
	for rows.Next() {
		v := models.Voter{HasSubmitted: true}
		if err := rows.Scan(&v.ID, &v.Key); err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		voters = append(voters, v)
	}
	return voters, rows.Err()
}

func (s *SQL) EntriesNeedingCohort(ctx context.Context) ([]models.Entry, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT s.id, s.user_id
		FROM showcase s
		WHERE NOT s.deleted
		  AND NOT EXISTS (
		      SELECT 1
		      FROM cohort_showcase cs
		      JOIN cohort c ON c.id = cs.cohort_id
		      WHERE cs.showcase_id = s.id
		        AND (NOT c.processed OR cs.outcome = ?)
		  )
		ORDER BY s.id
	`), models.OutcomeLost)
	if err != nil {
		return nil, fmt.Errorf("failed to query showcases: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.ID, &e.OwnerID); err != nil {
			return nil, fmt.Errorf("failed to scan showcase: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CreateCohorts writes the whole call in one transaction.
func (s *SQL) CreateCohorts(ctx context.Context, cohorts []models.NewCohort) ([]string, error) {
	if err := checkBatch(len(cohorts)); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := s.now().UTC()
	ids := make([]string, len(cohorts))
	for i, nc := range cohorts {
		id := uuid.NewString()

		_, err := tx.ExecContext(ctx, s.rebind(`
			INSERT INTO cohort (id, starts_at, ends_at, created_at)
			VALUES (?, ?, ?, ?)
		`), id, nc.StartsAt.UTC(), nc.EndsAt.UTC(), createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert cohort: %w", err)
		}

		for pos, entryID := range nc.EntryIDs {
			_, err := tx.ExecContext(ctx, s.rebind(`
				INSERT INTO cohort_showcase (cohort_id, showcase_id, position, outcome)
				VALUES (?, ?, ?, ?)
			`), id, entryID, pos, models.OutcomePending)
			if err != nil {
				return nil, fmt.Errorf("failed to add showcase %s to cohort: %w", entryID, err)
			}
		}

		for _, voterID := range nc.VoterIDs {
			_, err := tx.ExecContext(ctx, s.rebind(`
				INSERT INTO cohort_voter (cohort_id, user_id)
				VALUES (?, ?)
			`), id, voterID)
			if err != nil {
				return nil, fmt.Errorf("failed to assign voter %s to cohort: %w", voterID, err)
			}
		}

		ids[i] = id
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return ids, nil
}

// UpdateCohorts writes the whole call in one transaction.
func (s *SQL) UpdateCohorts(ctx context.Context, results []models.CohortResult) error {
	if err := checkBatch(len(results)); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	processedAt := s.now().UTC()
	for _, r := range results {
		res, err := tx.ExecContext(ctx, s.rebind(`
			UPDATE cohort
			SET processed = TRUE, processed_at = ?
			WHERE id = ? AND NOT processed
		`), processedAt, r.CohortID)
		if err != nil {
			return fmt.Errorf("failed to mark cohort %s processed: %w", r.CohortID, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to mark cohort %s processed: %w", r.CohortID, err)
		}
		if n == 0 {
			return s.notUpdatable(ctx, tx, r.CohortID)
		}

		if err := s.setOutcome(ctx, tx, r.CohortID, r.WinnerIDs, models.OutcomeWon); err != nil {
			return err
		}
		if err := s.setOutcome(ctx, tx, r.CohortID, r.LoserIDs, models.OutcomeLost); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *SQL) setOutcome(ctx context.Context, tx *sql.Tx, cohortID string, showcaseIDs []string, outcome string) error {
	for _, id := range showcaseIDs {
		res, err := tx.ExecContext(ctx, s.rebind(`
			UPDATE cohort_showcase
			SET outcome = ?
			WHERE cohort_id = ? AND showcase_id = ?
		`), outcome, cohortID, id)
		if err != nil {
			return fmt.Errorf("failed to record %s showcase %s: %w", outcome, id, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("%w: %s is not in cohort %s", ErrUnknownEntry, id, cohortID)
		}
	}
	return nil
}

// notUpdatable explains why no cohort row was updated.
func (s *SQL) notUpdatable(ctx context.Context, tx *sql.Tx, cohortID string) error {
	var processed bool
	err := tx.QueryRowContext(ctx, s.rebind(`SELECT processed FROM cohort WHERE id = ?`), cohortID).Scan(&processed)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrUnknownCohort, cohortID)
	}
	if err != nil {
		return fmt.Errorf("failed to query cohort %s: %w", cohortID, err)
	}
	return fmt.Errorf("%w: %s", ErrAlreadyProcessed, cohortID)
}
