// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/courtcaptain/models"
)

type VoteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewVoteStore(db *sql.DB) *VoteStore {
	return &VoteStore{db: db, now: time.Now}
}

// Upsert inserts the vote or replaces the voter's existing one. Identity is
// the normalized name; day, choice, display name and updated_at are all
// overwritten. created_at keeps the first submission time.
func (s *VoteStore) Upsert(ctx context.Context, vote models.Vote) (models.Vote, error) {
	key := models.NormalizeName(vote.Name)
	if key == "" {
		return models.Vote{}, ErrEmptyName
	}
	if !models.ValidDay(string(vote.Day)) {
		return models.Vote{}, ErrInvalidDay
	}

	now := s.now()
	stamp := formatTime(now)
	name := strings.TrimSpace(vote.Name)
	choice := strings.TrimSpace(vote.Option)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO votes (name_key, name, day, choice, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name_key) DO UPDATE SET
			name = excluded.name,
			day = excluded.day,
			choice = excluded.choice,
			updated_at = excluded.updated_at
	`, key, name, string(vote.Day), choice, stamp, stamp)
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to upsert vote: %w", err)
	}

	return models.Vote{Name: name, Day: vote.Day, Option: choice, UpdatedAt: now.UTC()}, nil
}

// List returns all votes in first-submission order.
func (s *VoteStore) List(ctx context.Context) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, day, choice, updated_at
		FROM votes
		ORDER BY created_at, name_key
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		var day, updated string
		if err := rows.Scan(&v.Name, &day, &v.Option, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		v.Day = models.Day(day)
		v.UpdatedAt = parseTime(updated)
		votes = append(votes, v)
	}

	return votes, rows.Err()
}

func (s *VoteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return n, nil
}

// DeleteAll removes every vote and returns how many were removed.
func (s *VoteStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM votes`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete votes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted votes: %w", err)
	}
	return n, nil
}
