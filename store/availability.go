// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/danielhkuo/courtcaptain/auth"
	"github.com/danielhkuo/courtcaptain/models"
	"github.com/danielhkuo/courtcaptain/tally"
)

type AvailabilityStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewAvailabilityStore(db *sql.DB) *AvailabilityStore {
	return &AvailabilityStore{db: db, now: time.Now}
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Add records one open slot. It reports false when the triple already exists.
func (s *AvailabilityStore) Add(ctx context.Context, day models.Day, court, slot string) (bool, error) {
	if !models.ValidDay(string(day)) {
		return false, ErrInvalidDay
	}
	if !models.ValidCourt(court) {
		return false, ErrInvalidCourt
	}
	return s.insert(ctx, s.db, day, court, slot)
}

func (s *AvailabilityStore) insert(ctx context.Context, ex execer, day models.Day, court, slot string) (bool, error) {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return false, nil
	}

	id, err := auth.GenerateID(12)
	if err != nil {
		return false, err
	}

	res, err := ex.ExecContext(ctx, `
		INSERT INTO availability (id, day, court, slot, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (day, court, slot) DO NOTHING
	`, id, string(day), court, slot, formatTime(s.now()))
	if err != nil {
		return false, fmt.Errorf("failed to insert availability: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}
	return n > 0, nil
}

// ListDay returns the day's slots per court. Slots are ordered by parsed
// start time with unparseable labels last.
func (s *AvailabilityStore) ListDay(ctx context.Context, day models.Day) (models.AvailabilityMap, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT court, slot FROM availability WHERE day = $1
	`, string(day))
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	defer rows.Close()

	avail := models.AvailabilityMap{}
	for rows.Next() {
		var court, slot string
		if err := rows.Scan(&court, &slot); err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		avail[court] = append(avail[court], slot)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for court := range avail {
		SortSlots(avail[court])
	}
	return avail, nil
}

// ReplaceDay atomically swaps the day's availability for the given map.
// Courts must already be canonical labels. Returns the rows inserted.
func (s *AvailabilityStore) ReplaceDay(ctx context.Context, day models.Day, avail models.AvailabilityMap) (int, error) {
	if !models.ValidDay(string(day)) {
		return 0, ErrInvalidDay
	}
	for court := range avail {
		if !models.ValidCourt(court) {
			return 0, fmt.Errorf("%w: %s", ErrInvalidCourt, court)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM availability WHERE day = $1`, string(day)); err != nil {
		return 0, fmt.Errorf("failed to clear day: %w", err)
	}

	inserted := 0
	for _, court := range models.AllCourts {
		for _, slot := range avail[court] {
			added, err := s.insert(ctx, tx, day, court, slot)
			if err != nil {
				return 0, err
			}
			if added {
				inserted++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit availability: %w", err)
	}
	return inserted, nil
}

// Clear deletes the day's availability, or everything when day is empty.
func (s *AvailabilityStore) Clear(ctx context.Context, day models.Day) (int64, error) {
	var res sql.Result
	var err error
	if day == "" {
		res, err = s.db.ExecContext(ctx, `DELETE FROM availability`)
	} else {
		if !models.ValidDay(string(day)) {
			return 0, ErrInvalidDay
		}
		res, err = s.db.ExecContext(ctx, `DELETE FROM availability WHERE day = $1`, string(day))
	}
	if err != nil {
		return 0, fmt.Errorf("failed to clear availability: %w", err)
	}
	return res.RowsAffected()
}

// SortSlots orders slot labels by start time, then label.
func SortSlots(slots []string) {
	sort.SliceStable(slots, func(i, j int) bool {
		wi, oki := tally.ParseWindow(slots[i])
		wj, okj := tally.ParseWindow(slots[j])

		// 1. Parseable before unparseable
		if oki != okj {
			return oki
		}

		// 2. Earlier start first
		if oki && wi.Start != wj.Start {
			return wi.Start < wj.Start
		}

		// 3. Label
		return slots[i] < slots[j]
	})
}
