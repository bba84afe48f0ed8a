// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"time"
)

var (
	ErrInvalidDay   = errors.New("invalid day")
	ErrInvalidCourt = errors.New("invalid court")
	ErrEmptyName    = errors.New("name required")
)

// timeLayout is fixed-width so stored values sort in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
