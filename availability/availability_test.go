// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/courtcaptain/models"
)

func TestMatchCourt(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"Court 1", "Court 1", true},
		{"court 3", "Court 3", true},
		{"  OUTDOOR   b ", "Outdoor B", true},
		{"Indoor Court 5 (Hard)", "Court 5", true},
		{"Tennis - Court 7", "Court 7", true},
		{"Outdoor A Lights", "Outdoor A", true},
		{"Court 12", "", false},
		{"Court 1 / Court 12", "Court 1", true},
		{"outdoor", "Outdoor A", true},
		{"Other", "Other", true},
		{"Pickleball", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := MatchCourt(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSlot(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"9:00 AM - 10:00 AM", "9:00 am-10:00 am", true},
		{"  9:00\n\t–  10:00 ", "9:00-10:00", true},
		{"6PM—7PM", "6pm-7pm", true},
		{"Booked", "", false},
		{"   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := NormalizeSlot(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSlots(t *testing.T) {
	got := NormalizeSlots([]string{"9:00 - 10:00", "8:00-9:00", "9:00-10:00", "full"})
	assert.Equal(t, []string{"8:00-9:00", "9:00-10:00"}, got)
}

type fakeLister struct {
	avail models.AvailabilityMap
	err   error
}

func (f fakeLister) ListDay(ctx context.Context, day models.Day) (models.AvailabilityMap, error) {
	return f.avail, f.err
}

func TestManual(t *testing.T) {
	m := NewManual(fakeLister{avail: models.AvailabilityMap{"Court 1": {"9:00-10:00"}}})
	got, ok := m.ForDay(context.Background(), models.Saturday).Get()
	require.True(t, ok)
	assert.Equal(t, []string{"9:00-10:00"}, got["Court 1"])

	failing := NewManual(fakeLister{err: errors.New("disk on fire")})
	assert.False(t, failing.ForDay(context.Background(), models.Saturday).Present())
}

func TestNewPicksProvider(t *testing.T) {
	_, isManual := New("", "", fakeLister{}).(*Manual)
	assert.True(t, isManual)

	_, isScraper := New("https://club.example.com/reserve", "c=1", fakeLister{}).(*Scraper)
	assert.True(t, isScraper)
}
