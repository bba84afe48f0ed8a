// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strings"
	"time"
)

// Voting mode constants
const (
	ModeTime  = "time"
	ModeCourt = "court"
)

// Match kinds for court suggestions
const (
	MatchExact = "exact"
	MatchNear  = "near"
)

// Flash kinds
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// QuorumThreshold is the distinct-voter count at which booking becomes actionable.
const QuorumThreshold = 4

// Domain types

// Vote is one member's current choice. Name is the display name; identity
// is the lower-cased, trimmed form of it.
type Vote struct {
	Name      string    `json:"name"`
	Day       Day       `json:"day"`
	Option    string    `json:"option"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeName returns the identity key for a voter name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Window is a time range in minutes since midnight. A single time is a
// window with Start == End.
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Mid returns the floored midpoint minute.
func (w Window) Mid() int {
	return (w.Start + w.End) / 2
}

// Overlaps reports whether the two windows touch or intersect.
func (w Window) Overlaps(other Window) bool {
	return w.End >= other.Start && w.Start <= other.End
}

type Bucket struct {
	Day    Day      `json:"day"`
	Option string   `json:"option"`
	Window *Window  `json:"window,omitempty"`
	Court  string   `json:"court,omitempty"`
	Count  int      `json:"count"`
	Voters []string `json:"voters"`
}

type Tally struct {
	TotalVoters int      `json:"total_voters"`
	Buckets     []Bucket `json:"buckets"`
	Top         *Bucket  `json:"top,omitempty"`
	QuorumMet   bool     `json:"quorum_met"`
}

type Suggestion struct {
	Court   string `json:"court"`
	Slot    string `json:"slot"`
	Match   string `json:"match"`
	DiffMin int    `json:"diff_min"`
}

// AvailabilityMap maps a court label to its open slot labels in display order.
type AvailabilityMap map[string][]string

type DayForecast struct {
	Day        Day     `json:"day"`
	Date       string  `json:"date"`
	Code       int     `json:"code"`
	TempMax    float64 `json:"temp_max"`
	TempMin    float64 `json:"temp_min"`
	PrecipProb int     `json:"precip_prob"`
	Icon       Icon    `json:"icon"`
}

// Request types

type IngestRequest struct {
	Day    string              `json:"day" validate:"required"`
	Courts map[string][]string `json:"courts" validate:"required"`
}

// Response types

type IngestResponse struct {
	Day      Day            `json:"day"`
	Imported int            `json:"imported"`
	Courts   map[string]int `json:"courts"`
	Skipped  []string       `json:"skipped"`
}

type ResultsResponse struct {
	Mode               string               `json:"mode"`
	Tally              Tally                `json:"tally"`
	ChosenDay          Day                  `json:"chosen_day"`
	Suggestion         *Suggestion          `json:"suggestion,omitempty"`
	Weather            map[Day]*DayForecast `json:"weather"`
	Availability       AvailabilityMap      `json:"availability"`
	// AvailabilityLoaded is false when the lookup failed, as opposed to
	// succeeding with no open slots.
	AvailabilityLoaded bool                 `json:"availability_loaded"`
	Votes              []Vote               `json:"votes"`
	Booking            *BookingTarget       `json:"booking,omitempty"`
}

// BookingTarget is the day/court pair the results page offers to book.
type BookingTarget struct {
	Day   Day    `json:"day"`
	Court string `json:"court"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
