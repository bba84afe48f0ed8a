// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "slices"

// Day is one of the two bookable weekend days.
type Day string

const (
	Saturday Day = "Saturday"
	Sunday   Day = "Sunday"
)

// Days lists the bookable days in tie-break order.
var Days = []Day{Saturday, Sunday}

// ParseDay returns the Day for s if it is one of Days.
func ParseDay(s string) (Day, bool) {
	for _, d := range Days {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// ValidDay reports whether s names a bookable day.
func ValidDay(s string) bool {
	_, ok := ParseDay(s)
	return ok
}

// PreferredCourts always outrank the rest, in this order.
var PreferredCourts = []string{"Court 1", "Court 2", "Court 3", "Court 4"}

// AllCourts is every bookable court label in declaration order.
var AllCourts = []string{
	"Court 1", "Court 2", "Court 3", "Court 4",
	"Court 5", "Court 6", "Court 7",
	"Outdoor A", "Outdoor B", "Other",
}

// OtherCourts returns AllCourts minus the preferred ones, order preserved.
func OtherCourts() []string {
	out := make([]string, 0, len(AllCourts)-len(PreferredCourts))
	for _, c := range AllCourts {
		if !IsPreferred(c) {
			out = append(out, c)
		}
	}
	return out
}

func ValidCourt(court string) bool {
	return slices.Contains(AllCourts, court)
}

func IsPreferred(court string) bool {
	return slices.Contains(PreferredCourts, court)
}

// PreferenceRank orders courts for tie-breaking: lower is better. Preferred
// courts rank by their position; all others rank 100 + position in AllCourts.
func PreferenceRank(court string) int {
	if i := slices.Index(PreferredCourts, court); i >= 0 {
		return i
	}
	if i := slices.Index(AllCourts, court); i >= 0 {
		return 100 + i
	}
	return 100 + len(AllCourts)
}
