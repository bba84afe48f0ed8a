// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import "github.com/danielhkuo/courtcaptain/models"

type pass struct {
	courts  []string
	overlap bool
}

// Suggest picks the court and slot closest to want. Passes run in order and
// the first that finds anything wins:
//
//  1. preferred courts, slot must overlap want
//  2. other courts, slot must overlap want
//  3. preferred courts, nearest midpoint
//  4. other courts, nearest midpoint
//
// Within a pass the smallest midpoint distance wins; on a tie the first
// candidate found is kept.
func Suggest(want models.Window, avail models.AvailabilityMap) models.Optional[models.Suggestion] {
	passes := []pass{
		{courts: models.PreferredCourts, overlap: true},
		{courts: models.OtherCourts(), overlap: true},
		{courts: models.PreferredCourts, overlap: false},
		{courts: models.OtherCourts(), overlap: false},
	}

	for _, p := range passes {
		if found, ok := scan(want, avail, p); ok {
			return models.Some(found)
		}
	}

	return models.None[models.Suggestion]()
}

func scan(want models.Window, avail models.AvailabilityMap, p pass) (models.Suggestion, bool) {
	target := want.Mid()
	match := models.MatchNear
	if p.overlap {
		match = models.MatchExact
	}

	var best models.Suggestion
	found := false
	for _, court := range p.courts {
		for _, slot := range avail[court] {
			sw, ok := ParseWindow(slot)
			if !ok {
				continue
			}
			if p.overlap && !sw.Overlaps(want) {
				continue
			}

			diff := abs(sw.Mid() - target)
			if !found || diff < best.DiffMin {
				best = models.Suggestion{Court: court, Slot: slot, Match: match, DiffMin: diff}
				found = true
			}
		}
	}

	return best, found
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
