// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package availability supplies open court slots for a day.

# Providers

	provider := availability.New(cfg.AvailabilityURL, cfg.ClubCookie, availStore)
	if avail, ok := provider.ForDay(ctx, models.Saturday).Get(); ok {
		// avail["Court 1"] → []string{"9:00-10:00", ...}
	}

Manual reads the availability table, filled by the admin editor and by the
bookmarklet import. Scraper fetches the club's reservation page once per
court (with day and court query parameters and an optional session cookie)
and extracts slot labels with goquery.

A court whose page fails leaves an empty list; the rest still load.

# Slot Extraction

ExtractSlots looks for these elements first, preferring a data-time
attribute over element text:

	.slot, .time-slot, .slot-label, .reservation-time, time, [data-time]

When none produce a label, the page text is scanned for time ranges, which
are rendered as "h:mm[am|pm]-h:mm[am|pm]". Labels are normalized (whitespace
collapsed, AM/PM lower-cased, dashes tightened), deduplicated, and sorted.

# Court Matching

MatchCourt maps names from imported pages onto known labels:

	"court 3"               → "Court 3"
	"Indoor Court 5 (Hard)" → "Court 5"
	"Court 12"              → no match
*/
package availability
