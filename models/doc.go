// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for CourtCaptain.

# Days and Courts

The two bookable days, in tie-break order:

	Saturday, Sunday

Courts are a fixed list. The first four are preferred:

	Court 1, Court 2, Court 3, Court 4      (preferred)
	Court 5, Court 6, Court 7, Outdoor A, Outdoor B, Other

PreferenceRank gives preferred courts their index (0-3) and every other
court 100 plus its index in AllCourts, so any preferred court outranks any
other one.

# Domain Types

  - Vote: one member's current (day, option) choice
  - Window: a time range in minutes since midnight
  - Bucket: votes aggregated by (day, option)
  - Tally: ranked buckets, top bucket, voter count, quorum flag
  - Suggestion: a concrete court and slot for the winning window
  - DayForecast: weather for one day with an Icon category
  - AvailabilityMap: court label to open slot labels

# Optional Values

External lookups return Optional[T] instead of an error:

	wx := client.Weekend(ctx)
	if f, ok := wx[models.Saturday].Get(); ok {
		// render forecast
	}

# Constants

Voting modes:

	ModeTime  = "time"
	ModeCourt = "court"

Suggestion match kinds:

	MatchExact = "exact"
	MatchNear  = "near"

Quorum:

	QuorumThreshold = 4
*/
package models
