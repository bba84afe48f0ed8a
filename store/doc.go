// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides database/sql repositories for votes and availability.

# Votes

VoteStore keeps one row per voter. Identity is the lower-cased, trimmed
name, so "Alice" and " alice " are the same voter:

	votes := store.NewVoteStore(conn)
	_, err := votes.Upsert(ctx, models.Vote{Name: "Alice", Day: models.Saturday, Option: "9-10am"})
	all, err := votes.List(ctx)
	n, err := votes.DeleteAll(ctx)

Upsert is a single INSERT ... ON CONFLICT statement; a re-vote overwrites
day, option and timestamp. List returns votes in first-submission order.

# Availability

AvailabilityStore holds (day, court, slot) triples, deduplicated by a
unique constraint:

	avail := store.NewAvailabilityStore(conn)
	added, err := avail.Add(ctx, models.Saturday, "Court 1", "9:00-10:00")
	m, err := avail.ListDay(ctx, models.Saturday)
	n, err := avail.ReplaceDay(ctx, models.Saturday, m)
	n, err := avail.Clear(ctx, "")   // all days

ReplaceDay runs in one transaction: the day is emptied and refilled, or
left untouched on error.

# Errors

	ErrInvalidDay   - day is not Saturday or Sunday
	ErrInvalidCourt - court is not in models.AllCourts
	ErrEmptyName    - voter name is blank
*/
package store
