// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for CourtCaptain.

# Handler Types

Each handler is a struct built from the database and config:

  - VotingHandler: Vote form and submission
  - ResultsHandler: Tally, weather, availability and suggestion
  - BookingHandler: Redirect to the external booking page
  - AdminHandler: Vote reset and the availability editor
  - IngestHandler: JSON availability import from the bookmarklet

ResultsHandler also takes a weather.Source and an availability.Provider so
tests can substitute fixed data:

	results := handlers.NewResultsHandler(db, cfg, wx, avail)

# Forms and Flash Messages

Form posts redirect with 303 and a signed flash cookie that the next page
shows once. An invalid vote re-renders the form with status 400 and keeps
what was typed.

# Voting Modes

In time mode the option is free text ("9-10am") and the winner gets a
suggested court from the day's availability. In court mode the option must
be a known court and the winner is booked directly. Booking is offered once
models.QuorumThreshold distinct members have voted.

# Import

POST /ingest/availability takes

	{"day": "Saturday", "courts": {"Court 1": ["9:00-10:00"]}}

Court names are matched loosely against the known courts. Unknown names
are reported in "skipped". When nothing matches the request fails with 422
and stored availability is untouched; otherwise the day is replaced.
*/
package handlers
