// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally aggregates votes, ranks the results, and suggests a court.

Everything here is a pure function of its inputs. Handlers load votes and
availability, then call into this package.

# Time Windows

ParseWindow turns free text into minutes since midnight:

	"9-10am"      → (540, 600)
	"9:30–10:30"  → (570, 630)
	"9am"         → (540, 540)
	"12pm-1pm"    → (720, 780)
	"whenever"    → not parsed

Each endpoint uses its own am/pm suffix. An endpoint without one is read as
a 24-hour hour.

# Ranking

Compute groups votes into buckets keyed by (day, window) in time mode or
(day, court) in court mode, then ranks them:

 1. Higher vote count
 2. Lower court preference rank (court mode only)
 3. Saturday before Sunday
 4. First-seen order

Votes whose option cannot be bucketed still count toward TotalVoters.
QuorumMet is true once TotalVoters reaches models.QuorumThreshold.

# Court Suggestion

Suggest searches availability in four passes (preferred overlapping, other
overlapping, preferred nearest, other nearest) and returns the first hit.
Overlapping passes yield MatchExact, the others MatchNear.
*/
package tally
