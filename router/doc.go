// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for CourtCaptain.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

It also builds the outbound sources from cfg: the Open-Meteo client and
either the reservation-site scraper (AVAILABILITY_URL set) or the manual
availability store.

# Endpoints

Health:

	GET /health → {"ok":true}

Voting:

	GET  /  - Vote form
	POST /  - Submit or replace a vote

Results:

	GET  /results     - Dashboard
	GET  /api/results - Same data as JSON
	POST /book        - Redirect to the booking site

Admin (PIN-gated where it deletes):

	POST /reset                    - Confirm page
	POST /confirm-reset            - Delete all votes
	GET  /admin/availability       - Manual editor
	POST /admin/availability       - Add slots
	POST /admin/availability/clear - Delete slots
	GET  /admin/bookmarklet        - Importer script

Import (CORS enabled):

	POST    /ingest/availability
	OPTIONS /ingest/availability
*/
package router
