// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the CourtCaptain server.

CourtCaptain collects weekend court-time votes from a group, picks the
majority (day, time) or (day, court), suggests an open court, shows the
weekend forecast, and hands off to the club's booking page.

# Starting the Server

Every setting has a default, so a bare start uses a local SQLite file:

	go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..." -mode court

A .env file in the working directory is loaded when present.

# Configuration

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: data.db)
  - RESET_PIN (-pin): PIN for clearing votes and availability
  - SECRET_KEY (-secret): Key for signed flash cookies
  - BOOKING_URL (-booking-url): External booking page
  - WALTON_LAT, WALTON_LON (-lat, -lon): Forecast location
  - VOTING_MODE (-mode): time or court (default: time)
  - AVAILABILITY_URL, CLUB_COOKIE: Scrape the reservation site instead of
    using manually entered availability
  - WEATHER_URL, PUBLIC_URL: Forecast endpoint and bookmarklet base URL

# Architecture

  - handlers: HTTP request handlers (voting, results, booking, admin, ingest)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request logging, CORS, JSON helpers
  - views: Embedded HTML templates
  - tally: Time parsing, ranking, court suggestion
  - store: Vote and availability repositories
  - weather, availability: Outbound lookups that degrade to empty results
  - outbound: Circuit breaker and retry wrapper for HTTP GETs
  - models: Domain and request/response types
  - auth: PIN checks and signed flash cookies
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
