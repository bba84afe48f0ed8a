// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

The Config is built once in main and passed to every component that needs
it. Nothing else reads the environment.

# CLI Flags and Environment Variables

Flags fall back to environment variables, then to defaults:

	-p                PORT              5000
	-d                DATABASE_URL      data.db
	-t                DATABASE_TYPE     sqlite (or postgres)
	-pin              RESET_PIN         1234
	-secret           SECRET_KEY        replace-me
	-booking-url      BOOKING_URL       club reservation page
	-lat              WALTON_LAT        36.372
	-lon              WALTON_LON        -94.208
	-club-cookie      CLUB_COOKIE       (empty)
	-availability-url AVAILABILITY_URL  (empty: manual availability)
	-weather-url      WEATHER_URL       Open-Meteo forecast endpoint
	-public-url       PUBLIC_URL        (empty: request host)
	-mode             VOTING_MODE       time (or court)

CLI flags take precedence over environment variables. main loads a .env
file with godotenv before parsing, so .env values act as environment.

# Validation

ParseFlags returns an error for:

  - a non-numeric or out-of-range port
  - an unknown database type or voting mode
  - an unparseable or out-of-range coordinate
*/
package cliparse
