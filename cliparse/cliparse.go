// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Defaults
const (
	DefaultPort         = 5000
	DefaultDatabaseURL  = "data.db"
	DefaultDatabaseType = "sqlite"
	DefaultResetPIN     = "1234"
	DefaultSecretKey    = "replace-me"
	DefaultBookingURL   = "https://walmart.clubautomation.com/event/reserve-court-new"
	DefaultLatitude     = 36.372
	DefaultLongitude    = -94.208
	DefaultVotingMode   = "time"
	DefaultWeatherURL   = "https://api.open-meteo.com/v1/forecast"
)

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	ResetPIN        string
	SecretKey       string
	BookingURL      string
	Latitude        float64
	Longitude       float64
	ClubCookie      string
	AvailabilityURL string
	VotingMode      string
	WeatherURL      string
	PublicURL       string
}

// ParseFlags reads flags, falls back to environment variables, then to
// defaults. Every setting has a default so an empty environment is valid.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var lat, lon string

	fs := flag.NewFlagSet("courtcaptain", flag.ContinueOnError)

	// Network and storage
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.ResetPIN, "pin", "", "Admin reset PIN (prefer env)")
	fs.StringVar(&cfg.SecretKey, "secret", "", "Session secret for signed cookies (prefer env)")
	fs.StringVar(&cfg.ClubCookie, "club-cookie", "", "Session cookie for the reservation site (prefer env)")

	// External services
	fs.StringVar(&cfg.BookingURL, "booking-url", "", "External booking URL")
	fs.StringVar(&cfg.AvailabilityURL, "availability-url", "", "Reservation page to scrape (manual availability when empty)")
	fs.StringVar(&cfg.WeatherURL, "weather-url", "", "Forecast API endpoint")
	fs.StringVar(&lat, "lat", "", "Weather latitude")
	fs.StringVar(&lon, "lon", "", "Weather longitude")
	fs.StringVar(&cfg.PublicURL, "public-url", "", "Public base URL used by the bookmarklet")

	fs.StringVar(&cfg.VotingMode, "mode", "", "Voting mode (time or court)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	cfg.DatabaseURL = fallback(cfg.DatabaseURL, "DATABASE_URL", DefaultDatabaseURL)
	cfg.DatabaseType = strings.ToLower(fallback(cfg.DatabaseType, "DATABASE_TYPE", DefaultDatabaseType))
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported DATABASE_TYPE %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	cfg.ResetPIN = fallback(cfg.ResetPIN, "RESET_PIN", DefaultResetPIN)
	cfg.SecretKey = fallback(cfg.SecretKey, "SECRET_KEY", DefaultSecretKey)
	cfg.ClubCookie = fallback(cfg.ClubCookie, "CLUB_COOKIE", "")

	cfg.BookingURL = fallback(cfg.BookingURL, "BOOKING_URL", DefaultBookingURL)
	cfg.AvailabilityURL = fallback(cfg.AvailabilityURL, "AVAILABILITY_URL", "")
	cfg.WeatherURL = fallback(cfg.WeatherURL, "WEATHER_URL", DefaultWeatherURL)
	cfg.PublicURL = strings.TrimRight(fallback(cfg.PublicURL, "PUBLIC_URL", ""), "/")

	var err error
	if cfg.Latitude, err = parseCoord(fallback(lat, "WALTON_LAT", ""), DefaultLatitude, 90); err != nil {
		return Config{}, fmt.Errorf("invalid latitude: %w", err)
	}
	if cfg.Longitude, err = parseCoord(fallback(lon, "WALTON_LON", ""), DefaultLongitude, 180); err != nil {
		return Config{}, fmt.Errorf("invalid longitude: %w", err)
	}

	cfg.VotingMode = strings.ToLower(fallback(cfg.VotingMode, "VOTING_MODE", DefaultVotingMode))
	if cfg.VotingMode != "time" && cfg.VotingMode != "court" {
		return Config{}, fmt.Errorf("unsupported VOTING_MODE %q (use time or court)", cfg.VotingMode)
	}

	return cfg, nil
}

// fallback returns flagVal if set, else the env var, else def.
func fallback(flagVal, envKey, def string) string {
	if flagVal != "" {
		return flagVal
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return def
}

func parseCoord(s string, def, limit float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("%v outside ±%v", v, limit)
	}
	return v, nil
}
