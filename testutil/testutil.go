// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/courtcaptain/cliparse"
	"github.com/danielhkuo/courtcaptain/db"
	"github.com/danielhkuo/courtcaptain/models"
	"github.com/danielhkuo/courtcaptain/store"
)

// TestPIN is the reset PIN in GetTestConfig
const TestPIN = "4321"

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The file lives in t.TempDir and is removed after the test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY in tests
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CaptureLogs sends the default slog logger to a buffer for the rest of the
// test and restores the previous logger afterwards.
func CaptureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

// LogLine returns the first captured line containing msg, or "".
func LogLine(buf *bytes.Buffer, msg string) string {
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, msg) {
			return line
		}
	}
	return ""
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  "test.db",
		DatabaseType: db.TypeSQLite,
		ResetPIN:     TestPIN,
		SecretKey:    "test-secret",
		BookingURL:   "https://booking.example.com/reserve",
		Latitude:     36.372,
		Longitude:    -94.208,
		VotingMode:   models.ModeTime,
		WeatherURL:   "http://127.0.0.1:0/forecast",
	}
}

// SeedVote stores a vote through the real repository
func SeedVote(t *testing.T, conn *sql.DB, name string, day models.Day, option string) {
	t.Helper()

	_, err := store.NewVoteStore(conn).Upsert(context.Background(), models.Vote{Name: name, Day: day, Option: option})
	if err != nil {
		t.Fatalf("Failed to seed vote: %v", err)
	}
}

// SeedAvailability stores slots for one court on one day
func SeedAvailability(t *testing.T, conn *sql.DB, day models.Day, court string, slots ...string) {
	t.Helper()

	avail := store.NewAvailabilityStore(conn)
	for _, slot := range slots {
		if _, err := avail.Add(context.Background(), day, court, slot); err != nil {
			t.Fatalf("Failed to seed availability: %v", err)
		}
	}
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request with an optional JSON body
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a URL-encoded form POST
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// StubWeather returns fixed forecasts. Missing days are absent.
type StubWeather struct {
	Forecasts map[models.Day]models.DayForecast
}

func (s StubWeather) Weekend(ctx context.Context) map[models.Day]models.Optional[models.DayForecast] {
	out := make(map[models.Day]models.Optional[models.DayForecast], len(models.Days))
	for _, d := range models.Days {
		if f, ok := s.Forecasts[d]; ok {
			out[d] = models.Some(f)
		} else {
			out[d] = models.None[models.DayForecast]()
		}
	}
	return out
}

// StubAvailability returns fixed availability. Missing days are absent.
type StubAvailability struct {
	Days map[models.Day]models.AvailabilityMap
}

func (s StubAvailability) ForDay(ctx context.Context, day models.Day) models.Optional[models.AvailabilityMap] {
	if m, ok := s.Days[day]; ok {
		return models.Some(m)
	}
	return models.None[models.AvailabilityMap]()
}
