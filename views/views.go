// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/courtcaptain/auth"
	"github.com/danielhkuo/courtcaptain/models"
	"github.com/danielhkuo/courtcaptain/tally"
)

// Page names
const (
	PageVote         = "vote.html"
	PageResults      = "results.html"
	PageConfirmReset = "confirm_reset.html"
	PageAvailability = "availability.html"
	PageBookmarklet  = "bookmarklet.html"
)

//go:embed templates/*.html
var files embed.FS

var pages = map[string]*template.Template{}

var funcs = template.FuncMap{
	"emoji":       func(i models.Icon) string { return i.Emoji() },
	"humanTime":   humanTime,
	"join":        func(items []string, sep string) string { return strings.Join(items, sep) },
	"isPreferred": models.IsPreferred,
	"plural":      english.Plural,
	"window": func(w *models.Window) string {
		if w == nil {
			return ""
		}
		return tally.FormatWindow(*w)
	},
}

func init() {
	for _, name := range []string{PageVote, PageResults, PageConfirmReset, PageAvailability, PageBookmarklet} {
		pages[name] = template.Must(template.New("layout.html").Funcs(funcs).
			ParseFS(files, "templates/layout.html", "templates/"+name))
	}
}

// Page is the data every template receives. Body holds the page-specific
// view model.
type Page struct {
	Title string
	Flash *auth.Flash
	Body  any
}

// Render executes the named page inside the layout and writes it with the
// given status. Output is buffered so a template failure yields a clean 500.
func Render(w http.ResponseWriter, status int, page string, data Page) error {
	tpl, ok := pages[page]
	if !ok {
		http.Error(w, "Unknown page", http.StatusInternalServerError)
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("failed to render template", "page", page, "error", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func humanTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

// VoteForm backs the vote page. Name, Day and Option echo a rejected
// submission back into the form.
type VoteForm struct {
	Mode   string
	Days   []models.Day
	Courts []string
	Name   string
	Day    string
	Option string
}

// NewVoteForm returns an empty form for the voting mode.
func NewVoteForm(mode string) VoteForm {
	return VoteForm{Mode: mode, Days: models.Days, Courts: models.AllCourts}
}

// DayWeather pairs a day with its forecast, nil when unavailable.
type DayWeather struct {
	Day      models.Day
	Forecast *models.DayForecast
}

// Results backs the dashboard.
type Results struct {
	models.ResultsResponse
	Forecasts []DayWeather
	Courts    []string
	Needed    int
}

// NewResults flattens the results payload into template-friendly rows.
func NewResults(resp models.ResultsResponse) Results {
	r := Results{ResultsResponse: resp, Courts: models.AllCourts}
	for _, d := range models.Days {
		r.Forecasts = append(r.Forecasts, DayWeather{Day: d, Forecast: resp.Weather[d]})
	}
	if n := models.QuorumThreshold - resp.Tally.TotalVoters; n > 0 {
		r.Needed = n
	}
	return r
}

// ResetConfirm backs the PIN prompt shown before clearing votes.
type ResetConfirm struct {
	VoteCount int
}

// AvailabilityEditor backs the manual availability page.
type AvailabilityEditor struct {
	Day          models.Day
	Days         []models.Day
	Courts       []string
	Availability models.AvailabilityMap
	Scraping     bool
}

// Bookmarklet backs the importer page.
type Bookmarklet struct {
	IngestURL string
	Script    string
	Href      template.URL
}

// NewBookmarklet builds the importer for the given ingest endpoint.
func NewBookmarklet(ingestURL string) Bookmarklet {
	script := BookmarkletScript(ingestURL)
	return Bookmarklet{
		IngestURL: ingestURL,
		Script:    script,
		Href:      template.URL("javascript:" + script),
	}
}
