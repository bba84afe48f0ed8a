// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package availability

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/danielhkuo/courtcaptain/models"
)

// Provider supplies open slots per court for a day. An absent result means
// the source could not be read at all.
type Provider interface {
	ForDay(ctx context.Context, day models.Day) models.Optional[models.AvailabilityMap]
}

// DayLister is the subset of the availability store the manual provider needs.
type DayLister interface {
	ListDay(ctx context.Context, day models.Day) (models.AvailabilityMap, error)
}

// Manual reads admin-entered and imported availability from the store.
type Manual struct {
	store DayLister
}

func NewManual(store DayLister) *Manual {
	return &Manual{store: store}
}

func (m *Manual) ForDay(ctx context.Context, day models.Day) models.Optional[models.AvailabilityMap] {
	avail, err := m.store.ListDay(ctx, day)
	if err != nil {
		slog.Error("failed to load availability", "day", day, "error", err)
		return models.None[models.AvailabilityMap]()
	}
	return models.Some(avail)
}

var (
	whitespace = regexp.MustCompile(`\s+`)
	dashes     = regexp.MustCompile(`\s*[-–—]\s*`)
	digit      = regexp.MustCompile(`\d`)
)

// NormalizeSlot collapses whitespace, lower-cases AM/PM, and tightens dashes:
// "9:00 AM – 10:00 AM" becomes "9:00 am-10:00 am". Labels without a digit
// are rejected.
func NormalizeSlot(s string) (string, bool) {
	s = strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
	s = strings.NewReplacer("AM", "am", "PM", "pm").Replace(s)
	s = dashes.ReplaceAllString(s, "-")
	if s == "" || !digit.MatchString(s) {
		return "", false
	}
	return s, true
}

// NormalizeSlots normalizes, dedupes, and sorts a slot list.
func NormalizeSlots(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		s, ok := NormalizeSlot(r)
		if !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// MatchCourt maps a free-form court name onto a known label. An exact
// case-insensitive match wins; otherwise the longest known label contained
// in the name; otherwise the first known label that contains the name.
func MatchCourt(name string) (string, bool) {
	n := strings.ToLower(strings.TrimSpace(whitespace.ReplaceAllString(name, " ")))
	if n == "" {
		return "", false
	}

	for _, c := range models.AllCourts {
		if strings.ToLower(c) == n {
			return c, true
		}
	}

	best := ""
	for _, c := range models.AllCourts {
		lc := strings.ToLower(c)
		if strings.Contains(n, lc) && !containsLongerDigit(n, lc) && len(c) > len(best) {
			best = c
		}
	}
	if best != "" {
		return best, true
	}

	for _, c := range models.AllCourts {
		if strings.Contains(strings.ToLower(c), n) {
			return c, true
		}
	}

	return "", false
}

// containsLongerDigit reports whether every occurrence of label in name is
// followed by another digit, as "court 1" inside "court 12".
func containsLongerDigit(name, label string) bool {
	if label == "" || !isDigit(label[len(label)-1]) {
		return false
	}
	for i := 0; ; {
		j := strings.Index(name[i:], label)
		if j < 0 {
			return true
		}
		end := i + j + len(label)
		if end >= len(name) || !isDigit(name[end]) {
			return false
		}
		i = i + j + 1
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// New returns the scraper when a reservation URL is configured and the
// manual store otherwise.
func New(reservationURL, cookie string, store DayLister) Provider {
	if reservationURL != "" {
		return NewScraper(reservationURL, cookie)
	}
	return NewManual(store)
}
