// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/danielhkuo/courtcaptain/models"
)

// RangePattern matches "9-10am", "9:30–10:30", "930 - 1030pm" and similar.
// Groups: start hour, start minute, start suffix, end hour, end minute, end suffix.
var RangePattern = regexp.MustCompile(`\b(\d{1,2})(?::?(\d{2}))?\s*(am|pm|AM|PM)?\s*[-–—]\s*(\d{1,2})(?::?(\d{2}))?\s*(am|pm|AM|PM)?\b`)

var singlePattern = regexp.MustCompile(`\b(\d{1,2})(?::?(\d{2}))?\s*(am|pm|AM|PM)?\b`)

// ParseWindow parses free text into a window of minutes since midnight.
// A range is tried first; a lone time collapses to Start == End. Each
// endpoint's am/pm suffix applies only to that endpoint.
func ParseWindow(text string) (models.Window, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Window{}, false
	}

	if m := RangePattern.FindStringSubmatch(text); m != nil {
		start := toMinutes(m[1], m[2], m[3])
		end := toMinutes(m[4], m[5], m[6])
		return models.Window{Start: start, End: end}, true
	}

	if m := singlePattern.FindStringSubmatch(text); m != nil {
		t := toMinutes(m[1], m[2], m[3])
		return models.Window{Start: t, End: t}, true
	}

	return models.Window{}, false
}

// toMinutes converts regex groups to minutes. Digits are guaranteed by the
// pattern so conversion errors cannot occur.
func toMinutes(hour, minute, suffix string) int {
	h, _ := strconv.Atoi(hour)
	m := 0
	if minute != "" {
		m, _ = strconv.Atoi(minute)
	}

	switch strings.ToLower(suffix) {
	case "pm":
		if h != 12 {
			h += 12
		}
	case "am":
		if h == 12 {
			h = 0
		}
	}

	return h*60 + m
}

// FormatRange renders regex range groups as "h:mm[am|pm]-h:mm[am|pm]",
// keeping whatever suffix each endpoint carried.
func FormatRange(groups []string) string {
	left := formatEndpoint(groups[1], groups[2], groups[3])
	right := formatEndpoint(groups[4], groups[5], groups[6])
	return left + "-" + right
}

func formatEndpoint(hour, minute, suffix string) string {
	if minute == "" {
		minute = "00"
	}
	return fmt.Sprintf("%s:%s%s", hour, minute, strings.ToLower(suffix))
}

// FormatMinutes renders minutes since midnight as "9:30am".
func FormatMinutes(total int) string {
	h, m := total/60, total%60
	suffix := "am"
	if h >= 12 {
		suffix = "pm"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d%s", h, m, suffix)
}

// FormatWindow renders a window for display, collapsing points to one time.
func FormatWindow(w models.Window) string {
	if w.Start == w.End {
		return FormatMinutes(w.Start)
	}
	return FormatMinutes(w.Start) + "-" + FormatMinutes(w.End)
}
