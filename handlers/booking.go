// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/danielhkuo/courtcaptain/cliparse"
	"github.com/danielhkuo/courtcaptain/models"
	"github.com/danielhkuo/courtcaptain/store"
)

type BookingHandler struct {
	cfg cliparse.Config
}

func NewBookingHandler(cfg cliparse.Config) *BookingHandler {
	return &BookingHandler{cfg: cfg}
}

// Book handles POST /book
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		redirectWithFlash(w, r, h.cfg, models.FlashError, "Invalid booking selection.", "/results")
		return
	}

	day := formValue(r, "day")
	court := formValue(r, "court")

	target, err := BookingURL(h.cfg.BookingURL, day, court)
	if err != nil {
		reqLog(r).Warn("booking rejected", "day", day, "court", court, "error", err)
		redirectWithFlash(w, r, h.cfg, models.FlashError, "Invalid booking selection.", "/results")
		return
	}

	slog.Info("booking handoff", "day", day, "court", court)

	http.Redirect(w, r, target, http.StatusFound)
}

// BookingURL appends day and court query parameters to base, using "&"
// when base already carries a query string. Spaces are sent as %20.
func BookingURL(base, day, court string) (string, error) {
	if !models.ValidDay(day) {
		return "", store.ErrInvalidDay
	}
	if !models.ValidCourt(court) {
		return "", store.ErrInvalidCourt
	}

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "day=" + queryEscape(day) + "&court=" + queryEscape(court), nil
}

// queryEscape escapes a query value with spaces as %20 rather than "+".
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
