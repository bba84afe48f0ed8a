// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/courtcaptain/auth"
	"github.com/danielhkuo/courtcaptain/availability"
	"github.com/danielhkuo/courtcaptain/cliparse"
	"github.com/danielhkuo/courtcaptain/middleware"
	"github.com/danielhkuo/courtcaptain/models"
	"github.com/danielhkuo/courtcaptain/store"
	"github.com/danielhkuo/courtcaptain/views"
)

// AdminHandler serves the PIN-gated vote reset and the manual
// availability editor.
type AdminHandler struct {
	votes *store.VoteStore
	avail *store.AvailabilityStore
	cfg   cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{
		votes: store.NewVoteStore(db),
		avail: store.NewAvailabilityStore(db),
		cfg:   cfg,
	}
}

// ConfirmReset handles POST /reset
func (h *AdminHandler) ConfirmReset(w http.ResponseWriter, r *http.Request) {
	n, err := h.votes.Count(r.Context())
	if err != nil {
		reqLog(r).Error("failed to count votes", "error", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	render(w, r, h.cfg, http.StatusOK, views.PageConfirmReset, "Reset votes", views.ResetConfirm{VoteCount: n}, nil)
}

// DoReset handles POST /confirm-reset
func (h *AdminHandler) DoReset(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		redirectWithFlash(w, r, h.cfg, models.FlashError, "Could not read the form.", "/results")
		return
	}

	if err := auth.CheckPIN(r.PostFormValue("pin"), h.cfg.ResetPIN); err != nil {
		reqLog(r).Warn("vote reset rejected", "remote", middleware.GetClientIP(r))
		redirectWithFlash(w, r, h.cfg, models.FlashError, "Incorrect PIN. Votes were not reset.", "/results")
		return
	}

	n, err := h.votes.DeleteAll(r.Context())
	if err != nil {
		reqLog(r).Error("failed to reset votes", "error", err)
		redirectWithFlash(w, r, h.cfg, models.FlashError, "Could not reset votes.", "/results")
		return
	}

	slog.Info("votes reset", "deleted", n)

	redirectWithFlash(w, r, h.cfg, models.FlashSuccess,
		fmt.Sprintf("Cleared %s.", english.Plural(int(n), "vote", "")), "/results")
}

// AvailabilityPage handles GET /admin/availability
func (h *AdminHandler) AvailabilityPage(w http.ResponseWriter, r *http.Request) {
	day, ok := models.ParseDay(r.URL.Query().Get("day"))
	if !ok {
		day = models.Saturday
	}

	avail, err := h.avail.ListDay(r.Context(), day)
	if err != nil {
		reqLog(r).Error("failed to list availability", "error", err, "day", day)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	render(w, r, h.cfg, http.StatusOK, views.PageAvailability, "Availability", views.AvailabilityEditor{
		Day:          day,
		Days:         models.Days,
		Courts:       models.AllCourts,
		Availability: avail,
		Scraping:     h.cfg.AvailabilityURL != "",
	}, nil)
}

// AddAvailability handles POST /admin/availability
// The slots field holds one slot per line.
func (h *AdminHandler) AddAvailability(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		redirectWithFlash(w, r, h.cfg, models.FlashError, "Could not read the form.", "/admin/availability")
		return
	}

	day, ok := models.ParseDay(formValue(r, "day"))
	court := formValue(r, "court")
	if !ok || !models.ValidCourt(court) {
		redirectWithFlash(w, r, h.cfg, models.FlashError, "Choose a valid day and court.", "/admin/availability")
		return
	}
	back := editorURL(day)

	slots := availability.NormalizeSlots(strings.Split(r.PostFormValue("slots"), "\n"))
	if len(slots) == 0 {
		redirectWithFlash(w, r, h.cfg, models.FlashError, "Enter at least one slot.", back)
		return
	}

	added := 0
	for _, slot := range slots {
		ok, err := h.avail.Add(r.Context(), day, court, slot)
		if err != nil {
			reqLog(r).Error("failed to add availability", "error", err, "day", day, "court", court)
			redirectWithFlash(w, r, h.cfg, models.FlashError, "Could not save availability.", back)
			return
		}
		if ok {
			added++
		}
	}

	slog.Info("availability added", "day", day, "court", court, "added", added)

	redirectWithFlash(w, r, h.cfg, models.FlashSuccess,
		fmt.Sprintf("Added %s to %s on %s.", english.Plural(added, "slot", ""), court, day), back)
}

// ClearAvailability handles POST /admin/availability/clear
// An empty day clears every day.
func (h *AdminHandler) ClearAvailability(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		redirectWithFlash(w, r, h.cfg, models.FlashError, "Could not read the form.", "/admin/availability")
		return
	}

	if err := auth.CheckPIN(r.PostFormValue("pin"), h.cfg.ResetPIN); err != nil {
		reqLog(r).Warn("availability clear rejected", "remote", middleware.GetClientIP(r))
		redirectWithFlash(w, r, h.cfg, models.FlashError, "Incorrect PIN. Availability was not cleared.", "/admin/availability")
		return
	}

	day := models.Day(formValue(r, "day"))
	n, err := h.avail.Clear(r.Context(), day)
	if errors.Is(err, store.ErrInvalidDay) {
		redirectWithFlash(w, r, h.cfg, models.FlashError, "Choose a valid day.", "/admin/availability")
		return
	}
	if err != nil {
		reqLog(r).Error("failed to clear availability", "error", err, "day", day)
		redirectWithFlash(w, r, h.cfg, models.FlashError, "Could not clear availability.", "/admin/availability")
		return
	}

	slog.Info("availability cleared", "day", day, "deleted", n)

	scope, back := "all days", "/admin/availability"
	if day != "" {
		scope, back = string(day), editorURL(day)
	}
	redirectWithFlash(w, r, h.cfg, models.FlashSuccess,
		fmt.Sprintf("Cleared %s for %s.", english.Plural(int(n), "slot", ""), scope), back)
}

// Bookmarklet handles GET /admin/bookmarklet
func (h *AdminHandler) Bookmarklet(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.cfg, http.StatusOK, views.PageBookmarklet, "Bookmarklet",
		views.NewBookmarklet(h.publicURL(r)+"/ingest/availability"), nil)
}

// publicURL is the configured external base URL, or the one the request
// arrived on.
func (h *AdminHandler) publicURL(r *http.Request) string {
	if h.cfg.PublicURL != "" {
		return h.cfg.PublicURL
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func editorURL(day models.Day) string {
	return "/admin/availability?day=" + url.QueryEscape(string(day))
}
