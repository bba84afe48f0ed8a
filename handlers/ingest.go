// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/danielhkuo/courtcaptain/availability"
	"github.com/danielhkuo/courtcaptain/middleware"
	"github.com/danielhkuo/courtcaptain/models"
	"github.com/danielhkuo/courtcaptain/store"
)

// IngestHandler accepts availability scraped in the browser.
type IngestHandler struct {
	avail *store.AvailabilityStore
}

func NewIngestHandler(db *sql.DB) *IngestHandler {
	return &IngestHandler{avail: store.NewAvailabilityStore(db)}
}

// Availability handles POST /ingest/availability
// Court names are matched against the known labels; unmatched names are
// reported as skipped. The day's stored availability is replaced only when
// at least one court matched.
func (h *IngestHandler) Availability(w http.ResponseWriter, r *http.Request) {
	var req models.IngestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "day and courts are required")
		return
	}

	day, ok := dayFold(req.Day)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "day must be Saturday or Sunday")
		return
	}

	names := make([]string, 0, len(req.Courts))
	for name := range req.Courts {
		names = append(names, name)
	}
	sort.Strings(names)

	matched := models.AvailabilityMap{}
	skipped := []string{}
	for _, name := range names {
		court, ok := availability.MatchCourt(name)
		if !ok {
			skipped = append(skipped, name)
			continue
		}
		matched[court] = append(matched[court], req.Courts[name]...)
	}

	if len(matched) == 0 {
		reqLog(r).Warn("availability import matched no courts", "day", day, "skipped", len(skipped))
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "no known courts in payload")
		return
	}

	counts := make(map[string]int, len(matched))
	for court, slots := range matched {
		matched[court] = availability.NormalizeSlots(slots)
		counts[court] = len(matched[court])
	}

	imported, err := h.avail.ReplaceDay(r.Context(), day, matched)
	if err != nil {
		reqLog(r).Error("failed to import availability", "error", err, "day", day)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to import availability")
		return
	}

	slog.Info("availability imported", "day", day, "courts", len(matched), "slots", imported, "skipped", len(skipped))

	middleware.JSONResponse(w, http.StatusOK, models.IngestResponse{
		Day:      day,
		Imported: imported,
		Courts:   counts,
		Skipped:  skipped,
	})
}

// dayFold matches a day name case-insensitively.
func dayFold(s string) (models.Day, bool) {
	s = strings.TrimSpace(s)
	for _, d := range models.Days {
		if strings.EqualFold(s, string(d)) {
			return d, true
		}
	}
	return "", false
}
