// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"sync"

	"github.com/danielhkuo/courtcaptain/availability"
	"github.com/danielhkuo/courtcaptain/cliparse"
	"github.com/danielhkuo/courtcaptain/middleware"
	"github.com/danielhkuo/courtcaptain/models"
	"github.com/danielhkuo/courtcaptain/store"
	"github.com/danielhkuo/courtcaptain/tally"
	"github.com/danielhkuo/courtcaptain/views"
	"github.com/danielhkuo/courtcaptain/weather"
)

type ResultsHandler struct {
	votes   *store.VoteStore
	cfg     cliparse.Config
	weather weather.Source
	avail   availability.Provider
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config, wx weather.Source, avail availability.Provider) *ResultsHandler {
	return &ResultsHandler{
		votes:   store.NewVoteStore(db),
		cfg:     cfg,
		weather: wx,
		avail:   avail,
	}
}

// Page handles GET /results
func (h *ResultsHandler) Page(w http.ResponseWriter, r *http.Request) {
	resp, err := h.build(r.Context())
	if err != nil {
		reqLog(r).Error("failed to build results", "error", err)
		http.Error(w, "Failed to load results", http.StatusInternalServerError)
		return
	}

	render(w, r, h.cfg, http.StatusOK, views.PageResults, "Results", views.NewResults(resp), nil)
}

// JSON handles GET /api/results
func (h *ResultsHandler) JSON(w http.ResponseWriter, r *http.Request) {
	resp, err := h.build(r.Context())
	if err != nil {
		reqLog(r).Error("failed to build results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// build recomputes the tally from stored votes and fetches weather and
// the chosen day's availability. Outbound failures leave their fields empty.
func (h *ResultsHandler) build(ctx context.Context) (models.ResultsResponse, error) {
	votes, err := h.votes.List(ctx)
	if err != nil {
		return models.ResultsResponse{}, err
	}
	if votes == nil {
		votes = []models.Vote{}
	}

	t := tally.Compute(votes, h.cfg.VotingMode)

	resp := models.ResultsResponse{
		Mode:      h.cfg.VotingMode,
		Tally:     t,
		ChosenDay: models.Saturday,
		Weather:   make(map[models.Day]*models.DayForecast, len(models.Days)),
		Votes:     votes,
	}
	if t.Top != nil {
		resp.ChosenDay = t.Top.Day
	}

	var (
		wg        sync.WaitGroup
		forecasts map[models.Day]models.Optional[models.DayForecast]
		avail     models.Optional[models.AvailabilityMap]
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		forecasts = h.weather.Weekend(ctx)
	}()
	go func() {
		defer wg.Done()
		avail = h.avail.ForDay(ctx, resp.ChosenDay)
	}()
	wg.Wait()

	for _, d := range models.Days {
		resp.Weather[d] = forecasts[d].Ptr()
	}
	resp.Availability = avail.OrElse(nil)
	resp.AvailabilityLoaded = avail.Present()

	if t.Top == nil {
		return resp, nil
	}

	court := ""
	switch {
	case h.cfg.VotingMode == models.ModeCourt:
		court = t.Top.Court
	case t.Top.Window != nil:
		if s, ok := tally.Suggest(*t.Top.Window, resp.Availability).Get(); ok {
			resp.Suggestion = &s
			court = s.Court
		}
	}

	// Booking is offered once enough people have voted
	if court != "" && t.QuorumMet {
		resp.Booking = &models.BookingTarget{Day: t.Top.Day, Court: court}
	}

	return resp, nil
}
