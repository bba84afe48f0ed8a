// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/courtcaptain/availability"
	"github.com/danielhkuo/courtcaptain/cliparse"
	"github.com/danielhkuo/courtcaptain/handlers"
	"github.com/danielhkuo/courtcaptain/middleware"
	"github.com/danielhkuo/courtcaptain/models"
	"github.com/danielhkuo/courtcaptain/store"
	"github.com/danielhkuo/courtcaptain/weather"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Outbound sources
	wx := weather.NewClient(cfg.WeatherURL, cfg.Latitude, cfg.Longitude)
	avail := availability.New(cfg.AvailabilityURL, cfg.ClubCookie, store.NewAvailabilityStore(db))

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg, wx, avail)
	bookingHandler := handlers.NewBookingHandler(cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)
	ingestHandler := handlers.NewIngestHandler(db)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{OK: true})
	})

	// Voting (public)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(votingHandler.Form))
	mux.HandleFunc("POST /{$}", middleware.WithLogging(votingHandler.Submit))

	// Results and booking handoff
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.Page))
	mux.HandleFunc("GET /api/results", middleware.WithLogging(resultsHandler.JSON))
	mux.HandleFunc("POST /book", middleware.WithLogging(bookingHandler.Book))

	// Vote reset (PIN on confirm)
	mux.HandleFunc("POST /reset", middleware.WithLogging(adminHandler.ConfirmReset))
	mux.HandleFunc("POST /confirm-reset", middleware.WithLogging(adminHandler.DoReset))

	// Availability editor
	mux.HandleFunc("GET /admin/availability", middleware.WithLogging(adminHandler.AvailabilityPage))
	mux.HandleFunc("POST /admin/availability", middleware.WithLogging(adminHandler.AddAvailability))
	mux.HandleFunc("POST /admin/availability/clear", middleware.WithLogging(adminHandler.ClearAvailability))
	mux.HandleFunc("GET /admin/bookmarklet", middleware.WithLogging(adminHandler.Bookmarklet))

	// Bookmarklet import target (cross-origin)
	ingest := middleware.CORS(middleware.WithLogging(ingestHandler.Availability))
	mux.Handle("POST /ingest/availability", ingest)
	mux.Handle("OPTIONS /ingest/availability", ingest)

	return mux
}
