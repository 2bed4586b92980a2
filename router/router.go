// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/otienojakes/kura/cliparse"
	"github.com/otienojakes/kura/handlers"
	"github.com/otienojakes/kura/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	collectHandler := handlers.NewCollectHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	countyHandler := handlers.NewCountyHandler(db, cfg)
	sessionHandler := handlers.NewSessionHandler()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Vote submission
	mux.HandleFunc("POST /collect", middleware.WithLogging(collectHandler.Collect))

	// Live tallies
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /predict", middleware.WithLogging(resultsHandler.GetPredict))

	// Reference data and county stats
	mux.HandleFunc("GET /counties", middleware.WithLogging(countyHandler.List))
	mux.HandleFunc("GET /counties/{id}", middleware.WithLogging(countyHandler.Detail))

	// Session minting
	mux.HandleFunc("POST /session", middleware.WithLogging(sessionHandler.Create))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("kura API v1"))
	})

	return mux
}
