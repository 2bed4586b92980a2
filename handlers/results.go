// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/otienojakes/kura/cliparse"
	"github.com/otienojakes/kura/middleware"
	"github.com/otienojakes/kura/models"
)

// Bound on how long a live-tally read may hold up the dashboard.
const resultsQueryTimeout = 2 * time.Second

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// GetResults handles GET /results?countyId=<id>.
// Omitting countyId (or passing the literal "undefined"/"null" some clients
// send) returns national totals. A storage fault degrades to an empty result
// with status 200 so the dashboard keeps rendering.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	countyID := r.URL.Query().Get("countyId")
	if countyID == "undefined" || countyID == "null" {
		countyID = ""
	}

	ctx, cancel := context.WithTimeout(r.Context(), resultsQueryTimeout)
	defer cancel()

	votes, total, err := CountByCandidate(ctx, h.db, countyID)
	if err != nil {
		slog.Error("vote count query failed, returning empty results",
			"error", err, "county_id", countyID)
		middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
			Votes: map[string]int{},
			Total: 0,
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Votes: votes,
		Total: total,
	})
}

// GetPredict handles GET /predict.
// Returns national presidential standings and per-county standings for all
// offices, recomputed from the vote table on every call.
func (h *ResultsHandler) GetPredict(w http.ResponseWriter, r *http.Request) {
	votes, err := FetchVoteRows(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to load votes for prediction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch results")
		return
	}

	national, byCounty := ComputeStandings(votes)

	middleware.JSONResponse(w, http.StatusOK, models.PredictResponse{
		National:    national,
		ByCounty:    byCounty,
		LastUpdated: time.Now().UTC(),
	})
}
