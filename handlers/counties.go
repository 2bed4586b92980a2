// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/otienojakes/kura/cliparse"
	"github.com/otienojakes/kura/middleware"
	"github.com/otienojakes/kura/models"
)

type CountyHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCountyHandler(db *sql.DB, cfg cliparse.Config) *CountyHandler {
	return &CountyHandler{db: db, cfg: cfg}
}

// List handles GET /counties
func (h *CountyHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, code, name FROM county ORDER BY code
	`)
	if err != nil {
		slog.Error("failed to query counties", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	defer rows.Close()

	counties := []models.County{}
	for rows.Next() {
		var c models.County
		if err := rows.Scan(&c.ID, &c.Code, &c.Name); err != nil {
			slog.Error("failed to scan county", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		counties = append(counties, c)
	}

	middleware.JSONResponse(w, http.StatusOK, counties)
}

// Detail handles GET /counties/{id}.
// Returns the county's ballot (constituencies plus candidates per office)
// and its live stats: total votes cast in the county, the leading governor
// candidate, and the front-running MP per constituency.
func (h *CountyHandler) Detail(w http.ResponseWriter, r *http.Request) {
	countyID := r.PathValue("id")
	if countyID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "county id is required")
		return
	}

	var county models.County
	err := h.db.QueryRow(`
		SELECT id, code, name FROM county WHERE id = $1
	`, countyID).Scan(&county.ID, &county.Code, &county.Name)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "County not found")
		return
	}
	if err != nil {
		slog.Error("failed to query county", "error", err, "county_id", countyID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	constituencies, err := h.constituenciesFor(county.ID)
	if err != nil {
		slog.Error("failed to query constituencies", "error", err, "county_id", countyID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// Presidents run nationally; governors and MPs belong to the county
	presidents, err := h.candidates(`SELECT id, name, party, office, bio, home_county_id, constituency_id
		FROM candidate WHERE office = 'president' ORDER BY id`)
	if err != nil {
		slog.Error("failed to query presidents", "error", err, "county_id", countyID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	governors, err := h.candidates(`SELECT id, name, party, office, bio, home_county_id, constituency_id
		FROM candidate WHERE office = 'governor' AND home_county_id = $1 ORDER BY id`, county.ID)
	if err != nil {
		slog.Error("failed to query governors", "error", err, "county_id", countyID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	mps, err := h.candidates(`SELECT id, name, party, office, bio, home_county_id, constituency_id
		FROM candidate WHERE office = 'mp' AND home_county_id = $1 ORDER BY id`, county.ID)
	if err != nil {
		slog.Error("failed to query MPs", "error", err, "county_id", countyID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	var totalVotes int
	err = h.db.QueryRow(`
		SELECT COUNT(*) FROM vote WHERE county_id = $1
	`, county.ID).Scan(&totalVotes)
	if err != nil {
		slog.Error("failed to count county votes", "error", err, "county_id", countyID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	leadingGov, err := LeadingGovernor(r.Context(), h.db, county.ID)
	if err != nil {
		slog.Error("failed to compute leading governor", "error", err, "county_id", countyID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	leadingMPs, err := LeadingMPs(r.Context(), h.db, county.ID)
	if err != nil {
		slog.Error("failed to compute leading MPs", "error", err, "county_id", countyID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CountyDetailResponse{
		County:         county,
		Constituencies: constituencies,
		Presidents:     presidents,
		Governors:      governors,
		MPs:            mps,
		TotalVotes:     totalVotes,
		LeadingGov:     leadingGov,
		LeadingMPs:     leadingMPs,
	})
}

func (h *CountyHandler) constituenciesFor(countyID string) ([]models.Constituency, error) {
	rows, err := h.db.Query(`
		SELECT id, name, county_id FROM constituency
		WHERE county_id = $1 ORDER BY name
	`, countyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.Constituency{}
	for rows.Next() {
		var c models.Constituency
		if err := rows.Scan(&c.ID, &c.Name, &c.CountyID); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (h *CountyHandler) candidates(query string, args ...interface{}) ([]models.Candidate, error) {
	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Party, &c.Office, &c.Bio, &c.HomeCountyID, &c.ConstituencyID); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
