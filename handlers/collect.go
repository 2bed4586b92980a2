// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/otienojakes/kura/cliparse"
	"github.com/otienojakes/kura/middleware"
	"github.com/otienojakes/kura/models"
)

type CollectHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCollectHandler(db *sql.DB, cfg cliparse.Config) *CollectHandler {
	return &CollectHandler{db: db, cfg: cfg}
}

// Collect handles POST /collect.
// One session holds at most one active vote per office; re-submitting for an
// office the session already voted in overwrites the prior pick in place.
func (h *CollectHandler) Collect(w http.ResponseWriter, r *http.Request) {
	var req models.CollectRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.SessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sessionId is required")
		return
	}
	if req.CountyID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "countyId is required")
		return
	}
	if req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidateId is required")
		return
	}

	// Resolve the candidate to learn their office
	var office string
	err := h.db.QueryRow(`
		SELECT office FROM candidate WHERE id = $1
	`, req.CandidateID).Scan(&office)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		slog.Error("failed to resolve candidate", "error", err,
			"candidate_id", req.CandidateID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// Empty constituency collapses to NULL
	var constituencyID *string
	if req.ConstituencyID != nil && *req.ConstituencyID != "" {
		constituencyID = req.ConstituencyID
	}

	// Does this session already hold a vote for this office? The office is
	// re-derived from the live candidate record rather than the stored
	// snapshot, matching how the check has always behaved.
	var existingID string
	err = h.db.QueryRow(`
		SELECT v.id
		FROM vote v
		JOIN candidate c ON c.id = v.candidate_id
		WHERE v.session_id = $1 AND c.office = $2
	`, req.SessionID, office).Scan(&existingID)

	if err != nil && err != sql.ErrNoRows {
		slog.Error("failed to check existing vote", "error", err,
			"session_id", req.SessionID, "office", office)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	isUpdate := err != sql.ErrNoRows

	// Single atomic upsert; the UNIQUE(session_id, office) constraint makes
	// racing submissions converge on one row instead of duplicating.
	now := time.Now().UTC()
	_, err = h.db.Exec(`
		INSERT INTO vote (id, session_id, county_id, candidate_id, constituency_id, office, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (session_id, office) DO UPDATE SET
			candidate_id = excluded.candidate_id,
			county_id = excluded.county_id,
			constituency_id = excluded.constituency_id,
			updated_at = excluded.updated_at
	`, uuid.NewString(), req.SessionID, req.CountyID, req.CandidateID, constituencyID, office, now)

	if err != nil {
		slog.Error("failed to record vote", "error", err,
			"session_id", req.SessionID, "candidate_id", req.CandidateID, "office", office)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	status := models.StatusCreated
	if isUpdate {
		status = models.StatusUpdated
	}

	slog.Info("vote recorded", "session_id", req.SessionID,
		"candidate_id", req.CandidateID, "office", office, "status", status)

	middleware.JSONResponse(w, http.StatusOK, models.CollectResponse{
		Success: true,
		Status:  status,
	})
}
