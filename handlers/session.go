// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/otienojakes/kura/identity"
	"github.com/otienojakes/kura/middleware"
	"github.com/otienojakes/kura/models"
)

type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// Create handles POST /session.
// Mints a fresh anonymous session ID for clients that prefer a server-issued
// one. Nothing is stored; the ID only exists in vote rows once it votes.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sessionID, err := identity.NewSessionID()
	if err != nil {
		slog.Error("failed to generate session ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SessionResponse{
		SessionID: sessionID,
	})
}
