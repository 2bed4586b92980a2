// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the kura API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Voting:

	POST /collect  - Record or overwrite a session's vote for an office

Live tallies:

	GET /results?countyId=<id> - Vote counts by candidate (national without countyId)
	GET /predict               - National + per-county ranked standings

Reference data:

	GET /counties      - All 47 counties ordered by code
	GET /counties/{id} - County ballot with constituencies, candidates, live stats

Sessions:

	POST /session - Mint an anonymous session ID

# Handler Initialization

The router creates handler instances with dependency injection:

	collectHandler := handlers.NewCollectHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	countyHandler := handlers.NewCountyHandler(db, cfg)
	sessionHandler := handlers.NewSessionHandler()

All endpoints are wrapped with request logging; CORS is applied at the
server level in main.
*/
package router
