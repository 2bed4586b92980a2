// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/otienojakes/kura/testutil"
)

func TestRouterRoutes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig())

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"health check", "GET", "/health", http.StatusOK},
		{"root", "GET", "/", http.StatusOK},
		{"results", "GET", "/results", http.StatusOK},
		{"predict", "GET", "/predict", http.StatusOK},
		{"counties", "GET", "/counties", http.StatusOK},
		{"county detail missing", "GET", "/counties/nowhere", http.StatusNotFound},
		{"session", "POST", "/session", http.StatusCreated},
		// GET falls through to the root catch-all, so probe with verbs it
		// cannot absorb
		{"collect wrong method", "PUT", "/collect", http.StatusMethodNotAllowed},
		{"session wrong method", "DELETE", "/session", http.StatusMethodNotAllowed},
		{"unknown path", "GET", "/nope", http.StatusOK}, // falls through to root handler
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d for %s %s, got %d. Body: %s",
					tt.expectedStatus, tt.method, tt.path, w.Code, w.Body.String())
			}
		})
	}
}

func TestHealthBody(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got %q", w.Body.String())
	}
}
