// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/otienojakes/kura/models"
	"github.com/otienojakes/kura/testutil"
)

// Walks a session through the full mind-change flow: first vote is created,
// the revote is updated, and the standings follow the latest choice with the
// earlier one gone.
func TestVoteLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig())

	testutil.SeedCounty(t, db, "nairobi", 47, "Nairobi")
	testutil.SeedCandidate(t, db, "ruto", "William Ruto", "UDA", models.OfficePresident, "")
	testutil.SeedCandidate(t, db, "raila", "Raila Odinga", "ODM", models.OfficePresident, "")

	// Mint a session
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/session", nil))
	testutil.AssertStatus(t, w, http.StatusCreated)
	var session models.SessionResponse
	testutil.AssertJSON(t, w, &session)

	// First presidential vote
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/collect", models.CollectRequest{
		SessionID:   session.SessionID,
		CountyID:    "nairobi",
		CandidateID: "ruto",
	}))
	testutil.AssertStatus(t, w, http.StatusOK)
	var collect models.CollectResponse
	testutil.AssertJSON(t, w, &collect)
	if !collect.Success || collect.Status != models.StatusCreated {
		t.Fatalf("Expected created vote, got %+v", collect)
	}

	// Standings reflect the vote
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/predict", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var predict models.PredictResponse
	testutil.AssertJSON(t, w, &predict)
	if len(predict.National) != 1 || predict.National[0].CandidateID != "ruto" {
		t.Fatalf("Expected ruto alone in standings, got %+v", predict.National)
	}
	if predict.National[0].Votes != 1 || predict.National[0].Score != 1.0 {
		t.Errorf("Expected 1 vote at score 1.0, got %+v", predict.National[0])
	}

	// Mind change: same session, same office, different candidate
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/collect", models.CollectRequest{
		SessionID:   session.SessionID,
		CountyID:    "nairobi",
		CandidateID: "raila",
	}))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &collect)
	if !collect.Success || collect.Status != models.StatusUpdated {
		t.Fatalf("Expected updated vote, got %+v", collect)
	}

	// The old choice vanishes, the new one carries the full weight
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/predict", nil))
	testutil.AssertJSON(t, w, &predict)
	if len(predict.National) != 1 || predict.National[0].CandidateID != "raila" {
		t.Fatalf("Expected raila alone after revote, got %+v", predict.National)
	}
	if predict.National[0].Votes != 1 {
		t.Errorf("Expected 1 vote after revote, got %d", predict.National[0].Votes)
	}

	if n := testutil.CountVotes(t, db, session.SessionID, ""); n != 1 {
		t.Errorf("Expected a single vote row for the session, got %d", n)
	}

	// Grouped counts agree with the standings
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/results?countyId=nairobi", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)
	if results.Total != 1 || results.Votes["raila"] != 1 {
		t.Errorf("Expected nairobi totals to show raila's vote, got %+v", results)
	}
}

// Different sessions accumulate rather than overwrite.
func TestVotesAccumulateAcrossSessions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig())

	testutil.SeedCounty(t, db, "nairobi", 47, "Nairobi")
	testutil.SeedCandidate(t, db, "ruto", "William Ruto", "UDA", models.OfficePresident, "")

	for _, sessionID := range []string{"voter-a", "voter-b", "voter-c"} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("POST", "/collect", models.CollectRequest{
			SessionID:   sessionID,
			CountyID:    "nairobi",
			CandidateID: "ruto",
		}))
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/results", nil))
	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)
	if results.Votes["ruto"] != 3 || results.Total != 3 {
		t.Errorf("Expected 3 accumulated votes, got %+v", results)
	}
}
