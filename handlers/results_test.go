// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/otienojakes/kura/models"
	"github.com/otienojakes/kura/testutil"
)

func TestGetResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewResultsHandler(db, testutil.GetTestConfig())

	testutil.SeedCounty(t, db, "nairobi", 47, "Nairobi")
	testutil.SeedCounty(t, db, "mombasa", 1, "Mombasa")
	testutil.SeedCandidate(t, db, "ruto", "William Ruto", "UDA", models.OfficePresident, "")
	testutil.SeedCandidate(t, db, "raila", "Raila Odinga", "ODM", models.OfficePresident, "")

	testutil.SeedVote(t, db, "s1", "nairobi", "ruto", "", models.OfficePresident)
	testutil.SeedVote(t, db, "s2", "nairobi", "raila", "", models.OfficePresident)
	testutil.SeedVote(t, db, "s3", "mombasa", "raila", "", models.OfficePresident)

	tests := []struct {
		name          string
		query         string
		expectedVotes map[string]int
		expectedTotal int
	}{
		{
			name:          "national totals",
			query:         "",
			expectedVotes: map[string]int{"ruto": 1, "raila": 2},
			expectedTotal: 3,
		},
		{
			name:          "county filter",
			query:         "?countyId=nairobi",
			expectedVotes: map[string]int{"ruto": 1, "raila": 1},
			expectedTotal: 2,
		},
		{
			name:          "literal undefined falls back to national",
			query:         "?countyId=undefined",
			expectedVotes: map[string]int{"ruto": 1, "raila": 2},
			expectedTotal: 3,
		},
		{
			name:          "literal null falls back to national",
			query:         "?countyId=null",
			expectedVotes: map[string]int{"ruto": 1, "raila": 2},
			expectedTotal: 3,
		},
		{
			name:          "unknown county yields empty result",
			query:         "?countyId=atlantis",
			expectedVotes: map[string]int{},
			expectedTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/results"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.GetResults(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.ResultsResponse
			testutil.AssertJSON(t, w, &resp)

			if resp.Total != tt.expectedTotal {
				t.Errorf("Expected total %d, got %d", tt.expectedTotal, resp.Total)
			}
			if len(resp.Votes) != len(tt.expectedVotes) {
				t.Errorf("Expected %d candidates, got %d", len(tt.expectedVotes), len(resp.Votes))
			}
			for candidateID, count := range tt.expectedVotes {
				if resp.Votes[candidateID] != count {
					t.Errorf("Expected %d votes for %s, got %d", count, candidateID, resp.Votes[candidateID])
				}
			}
		})
	}
}

func TestGetResultsEmptyStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewResultsHandler(db, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/results", nil)
	w := httptest.NewRecorder()

	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Votes) != 0 || resp.Total != 0 {
		t.Errorf("Expected empty result, got %+v", resp)
	}
}

// A storage fault on the read path degrades to an empty 200, never a 500,
// so the dashboard keeps rendering.
func TestGetResultsStorageFaultDegrades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewResultsHandler(db, testutil.GetTestConfig())
	db.Close()

	req := httptest.NewRequest("GET", "/results", nil)
	w := httptest.NewRecorder()

	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Votes) != 0 || resp.Total != 0 {
		t.Errorf("Expected degraded empty result, got %+v", resp)
	}
}

func TestGetPredict(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewResultsHandler(db, testutil.GetTestConfig())

	testutil.SeedCounty(t, db, "nairobi", 47, "Nairobi")
	testutil.SeedCounty(t, db, "mombasa", 1, "Mombasa")
	testutil.SeedCandidate(t, db, "ruto", "William Ruto", "UDA", models.OfficePresident, "")
	testutil.SeedCandidate(t, db, "raila", "Raila Odinga", "ODM", models.OfficePresident, "")
	testutil.SeedCandidate(t, db, "sakaja", "Johnson Sakaja", "UDA", models.OfficeGovernor, "")

	// 3 presidential votes (2 raila, 1 ruto) and 1 governor vote
	testutil.SeedVote(t, db, "s1", "nairobi", "raila", "", models.OfficePresident)
	testutil.SeedVote(t, db, "s2", "nairobi", "raila", "", models.OfficePresident)
	testutil.SeedVote(t, db, "s3", "mombasa", "ruto", "", models.OfficePresident)
	testutil.SeedVote(t, db, "s1g", "nairobi", "sakaja", "", models.OfficeGovernor)

	req := httptest.NewRequest("GET", "/predict", nil)
	w := httptest.NewRecorder()

	handler.GetPredict(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PredictResponse
	testutil.AssertJSON(t, w, &resp)

	// National standings are presidential only: the governor vote is absent
	if len(resp.National) != 2 {
		t.Fatalf("Expected 2 national candidates, got %d", len(resp.National))
	}
	if resp.National[0].CandidateID != "raila" || resp.National[0].Votes != 2 {
		t.Errorf("Expected raila leading with 2 votes, got %+v", resp.National[0])
	}
	if resp.National[1].CandidateID != "ruto" || resp.National[1].Votes != 1 {
		t.Errorf("Expected ruto second with 1 vote, got %+v", resp.National[1])
	}
	if got := resp.National[0].Score; got < 0.66 || got > 0.67 {
		t.Errorf("Expected raila score 2/3, got %f", got)
	}

	// County standings cover every office
	nairobi := resp.ByCounty["nairobi"]
	if len(nairobi) != 2 {
		t.Fatalf("Expected 2 candidates in nairobi, got %d", len(nairobi))
	}
	countyTotal := 0
	for _, c := range nairobi {
		countyTotal += c.Votes
	}
	if countyTotal != 3 {
		t.Errorf("Expected 3 votes in nairobi, got %d", countyTotal)
	}
	for _, c := range nairobi {
		expected := float64(c.Votes) / float64(countyTotal)
		if c.Score != expected {
			t.Errorf("Expected score %f for %s, got %f", expected, c.CandidateID, c.Score)
		}
	}

	if resp.LastUpdated.IsZero() {
		t.Error("Expected lastUpdated to be set")
	}
}

func TestGetPredictEmptyStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewResultsHandler(db, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/predict", nil)
	w := httptest.NewRecorder()

	handler.GetPredict(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PredictResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.National) != 0 {
		t.Errorf("Expected empty national standings, got %+v", resp.National)
	}
	if len(resp.ByCounty) != 0 {
		t.Errorf("Expected empty county standings, got %+v", resp.ByCounty)
	}
}

func TestGetPredictStorageFault(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewResultsHandler(db, testutil.GetTestConfig())
	db.Close()

	req := httptest.NewRequest("GET", "/predict", nil)
	w := httptest.NewRecorder()

	handler.GetPredict(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
