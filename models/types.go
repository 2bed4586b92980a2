package models

import "time"

// Office constants
const (
	OfficePresident = "president"
	OfficeGovernor  = "governor"
	OfficeMP        = "mp"
)

// Vote submission status values
const (
	StatusCreated = "created"
	StatusUpdated = "updated"
)

// Request types

type CollectRequest struct {
	SessionID      string  `json:"sessionId"`
	CountyID       string  `json:"countyId"`
	CandidateID    string  `json:"candidateId"`
	ConstituencyID *string `json:"constituencyId,omitempty"`
}

// Response types

type CollectResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

type ResultsResponse struct {
	Votes map[string]int `json:"votes"`
	Total int            `json:"total"`
}

type PredictResponse struct {
	National    []CandidateTally            `json:"national"`
	ByCounty    map[string][]CandidateTally `json:"byCounty"`
	LastUpdated time.Time                   `json:"lastUpdated"`
}

type SessionResponse struct {
	SessionID string `json:"sessionId"`
}

type CountyDetailResponse struct {
	County         County                        `json:"county"`
	Constituencies []Constituency                `json:"constituencies"`
	Presidents     []Candidate                   `json:"presidents"`
	Governors      []Candidate                   `json:"governors"`
	MPs            []Candidate                   `json:"mps"`
	TotalVotes     int                           `json:"totalVotes"`
	LeadingGov     *CandidateTally               `json:"leadingGovernor,omitempty"`
	LeadingMPs     map[string]ConstituencyLeader `json:"leadingMPs"`
}

// Domain types

type County struct {
	ID   string `json:"id"`
	Code int    `json:"code"`
	Name string `json:"name"`
}

type Constituency struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CountyID string `json:"countyId"`
}

type Candidate struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Party          *string `json:"party,omitempty"`
	Office         string  `json:"office"`
	Bio            *string `json:"bio,omitempty"`
	HomeCountyID   *string `json:"homeCountyId,omitempty"`
	ConstituencyID *string `json:"constituencyId,omitempty"`
}

type Vote struct {
	ID             string    `json:"id"`
	SessionID      string    `json:"-"` // Never expose in JSON
	CountyID       string    `json:"countyId"`
	CandidateID    string    `json:"candidateId"`
	ConstituencyID *string   `json:"constituencyId,omitempty"`
	Office         string    `json:"office"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Tally types

// CandidateTally is one row of a ranked standings list.
// Score is the candidate's share of the total in scope (0 when the scope has
// no votes).
type CandidateTally struct {
	CandidateID string  `json:"candidateId"`
	Name        string  `json:"name"`
	Party       *string `json:"party,omitempty"`
	Votes       int     `json:"votes"`
	Score       float64 `json:"score"`
}

// ConstituencyLeader is the current front-runner for a constituency's MP seat.
type ConstituencyLeader struct {
	CandidateID string  `json:"candidateId"`
	Name        string  `json:"name"`
	Party       *string `json:"party,omitempty"`
	Votes       int     `json:"votes"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
