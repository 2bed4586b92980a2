// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CollectRequest: sessionId, countyId, candidateId, optional constituencyId

Unknown fields (such as the legacy metadata blob some clients still send)
are ignored by the decoder.

# Response Types

Types for JSON responses:

  - CollectResponse: success, status ("created" or "updated")
  - ResultsResponse: votes (candidateId -> count), total
  - PredictResponse: national, byCounty, lastUpdated
  - CountyDetailResponse: county, constituencies, candidates, live stats
  - SessionResponse: sessionId
  - ErrorResponse: error

# Domain Types

Internal data structures mirroring the database tables:

  - County: one of the 47 fixed counties (code 1-47)
  - Constituency: belongs to exactly one county
  - Candidate: a person running for an office
  - Vote: one session's current pick for one office

# Tally Types

  - CandidateTally: ranked standings entry with vote count and score
  - ConstituencyLeader: front-running MP candidate for a constituency

# Constants

Offices:

	OfficePresident = "president"
	OfficeGovernor  = "governor"
	OfficeMP        = "mp"

Submission status:

	StatusCreated = "created"
	StatusUpdated = "updated"
*/
package models
