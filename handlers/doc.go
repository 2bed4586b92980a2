// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the kura API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - CollectHandler: vote submission with one-vote-per-office enforcement
  - ResultsHandler: live tallies and national/county predictions
  - CountyHandler: county reference data and per-county live stats
  - SessionHandler: anonymous session ID minting

Handlers are created via constructor functions that accept *sql.DB and Config:

	collectHandler := handlers.NewCollectHandler(db, cfg)

# Vote Recording

	POST /collect → Collect

A session holds at most one active vote per office (president, governor,
mp). The office comes from the submitted candidate; an existing vote for
that office is overwritten in place, never duplicated, and the response
status says which happened ("created" or "updated"). Re-submitting the same
pick is therefore safe for clients to retry.

# Aggregation

	GET /results?countyId=<id> → GetResults
	GET /predict              → GetPredict
	GET /counties/{id}        → Detail (county ballot + live stats)

All reads recompute from the vote table on every call; there is no cache or
incremental counter to drift. GetResults degrades to {votes:{}, total:0}
with status 200 when the store times out, so the dashboard never blanks on a
transient fault. The write path never degrades: a storage fault on /collect
is a 500.

# Tally Computation

The aggregation itself lives in tally.go:

	rows, err := handlers.FetchVoteRows(ctx, db)
	national, byCounty := handlers.ComputeStandings(rows)

ComputeStandings is a pure function of the fetched rows: national
presidential standings (score = share of presidential votes) and per-county
standings across every office (score = share of the county's votes), both
sorted by votes descending with candidate ID as the deterministic tiebreak.
CountByCandidate, LeadingGovernor, and LeadingMPs push the grouping into
SQL instead.
*/
package handlers
