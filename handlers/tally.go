// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/otienojakes/kura/models"
)

// VoteRow is one vote joined to its live candidate record. The office comes
// from the candidate, not the vote snapshot, so retroactive candidate edits
// reclassify the vote here too.
type VoteRow struct {
	CandidateID string
	CountyID    string
	Name        string
	Party       *string
	Office      string
}

// FetchVoteRows loads the full vote table with candidate details.
func FetchVoteRows(ctx context.Context, db *sql.DB) ([]VoteRow, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT v.candidate_id, v.county_id, c.name, c.party, c.office
		FROM vote v
		JOIN candidate c ON c.id = v.candidate_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	var result []VoteRow
	for rows.Next() {
		var vr VoteRow
		if err := rows.Scan(&vr.CandidateID, &vr.CountyID, &vr.Name, &vr.Party, &vr.Office); err != nil {
			return nil, fmt.Errorf("failed to scan vote row: %w", err)
		}
		result = append(result, vr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate votes: %w", err)
	}

	return result, nil
}

// ComputeStandings turns raw vote rows into the national presidential
// standings and per-county standings for every office. Idempotent: the same
// rows always produce the same output.
func ComputeStandings(votes []VoteRow) (national []models.CandidateTally, byCounty map[string][]models.CandidateTally) {
	nationalCounts := make(map[string]*models.CandidateTally)
	countyCounts := make(map[string]map[string]*models.CandidateTally)
	totalPresVotes := 0

	for _, v := range votes {
		// National standings count presidential votes only
		if v.Office == models.OfficePresident {
			entry, ok := nationalCounts[v.CandidateID]
			if !ok {
				entry = &models.CandidateTally{
					CandidateID: v.CandidateID,
					Name:        v.Name,
					Party:       v.Party,
				}
				nationalCounts[v.CandidateID] = entry
			}
			entry.Votes++
			totalPresVotes++
		}

		// County standings count every office
		county, ok := countyCounts[v.CountyID]
		if !ok {
			county = make(map[string]*models.CandidateTally)
			countyCounts[v.CountyID] = county
		}
		entry, ok := county[v.CandidateID]
		if !ok {
			entry = &models.CandidateTally{
				CandidateID: v.CandidateID,
				Name:        v.Name,
				Party:       v.Party,
			}
			county[v.CandidateID] = entry
		}
		entry.Votes++
	}

	national = rankTallies(nationalCounts, totalPresVotes)

	byCounty = make(map[string][]models.CandidateTally, len(countyCounts))
	for countyID, candidates := range countyCounts {
		countyTotal := 0
		for _, c := range candidates {
			countyTotal += c.Votes
		}
		byCounty[countyID] = rankTallies(candidates, countyTotal)
	}

	return national, byCounty
}

// rankTallies scores each entry against total and orders by votes descending.
// Ties break on candidate ID ascending so repeated calls rank identically.
func rankTallies(counts map[string]*models.CandidateTally, total int) []models.CandidateTally {
	result := make([]models.CandidateTally, 0, len(counts))
	for _, c := range counts {
		score := 0.0
		if total > 0 {
			score = float64(c.Votes) / float64(total)
		}
		c.Score = score
		result = append(result, *c)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Votes != result[j].Votes {
			return result[i].Votes > result[j].Votes
		}
		return result[i].CandidateID < result[j].CandidateID
	})

	return result
}

// CountByCandidate groups votes by candidate, optionally scoped to one
// county, and returns the per-candidate counts plus their sum.
func CountByCandidate(ctx context.Context, db *sql.DB, countyID string) (map[string]int, int, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if countyID != "" {
		rows, err = db.QueryContext(ctx, `
			SELECT candidate_id, COUNT(*)
			FROM vote
			WHERE county_id = $1
			GROUP BY candidate_id
		`, countyID)
	} else {
		rows, err = db.QueryContext(ctx, `
			SELECT candidate_id, COUNT(*)
			FROM vote
			GROUP BY candidate_id
		`)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to group votes: %w", err)
	}
	defer rows.Close()

	votes := make(map[string]int)
	total := 0
	for rows.Next() {
		var candidateID string
		var count int
		if err := rows.Scan(&candidateID, &count); err != nil {
			return nil, 0, fmt.Errorf("failed to scan vote count: %w", err)
		}
		votes[candidateID] = count
		total += count
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate vote counts: %w", err)
	}

	return votes, total, nil
}

// LeadingMPs returns the front-running MP candidate per constituency for a
// county. Ties resolve to the lower candidate ID, deterministically.
func LeadingMPs(ctx context.Context, db *sql.DB, countyID string) (map[string]models.ConstituencyLeader, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT v.constituency_id, v.candidate_id, c.name, c.party, COUNT(*) AS n
		FROM vote v
		JOIN candidate c ON c.id = v.candidate_id
		WHERE v.county_id = $1 AND c.office = 'mp' AND v.constituency_id IS NOT NULL
		GROUP BY v.constituency_id, v.candidate_id, c.name, c.party
		ORDER BY n DESC, v.candidate_id ASC
	`, countyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query MP standings: %w", err)
	}
	defer rows.Close()

	// First row per constituency wins because of the descending order
	leaders := make(map[string]models.ConstituencyLeader)
	for rows.Next() {
		var constituencyID, candidateID, name string
		var party *string
		var votes int
		if err := rows.Scan(&constituencyID, &candidateID, &name, &party, &votes); err != nil {
			return nil, fmt.Errorf("failed to scan MP standing: %w", err)
		}
		if _, seen := leaders[constituencyID]; seen {
			continue
		}
		leaders[constituencyID] = models.ConstituencyLeader{
			CandidateID: candidateID,
			Name:        name,
			Party:       party,
			Votes:       votes,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate MP standings: %w", err)
	}

	return leaders, nil
}

// LeadingGovernor returns the county's top governor candidate, or nil when
// no governor votes exist. Score is the share of the county's governor
// votes.
func LeadingGovernor(ctx context.Context, db *sql.DB, countyID string) (*models.CandidateTally, error) {
	var govTotal int
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM vote v
		JOIN candidate c ON c.id = v.candidate_id
		WHERE v.county_id = $1 AND c.office = 'governor'
	`, countyID).Scan(&govTotal)
	if err != nil {
		return nil, fmt.Errorf("failed to count governor votes: %w", err)
	}
	if govTotal == 0 {
		return nil, nil
	}

	var lead models.CandidateTally
	err = db.QueryRowContext(ctx, `
		SELECT v.candidate_id, c.name, c.party, COUNT(*) AS n
		FROM vote v
		JOIN candidate c ON c.id = v.candidate_id
		WHERE v.county_id = $1 AND c.office = 'governor'
		GROUP BY v.candidate_id, c.name, c.party
		ORDER BY n DESC, v.candidate_id ASC
		LIMIT 1
	`, countyID).Scan(&lead.CandidateID, &lead.Name, &lead.Party, &lead.Votes)
	if err != nil {
		return nil, fmt.Errorf("failed to query leading governor: %w", err)
	}

	lead.Score = float64(lead.Votes) / float64(govTotal)
	return &lead, nil
}
