// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL sticks to the dialect subset shared by PostgreSQL and SQLite so the
same statements run against either driver.

# Tables

The schema includes:

  - county: the 47 fixed counties (code 1-47)
  - constituency: constituencies per county
  - candidate: candidates per office (president, governor, mp)
  - vote: one row per (session, office), overwritten on re-vote

# Relationships

	county 1──* constituency
	county 1──* candidate (home county)
	constituency 1──* candidate (MP seats)
	county 1──* vote
	candidate 1──* vote

# The vote uniqueness constraint

vote carries UNIQUE (session_id, office), where office is a snapshot of the
candidate's office taken at submission time. This turns the "one active vote
per session per office" rule into a database constraint, so two racing
submissions for the same session and office converge on a single row instead
of duplicating.

# Indexes

Performance indexes on:

  - constituency.county_id
  - candidate.office, candidate.home_county_id, candidate.constituency_id
  - vote.county_id, vote.candidate_id, vote.constituency_id
  - vote.(session_id, office) (unique)
*/
package db
