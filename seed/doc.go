// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed loads the static reference data the live system never mutates.

# What gets seeded

  - The 47 counties, hardcoded with their official codes
  - The presidential slate, hardcoded
  - Constituencies, incumbent MPs, and 2027 aspirants from mp_data.json
  - Governors from candidates.json

# Running

	if err := seed.Run(db, cfg.SeedDir); err != nil {
		log.Fatal(err)
	}

Counties and presidents are always seeded. The JSON files are optional;
missing files are logged and skipped so a bare database still serves the
presidential ballot.

# Idempotency

Every write is an upsert keyed on a deterministic ID (slug of the display
name, or "<countyCode>-<squashedname>" for constituencies), so Run can
execute on every startup without duplicating rows.

# File formats

mp_data.json (root key "mps" or the older "parliamentary_data_2026"):

	{"mps": [{"county": "Nairobi", "code": 47, "constituencies": [
	    {"name": "Westlands", "mp": "Tim Wanyonyi", "party": "ODM",
	     "aspirants_2027": ["Jane Doe (UDA)"]}]}]}

candidates.json:

	{"governors": [{"name": "Johnson Sakaja", "party": "UDA", "countyCode": 47}]}

Aspirant strings carry the party in parentheses; without one the party
defaults to Independent.
*/
package seed
