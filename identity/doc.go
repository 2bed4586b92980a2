// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity provides session ID minting and name slugification.

# Session IDs

Sessions are anonymous, opaque strings. Clients normally generate and store
their own, but the server can mint one:

	id, err := identity.NewSessionID()

IDs are random 18-byte (144-bit) values, URL-safe base64 encoded without
padding. Nothing about a session is stored server-side until it votes.

# Slugs

Stable IDs for seeded reference data are derived from display names:

	identity.Slugify("Raila Odinga")   // "raila-odinga"
	identity.SquashName("Embakasi East") // "embakasieast"

Slugify maps each non-alphanumeric character to a hyphen; SquashName drops
them. Constituency IDs use the "<countyCode>-<squashedname>" convention.
*/
package identity
