// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

// NewSessionID creates a random opaque session identifier.
// The core never inspects the value; anything the client supplies works just
// as well, this is only a convenience for clients without local storage.
func NewSessionID() (string, error) {
	b := make([]byte, 18) // 18 bytes = 144 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// Slugify lowercases a display name and replaces each non-alphanumeric
// character with a hyphen. Used for candidate and county IDs so that
// "Raila Odinga" and "raila odinga" seed the same record.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// SquashName is Slugify without separators, matching the constituency ID
// convention "<countyCode>-<squashedname>".
func SquashName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
