// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/otienojakes/kura/identity"
	"github.com/otienojakes/kura/models"
)

// The full presidential slate is small enough to hardcode.
var presidents = []struct {
	Name  string
	Party string
}{
	{"William Ruto", "UDA"},
	{"Raila Odinga", "ODM"},
	{"Kalonzo Musyoka", "Wiper"},
	{"George Wajackoyah", "Roots"},
}

// All 47 counties with their official codes.
var counties = []struct {
	Code int
	Name string
}{
	{1, "Mombasa"}, {2, "Kwale"}, {3, "Kilifi"}, {4, "Tana River"},
	{5, "Lamu"}, {6, "Taita Taveta"}, {7, "Garissa"}, {8, "Wajir"},
	{9, "Mandera"}, {10, "Marsabit"}, {11, "Isiolo"}, {12, "Meru"},
	{13, "Tharaka-Nithi"}, {14, "Embu"}, {15, "Kitui"}, {16, "Machakos"},
	{17, "Makueni"}, {18, "Nyandarua"}, {19, "Nyeri"}, {20, "Kirinyaga"},
	{21, "Murang'a"}, {22, "Kiambu"}, {23, "Turkana"}, {24, "West Pokot"},
	{25, "Samburu"}, {26, "Trans Nzoia"}, {27, "Uasin Gishu"},
	{28, "Elgeyo Marakwet"}, {29, "Nandi"}, {30, "Baringo"},
	{31, "Laikipia"}, {32, "Nakuru"}, {33, "Narok"}, {34, "Kajiado"},
	{35, "Kericho"}, {36, "Bomet"}, {37, "Kakamega"}, {38, "Vihiga"},
	{39, "Bungoma"}, {40, "Busia"}, {41, "Siaya"}, {42, "Kisumu"},
	{43, "Homa Bay"}, {44, "Migori"}, {45, "Kisii"}, {46, "Nyamira"},
	{47, "Nairobi"},
}

// File formats for the structured seed data.

type constituencyData struct {
	Name          string   `json:"name"`
	MP            string   `json:"mp"`
	Party         string   `json:"party"`
	Aspirants2027 []string `json:"aspirants_2027,omitempty"`
}

type countyMPData struct {
	County         string             `json:"county"`
	Code           int                `json:"code"`
	Constituencies []constituencyData `json:"constituencies"`
}

type mpFileRoot struct {
	MPs                   []countyMPData `json:"mps,omitempty"`
	ParliamentaryData2026 []countyMPData `json:"parliamentary_data_2026,omitempty"`
}

type governorData struct {
	Name       string `json:"name"`
	Party      string `json:"party"`
	CountyCode int    `json:"countyCode"`
}

type candidatesFileRoot struct {
	Governors []governorData `json:"governors,omitempty"`
}

// Run seeds all static reference data. Counties and the presidential slate
// are always seeded; constituency/MP and governor data come from JSON files
// in dir and are skipped with a warning when absent. Every write is an
// upsert, so Run is safe to call on every startup.
func Run(db *sql.DB, dir string) error {
	if err := Counties(db); err != nil {
		return err
	}
	if err := Presidents(db); err != nil {
		return err
	}

	if dir == "" {
		return nil
	}

	mpPath := filepath.Join(dir, "mp_data.json")
	if _, err := os.Stat(mpPath); err == nil {
		if err := MPData(db, mpPath); err != nil {
			return err
		}
	} else {
		slog.Warn("mp_data.json not found, skipping MP seeding", "path", mpPath)
	}

	candPath := filepath.Join(dir, "candidates.json")
	if _, err := os.Stat(candPath); err == nil {
		if err := Governors(db, candPath); err != nil {
			return err
		}
	} else {
		slog.Warn("candidates.json not found, skipping governor seeding", "path", candPath)
	}

	return nil
}

// Counties upserts the 47 fixed counties. The county ID is the slug of its
// name, so URLs read /counties/nairobi rather than an opaque key.
func Counties(db *sql.DB) error {
	for _, c := range counties {
		_, err := db.Exec(`
			INSERT INTO county (id, code, name)
			VALUES ($1, $2, $3)
			ON CONFLICT (code) DO UPDATE SET name = excluded.name
		`, identity.Slugify(c.Name), c.Code, c.Name)
		if err != nil {
			return fmt.Errorf("failed to seed county %q: %w", c.Name, err)
		}
	}
	return nil
}

// Presidents upserts the presidential slate.
func Presidents(db *sql.DB) error {
	for _, p := range presidents {
		bio := "Running for President of Kenya"
		err := upsertCandidate(db, models.Candidate{
			ID:     identity.Slugify(p.Name),
			Name:   p.Name,
			Party:  &p.Party,
			Office: models.OfficePresident,
			Bio:    &bio,
		})
		if err != nil {
			return fmt.Errorf("failed to seed president %q: %w", p.Name, err)
		}
	}
	return nil
}

// MPData loads the structured constituency/MP/aspirant file and upserts
// constituencies, incumbent MPs, and declared aspirants.
func MPData(db *sql.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var root mpFileRoot
	if err := json.Unmarshal(raw, &root); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Both historical root keys are accepted
	groups := root.MPs
	if len(groups) == 0 {
		groups = root.ParliamentaryData2026
	}

	for _, group := range groups {
		countyID, err := countyIDByCode(db, group.Code)
		if err == sql.ErrNoRows {
			slog.Warn("skipping MPs for unknown county code",
				"county", group.County, "code", group.Code)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to look up county code %d: %w", group.Code, err)
		}

		for _, consti := range group.Constituencies {
			constiID := fmt.Sprintf("%d-%s", group.Code, identity.SquashName(consti.Name))
			_, err := db.Exec(`
				INSERT INTO constituency (id, name, county_id)
				VALUES ($1, $2, $3)
				ON CONFLICT (id) DO NOTHING
			`, constiID, consti.Name, countyID)
			if err != nil {
				return fmt.Errorf("failed to seed constituency %q: %w", consti.Name, err)
			}

			// Incumbent MP
			bio := fmt.Sprintf("Incumbent MP for %s", consti.Name)
			party := consti.Party
			err = upsertCandidate(db, models.Candidate{
				ID:             identity.Slugify(consti.MP),
				Name:           consti.MP,
				Party:          &party,
				Office:         models.OfficeMP,
				Bio:            &bio,
				HomeCountyID:   &countyID,
				ConstituencyID: &constiID,
			})
			if err != nil {
				return fmt.Errorf("failed to seed MP %q: %w", consti.MP, err)
			}

			// Declared aspirants, e.g. "Nasir Dolal (ODM)"
			for _, aspirant := range consti.Aspirants2027 {
				name, party := parseAspirant(aspirant)
				bio := fmt.Sprintf("Aspirant for %s 2027", consti.Name)
				err = upsertCandidate(db, models.Candidate{
					ID:             identity.Slugify(name),
					Name:           name,
					Party:          &party,
					Office:         models.OfficeMP,
					Bio:            &bio,
					HomeCountyID:   &countyID,
					ConstituencyID: &constiID,
				})
				if err != nil {
					return fmt.Errorf("failed to seed aspirant %q: %w", name, err)
				}
			}
		}
	}

	return nil
}

// Governors loads the candidates file and upserts governor candidates.
func Governors(db *sql.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var root candidatesFileRoot
	if err := json.Unmarshal(raw, &root); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, gov := range root.Governors {
		countyID, err := countyIDByCode(db, gov.CountyCode)
		if err == sql.ErrNoRows {
			slog.Warn("skipping governor for unknown county code",
				"name", gov.Name, "code", gov.CountyCode)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to look up county code %d: %w", gov.CountyCode, err)
		}

		var countyName string
		if err := db.QueryRow(`SELECT name FROM county WHERE id = $1`, countyID).Scan(&countyName); err != nil {
			return fmt.Errorf("failed to look up county name: %w", err)
		}

		bio := fmt.Sprintf("Governor of %s", countyName)
		party := gov.Party
		err = upsertCandidate(db, models.Candidate{
			ID:           identity.Slugify(gov.Name),
			Name:         gov.Name,
			Party:        &party,
			Office:       models.OfficeGovernor,
			Bio:          &bio,
			HomeCountyID: &countyID,
		})
		if err != nil {
			return fmt.Errorf("failed to seed governor %q: %w", gov.Name, err)
		}
	}

	return nil
}

func upsertCandidate(db *sql.DB, c models.Candidate) error {
	_, err := db.Exec(`
		INSERT INTO candidate (id, name, party, office, bio, home_county_id, constituency_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			party = excluded.party,
			office = excluded.office,
			home_county_id = excluded.home_county_id,
			constituency_id = excluded.constituency_id
	`, c.ID, c.Name, c.Party, c.Office, c.Bio, c.HomeCountyID, c.ConstituencyID)
	return err
}

func countyIDByCode(db *sql.DB, code int) (string, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM county WHERE code = $1`, code).Scan(&id)
	return id, err
}

// parseAspirant splits "Nasir Dolal (ODM)" into name and party.
// Aspirants without a party affiliation default to Independent.
func parseAspirant(s string) (name, party string) {
	name = s
	party = "Independent"
	if i := strings.Index(s, "("); i >= 0 {
		name = strings.TrimSpace(s[:i])
		party = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s[i+1:]), ")"))
	}
	return name, party
}
