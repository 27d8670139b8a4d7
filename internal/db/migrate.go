package db

import (
	"context"
	"fmt"
)

var profileSchemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS ` + ProfilesTable + ` (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		headline       TEXT,
		location       TEXT,
		city           TEXT,
		country        TEXT,
		skills         TEXT[] NOT NULL DEFAULT '{}',
		volunteer_type TEXT,
		is_active      BOOLEAN NOT NULL DEFAULT TRUE,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_volunteer_profiles_skills ON ` + ProfilesTable + ` USING GIN (skills)`,
	`CREATE INDEX IF NOT EXISTS idx_volunteer_profiles_active ON ` + ProfilesTable + ` (is_active)`,
}

// EnsureProfileSchema creates the profiles table and its indexes if missing.
// The search path never writes; this exists for local setup and tests.
func (db *DB) EnsureProfileSchema(ctx context.Context) error {
	for i, stmt := range profileSchemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply profile schema statement %d: %w", i+1, err)
		}
	}
	return nil
}

// SeedProfile is a profile row loaded from a seed file
type SeedProfile struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Headline      string   `json:"headline,omitempty"`
	Location      string   `json:"location,omitempty"`
	City          string   `json:"city,omitempty"`
	Country       string   `json:"country,omitempty"`
	Skills        []string `json:"skills"`
	VolunteerType string   `json:"volunteerType,omitempty"`
	Inactive      bool     `json:"inactive,omitempty"`
}

// UpsertProfiles inserts or replaces seed profiles in one transaction
func (db *DB) UpsertProfiles(ctx context.Context, profiles []SeedProfile) (int, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, p := range profiles {
		if p.ID == "" || p.Name == "" {
			return 0, fmt.Errorf("seed profile requires id and name (got id=%q)", p.ID)
		}
		skills := p.Skills
		if skills == nil {
			skills = []string{}
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO `+ProfilesTable+`
				(id, name, headline, location, city, country, skills, volunteer_type, is_active)
			VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, NULLIF($8, ''), $9)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				headline = EXCLUDED.headline,
				location = EXCLUDED.location,
				city = EXCLUDED.city,
				country = EXCLUDED.country,
				skills = EXCLUDED.skills,
				volunteer_type = EXCLUDED.volunteer_type,
				is_active = EXCLUDED.is_active`,
			p.ID, p.Name, p.Headline, p.Location, p.City, p.Country, skills, p.VolunteerType, !p.Inactive)
		if err != nil {
			return 0, fmt.Errorf("failed to upsert profile %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit profiles: %w", err)
	}
	return len(profiles), nil
}
