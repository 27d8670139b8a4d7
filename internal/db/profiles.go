package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/impact-search/internal/types"
)

// ProfilesTable is the table holding impact agent profiles:
//
//	id text primary key, name text not null, headline text, location text,
//	city text, country text, skills text[] not null default '{}',
//	volunteer_type text, is_active boolean not null default true
const ProfilesTable = "volunteer_profiles"

// SearchProfiles runs one read-only query and returns projected summaries
func (db *DB) SearchProfiles(ctx context.Context, q ProfileQuery) ([]types.ProfileSummary, error) {
	sql, args := buildProfileSearchQuery(q)

	rows, err := db.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (profileRow, error) {
		var r profileRow
		err := row.Scan(&r.ID, &r.Name, &r.Headline, &r.Location, &r.City, &r.Country, &r.Skills, &r.VolunteerType)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan profiles: %w", err)
	}

	summaries := make([]types.ProfileSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, r.summary())
	}
	return summaries, nil
}

// buildProfileSearchQuery renders the SQL and positional arguments for q
func buildProfileSearchQuery(q ProfileQuery) (string, []any) {
	var (
		args    []any
		textOr  []string
		clauses = []string{"is_active"}
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if s := strings.TrimSpace(q.Name); s != "" {
		textOr = append(textOr, "name ILIKE "+arg(likePattern(s)))
	}
	if s := strings.TrimSpace(q.Location); s != "" {
		p := arg(likePattern(s))
		textOr = append(textOr,
			"location ILIKE "+p,
			"city ILIKE "+p,
			"country ILIKE "+p)
	}
	if s := strings.TrimSpace(q.Headline); s != "" {
		textOr = append(textOr, "headline ILIKE "+arg(likePattern(s)))
	}
	if len(textOr) > 0 {
		clauses = append(clauses, "("+strings.Join(textOr, " OR ")+")")
	}
	if len(q.Skills) > 0 {
		clauses = append(clauses, "skills && "+arg(q.Skills)+"::text[]")
	}

	sql := `SELECT id, name, headline, location, city, country, skills, volunteer_type
		FROM ` + ProfilesTable + `
		WHERE ` + strings.Join(clauses, " AND ") + `
		ORDER BY name
		LIMIT ` + arg(clampLimit(q.Limit))

	return sql, args
}

// clampLimit applies the default and the upper bound
func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultProfileLimit
	case limit > MaxProfileLimit:
		return MaxProfileLimit
	default:
		return limit
	}
}

// likePattern escapes LIKE metacharacters and wraps s for substring matching
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func (r profileRow) summary() types.ProfileSummary {
	skills := r.Skills
	if len(skills) > types.MaxSummarySkills {
		skills = skills[:types.MaxSummarySkills]
	}
	copied := make([]string, len(skills))
	copy(copied, skills)

	return types.ProfileSummary{
		ID:            r.ID,
		Name:          r.Name,
		Headline:      deref(r.Headline),
		Location:      r.displayLocation(),
		Skills:        copied,
		VolunteerType: deref(r.VolunteerType),
	}
}

// displayLocation prefers the free-text location, else "city, country"
func (r profileRow) displayLocation() string {
	if loc := deref(r.Location); loc != "" {
		return loc
	}
	var parts []string
	for _, p := range []*string{r.City, r.Country} {
		if s := deref(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
