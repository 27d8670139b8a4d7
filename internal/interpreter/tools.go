package interpreter

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/impact-search/internal/db"
	"github.com/jonathan/impact-search/internal/llm"
	"github.com/jonathan/impact-search/internal/observability"
	"github.com/jonathan/impact-search/internal/taxonomy"
)

// Tool names exposed to the model
const (
	ToolSearchVolunteers   = "search_volunteers"
	ToolGetSkillCategories = "get_skill_categories"
)

type toolset struct {
	store  ProfileSearcher
	logger *zap.Logger
}

func (ts *toolset) searchVolunteers() llm.Tool {
	return llm.Tool{
		Def: llm.ToolDef{
			Name: ToolSearchVolunteers,
			Description: "Search impact agent profiles by name, location or headline. " +
				"Use only when the query names a specific person, organisation or place.",
			Parameters: &llm.Schema{
				Type: llm.TypeObject,
				Properties: map[string]*llm.Schema{
					"name":     {Type: llm.TypeString, Description: "Part of the person's name"},
					"location": {Type: llm.TypeString, Description: "City, country or region"},
					"headline": {Type: llm.TypeString, Description: "Words from the profile headline"},
					"skills": {
						Type:        llm.TypeArray,
						Description: "Skill IDs from the taxonomy; profiles must have at least one",
						Items:       &llm.Schema{Type: llm.TypeString},
					},
					"limit": {
						Type:        llm.TypeInteger,
						Description: fmt.Sprintf("Maximum profiles to return (default %d, max %d)", db.DefaultProfileLimit, db.MaxProfileLimit),
					},
				},
			},
		},
		Handler: ts.handleSearchVolunteers,
	}
}

// handleSearchVolunteers never fails: store problems degrade to an empty result
func (ts *toolset) handleSearchVolunteers(ctx context.Context, args map[string]any) (map[string]any, error) {
	q := db.ProfileQuery{
		Name:     stringArg(args, "name"),
		Location: stringArg(args, "location"),
		Headline: stringArg(args, "headline"),
		Skills:   knownSkills(stringsArg(args, "skills")),
		Limit:    limitArg(args, "limit"),
	}

	if ts.store == nil {
		observability.RecordToolCall(ToolSearchVolunteers, observability.ToolStatusDegraded)
		ts.logger.Warn("Profile search requested but no profile store is configured")
		return emptyVolunteers(), nil
	}

	profiles, err := ts.store.SearchProfiles(ctx, q)
	if err != nil {
		observability.RecordToolCall(ToolSearchVolunteers, observability.ToolStatusDegraded)
		ts.logger.Warn("Profile search failed", zap.Error(err))
		return emptyVolunteers(), nil
	}

	volunteers := make([]any, 0, len(profiles))
	for _, p := range profiles {
		skills := make([]any, len(p.Skills))
		for i, s := range p.Skills {
			skills[i] = s
		}
		volunteers = append(volunteers, map[string]any{
			"id":            p.ID,
			"name":          p.Name,
			"headline":      p.Headline,
			"location":      p.Location,
			"skills":        skills,
			"categories":    skillCategories(p.Skills),
			"volunteerType": p.VolunteerType,
		})
	}

	observability.RecordToolCall(ToolSearchVolunteers, observability.ToolStatusOK)
	return map[string]any{"volunteers": volunteers, "count": len(volunteers)}, nil
}

func (ts *toolset) getSkillCategories() llm.Tool {
	return llm.Tool{
		Def: llm.ToolDef{
			Name:        ToolGetSkillCategories,
			Description: "Return every skill category with its skill IDs and names.",
		},
		Handler: func(_ context.Context, _ map[string]any) (map[string]any, error) {
			observability.RecordToolCall(ToolGetSkillCategories, observability.ToolStatusOK)
			return skillCategoriesPayload(), nil
		},
	}
}

func skillCategoriesPayload() map[string]any {
	cats := taxonomy.Categories()
	out := make([]any, len(cats))
	for i, cat := range cats {
		skills := make([]any, len(cat.Skills))
		for j, s := range cat.Skills {
			skills[j] = map[string]any{"id": s.ID, "name": s.Name}
		}
		out[i] = map[string]any{"id": cat.ID, "name": cat.Name, "skills": skills}
	}
	return map[string]any{"categories": out}
}

// skillCategories lists the distinct categories of skills, in first-seen order.
// Skills outside the taxonomy are skipped.
func skillCategories(skills []string) []any {
	out := []any{}
	seen := make(map[string]bool, len(skills))
	for _, id := range skills {
		cat := taxonomy.CategoryOf(id)
		if cat == "" || seen[cat] {
			continue
		}
		seen[cat] = true
		out = append(out, cat)
	}
	return out
}

func emptyVolunteers() map[string]any {
	return map[string]any{"volunteers": []any{}, "count": 0}
}

// knownSkills drops IDs outside the skill vocabulary
func knownSkills(ids []string) []string {
	var out []string
	for _, id := range ids {
		if taxonomy.IsSkill(id) {
			out = append(out, id)
		}
	}
	return out
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return strings.TrimSpace(s)
}

func stringsArg(args map[string]any, key string) []string {
	switch v := args[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	default:
		return nil
	}
}

// limitArg reads the limit and clamps it to [1, MaxProfileLimit]
func limitArg(args map[string]any, key string) int {
	n := float64(db.DefaultProfileLimit)
	switch v := args[key].(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			n = f
		}
	}
	if math.IsNaN(n) {
		return db.DefaultProfileLimit
	}
	return int(math.Max(1, math.Min(float64(db.MaxProfileLimit), math.Floor(n))))
}
