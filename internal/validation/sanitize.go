package validation

import (
	"math"
	"strings"

	"github.com/jonathan/impact-search/internal/taxonomy"
	"github.com/jonathan/impact-search/internal/types"
)

// Sanitize reduces a candidate filter set to a SearchFilters value whose
// skills and causes are members of the closed vocabularies. Out-of-range
// numbers and unknown enum values are dropped, never clamped.
func Sanitize(raw *types.RawFilters) types.SearchFilters {
	out := types.SearchFilters{
		Skills: []string{},
		Causes: []string{},
	}
	if raw == nil {
		return out
	}

	out.Skills = intersect(raw.Skills, taxonomy.SkillIDs())
	out.Causes = intersect(raw.Causes, taxonomy.CauseIDs())

	if types.ValidWorkMode(raw.WorkMode) {
		out.WorkMode = types.WorkMode(raw.WorkMode)
	}
	if types.ValidVolunteerType(raw.VolunteerType) {
		out.VolunteerType = types.VolunteerType(raw.VolunteerType)
	}

	if loc := strings.TrimSpace(raw.Location); loc != "" {
		out.Location = &loc
	}

	if r, ok := finite(raw.MinRating); ok && validate.Var(r, "gte=1,lte=5") == nil {
		out.MinRating = &r
	}
	if r, ok := finite(raw.MaxHourlyRate); ok && validate.Var(r, "gt=0") == nil {
		out.MaxHourlyRate = &r
	}

	if raw.MatchedVolunteerIDs != nil {
		out.MatchedVolunteerIDs = dedupe(raw.MatchedVolunteerIDs)
	}

	return out
}

// intersect returns the members of vocabulary present in candidates, in vocabulary order
func intersect(candidates []string, vocabulary []string) []string {
	result := []string{}
	if len(candidates) == 0 {
		return result
	}

	want := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		want[c] = struct{}{}
	}
	for _, id := range vocabulary {
		if _, ok := want[id]; ok {
			result = append(result, id)
		}
	}
	return result
}

// dedupe removes blanks and duplicates, keeping first occurrence order
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func finite(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}
