// Package keyword implements the deterministic fallback that maps substrings
// of a search query onto skill and cause identifiers when no language model
// is available.
//
// Matching is plain substring containment on the lower-cased query, so a key
// such as "art" also fires inside "smart" or "part-time". That is a known,
// accepted limitation in exchange for predictable output.
package keyword

import (
	"strings"

	"github.com/jonathan/impact-search/internal/types"
)

// Match compiles a query into candidate filters using the static keyword
// tables. It performs no I/O and never fails.
func Match(query string) *types.RawFilters {
	q := strings.ToLower(query)

	return &types.RawFilters{
		Skills:        collect(q, skillKeywords),
		Causes:        collect(q, causeKeywords),
		WorkMode:      string(detectWorkMode(q)),
		VolunteerType: string(detectVolunteerType(q)),
	}
}

// collect unions the ids of every rule whose substring occurs in q, in rule order
func collect(q string, rules []rule) []string {
	seen := make(map[string]struct{})
	result := []string{}
	for _, r := range rules {
		if !strings.Contains(q, r.substr) {
			continue
		}
		for _, id := range r.ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			result = append(result, id)
		}
	}
	return result
}

// detectWorkMode returns the first work mode evidenced by q, in priority order
func detectWorkMode(q string) types.WorkMode {
	switch {
	case strings.Contains(q, "remote"):
		return types.WorkModeRemote
	case strings.Contains(q, "onsite"), strings.Contains(q, "on-site"), strings.Contains(q, "in person"):
		return types.WorkModeOnsite
	case strings.Contains(q, "hybrid"):
		return types.WorkModeHybrid
	default:
		return ""
	}
}

func detectVolunteerType(q string) types.VolunteerType {
	switch {
	case strings.Contains(q, "free"), strings.Contains(q, "pro bono"), strings.Contains(q, "probono"):
		return types.VolunteerTypeFree
	case strings.Contains(q, "paid"):
		return types.VolunteerTypePaid
	default:
		return ""
	}
}
