package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/impact-search/internal/prompts"
	"github.com/jonathan/impact-search/internal/taxonomy"
	"github.com/jonathan/impact-search/internal/types"
)

// buildSystemPrompt renders the system prompt with the closed vocabularies
func buildSystemPrompt(maxSteps int) (string, error) {
	prompt, err := prompts.Render(promptFile, "system", map[string]string{
		"SkillCategories": formatCategories(),
		"Causes":          strings.Join(taxonomy.CauseIDs(), ", "),
		"WorkModes":       joinEnum(types.WorkModes),
		"VolunteerTypes":  joinEnum(types.VolunteerTypes),
		"MaxSteps":        strconv.Itoa(maxSteps),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render system prompt: %w", err)
	}
	return prompt, nil
}

// formatCategories lists each category with its skill IDs, one per line
func formatCategories() string {
	var sb strings.Builder
	for _, cat := range taxonomy.Categories() {
		ids := make([]string, len(cat.Skills))
		for i, s := range cat.Skills {
			ids[i] = s.ID
		}
		sb.WriteString(fmt.Sprintf("- %s (%s): %s\n", cat.Name, cat.ID, strings.Join(ids, ", ")))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func joinEnum[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
