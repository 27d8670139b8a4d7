package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/jonathan/impact-search/internal/taxonomy"
	"github.com/jonathan/impact-search/internal/types"
)

func newVocabularyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocabulary",
		Short: "Print the closed skill, cause and enum vocabularies as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"categories":     taxonomy.Categories(),
				"causes":         taxonomy.Causes(),
				"workModes":      types.WorkModes,
				"volunteerTypes": types.VolunteerTypes,
			})
		},
	}
}
