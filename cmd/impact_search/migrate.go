package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/impact-search/internal/db"
	"github.com/jonathan/impact-search/internal/schemas"
	rootschemas "github.com/jonathan/impact-search/schemas"
)

func newMigrateCmd(a *app) *cobra.Command {
	var seedFile string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the profile table and optionally load seed profiles",
		Long: `Create the volunteer_profiles table and its indexes if missing.
With --seed, upsert profiles from a JSON array file. Requires DATABASE_URL.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.cfg.DatabaseEnabled() {
				return fmt.Errorf("DATABASE_URL is required")
			}

			var seeds []db.SeedProfile
			if seedFile != "" {
				var err error
				if seeds, err = loadSeedProfiles(seedFile); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			database, err := db.Connect(ctx, a.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := database.EnsureProfileSchema(ctx); err != nil {
				return err
			}
			a.logger.Info("Profile schema ready", zap.String("table", db.ProfilesTable))

			if len(seeds) == 0 {
				return nil
			}
			n, err := database.UpsertProfiles(ctx, seeds)
			if err != nil {
				return err
			}
			a.logger.Info("Seed profiles loaded", zap.Int("count", n))
			return nil
		},
	}

	cmd.Flags().StringVar(&seedFile, "seed", "", "JSON file with an array of profiles to upsert")
	return cmd
}

// loadSeedProfiles reads a seed file and checks it against the seed schema
// before decoding
func loadSeedProfiles(path string) ([]db.SeedProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	validator, err := schemas.Compile(rootschemas.SeedProfilesFile, rootschemas.MustLoad(rootschemas.SeedProfilesFile))
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(string(data)); err != nil {
		return nil, fmt.Errorf("seed file %s does not match %s: %w", path, validator.Name(), err)
	}

	var seeds []db.SeedProfile
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return seeds, nil
}
