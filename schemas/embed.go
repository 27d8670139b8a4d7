// Package schemas embeds the JSON Schemas for model output and seed data.
package schemas

import "embed"

//go:embed *.schema.json
var files embed.FS

const (
	// SearchFiltersFile is the schema for the interpreter's final answer
	SearchFiltersFile = "search_filters.schema.json"
	// SeedProfilesFile is the schema for migrate --seed input
	SeedProfilesFile = "seed_profiles.schema.json"
)

// Load returns the content of an embedded schema file
func Load(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MustLoad is Load for schemas required at initialization time
func MustLoad(name string) string {
	s, err := Load(name)
	if err != nil {
		panic("schemas: " + err.Error())
	}
	return s
}
