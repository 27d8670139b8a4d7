// Package types provides type definitions for structured data used throughout the impact-search system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MaxSummarySkills is the number of skills kept in a ProfileSummary
const MaxSummarySkills = 5

// ProfileSummary is the read-only projection of an impact agent profile
// returned to the interpreter's profile search tool
type ProfileSummary struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Headline      string   `json:"headline,omitempty"`
	Location      string   `json:"location,omitempty"`
	Skills        []string `json:"skills"`
	VolunteerType string   `json:"volunteerType,omitempty"`
}
