// Package types provides type definitions for structured data used throughout the impact-search system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// WorkMode is how a volunteer engagement is delivered
type WorkMode string

// WorkMode values
const (
	WorkModeRemote WorkMode = "remote"
	WorkModeOnsite WorkMode = "onsite"
	WorkModeHybrid WorkMode = "hybrid"
)

// WorkModes lists every valid WorkMode in priority order
var WorkModes = []WorkMode{WorkModeRemote, WorkModeOnsite, WorkModeHybrid}

// VolunteerType is the engagement type an impact agent offers
type VolunteerType string

// VolunteerType values
const (
	VolunteerTypeFree VolunteerType = "free"
	VolunteerTypePaid VolunteerType = "paid"
	VolunteerTypeBoth VolunteerType = "both"
)

// VolunteerTypes lists every valid VolunteerType
var VolunteerTypes = []VolunteerType{VolunteerTypeFree, VolunteerTypePaid, VolunteerTypeBoth}

// ValidWorkMode reports whether s is exactly one of the WorkMode values
func ValidWorkMode(s string) bool {
	for _, m := range WorkModes {
		if string(m) == s {
			return true
		}
	}
	return false
}

// ValidVolunteerType reports whether s is exactly one of the VolunteerType values
func ValidVolunteerType(s string) bool {
	for _, v := range VolunteerTypes {
		if string(v) == s {
			return true
		}
	}
	return false
}

// RawFilters is a candidate filter set before sanitization.
// It is produced either by decoding the interpreter's JSON output or by the
// keyword matcher, and may contain identifiers outside the vocabularies.
type RawFilters struct {
	Skills              []string `json:"skills,omitempty"`
	Causes              []string `json:"causes,omitempty"`
	WorkMode            string   `json:"workMode,omitempty"`
	VolunteerType       string   `json:"volunteerType,omitempty"`
	Location            string   `json:"location,omitempty"`
	MinRating           *float64 `json:"minRating,omitempty"`
	MaxHourlyRate       *float64 `json:"maxHourlyRate,omitempty"`
	MatchedVolunteerIDs []string `json:"matchedVolunteerIds,omitempty"`
}

// SearchFilters is the sanitized filter set returned to callers.
// Skills and Causes are always subsets of the closed vocabularies.
type SearchFilters struct {
	Skills              []string      `json:"skills"`
	Causes              []string      `json:"causes"`
	WorkMode            WorkMode      `json:"workMode,omitempty"`
	VolunteerType       VolunteerType `json:"volunteerType,omitempty"`
	Location            *string       `json:"location,omitempty"`
	MinRating           *float64      `json:"minRating,omitempty"`
	MaxHourlyRate       *float64      `json:"maxHourlyRate,omitempty"`
	MatchedVolunteerIDs []string      `json:"matchedVolunteerIds,omitzero"`
}
