package db

// Profile search limits
const (
	DefaultProfileLimit = 20
	MaxProfileLimit     = 50
)

// ProfileQuery filters impact agent profiles. Text fields are case-insensitive
// substrings OR'd together; Skills, when set, is ANDed with the text match.
type ProfileQuery struct {
	Name     string
	Location string // matched against location, city and country
	Headline string
	Skills   []string
	Limit    int
}

// profileRow is a row of volunteer_profiles as scanned
type profileRow struct {
	ID            string
	Name          string
	Headline      *string
	Location      *string
	City          *string
	Country       *string
	Skills        []string
	VolunteerType *string
}
