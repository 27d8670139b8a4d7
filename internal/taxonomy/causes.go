package taxonomy

// Cause is a focus area an NGO serves
type Cause struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var causes = []Cause{
	{ID: "education", Name: "Education"},
	{ID: "healthcare", Name: "Healthcare"},
	{ID: "mental-health", Name: "Mental Health"},
	{ID: "environment", Name: "Environment & Climate"},
	{ID: "animal-welfare", Name: "Animal Welfare"},
	{ID: "poverty-alleviation", Name: "Poverty Alleviation"},
	{ID: "women-empowerment", Name: "Women Empowerment"},
	{ID: "child-welfare", Name: "Child Welfare"},
	{ID: "senior-citizens", Name: "Senior Citizens"},
	{ID: "disability-support", Name: "Disability Support"},
	{ID: "disaster-relief", Name: "Disaster Relief"},
	{ID: "human-rights", Name: "Human Rights"},
	{ID: "arts-culture", Name: "Arts & Culture"},
	{ID: "community-development", Name: "Community Development"},
	{ID: "water-sanitation", Name: "Water & Sanitation"},
	{ID: "food-security", Name: "Food Security"},
	{ID: "livelihood", Name: "Livelihood & Skilling"},
}

var causeIndex = func() map[string]struct{} {
	idx := make(map[string]struct{}, len(causes))
	for _, c := range causes {
		idx[c.ID] = struct{}{}
	}
	return idx
}()

// Causes returns a copy of the cause vocabulary in declaration order
func Causes() []Cause {
	return append([]Cause(nil), causes...)
}

// CauseIDs returns every cause identifier in declaration order
func CauseIDs() []string {
	ids := make([]string, len(causes))
	for i, c := range causes {
		ids[i] = c.ID
	}
	return ids
}

// IsCause reports whether id is a member of the cause vocabulary
func IsCause(id string) bool {
	_, ok := causeIndex[id]
	return ok
}
