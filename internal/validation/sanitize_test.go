package validation

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jonathan/impact-search/internal/taxonomy"
	"github.com/jonathan/impact-search/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSanitize_Nil(t *testing.T) {
	got := Sanitize(nil)
	assert.Equal(t, []string{}, got.Skills)
	assert.Equal(t, []string{}, got.Causes)
	assert.Empty(t, got.WorkMode)
	assert.Nil(t, got.MinRating)
}

func TestSanitize_DropsUnknownIdentifiers(t *testing.T) {
	raw := &types.RawFilters{
		Skills: []string{"grant-writing", "underwater-basket-weaving", "seo-content", "grant-writing", "SEO-CONTENT"},
		Causes: []string{"education", "not-a-cause", "education"},
	}

	got := Sanitize(raw)

	assert.Equal(t, []string{"seo-content", "grant-writing"}, got.Skills)
	assert.Equal(t, []string{"education"}, got.Causes)
}

func TestSanitize_ClosureProperty(t *testing.T) {
	raw := &types.RawFilters{
		Skills: append(taxonomy.SkillIDs(), "x", "y", "", "education"),
		Causes: append(taxonomy.CauseIDs(), "grant-writing", "z"),
	}

	got := Sanitize(raw)

	for _, s := range got.Skills {
		assert.True(t, taxonomy.IsSkill(s), "skill %q escaped the vocabulary", s)
	}
	for _, c := range got.Causes {
		assert.True(t, taxonomy.IsCause(c), "cause %q escaped the vocabulary", c)
	}
	assert.Len(t, got.Skills, len(taxonomy.SkillIDs()))
	assert.Len(t, got.Causes, len(taxonomy.CauseIDs()))
}

func TestSanitize_Enums(t *testing.T) {
	tests := []struct {
		name              string
		workMode          string
		volunteerType     string
		wantWorkMode      types.WorkMode
		wantVolunteerType types.VolunteerType
	}{
		{name: "valid", workMode: "hybrid", volunteerType: "both", wantWorkMode: types.WorkModeHybrid, wantVolunteerType: types.VolunteerTypeBoth},
		{name: "wrong case", workMode: "Remote", volunteerType: "FREE"},
		{name: "synonyms rejected", workMode: "on-site", volunteerType: "pro bono"},
		{name: "list rejected", workMode: "remote,onsite", volunteerType: "free|paid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(&types.RawFilters{WorkMode: tt.workMode, VolunteerType: tt.volunteerType})
			assert.Equal(t, tt.wantWorkMode, got.WorkMode)
			assert.Equal(t, tt.wantVolunteerType, got.VolunteerType)
		})
	}
}

func TestSanitize_Ranges(t *testing.T) {
	tests := []struct {
		name      string
		minRating *float64
		maxRate   *float64
		wantMin   *float64
		wantMax   *float64
	}{
		{name: "in range", minRating: ptr(4.5), maxRate: ptr(25.0), wantMin: ptr(4.5), wantMax: ptr(25.0)},
		{name: "bounds inclusive", minRating: ptr(1.0), wantMin: ptr(1.0)},
		{name: "upper bound inclusive", minRating: ptr(5.0), wantMin: ptr(5.0)},
		{name: "rating too high dropped", minRating: ptr(7.0)},
		{name: "rating too low dropped", minRating: ptr(0.5)},
		{name: "zero rate dropped", maxRate: ptr(0.0)},
		{name: "negative rate dropped", maxRate: ptr(-10.0)},
		{name: "nan dropped", minRating: ptr(math.NaN()), maxRate: ptr(math.NaN())},
		{name: "inf dropped", maxRate: ptr(math.Inf(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(&types.RawFilters{MinRating: tt.minRating, MaxHourlyRate: tt.maxRate})
			assert.Equal(t, tt.wantMin, got.MinRating)
			assert.Equal(t, tt.wantMax, got.MaxHourlyRate)
		})
	}
}

func TestSanitize_PassThroughFields(t *testing.T) {
	raw := &types.RawFilters{
		Location:            "Bengaluru, India",
		MatchedVolunteerIDs: []string{"u1", "u2", "u1", " "},
	}

	got := Sanitize(raw)

	want := types.SearchFilters{
		Skills:              []string{},
		Causes:              []string{},
		Location:            ptr("Bengaluru, India"),
		MatchedVolunteerIDs: []string{"u1", "u2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sanitize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSanitize_BlankLocationAbsent(t *testing.T) {
	got := Sanitize(&types.RawFilters{Location: "   "})
	assert.Nil(t, got.Location)
	assert.Nil(t, got.MatchedVolunteerIDs)
}

func TestSanitize_MatchedVolunteerIDsPresence(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{name: "absent stays absent", ids: nil, want: nil},
		{name: "explicit empty kept", ids: []string{}, want: []string{}},
		{name: "only blanks kept as empty", ids: []string{" ", ""}, want: []string{}},
		{name: "deduplicated", ids: []string{"u2", "u2", "u1"}, want: []string{"u2", "u1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(&types.RawFilters{MatchedVolunteerIDs: tt.ids})
			if tt.want == nil {
				assert.Nil(t, got.MatchedVolunteerIDs)
				return
			}
			require.NotNil(t, got.MatchedVolunteerIDs)
			assert.Equal(t, tt.want, got.MatchedVolunteerIDs)
		})
	}
}

func TestSanitize_LocationTrimmed(t *testing.T) {
	got := Sanitize(&types.RawFilters{Location: "  Kolkata \n"})
	require.NotNil(t, got.Location)
	assert.Equal(t, "Kolkata", *got.Location)
}
