package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/impact-search/internal/config"
	"github.com/jonathan/impact-search/internal/llm"
	"github.com/jonathan/impact-search/internal/schemas"
	"github.com/jonathan/impact-search/internal/search"
	"github.com/jonathan/impact-search/internal/taxonomy"
	"github.com/jonathan/impact-search/internal/types"
)

// isolate keeps tests independent of the developer's environment and config files
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Chdir(t.TempDir())
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func parseOutcomes(t *testing.T, output string) []compileOutcome {
	t.Helper()
	var outcomes []compileOutcome
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		var o compileOutcome
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &o), "line: %s", scanner.Text())
		outcomes = append(outcomes, o)
	}
	return outcomes
}

func TestCompile_Args(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "compile", "fundraising help", "so", "website redesign expert")
	require.NoError(t, err)

	outcomes := parseOutcomes(t, out)
	require.Len(t, outcomes, 3)

	assert.Equal(t, "fundraising help", outcomes[0].Query)
	assert.True(t, outcomes[0].Success)
	assert.Equal(t, search.MethodKeyword, outcomes[0].Method)
	assert.ElementsMatch(t, taxonomy.SkillsInCategory(taxonomy.CategoryFundraising), outcomes[0].Data.Skills)

	assert.False(t, outcomes[1].Success)
	assert.Contains(t, outcomes[1].Error, "3 characters")
	assert.Nil(t, outcomes[1].Data)

	assert.True(t, outcomes[2].Success)
	assert.Contains(t, outcomes[2].Data.Skills, "website-redesign")
}

func TestCompile_FileAndStdin(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "queries.txt")
	require.NoError(t, os.WriteFile(path, []byte("# header\n\nremote pro bono grant writer for education causes\n  seo expert  \n"), 0644))

	out, err := execute(t, "", "compile", "--file", path, "--concurrency", "2")
	require.NoError(t, err)

	outcomes := parseOutcomes(t, out)
	require.Len(t, outcomes, 2)
	assert.Equal(t, types.WorkModeRemote, outcomes[0].Data.WorkMode)
	assert.Equal(t, types.VolunteerTypeFree, outcomes[0].Data.VolunteerType)
	assert.Equal(t, "seo expert", outcomes[1].Query)

	out, err = execute(t, "xyz\n", "compile", "--file", "-")
	require.NoError(t, err)
	outcomes = parseOutcomes(t, out)
	require.Len(t, outcomes, 1)
	assert.Equal(t, []string{}, outcomes[0].Data.Skills)
	assert.Equal(t, []string{}, outcomes[0].Data.Causes)
}

func TestCompile_PreservesOrderUnderConcurrency(t *testing.T) {
	isolate(t)

	queries := []string{"seo expert", "grant writer", "fundraising help", "website redesign", "remote designer", "accounting"}
	out, err := execute(t, "", append([]string{"compile", "--concurrency", "3"}, queries...)...)
	require.NoError(t, err)

	outcomes := parseOutcomes(t, out)
	require.Len(t, outcomes, len(queries))
	for i, q := range queries {
		assert.Equal(t, q, outcomes[i].Query)
	}
}

func TestCompile_Pretty(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "compile", "--pretty", "--keyword-only", "grant writer", "no")
	require.NoError(t, err)

	assert.Contains(t, out, "COMPILED SEARCH FILTERS")
	assert.Contains(t, out, "grant-writing")
	assert.Contains(t, out, "COMPILE FAILED")
}

func TestCompile_Errors(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "compile")
	assert.ErrorContains(t, err, "no queries")

	_, err = execute(t, "", "compile", "--concurrency", "0", "seo expert")
	assert.ErrorContains(t, err, "concurrency")

	_, err = execute(t, "", "compile", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = execute(t, "", "--log-level", "loud", "compile", "seo expert")
	assert.Error(t, err)
}

func TestVocabulary(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "vocabulary")
	require.NoError(t, err)

	var got struct {
		Categories     []taxonomy.SkillCategory `json:"categories"`
		Causes         []taxonomy.Cause         `json:"causes"`
		WorkModes      []string                 `json:"workModes"`
		VolunteerTypes []string                 `json:"volunteerTypes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, taxonomy.Categories(), got.Categories)
	assert.Equal(t, taxonomy.Causes(), got.Causes)
	assert.Equal(t, []string{"remote", "onsite", "hybrid"}, got.WorkModes)
	assert.Equal(t, []string{"free", "paid", "both"}, got.VolunteerTypes)
}

func TestMigrate_RequiresDatabase(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "migrate")
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadSeedProfiles(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "seed.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("valid", func(t *testing.T) {
		seeds, err := loadSeedProfiles(write(t, `[{"id": "p1", "name": "Asha", "skills": ["grant-writing"], "volunteerType": "free"}]`))
		require.NoError(t, err)
		require.Len(t, seeds, 1)
		assert.Equal(t, "Asha", seeds[0].Name)
		assert.Equal(t, []string{"grant-writing"}, seeds[0].Skills)
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := loadSeedProfiles(write(t, `[{"id": "p1"}]`))
		require.Error(t, err)
		assert.ErrorContains(t, err, "seed_profiles.schema.json")

		var validationErr *schemas.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadSeedProfiles(filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorContains(t, err, "failed to read seed file")
	})
}

func TestLLMConfig_ModelOverride(t *testing.T) {
	base := llmConfig(&config.Config{}, llm.TierStandard)
	assert.Equal(t, llm.DefaultConfig().GetModel(llm.TierStandard), base.GetModel(llm.TierStandard))

	cfg := llmConfig(&config.Config{Model: "gemini-custom"}, llm.TierAdvanced)
	assert.Equal(t, "gemini-custom", cfg.GetModel(llm.TierAdvanced))
	assert.Equal(t, llm.DefaultConfig().GetModel(llm.TierLite), cfg.GetModel(llm.TierLite))
}

func TestServe_InvalidConfig(t *testing.T) {
	isolate(t)
	t.Setenv("IMPACT_SEARCH_MAX_AGENT_STEPS", "42")

	_, err := execute(t, "", "serve", "--port", "0")
	assert.Error(t, err)
}
