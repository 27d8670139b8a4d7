package interpreter

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/impact-search/internal/db"
	"github.com/jonathan/impact-search/internal/llm"
	"github.com/jonathan/impact-search/internal/taxonomy"
	"github.com/jonathan/impact-search/internal/types"
)

// fakeClient replays replies in order and records every message sent
type fakeClient struct {
	mu      sync.Mutex
	replies []*llm.Reply
	sendErr error
	config  llm.ChatConfig
	sent    []llm.Message
}

func (c *fakeClient) StartChat(_ context.Context, cfg llm.ChatConfig) (llm.ChatSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.config = cfg
	return &fakeSession{client: c}, nil
}

func (c *fakeClient) GetModel(llm.ModelTier) string { return "fake" }
func (c *fakeClient) Close() error                  { return nil }

type fakeSession struct {
	client *fakeClient
	turn   int
}

func (s *fakeSession) Send(_ context.Context, msg llm.Message) (*llm.Reply, error) {
	s.client.mu.Lock()
	defer s.client.mu.Unlock()
	s.client.sent = append(s.client.sent, msg)
	if s.client.sendErr != nil {
		return nil, s.client.sendErr
	}
	if s.turn >= len(s.client.replies) {
		return nil, errors.New("no more replies")
	}
	r := s.client.replies[s.turn]
	s.turn++
	return r, nil
}

// fakeStore records queries and returns canned profiles
type fakeStore struct {
	profiles []types.ProfileSummary
	err      error
	queries  []db.ProfileQuery
}

func (s *fakeStore) SearchProfiles(_ context.Context, q db.ProfileQuery) ([]types.ProfileSummary, error) {
	s.queries = append(s.queries, q)
	return s.profiles, s.err
}

func newTestInterpreter(t *testing.T, client llm.Client, store ProfileSearcher) *Interpreter {
	t.Helper()
	interp, err := New(client, store, Config{})
	require.NoError(t, err)
	return interp
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, nil, Config{})
	assert.Error(t, err)

	for _, steps := range []int{-1, 11} {
		_, err := New(&fakeClient{}, nil, Config{MaxSteps: steps})
		assert.Error(t, err, "steps=%d", steps)
	}

	for _, steps := range []int{0, 1, 10} {
		_, err := New(&fakeClient{}, nil, Config{MaxSteps: steps})
		assert.NoError(t, err, "steps=%d", steps)
	}
}

func TestInterpret_DirectAnswer(t *testing.T) {
	client := &fakeClient{replies: []*llm.Reply{{
		Text: `{"skills": ["grant-writing"], "causes": ["education"], "workMode": "remote", "volunteerType": "free", "location": null, "minRating": 4, "maxHourlyRate": null, "matchedVolunteerIds": null}`,
	}}}
	interp := newTestInterpreter(t, client, nil)

	raw, err := interp.Interpret(context.Background(), "remote pro bono grant writer for education")
	require.NoError(t, err)

	assert.Equal(t, []string{"grant-writing"}, raw.Skills)
	assert.Equal(t, []string{"education"}, raw.Causes)
	assert.Equal(t, "remote", raw.WorkMode)
	assert.Equal(t, "free", raw.VolunteerType)
	assert.Empty(t, raw.Location)
	require.NotNil(t, raw.MinRating)
	assert.InDelta(t, 4.0, *raw.MinRating, 1e-9)
	assert.Nil(t, raw.MaxHourlyRate)
	assert.Nil(t, raw.MatchedVolunteerIDs)

	require.Len(t, client.sent, 1)
	assert.Contains(t, client.sent[0].Text, "remote pro bono grant writer for education")
}

func TestInterpret_RegistersBothTools(t *testing.T) {
	client := &fakeClient{replies: []*llm.Reply{{Text: `{"skills": [], "causes": []}`}}}
	interp := newTestInterpreter(t, client, nil)

	_, err := interp.Interpret(context.Background(), "anything")
	require.NoError(t, err)

	names := make([]string, 0, len(client.config.Tools))
	for _, def := range client.config.Tools {
		names = append(names, def.Name)
	}
	assert.ElementsMatch(t, []string{ToolSearchVolunteers, ToolGetSkillCategories}, names)
}

func TestInterpret_SystemPromptCarriesVocabularies(t *testing.T) {
	client := &fakeClient{replies: []*llm.Reply{{Text: `{"skills": [], "causes": []}`}}}
	interp, err := New(client, nil, Config{MaxSteps: 7})
	require.NoError(t, err)

	_, err = interp.Interpret(context.Background(), "anything")
	require.NoError(t, err)

	prompt := client.config.SystemPrompt
	for _, id := range taxonomy.SkillIDs() {
		assert.Contains(t, prompt, id)
	}
	for _, id := range taxonomy.CauseIDs() {
		assert.Contains(t, prompt, id)
	}
	assert.Contains(t, prompt, "remote, onsite, hybrid")
	assert.Contains(t, prompt, "free, paid, both")
	assert.Contains(t, prompt, "at most 7 turns")
	assert.NotContains(t, prompt, "{{.")
}

func TestInterpret_SearchVolunteersTool(t *testing.T) {
	store := &fakeStore{profiles: []types.ProfileSummary{
		{ID: "p1", Name: "Asha", Location: "Pune", Skills: []string{"grant-writing"}, VolunteerType: "free"},
	}}
	client := &fakeClient{replies: []*llm.Reply{
		{ToolCalls: []llm.ToolCall{{
			ID:   "call_0",
			Name: ToolSearchVolunteers,
			Args: map[string]any{
				"location": " Pune ",
				"skills":   []any{"grant-writing", "time-travel"},
				"limit":    float64(500),
			},
		}}},
		{Text: `{"skills": ["grant-writing"], "causes": [], "location": "Pune", "matchedVolunteerIds": ["p1"]}`},
	}}
	interp := newTestInterpreter(t, client, store)

	raw, err := interp.Interpret(context.Background(), "grant writers in Pune")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, raw.MatchedVolunteerIDs)
	assert.Equal(t, "Pune", raw.Location)

	require.Len(t, store.queries, 1)
	assert.Equal(t, db.ProfileQuery{
		Location: "Pune",
		Skills:   []string{"grant-writing"},
		Limit:    db.MaxProfileLimit,
	}, store.queries[0])

	require.Len(t, client.sent, 2)
	require.Len(t, client.sent[1].ToolResults, 1)
	res := client.sent[1].ToolResults[0]
	assert.Equal(t, "call_0", res.CallID)
	assert.Equal(t, 1, res.Response["count"])
	volunteers, ok := res.Response["volunteers"].([]any)
	require.True(t, ok)
	require.Len(t, volunteers, 1)
	assert.Equal(t, "p1", volunteers[0].(map[string]any)["id"])
	assert.Equal(t, []any{"fundraising"}, volunteers[0].(map[string]any)["categories"])
}

func TestSkillCategories(t *testing.T) {
	got := skillCategories([]string{"grant-writing", "seo-content", "grant-research", "made-up"})
	assert.Equal(t, []any{"fundraising", "digital-marketing"}, got)
	assert.Equal(t, []any{}, skillCategories(nil))
}

func TestInterpret_StoreFailureDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name  string
		store ProfileSearcher
	}{
		{"store error", &fakeStore{err: errors.New("connection refused")}},
		{"no store", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{replies: []*llm.Reply{
				{ToolCalls: []llm.ToolCall{{ID: "call_0", Name: ToolSearchVolunteers, Args: map[string]any{"name": "Ravi"}}}},
				{Text: `{"skills": [], "causes": []}`},
			}}
			interp := newTestInterpreter(t, client, tt.store)

			_, err := interp.Interpret(context.Background(), "volunteers named Ravi")
			require.NoError(t, err)

			res := client.sent[1].ToolResults[0].Response
			assert.Equal(t, 0, res["count"])
			assert.Equal(t, []any{}, res["volunteers"])
		})
	}
}

func TestInterpret_GetSkillCategoriesTool(t *testing.T) {
	client := &fakeClient{replies: []*llm.Reply{
		{ToolCalls: []llm.ToolCall{{ID: "call_0", Name: ToolGetSkillCategories}}},
		{Text: `{"skills": ["seo-content"], "causes": []}`},
	}}
	interp := newTestInterpreter(t, client, nil)

	_, err := interp.Interpret(context.Background(), "seo expert")
	require.NoError(t, err)

	cats, ok := client.sent[1].ToolResults[0].Response["categories"].([]any)
	require.True(t, ok)
	assert.Len(t, cats, len(taxonomy.Categories()))
}

func TestInterpret_Failures(t *testing.T) {
	tests := []struct {
		name     string
		client   *fakeClient
		wantKind llm.ErrorKind
	}{
		{
			name:     "transport",
			client:   &fakeClient{sendErr: errors.New("quota exceeded")},
			wantKind: llm.KindTransport,
		},
		{
			name:     "schema invalid",
			client:   &fakeClient{replies: []*llm.Reply{{Text: `{"skills": "seo-content"}`}}},
			wantKind: llm.KindInvalidOutput,
		},
		{
			name:     "empty",
			client:   &fakeClient{replies: []*llm.Reply{{Text: "  \n "}}},
			wantKind: llm.KindEmptyOutput,
		},
		{
			name:     "prose instead of json",
			client:   &fakeClient{replies: []*llm.Reply{{Text: "I could not decide."}}},
			wantKind: llm.KindInvalidOutput,
		},
		{
			name: "unknown tool",
			client: &fakeClient{replies: []*llm.Reply{
				{ToolCalls: []llm.ToolCall{{ID: "call_0", Name: "delete_everything"}}},
			}},
			wantKind: llm.KindUnknownTool,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interp := newTestInterpreter(t, tt.client, nil)

			raw, err := interp.Interpret(context.Background(), "web designers")
			require.Error(t, err)
			assert.Nil(t, raw)

			var agentErr *llm.AgentError
			require.True(t, errors.As(err, &agentErr), "got %T: %v", err, err)
			assert.Equal(t, tt.wantKind, agentErr.Kind)
		})
	}
}

func TestInterpret_StepLimit(t *testing.T) {
	call := &llm.Reply{ToolCalls: []llm.ToolCall{{ID: "call_0", Name: ToolGetSkillCategories}}}
	client := &fakeClient{replies: []*llm.Reply{call, call, call}}
	interp, err := New(client, nil, Config{MaxSteps: 2})
	require.NoError(t, err)

	_, err = interp.Interpret(context.Background(), "loop forever")
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrStepLimit)
	assert.Len(t, client.sent, 2)
}

func TestLimitArg(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want int
	}{
		{"missing", map[string]any{}, db.DefaultProfileLimit},
		{"float", map[string]any{"limit": float64(7)}, 7},
		{"fraction", map[string]any{"limit": 7.9}, 7},
		{"int", map[string]any{"limit": 3}, 3},
		{"zero", map[string]any{"limit": 0}, 1},
		{"negative", map[string]any{"limit": float64(-5)}, 1},
		{"too large", map[string]any{"limit": 999}, db.MaxProfileLimit},
		{"string", map[string]any{"limit": "12"}, 12},
		{"garbage", map[string]any{"limit": "many"}, db.DefaultProfileLimit},
		{"wrong type", map[string]any{"limit": true}, db.DefaultProfileLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, limitArg(tt.args, "limit"))
		})
	}
}

func TestStringsArg(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, stringsArg(map[string]any{"k": []any{" a", 3, "b "}}, "k"))
	assert.Equal(t, []string{"x"}, stringsArg(map[string]any{"k": []string{"x"}}, "k"))
	assert.Nil(t, stringsArg(map[string]any{"k": "x"}, "k"))
}

func TestFormatCategories(t *testing.T) {
	lines := strings.Split(formatCategories(), "\n")
	assert.Len(t, lines, len(taxonomy.Categories()))
	assert.True(t, strings.HasPrefix(lines[0], "- Digital Marketing (digital-marketing): "))
}
