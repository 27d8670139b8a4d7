// Package interpreter turns a free-text search query into candidate filters
// by running a bounded tool-calling agent over the LLM layer.
package interpreter

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/impact-search/internal/db"
	"github.com/jonathan/impact-search/internal/llm"
	"github.com/jonathan/impact-search/internal/prompts"
	"github.com/jonathan/impact-search/internal/schemas"
	"github.com/jonathan/impact-search/internal/types"
	rootschemas "github.com/jonathan/impact-search/schemas"
)

// Step bound limits
const (
	MinMaxSteps = 1
	MaxMaxSteps = 10
)

const promptFile = "interpreter.json"

// ProfileSearcher is the read-only profile store used by the search_volunteers tool
type ProfileSearcher interface {
	SearchProfiles(ctx context.Context, q db.ProfileQuery) ([]types.ProfileSummary, error)
}

// Config configures an Interpreter
type Config struct {
	Tier     llm.ModelTier
	MaxSteps int // 0 selects llm.DefaultMaxSteps
	Logger   *zap.Logger
}

// Interpreter compiles queries with an LLM agent. It is safe for concurrent use;
// each Interpret call runs its own chat session.
type Interpreter struct {
	agent        *llm.Agent
	systemPrompt string
	logger       *zap.Logger
}

// New creates an Interpreter. store may be nil, in which case profile
// searches always come back empty.
func New(client llm.Client, store ProfileSearcher, cfg Config) (*Interpreter, error) {
	if client == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = llm.DefaultMaxSteps
	}
	if cfg.MaxSteps < MinMaxSteps || cfg.MaxSteps > MaxMaxSteps {
		return nil, fmt.Errorf("max steps must be between %d and %d, got %d", MinMaxSteps, MaxMaxSteps, cfg.MaxSteps)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	schemaContent, err := rootschemas.Load(rootschemas.SearchFiltersFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load output schema: %w", err)
	}
	validator, err := schemas.Compile(rootschemas.SearchFiltersFile, schemaContent)
	if err != nil {
		return nil, err
	}

	systemPrompt, err := buildSystemPrompt(cfg.MaxSteps)
	if err != nil {
		return nil, err
	}

	toolset := &toolset{store: store, logger: logger}
	agent := llm.NewAgent(client, llm.AgentConfig{
		Tier:         cfg.Tier,
		MaxSteps:     cfg.MaxSteps,
		OutputSchema: validator,
		Logger:       logger,
	}, toolset.searchVolunteers(), toolset.getSkillCategories())

	return &Interpreter{
		agent:        agent,
		systemPrompt: systemPrompt,
		logger:       logger,
	}, nil
}

// Interpret runs the agent for one query. The returned filters are unsanitized
// candidates; any error means the caller should fall back.
func (i *Interpreter) Interpret(ctx context.Context, query string) (*types.RawFilters, error) {
	userPrompt, err := prompts.Render(promptFile, "user", map[string]string{"Query": query})
	if err != nil {
		return nil, fmt.Errorf("failed to render user prompt: %w", err)
	}

	result, err := i.agent.Run(ctx, i.systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	var raw types.RawFilters
	if err := json.Unmarshal([]byte(result.Output), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode interpreter output: %w", err)
	}

	i.logger.Debug("Interpreter finished",
		zap.Int("steps", result.Steps),
		zap.Int("tool_calls", result.ToolCalls),
		zap.Int("skills", len(raw.Skills)),
		zap.Int("causes", len(raw.Causes)))

	return &raw, nil
}
