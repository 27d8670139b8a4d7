package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/impact-search/internal/schemas"
	"go.uber.org/zap"
)

// DefaultMaxSteps bounds the number of model turns in one agent run
const DefaultMaxSteps = 5

// AgentState is the position of an agent run in its loop
type AgentState string

// Agent states
const (
	StateThinking           AgentState = "thinking"
	StateAwaitingToolResult AgentState = "awaiting-tool-result"
	StateDone               AgentState = "done"
)

// ToolHandler executes a tool call. A returned error aborts the run.
type ToolHandler func(ctx context.Context, args map[string]any) (map[string]any, error)

// Tool pairs a definition with its handler
type Tool struct {
	Def     ToolDef
	Handler ToolHandler
}

// AgentConfig configures an Agent
type AgentConfig struct {
	Tier     ModelTier
	MaxSteps int
	// OutputSchema validates the final answer; nil skips validation
	OutputSchema *schemas.Validator
	Logger       *zap.Logger
}

// AgentResult is the outcome of a successful run
type AgentResult struct {
	Output    string // final JSON text, fences stripped
	Steps     int
	ToolCalls int
}

// Agent runs a bounded tool-calling loop against a Client:
// thinking -> awaiting-tool-result -> thinking ... -> done.
// Each model reply counts as one step.
type Agent struct {
	client   Client
	cfg      AgentConfig
	tools    map[string]Tool
	toolDefs []ToolDef
	logger   *zap.Logger
}

// NewAgent creates an agent with a dispatch table built from tools
func NewAgent(client Client, cfg AgentConfig, tools ...Tool) *Agent {
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	if cfg.Tier == "" {
		cfg.Tier = TierStandard
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &Agent{
		client: client,
		cfg:    cfg,
		tools:  make(map[string]Tool, len(tools)),
		logger: logger,
	}
	for _, t := range tools {
		a.tools[t.Def.Name] = t
		a.toolDefs = append(a.toolDefs, t.Def)
	}
	return a
}

// MaxSteps returns the configured step bound
func (a *Agent) MaxSteps() int {
	return a.cfg.MaxSteps
}

// Run sends prompt under systemPrompt and drives the loop until the model
// produces a final answer or the step bound is hit. Nothing is retried.
func (a *Agent) Run(ctx context.Context, systemPrompt, prompt string) (*AgentResult, error) {
	session, err := a.client.StartChat(ctx, ChatConfig{
		Tier:         a.cfg.Tier,
		SystemPrompt: systemPrompt,
		Tools:        a.toolDefs,
	})
	if err != nil {
		return nil, &AgentError{Kind: KindTransport, Err: err}
	}

	result := &AgentResult{}
	state := StateThinking
	msg := Message{Text: prompt}

	for step := 1; state != StateDone; step++ {
		result.Steps = step

		reply, err := session.Send(ctx, msg)
		if err != nil {
			return nil, &AgentError{Kind: KindTransport, Step: step, Err: err}
		}

		if len(reply.ToolCalls) == 0 {
			output, err := a.finish(reply.Text)
			if err != nil {
				var agentErr *AgentError
				if errors.As(err, &agentErr) {
					agentErr.Step = step
				}
				return nil, err
			}
			result.Output = output
			state = a.transition(state, StateDone, step)
			continue
		}

		if step >= a.cfg.MaxSteps {
			return nil, &AgentError{Kind: KindStepLimit, Step: step, Err: ErrStepLimit}
		}

		state = a.transition(state, StateAwaitingToolResult, step)
		results := make([]ToolResult, 0, len(reply.ToolCalls))
		for _, call := range reply.ToolCalls {
			res, err := a.dispatch(ctx, step, call)
			if err != nil {
				return nil, err
			}
			results = append(results, res)
			result.ToolCalls++
		}

		msg = Message{ToolResults: results}
		state = a.transition(state, StateThinking, step)
	}

	return result, nil
}

// dispatch resolves one tool call through the dispatch table
func (a *Agent) dispatch(ctx context.Context, step int, call ToolCall) (ToolResult, error) {
	tool, ok := a.tools[call.Name]
	if !ok {
		return ToolResult{}, &AgentError{
			Kind: KindUnknownTool,
			Step: step,
			Tool: call.Name,
			Err:  fmt.Errorf("tool %q is not registered", call.Name),
		}
	}

	args := call.Args
	if args == nil {
		args = map[string]any{}
	}

	a.logger.Debug("Dispatching tool call",
		zap.Int("step", step),
		zap.String("tool", call.Name),
		zap.Any("args", args))

	response, err := tool.Handler(ctx, args)
	if err != nil {
		return ToolResult{}, &AgentError{Kind: KindToolFailed, Step: step, Tool: call.Name, Err: err}
	}
	if response == nil {
		response = map[string]any{}
	}

	return ToolResult{CallID: call.ID, Name: call.Name, Response: response}, nil
}

// finish cleans and validates the final answer
func (a *Agent) finish(text string) (string, error) {
	output := CleanJSONBlock(text)
	if output == "" {
		return "", &AgentError{Kind: KindEmptyOutput, Err: errors.New("model returned no structured output")}
	}

	if a.cfg.OutputSchema != nil {
		if err := a.cfg.OutputSchema.Validate(output); err != nil {
			return "", &AgentError{
				Kind: KindInvalidOutput,
				Err:  fmt.Errorf("output does not match %s: %w", a.cfg.OutputSchema.Name(), err),
			}
		}
	}
	return output, nil
}

func (a *Agent) transition(from, to AgentState, step int) AgentState {
	a.logger.Debug("Agent state transition",
		zap.Int("step", step),
		zap.String("from", string(from)),
		zap.String("to", string(to)))
	return to
}
