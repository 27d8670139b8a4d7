package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultTemperature float32 = 0.1 // Low temperature for consistent output

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", config.Provider)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// StartChat opens a Gemini chat session with the system instruction and function declarations
func (c *GeminiClient) StartChat(_ context.Context, cfg ChatConfig) (ChatSession, error) {
	modelName := c.config.GetModel(cfg.Tier)
	if modelName == "" {
		return nil, fmt.Errorf("no model configured for tier %s", cfg.Tier)
	}

	model := c.client.GenerativeModel(modelName)
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}
	model.SetTemperature(temperature)

	if cfg.SystemPrompt != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(cfg.SystemPrompt))
	}

	if len(cfg.Tools) > 0 {
		decls := make([]*genai.FunctionDeclaration, 0, len(cfg.Tools))
		for _, td := range cfg.Tools {
			decls = append(decls, &genai.FunctionDeclaration{
				Name:        td.Name,
				Description: td.Description,
				Parameters:  toGeminiSchema(td.Parameters),
			})
		}
		model.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	return &geminiSession{chat: model.StartChat()}, nil
}

// GetModel returns the model name for a tier
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// geminiSession adapts genai.ChatSession to ChatSession
type geminiSession struct {
	chat *genai.ChatSession
}

func (s *geminiSession) Send(ctx context.Context, msg Message) (*Reply, error) {
	parts := toGeminiParts(msg)
	if len(parts) == 0 {
		return nil, fmt.Errorf("message has no content")
	}

	resp, err := s.chat.SendMessage(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	return replyFromResponse(resp)
}

// toGeminiParts converts a Message into request parts
func toGeminiParts(msg Message) []genai.Part {
	parts := make([]genai.Part, 0, len(msg.ToolResults)+1)
	for _, tr := range msg.ToolResults {
		parts = append(parts, genai.FunctionResponse{
			Name:     tr.Name,
			Response: tr.Response,
		})
	}
	if msg.Text != "" {
		parts = append(parts, genai.Text(msg.Text))
	}
	return parts
}

// replyFromResponse extracts text and function calls from a Gemini response.
// Gemini does not assign call IDs, so synthetic ones are generated.
func replyFromResponse(resp *genai.GenerateContentResponse) (*Reply, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, fmt.Errorf("no content in response")
	}

	reply := &Reply{}
	var text []string
	for _, part := range candidate.Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			text = append(text, string(p))
		case genai.FunctionCall:
			reply.ToolCalls = append(reply.ToolCalls, ToolCall{
				ID:   fmt.Sprintf("call_%d", len(reply.ToolCalls)),
				Name: p.Name,
				Args: p.Args,
			})
		}
	}
	reply.Text = strings.Join(text, "")

	return reply, nil
}

// toGeminiSchema converts a provider-neutral schema
func toGeminiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        geminiType(s.Type),
		Description: s.Description,
		Enum:        s.Enum,
		Items:       toGeminiSchema(s.Items),
		Required:    s.Required,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGeminiSchema(prop)
		}
	}
	return out
}

func geminiType(t string) genai.Type {
	switch t {
	case TypeString:
		return genai.TypeString
	case TypeNumber:
		return genai.TypeNumber
	case TypeInteger:
		return genai.TypeInteger
	case TypeBoolean:
		return genai.TypeBoolean
	case TypeArray:
		return genai.TypeArray
	case TypeObject:
		return genai.TypeObject
	default:
		return genai.TypeUnspecified
	}
}
