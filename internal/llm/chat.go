package llm

import "context"

// Client is an abstraction over LLM providers
type Client interface {
	// StartChat opens a multi-turn session configured with a system prompt and tools
	StartChat(ctx context.Context, cfg ChatConfig) (ChatSession, error)
	// GetModel returns the underlying provider model for a tier
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// ChatConfig configures a chat session
type ChatConfig struct {
	Tier         ModelTier
	SystemPrompt string
	Tools        []ToolDef
	Temperature  float32 // 0 selects the client default
}

// ChatSession is a stateful conversation with a model.
// Implementations keep the history; callers send only the next turn.
type ChatSession interface {
	Send(ctx context.Context, msg Message) (*Reply, error)
}

// Message is one turn sent to the model: either user text or tool results
type Message struct {
	Text        string
	ToolResults []ToolResult
}

// Reply is one model turn. A reply with ToolCalls expects their results next.
type Reply struct {
	Text      string
	ToolCalls []ToolCall
}

// ToolCall is a model request to invoke a registered tool
type ToolCall struct {
	ID   string
	Name string
	Args map[string]any
}

// ToolResult answers a ToolCall
type ToolResult struct {
	CallID   string
	Name     string
	Response map[string]any
}
