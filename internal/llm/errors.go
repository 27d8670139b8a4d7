package llm

import (
	"errors"
	"fmt"
)

// ErrStepLimit indicates the model kept requesting tools past the step bound
var ErrStepLimit = errors.New("step limit reached before final output")

// ErrorKind classifies agent failures
type ErrorKind string

// Agent failure kinds
const (
	KindTransport     ErrorKind = "transport"
	KindStepLimit     ErrorKind = "step_limit"
	KindUnknownTool   ErrorKind = "unknown_tool"
	KindToolFailed    ErrorKind = "tool_failed"
	KindEmptyOutput   ErrorKind = "empty_output"
	KindInvalidOutput ErrorKind = "invalid_output"
)

// AgentError is returned for any failure during an agent run
type AgentError struct {
	Kind ErrorKind
	Step int
	Tool string
	Err  error
}

func (e *AgentError) Error() string {
	if e.Tool != "" {
		return fmt.Sprintf("agent %s at step %d (tool %s): %v", e.Kind, e.Step, e.Tool, e.Err)
	}
	return fmt.Sprintf("agent %s at step %d: %v", e.Kind, e.Step, e.Err)
}

func (e *AgentError) Unwrap() error {
	return e.Err
}
