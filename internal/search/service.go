// Package search compiles free-text queries into sanitized search filters,
// preferring the LLM interpreter and falling back to keyword matching.
package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/impact-search/internal/keyword"
	"github.com/jonathan/impact-search/internal/observability"
	"github.com/jonathan/impact-search/internal/types"
	"github.com/jonathan/impact-search/internal/validation"
)

// Method records which path produced a filter set
type Method string

// Compilation methods
const (
	MethodAIAgent Method = "ai-agent"
	MethodKeyword Method = "keyword"
)

// Interpreter produces candidate filters from a query. Any error triggers the fallback.
type Interpreter interface {
	Interpret(ctx context.Context, query string) (*types.RawFilters, error)
}

// Result is a compiled query
type Result struct {
	Filters types.SearchFilters `json:"data"`
	Method  Method              `json:"method"`
}

// Service compiles queries. It holds no mutable state and is safe for concurrent use.
type Service struct {
	interpreter Interpreter
	logger      *zap.Logger
}

// NewService creates a Service. A nil interpreter disables the AI path.
func NewService(interpreter Interpreter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{interpreter: interpreter, logger: logger}
}

// AIEnabled reports whether an interpreter is configured
func (s *Service) AIEnabled() bool {
	return s.interpreter != nil
}

// Compile validates query and compiles it. The only error returned is a
// *validation.Error; interpreter failures degrade to the keyword path.
func (s *Service) Compile(ctx context.Context, query string) (*Result, error) {
	start := time.Now()

	trimmed, err := validation.ValidateQuery(query)
	if err != nil {
		return nil, err
	}

	raw, method := s.interpret(ctx, trimmed)
	result := &Result{
		Filters: validation.Sanitize(raw),
		Method:  method,
	}

	observability.RecordCompilation(string(method), time.Since(start))
	s.logger.Debug("Compiled query",
		zap.String("method", string(method)),
		zap.Int("skills", len(result.Filters.Skills)),
		zap.Int("causes", len(result.Filters.Causes)))

	return result, nil
}

// CompileKeyword skips the interpreter entirely
func (s *Service) CompileKeyword(query string) (*Result, error) {
	trimmed, err := validation.ValidateQuery(query)
	if err != nil {
		return nil, err
	}
	return &Result{
		Filters: validation.Sanitize(keyword.Match(trimmed)),
		Method:  MethodKeyword,
	}, nil
}

func (s *Service) interpret(ctx context.Context, query string) (*types.RawFilters, Method) {
	if s.interpreter == nil {
		return keyword.Match(query), MethodKeyword
	}

	raw, err := s.safeInterpret(ctx, query)
	if err == nil && raw == nil {
		err = fmt.Errorf("interpreter returned no filters")
	}
	if err != nil {
		observability.RecordInterpreterFailure()
		s.logger.Warn("Interpreter failed, falling back to keyword matching", zap.Error(err))
		return keyword.Match(query), MethodKeyword
	}
	return raw, MethodAIAgent
}

// safeInterpret converts an interpreter panic into an error
func (s *Service) safeInterpret(ctx context.Context, query string) (raw *types.RawFilters, err error) {
	defer func() {
		if r := recover(); r != nil {
			raw = nil
			err = fmt.Errorf("interpreter panicked: %v", r)
		}
	}()
	return s.interpreter.Interpret(ctx, query)
}
