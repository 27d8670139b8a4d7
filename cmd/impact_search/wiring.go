package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/impact-search/internal/config"
	"github.com/jonathan/impact-search/internal/db"
	"github.com/jonathan/impact-search/internal/interpreter"
	"github.com/jonathan/impact-search/internal/llm"
	"github.com/jonathan/impact-search/internal/search"
)

// components are the long-lived dependencies behind a search.Service
type components struct {
	service  *search.Service
	database *db.DB
	client   llm.Client
}

// Close releases the LLM client and database pool
func (c *components) Close() {
	if c.client != nil {
		_ = c.client.Close()
	}
	c.database.Close()
}

// buildComponents wires the search service from configuration. A missing
// API key disables the interpreter; an unreachable database disables profile
// search. Neither is fatal.
func buildComponents(ctx context.Context, cfg *config.Config, logger *zap.Logger, keywordOnly bool) (*components, error) {
	c := &components{}

	if cfg.DatabaseEnabled() && !keywordOnly {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Warn("Profile store unavailable; profile search disabled", zap.Error(err))
		} else {
			c.database = database
		}
	}

	if !cfg.LLMEnabled() || keywordOnly {
		if !keywordOnly {
			logger.Info("GEMINI_API_KEY not set; using keyword matching only")
		}
		c.service = search.NewService(nil, logger)
		return c, nil
	}

	tier, err := llm.ParseTier(cfg.ModelTier)
	if err != nil {
		c.Close()
		return nil, err
	}

	client, err := llm.NewClient(ctx, llmConfig(cfg, tier), cfg.GeminiAPIKey)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	c.client = client

	// Assign through a variable so a nil *db.DB never becomes a non-nil interface
	var store interpreter.ProfileSearcher
	if c.database != nil {
		store = c.database
	}

	interp, err := interpreter.New(client, store, interpreter.Config{
		Tier:     tier,
		MaxSteps: cfg.MaxAgentSteps,
		Logger:   logger.Named("interpreter"),
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to create interpreter: %w", err)
	}

	logger.Info("AI interpreter enabled",
		zap.String("model", client.GetModel(tier)),
		zap.Int("max_steps", cfg.MaxAgentSteps))

	c.service = search.NewService(interp, logger)
	return c, nil
}

// llmConfig applies the configured model override to the selected tier
func llmConfig(cfg *config.Config, tier llm.ModelTier) *llm.Config {
	base := llm.DefaultConfig()
	if cfg.Model == "" {
		return base
	}
	return base.WithModel(tier, cfg.Model)
}
