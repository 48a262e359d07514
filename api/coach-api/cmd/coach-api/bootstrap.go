package main

import (
	"context"
	"fmt"
	"time"

	internal_checkpoint "github.com/prepwise/api/coach-api/internal/checkpoint"
	internal_engine "github.com/prepwise/api/coach-api/internal/engine"
	internal_evaluator "github.com/prepwise/api/coach-api/internal/evaluator"
	internal_evaluator_anthropic "github.com/prepwise/api/coach-api/internal/evaluator/anthropic"
	internal_evaluator_groq "github.com/prepwise/api/coach-api/internal/evaluator/groq"
	internal_questionbank "github.com/prepwise/api/coach-api/internal/questionbank"
	"github.com/prepwise/config"
	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/connectors"
)

// buildEvaluator selects the LLM provider from config.
func buildEvaluator(cfg *config.AppConfig, logger commons.Logger) (internal_evaluator.Evaluator, error) {
	switch cfg.EvaluatorConfig.Provider {
	case "groq":
		return internal_evaluator_groq.NewGroqEvaluator(cfg.EvaluatorConfig, logger)
	case "anthropic":
		return internal_evaluator_anthropic.NewAnthropicEvaluator(cfg.EvaluatorConfig, logger)
	default:
		return nil, fmt.Errorf("unknown evaluator provider %q", cfg.EvaluatorConfig.Provider)
	}
}

// buildCheckpointStore selects the checkpoint backend from config.
func buildCheckpointStore(cfg *config.AppConfig, logger commons.Logger) (internal_checkpoint.Store, error) {
	switch cfg.CheckpointBackend {
	case "memory":
		return internal_checkpoint.NewMemoryStore(logger), nil
	case "redis":
		redis, err := connectors.NewRedisConnector(cfg.RedisConfig, logger)
		if err != nil {
			return nil, err
		}
		ttl := time.Duration(cfg.CheckpointTtlSec) * time.Second
		return internal_checkpoint.NewRedisStore(redis, ttl, logger), nil
	default:
		return nil, fmt.Errorf("unknown checkpoint backend %q", cfg.CheckpointBackend)
	}
}

// buildGraph assembles the interview engine: question bank (seeded), LLM
// evaluator and checkpoint store.
func buildGraph(ctx context.Context, cfg *config.AppConfig, logger commons.Logger, sqlite connectors.SqliteConnector) (*internal_engine.Graph, error) {
	questions, err := internal_questionbank.NewStore(sqlite, logger)
	if err != nil {
		return nil, err
	}
	if err := internal_questionbank.Seed(ctx, questions, cfg.QuestionBankPath, logger); err != nil {
		return nil, err
	}

	evaluator, err := buildEvaluator(cfg, logger)
	if err != nil {
		return nil, err
	}

	checkpoints, err := buildCheckpointStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	return internal_engine.NewInterview(logger, questions, evaluator).Graph(checkpoints), nil
}
