// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_evaluator_anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	internal_evaluator "github.com/prepwise/api/coach-api/internal/evaluator"
	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/configs"
	"github.com/prepwise/pkg/utils"
)

const maxTokens = 1024

type anthropicEvaluator struct {
	logger      commons.Logger
	client      anthropic.Client
	model       string
	temperature float64
}

func NewAnthropicEvaluator(cfg configs.EvaluatorConfig, logger commons.Logger) (internal_evaluator.Evaluator, error) {
	if utils.IsEmpty(cfg.ApiKey) {
		return nil, fmt.Errorf("anthropic: missing api key")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.ApiKey)}
	if !utils.IsEmpty(cfg.BaseUrl) {
		opts = append(opts, option.WithBaseURL(cfg.BaseUrl))
	}
	logger.Infof("anthropic evaluator ready: model=%s", cfg.Model)
	return &anthropicEvaluator{
		logger:      logger,
		client:      anthropic.NewClient(opts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

func (e *anthropicEvaluator) complete(ctx context.Context, prompt string) (string, error) {
	msg, err := e.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(e.model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(e.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic completion failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("anthropic completion returned no text")
	}
	return sb.String(), nil
}

func (e *anthropicEvaluator) Evaluate(ctx context.Context, exchange string) (string, error) {
	return e.complete(ctx, internal_evaluator.EvaluatePrompt(exchange))
}

func (e *anthropicEvaluator) Feedback(ctx context.Context, evaluation string) (string, error) {
	return e.complete(ctx, internal_evaluator.FeedbackPrompt(evaluation))
}

func (e *anthropicEvaluator) Summarize(ctx context.Context, evaluations, feedback []string, rounds int) (string, error) {
	return e.complete(ctx, internal_evaluator.SummaryPrompt(evaluations, feedback, rounds))
}
