// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_evaluator_groq

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	internal_evaluator "github.com/prepwise/api/coach-api/internal/evaluator"
	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/configs"
	"github.com/prepwise/pkg/utils"
)

const DefaultBaseUrl = "https://api.groq.com/openai/v1"

// groqEvaluator talks to Groq's OpenAI-compatible chat completions endpoint.
// Any OpenAI-compatible service works through base_url, so the same provider
// also covers plain OpenAI.
type groqEvaluator struct {
	logger      commons.Logger
	client      openai.Client
	model       string
	temperature float64
}

func NewGroqEvaluator(cfg configs.EvaluatorConfig, logger commons.Logger) (internal_evaluator.Evaluator, error) {
	if utils.IsEmpty(cfg.ApiKey) {
		return nil, fmt.Errorf("groq: missing api key")
	}
	baseUrl := utils.FirstNonEmpty(cfg.BaseUrl, DefaultBaseUrl)
	client := openai.NewClient(
		option.WithAPIKey(cfg.ApiKey),
		option.WithBaseURL(baseUrl),
	)
	logger.Infof("groq evaluator ready: model=%s, base_url=%s", cfg.Model, baseUrl)
	return &groqEvaluator{
		logger:      logger,
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

func (e *groqEvaluator) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(e.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("groq completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (e *groqEvaluator) Evaluate(ctx context.Context, exchange string) (string, error) {
	return e.complete(ctx, internal_evaluator.EvaluatePrompt(exchange))
}

func (e *groqEvaluator) Feedback(ctx context.Context, evaluation string) (string, error) {
	return e.complete(ctx, internal_evaluator.FeedbackPrompt(evaluation))
}

func (e *groqEvaluator) Summarize(ctx context.Context, evaluations, feedback []string, rounds int) (string, error) {
	return e.complete(ctx, internal_evaluator.SummaryPrompt(evaluations, feedback, rounds))
}
