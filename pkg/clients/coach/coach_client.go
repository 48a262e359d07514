// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package coach_client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/prepwise/config"
	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/types"
)

// CoachServiceClient is the web service's view of the coach-api backend,
// addressed via the API_URL environment variable inside the compose network.
type CoachServiceClient interface {
	StartInterview(ctx context.Context, req *types.StartInterviewRequest) (*types.StartInterviewResponse, error)
	SubmitAnswer(ctx context.Context, req *types.AnswerRequest) (*types.AnswerResponse, error)
	Status(ctx context.Context, sessionID string) (*types.StatusResponse, error)
	Summary(ctx context.Context, sessionID string) (*types.SummaryResponse, error)
	Reset(ctx context.Context, sessionID string) error
}

type coachServiceClient struct {
	cfg    *config.AppConfig
	logger commons.Logger
	client *resty.Client
}

// NewCoachServiceClient creates an HTTP client for the backend at cfg.ApiUrl.
func NewCoachServiceClient(cfg *config.AppConfig, logger commons.Logger) CoachServiceClient {
	client := resty.New().
		SetBaseURL(cfg.ApiUrl).
		SetTimeout(120 * time.Second).
		SetHeader("Content-Type", "application/json")
	logger.Infof("coach client ready: api_url=%s", cfg.ApiUrl)
	return &coachServiceClient{
		cfg:    cfg,
		logger: logger,
		client: client,
	}
}

func remoteError(resp *resty.Response) error {
	var envelope types.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error != "" {
		return fmt.Errorf("coach-api %d: %s", resp.StatusCode(), envelope.Error)
	}
	return fmt.Errorf("coach-api %d: %s", resp.StatusCode(), resp.Status())
}

func (c *coachServiceClient) StartInterview(ctx context.Context, req *types.StartInterviewRequest) (*types.StartInterviewResponse, error) {
	var out types.StartInterviewResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/start")
	if err != nil {
		return nil, fmt.Errorf("start interview request failed: %w", err)
	}
	if resp.IsError() {
		return nil, remoteError(resp)
	}
	return &out, nil
}

func (c *coachServiceClient) SubmitAnswer(ctx context.Context, req *types.AnswerRequest) (*types.AnswerResponse, error) {
	var out types.AnswerResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/answer")
	if err != nil {
		return nil, fmt.Errorf("submit answer request failed: %w", err)
	}
	if resp.IsError() {
		return nil, remoteError(resp)
	}
	return &out, nil
}

func (c *coachServiceClient) Status(ctx context.Context, sessionID string) (*types.StatusResponse, error) {
	var out types.StatusResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("session_id", sessionID).
		SetResult(&out).
		Get("/status")
	if err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	if resp.IsError() {
		return nil, remoteError(resp)
	}
	return &out, nil
}

func (c *coachServiceClient) Summary(ctx context.Context, sessionID string) (*types.SummaryResponse, error) {
	var out types.SummaryResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("session_id", sessionID).
		SetResult(&out).
		Get("/summary")
	if err != nil {
		return nil, fmt.Errorf("summary request failed: %w", err)
	}
	if resp.IsError() {
		return nil, remoteError(resp)
	}
	return &out, nil
}

func (c *coachServiceClient) Reset(ctx context.Context, sessionID string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("session_id", sessionID).
		Post("/reset")
	if err != nil {
		return fmt.Errorf("reset request failed: %w", err)
	}
	if resp.IsError() {
		return remoteError(resp)
	}
	return nil
}
