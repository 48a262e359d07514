// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package interview_api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	internal_checkpoint "github.com/prepwise/api/coach-api/internal/checkpoint"
	internal_engine "github.com/prepwise/api/coach-api/internal/engine"
	"github.com/prepwise/config"
	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/types"
)

const defaultRounds = 3

// InterviewApi exposes the interview engine over HTTP.
type InterviewApi struct {
	cfg    *config.AppConfig
	logger commons.Logger
	graph  *internal_engine.Graph
}

func New(cfg *config.AppConfig, logger commons.Logger, graph *internal_engine.Graph) *InterviewApi {
	return &InterviewApi{
		cfg:    cfg,
		logger: logger,
		graph:  graph,
	}
}

// Start opens a new interview session and returns the first question.
func (api *InterviewApi) Start(c *gin.Context) {
	var req types.StartInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	rounds := defaultRounds
	if req.Rounds != nil {
		rounds = *req.Rounds
	}
	if rounds <= 0 {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "max_rounds must be positive"})
		return
	}

	ctx := c.Request.Context()
	exists, err := api.graph.Exists(ctx, req.SessionId)
	if err != nil {
		api.logger.Errorf("failed to check session %s: %v", req.SessionId, err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Error starting interview"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Session ID already in use"})
		return
	}

	initial := internal_engine.State{
		MaxRounds:  rounds,
		Difficulty: defaulted(req.Difficulty, commons.DifficultyMedium),
		Category:   defaulted(req.Category, commons.CategoryBehavioral),
	}

	snap, err := api.graph.Invoke(ctx, req.SessionId, initial)
	if err != nil {
		api.logger.Errorf("failed to start interview %s: %v", req.SessionId, err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Error starting interview"})
		return
	}

	api.logger.Infof("interview started: session=%s, rounds=%d, difficulty=%s, category=%s",
		req.SessionId, rounds, initial.Difficulty, initial.Category)

	c.JSON(http.StatusOK, types.StartInterviewResponse{
		Question: snap.State.CurrentQuestion,
		Round:    snap.State.Round + 1,
	})
}

// Answer injects the candidate's answer and advances the interview through
// evaluation and feedback to either the next question or the final summary.
func (api *InterviewApi) Answer(c *gin.Context) {
	var req types.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	snap, err := api.graph.StateOf(ctx, req.SessionId)
	if errors.Is(err, internal_checkpoint.ErrNotFound) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Invalid session_id"})
		return
	}
	if err != nil {
		api.logger.Errorf("failed to load session %s: %v", req.SessionId, err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Error processing answer"})
		return
	}

	if snap.Next != internal_engine.NodeWaitForUserInput {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Not ready for user input"})
		return
	}

	if err := api.graph.UpdateState(ctx, req.SessionId, func(st *internal_engine.State) {
		st.UserResponse = req.UserMessage
	}); err != nil {
		api.logger.Errorf("failed to update session %s: %v", req.SessionId, err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Error processing answer"})
		return
	}

	final, err := api.graph.Resume(ctx, req.SessionId)
	if err != nil {
		api.logger.Errorf("failed to resume session %s: %v", req.SessionId, err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Error processing answer"})
		return
	}

	st := final.State
	resp := types.AnswerResponse{
		Evaluations: lastOf(st.Evaluations),
		Feedback:    lastOf(st.Feedback),
		Done:        st.Done(),
	}
	if st.Done() {
		resp.Summary = st.Summary
	} else {
		resp.Question = st.CurrentQuestion
		resp.Round = st.Round + 1
	}
	c.JSON(http.StatusOK, resp)
}

// Status reports where a session currently stands.
func (api *InterviewApi) Status(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "session_id is required"})
		return
	}

	snap, err := api.graph.StateOf(c.Request.Context(), sessionID)
	if errors.Is(err, internal_checkpoint.ErrNotFound) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Session not found"})
		return
	}
	if err != nil {
		api.logger.Errorf("failed to load session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Error getting status"})
		return
	}

	c.JSON(http.StatusOK, types.StatusResponse{
		CurrentQuestion: snap.State.CurrentQuestion,
		Round:           snap.State.Round,
		MaxRounds:       snap.State.MaxRounds,
		Done:            snap.State.Done(),
		WaitingForInput: snap.Next == internal_engine.NodeWaitForUserInput,
	})
}

// Summary returns the final interview summary.
func (api *InterviewApi) Summary(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "session_id is required"})
		return
	}

	snap, err := api.graph.StateOf(c.Request.Context(), sessionID)
	if errors.Is(err, internal_checkpoint.ErrNotFound) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Session not found"})
		return
	}
	if err != nil {
		api.logger.Errorf("failed to load session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Error getting summary"})
		return
	}

	c.JSON(http.StatusOK, types.SummaryResponse{Summary: snap.State.Summary})
}

// Reset removes a session so its id can be reused.
func (api *InterviewApi) Reset(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "session_id is required"})
		return
	}

	if err := api.graph.Delete(c.Request.Context(), sessionID); err != nil {
		api.logger.Errorf("failed to reset session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Error resetting session"})
		return
	}

	api.logger.Infof("interview reset: session=%s", sessionID)
	c.JSON(http.StatusOK, types.MessageResponse{Message: "Session reset successfully"})
}

func defaulted(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func lastOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}
