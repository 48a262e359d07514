// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package types

// StartInterviewRequest opens a new interview session. Rounds is a pointer so
// an omitted value can default to 3 while an explicit non-positive value is
// rejected.
type StartInterviewRequest struct {
	SessionId  string `json:"session_id" binding:"required"`
	Rounds     *int   `json:"rounds"`
	Difficulty string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Category   string `json:"category" binding:"omitempty,oneof=behavioral technical"`
}

// StartInterviewResponse carries the first question. Round is 1-based for
// display.
type StartInterviewResponse struct {
	Question string `json:"question"`
	Round    int    `json:"round"`
}

// AnswerRequest submits the candidate's transcribed answer for the pending
// question.
type AnswerRequest struct {
	SessionId   string `json:"session_id" binding:"required"`
	UserMessage string `json:"user_message"`
}

// AnswerResponse carries the evaluation and feedback for the submitted answer
// and either the next question or, when the interview is over, the final
// summary.
type AnswerResponse struct {
	Evaluations string `json:"evaluations"`
	Feedback    string `json:"feedback"`
	Done        bool   `json:"done"`
	Summary     string `json:"summary,omitempty"`
	Question    string `json:"question,omitempty"`
	Round       int    `json:"round,omitempty"`
}

// StatusResponse reports where a session currently stands.
type StatusResponse struct {
	CurrentQuestion string `json:"current_question"`
	Round           int    `json:"round"`
	MaxRounds       int    `json:"max_rounds"`
	Done            bool   `json:"done"`
	WaitingForInput bool   `json:"waiting_for_input"`
}

// SummaryResponse carries the final interview summary.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// MessageResponse is returned by operations that only acknowledge.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error envelope returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
