// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_engine

import (
	"context"
	"fmt"
	"hash/fnv"

	internal_checkpoint "github.com/prepwise/api/coach-api/internal/checkpoint"
	internal_evaluator "github.com/prepwise/api/coach-api/internal/evaluator"
	internal_questionbank "github.com/prepwise/api/coach-api/internal/questionbank"
	"github.com/prepwise/pkg/commons"
)

// Node names of the interview graph.
const (
	NodeSelectQuestion      = "select_question"
	NodeWaitForUserInput    = "wait_for_user_input"
	NodeProcessUserResponse = "process_user_response"
	NodeEvaluateResponse    = "evaluate_response"
	NodeGiveFeedback        = "give_feedback"
	NodeSummarize           = "summarize_interview"
)

// Interview holds the dependencies of the interview graph nodes.
type Interview struct {
	logger    commons.Logger
	questions internal_questionbank.Store
	evaluator internal_evaluator.Evaluator
}

func NewInterview(logger commons.Logger, questions internal_questionbank.Store, evaluator internal_evaluator.Evaluator) *Interview {
	return &Interview{
		logger:    logger,
		questions: questions,
		evaluator: evaluator,
	}
}

// Graph wires the interview workflow:
//
//	select_question → wait_for_user_input → process_user_response
//	  → evaluate_response → give_feedback →⎨ select_question (more rounds)
//	                                        ⎩ summarize_interview → END
//
// The run pauses before wait_for_user_input; the HTTP layer injects the
// candidate's answer and resumes.
func (iv *Interview) Graph(checkpoints internal_checkpoint.Store) *Graph {
	g := NewGraph(iv.logger, checkpoints)

	g.AddNode(NodeSelectQuestion, iv.selectQuestion)
	g.AddNode(NodeWaitForUserInput, iv.waitForUserInput)
	g.AddNode(NodeProcessUserResponse, iv.processUserResponse)
	g.AddNode(NodeEvaluateResponse, iv.evaluateResponse)
	g.AddNode(NodeGiveFeedback, iv.giveFeedback)
	g.AddNode(NodeSummarize, iv.summarizeInterview)

	g.SetEntryPoint(NodeSelectQuestion)
	g.AddEdge(NodeSelectQuestion, NodeWaitForUserInput)
	g.AddEdge(NodeWaitForUserInput, NodeProcessUserResponse)
	g.AddEdge(NodeProcessUserResponse, NodeEvaluateResponse)
	g.AddEdge(NodeEvaluateResponse, NodeGiveFeedback)
	g.AddConditionalEdge(NodeGiveFeedback, iv.checkContinue)
	g.AddEdge(NodeSummarize, End)

	g.InterruptBefore(NodeWaitForUserInput)
	return g
}

// selectQuestion picks a question from the configured pool that has not been
// asked yet. Selection is deterministic per (round, used count) so replaying a
// checkpoint asks the same question again.
func (iv *Interview) selectQuestion(ctx context.Context, st State) (State, error) {
	pool, err := iv.questions.List(ctx, st.Category, st.Difficulty)
	if err != nil {
		return st, err
	}

	used := make(map[string]bool, len(st.UsedQuestions))
	for _, q := range st.UsedQuestions {
		used[q] = true
	}
	available := make([]string, 0, len(pool))
	for _, q := range pool {
		if !used[q] {
			available = append(available, q)
		}
	}

	question := commons.NoMoreQuestions
	if len(available) > 0 {
		question = available[pickIndex(st.Round, len(st.UsedQuestions), len(available))]
		st.UsedQuestions = append(st.UsedQuestions, question)
	} else {
		iv.logger.Warnf("question pool exhausted: category=%s, difficulty=%s, round=%d", st.Category, st.Difficulty, st.Round)
	}

	st.CurrentQuestion = question
	st.Messages = append(st.Messages, Message{
		Role:    RoleAi,
		Content: fmt.Sprintf("Question %d: %s", st.Round+1, question),
	})
	return st, nil
}

func pickIndex(round, usedCount, poolSize int) int {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d-%d", round, usedCount)
	return int(h.Sum32() % uint32(poolSize))
}

// waitForUserInput is the interrupt point. The node itself is a no-op; the
// graph pauses before it and the HTTP layer injects UserResponse.
func (iv *Interview) waitForUserInput(_ context.Context, st State) (State, error) {
	return st, nil
}

func (iv *Interview) processUserResponse(_ context.Context, st State) (State, error) {
	if st.UserResponse != "" {
		st.Messages = append(st.Messages, Message{Role: RoleHuman, Content: st.UserResponse})
	}
	return st, nil
}

// evaluateResponse critiques the last question/answer pair. Evaluator failures
// degrade to an inline error string so a flaky LLM never kills the interview.
func (iv *Interview) evaluateResponse(ctx context.Context, st State) (State, error) {
	evaluation, err := iv.evaluator.Evaluate(ctx, st.LastExchange())
	if err != nil {
		iv.logger.Errorf("evaluation failed: round=%d, error=%v", st.Round, err)
		evaluation = fmt.Sprintf("Error evaluating response: %v", err)
	}
	st.Evaluations = append(st.Evaluations, evaluation)
	return st, nil
}

func (iv *Interview) giveFeedback(ctx context.Context, st State) (State, error) {
	lastEvaluation := ""
	if len(st.Evaluations) > 0 {
		lastEvaluation = st.Evaluations[len(st.Evaluations)-1]
	}

	feedback, err := iv.evaluator.Feedback(ctx, lastEvaluation)
	if err != nil {
		iv.logger.Errorf("feedback failed: round=%d, error=%v", st.Round, err)
		feedback = fmt.Sprintf("Error generating feedback: %v", err)
	}

	st.Feedback = append(st.Feedback, feedback)
	st.Round++
	st.UserResponse = ""
	return st, nil
}

func (iv *Interview) checkContinue(st State) string {
	if st.Round >= st.MaxRounds {
		return NodeSummarize
	}
	return NodeSelectQuestion
}

func (iv *Interview) summarizeInterview(ctx context.Context, st State) (State, error) {
	summary, err := iv.evaluator.Summarize(ctx, st.Evaluations, st.Feedback, st.MaxRounds)
	if err != nil {
		iv.logger.Errorf("summary failed: error=%v", err)
		summary = fmt.Sprintf("Error generating summary: %v", err)
	}
	st.Summary = summary
	return st, nil
}
