package internal_engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_checkpoint "github.com/prepwise/api/coach-api/internal/checkpoint"
	internal_questionbank "github.com/prepwise/api/coach-api/internal/questionbank"
	"github.com/prepwise/pkg/commons"
)

func newTestLogger(t *testing.T) commons.Logger {
	t.Helper()
	return commons.NewLogger("engine-test", "error", "")
}

type fakeQuestionStore struct {
	pools map[string][]string
}

func (f *fakeQuestionStore) List(_ context.Context, category, difficulty string) ([]string, error) {
	return f.pools[category+"/"+difficulty], nil
}

func (f *fakeQuestionStore) Count(context.Context) (int64, error) { return 0, nil }

func (f *fakeQuestionStore) Insert(context.Context, []internal_questionbank.Question) error {
	return nil
}

type fakeEvaluator struct {
	evaluateErr error
	feedbackErr error
	summaryErr  error
	calls       []string
}

func (f *fakeEvaluator) Evaluate(_ context.Context, exchange string) (string, error) {
	f.calls = append(f.calls, "evaluate")
	if f.evaluateErr != nil {
		return "", f.evaluateErr
	}
	return "evaluation of: " + exchange, nil
}

func (f *fakeEvaluator) Feedback(_ context.Context, evaluation string) (string, error) {
	f.calls = append(f.calls, "feedback")
	if f.feedbackErr != nil {
		return "", f.feedbackErr
	}
	return "feedback on: " + evaluation, nil
}

func (f *fakeEvaluator) Summarize(_ context.Context, evaluations, _ []string, rounds int) (string, error) {
	f.calls = append(f.calls, "summarize")
	if f.summaryErr != nil {
		return "", f.summaryErr
	}
	return fmt.Sprintf("summary over %d rounds, %d evaluations", rounds, len(evaluations)), nil
}

func defaultPools() *fakeQuestionStore {
	return &fakeQuestionStore{pools: map[string][]string{
		"behavioral/medium": {"B1", "B2", "B3", "B4"},
		"technical/hard":    {"T1"},
	}}
}

func newInterviewGraph(t *testing.T, store internal_questionbank.Store, eval *fakeEvaluator) *Graph {
	t.Helper()
	logger := newTestLogger(t)
	return NewInterview(logger, store, eval).Graph(internal_checkpoint.NewMemoryStore(logger))
}

func initialState(rounds int) State {
	return State{
		MaxRounds:  rounds,
		Difficulty: "medium",
		Category:   "behavioral",
	}
}

func TestInvokePausesAtUserInput(t *testing.T) {
	ctx := context.Background()
	graph := newInterviewGraph(t, defaultPools(), &fakeEvaluator{})

	snap, err := graph.Invoke(ctx, "s1", initialState(3))
	require.NoError(t, err)

	assert.Equal(t, NodeWaitForUserInput, snap.Next)
	assert.NotEmpty(t, snap.State.CurrentQuestion)
	assert.Equal(t, []string{snap.State.CurrentQuestion}, snap.State.UsedQuestions)
	assert.Equal(t, 0, snap.State.Round)
	require.Len(t, snap.State.Messages, 1)
	assert.Equal(t, RoleAi, snap.State.Messages[0].Role)
	assert.Contains(t, snap.State.Messages[0].Content, "Question 1: ")
}

func answerAndResume(t *testing.T, graph *Graph, threadID, answer string) Snapshot {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, graph.UpdateState(ctx, threadID, func(st *State) {
		st.UserResponse = answer
	}))
	snap, err := graph.Resume(ctx, threadID)
	require.NoError(t, err)
	return snap
}

func TestFullInterviewFlow(t *testing.T) {
	ctx := context.Background()
	eval := &fakeEvaluator{}
	graph := newInterviewGraph(t, defaultPools(), eval)

	snap, err := graph.Invoke(ctx, "s1", initialState(2))
	require.NoError(t, err)
	first := snap.State.CurrentQuestion

	// round one: answer, expect pause at the next question
	snap = answerAndResume(t, graph, "s1", "my first answer")
	assert.Equal(t, NodeWaitForUserInput, snap.Next)
	assert.Equal(t, 1, snap.State.Round)
	assert.False(t, snap.State.Done())
	assert.Len(t, snap.State.Evaluations, 1)
	assert.Len(t, snap.State.Feedback, 1)
	assert.NotEqual(t, first, snap.State.CurrentQuestion, "second round must ask a new question")
	assert.Empty(t, snap.State.UserResponse, "user response is cleared after feedback")

	// round two: answer, expect summary and termination
	snap = answerAndResume(t, graph, "s1", "my second answer")
	assert.Empty(t, snap.Next)
	assert.Equal(t, 2, snap.State.Round)
	assert.True(t, snap.State.Done())
	assert.Len(t, snap.State.Evaluations, 2)
	assert.Len(t, snap.State.Feedback, 2)
	assert.Equal(t, "summary over 2 rounds, 2 evaluations", snap.State.Summary)
	assert.Equal(t, []string{"evaluate", "feedback", "evaluate", "feedback", "summarize"}, eval.calls)
}

func TestAnswerRecordedAsHumanMessage(t *testing.T) {
	ctx := context.Background()
	graph := newInterviewGraph(t, defaultPools(), &fakeEvaluator{})

	_, err := graph.Invoke(ctx, "s1", initialState(1))
	require.NoError(t, err)
	snap := answerAndResume(t, graph, "s1", "I shipped a search service.")

	var humans []string
	for _, msg := range snap.State.Messages {
		if msg.Role == RoleHuman {
			humans = append(humans, msg.Content)
		}
	}
	assert.Equal(t, []string{"I shipped a search service."}, humans)
}

func TestSelectionIsDeterministic(t *testing.T) {
	ctx := context.Background()

	var picks []string
	for i := 0; i < 3; i++ {
		graph := newInterviewGraph(t, defaultPools(), &fakeEvaluator{})
		snap, err := graph.Invoke(ctx, fmt.Sprintf("s%d", i), initialState(3))
		require.NoError(t, err)
		picks = append(picks, snap.State.CurrentQuestion)
	}
	assert.Equal(t, picks[0], picks[1])
	assert.Equal(t, picks[1], picks[2])
}

func TestPoolExhaustionYieldsSentinel(t *testing.T) {
	ctx := context.Background()
	store := &fakeQuestionStore{pools: map[string][]string{"technical/hard": {"T1"}}}
	graph := newInterviewGraph(t, store, &fakeEvaluator{})

	st := initialState(3)
	st.Category = "technical"
	st.Difficulty = "hard"

	snap, err := graph.Invoke(ctx, "s1", st)
	require.NoError(t, err)
	assert.Equal(t, "T1", snap.State.CurrentQuestion)

	snap = answerAndResume(t, graph, "s1", "answer one")
	assert.Equal(t, commons.NoMoreQuestions, snap.State.CurrentQuestion)
	assert.Equal(t, []string{"T1"}, snap.State.UsedQuestions, "the sentinel is never recorded as used")
}

func TestEvaluatorErrorsDegradeInline(t *testing.T) {
	ctx := context.Background()
	eval := &fakeEvaluator{
		evaluateErr: errors.New("rate limited"),
		feedbackErr: errors.New("rate limited"),
		summaryErr:  errors.New("rate limited"),
	}
	graph := newInterviewGraph(t, defaultPools(), eval)

	_, err := graph.Invoke(ctx, "s1", initialState(1))
	require.NoError(t, err)
	snap := answerAndResume(t, graph, "s1", "answer")

	require.Len(t, snap.State.Evaluations, 1)
	assert.Equal(t, "Error evaluating response: rate limited", snap.State.Evaluations[0])
	require.Len(t, snap.State.Feedback, 1)
	assert.Equal(t, "Error generating feedback: rate limited", snap.State.Feedback[0])
	assert.Equal(t, "Error generating summary: rate limited", snap.State.Summary)
}

func TestResumeWithoutPendingNode(t *testing.T) {
	ctx := context.Background()
	graph := newInterviewGraph(t, defaultPools(), &fakeEvaluator{})

	_, err := graph.Invoke(ctx, "s1", initialState(1))
	require.NoError(t, err)
	answerAndResume(t, graph, "s1", "answer")

	_, err = graph.Resume(ctx, "s1")
	assert.ErrorContains(t, err, "no pending node")
}

func TestResumeUnknownThread(t *testing.T) {
	ctx := context.Background()
	graph := newInterviewGraph(t, defaultPools(), &fakeEvaluator{})

	_, err := graph.Resume(ctx, "ghost")
	assert.ErrorIs(t, err, internal_checkpoint.ErrNotFound)
}
