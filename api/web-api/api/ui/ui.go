// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package ui_api

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	internal_speech "github.com/prepwise/api/web-api/internal/speech"
	"github.com/prepwise/config"
	coach_client "github.com/prepwise/pkg/clients/coach"
	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// Audio kinds the player can request back after an exchange.
const (
	AudioKindQuestion   = "question"
	AudioKindEvaluation = "evaluation"
	AudioKindFeedback   = "feedback"
	AudioKindSummary    = "summary"
)

// UiApi renders the coaching front end: a single page that records the
// candidate's voice, relays it through the coach-api and plays the coach's
// responses back as audio.
type UiApi struct {
	cfg         *config.AppConfig
	logger      commons.Logger
	coach       coach_client.CoachServiceClient
	transcriber internal_speech.Transcriber
	synthesizer internal_speech.Synthesizer
	sessions    *sessionStore
	templates   *template.Template
}

func New(cfg *config.AppConfig, logger commons.Logger, coach coach_client.CoachServiceClient, transcriber internal_speech.Transcriber, synthesizer internal_speech.Synthesizer) *UiApi {
	return &UiApi{
		cfg:         cfg,
		logger:      logger,
		coach:       coach,
		transcriber: transcriber,
		synthesizer: synthesizer,
		sessions:    newSessionStore(),
		templates:   template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

type indexView struct {
	Title      string
	Started    bool
	Done       bool
	Round      int
	MaxRounds  int
	Question   string
	Transcript string
	Evaluation string
	Feedback   string
	Summary    string
	Error      string
}

// Index renders the interview page in whatever state the session is in.
func (api *UiApi) Index(c *gin.Context) {
	sess := api.sessions.resolve(c)
	sess.mu.Lock()
	view := indexView{
		Title:      api.cfg.Name,
		Started:    sess.Started,
		Done:       sess.Done,
		Round:      sess.Round,
		MaxRounds:  sess.MaxRounds,
		Question:   sess.Question,
		Transcript: sess.Transcript,
		Evaluation: sess.Evaluation,
		Feedback:   sess.Feedback,
		Summary:    sess.Summary,
		Error:      c.Query("error"),
	}
	sess.mu.Unlock()

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := api.templates.ExecuteTemplate(c.Writer, "index.html", view); err != nil {
		api.logger.Errorf("failed to render index: %v", err)
	}
}

// Start begins a new interview through the coach-api and caches the spoken
// first question.
func (api *UiApi) Start(c *gin.Context) {
	sess := api.sessions.resolve(c)

	rounds := parseRounds(c.PostForm("rounds"))
	req := &types.StartInterviewRequest{
		SessionId:  sess.SessionId,
		Rounds:     rounds,
		Difficulty: c.PostForm("difficulty"),
		Category:   c.PostForm("category"),
	}

	ctx := c.Request.Context()
	out, err := api.coach.StartInterview(ctx, req)
	if err != nil {
		api.logger.Errorf("failed to start interview for %s: %v", sess.SessionId, err)
		api.redirectError(c, "Could not start the interview, please try again.")
		return
	}

	sess.mu.Lock()
	sess.Started = true
	sess.Done = false
	sess.Round = out.Round
	sess.MaxRounds = maxRoundsOf(rounds)
	sess.Question = out.Question
	sess.Transcript = ""
	sess.Evaluation = ""
	sess.Feedback = ""
	sess.Summary = ""
	sess.mu.Unlock()

	api.speak(c, sess, AudioKindQuestion, out.Question)
	api.logger.Infof("interview started from web: session=%s, round=%d", sess.SessionId, out.Round)
	c.Redirect(http.StatusSeeOther, "/")
}

// Answer accepts the recorded clip, transcribes it, relays the transcript to
// the coach-api and caches spoken versions of the coach's responses.
func (api *UiApi) Answer(c *gin.Context) {
	sess := api.sessions.resolve(c)
	sess.mu.Lock()
	started, done := sess.Started, sess.Done
	sess.mu.Unlock()
	if !started || done {
		api.redirectError(c, "No interview in progress.")
		return
	}

	audio, filename, err := readUpload(c)
	if err != nil {
		api.logger.Errorf("failed to read recording for %s: %v", sess.SessionId, err)
		api.redirectError(c, "Could not read your recording, please try again.")
		return
	}

	ctx := c.Request.Context()
	transcript, err := api.transcriber.Transcribe(ctx, audio, filename)
	if err != nil {
		api.logger.Errorf("failed to transcribe answer for %s: %v", sess.SessionId, err)
		api.redirectError(c, "Could not transcribe your answer, please try again.")
		return
	}
	if strings.TrimSpace(transcript) == "" {
		api.redirectError(c, "We could not hear anything in that recording.")
		return
	}

	out, err := api.coach.SubmitAnswer(ctx, &types.AnswerRequest{
		SessionId:   sess.SessionId,
		UserMessage: transcript,
	})
	if err != nil {
		api.logger.Errorf("failed to submit answer for %s: %v", sess.SessionId, err)
		api.redirectError(c, "Could not process your answer, please try again.")
		return
	}

	sess.mu.Lock()
	sess.Transcript = transcript
	sess.Evaluation = out.Evaluations
	sess.Feedback = out.Feedback
	sess.Done = out.Done
	if out.Done {
		sess.Summary = out.Summary
		sess.Question = ""
	} else {
		sess.Question = out.Question
		sess.Round = out.Round
	}
	sess.mu.Unlock()

	api.speak(c, sess, AudioKindEvaluation, out.Evaluations)
	api.speak(c, sess, AudioKindFeedback, out.Feedback)
	if out.Done {
		api.speak(c, sess, AudioKindSummary, out.Summary)
	} else {
		api.speak(c, sess, AudioKindQuestion, out.Question)
	}

	api.logger.Infof("answer processed from web: session=%s, done=%t", sess.SessionId, out.Done)
	c.Redirect(http.StatusSeeOther, "/")
}

// Audio serves the cached synthesized clip for a kind.
func (api *UiApi) Audio(c *gin.Context) {
	sess := api.sessions.resolve(c)
	kind := c.Param("kind")
	switch kind {
	case AudioKindQuestion, AudioKindEvaluation, AudioKindFeedback, AudioKindSummary:
	default:
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Unknown audio kind"})
		return
	}

	data, ok := sess.getAudio(kind)
	if !ok {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "No audio available"})
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", data)
}

// Reset abandons the current interview on both sides.
func (api *UiApi) Reset(c *gin.Context) {
	sess := api.sessions.resolve(c)
	if err := api.coach.Reset(c.Request.Context(), sess.SessionId); err != nil {
		api.logger.Warnf("failed to reset session %s upstream: %v", sess.SessionId, err)
	}
	api.sessions.drop(sess.SessionId)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// speak synthesizes text into the session's audio cache. Synthesis failures
// degrade to text-only display rather than failing the exchange.
func (api *UiApi) speak(c *gin.Context, sess *uiSession, kind, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	data, err := api.synthesizer.Synthesize(c.Request.Context(), text)
	if err != nil {
		api.logger.Warnf("failed to synthesize %s audio for %s: %v", kind, sess.SessionId, err)
		return
	}
	sess.setAudio(kind, data)
}

func (api *UiApi) redirectError(c *gin.Context, message string) {
	c.Redirect(http.StatusSeeOther, "/?error="+url.QueryEscape(message))
}

func readUpload(c *gin.Context) ([]byte, string, error) {
	file, err := c.FormFile("audio")
	if err != nil {
		return nil, "", fmt.Errorf("missing audio upload: %w", err)
	}
	f, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open audio upload: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read audio upload: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty audio upload")
	}
	name := file.Filename
	if name == "" {
		name = "answer.webm"
	}
	return data, name, nil
}

func parseRounds(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func maxRoundsOf(rounds *int) int {
	if rounds == nil || *rounds <= 0 {
		return 3
	}
	return *rounds
}
