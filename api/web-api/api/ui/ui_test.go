// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package ui_api

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/prepwise/config"
	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/types"
)

type stubCoach struct {
	startResp  *types.StartInterviewResponse
	answerResp *types.AnswerResponse
	startErr   error
	answerErr  error
	resets     []string
}

func (s *stubCoach) StartInterview(ctx context.Context, req *types.StartInterviewRequest) (*types.StartInterviewResponse, error) {
	if s.startErr != nil {
		return nil, s.startErr
	}
	return s.startResp, nil
}

func (s *stubCoach) SubmitAnswer(ctx context.Context, req *types.AnswerRequest) (*types.AnswerResponse, error) {
	if s.answerErr != nil {
		return nil, s.answerErr
	}
	return s.answerResp, nil
}

func (s *stubCoach) Status(ctx context.Context, sessionID string) (*types.StatusResponse, error) {
	return &types.StatusResponse{}, nil
}

func (s *stubCoach) Summary(ctx context.Context, sessionID string) (*types.SummaryResponse, error) {
	return &types.SummaryResponse{}, nil
}

func (s *stubCoach) Reset(ctx context.Context, sessionID string) error {
	s.resets = append(s.resets, sessionID)
	return nil
}

type stubTranscriber struct {
	transcript string
	err        error
}

func (s *stubTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	return s.transcript, s.err
}

type stubSynthesizer struct {
	calls []string
	err   error
}

func (s *stubSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	s.calls = append(s.calls, text)
	if s.err != nil {
		return nil, s.err
	}
	return []byte("mp3:" + text), nil
}

func newTestUi(coach *stubCoach, transcriber *stubTranscriber, synthesizer *stubSynthesizer) (*UiApi, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	cfg := &config.AppConfig{Name: "coach-web"}
	logger := commons.NewLogger("ui-test", "error", "")
	api := New(cfg, logger, coach, transcriber, synthesizer)

	engine := gin.New()
	engine.GET("/", api.Index)
	engine.POST("/interview/start", api.Start)
	engine.POST("/interview/answer", api.Answer)
	engine.GET("/interview/audio/:kind", api.Audio)
	engine.POST("/interview/reset", api.Reset)
	return api, engine
}

func sessionCookieOf(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == sessionCookie {
			return ck
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestIndexRendersStartForm(t *testing.T) {
	_, engine := newTestUi(&stubCoach{}, &stubTranscriber{}, &stubSynthesizer{})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Start interview")
	assert.NotNil(t, sessionCookieOf(t, rec))
}

func TestStartShowsFirstQuestion(t *testing.T) {
	coach := &stubCoach{startResp: &types.StartInterviewResponse{Question: "Tell me about yourself.", Round: 1}}
	synth := &stubSynthesizer{}
	_, engine := newTestUi(coach, &stubTranscriber{}, synth)

	form := url.Values{"rounds": {"3"}, "difficulty": {"medium"}, "category": {"behavioral"}}
	req := httptest.NewRequest(http.MethodPost, "/interview/start", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"Tell me about yourself."}, synth.calls)
	cookie := sessionCookieOf(t, rec)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), "Tell me about yourself.")
	assert.Contains(t, rec.Body.String(), "Question 1 of 3")
}

func TestStartFailureRedirectsWithError(t *testing.T) {
	coach := &stubCoach{startErr: errors.New("upstream down")}
	_, engine := newTestUi(coach, &stubTranscriber{}, &stubSynthesizer{})

	req := httptest.NewRequest(http.MethodPost, "/interview/start", strings.NewReader("rounds=3"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "error=")
}

func answerRequest(t *testing.T, cookie *http.Cookie, audio []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("audio", "answer.webm")
	assert.NoError(t, err)
	_, err = part.Write(audio)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/interview/answer", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func startedSession(t *testing.T, engine *gin.Engine) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/interview/start", strings.NewReader("rounds=3"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	return sessionCookieOf(t, rec)
}

func TestAnswerAdvancesInterview(t *testing.T) {
	coach := &stubCoach{
		startResp: &types.StartInterviewResponse{Question: "First question", Round: 1},
		answerResp: &types.AnswerResponse{
			Evaluations: "Good structure.",
			Feedback:    "Add metrics.",
			Question:    "Second question",
			Round:       2,
		},
	}
	synth := &stubSynthesizer{}
	_, engine := newTestUi(coach, &stubTranscriber{transcript: "my answer"}, synth)

	cookie := startedSession(t, engine)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, answerRequest(t, cookie, []byte("opus-bytes")))
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	body := rec.Body.String()
	assert.Contains(t, body, "my answer")
	assert.Contains(t, body, "Good structure.")
	assert.Contains(t, body, "Add metrics.")
	assert.Contains(t, body, "Second question")
	assert.Contains(t, synth.calls, "Good structure.")
	assert.Contains(t, synth.calls, "Second question")
}

func TestAnswerFinishesInterview(t *testing.T) {
	coach := &stubCoach{
		startResp: &types.StartInterviewResponse{Question: "Only question", Round: 1},
		answerResp: &types.AnswerResponse{
			Evaluations: "Fine.",
			Feedback:    "Well done.",
			Done:        true,
			Summary:     "Strong overall performance.",
		},
	}
	_, engine := newTestUi(coach, &stubTranscriber{transcript: "done"}, &stubSynthesizer{})

	cookie := startedSession(t, engine)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, answerRequest(t, cookie, []byte("bytes")))
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), "Strong overall performance.")
	assert.Contains(t, rec.Body.String(), "Interview summary")
}

func TestAnswerWithoutInterviewRedirects(t *testing.T) {
	_, engine := newTestUi(&stubCoach{}, &stubTranscriber{transcript: "x"}, &stubSynthesizer{})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, answerRequest(t, nil, []byte("bytes")))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "error=")
}

func TestAnswerEmptyTranscriptRedirects(t *testing.T) {
	coach := &stubCoach{startResp: &types.StartInterviewResponse{Question: "Q", Round: 1}}
	_, engine := newTestUi(coach, &stubTranscriber{transcript: "   "}, &stubSynthesizer{})

	cookie := startedSession(t, engine)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, answerRequest(t, cookie, []byte("bytes")))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "error=")
}

func TestAudioServesCachedClip(t *testing.T) {
	coach := &stubCoach{startResp: &types.StartInterviewResponse{Question: "Spoken question", Round: 1}}
	_, engine := newTestUi(coach, &stubTranscriber{}, &stubSynthesizer{})

	cookie := startedSession(t, engine)
	req := httptest.NewRequest(http.MethodGet, "/interview/audio/question", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/mpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "mp3:Spoken question", rec.Body.String())
}

func TestAudioUnknownKind(t *testing.T) {
	_, engine := newTestUi(&stubCoach{}, &stubTranscriber{}, &stubSynthesizer{})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/interview/audio/bogus", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAudioMissingClip(t *testing.T) {
	_, engine := newTestUi(&stubCoach{}, &stubTranscriber{}, &stubSynthesizer{})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/interview/audio/question", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResetClearsSession(t *testing.T) {
	coach := &stubCoach{startResp: &types.StartInterviewResponse{Question: "Q", Round: 1}}
	_, engine := newTestUi(coach, &stubTranscriber{}, &stubSynthesizer{})

	cookie := startedSession(t, engine)
	req := httptest.NewRequest(http.MethodPost, "/interview/reset", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{cookie.Value}, coach.resets)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), "Start interview")
}

func TestSynthesisFailureDegradesToText(t *testing.T) {
	coach := &stubCoach{startResp: &types.StartInterviewResponse{Question: "Quiet question", Round: 1}}
	synth := &stubSynthesizer{err: errors.New("tts down")}
	_, engine := newTestUi(coach, &stubTranscriber{}, synth)

	cookie := startedSession(t, engine)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), "Quiet question")

	req = httptest.NewRequest(http.MethodGet, "/interview/audio/question", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
