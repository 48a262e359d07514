// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_speech_openai

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	internal_speech "github.com/prepwise/api/web-api/internal/speech"
	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/utils"
)

// Introduced constants for default values
const (
	DefaultTranscribeModel = "whisper-1" // Default model for speech-to-text
	DefaultSpeechModel     = "tts-1"     // Default model for text-to-speech
	DefaultVoice           = "alloy"     // Default voice for text-to-speech
)

type openaiOption struct {
	logger  commons.Logger
	client  openai.Client
	mdlOpts utils.Option
}

// NewOpenaiOption initializes the shared OpenAI client for speech providers.
func NewOpenaiOption(logger commons.Logger, apiKey string, opts utils.Option) (*openaiOption, error) {
	if utils.IsEmpty(apiKey) {
		return nil, fmt.Errorf("openai: missing api key")
	}
	return &openaiOption{
		logger:  logger,
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		mdlOpts: opts,
	}, nil
}

// TranscribeModel returns the speech-to-text model, honoring listen.model.
func (oo *openaiOption) TranscribeModel() string {
	if model, err := oo.mdlOpts.GetString("listen.model"); err == nil {
		return model
	}
	oo.logger.Warn("Model not specified, defaulting to " + DefaultTranscribeModel)
	return DefaultTranscribeModel
}

// Voice returns the text-to-speech voice, honoring speak.voice.id.
func (oo *openaiOption) Voice() string {
	if voice, err := oo.mdlOpts.GetString("speak.voice.id"); err == nil {
		return voice
	}
	oo.logger.Warn("Voice not specified, defaulting to " + DefaultVoice)
	return DefaultVoice
}

type openaiTranscriber struct {
	*openaiOption
}

// NewTranscriber creates a Whisper-backed transcriber.
func NewTranscriber(logger commons.Logger, apiKey string, opts utils.Option) (internal_speech.Transcriber, error) {
	oo, err := NewOpenaiOption(logger, apiKey, opts)
	if err != nil {
		return nil, err
	}
	return &openaiTranscriber{openaiOption: oo}, nil
}

func (t *openaiTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	resp, err := t.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		Model: openai.AudioModel(t.TranscribeModel()),
		File:  openai.File(bytes.NewReader(audio), filename, "application/octet-stream"),
	})
	if err != nil {
		return "", fmt.Errorf("openai transcription failed: %w", err)
	}
	t.logger.Debugf("transcribed answer: file=%s, bytes=%d, chars=%d", filename, len(audio), len(resp.Text))
	return resp.Text, nil
}

type openaiSynthesizer struct {
	*openaiOption
}

// NewSynthesizer creates a synthesizer over the OpenAI speech endpoint.
func NewSynthesizer(logger commons.Logger, apiKey string, opts utils.Option) (internal_speech.Synthesizer, error) {
	oo, err := NewOpenaiOption(logger, apiKey, opts)
	if err != nil {
		return nil, err
	}
	return &openaiSynthesizer{openaiOption: oo}, nil
}

func (s *openaiSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	res, err := s.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(DefaultSpeechModel),
		Voice:          openai.AudioSpeechNewParamsVoice(s.Voice()),
		Input:          text,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return nil, fmt.Errorf("openai synthesis failed: %w", err)
	}
	defer res.Body.Close()

	audio, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("openai synthesis read failed: %w", err)
	}
	return audio, nil
}
