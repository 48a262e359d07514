// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_speech_google

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"

	internal_speech "github.com/prepwise/api/web-api/internal/speech"
	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/utils"
)

// Introduced constants for default values
const (
	DefaultLanguageCode = "en-US"           // Default language code for Text-to-Speech
	DefaultVoice        = "en-US-Neural2-D" // Default voice for Text-to-Speech
)

type googleOption struct {
	logger        commons.Logger
	clientOptions []option.ClientOption
	mdlOpts       utils.Option
}

// NewGoogleOption initializes the Google client options from the api key.
func NewGoogleOption(logger commons.Logger, apiKey string, opts utils.Option) (*googleOption, error) {
	if utils.IsEmpty(apiKey) {
		return nil, fmt.Errorf("google: missing api key")
	}
	return &googleOption{
		logger:        logger,
		clientOptions: []option.ClientOption{option.WithAPIKey(apiKey)},
		mdlOpts:       opts,
	}, nil
}

// GetClientOptions returns all configured Google API client options.
func (gO *googleOption) GetClientOptions() []option.ClientOption {
	return gO.clientOptions
}

// TextToSpeechOptions generates the voice selection for synthesis requests.
func (gog *googleOption) TextToSpeechOptions() *texttospeechpb.VoiceSelectionParams {
	voice := &texttospeechpb.VoiceSelectionParams{
		LanguageCode: DefaultLanguageCode,
		Name:         DefaultVoice,
	}
	if name, err := gog.mdlOpts.GetString("speak.voice.id"); err == nil {
		voice.Name = name
	} else {
		gog.logger.Warn("Voice not specified, defaulting to " + DefaultVoice)
	}
	if language, err := gog.mdlOpts.GetString("speak.language"); err == nil {
		voice.LanguageCode = language
	}
	return voice
}

type googleSynthesizer struct {
	*googleOption
}

// NewSynthesizer creates a synthesizer over Google Cloud Text-to-Speech.
func NewSynthesizer(logger commons.Logger, apiKey string, opts utils.Option) (internal_speech.Synthesizer, error) {
	gO, err := NewGoogleOption(logger, apiKey, opts)
	if err != nil {
		return nil, err
	}
	return &googleSynthesizer{googleOption: gO}, nil
}

func (s *googleSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	client, err := texttospeech.NewClient(ctx, s.GetClientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("google tts client failed: %w", err)
	}
	defer client.Close()

	resp, err := client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: s.TextToSpeechOptions(),
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("google synthesis failed: %w", err)
	}
	return resp.AudioContent, nil
}
