// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_speech_deepgram

import (
	"bytes"
	"context"
	"fmt"

	listenv1rest "github.com/deepgram/deepgram-go-sdk/v3/pkg/api/listen/v1/rest"
	interfaces "github.com/deepgram/deepgram-go-sdk/v3/pkg/client/interfaces"
	listen "github.com/deepgram/deepgram-go-sdk/v3/pkg/client/listen"

	internal_speech "github.com/prepwise/api/web-api/internal/speech"
	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/utils"
)

const (
	DefaultModel    = "nova-2" // Default model for pre-recorded transcription
	DefaultLanguage = "en"
)

type deepgramOption struct {
	logger  commons.Logger
	mdlOpts utils.Option
	key     string
}

func NewDeepgramOption(logger commons.Logger, apiKey string, opts utils.Option) (*deepgramOption, error) {
	if utils.IsEmpty(apiKey) {
		return nil, fmt.Errorf("deepgram: missing api key")
	}
	return &deepgramOption{
		logger:  logger,
		mdlOpts: opts,
		key:     apiKey,
	}, nil
}

func (do *deepgramOption) GetKey() string {
	return do.key
}

// TranscriptionOptions builds the pre-recorded request, honoring listen.model
// and listen.language overrides.
func (do *deepgramOption) TranscriptionOptions() *interfaces.PreRecordedTranscriptionOptions {
	options := &interfaces.PreRecordedTranscriptionOptions{
		Model:       DefaultModel,
		Language:    DefaultLanguage,
		SmartFormat: true,
		Punctuate:   true,
	}
	if model, err := do.mdlOpts.GetString("listen.model"); err == nil {
		options.Model = model
	} else {
		do.logger.Warn("Model not specified, defaulting to " + DefaultModel)
	}
	if language, err := do.mdlOpts.GetString("listen.language"); err == nil {
		options.Language = language
	}
	return options
}

type deepgramTranscriber struct {
	*deepgramOption
}

// NewTranscriber creates a transcriber over Deepgram's pre-recorded REST API.
func NewTranscriber(logger commons.Logger, apiKey string, opts utils.Option) (internal_speech.Transcriber, error) {
	do, err := NewDeepgramOption(logger, apiKey, opts)
	if err != nil {
		return nil, err
	}
	return &deepgramTranscriber{deepgramOption: do}, nil
}

func (t *deepgramTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	client := listen.NewREST(t.key, &interfaces.ClientOptions{})
	dg := listenv1rest.New(client)

	res, err := dg.FromStream(ctx, bytes.NewReader(audio), t.TranscriptionOptions())
	if err != nil {
		return "", fmt.Errorf("deepgram transcription failed: %w", err)
	}
	if res == nil || len(res.Results.Channels) == 0 || len(res.Results.Channels[0].Alternatives) == 0 {
		return "", fmt.Errorf("deepgram transcription returned no alternatives")
	}

	transcript := res.Results.Channels[0].Alternatives[0].Transcript
	t.logger.Debugf("transcribed answer: file=%s, bytes=%d, chars=%d", filename, len(audio), len(transcript))
	return transcript, nil
}
