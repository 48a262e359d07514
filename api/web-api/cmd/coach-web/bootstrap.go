package main

import (
	"fmt"

	internal_speech "github.com/prepwise/api/web-api/internal/speech"
	internal_speech_deepgram "github.com/prepwise/api/web-api/internal/speech/deepgram"
	internal_speech_google "github.com/prepwise/api/web-api/internal/speech/google"
	internal_speech_openai "github.com/prepwise/api/web-api/internal/speech/openai"
	"github.com/prepwise/config"
	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/utils"
)

// speechOptions maps the flat speech config onto the provider option keys.
func speechOptions(cfg *config.AppConfig) utils.Option {
	opts := utils.Option{}
	if !utils.IsEmpty(cfg.SpeechConfig.Voice) {
		opts["speak.voice.id"] = cfg.SpeechConfig.Voice
	}
	if !utils.IsEmpty(cfg.SpeechConfig.Language) {
		opts["listen.language"] = cfg.SpeechConfig.Language
		opts["speak.language"] = cfg.SpeechConfig.Language
	}
	return opts
}

// buildTranscriber selects the speech-to-text provider from config.
func buildTranscriber(cfg *config.AppConfig, logger commons.Logger) (internal_speech.Transcriber, error) {
	opts := speechOptions(cfg)
	switch cfg.SpeechConfig.TranscriberProvider {
	case "openai":
		return internal_speech_openai.NewTranscriber(logger, cfg.SpeechConfig.OpenaiApiKey, opts)
	case "deepgram":
		return internal_speech_deepgram.NewTranscriber(logger, cfg.SpeechConfig.DeepgramApiKey, opts)
	default:
		return nil, fmt.Errorf("unknown transcriber provider %q", cfg.SpeechConfig.TranscriberProvider)
	}
}

// buildSynthesizer selects the text-to-speech provider from config.
func buildSynthesizer(cfg *config.AppConfig, logger commons.Logger) (internal_speech.Synthesizer, error) {
	opts := speechOptions(cfg)
	switch cfg.SpeechConfig.SynthesizerProvider {
	case "openai":
		return internal_speech_openai.NewSynthesizer(logger, cfg.SpeechConfig.OpenaiApiKey, opts)
	case "google":
		return internal_speech_google.NewSynthesizer(logger, cfg.SpeechConfig.GoogleApiKey, opts)
	default:
		return nil, fmt.Errorf("unknown synthesizer provider %q", cfg.SpeechConfig.SynthesizerProvider)
	}
}
