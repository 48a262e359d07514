// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package configs

// SqliteConfig describes the embedded database holding the question bank.
type SqliteConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// RedisConfig describes the optional redis used for interview checkpoints.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

// EvaluatorConfig selects and credentials the LLM provider used for response
// evaluation, feedback and the final summary.
type EvaluatorConfig struct {
	Provider    string  `mapstructure:"provider" validate:"required,oneof=groq anthropic"`
	Model       string  `mapstructure:"model" validate:"required"`
	ApiKey      string  `mapstructure:"api_key"`
	BaseUrl     string  `mapstructure:"base_url"`
	Temperature float64 `mapstructure:"temperature"`
}

// SpeechConfig selects the speech-to-text and text-to-speech providers used by
// the web service.
type SpeechConfig struct {
	TranscriberProvider string `mapstructure:"transcriber_provider" validate:"required,oneof=openai deepgram"`
	SynthesizerProvider string `mapstructure:"synthesizer_provider" validate:"required,oneof=openai google"`
	OpenaiApiKey        string `mapstructure:"openai_api_key"`
	DeepgramApiKey      string `mapstructure:"deepgram_api_key"`
	GoogleApiKey        string `mapstructure:"google_api_key"`
	Voice               string `mapstructure:"voice"`
	Language            string `mapstructure:"language"`
}
