// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package config

import "github.com/spf13/viper"

func setDefault(v *viper.Viper) {
	// setting all default values
	// keeping watch on https://github.com/spf13/viper/issues/188

	v.SetDefault("SERVICE_NAME", "coach-api")
	v.SetDefault("VERSION", "0.0.1")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 8000)
	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("LOG_FILE", "")

	v.SetDefault("SQLITE__PATH", "coach.db")

	v.SetDefault("REDIS__HOST", "localhost")
	v.SetDefault("REDIS__PORT", 6379)
	v.SetDefault("REDIS__PASSWORD", "")
	v.SetDefault("REDIS__DATABASE", 0)

	v.SetDefault("QUESTION_BANK_PATH", "questions.json")
	v.SetDefault("CHECKPOINT_BACKEND", "memory")
	v.SetDefault("CHECKPOINT_TTL_SEC", 86400)

	v.SetDefault("EVALUATOR__PROVIDER", "groq")
	v.SetDefault("EVALUATOR__MODEL", "llama3-70b-8192")
	v.SetDefault("EVALUATOR__API_KEY", "")
	v.SetDefault("EVALUATOR__BASE_URL", "https://api.groq.com/openai/v1")
	v.SetDefault("EVALUATOR__TEMPERATURE", 0.0)

	// web service
	v.SetDefault("API_URL", "http://backend:8000")
	v.SetDefault("SPEECH__TRANSCRIBER_PROVIDER", "openai")
	v.SetDefault("SPEECH__SYNTHESIZER_PROVIDER", "openai")
	v.SetDefault("SPEECH__OPENAI_API_KEY", "")
	v.SetDefault("SPEECH__DEEPGRAM_API_KEY", "")
	v.SetDefault("SPEECH__GOOGLE_API_KEY", "")
	v.SetDefault("SPEECH__VOICE", "")
	v.SetDefault("SPEECH__LANGUAGE", "en")
}
