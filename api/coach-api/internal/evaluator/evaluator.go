// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_evaluator

import "context"

// Evaluator is the LLM surface of the interview engine. Implementations live
// in provider subpackages (groq, anthropic) and are selected by configuration.
type Evaluator interface {
	// Evaluate critiques the candidate's answer given the last
	// question/answer exchange.
	Evaluate(ctx context.Context, exchange string) (string, error)

	// Feedback turns an evaluation into friendly, actionable coaching.
	Feedback(ctx context.Context, evaluation string) (string, error)

	// Summarize produces the final performance summary across all rounds.
	Summarize(ctx context.Context, evaluations, feedback []string, rounds int) (string, error)
}
