// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_evaluator

import (
	"fmt"
	"strings"
)

// EvaluatePrompt asks the model to critique the last question/answer exchange.
func EvaluatePrompt(exchange string) string {
	return fmt.Sprintf(`Based on this interview exchange:
%s

Evaluate the user's response to the interview question. Comment on which part is missing or weak. Be concise and specific.`, exchange)
}

// FeedbackPrompt asks the model to turn an evaluation into coaching.
func FeedbackPrompt(evaluation string) string {
	return fmt.Sprintf(`Based on this evaluation: %s

Give friendly, constructive feedback to the candidate. Mention one specific area to work on and one thing they did well.
Keep it encouraging but actionable.`, evaluation)
}

// SummaryPrompt asks the model for the final performance summary.
func SummaryPrompt(evaluations, feedback []string, rounds int) string {
	return fmt.Sprintf(`You are an interview coach. Based on the following evaluations and feedback from a %d-question interview:

EVALUATIONS:
%s

FEEDBACK:
%s

Provide a comprehensive summary of the candidate's overall performance. Include:
1. Key strengths demonstrated
2. Main areas for improvement
3. Specific recommendations for interview preparation
4. Overall assessment

Be encouraging but honest in your assessment.`, rounds, strings.Join(evaluations, "\n"), strings.Join(feedback, "\n"))
}
