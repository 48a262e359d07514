// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package commons

// NoMoreQuestions is the sentinel returned when the selection pool for a
// category/difficulty has been exhausted. It is never recorded as a used
// question.
const NoMoreQuestions = "No more questions available."

// Interview difficulty levels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Interview question categories.
const (
	CategoryBehavioral = "behavioral"
	CategoryTechnical  = "technical"
)
