// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_questionbank

import "time"

// Question is one entry of the interview question bank, seeded from
// questions.json and selected by category/difficulty.
type Question struct {
	ID          uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedDate time.Time `json:"createdDate" gorm:"autoCreateTime"`
	Category    string    `json:"category" gorm:"type:string;size:50;not null;index:idx_question_pool"`
	Difficulty  string    `json:"difficulty" gorm:"type:string;size:50;not null;index:idx_question_pool"`
	Text        string    `json:"text" gorm:"type:text;not null"`
}
