// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_engine

import (
	"fmt"
	"strings"
)

// Message roles, named after the conversational source of each message.
const (
	RoleHuman  = "human"
	RoleAi     = "ai"
	RoleSystem = "system"
)

// Message is one turn of the interview conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// State is the full interview state carried between graph nodes and persisted
// in checkpoints.
type State struct {
	Messages        []Message `json:"messages"`
	CurrentQuestion string    `json:"currentQuestion"`
	UsedQuestions   []string  `json:"usedQuestions"`
	Evaluations     []string  `json:"evaluations"`
	Feedback        []string  `json:"feedback"`
	Round           int       `json:"round"`
	MaxRounds       int       `json:"maxRounds"`
	Difficulty      string    `json:"difficulty"`
	Category        string    `json:"category"`
	Summary         string    `json:"summary"`
	UserResponse    string    `json:"userResponse"`
}

// Done reports whether every round has been completed.
func (s State) Done() bool {
	return s.Round >= s.MaxRounds
}

// LastExchange renders the most recent question/answer pair for evaluation.
func (s State) LastExchange() string {
	messages := s.Messages
	if len(messages) > 2 {
		messages = messages[len(messages)-2:]
	}
	return Flatten(messages)
}

var roleLabels = map[string]string{
	RoleHuman:  "User",
	RoleAi:     "Assistant",
	RoleSystem: "System",
}

// Flatten renders messages as "Role: content" lines for prompt building.
func Flatten(messages []Message) string {
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		label, ok := roleLabels[msg.Role]
		if !ok {
			label = "Unknown"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, msg.Content))
	}
	return strings.Join(lines, "\n")
}
