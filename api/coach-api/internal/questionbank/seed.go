// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_questionbank

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/prepwise/pkg/commons"
)

// bankFile is the on-disk shape of questions.json:
//
//	{"behavioral": {"easy": ["...", ...], "medium": [...]}, "technical": {...}}
type bankFile map[string]map[string][]string

// Seed loads questions.json into the store when the bank is empty. A missing
// or malformed file is a startup error: the backend cannot run interviews
// without questions.
func Seed(ctx context.Context, store Store, path string, logger commons.Logger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("questions.json not found at %s: %w", path, err)
	}

	var bank bankFile
	if err := json.Unmarshal(raw, &bank); err != nil {
		return fmt.Errorf("invalid questions.json format: %w", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Debugf("question bank already seeded: count=%d", count)
		return nil
	}

	var questions []Question
	for category, byDifficulty := range bank {
		for difficulty, texts := range byDifficulty {
			for _, text := range texts {
				questions = append(questions, Question{
					Category:   category,
					Difficulty: difficulty,
					Text:       text,
				})
			}
		}
	}
	if len(questions) == 0 {
		return fmt.Errorf("questions.json at %s contains no questions", path)
	}

	if err := store.Insert(ctx, questions); err != nil {
		return err
	}
	logger.Infof("seeded question bank: path=%s, count=%d", path, len(questions))
	return nil
}
