// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_questionbank

import (
	"context"
	"fmt"

	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/connectors"
)

// Store provides read access to the interview question bank.
//
// The bank is append-only at runtime: rows are seeded once at startup and the
// engine only ever lists pools. Used-question exclusion lives in the interview
// state, not here, because two concurrent sessions must not see each other's
// used questions.
type Store interface {
	// List returns the question texts for a category/difficulty pool, in
	// insertion order so selection stays deterministic.
	List(ctx context.Context, category, difficulty string) ([]string, error)

	// Count returns the total number of questions in the bank.
	Count(ctx context.Context) (int64, error)

	// Insert adds questions to the bank. Used by the seeder.
	Insert(ctx context.Context, questions []Question) error
}

type sqliteStore struct {
	sqlite connectors.SqliteConnector
	logger commons.Logger
}

// NewStore creates the question bank store and runs its migration.
func NewStore(sqlite connectors.SqliteConnector, logger commons.Logger) (Store, error) {
	if err := sqlite.DB(context.Background()).AutoMigrate(&Question{}); err != nil {
		return nil, fmt.Errorf("failed to migrate question bank: %w", err)
	}
	return &sqliteStore{
		sqlite: sqlite,
		logger: logger,
	}, nil
}

func (s *sqliteStore) List(ctx context.Context, category, difficulty string) ([]string, error) {
	db := s.sqlite.DB(ctx)
	var texts []string
	err := db.Model(&Question{}).
		Where("category = ? AND difficulty = ?", category, difficulty).
		Order("id ASC").
		Pluck("text", &texts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list questions %s/%s: %w", category, difficulty, err)
	}

	s.logger.Debugf("listed question pool: category=%s, difficulty=%s, size=%d", category, difficulty, len(texts))
	return texts, nil
}

func (s *sqliteStore) Count(ctx context.Context) (int64, error) {
	db := s.sqlite.DB(ctx)
	var count int64
	if err := db.Model(&Question{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

func (s *sqliteStore) Insert(ctx context.Context, questions []Question) error {
	if len(questions) == 0 {
		return nil
	}
	db := s.sqlite.DB(ctx)
	if err := db.Create(&questions).Error; err != nil {
		return fmt.Errorf("failed to insert %d questions: %w", len(questions), err)
	}
	s.logger.Infof("inserted questions: count=%d", len(questions))
	return nil
}
