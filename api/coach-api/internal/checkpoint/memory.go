// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_checkpoint

import (
	"context"
	"sync"

	"github.com/prepwise/pkg/commons"
)

type memoryStore struct {
	logger commons.Logger
	mu     sync.RWMutex
	data   map[string][]byte
}

// NewMemoryStore returns the default single-process checkpoint store.
// Checkpoints do not survive a restart of the backend.
func NewMemoryStore(logger commons.Logger) Store {
	return &memoryStore{
		logger: logger,
		data:   make(map[string][]byte),
	}
}

func (s *memoryStore) Save(_ context.Context, threadID string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[threadID] = cp
	return nil
}

func (s *memoryStore) Get(_ context.Context, threadID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[threadID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (s *memoryStore) Exists(_ context.Context, threadID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[threadID]
	return ok, nil
}

func (s *memoryStore) Delete(_ context.Context, threadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, threadID)
	return nil
}
