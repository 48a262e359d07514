// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_checkpoint

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/connectors"
)

const redisKeyPrefix = "coach:checkpoint:"

type redisStore struct {
	logger commons.Logger
	redis  connectors.RedisConnector
	ttl    time.Duration
}

// NewRedisStore returns a checkpoint store backed by redis, for deployments
// running more than one backend replica. Checkpoints expire after ttl so
// abandoned interviews do not accumulate.
func NewRedisStore(redis connectors.RedisConnector, ttl time.Duration, logger commons.Logger) Store {
	return &redisStore{
		logger: logger,
		redis:  redis,
		ttl:    ttl,
	}
}

func redisKey(threadID string) string {
	return redisKeyPrefix + threadID
}

func (s *redisStore) Save(ctx context.Context, threadID string, data []byte) error {
	if err := s.redis.Client().Set(ctx, redisKey(threadID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save checkpoint %s: %w", threadID, err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, threadID string) ([]byte, error) {
	data, err := s.redis.Client().Get(ctx, redisKey(threadID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read checkpoint %s: %w", threadID, err)
	}
	return data, nil
}

func (s *redisStore) Exists(ctx context.Context, threadID string) (bool, error) {
	n, err := s.redis.Client().Exists(ctx, redisKey(threadID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check checkpoint %s: %w", threadID, err)
	}
	return n > 0, nil
}

func (s *redisStore) Delete(ctx context.Context, threadID string) error {
	if err := s.redis.Client().Del(ctx, redisKey(threadID)).Err(); err != nil {
		return fmt.Errorf("failed to delete checkpoint %s: %w", threadID, err)
	}
	return nil
}
