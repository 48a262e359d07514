// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package connectors

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/configs"
)

// RedisConnector hands out the shared redis client used for interview
// checkpoints.
type RedisConnector interface {
	Client() *redis.Client
	Ping(ctx context.Context) error
	Close() error
}

type redisConnector struct {
	logger commons.Logger
	client *redis.Client
}

// NewRedisConnector connects to the configured redis instance.
func NewRedisConnector(cfg configs.RedisConfig, logger commons.Logger) (RedisConnector, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.Database,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect redis %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	logger.Infof("redis connected: addr=%s:%d db=%d", cfg.Host, cfg.Port, cfg.Database)
	return &redisConnector{logger: logger, client: client}, nil
}

// NewRedisConnectorFromClient wraps an existing client. Used by tests together
// with redismock.
func NewRedisConnectorFromClient(client *redis.Client, logger commons.Logger) RedisConnector {
	return &redisConnector{logger: logger, client: client}
}

func (c *redisConnector) Client() *redis.Client {
	return c.client
}

func (c *redisConnector) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *redisConnector) Close() error {
	return c.client.Close()
}
