// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package connectors

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"

	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/configs"
)

// SqliteConnector hands out gorm handles for the embedded database. Stores
// depend on this interface instead of holding a *gorm.DB so that tests can
// substitute an in-memory database.
type SqliteConnector interface {
	DB(ctx context.Context) *gorm.DB
	Ping(ctx context.Context) error
	Close() error
}

type sqliteConnector struct {
	logger commons.Logger
	db     *gorm.DB
}

// NewSqliteConnector opens (creating if absent) the sqlite database at the
// configured path.
func NewSqliteConnector(cfg configs.SqliteConfig, logger commons.Logger) (SqliteConnector, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", cfg.Path, err)
	}
	logger.Infof("sqlite connected: path=%s", cfg.Path)
	return &sqliteConnector{logger: logger, db: db}, nil
}

// NewSqliteConnectorFromDB wraps an already opened gorm handle. Used by tests.
func NewSqliteConnectorFromDB(db *gorm.DB, logger commons.Logger) SqliteConnector {
	return &sqliteConnector{logger: logger, db: db}
}

func (c *sqliteConnector) DB(ctx context.Context) *gorm.DB {
	return c.db.WithContext(ctx)
}

func (c *sqliteConnector) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("sqlite handle unavailable: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (c *sqliteConnector) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
