// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package healthcheck_api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepwise/config"
	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/connectors"
)

// HealthCheckApi serves liveness and readiness probes.
type HealthCheckApi struct {
	cfg    *config.AppConfig
	logger commons.Logger
	sqlite connectors.SqliteConnector
}

// New creates the health check api. sqlite may be nil for services without a
// database; readiness then only reports the process as up.
func New(cfg *config.AppConfig, logger commons.Logger, sqlite connectors.SqliteConnector) *HealthCheckApi {
	return &HealthCheckApi{
		cfg:    cfg,
		logger: logger,
		sqlite: sqlite,
	}
}

// Healthz reports process liveness.
func (api *HealthCheckApi) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": api.cfg.Name,
		"version": api.cfg.Version,
	})
}

// Readiness reports whether the service can take traffic.
func (api *HealthCheckApi) Readiness(c *gin.Context) {
	if api.sqlite != nil {
		if err := api.sqlite.Ping(c.Request.Context()); err != nil {
			api.logger.Errorf("readiness failed: sqlite unreachable: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
