package coach_routers

import (
	"github.com/gin-gonic/gin"

	healthCheckApi "github.com/prepwise/api/health-check-api"
	"github.com/prepwise/config"
	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/connectors"
)

func HealthCheckRoutes(cfg *config.AppConfig, engine *gin.Engine, logger commons.Logger, sqlite connectors.SqliteConnector) {
	logger.Info("Internal HealthCheckRoutes and Connectors added to engine.")
	apiv1 := engine.Group("")
	hcApi := healthCheckApi.New(cfg, logger, sqlite)
	{
		apiv1.GET("/readiness/", hcApi.Readiness)
		apiv1.GET("/healthz/", hcApi.Healthz)
	}
}
