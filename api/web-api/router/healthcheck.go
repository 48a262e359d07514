package web_routers

import (
	"github.com/gin-gonic/gin"

	healthCheckApi "github.com/prepwise/api/health-check-api"
	"github.com/prepwise/config"
	"github.com/prepwise/pkg/commons"
)

func HealthCheckRoutes(cfg *config.AppConfig, engine *gin.Engine, logger commons.Logger) {
	logger.Info("Internal HealthCheckRoutes added to engine.")
	apiv1 := engine.Group("")
	hcApi := healthCheckApi.New(cfg, logger, nil)
	{
		apiv1.GET("/readiness/", hcApi.Readiness)
		apiv1.GET("/healthz/", hcApi.Healthz)
	}
}
