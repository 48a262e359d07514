package coach_routers

import (
	"github.com/gin-gonic/gin"

	interviewApi "github.com/prepwise/api/coach-api/api/interview"
	internal_engine "github.com/prepwise/api/coach-api/internal/engine"
	"github.com/prepwise/config"
	"github.com/prepwise/pkg/commons"
)

func InterviewApiRoute(cfg *config.AppConfig, engine *gin.Engine, logger commons.Logger, graph *internal_engine.Graph) {
	logger.Info("InterviewApiRoute added to engine.")
	apiv1 := engine.Group("")
	ivApi := interviewApi.New(cfg, logger, graph)
	{
		apiv1.POST("/start", ivApi.Start)
		apiv1.POST("/answer", ivApi.Answer)
		apiv1.GET("/status", ivApi.Status)
		apiv1.GET("/summary", ivApi.Summary)
		apiv1.POST("/reset", ivApi.Reset)
	}
}
