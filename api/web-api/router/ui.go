package web_routers

import (
	"github.com/gin-gonic/gin"

	uiApi "github.com/prepwise/api/web-api/api/ui"
	internal_speech "github.com/prepwise/api/web-api/internal/speech"
	"github.com/prepwise/config"
	coach_client "github.com/prepwise/pkg/clients/coach"
	"github.com/prepwise/pkg/commons"
)

func UiApiRoute(cfg *config.AppConfig, engine *gin.Engine, logger commons.Logger, coach coach_client.CoachServiceClient, transcriber internal_speech.Transcriber, synthesizer internal_speech.Synthesizer) {
	logger.Info("UiApiRoute added to engine.")
	root := engine.Group("")
	api := uiApi.New(cfg, logger, coach, transcriber, synthesizer)
	{
		root.GET("/", api.Index)
		root.POST("/interview/start", api.Start)
		root.POST("/interview/answer", api.Answer)
		root.GET("/interview/audio/:kind", api.Audio)
		root.POST("/interview/reset", api.Reset)
	}
}
