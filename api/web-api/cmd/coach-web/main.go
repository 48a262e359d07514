package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	web_routers "github.com/prepwise/api/web-api/router"
	"github.com/prepwise/config"
	coach_client "github.com/prepwise/pkg/clients/coach"
	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	vConfig, err := config.InitConfig()
	if err != nil {
		log.Fatalf("init config: %v", err)
	}
	cfg, err := config.GetApplicationConfig(vConfig)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := commons.NewLogger(cfg.Name, cfg.LogLevel, cfg.LogFile)
	logger.Infof("starting %s %s (%s)", cfg.Name, cfg.Version, utils.FromEnvironmentStr(cfg.Environment).Get())

	transcriber, err := buildTranscriber(cfg, logger)
	if err != nil {
		logger.Fatalf("build transcriber: %v", err)
	}
	synthesizer, err := buildSynthesizer(cfg, logger)
	if err != nil {
		logger.Fatalf("build synthesizer: %v", err)
	}
	coach := coach_client.NewCoachServiceClient(cfg, logger)

	if utils.FromEnvironmentStr(cfg.Environment) == utils.PRODUCTION {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.Default())

	web_routers.HealthCheckRoutes(cfg, engine, logger)
	web_routers.UiApiRoute(cfg, engine, logger, coach, transcriber, synthesizer)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Infof("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Fatalf("server error: %v", err)
	}
	logger.Info("coach-web shut down")
}
