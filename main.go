package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zenith-app/zenith/api"
	"github.com/zenith-app/zenith/config"
	"github.com/zenith-app/zenith/db"
	"github.com/zenith-app/zenith/engine"
	"github.com/zenith-app/zenith/feedback"
	"github.com/zenith-app/zenith/log"
	"github.com/zenith-app/zenith/notifications"
)

func main() {
	cfg := config.Get()

	// Initialize database and install the default dataset on first run
	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("failed to open database")
	}
	log.Info().Str("path", cfg.DatabasePath).Msg("database initialized")

	if err := database.Seed(); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	// Apply persisted log level
	if level, err := database.GetSetting("log_level"); err == nil && level != "" {
		log.SetLevel(level)
	}

	// Set Gin to release mode to disable its default debug logging;
	// the zerolog request logger is used instead
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(log.GinLogger())
	r.Use(api.CompressionMiddleware())

	if cfg.IsDevelopment() {
		r.Use(api.CORSMiddleware())
	}

	r.SetTrustedProxies(nil)

	// Wire the engine and its collaborators
	notifService := notifications.NewService()
	feedbackCtrl := feedback.NewController(cfg.AudioEnabled)
	eng := engine.New(database, notifService, feedbackCtrl, engine.Options{
		TickInterval:  cfg.TickInterval,
		SnoozeMinutes: cfg.SnoozeMinutes,
	})

	// A persisted snooze offset overrides the env default
	if v, err := database.GetSetting("snooze_minutes"); err == nil && v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			eng.SetSnoozeMinutes(minutes)
		}
	}

	a := api.New(database, eng, notifService)
	a.SetupRoutes(r)

	// SPA fallback - serve the built frontend for non-API routes
	r.NoRoute(func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.File("frontend/dist/index.html")
	})

	log.Info().Msg("starting alarm engine")
	eng.Start()

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	srv := &http.Server{
		Addr:     addr,
		Handler:  r,
		ErrorLog: log.StdErrorLogger(),
	}

	go func() {
		log.Info().
			Str("addr", addr).
			Str("env", cfg.Env).
			Msg("server starting")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	// Stop the engine before closing the stores it writes to
	eng.Stop()
	feedbackCtrl.Stop()
	notifService.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	if err := database.Close(); err != nil {
		log.Error().Err(err).Msg("database close error")
	}

	log.Info().Msg("server stopped")
}
