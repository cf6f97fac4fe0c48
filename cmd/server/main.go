package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rhyrak/go-seating/internal/config"
	"github.com/rhyrak/go-seating/internal/logger"
	"github.com/rhyrak/go-seating/internal/response"
	"github.com/rhyrak/go-seating/internal/rosterio"
	"github.com/rhyrak/go-seating/internal/seating"
	"github.com/rhyrak/go-seating/internal/validator"
	"github.com/rs/zerolog"
)

func main() {
	env := config.Load()
	log := logger.Setup(env.LogLevel, env.LogFormat, os.Stdout)
	log.Info().
		Str("port", env.ServerPort).
		Str("mode", env.GinMode).
		Str("roster", env.RosterFile).
		Msg("Starting seating server")

	validator.Setup()

	layout := seating.NewDefaultConfiguration()
	layout.RosterFile = env.RosterFile

	students, demo, err := rosterio.LoadOrDemo(layout.RosterFile)
	if err != nil {
		log.Fatal().Err(err).Str("roster", layout.RosterFile).Msg("Failed to load roster")
	}
	if demo {
		log.Warn().Str("roster", layout.RosterFile).Msg("Roster file not found, using demo roster")
	}

	gin.SetMode(env.GinMode)
	r := setupRouter(env, newSeatingHandler(students, layout, log), log)

	srv := &http.Server{
		Addr:    ":" + env.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), env.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

func setupRouter(env *config.Config, h *seatingHandler, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(env.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = env.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-Seating-Seed", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	r.Use(response.RequestIDMiddleware())
	r.Use(accessLog(log))

	r.GET("/health", func(ctx *gin.Context) {
		response.Success(ctx, http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/seating", h.handleGetSeating)
	r.GET("/seating/room", h.handleGetRoom)
	r.GET("/seating/export", h.handleExportSeating)

	r.NoRoute(func(ctx *gin.Context) {
		response.Fail(ctx, http.StatusNotFound, response.ErrNotFound)
	})

	return r
}

func accessLog(log zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		log.Debug().
			Str("request_id", response.RequestID(ctx)).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", ctx.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("Request handled")
	}
}
