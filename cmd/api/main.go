package main

import (
	"context"
	stderrors "errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/user-management-api/internal/config"
	"github.com/deppfellow/user-management-api/internal/logger"
	"github.com/deppfellow/user-management-api/internal/router"
	"github.com/deppfellow/user-management-api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(cfg.Primary.Env)

	srv, err := server.New(cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize server")
	}

	srv.SetupHTTPServer(router.New(srv))

	go func() {
		if err := srv.Start(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	appLogger.Info().Msg("server stopped")
}
