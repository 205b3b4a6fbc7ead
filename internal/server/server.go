// Package server defines the application container that composes the app's
// shared dependencies: configuration, logger, the token registry, the user
// store, and the request log recorder. It also owns the http.Server
// lifecycle (setup, start, graceful shutdown).
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/user-management-api/internal/auth"
	"github.com/deppfellow/user-management-api/internal/config"
	"github.com/deppfellow/user-management-api/internal/reqlog"
	"github.com/deppfellow/user-management-api/internal/store"
)

// Server holds shared resources. It is not the HTTP server itself; the
// router and middleware receive it so they can reach config, logging, the
// token registry, and the user store.
type Server struct {
	Config   *config.Config
	Logger   *zerolog.Logger
	Tokens   *auth.Registry
	Users    *store.UserStore
	Recorder *reqlog.Recorder

	httpServer *http.Server
}

// New constructs the container. The token registry and user store are
// process-wide singletons created here once and injected everywhere else.
func New(cfg *config.Config, logger *zerolog.Logger) (*Server, error) {
	recorder, err := reqlog.NewRecorder(*logger, cfg.Logging.Dir)
	if err != nil {
		return nil, errors.Wrap(err, "initialize request log recorder")
	}

	return &Server{
		Config:   cfg,
		Logger:   logger,
		Tokens:   auth.NewRegistry(cfg.Auth.TTL()),
		Users:    store.NewUserStore(),
		Recorder: recorder,
	}, nil
}

// SetupHTTPServer configures the internal net/http server with the given
// handler (the Echo router) and the timeouts from config.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops or errors.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, letting in-flight requests
// finish until ctx expires, and closes the request log file.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "shutdown HTTP server")
	}
	if err := s.Recorder.Close(); err != nil {
		return errors.Wrap(err, "close request log recorder")
	}
	return nil
}
