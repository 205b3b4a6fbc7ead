package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deppfellow/user-management-api/internal/server"
)

// LoggerKey is the echo context key under which the request-scoped logger
// is stored.
const LoggerKey = "logger"

// ContextEnhancer seeds each request with a child logger carrying the
// correlation id and basic request facts, so every downstream log line is
// attributable without repeating the fields.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Str("remote_ip", c.RealIP()).
				Logger()

			c.Set(LoggerKey, &logger)

			return next(c)
		}
	}
}

// GetLogger returns the request-scoped logger, or a no-op logger when the
// enhancer has not run (bare contexts in tests).
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}
	nop := zerolog.Nop()
	return &nop
}
