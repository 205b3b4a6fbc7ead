package middleware

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the response header exposing the correlation id.
	RequestIDHeader = "X-Request-ID"

	requestIDKey    = "request_id"
	requestStartKey = "request_start"
)

// RequestID assigns every inbound request a fresh 8-character hex
// correlation id and records the arrival instant. It runs at the very top
// of the pipeline so every layer, including the gate and the error
// boundary, can correlate its log lines. The id carries no authorization
// semantics.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

			c.Set(requestIDKey, id)
			c.Set(requestStartKey, time.Now())
			c.Response().Header().Set(RequestIDHeader, id)

			return next(c)
		}
	}
}

// GetRequestID returns the correlation id, or "" when RequestID has not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestStart returns the instant the request entered the pipeline,
// falling back to now when RequestID has not run.
func RequestStart(c echo.Context) time.Time {
	if start, ok := c.Get(requestStartKey).(time.Time); ok {
		return start
	}
	return time.Now()
}
