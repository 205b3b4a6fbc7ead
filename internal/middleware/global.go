package middleware

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/deppfellow/user-management-api/internal/errs"
	"github.com/deppfellow/user-management-api/internal/server"
)

// GlobalMiddlewares bundles the cross-cutting middleware: CORS, security
// headers, and the error boundary that converts every downstream failure
// into the uniform problem body.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{server: s}
}

// CORS applies the configured allowed origins.
func (g *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: g.server.Config.Server.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions,
		},
	})
}

// Secure sets the standard security response headers.
func (g *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return echomw.Secure()
}

// ErrorBoundary is the outermost functional layer. It recovers panics and
// intercepts every error returned by the chain below it, mapping each to a
// problem-body response. Known problems keep their own status and detail;
// anything else becomes the generic 500 carrying only the correlation id.
func (g *GlobalMiddlewares) ErrorBoundary() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var err error
			func() {
				defer func() {
					if r := recover(); r != nil {
						if r == http.ErrAbortHandler {
							panic(r)
						}
						err = errors.Errorf("panic recovered: %v", r)
					}
				}()
				err = next(c)
			}()

			if err != nil {
				return g.handleFailure(c, err)
			}
			return nil
		}
	}
}

// ErrorHandler is installed as Echo's HTTPErrorHandler so errors surfacing
// outside the boundary (or re-raised by it) flow through the same funnel.
func (g *GlobalMiddlewares) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if writeErr := g.handleFailure(c, err); writeErr != nil {
		GetLogger(c).Error().Err(writeErr).Msg("failed to write error response")
	}
}

func (g *GlobalMiddlewares) handleFailure(c echo.Context, err error) error {
	var problem *errs.Problem
	if stderrors.As(err, &problem) {
		GetLogger(c).Warn().
			Int("status", problem.Status).
			Str("detail", problem.Detail).
			Msg("request failed")
		return g.writeProblem(c, problem)
	}

	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		detail := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			detail = msg
		}
		GetLogger(c).Warn().
			Int("status", httpErr.Code).
			Str("detail", detail).
			Msg("request failed")
		return g.writeProblem(c, &errs.Problem{
			Title:     http.StatusText(httpErr.Code),
			Status:    httpErr.Code,
			Detail:    detail,
			Timestamp: time.Now().UTC(),
		})
	}

	GetLogger(c).Error().
		Stack().
		Err(err).
		Msg("unhandled error")
	return g.writeProblem(c, errs.NewInternal(GetRequestID(c)))
}

func (g *GlobalMiddlewares) writeProblem(c echo.Context, p *errs.Problem) error {
	if c.Response().Committed {
		return nil
	}
	return c.JSON(p.Status, p)
}
