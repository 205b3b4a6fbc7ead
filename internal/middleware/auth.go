package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/user-management-api/internal/errs"
	"github.com/deppfellow/user-management-api/internal/reqlog"
	"github.com/deppfellow/user-management-api/internal/server"
)

// publicPathPrefixes are matched case-insensitively against the request
// path; matching requests bypass the gate entirely.
var publicPathPrefixes = []string{
	"/swagger",
	"/api/auth/login",
	"/health",
}

// AuthMiddleware is the bearer-token gate. It sits between the error
// boundary and the request logger, so rejected requests never reach the
// logger; the gate emits the request/response records for those itself.
type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{server: s}
}

// RequireToken validates the Authorization header against the token
// registry. A valid token has its expiration extended (sliding TTL) before
// the request proceeds.
func (a *AuthMiddleware) RequireToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logger := GetLogger(c)

			if isPublicPath(c.Request().URL.Path) {
				logger.Debug().Msg("public path, skipping authentication")
				return next(c)
			}

			values := c.Request().Header.Values(echo.HeaderAuthorization)
			if len(values) == 0 {
				logger.Warn().Msg("missing authorization header")
				return a.reject(c, "Missing authorization header")
			}

			header := values[0]
			if strings.TrimSpace(header) == "" {
				logger.Warn().Msg("empty authorization header")
				return a.reject(c, "Empty authorization header")
			}

			token, isBearer := strings.CutPrefix(header, "Bearer ")
			if !isBearer || !a.server.Tokens.IsValid(token) {
				logger.Warn().Msg("invalid or expired token")
				return a.reject(c, "Invalid or expired token")
			}

			a.server.Tokens.Extend(token)
			logger.Info().
				Dur("token_remaining", a.server.Tokens.TimeRemaining(token)).
				Msg("authentication successful")

			return next(c)
		}
	}
}

func isPublicPath(path string) bool {
	lowered := strings.ToLower(path)
	for _, prefix := range publicPathPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			return true
		}
	}
	return false
}

// reject writes the 401 problem body and emits both log records for the
// request, since the logging layer sits inside this gate and will never
// see it.
func (a *AuthMiddleware) reject(c echo.Context, detail string) error {
	requestID := GetRequestID(c)
	req := c.Request()

	a.server.Recorder.Request(reqlog.FromRequest(req, requestID))

	problem := errs.NewUnauthorized(detail)
	if err := c.JSON(http.StatusUnauthorized, problem); err != nil {
		return err
	}

	body, _ := json.Marshal(problem)
	a.server.Recorder.Response(reqlog.Record{
		RequestID: requestID,
		Direction: reqlog.DirectionResponse,
		Method:    req.Method,
		Path:      req.URL.Path,
		Headers:   c.Response().Header().Clone(),
		Body:      string(body),
		Status:    http.StatusUnauthorized,
		Elapsed:   time.Since(RequestStart(c)),
	})

	return nil
}
