// Package router builds the Echo instance: middleware chain and routes.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/user-management-api/internal/handler"
	"github.com/deppfellow/user-management-api/internal/middleware"
	"github.com/deppfellow/user-management-api/internal/server"
)

// New wires the middleware pipeline and registers all routes.
//
// Registration order is a contract: the correlation id and request-scoped
// logger are established first, then the error boundary, then the
// authentication gate, then the request/response logger. The boundary must
// wrap the gate so gate failures are observable, and the gate must wrap the
// logger so only admitted requests flow through it (the gate records
// rejected ones itself).
func New(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mws := middleware.NewMiddlewares(s)
	h := handler.NewHandlers(s)

	e.HTTPErrorHandler = mws.Global.ErrorHandler

	e.Use(middleware.RequestID())
	e.Use(mws.ContextEnhancer.EnhanceContext())
	e.Use(mws.Global.CORS(), mws.Global.Secure())
	e.Use(mws.Global.ErrorBoundary())
	e.Use(mws.Auth.RequireToken())
	e.Use(mws.RequestLog.Capture())

	e.GET("/health", h.Health.Check)

	api := e.Group("/api")
	api.POST("/auth/login", h.Auth.Login)

	users := api.Group("/users")
	users.GET("", h.Users.List)
	users.GET("/:id", h.Users.Get)
	users.POST("", h.Users.Create)
	users.PUT("/:id", h.Users.Update)
	users.DELETE("/:id", h.Users.Delete)

	return e
}
