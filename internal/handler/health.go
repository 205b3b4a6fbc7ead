package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/user-management-api/internal/server"
)

// HealthHandler serves the unauthenticated liveness endpoint.
type HealthHandler struct {
	server *server.Server
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{server: s}
}

func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
	})
}
