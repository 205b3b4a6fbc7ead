// Package handler contains the HTTP endpoint handlers. Handlers are thin:
// they bind and validate input, call into the stores, and shape responses.
// Errors are returned as *errs.Problem values and written by the error
// boundary; only success bodies and the login 401 are written here.
package handler

import (
	"github.com/deppfellow/user-management-api/internal/server"
)

// Handlers aggregates the endpoint handlers for route registration.
type Handlers struct {
	Auth   *AuthHandler
	Users  *UserHandler
	Health *HealthHandler
}

func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Auth:   NewAuthHandler(s),
		Users:  NewUserHandler(s),
		Health: NewHealthHandler(s),
	}
}
