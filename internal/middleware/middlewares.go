package middleware

import (
	"github.com/deppfellow/user-management-api/internal/server"
)

// Middlewares aggregates the middleware constructors so the router wires
// them from one place.
type Middlewares struct {
	Global          *GlobalMiddlewares
	ContextEnhancer *ContextEnhancer
	Auth            *AuthMiddleware
	RequestLog      *RequestLogger
}

func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Auth:            NewAuthMiddleware(s),
		RequestLog:      NewRequestLogger(s),
	}
}
