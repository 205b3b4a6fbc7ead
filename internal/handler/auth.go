package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/user-management-api/internal/middleware"
	"github.com/deppfellow/user-management-api/internal/server"
	"github.com/deppfellow/user-management-api/internal/validation"
)

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	server *server.Server
}

func NewAuthHandler(s *server.Server) *AuthHandler {
	return &AuthHandler{server: s}
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

// LoginResponse is the successful login body. ExpiresIn is the token TTL
// in seconds.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int    `json:"expiresIn"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	UserID    int    `json:"userId"`
	FullName  string `json:"fullName"`
}

// Login checks the credentials against the user store and issues a bearer
// token on success. Unknown username, wrong password, and inactive account
// all produce the same 401 body so the response does not reveal which
// check failed.
func (h *AuthHandler) Login(c echo.Context) error {
	req := new(LoginRequest)
	if err := validation.BindAndValidate(c, req); err != nil {
		return err
	}

	logger := middleware.GetLogger(c)

	user, ok := h.server.Users.GetByUsername(req.Username)
	if !ok || !user.Active || user.Password != req.Password {
		logger.Warn().Str("username", req.Username).Msg("failed login attempt")
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"message": "Invalid username or password",
		})
	}

	token := h.server.Tokens.CreateToken(user.Username)
	logger.Info().Str("username", user.Username).Msg("login succeeded")

	return c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(h.server.Tokens.TTL().Seconds()),
		Username:  user.Username,
		Role:      user.Role,
		UserID:    user.ID,
		FullName:  user.FullName(),
	})
}
