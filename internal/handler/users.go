package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/user-management-api/internal/errs"
	"github.com/deppfellow/user-management-api/internal/middleware"
	"github.com/deppfellow/user-management-api/internal/model"
	"github.com/deppfellow/user-management-api/internal/server"
	"github.com/deppfellow/user-management-api/internal/validation"
)

// UserHandler serves the user CRUD endpoints.
type UserHandler struct {
	server *server.Server
}

func NewUserHandler(s *server.Server) *UserHandler {
	return &UserHandler{server: s}
}

// UserRequest is the create/update payload. On update only the profile
// fields (names, email, department) are applied.
type UserRequest struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Active     bool   `json:"active"`
}

func (r *UserRequest) Validate() error {
	return validation.Struct(r)
}

func (r *UserRequest) toModel() model.User {
	return model.User{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Department: r.Department,
		Username:   r.Username,
		Password:   r.Password,
		Role:       r.Role,
		Active:     r.Active,
	}
}

// List returns all users ordered by id.
func (h *UserHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.server.Users.GetAll())
}

// Get returns a single user by id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	user, ok := h.server.Users.GetByID(id)
	if !ok {
		return notFound(id)
	}
	return c.JSON(http.StatusOK, user)
}

// Create stores a new user and returns it with its assigned id.
func (h *UserHandler) Create(c echo.Context) error {
	req := new(UserRequest)
	if err := validation.BindAndValidate(c, req); err != nil {
		return err
	}

	if h.server.Users.EmailTaken(req.Email, 0) {
		return emailConflict(req.Email)
	}

	created := h.server.Users.Add(req.toModel())
	middleware.GetLogger(c).Info().Int("user_id", created.ID).Msg("user created")

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/users/%d", created.ID))
	return c.JSON(http.StatusCreated, created)
}

// Update applies the profile fields to an existing user.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	req := new(UserRequest)
	if err := validation.BindAndValidate(c, req); err != nil {
		return err
	}

	if h.server.Users.EmailTaken(req.Email, id) {
		return emailConflict(req.Email)
	}

	if !h.server.Users.Update(id, req.toModel()) {
		return notFound(id)
	}

	middleware.GetLogger(c).Info().Int("user_id", id).Msg("user updated")
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a user.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	if !h.server.Users.Delete(id) {
		return notFound(id)
	}

	middleware.GetLogger(c).Info().Int("user_id", id).Msg("user deleted")
	return c.NoContent(http.StatusNoContent)
}

func userID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errs.NewBadRequest("User id must be an integer", nil)
	}
	return id, nil
}

func notFound(id int) *errs.Problem {
	return errs.NewNotFound(fmt.Sprintf("User with ID %d not found", id))
}

func emailConflict(email string) *errs.Problem {
	return errs.NewConflict(fmt.Sprintf("A user with email '%s' already exists", email))
}
