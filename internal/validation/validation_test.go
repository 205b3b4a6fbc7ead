package validation

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/user-management-api/internal/errs"
)

type loginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

func (p *loginPayload) Validate() error { return Struct(p) }

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateSuccess(t *testing.T) {
	p := new(loginPayload)
	err := BindAndValidate(newContext(`{"username":"admin","password":"admin123"}`), p)

	require.NoError(t, err)
	assert.Equal(t, "admin", p.Username)
}

func TestBindAndValidateMissingFields(t *testing.T) {
	err := BindAndValidate(newContext(`{}`), new(loginPayload))

	var problem *errs.Problem
	require.True(t, stderrors.As(err, &problem))
	assert.Equal(t, http.StatusBadRequest, problem.Status)
	require.Len(t, problem.Errors, 2)
	assert.Equal(t, "Username", problem.Errors[0].Field)
	assert.Equal(t, "This field is required", problem.Errors[0].Error)
}

func TestBindAndValidateMinLength(t *testing.T) {
	err := BindAndValidate(newContext(`{"username":"admin","password":"abc"}`), new(loginPayload))

	var problem *errs.Problem
	require.True(t, stderrors.As(err, &problem))
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "Must be at least 6 characters", problem.Errors[0].Error)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	err := BindAndValidate(newContext(`{not json`), new(loginPayload))

	var problem *errs.Problem
	require.True(t, stderrors.As(err, &problem))
	assert.Equal(t, http.StatusBadRequest, problem.Status)
	assert.Equal(t, "Request body is malformed", problem.Detail)
}
