// Package validation binds request payloads and turns validator failures
// into field-level problem responses.
package validation

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/user-management-api/internal/errs"
)

// Validatable is implemented by request payloads that know how to validate
// themselves, typically by delegating to Struct.
type Validatable interface {
	Validate() error
}

var validate = validator.New()

// Struct runs tag-based validation on v.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate decodes the request body into payload and validates it.
// Any failure is returned as a 400 *errs.Problem ready for the error
// boundary; a nil return means payload is populated and valid.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequest("Request body is malformed", nil)
	}
	if err := payload.Validate(); err != nil {
		return toProblem(err)
	}
	return nil
}

func toProblem(err error) *errs.Problem {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errs.NewBadRequest("Request validation failed", nil)
	}

	fields := make([]errs.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, errs.FieldError{
			Field: fe.Field(),
			Error: message(fe),
		})
	}
	return errs.NewBadRequest("Request validation failed", fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Must be at least " + fe.Param() + " characters"
	case "max":
		return "Must be at most " + fe.Param() + " characters"
	case "oneof":
		return "Must be one of: " + fe.Param()
	default:
		return "Invalid value"
	}
}
