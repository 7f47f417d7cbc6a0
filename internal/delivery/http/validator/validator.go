// Package validator plugs go-playground/validator into Echo's binding flow.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator adapts validator.Validate to echo.Validator.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by every handler.
func New() echo.Validator {
	return &echoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Validation failures surface as 400s
// through the central error handler.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
