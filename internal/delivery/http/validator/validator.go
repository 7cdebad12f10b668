// Package validator plugs go-playground validation into echo.
package validator

import (
	domainerrors "github.com/BrayanOfficiel/juice-finder/internal/domain/errors"

	validatorlib "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validatorlib.Validate
}

// New creates the request validator installed on the echo server.
func New() echo.Validator {
	return &echoValidator{validate: validatorlib.New()}
}

// Validate checks struct tags and converts failures into the API error shape.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
