// Package validator adapts the shared struct validator to echo.
package validator

import (
	domainerrors "addresssync/internal/domain/errors"
	"addresssync/internal/util"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates the echo validator.
func New() *Validator {
	return &Validator{validate: util.NewValidator()}
}

// Validate reports struct tag violations as a validation AppError.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(util.ValidationDetails(err))
	}

	return nil
}
