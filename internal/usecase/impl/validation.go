// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "recruit/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

var inputValidator = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks struct tags and reports failures as ErrValidationFailed.
func validateInput(input any) error {
	if err := inputValidator.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
