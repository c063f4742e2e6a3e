package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kessan-app/kessan_backend/internal/apperrors"
)

// validate is the shared validator instance for all request DTOs.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct tag validation on a request DTO and wraps failures in
// apperrors.ErrValidation so callers can errors.Is on them.
func Validate(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}
