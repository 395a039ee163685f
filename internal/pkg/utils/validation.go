package utils

import (
	"github.com/go-playground/validator/v10"

	"valoredash-service/internal/pkg/exceptions"
)

var validate = validator.New()

// ValidateStruct runs tag validation and converts the first failure into a
// client-facing CustomError.
func ValidateStruct(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	return exceptions.ErrInputValidation(err, exceptions.FormatFirstValidationError(err))
}
