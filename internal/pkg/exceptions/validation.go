package exceptions

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"valoredash-service/internal/pkg/constvars"
)

// FormatFirstValidationError turns validator output into a single
// client-facing sentence for the offending field.
func FormatFirstValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	fieldError := validationErrors[0]
	field := toSnakeCase(fieldError.Field())

	fragment, ok := constvars.CustomValidationErrorMessages[fieldError.Tag()]
	if !ok {
		return fmt.Sprintf("%s is invalid", field)
	}

	if constvars.TagsWithParams[fieldError.Tag()] {
		return fmt.Sprintf("%s %s", field, fmt.Sprintf(fragment, fieldError.Param()))
	}
	return fmt.Sprintf("%s %s", field, fragment)
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
