package validation

import (
	"errors"
	"fmt"
	"strings"

	"lifemate-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// FieldErrors converts validator.ValidationErrors to {field, message} pairs.
// Field paths use JSON names without the root struct, e.g. "education[0].degree".
func FieldErrors(err error) []apperror.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []apperror.FieldError{{Field: "", Message: err.Error()}}
	}

	fields := make([]apperror.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, apperror.FieldError{
			Field:   fieldPath(e.Namespace()),
			Message: formatSingleError(e),
		})
	}
	return fields
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := e.Field()
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s must contain at least %s entries", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s must contain at most %s entries", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(param), ", "))

	case "unique":
		return fmt.Sprintf("%s must not contain duplicates", label)

	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)

	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)

	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color such as #1F2937", label)

	case "valid_phone":
		return fmt.Sprintf("%s must be a valid phone number (7-15 digits, optional +)", label)

	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji or special symbols", label)

	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}
