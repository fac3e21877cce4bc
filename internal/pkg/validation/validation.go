// Package validation provides the client-side field checks run before
// a form is submitted, and the translation of API error envelopes into
// a flat field → message mapping for display.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/eduline/eduline-client/internal/core/domain"
)

// GeneralField is the key under which non-field errors are reported.
const GeneralField = "general"

// fallbackMessage is shown when the server gave us nothing usable.
const fallbackMessage = "An unexpected error occurred. Please try again."

var validate = validator.New()

// IsValidEmail reports whether email is a plausible address.
func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// IsMinLength reports whether value is at least min characters long.
func IsMinLength(value string, min int) bool {
	return validate.Var(value, fmt.Sprintf("min=%d", min)) == nil
}

// IsRequired reports whether value contains non-whitespace content.
func IsRequired(value string) bool {
	return strings.TrimSpace(value) != ""
}

// PasswordsMatch reports whether a password and its confirmation agree.
func PasswordsMatch(password, confirmation string) bool {
	return password == confirmation
}

// Struct validates a tagged request payload and returns one message
// per failing field, empty when the payload is valid.
func Struct(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	out := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out[GeneralField] = fallbackMessage
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		if _, seen := out[field]; !seen {
			out[field] = fieldError(fe)
		}
	}
	return out
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "eqfield":
		return field + " does not match"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// ParseAPIErrors flattens any error from the pipeline into a field →
// first-message mapping. Structured validation errors map per field;
// a bare server message lands under "general"; anything else (network
// failure, decode failure) gets the generic fallback.
func ParseAPIErrors(err error) map[string]string {
	out := make(map[string]string)

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		if len(apiErr.Errors) > 0 {
			for field, msgs := range apiErr.Errors {
				if len(msgs) > 0 {
					out[field] = msgs[0]
				}
			}
			return out
		}
		if apiErr.Message != "" {
			out[GeneralField] = apiErr.Message
			return out
		}
	}

	out[GeneralField] = fallbackMessage
	return out
}
