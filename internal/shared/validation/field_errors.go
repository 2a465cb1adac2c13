// Package validation translates binding failures into field-level error maps.
package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors extracts per-field messages from a Gin binding error.
// Non-validator errors (malformed JSON and the like) collapse into a single
// "body" entry so the response shape stays uniform.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["body"] = "invalid request body"
		return out
	}

	for _, fe := range verrs {
		out[strings.ToLower(fe.Field())] = message(fe)
	}
	return out
}

// message renders a short human-readable reason for one failed field.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}
