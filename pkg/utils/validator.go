package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct returns per-field error messages keyed by the json field
// name, matching the API's validation error body.
func ValidateStruct(data interface{}) map[string][]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string][]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			field := toSnakeCase(err.Field())
			errors[field] = append(errors[field], getSimpleErrorMessage(err))
		}
	}

	return errors
}

func getSimpleErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum value/length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum value/length is %s", err.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", err.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", err.Param())
	case "username":
		return "May contain only letters, digits and @/./+/-/_ characters, not \"me\""
	case "slug":
		return "May contain only letters, digits, hyphens and underscores"
	default:
		return fmt.Sprintf("Invalid %s field", toSnakeCase(err.Field()))
	}
}

func FormatValidationErrors(errors map[string][]string) string {
	var msgs []string
	for field, fieldMsgs := range errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, strings.Join(fieldMsgs, ", ")))
	}
	return strings.Join(msgs, "; ")
}

// CamelCase struct fields map to snake_case json keys.
func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func init() {
	// username per the platform rules: word chars plus @.+-, never "me"
	validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "me" {
			return false
		}
		return usernameRe.MatchString(value)
	})

	validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})
}
