package validators

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance. Field names in error output
// come from json tags so the API never leaks Go struct names.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrorMap converts a validation error into a field -> message map suitable
// for the validation error envelope
func ErrorMap(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = messageFor(fe)
		}
		return out
	}

	out["body"] = "Invalid request body!"
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required!"
	case "email":
		return "Invalid email address!"
	case "min":
		if fe.Kind() == reflect.String {
			return fe.Field() + " must be at least " + fe.Param() + " characters long!"
		}
		return fe.Field() + " must be at least " + fe.Param() + "!"
	case "max":
		if fe.Kind() == reflect.String {
			return fe.Field() + " must be at most " + fe.Param() + " characters long!"
		}
		return fe.Field() + " must be at most " + fe.Param() + "!"
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ") + "!"
	case "url":
		return fe.Field() + " must be a valid URL!"
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param() + "!"
	default:
		return fe.Field() + " is invalid!"
	}
}
