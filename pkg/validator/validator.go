package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON names so errors match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			key := strings.TrimPrefix(e.Namespace(), rootNamespace(e.Namespace()))
			if key == "" {
				key = field
			}
			switch e.Tag() {
			case "required":
				errors[key] = field + " is required"
			case "required_without":
				errors[key] = field + " is required when " + e.Param() + " is not given"
			case "email":
				errors[key] = field + " must be a valid email address"
			case "url":
				errors[key] = field + " must be a valid URL"
			case "hexcolor":
				errors[key] = field + " must be a hex color such as #22C55E"
			case "oneof":
				errors[key] = field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
			case "datetime":
				errors[key] = field + " must match the format " + e.Param()
			case "len":
				errors[key] = field + " must be exactly " + e.Param() + " characters"
			case "ltefield":
				errors[key] = field + " must not exceed " + e.Param()
			case "min":
				errors[key] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[key] = field + " must be at most " + e.Param() + " characters"
			case "gt":
				errors[key] = field + " must be greater than " + e.Param()
			case "gte":
				errors[key] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[key] = field + " must be less than or equal to " + e.Param()
			default:
				errors[key] = field + " is invalid"
			}
		}
	}

	return errors
}

// rootNamespace returns the "Struct." prefix of a namespace such as "CreateBookingRequest.guest.phone".
func rootNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[:i+1]
	}
	return ns
}
