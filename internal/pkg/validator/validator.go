package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/mylink/internal/utils"
)

// CustomValidator plugs go-playground/validator into echo's Validator interface
type CustomValidator struct {
	validator *validator.Validate
}

// New builds a validator with the phone and slug tags registered and
// field names reported by their json tag
func New() *CustomValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("phone", validatePhone, false)
	_ = v.RegisterValidation("slug", validateSlug, false)

	return &CustomValidator{validator: v}
}

// Validate returns validator.ValidationErrors untouched so handlers can map them with FieldErrors
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func validatePhone(fl validator.FieldLevel) bool {
	return utils.IsValidPhoneNumber(fl.Field().String())
}

func validateSlug(fl validator.FieldLevel) bool {
	return utils.IsValidSlug(fl.Field().String())
}

// FieldErrors converts a validation error into the field -> messages map returned to clients.
// Errors that are not validation errors are reported under non_field_errors.
func FieldErrors(err error) map[string][]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string][]string{"non_field_errors": {err.Error()}}
	}

	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		key := fieldKey(fe.Namespace())
		out[key] = append(out[key], message(fe))
	}
	return out
}

// fieldKey drops the root struct name from a namespace like "LoginRequest.phone_number"
func fieldKey(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "phone":
		return "Enter a valid phone number."
	case "slug":
		return "Enter a valid slug consisting of letters, numbers, underscores or hyphens."
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprintf("%v", fe.Value()))
	default:
		return fmt.Sprintf("Failed on the %s rule.", fe.Tag())
	}
}
