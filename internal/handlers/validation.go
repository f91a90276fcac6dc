package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"takeaway/internal/models"
	"takeaway/pkg/openinghours"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// hexRGB matches "#rgb" and "#rrggbb"; alpha channels are not accepted.
var hexRGB = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

type validationValuer interface {
	ValidationValue() interface{}
}

// newValidator returns a validator that reports fields by their JSON name,
// compares decimals numerically and sees through models.Optional.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		return field.Interface().(validationValuer).ValidationValue()
	},
		models.Optional[string]{},
		models.Optional[int]{},
		models.Optional[decimal.Decimal]{},
		models.Optional[openinghours.Hours]{},
	)
	// Registration only fails for an empty tag or a nil func.
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	// An empty string means "no color", like the form's blank input.
	_ = validate.RegisterValidation("hexrgb", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || hexRGB.MatchString(value)
	})
	return validate
}

// validationMessages turns validator errors into a field → message map.
func validationMessages(err error) map[string]string {
	messages := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		messages["body"] = err.Error()
		return messages
	}

	for _, e := range validationErrors {
		field := fieldPath(e)
		messages[field] = message(field, e)
	}
	return messages
}

// fieldPath drops the struct name from the namespace so nested fields read
// as "opening_hours.monday".
func fieldPath(e validator.FieldError) string {
	if _, path, found := strings.Cut(e.Namespace(), "."); found {
		return path
	}
	return e.Field()
}

func message(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	case "hexrgb":
		return fmt.Sprintf("The %s field must be a hex color such as #6466f1.", field)
	case "gte":
		return fmt.Sprintf("The %s field must be at least %s.", field, e.Param())
	case "max":
		return fmt.Sprintf("The %s field may not be greater than %s characters.", field, e.Param())
	case "min":
		return fmt.Sprintf("The %s field must have at least %s items.", field, e.Param())
	case "unique":
		return fmt.Sprintf("The %s field must not contain duplicates.", field)
	default:
		return fmt.Sprintf("Field '%s' failed on the '%s' tag", field, e.Tag())
	}
}

// typeMessage describes a JSON value that did not fit its field.
func typeMessage(field string, e *json.UnmarshalTypeError) string {
	if e.Type == nil {
		return fmt.Sprintf("The %s field has an invalid value.", field)
	}
	switch kind := e.Type.Kind(); {
	case e.Type == reflect.TypeOf(decimal.Decimal{}), kind == reflect.Float32, kind == reflect.Float64:
		return fmt.Sprintf("The %s field must be a number.", field)
	case kind >= reflect.Int && kind <= reflect.Uint64:
		return fmt.Sprintf("The %s field must be an integer.", field)
	case kind == reflect.String:
		return fmt.Sprintf("The %s field must be a string.", field)
	default:
		return fmt.Sprintf("The %s field has an invalid value.", field)
	}
}
