package middleware

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/LPF-24/growly-habit-service/internal/httperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under the JSON field name clients actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// sizeMessages are the length-constraint messages per field, matching the
// contract the habit API has always exposed.
var sizeMessages = map[string]string{
	"name":        "Product name must be between 2 and 255 characters",
	"description": "Description must be between 0 and 255 characters",
}

// ValidateRequest runs struct validation and returns every violated field at
// once, or nil when the request is valid.
func ValidateRequest(obj any) *httperr.ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fields []httperr.FieldError
	for _, fieldErr := range err.(validator.ValidationErrors) {
		fields = append(fields, httperr.FieldError{
			Field:   fieldErr.Field(),
			Message: getErrorMsg(fieldErr),
		})
	}
	return &httperr.ValidationError{Fields: fields}
}

func getErrorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		if err.Field() == "name" {
			return "The name of the habit should not be empty"
		}
		return "This field is required"
	case "min", "max":
		if msg, ok := sizeMessages[err.Field()]; ok {
			return msg
		}
		return "Value length is out of range"
	default:
		return "Invalid value"
	}
}
