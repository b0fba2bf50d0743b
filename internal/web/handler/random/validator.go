package random

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/GoRandomString/GoRandomString/internal/web/handler"
)

// validateStruct runs the struct tag rules of data and returns the failed fields.
func validateStruct(v *validator.Validate, data interface{}) ([]handler.FieldError, error) {
	err := v.Struct(data)
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, err //nolint:wrapcheck
	}

	fields := make([]handler.FieldError, len(validationErrors))
	for i, ve := range validationErrors {
		fields[i] = handler.FieldError{
			Field: ve.Field(),
			Tag:   ve.Tag(),
		}
	}

	return fields, err //nolint:wrapcheck
}
