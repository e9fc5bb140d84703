package utils

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	appErrors "github.com/aaravmahajanofficial/cellsync-pos/internal/errors"
	"github.com/go-playground/validator/v10"
)

// ValidateStruct runs the validate tags of data and turns failures into a
// VALIDATION_ERROR AppError with one detail line per field.
func ValidateStruct(validate *validator.Validate, data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		slog.Error("Unexpected validation error", slog.String("error", err.Error()))
		return appErrors.InternalError("Unexpected validation error").WithError(err)
	}

	slog.Warn("Input validation failed", slog.String("error", validationErrs.Error()))

	return appErrors.ValidationError("Validation failed").
		WithDetail(strings.Join(ValidationMessages(validationErrs), "; ")).
		WithError(validationErrs)
}

func ValidationMessages(errs validator.ValidationErrors) []string {

	var errMsgs []string

	for _, err := range errs {

		var message string

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("Field %s is required", err.Field())
		case "email":
			message = fmt.Sprintf("Field %s must be a valid email address", err.Field())
		case "min":
			message = fmt.Sprintf("Field %s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("Field %s must be at most %s", err.Field(), err.Param())
		case "gt":
			message = fmt.Sprintf("Field %s must be greater than %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("Field %s must be one of [%s]", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("Field %s is invalid: %s=%s", err.Field(), err.Tag(), err.Param())
		}

		errMsgs = append(errMsgs, message)

	}

	return errMsgs
}
