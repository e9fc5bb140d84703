package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

func (e *AppError) WithStatus(statusCode int) *AppError {
	e.StatusCode = statusCode

	return e
}

const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeInternal            = "INTERNAL_ERROR"
	ErrCodeThirdPartyError     = "THIRD_PARTY_ERROR"
	ErrCodeTooManyRequests     = "TOO_MANY_REQUESTS"
	ErrCodeNetwork             = "NETWORK_ERROR"
	ErrCodeTimeout             = "TIMEOUT"
	ErrCodeEmptyCart           = "EMPTY_CART"
	ErrCodeInsufficientPayment = "INSUFFICIENT_PAYMENT"
	ErrCodeInvalidState        = "INVALID_STATE"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, http.StatusForbidden)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func ThirdPartyError(message string) *AppError {
	return NewAppError(ErrCodeThirdPartyError, message, http.StatusBadGateway)
}

func TooManyRequestsError(message string) *AppError {
	return NewAppError(ErrCodeTooManyRequests, message, http.StatusTooManyRequests)
}

// NetworkError and TimeoutError describe failures that never reached the backend,
// so they carry no HTTP status.
func NetworkError(message string) *AppError {
	return NewAppError(ErrCodeNetwork, message, 0)
}

func TimeoutError(message string) *AppError {
	return NewAppError(ErrCodeTimeout, message, 0)
}

func EmptyCartError() *AppError {
	return NewAppError(ErrCodeEmptyCart, "Cart is empty", http.StatusBadRequest)
}

func InsufficientPaymentError(message string) *AppError {
	return NewAppError(ErrCodeInsufficientPayment, message, http.StatusBadRequest)
}

func InvalidStateError(message string) *AppError {
	return NewAppError(ErrCodeInvalidState, message, http.StatusConflict)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	appErr, ok := IsAppError(err)

	return ok && appErr.Code == code
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}
