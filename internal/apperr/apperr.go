package apperr

import (
	"errors"
	"net/http"
)

type Code string

const (
	BadRequestCode      Code = "bad_request"
	UnauthenticatedCode Code = "unauthenticated"
	UnauthorizedCode    Code = "unauthorized"
	NotFoundCode        Code = "not_found"
	InvalidStateCode    Code = "invalid_state"
	InternalErrorCode   Code = "internal_error"
)

var httpStatusMap = map[Code]int{
	BadRequestCode:      http.StatusBadRequest,
	UnauthenticatedCode: http.StatusUnauthorized,
	UnauthorizedCode:    http.StatusForbidden,
	NotFoundCode:        http.StatusNotFound,
	InvalidStateCode:    http.StatusConflict,
	InternalErrorCode:   http.StatusInternalServerError,
}

// AppError carries a stable code alongside the message so handlers can map
// service failures to HTTP without string matching.
type AppError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(code Code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// From normalizes any error into an *AppError, defaulting to internal_error.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Code: InternalErrorCode, Message: "internal server error", Err: err}
}

func IsCode(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func HTTPStatus(code Code) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
