package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when an employee record is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrMerchantNotFound is returned when a merchant is not found.
	ErrMerchantNotFound = errors.New("merchant not found")
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
	// ErrMachineNotFound is returned when a machine is not found.
	ErrMachineNotFound = errors.New("machine not found")
	// ErrEmailTaken is returned when creating a record with an email already in use.
	ErrEmailTaken = errors.New("email already in use")
	// ErrForbidden is returned when the caller's role may not perform the operation.
	ErrForbidden = errors.New("role not permitted")
	// ErrInvalidRole is returned when a request names a role that does not exist.
	ErrInvalidRole = errors.New("unknown role")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrMerchantNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "MERCHANT_NOT_FOUND")
	case ErrStoreNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "STORE_NOT_FOUND")
	case ErrMachineNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "MACHINE_NOT_FOUND")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case ErrInvalidRole:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
