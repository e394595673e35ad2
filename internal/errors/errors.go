package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound         = new(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists    = new(ErrCodeAlreadyExists, "resource already exists")
	ErrValidation       = new(ErrCodeValidation, "validation error")
	ErrInvalidOperation = new(ErrCodeInvalidOperation, "invalid operation")
	ErrPermissionDenied = new(ErrCodePermissionDenied, "permission denied")
	ErrDatabase         = new(ErrCodeDatabase, "database error")
	ErrSystem           = new(ErrCodeSystemError, "system error")

	// phone number validation kinds
	ErrUnparsablePhoneNumber = new(ErrCodeUnparsablePhoneNumber, "phone number could not be parsed")
	ErrInvalidPhoneNumber    = new(ErrCodeInvalidPhoneNumber, "phone number could not be normalized")
	ErrNotMobileNumber       = new(ErrCodeNotMobileNumber, "phone number is not a mobile number")
	ErrWrongCountry          = new(ErrCodeWrongCountry, "phone number belongs to another country")
	ErrDuplicateMobile       = new(ErrCodeDuplicateMobile, "mobile number already exists in group")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrDatabase:              http.StatusInternalServerError,
		ErrNotFound:              http.StatusNotFound,
		ErrAlreadyExists:         http.StatusConflict,
		ErrValidation:            http.StatusBadRequest,
		ErrInvalidOperation:      http.StatusBadRequest,
		ErrPermissionDenied:      http.StatusForbidden,
		ErrSystem:                http.StatusInternalServerError,
		ErrUnparsablePhoneNumber: http.StatusUnprocessableEntity,
		ErrInvalidPhoneNumber:    http.StatusUnprocessableEntity,
		ErrNotMobileNumber:       http.StatusUnprocessableEntity,
		ErrWrongCountry:          http.StatusUnprocessableEntity,
		ErrDuplicateMobile:       http.StatusConflict,
	}
)

const (
	ErrCodeSystemError      = "system_error"
	ErrCodeNotFound         = "not_found"
	ErrCodeAlreadyExists    = "already_exists"
	ErrCodeValidation       = "validation_error"
	ErrCodeInvalidOperation = "invalid_operation"
	ErrCodePermissionDenied = "permission_denied"
	ErrCodeDatabase         = "database_error"

	ErrCodeUnparsablePhoneNumber = "unparsable_phone_number"
	ErrCodeInvalidPhoneNumber    = "invalid_phone_number"
	ErrCodeNotMobileNumber       = "not_mobile_number"
	ErrCodeWrongCountry          = "wrong_country"
	ErrCodeDuplicateMobile       = "duplicate_mobile"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

// New creates a new InternalError
func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidOperation checks if an error is an invalid operation error
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

// IsPermissionDenied checks if an error is a permission denied error
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

// IsDatabase checks if an error is a database error
func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}

// IsSystem checks if an error is a system error
func IsSystem(err error) bool {
	return errors.Is(err, ErrSystem)
}

func IsUnparsablePhoneNumber(err error) bool {
	return errors.Is(err, ErrUnparsablePhoneNumber)
}

func IsInvalidPhoneNumber(err error) bool {
	return errors.Is(err, ErrInvalidPhoneNumber)
}

func IsNotMobileNumber(err error) bool {
	return errors.Is(err, ErrNotMobileNumber)
}

func IsWrongCountry(err error) bool {
	return errors.Is(err, ErrWrongCountry)
}

func IsDuplicateMobile(err error) bool {
	return errors.Is(err, ErrDuplicateMobile)
}

// IsPhoneValidation reports whether err rejects a phone number input.
func IsPhoneValidation(err error) bool {
	return IsUnparsablePhoneNumber(err) ||
		IsInvalidPhoneNumber(err) ||
		IsNotMobileNumber(err) ||
		IsWrongCountry(err) ||
		IsDuplicateMobile(err)
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
