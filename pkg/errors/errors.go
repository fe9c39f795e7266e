package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType classifies application errors so adapters can map them to
// user-facing responses without inspecting messages.
type ErrorType int

// Input errors - raised before any network or grid call
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeInvalidDate
	ErrorTypeNotFound

	// Infrastructure errors - external systems the add-on talks to
	ErrorTypeExternalAPI
	ErrorTypeDatabase
	ErrorTypeGrid

	// Setup errors
	ErrorTypeConfiguration
	ErrorTypeBridgeUnavailable
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeInvalidDate:
		return "INVALID_DATE_FORMAT"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeGrid:
		return "GRID_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	case ErrorTypeBridgeUnavailable:
		return "BRIDGE_UNAVAILABLE"
	default:
		return "UNKNOWN_ERROR"
	}
}

// ParseType is the inverse of ErrorType.String
func ParseType(s string) ErrorType {
	for t := ErrorTypeValidation; t <= ErrorTypeBridgeUnavailable; t++ {
		if t.String() == s {
			return t
		}
	}
	return ErrorTypeUnknown
}

// Short aliases used at call sites
const (
	ValidationError        = ErrorTypeValidation
	InvalidDateError       = ErrorTypeInvalidDate
	NotFoundError          = ErrorTypeNotFound
	ExternalAPIError       = ErrorTypeExternalAPI
	DatabaseError          = ErrorTypeDatabase
	GridError              = ErrorTypeGrid
	ConfigurationError     = ErrorTypeConfiguration
	BridgeUnavailableError = ErrorTypeBridgeUnavailable
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Input error constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewInvalidDateError(message string) *AppError {
	return New(InvalidDateError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// Infrastructure error constructors
func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

func NewGridError(message string, cause error) *AppError {
	return Wrap(GridError, message, cause)
}

// Setup error constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

func NewBridgeUnavailableError(message string) *AppError {
	return New(BridgeUnavailableError, message)
}

// TypeOf returns the ErrorType of the first AppError in err's chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Message returns the user-facing message of err. For AppErrors this is the
// message without the type prefix; provider body text is kept verbatim.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func IsValidationError(err error) bool {
	t := TypeOf(err)
	return t == ValidationError || t == InvalidDateError
}

func IsInvalidDateError(err error) bool {
	return TypeOf(err) == InvalidDateError
}

func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsExternalAPIError(err error) bool {
	return TypeOf(err) == ExternalAPIError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}

func IsBridgeUnavailableError(err error) bool {
	return TypeOf(err) == BridgeUnavailableError
}
