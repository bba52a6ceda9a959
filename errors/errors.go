// Package errors provides unified error handling for hofkit.
// It implements structured error types with error codes, HTTP status mapping,
// and retryable detection following RFC 7807 and Google AIP-193.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Sentinel causes attached to AppErrors so callers can match with errors.Is.
var (
	ErrLengthMismatch = stderrors.New("operation count must equal operand count minus one")
	ErrEmptyInput     = stderrors.New("empty input")
	ErrDomain         = stderrors.New("operation undefined for operands")
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Evaluation Error Constructors ---

// LengthMismatch creates a new AppError for an operation sequence whose length
// is not exactly one less than the operand sequence.
func LengthMismatch(operands, operations int) *AppError {
	return &AppError{
		Code: ErrCodeLengthMismatch,
		Message: fmt.Sprintf("Expected %d operations for %d operands, got %d.",
			max(operands-1, 0), operands, operations),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"operands": operands, "operations": operations},
		Cause:   ErrLengthMismatch,
	}
}

// DomainError creates a new AppError for an operation that is undefined for its operands.
func DomainError(operation, reason string) *AppError {
	return &AppError{
		Code: ErrCodeDomain, Message: fmt.Sprintf("%s: %s", operation, reason),
		HTTPStatus: http.StatusUnprocessableEntity, Retryable: false,
		Details: map[string]any{"operation": operation},
		Cause:   ErrDomain,
	}
}

// EmptyInput creates a new AppError for a required collection that was empty.
func EmptyInput(what string) *AppError {
	return &AppError{
		Code: ErrCodeEmptyInput, Message: fmt.Sprintf("At least one %s is required.", what),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"field": what},
		Cause:   ErrEmptyInput,
	}
}

// UnknownOperation creates a new AppError for an operation name that is not registered.
func UnknownOperation(name string) *AppError {
	return &AppError{
		Code: ErrCodeUnknownOperation, Message: fmt.Sprintf("Unknown operation %q.", name),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"operation": name},
	}
}

// --- Common Error Constructors ---

// AlreadyExists creates a new AppError for a resource that already exists.
func AlreadyExists(resource string) *AppError {
	return &AppError{
		Code: ErrCodeAlreadyExists, Message: fmt.Sprintf("A %s with these details already exists.", resource),
		HTTPStatus: http.StatusConflict, Retryable: false,
		Details: map[string]any{"resource": resource},
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Retryable: false, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"field": field},
	}
}

// Timeout creates a new AppError for a request that timed out.
func Timeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: "The request took too long. Please try again.",
		HTTPStatus: http.StatusGatewayTimeout, Retryable: true,
		Details: map[string]any{"operation": operation},
	}
}

// Internal creates a new AppError for an internal server error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}

// Wrap converts any error into an AppError. AppErrors anywhere in the chain are
// returned as-is; anything else becomes an internal error.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}
