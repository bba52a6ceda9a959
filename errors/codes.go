package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Evaluation errors
const (
	// ErrCodeLengthMismatch indicates the operation count does not match operand count minus one.
	ErrCodeLengthMismatch ErrorCode = "LENGTH_MISMATCH"
	// ErrCodeDomain indicates an operation is undefined for its operands (e.g. division by zero).
	ErrCodeDomain ErrorCode = "DOMAIN_ERROR"
	// ErrCodeUnknownOperation indicates a named operation could not be resolved.
	ErrCodeUnknownOperation ErrorCode = "UNKNOWN_OPERATION"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeEmptyInput indicates a collection that must not be empty was empty.
	ErrCodeEmptyInput ErrorCode = "EMPTY_INPUT"
	// ErrCodeAlreadyExists indicates the resource already exists.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout:  true,
	ErrCodeInternal: false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
// Operations are deterministic, so only transport-level failures qualify.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
