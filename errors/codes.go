package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors
const (
	// ErrCodeInvalidArgument indicates a negative count, a nil callback or
	// another argument the operation cannot accept.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeDuplicateKey indicates two elements produced the same map key
	// and no merge function was supplied.
	ErrCodeDuplicateKey ErrorCode = "DUPLICATE_KEY"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Lookup errors
const (
	// ErrCodeNotFound indicates a named item is not registered.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure inside a callback or worker.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
