package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory classifies the pipeline stage an error came from. The CLI
// maps each category to its own exit code so callers can tell a missing file
// from a corrupt archive without parsing messages.
type ErrorCategory int

const (
	// ErrorStorage indicates the payload could not be fetched: missing file,
	// permission denied, filesystem fault or a failed HTTP request.
	ErrorStorage ErrorCategory = iota + 1

	// ErrorDecompression indicates the payload is not a valid compressed
	// stream: bad header, truncated data, checksum mismatch, unknown format
	// or a decoded size above the configured limit.
	ErrorDecompression

	// ErrorDecoding indicates the decompressed bytes are not valid text
	// under the configured encoding and policy.
	ErrorDecoding
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorStorage:
		return "storage"
	case ErrorDecompression:
		return "decompression"
	case ErrorDecoding:
		return "decoding"
	default:
		return "unknown"
	}
}

// LoadError is returned by every failing loader stage.
type LoadError struct {
	Err       error
	Source    string
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// NewLoadError wraps err with the stage that produced it.
func NewLoadError(category ErrorCategory, operation, source string, err error) *LoadError {
	return &LoadError{
		Err:       err,
		Source:    source,
		Category:  category,
		Operation: operation,
		Timestamp: time.Now(),
	}
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("[%v] %s %s: %v", e.Category, e.Operation, e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsCategory reports whether err carries a LoadError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	if le := AsLoadError(err); le != nil {
		return le.Category == category
	}
	return false
}

// AsLoadError attempts to extract a LoadError from a given error.
func AsLoadError(err error) *LoadError {
	var le *LoadError
	if errors.As(err, &le) {
		return le
	}
	return nil
}
