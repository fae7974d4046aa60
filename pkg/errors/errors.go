package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents different types of errors that can occur
type ErrorType string

const (
	ErrorTypeNetwork     ErrorType = "network"
	ErrorTypeParsing     ErrorType = "parsing"
	ErrorTypeFileSystem  ErrorType = "filesystem"
	ErrorTypeAuth        ErrorType = "auth"
	ErrorTypeRateLimit   ErrorType = "rate_limit"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeServerError ErrorType = "server_error"
	ErrorTypeUnknown     ErrorType = "unknown"
)

// Error is the error returned by every gifsaver component. Code carries the
// HTTP status when one was received and is 0 otherwise.
type Error struct {
	Type    ErrorType
	Message string
	Code    int
	Err     error
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s error (code %d): %s", e.Type, e.Code, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Network wraps a transport failure (DNS, connection, TLS, body read)
func Network(message string, cause error) *Error {
	return &Error{Type: ErrorTypeNetwork, Message: withCause(message, cause), Err: cause}
}

// Parsing wraps a JSON decoding failure
func Parsing(message string, cause error) *Error {
	return &Error{Type: ErrorTypeParsing, Message: withCause(message, cause), Err: cause}
}

// FileSystem wraps a local file or directory failure
func FileSystem(message string, cause error) *Error {
	return &Error{Type: ErrorTypeFileSystem, Message: withCause(message, cause), Err: cause}
}

func withCause(message string, cause error) string {
	if cause == nil {
		return message
	}
	return fmt.Sprintf("%s: %v", message, cause)
}

// TypeOf returns the ErrorType of the first *Error in err's chain,
// or ErrorTypeUnknown if there is none.
func TypeOf(err error) ErrorType {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return ErrorTypeUnknown
}

// IsType reports whether err's chain contains an *Error of the given type
func IsType(err error, errorType ErrorType) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Type == errorType
}

// FromStatusCode maps an HTTP status code to an ErrorType
func FromStatusCode(statusCode int) ErrorType {
	switch {
	case statusCode == 401, statusCode == 403:
		return ErrorTypeAuth
	case statusCode == 404:
		return ErrorTypeNotFound
	case statusCode == 429:
		return ErrorTypeRateLimit
	case statusCode >= 500:
		return ErrorTypeServerError
	default:
		return ErrorTypeUnknown
	}
}
