package errors

import (
	"errors"
	"fmt"
)

// Error codes surfaced to users as the failure kind.
const (
	CodeFetch = "FetchError"
	CodeSend  = "SendError"
	CodeIO    = "IOError"
)

// DefaultKind is reported for errors that carry no code.
const DefaultKind = "Error"

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Fetch marks err as a failure of the remote extraction.
func Fetch(err error, message string) error {
	return WrapWithCode(err, CodeFetch, message)
}

// Send marks err as a failure talking to the chat platform.
func Send(err error, message string) error {
	return WrapWithCode(err, CodeSend, message)
}

// IO marks err as a local filesystem failure.
func IO(err error, message string) error {
	return WrapWithCode(err, CodeIO, message)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetCode returns the first non-empty code in err's chain.
func GetCode(err error) string {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return ""
		}
		if e.Code != "" {
			return e.Code
		}
		err = e.Err
	}
	return ""
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Kind names the failure class of err for user-facing reports.
func Kind(err error) string {
	if code := GetCode(err); code != "" {
		return code
	}
	return DefaultKind
}

// IsFetch reports whether err came from the remote extraction.
func IsFetch(err error) bool {
	return GetCode(err) == CodeFetch
}
