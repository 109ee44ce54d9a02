package politext

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// The first three map directly onto the extraction failure taxonomy;
// the rest are general-purpose codes used by storage and CLI surfaces.
const (
	EEMPTY     = "empty_input"  // input is empty or whitespace-only
	ENOCONTENT = "no_content"   // extraction produced no meaningful content
	EPARSE     = "parse_failed" // the DOM layer could not build a tree
	EINVALID   = "invalid"      // validation failed
	ENOTFOUND  = "not_found"    // entity does not exist
	EINTERNAL  = "internal"     // internal error
)

// Error represents an application error with a machine-readable code and
// a human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("politext error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the error, if available.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, if available.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper to construct an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
