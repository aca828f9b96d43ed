package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Meta is free-form context attached to an error
type Meta map[string]any

// Error is a coded error. Message is safe to show a player; Cause is not.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
	Meta    Meta   `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	// the innermost error names the rejected property
	if rejection, ok := e.Meta[MetaKeyRejection].(*Rejection); ok && find(e.Cause) == nil {
		msg += " [" + rejection.Property + "]"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	t := find(target)
	return t != nil && t.Code == e.Code
}

// WithMeta sets key on the error's metadata and returns the error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = Meta{}
	}
	e.Meta[key] = value
	return e
}

// find returns the outermost *Error in err's chain
func find(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. An *Error keeps its code and shares its
// metadata, so a rejection survives any number of wraps; anything else
// becomes CodeInternal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	if existing := find(err); existing != nil {
		return &Error{Code: existing.Code, Message: message, Cause: err, Meta: existing.Meta}
	}
	return &Error{Code: CodeInternal, Message: message, Cause: err}
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode adds context to err under a new code, copying its metadata
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	meta := Meta{}
	if existing := find(err); existing != nil {
		maps.Copy(meta, existing.Meta)
	}
	return &Error{Code: code, Message: message, Cause: err, Meta: meta}
}

// NotFound creates a CodeNotFound error
func NotFound(message string) *Error { return New(CodeNotFound, message) }

// NotFoundf creates a CodeNotFound error with a formatted message
func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

// InvalidArgument creates a CodeInvalidArgument error
func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

// InvalidArgumentf creates a CodeInvalidArgument error with a formatted message
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates a CodeAlreadyExists error with a formatted message
func AlreadyExistsf(format string, args ...any) *Error { return Newf(CodeAlreadyExists, format, args...) }

// PermissionDenied creates a CodePermissionDenied error
func PermissionDenied(message string) *Error { return New(CodePermissionDenied, message) }

// FailedPrecondition creates a CodeFailedPrecondition error
func FailedPrecondition(message string) *Error { return New(CodeFailedPrecondition, message) }

// Internal creates a CodeInternal error
func Internal(message string) *Error { return New(CodeInternal, message) }

// Internalf creates a CodeInternal error with a formatted message
func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

// Canceled creates a CodeCanceled error
func Canceled(message string) *Error { return New(CodeCanceled, message) }
