package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is is errors.Is, so callers need not import both packages
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns err's code: CodeOK for nil, CodeInternal for errors
// that never passed through this package.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e := find(err); e != nil {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns err's metadata, or nil
func GetMeta(err error) Meta {
	if e := find(err); e != nil {
		return e.Meta
	}
	return nil
}

// GetMessage returns the player-facing message of err
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := find(err); e != nil {
		return e.Message
	}
	return err.Error()
}

// IsNotFound and the helpers below report whether err carries one code
func IsNotFound(err error) bool           { return GetCode(err) == CodeNotFound }
func IsInvalidArgument(err error) bool    { return GetCode(err) == CodeInvalidArgument }
func IsAlreadyExists(err error) bool      { return GetCode(err) == CodeAlreadyExists }
func IsPermissionDenied(err error) bool   { return GetCode(err) == CodePermissionDenied }
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }
func IsInternal(err error) bool           { return GetCode(err) == CodeInternal }
func IsCanceled(err error) bool           { return GetCode(err) == CodeCanceled }
