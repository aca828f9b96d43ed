package errors

// Code classifies an error
type Code string

const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

func (c Code) String() string {
	return string(c)
}

// Process exit statuses. Anything the caller can fix by changing its
// input exits with ExitUsage.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitUnavailable = 69
	ExitCanceled    = 130
)

var exitStatuses = map[Code]int{
	CodeOK:                 ExitOK,
	CodeCanceled:           ExitCanceled,
	CodeInvalidArgument:    ExitUsage,
	CodeNotFound:           ExitUsage,
	CodeAlreadyExists:      ExitUsage,
	CodePermissionDenied:   ExitUsage,
	CodeFailedPrecondition: ExitUsage,
	CodeUnavailable:        ExitUnavailable,
}

// ExitStatus is the process exit status for a command failing with c
func (c Code) ExitStatus() int {
	if status, ok := exitStatuses[c]; ok {
		return status
	}
	return ExitFailure
}
