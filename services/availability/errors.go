package availability

import (
	"errors"
	"fmt"
)

// Error codes carried by engine failures. Handlers map them onto HTTP
// status codes.
const (
	CodeInvalidArgument    = "invalid_argument"
	CodeNotFound           = "not_found"
	CodePreconditionFailed = "precondition_failed"
	CodeDependency         = "dependency_error"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidArgument(format string, args ...any) error {
	return &Error{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func NewNotFound(format string, args ...any) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewPreconditionFailed(format string, args ...any) error {
	return &Error{Code: CodePreconditionFailed, Message: fmt.Sprintf(format, args...)}
}

func NewDependencyError(op string, err error) error {
	return &Error{Code: CodeDependency, Message: fmt.Sprintf("%s: %v", op, err)}
}

// CodeOf extracts the engine error code, or empty for foreign errors.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
