package admin

import (
	"errors"
	"net/http"
)

// Error codes carried by gateway failures. Every privileged operation
// reports exactly one of these.
const (
	CodeUnauthenticated  = "unauthenticated"
	CodeInvalidArgument  = "invalid-argument"
	CodePermissionDenied = "permission-denied"
	CodeNotFound         = "not-found"
	CodeInternal         = "internal"
)

// Error is a tagged gateway failure. Message is user-facing and safe to
// return to clients.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func E(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap tags an arbitrary failure as internal, unless it already carries a
// gateway code, in which case it passes through untouched.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var ge *Error
	if errors.As(err, &ge) {
		return ge
	}
	return &Error{Code: CodeInternal, Message: message}
}

// HTTPStatus maps a gateway error to its response status. Untagged errors
// count as internal.
func HTTPStatus(err error) int {
	var ge *Error
	if !errors.As(err, &ge) {
		return http.StatusInternalServerError
	}
	switch ge.Code {
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
