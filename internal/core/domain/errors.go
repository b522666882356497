package domain

import "net/http"

// Error is a structured domain error. The HTTP error handler renders it as
// the canonical envelope {message, name, path, type, status}.
type Error struct {
	Status  int    `json:"status"`
	Name    string `json:"name"`
	Path    string `json:"path"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

// Is matches two domain errors by name, so errors.Is can be used with the
// kind sentinels below regardless of path/message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Name == e.Name
}

func newError(status int, name, path, message string) *Error {
	return &Error{
		Status:  status,
		Name:    name,
		Path:    path,
		Type:    name,
		Message: message,
	}
}

// Unauthorized reports a missing/invalid/expired token or bad credentials.
func Unauthorized(path, message string) *Error {
	return newError(http.StatusUnauthorized, "Unauthorized", path, message)
}

// Forbidden reports insufficient rights or a role-escalation attempt.
func Forbidden(path, message string) *Error {
	return newError(http.StatusForbidden, "Forbidden", path, message)
}

// NotFound reports an absent entity.
func NotFound(path, message string) *Error {
	return newError(http.StatusNotFound, "NotFound", path, message)
}

// Conflict reports a uniqueness violation such as a duplicate email.
func Conflict(path, message string) *Error {
	return newError(http.StatusConflict, "Conflict", path, message)
}

// BadRequest reports a malformed id or a validation failure.
func BadRequest(path, message string) *Error {
	return newError(http.StatusBadRequest, "BadRequest", path, message)
}

// Kind sentinels for errors.Is checks.
var (
	ErrUnauthorized = Unauthorized("", "")
	ErrForbidden    = Forbidden("", "")
	ErrNotFound     = NotFound("", "")
	ErrConflict     = Conflict("", "")
	ErrBadRequest   = BadRequest("", "")
)
