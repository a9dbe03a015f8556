package apperror

import "net/http"

// Stable machine-readable error codes. The set is closed: every error that
// reaches a client carries exactly one of these.
const (
	CodeMissingAuthorization     = "MISSING_AUTHORIZATION"
	CodeInvalidAuthorizationType = "INVALID_AUTHORIZATION_TYPE"
	CodeInvalidAuthorization     = "INVALID_AUTHORIZATION"
	CodeTokenExpired             = "TOKEN_EXPIRED"
	CodeInvalidCredentials       = "INVALID_CREDENTIALS"
	CodeUserNotFound             = "USER_NOT_FOUND"
	CodeNotEnoughPrivileges      = "NOT_ENOUGH_PRIVILEGES"
	CodeUserExists               = "USER_EXISTS"
	CodeInvalidBody              = "INVALID_BODY"
	CodeRouteNotFound            = "ROUTE_NOT_FOUND"
	CodeUnknown                  = "UNKNOWN_ERROR"
)

// Error is an application error bound to one HTTP status, one stable code,
// a human message, and diagnostic details. Immutable once constructed.
type Error struct {
	Status  int
	Message string
	Code    string
	Details string
}

func (e *Error) Error() string {
	return e.Details
}

// New constructs an application error.
func New(status int, code, details, message string) *Error {
	return &Error{
		Status:  status,
		Message: message,
		Code:    code,
		Details: details,
	}
}

// NewUnauthorized builds a 401 error.
func NewUnauthorized(code, details, message string) *Error {
	return New(http.StatusUnauthorized, code, details, message)
}

// NewForbidden builds a 403 error.
func NewForbidden(code, details, message string) *Error {
	return New(http.StatusForbidden, code, details, message)
}

// NewNotFound builds a 404 error.
func NewNotFound(code, details, message string) *Error {
	return New(http.StatusNotFound, code, details, message)
}

// NewConflict builds a 409 error.
func NewConflict(code, details, message string) *Error {
	return New(http.StatusConflict, code, details, message)
}

// NewBadRequest builds a 400 error.
func NewBadRequest(code, details, message string) *Error {
	return New(http.StatusBadRequest, code, details, message)
}
