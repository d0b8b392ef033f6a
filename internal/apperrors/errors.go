package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrLocked indicates an attempt to change a resource the system protects.
var ErrLocked = errors.New("resource is protected")

// ErrRenderFailed indicates that a report document could not be produced.
var ErrRenderFailed = errors.New("report rendering failed")

// Machine readable codes returned to API clients.
const (
	CodeMissingFields   = "MISSING_FIELDS"
	CodeMissingField    = "MISSING_FIELD"
	CodeInvalidAmount   = "INVALID_AMOUNT"
	CodeNameRequired    = "NAME_REQUIRED"
	CodeValidation      = "VALIDATION_ERROR"
	CodeEmailExists     = "EMAIL_EXISTS"
	CodeNotFound        = "NOT_FOUND"
	CodeClientNotFound  = "CLIENT_NOT_FOUND"
	CodeUserNotFound    = "USER_NOT_FOUND"
	CodeInvalidMode     = "INVALID_MODE"
	CodeTemplateLocked  = "TEMPLATE_PROTECTED"
	CodeInvalidCursor   = "INVALID_NEXT_TOKEN"
	CodeDBError         = "DB_ERROR"
	CodeRenderError     = "RENDER_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeBadRequest      = "BAD_REQUEST"
	CodeInternal        = "INTERNAL_ERROR"
	CodeUpstreamTimeout = "UPSTREAM_TIMEOUT"
	CodeInvalidJSON     = "INVALID_JSON"
	CodeRateLimited     = "RATE_LIMITED"
)

// AppError is an error carrying an HTTP status and a machine code for the client.
// It unwraps to one of the sentinel errors above so callers can keep using errors.Is.
type AppError struct {
	Code      int      `json:"-"`
	ErrorCode string   `json:"code"`
	Message   string   `json:"error"`
	Fields    []string `json:"fields,omitempty"`
	Err       error    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with an explicit status code.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Code: status, ErrorCode: codeForStatus(status), Message: message, Err: err}
}

// NewValidationError reports invalid input. fields lists the offending request fields, if any.
func NewValidationError(code, message string, fields ...string) *AppError {
	return &AppError{Code: http.StatusBadRequest, ErrorCode: code, Message: message, Fields: fields, Err: ErrValidation}
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(code, message string) *AppError {
	return &AppError{Code: http.StatusNotFound, ErrorCode: code, Message: message, Err: ErrNotFound}
}

// NewConflictError reports a uniqueness violation.
func NewConflictError(code, message string) *AppError {
	return &AppError{Code: http.StatusConflict, ErrorCode: code, Message: message, Err: ErrDuplicate}
}

// NewLockedError reports an operation refused because the resource is protected.
func NewLockedError(code, message string) *AppError {
	return &AppError{Code: http.StatusConflict, ErrorCode: code, Message: message, Err: ErrLocked}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, ErrorCode: CodeBadRequest, Message: message, Err: ErrValidation}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, ErrorCode: CodeUnauthorized, Message: message, Err: ErrUnauthorized}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, ErrorCode: CodeForbidden, Message: message, Err: ErrForbidden}
}

func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, ErrorCode: CodeInternal, Message: message}
}

func NewGatewayTimeoutError(message string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, ErrorCode: CodeUpstreamTimeout, Message: message}
}

// NewRenderError reports a report document that could not be produced.
func NewRenderError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, ErrorCode: CodeRenderError, Message: message, Err: errors.Join(ErrRenderFailed, err)}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusGatewayTimeout:
		return CodeUpstreamTimeout
	default:
		return CodeInternal
	}
}
