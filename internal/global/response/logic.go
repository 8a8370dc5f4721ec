package response

import (
	"anvaya-club/internal/global/errs"
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// ErrorContextKey stores the translated error on the gin.Context for the access logger.
const ErrorContextKey = "error"

// Error is the body of every failed response.
type Error struct {
	Status  int            `json:"-"`
	Code    string         `json:"error_code"`
	Message string         `json:"detail"`
	Details map[string]any `json:"details,omitempty"`
	Origin  string         `json:"origin,omitempty"` // only sent in debug mode
	// cause keeps the original chain for errors.Unwrap and Sentry
	cause error
	stack pkgerrors.StackTrace
}

func newError(status int, code, msg string) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: msg,
	}
}

var (
	ErrNotFound        = newError(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrValidation      = newError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request")
	ErrAuthentication  = newError(http.StatusUnauthorized, "AUTHENTICATION_ERROR", "Could not validate credentials")
	ErrFileUpload      = newError(http.StatusBadRequest, "FILE_UPLOAD_ERROR", "Invalid file upload")
	ErrExternalService = newError(http.StatusBadGateway, "EXTERNAL_SERVICE_ERROR", "External service error")
	ErrDatabase        = newError(http.StatusInternalServerError, "DATABASE_ERROR", "Database error occurred")
	ErrInternal        = newError(http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
)

var kinds = []struct {
	kind error
	base *Error
}{
	{errs.ErrNotFound, ErrNotFound},
	{errs.ErrValidation, ErrValidation},
	{errs.ErrAuthentication, ErrAuthentication},
	{errs.ErrFileUpload, ErrFileUpload},
	{errs.ErrExternalService, ErrExternalService},
	{errs.ErrStorage, ErrDatabase},
}

func (e *Error) Error() string {
	return fmt.Sprintf("status:%d, code:%s, detail:%s", e.Status, e.Code, e.Message)
}

// GetCode returns the HTTP status, satisfying sentry.CodedError.
func (e *Error) GetCode() int32 {
	return int32(e.Status)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e.stack != nil {
		return e.stack
	}
	if st, ok := e.cause.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithOrigin keeps err as the cause; its text is only shown to clients in debug mode.
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}
	wrapped := ensureStack(err)
	cp := *e
	cp.Origin = fmt.Sprintf("%+v", wrapped)
	cp.cause = wrapped
	cp.stack = nil
	if st, ok := wrapped.(stackTracer); ok {
		cp.stack = st.StackTrace()
	}
	return &cp
}

// WithTips replaces the client-facing message, visible in every mode.
func (e *Error) WithTips(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

func (e *Error) WithDetails(details map[string]any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// Translate maps any error onto a response.Error. Server-side failures keep the generic
// message; client failures surface the message carried by the errs.Error.
func Translate(err error) *Error {
	if err == nil {
		return nil
	}
	var r *Error
	if errors.As(err, &r) {
		return r
	}

	base := ErrInternal
	for _, k := range kinds {
		if errors.Is(err, k.kind) {
			base = k.base
			break
		}
	}

	out := base.WithOrigin(err)
	if e, ok := errs.As(err); ok {
		if base.Status < http.StatusInternalServerError && e.Message != "" {
			out.Message = e.Message
		}
		if len(e.Details) > 0 {
			out.Details = e.Details
		}
	}
	return out
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

func ensureStack(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(stackTracer); ok {
		return err
	}
	return pkgerrors.WithStack(err)
}
