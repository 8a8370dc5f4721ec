// Package errs holds the error kinds shared by the repository, the media backends and the
// handlers. Only response.Fail turns them into HTTP statuses.
package errs

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrAuthentication  = errors.New("authentication failed")
	ErrFileUpload      = errors.New("file upload rejected")
	ErrExternalService = errors.New("external service failed")
	ErrStorage         = errors.New("storage failed")
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Error carries a kind, a client-facing message and optional structured details.
type Error struct {
	Kind    error
	Message string
	Details map[string]any
	cause   error
	stack   pkgerrors.StackTrace
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Is matches the kind, so errors.Is(err, errs.ErrNotFound) works through any wrapping.
func (e *Error) Is(target error) bool {
	return e.Kind == target
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

// With returns a copy carrying one more detail entry.
func (e *Error) With(key string, value any) *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	cp := *e
	cp.Details = details
	return &cp
}

func New(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg, stack: callers()}
}

func Newf(kind error, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap attaches a kind and message to err. A nil err yields nil.
func Wrap(kind error, err error, msg string) *Error {
	if err == nil {
		return nil
	}
	if _, ok := err.(stackTracer); !ok {
		err = pkgerrors.WithStack(err)
	}
	return &Error{Kind: kind, Message: msg, cause: err}
}

// NotFound builds "<resource> with identifier '<value>' not found".
func NotFound(resource string, value any) *Error {
	return New(ErrNotFound, fmt.Sprintf("%s with identifier '%v' not found", resource, value)).
		With("resource", resource).
		With("identifier", fmt.Sprint(value))
}

// NotFoundBy builds "<resource> not found (<field>='<value>')" for lookups by a non-id field.
func NotFoundBy(resource, field string, value any) *Error {
	return New(ErrNotFound, fmt.Sprintf("%s not found (%s='%v')", resource, field, value)).
		With("resource", resource).
		With(field, fmt.Sprint(value))
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

func callers() pkgerrors.StackTrace {
	// pkg/errors has no exported constructor for a bare stack, so borrow one from WithStack.
	st, _ := pkgerrors.WithStack(errors.New("")).(stackTracer)
	if st == nil {
		return nil
	}
	trace := st.StackTrace()
	if len(trace) > 2 {
		return trace[2:]
	}
	return trace
}
