package abort

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMessage is used whenever NewError is not handed an explicit one.
const DefaultMessage = "This operation was aborted"

// Error says an operation was cancelled before it could finish. Cause, Ok
// and Reason travel with it so the cancelling side can say why.
type Error struct {
	Message string
	Cause   error
	Ok      bool
	Reason  any
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Cause }

// Option tweaks an Error under construction, or an adopted one.
type Option func(*Error)

func WithCause(cause error) Option {
	return func(e *Error) { e.Cause = cause }
}

func WithOk(ok bool) Option {
	return func(e *Error) { e.Ok = ok }
}

func WithReason(reason any) Option {
	return func(e *Error) { e.Reason = reason }
}

// NewError builds or adopts an abort error, depending on arg:
//
//   - nil: a fresh instance with DefaultMessage
//   - *Error: the options are applied to that instance and the same pointer
//     comes back, identity intact
//   - string: a fresh instance with arg as the message
//   - any other error: a fresh instance with DefaultMessage and arg as the
//     Cause, unless WithCause overrides it
//
// Anything else panics.
func NewError(arg any, opts ...Option) *Error {
	var e *Error
	switch v := arg.(type) {
	case nil:
		e = &Error{Message: DefaultMessage}
	case *Error:
		if v == nil {
			e = &Error{Message: DefaultMessage}
		} else {
			e = v
		}
	case string:
		e = &Error{Message: v}
	case error:
		e = &Error{Message: DefaultMessage, Cause: v}
	default:
		panic(fmt.Sprintf("abort: cannot build an error from %T", arg))
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Is reports whether err is or wraps an *Error.
func Is(err error) bool {
	var ae *Error
	return errors.As(err, &ae)
}

// FromContext turns a done context into an abort error. A cancel cause that
// already is an *Error is returned as-is; any other cause becomes both the
// Cause and the Reason of a fresh instance.
func FromContext(ctx context.Context) *Error {
	cause := context.Cause(ctx)
	if cause == nil {
		return NewError(nil)
	}
	if ae, ok := cause.(*Error); ok {
		return ae
	}
	return NewError(cause, WithReason(cause))
}
