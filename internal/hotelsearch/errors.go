package hotelsearch

import (
	"errors"
	"fmt"
)

// Kind classifies why a request failed.
type Kind int

const (
	// KindHTTP means the server answered with a non-2xx status.
	KindHTTP Kind = iota + 1
	// KindNetwork means the request could not be sent or completed,
	// including cancellation by the caller's context.
	KindNetwork
	// KindParse means a 2xx response carried a body that is not valid JSON.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindHTTP:
		return "HttpError"
	case KindNetwork:
		return "NetworkError"
	case KindParse:
		return "ParseError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinels for errors.Is. Every *Error matches exactly one of them.
var (
	ErrHTTP    = errors.New("http error")
	ErrNetwork = errors.New("network error")
	ErrParse   = errors.New("parse error")
)

// abortedMessage is the message carried by a NetworkError caused by context
// cancellation.
const abortedMessage = "aborted"

// Error is the only error type returned by Client methods.
type Error struct {
	Kind    Kind
	Message string

	// StatusCode is set for KindHTTP errors.
	StatusCode int

	// Cause is the underlying transport or decoding error, if any.
	Cause error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrHTTP:
		return e.Kind == KindHTTP
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrParse:
		return e.Kind == KindParse
	}
	return false
}

func httpError(status int) *Error {
	return &Error{
		Kind:       KindHTTP,
		Message:    fmt.Sprintf("HTTP error! status: %d", status),
		StatusCode: status,
	}
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: err.Error(), Cause: err}
}

func abortedError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: abortedMessage, Cause: err}
}

func parseError(err error) *Error {
	return &Error{Kind: KindParse, Message: err.Error(), Cause: err}
}

// AsError extracts the *Error from err. It returns nil when err is nil or
// was not produced by this package.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
