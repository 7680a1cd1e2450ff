package llm

import (
	"context"
	"errors"
	"net"
)

// ErrorKind classifies a backend failure.
type ErrorKind string

const (
	KindAuth        ErrorKind = "auth"
	KindRateLimit   ErrorKind = "rate_limit"
	KindTimeout     ErrorKind = "timeout"
	KindBadRequest  ErrorKind = "bad_request"
	KindServer      ErrorKind = "server"
	KindUnreachable ErrorKind = "unreachable"
)

// Error is a typed backend failure.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func badRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

// KindOf returns the error kind, or "" if err is not a backend error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsServerError reports whether err is a server-side failure that may
// succeed against another backend candidate. Client-side failures (auth,
// rate-limit, bad request) never qualify.
func IsServerError(err error) bool {
	switch KindOf(err) {
	case KindServer, KindUnreachable:
		return true
	}
	return false
}

// wrapTransport classifies a transport-level failure as timeout or
// unreachable.
func wrapTransport(backend string, err error) *Error {
	kind := KindUnreachable
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = KindTimeout
	}
	return &Error{Kind: kind, Message: backend + " request failed", Err: err}
}

// kindForStatus maps an HTTP status code to an error kind.
func kindForStatus(status int) ErrorKind {
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status == 429:
		return KindRateLimit
	case status >= 400 && status < 500:
		return KindBadRequest
	default:
		return KindServer
	}
}
