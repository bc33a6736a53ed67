package domain

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindInvalidToken
	KindForbidden
	KindNotFound
	KindInvalidCredentials
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindInvalidToken:
		return "invalid_token"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// Status maps a kind to its HTTP status. Forbidden answers 401, as clients of
// this API have always received.
func (k Kind) Status() int {
	switch k {
	case KindUnauthenticated, KindInvalidToken, KindForbidden:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidCredentials, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

const InternalMessage = "Internal Server Error"

// Error is the user-facing failure type. Message is safe to show; Err is only logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Unauthenticated() *Error {
	return &Error{Kind: KindUnauthenticated, Message: "You need to be authenticated"}
}

func InvalidToken(err error) *Error {
	return &Error{Kind: KindInvalidToken, Message: "Invalid token", Err: err}
}

func Forbidden() *Error {
	return &Error{Kind: KindForbidden, Message: "You do not have permission to do this action"}
}

func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "Password is incorrect"}
}

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: InternalMessage, Err: err}
}

// KindOf reports the kind of err; anything that is not an *Error is internal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
