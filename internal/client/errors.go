package client

import "errors"

// Kind classifies a normalized API failure. Every error surfaced by this
// package is an *APIError; callers never see transport or JSON errors.
type Kind int

const (
	// KindValidation is a client-side precondition failure; no request was sent.
	KindValidation Kind = iota + 1
	// KindUnauthorized is an HTTP 401; session-invalidating.
	KindUnauthorized
	// KindForbidden is an HTTP 403; non-session-invalidating.
	KindForbidden
	// KindRequest is any other non-2xx the backend explained (or didn't).
	KindRequest
	// KindServer is an HTTP 5xx.
	KindServer
	// KindNetwork means no response reached the client; safe to retry.
	KindNetwork
	// KindTimeout means the request deadline elapsed; safe to retry.
	KindTimeout
	// KindBadResponse means the backend answered 2xx with an unusable body.
	KindBadResponse
)

// APIError is the single error type crossing the client boundary.
type APIError struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func errValidation(msg string) *APIError {
	return &APIError{Kind: KindValidation, Message: msg}
}

func errBadResponse() *APIError {
	return &APIError{Kind: KindBadResponse, Message: "Invalid response format from server"}
}

func errKind(err error, kind Kind) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Kind == kind
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool { return errKind(err, KindValidation) }

// IsUnauthorized reports whether err is an HTTP 401.
func IsUnauthorized(err error) bool { return errKind(err, KindUnauthorized) }

// IsForbidden reports whether err is an HTTP 403.
func IsForbidden(err error) bool { return errKind(err, KindForbidden) }

// IsNetwork reports whether err is a connection-level failure.
func IsNetwork(err error) bool { return errKind(err, KindNetwork) }

// IsTimeout reports whether err is a request timeout.
func IsTimeout(err error) bool { return errKind(err, KindTimeout) }
