package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("access forbidden")
	// ErrOrganizationRequired mirrors the client-side BUYER precondition on
	// the backend, for callers that bypass the official client.
	ErrOrganizationRequired = errors.New("organization is required for buyers")
)
