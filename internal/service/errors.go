package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check these with errors.Is(); the API layer maps them to HTTP
// status codes.
var (
	// ErrPolicyDenied indicates the caller's role does not permit the
	// requested action on the resource. The store is never consulted when
	// this is returned. API layer should map this to HTTP 403 Forbidden.
	ErrPolicyDenied = errors.New("action not permitted for role")

	// ErrInvalidCredentials indicates a login attempt with an unknown
	// username or a wrong password. Deliberately a single error for both
	// cases. API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
