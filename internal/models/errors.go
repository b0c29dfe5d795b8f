package models

import (
	"errors"
)

// API error kinds. The client wraps every failure in exactly one of these
// so callers can branch with errors.Is.
var (
	// ErrNetwork is returned when the request never produced an HTTP response
	ErrNetwork = errors.New("network failure")

	// ErrAuthentication is returned when login is rejected by the server
	ErrAuthentication = errors.New("authentication failed")

	// ErrUnauthorized is returned when the held token is absent, expired or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when the requested resource id is unknown
	ErrNotFound = errors.New("resource not found")

	// ErrMalformedResponse is returned when a response body does not match the expected shape
	ErrMalformedResponse = errors.New("malformed response")
)
