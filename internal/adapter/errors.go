package adapter

import "errors"

var (
	// ErrServerUnreachable is returned when no HTTP answer was received:
	// connection refused, DNS failure, timeout.
	ErrServerUnreachable = errors.New("server unreachable")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrNotAuthenticated is returned before sending a request that needs a
	// token when none is set.
	ErrNotAuthenticated = errors.New("no access token, log in first")
)
