// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoUserIDInContext is logged when an authenticated route runs
	// without the auth middleware having stored a user ID.
	ErrNoUserIDInContext = errors.New("no user ID in request context")

	// ErrMissingHash is returned by the hashing middleware when a hash key
	// is configured but the request body arrived without a HashSHA256 header.
	ErrMissingHash = errors.New("missing HashSHA256 header")

	// ErrHashMismatch is returned when the HashSHA256 header does not match
	// the HMAC of the request body.
	ErrHashMismatch = errors.New("HashSHA256 header does not match body")
)
