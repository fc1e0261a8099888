// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Domain level repository errors.
var (
	ErrLoginAlreadyExists = errors.New("login already exists")
	ErrNoUserWasFound     = errors.New("no user was found")

	// ErrFieldNotFound is returned when no current record exists for the
	// requested (user, field identifier) pair.
	ErrFieldNotFound = errors.New("field was not found")

	// ErrSessionNotFound is returned when a chat session does not exist or
	// belongs to another user. Both cases look the same to the caller.
	ErrSessionNotFound = errors.New("chat session was not found")

	// ErrInvalidRecord is returned when the database rejects a row because of
	// a check constraint (unknown category, role, or a chatbot type change).
	ErrInvalidRecord = errors.New("record violates a table constraint")

	// ErrNoLocalSession is returned by the client store when nobody logged in yet.
	ErrNoLocalSession = errors.New("local session not found")

	// ErrLocalValueNotFound is returned by the client store for a missing key.
	ErrLocalValueNotFound = errors.New("local value not found")
)

// SQL level failures. Repositories wrap the driver error with one of these
// so logs show which step failed.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrPreparingStatement   = errors.New("failed to prepare statement")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRows         = errors.New("failed to scan rows")

	// ErrDecodingMetadata means a stored metadata document no longer decodes
	// into a known kind.
	ErrDecodingMetadata = errors.New("failed to decode message metadata")
)
