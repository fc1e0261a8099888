package ai

import "errors"

var (
	// ErrUnavailable covers transport failures and 5xx answers.
	ErrUnavailable = errors.New("ai provider is unavailable")

	// ErrUnauthorized is returned for 401 and 403 answers.
	ErrUnauthorized = errors.New("ai provider rejected credentials")

	// ErrRateLimited is returned for 429 answers.
	ErrRateLimited = errors.New("ai provider rate limit exceeded")

	// ErrRequestRejected is returned for any other non-2xx answer.
	ErrRequestRejected = errors.New("ai provider rejected request")

	// ErrEmptyCompletion is returned when the provider answered without choices.
	ErrEmptyCompletion = errors.New("ai provider returned no completion")

	// ErrKnowledgeIndexDisabled is returned by knowledge calls without a
	// configured vector store.
	ErrKnowledgeIndexDisabled = errors.New("knowledge index is not configured")
)
