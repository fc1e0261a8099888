package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID          = errors.New("invalid user ID")
	ErrInvalidFieldIdentifier = errors.New("invalid field identifier")
	ErrInvalidCategory        = errors.New("invalid field category")
	ErrContentTooLong         = errors.New("content is too long")

	ErrEmptyChatbotType = errors.New("chatbot type is required")
	ErrInvalidTitle     = errors.New("invalid session title")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrEmptyContent     = errors.New("message content is required")
	ErrInvalidMetadata  = errors.New("invalid message metadata")
)
