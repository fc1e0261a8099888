package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/idea-brand-coach/models"
)

// Field name constants used to scope chat request validation.
const (
	FieldChatbotType = "chatbot_type"
	FieldTitle       = "title"
	FieldMetadata    = "metadata"
)

const (
	MaxTitleLength   = 200
	MaxMessageLength = 20000
)

// ChatValidator checks session and message requests. Whether a chatbot
// type is known is decided by the persona catalog, not here.
type ChatValidator struct{}

func NewChatValidator() Validator {
	return &ChatValidator{}
}

func (v *ChatValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateSessionRequest:
		return v.validateCreate(value, fields...)
	case *models.CreateSessionRequest:
		return v.validateCreate(*value, fields...)

	case models.SessionUpdate:
		return v.validateUpdate(value)
	case *models.SessionUpdate:
		return v.validateUpdate(*value)

	case models.SendMessageRequest:
		return v.validateSend(value, fields...)
	case *models.SendMessageRequest:
		return v.validateSend(*value, fields...)

	case models.TitleRequest:
		if strings.TrimSpace(value.UserMessage) == "" {
			return ErrEmptyContent
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *ChatValidator) validateCreate(req models.CreateSessionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChatbotType, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldChatbotType:
			if strings.TrimSpace(string(req.ChatbotType)) == "" {
				return ErrEmptyChatbotType
			}
		case FieldTitle:
			// empty means "use the default title"
			if utf8.RuneCountInString(req.Title) > MaxTitleLength {
				return ErrInvalidTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ChatValidator) validateUpdate(update models.SessionUpdate) error {
	if update.Title == nil {
		return ErrNoFieldsToUpdate
	}

	title := strings.TrimSpace(*update.Title)
	if title == "" || utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrInvalidTitle
	}

	return nil
}

func (v *ChatValidator) validateSend(req models.SendMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent, FieldMetadata}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if strings.TrimSpace(req.Content) == "" {
				return ErrEmptyContent
			}
			if utf8.RuneCountInString(req.Content) > MaxMessageLength {
				return ErrContentTooLong
			}
		case FieldMetadata:
			if req.Metadata == nil {
				continue
			}
			if err := req.Metadata.Validate(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
