package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/idea-brand-coach/internal/validators"
	"github.com/MKhiriev/idea-brand-coach/models"
)

// FieldServiceWrapper defines middleware composition for FieldService.
// Implementations wrap an existing FieldService to add behavior such as
// validating.
type FieldServiceWrapper interface {
	Wrap(FieldService) FieldService
}

// ChatServiceWrapper is the ChatService counterpart of FieldServiceWrapper.
type ChatServiceWrapper interface {
	Wrap(ChatService) ChatService
}

// FieldValidationService rejects malformed field requests before they
// reach the repositories.
type FieldValidationService struct {
	inner     FieldService
	validator validators.Validator
}

func NewFieldValidationService() FieldServiceWrapper {
	return &FieldValidationService{validator: validators.NewFieldValidator()}
}

func (v *FieldValidationService) Wrap(inner FieldService) FieldService {
	return &FieldValidationService{inner: inner, validator: v.validator}
}

func (v *FieldValidationService) Upsert(ctx context.Context, upsert models.FieldUpsert) (models.FieldRecord, error) {
	if err := v.validator.Validate(ctx, upsert); err != nil {
		return models.FieldRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Upsert(ctx, upsert)
}

func (v *FieldValidationService) Get(ctx context.Context, userID int64, fieldIdentifier string) (models.FieldRecord, error) {
	if err := v.validator.Validate(ctx, models.FieldUpsert{UserID: userID, FieldIdentifier: fieldIdentifier},
		validators.FieldUserID, validators.FieldFieldIdentifier); err != nil {
		return models.FieldRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Get(ctx, userID, fieldIdentifier)
}

func (v *FieldValidationService) List(ctx context.Context, userID int64, category models.FieldCategory) ([]models.FieldRecord, error) {
	if category != "" {
		if err := v.validator.Validate(ctx, category); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}
	return v.inner.List(ctx, userID, category)
}

func (v *FieldValidationService) Clear(ctx context.Context, userID int64) (int64, error) {
	return v.inner.Clear(ctx, userID)
}

// ChatValidationService checks chat requests.
type ChatValidationService struct {
	inner     ChatService
	validator validators.Validator
}

func NewChatValidationService() ChatServiceWrapper {
	return &ChatValidationService{validator: validators.NewChatValidator()}
}

func (v *ChatValidationService) Wrap(inner ChatService) ChatService {
	return &ChatValidationService{inner: inner, validator: v.validator}
}

func (v *ChatValidationService) CreateSession(ctx context.Context, userID int64, req models.CreateSessionRequest) (models.ChatSession, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ChatSession{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateSession(ctx, userID, req)
}

func (v *ChatValidationService) ListSessions(ctx context.Context, userID int64, chatbotType models.ChatbotType) ([]models.ChatSession, error) {
	if err := v.validator.Validate(ctx, models.CreateSessionRequest{ChatbotType: chatbotType}, validators.FieldChatbotType); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.ListSessions(ctx, userID, chatbotType)
}

func (v *ChatValidationService) GetSession(ctx context.Context, userID int64, sessionID string) (models.ChatSession, error) {
	return v.inner.GetSession(ctx, userID, sessionID)
}

func (v *ChatValidationService) UpdateSession(ctx context.Context, userID int64, sessionID string, update models.SessionUpdate) (models.ChatSession, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.ChatSession{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateSession(ctx, userID, sessionID, update)
}

func (v *ChatValidationService) DeleteSession(ctx context.Context, userID int64, sessionID string) error {
	return v.inner.DeleteSession(ctx, userID, sessionID)
}

func (v *ChatValidationService) ListMessages(ctx context.Context, userID int64, sessionID string) ([]models.ChatMessage, error) {
	return v.inner.ListMessages(ctx, userID, sessionID)
}

func (v *ChatValidationService) SendMessage(ctx context.Context, userID int64, sessionID string, req models.SendMessageRequest) (models.SendMessageResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SendMessageResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.SendMessage(ctx, userID, sessionID, req)
}

func (v *ChatValidationService) ClearMessages(ctx context.Context, userID int64, sessionID string) error {
	return v.inner.ClearMessages(ctx, userID, sessionID)
}

func (v *ChatValidationService) GenerateTitle(ctx context.Context, req models.TitleRequest) (models.TitleResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.TitleResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.GenerateTitle(ctx, req)
}
