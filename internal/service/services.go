package service

import (
	"fmt"

	"github.com/MKhiriev/idea-brand-coach/internal/ai"
	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/persona"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
)

type Services struct {
	AuthService      AuthService
	AppInfoService   AppInfoService
	FieldService     FieldService
	ChatService      ChatService
	KnowledgeService KnowledgeService
}

// NewServices wires the server services. aiClient may be nil, in which case
// chat sends fail with ErrAssistantUnavailable and the knowledge index is off.
func NewServices(storages *store.Storages, catalog *persona.Catalog, aiClient *ai.Client, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger, storages)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	var (
		completions ai.CompletionService
		index       ai.KnowledgeIndex
	)
	if aiClient != nil {
		completions = aiClient
		if aiClient.KnowledgeEnabled() {
			index = aiClient
		}
	}

	fieldService := NewFieldValidationService().Wrap(
		NewFieldService(storages.FieldRepository, logger),
	)
	chatService := NewChatValidationService().Wrap(
		NewChatService(storages.ChatSessionRepository, storages.ChatMessageRepository, storages.FieldRepository, catalog, completions, logger),
	)

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		AppInfoService:   appInfo,
		FieldService:     fieldService,
		ChatService:      chatService,
		KnowledgeService: NewKnowledgeService(storages.FieldRepository, index, cfg.Workers, logger),
	}, nil
}
