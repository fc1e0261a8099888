package service

import (
	"github.com/MKhiriev/idea-brand-coach/internal/adapter"
	"github.com/MKhiriev/idea-brand-coach/internal/cache"
	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
	"github.com/MKhiriev/idea-brand-coach/models"
)

type ClientServices struct {
	AuthService ClientAuthService
	Fields      *FieldSyncService
	ChatStore   *ChatSessionStore
	QueryCache  cache.Cache
	Adapter     adapter.ServerAdapter

	autoCreate bool
	logger     *logger.Logger
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(localStore.SessionRepository, serverAdapter, logger),
		Fields:      NewFieldSyncService(localStore.FieldRepository, serverAdapter, cfg.Workers, logger),
		ChatStore:   NewChatSessionStore(serverAdapter, logger),
		QueryCache:  cache.NewMemoryCache(0),
		Adapter:     serverAdapter,
		autoCreate:  !cfg.Chat.DisableAutoCreate,
		logger:      logger,
	}
}

// Chat returns an orchestrator for one chatbot type of the logged in user.
// Extracted field values flow into Fields.
func (s *ClientServices) Chat(userID int64, chatbotType models.ChatbotType, notifier Notifier) *ChatOrchestrator {
	return NewChatOrchestrator(s.ChatStore, s.Adapter, s.QueryCache, ChatOrchestratorOptions{
		UserID:      userID,
		ChatbotType: chatbotType,
		AutoCreate:  s.autoCreate,
		Fields:      s.Fields,
		Notifier:    notifier,
	}, s.logger)
}
