package config

import "time"

const (
	DefaultServerAddress         = "localhost:8080"
	DefaultRequestTimeout        = 30 * time.Second
	DefaultTokenIssuer           = "idea-brand-coach"
	DefaultTokenDuration         = 24 * time.Hour
	DefaultLocalPath             = "brandcoach.db"
	DefaultCacheTTL              = 10 * time.Minute
	DefaultDebounceInterval      = time.Second
	DefaultKnowledgeSyncInterval = 5 * time.Minute
	DefaultKnowledgeSyncBatch    = 20
	DefaultAIBaseURL             = "https://api.openai.com/v1"
	DefaultAIModel               = "gpt-4o-mini"
	DefaultAIRequestTimeout      = 60 * time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{
			Local: Local{Path: DefaultLocalPath},
			Cache: Cache{TTL: DefaultCacheTTL},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			DebounceInterval:      DefaultDebounceInterval,
			KnowledgeSyncInterval: DefaultKnowledgeSyncInterval,
			KnowledgeSyncBatch:    DefaultKnowledgeSyncBatch,
		},
		AI: AI{
			BaseURL:        DefaultAIBaseURL,
			Model:          DefaultAIModel,
			RequestTimeout: DefaultAIRequestTimeout,
		},
	}
}
