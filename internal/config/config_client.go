package config

import (
	"fmt"
	"time"
)

// ClientConfig is the subset of [StructuredConfig] used by the client binary.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Chat    Chat

	// Args is the command line left after flag parsing.
	Args []string
}

// ClientApp holds the client-side app settings.
type ClientApp struct {
	// HashKey signs request bodies when non-empty.
	HashKey string
}

// ClientAdapter holds the server endpoint.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientStorage holds the local database file.
type ClientStorage struct {
	LocalPath string
}

// ClientWorkers holds the field sync timing.
type ClientWorkers struct {
	DebounceInterval time.Duration
}

// GetClientConfig builds the merged configuration and derives the client view.
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg, b.args)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig, args []string) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{HashKey: cfg.App.HashKey},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{LocalPath: cfg.Storage.Local.Path},
		Workers: ClientWorkers{DebounceInterval: cfg.Workers.DebounceInterval},
		Chat:    cfg.Chat,
		Args:    args,
	}
}
