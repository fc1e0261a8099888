package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
		Version       string   `json:"version"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Local struct {
			Path string `json:"path"`
		} `json:"local"`
		Cache struct {
			RedisAddr     string   `json:"redis_addr"`
			RedisPassword string   `json:"redis_password"`
			RedisDB       int      `json:"redis_db"`
			TTL           Duration `json:"ttl"`
		} `json:"cache"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Workers struct {
		DebounceInterval      Duration `json:"debounce_interval"`
		KnowledgeSyncInterval Duration `json:"knowledge_sync_interval"`
		KnowledgeSyncBatch    int      `json:"knowledge_sync_batch"`
	} `json:"workers"`

	AI struct {
		BaseURL        string   `json:"base_url"`
		APIKey         string   `json:"api_key"`
		Model          string   `json:"model"`
		TitleModel     string   `json:"title_model"`
		VectorStoreID  string   `json:"vector_store_id"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"ai"`

	Chat struct {
		DisableAutoCreate bool `json:"disable_auto_create"`
	} `json:"chat"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			HashKey:       j.App.HashKey,
			Version:       j.App.Version,
		},
		Storage: Storage{
			DB:    DB{DSN: j.Storage.DB.DSN},
			Local: Local{Path: j.Storage.Local.Path},
			Cache: Cache{
				RedisAddr:     j.Storage.Cache.RedisAddr,
				RedisPassword: j.Storage.Cache.RedisPassword,
				RedisDB:       j.Storage.Cache.RedisDB,
				TTL:           time.Duration(j.Storage.Cache.TTL),
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Workers: Workers{
			DebounceInterval:      time.Duration(j.Workers.DebounceInterval),
			KnowledgeSyncInterval: time.Duration(j.Workers.KnowledgeSyncInterval),
			KnowledgeSyncBatch:    j.Workers.KnowledgeSyncBatch,
		},
		AI: AI{
			BaseURL:        j.AI.BaseURL,
			APIKey:         j.AI.APIKey,
			Model:          j.AI.Model,
			TitleModel:     j.AI.TitleModel,
			VectorStoreID:  j.AI.VectorStoreID,
			RequestTimeout: time.Duration(j.AI.RequestTimeout),
		},
		Chat: Chat{DisableAutoCreate: j.Chat.DisableAutoCreate},
	}, nil
}

// Duration accepts "1h30m" strings or integer nanoseconds in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
