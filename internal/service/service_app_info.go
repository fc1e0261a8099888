package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
)

// Pinger reports whether a backing dependency answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type appInfoService struct {
	appVersion string
	pingers    []Pinger

	logger *logger.Logger
}

// NewAppInfoService serves the version and the health probe. Every pinger
// must answer for the server to count as healthy.
func NewAppInfoService(cfg config.App, logger *logger.Logger, pingers ...Pinger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		pingers:    pingers,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Health(ctx context.Context) error {
	for _, p := range s.pingers {
		if err := p.Ping(ctx); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "appInfoService.Health").Msg("dependency is down")
			return fmt.Errorf("%w: %w", ErrUnhealthy, err)
		}
	}
	return nil
}
