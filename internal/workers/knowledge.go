package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/service"
)

const defaultKnowledgeSyncInterval = time.Minute

// KnowledgeSyncWorker pushes changed field records to the knowledge index on
// every tick. A failed tick is logged and the records are picked up again
// on the next one.
type KnowledgeSyncWorker struct {
	service  service.KnowledgeService
	interval time.Duration
	logger   *logger.Logger
}

func NewKnowledgeSyncWorker(svc service.KnowledgeService, interval time.Duration, logger *logger.Logger) *KnowledgeSyncWorker {
	if interval <= 0 {
		interval = defaultKnowledgeSyncInterval
	}
	return &KnowledgeSyncWorker{service: svc, interval: interval, logger: logger}
}

func (w *KnowledgeSyncWorker) Run(ctx context.Context) error {
	w.logger.Info().Dur("interval", w.interval).Msg("knowledge sync worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("knowledge sync worker stopped")
			return nil
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *KnowledgeSyncWorker) tick(ctx context.Context) {
	synced, err := w.service.SyncPending(w.logger.WithContext(ctx))
	switch {
	case errors.Is(err, context.Canceled):
	case err != nil:
		w.logger.Err(err).Str("func", "KnowledgeSyncWorker.tick").Msg("knowledge sync failed")
	case synced > 0:
		w.logger.Info().Int("synced", synced).Msg("field records pushed to knowledge index")
	}
}
