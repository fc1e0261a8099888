package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
	"github.com/MKhiriev/idea-brand-coach/models"
)

// FieldSyncService hands out one engine per (user, field identifier) and
// runs the operations spanning all of them.
type FieldSyncService struct {
	local    store.LocalFieldRepository
	remote   FieldRemote
	debounce time.Duration
	logger   *logger.Logger

	mu      sync.Mutex
	engines map[string]*FieldSync
}

func NewFieldSyncService(local store.LocalFieldRepository, remote FieldRemote, cfg config.ClientWorkers, logger *logger.Logger) *FieldSyncService {
	debounce := cfg.DebounceInterval
	if debounce <= 0 {
		debounce = DefaultDebounceInterval
	}

	return &FieldSyncService{
		local:    local,
		remote:   remote,
		debounce: debounce,
		logger:   logger,
		engines:  make(map[string]*FieldSync),
	}
}

// Field returns the engine of the field, creating it on first use. The
// category of the first call sticks.
func (s *FieldSyncService) Field(userID int64, fieldIdentifier string, category models.FieldCategory) *FieldSync {
	key := LocalFieldKey(userID, fieldIdentifier)

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.engines[key]; ok {
		return e
	}
	e := newFieldSync(userID, fieldIdentifier, category, s.local, s.remote, s.debounce, s.logger)
	s.engines[key] = e
	return e
}

// ApplyExtracted writes assistant proposed values into their engines.
func (s *FieldSyncService) ApplyExtracted(ctx context.Context, userID int64, fields []models.ExtractedField) error {
	var errs []error
	for _, f := range fields {
		if err := s.Field(userID, f.FieldIdentifier, f.Category).SetValue(ctx, f.Value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.FieldIdentifier, err))
			continue
		}
		logger.FromContext(ctx).Debug().
			Str("func", "FieldSyncService.ApplyExtracted").
			Str("field_identifier", f.FieldIdentifier).
			Msg("extracted value applied")
	}
	return errors.Join(errs...)
}

// ClearAll deletes every field of the user on the server, then locally.
// Running uploads are awaited first so none lands after the clear. Nothing
// local is touched when the server call fails.
func (s *FieldSyncService) ClearAll(ctx context.Context, userID int64) (int64, error) {
	prefix := localUserPrefix(userID)

	s.mu.Lock()
	var engines []*FieldSync
	for key, e := range s.engines {
		if strings.HasPrefix(key, prefix) {
			engines = append(engines, e)
		}
	}
	s.mu.Unlock()

	resumeAll := func() {
		for _, e := range engines {
			e.resume()
		}
	}

	for _, e := range engines {
		if err := e.settle(ctx); err != nil {
			resumeAll()
			return 0, err
		}
	}

	deleted, err := s.remote.ClearFields(ctx)
	if err != nil {
		resumeAll()
		return 0, fmt.Errorf("clearing server fields: %w", err)
	}

	s.mu.Lock()
	for _, e := range engines {
		e.discard()
		if s.engines[e.key] == e {
			delete(s.engines, e.key)
		}
	}
	s.mu.Unlock()

	if _, err = s.local.DeletePrefix(ctx, prefix); err != nil {
		return deleted, fmt.Errorf("clearing local fields: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "FieldSyncService.ClearAll").Int64("user_id", userID).Int64("deleted", deleted).Msg("all fields cleared")
	return deleted, nil
}

// FlushAll closes every engine, pushing pending edits.
func (s *FieldSyncService) FlushAll(ctx context.Context) error {
	s.mu.Lock()
	engines := make([]*FieldSync, 0, len(s.engines))
	for _, e := range s.engines {
		engines = append(engines, e)
	}
	s.mu.Unlock()

	var errs []error
	for _, e := range engines {
		if err := e.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.fieldIdentifier, err))
		}
	}
	return errors.Join(errs...)
}
