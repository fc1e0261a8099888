package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
	"github.com/MKhiriev/idea-brand-coach/models"
)

type fieldService struct {
	fields store.FieldRepository
	logger *logger.Logger
}

func NewFieldService(fields store.FieldRepository, logger *logger.Logger) FieldService {
	return &fieldService{fields: fields, logger: logger}
}

// Upsert replaces the current record of (user, field identifier) or
// creates it.
func (s *fieldService) Upsert(ctx context.Context, upsert models.FieldUpsert) (models.FieldRecord, error) {
	record, err := s.fields.UpsertCurrent(ctx, upsert)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fieldService.Upsert").
			Int64("user_id", upsert.UserID).
			Str("field_identifier", upsert.FieldIdentifier).
			Msg("field upsert failed")
		return models.FieldRecord{}, fmt.Errorf("field upsert failed: %w", err)
	}
	return record, nil
}

func (s *fieldService) Get(ctx context.Context, userID int64, fieldIdentifier string) (models.FieldRecord, error) {
	record, err := s.fields.GetCurrent(ctx, userID, fieldIdentifier)
	if err != nil {
		return models.FieldRecord{}, fmt.Errorf("field lookup failed: %w", err)
	}
	return record, nil
}

func (s *fieldService) List(ctx context.Context, userID int64, category models.FieldCategory) ([]models.FieldRecord, error) {
	records, err := s.fields.ListCurrent(ctx, userID, category)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fieldService.List").
			Int64("user_id", userID).
			Str("category", string(category)).
			Msg("field listing failed")
		return nil, fmt.Errorf("field listing failed: %w", err)
	}
	return records, nil
}

// Clear hard deletes every field row of the user.
func (s *fieldService) Clear(ctx context.Context, userID int64) (int64, error) {
	n, err := s.fields.ClearFields(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fieldService.Clear").Int64("user_id", userID).Msg("bulk clear failed")
		return 0, fmt.Errorf("bulk clear failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "fieldService.Clear").Int64("user_id", userID).Int64("deleted", n).Msg("fields cleared")
	return n, nil
}
