package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/idea-brand-coach/internal/ai"
	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
	"github.com/MKhiriev/idea-brand-coach/models"
)

const defaultKnowledgeBatch = 50

// knowledgeService mirrors current field records into the vector index.
// It is best effort: a failed record is logged and stays unsynced.
type knowledgeService struct {
	fields store.FieldRepository
	index  ai.KnowledgeIndex
	batch  int
	now    func() time.Time

	logger *logger.Logger
}

// NewKnowledgeService returns a disabled service when index is nil.
func NewKnowledgeService(fields store.FieldRepository, index ai.KnowledgeIndex, cfg config.Workers, logger *logger.Logger) KnowledgeService {
	batch := cfg.KnowledgeSyncBatch
	if batch <= 0 {
		batch = defaultKnowledgeBatch
	}

	return &knowledgeService{
		fields: fields,
		index:  index,
		batch:  batch,
		now:    time.Now,
		logger: logger,
	}
}

func (s *knowledgeService) Enabled() bool {
	return s.index != nil
}

func (s *knowledgeService) SyncPending(ctx context.Context) (int, error) {
	if !s.Enabled() {
		return 0, nil
	}
	log := logger.FromContext(ctx)

	records, err := s.fields.ListUnsynced(ctx, s.batch)
	if err != nil {
		return 0, fmt.Errorf("listing unsynced fields failed: %w", err)
	}

	synced := 0
	for _, record := range records {
		if err = ctx.Err(); err != nil {
			return synced, err
		}

		if err = s.syncRecord(ctx, record); err != nil {
			log.Warn().Err(err).
				Str("func", "knowledgeService.SyncPending").
				Str("id", record.ID).
				Int64("user_id", record.UserID).
				Str("field_identifier", record.FieldIdentifier).
				Msg("field not synced, retrying next run")
			continue
		}
		synced++
	}

	if len(records) > 0 {
		log.Info().Str("func", "knowledgeService.SyncPending").Int("pending", len(records)).Int("synced", synced).Msg("knowledge sync run finished")
	}
	return synced, nil
}

func (s *knowledgeService) syncRecord(ctx context.Context, record models.FieldRecord) error {
	if record.ExternalFileID != nil && *record.ExternalFileID != "" {
		if err := s.index.RemoveDocument(ctx, *record.ExternalFileID); err != nil {
			return fmt.Errorf("removing previous document: %w", err)
		}
	}

	fileID := ""
	if strings.TrimSpace(record.Content) != "" {
		var err error
		fileID, err = s.index.UploadDocument(ctx, documentName(record), documentContent(record))
		if err != nil {
			return fmt.Errorf("uploading document: %w", err)
		}
	}

	return s.fields.MarkSynced(ctx, record, fileID, s.now())
}

func documentName(record models.FieldRecord) string {
	return fmt.Sprintf("user-%d-%s.md", record.UserID, record.FieldIdentifier)
}

func documentContent(record models.FieldRecord) string {
	return fmt.Sprintf("# %s\n\nCategory: %s\nUser: %d\n\n%s\n", record.FieldIdentifier, record.Category, record.UserID, record.Content)
}
