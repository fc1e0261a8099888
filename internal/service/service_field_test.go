package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/mock"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
	"github.com/MKhiriev/idea-brand-coach/internal/validators"
	"github.com/MKhiriev/idea-brand-coach/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errStorage = errors.New("storage error")

// ── fieldService ─────────────────────────────────────────────────────────────

func TestFieldService_Upsert_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockFieldRepository(ctrl)
	svc := NewFieldService(repo, logger.Nop())

	upsert := models.FieldUpsert{UserID: 1, FieldIdentifier: "avatar_goals", Category: models.CategoryAvatar, Content: "grow"}
	repo.EXPECT().UpsertCurrent(gomock.Any(), upsert).Return(models.FieldRecord{ID: "r1", Content: "grow", IsCurrent: true}, nil)

	record, err := svc.Upsert(context.Background(), upsert)
	require.NoError(t, err)
	assert.Equal(t, "r1", record.ID)
}

func TestFieldService_Upsert_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockFieldRepository(ctrl)
	svc := NewFieldService(repo, logger.Nop())

	repo.EXPECT().UpsertCurrent(gomock.Any(), gomock.Any()).Return(models.FieldRecord{}, errStorage)

	_, err := svc.Upsert(context.Background(), models.FieldUpsert{UserID: 1, FieldIdentifier: "a"})
	assert.ErrorIs(t, err, errStorage)
}

func TestFieldService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockFieldRepository(ctrl)
	svc := NewFieldService(repo, logger.Nop())

	repo.EXPECT().GetCurrent(gomock.Any(), int64(1), "missing").Return(models.FieldRecord{}, store.ErrFieldNotFound)

	_, err := svc.Get(context.Background(), 1, "missing")
	assert.ErrorIs(t, err, store.ErrFieldNotFound)
}

func TestFieldService_List_And_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockFieldRepository(ctrl)
	svc := NewFieldService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().ListCurrent(ctx, int64(1), models.CategoryInsight).Return([]models.FieldRecord{{ID: "a"}, {ID: "b"}}, nil)
	repo.EXPECT().ClearFields(ctx, int64(1)).Return(int64(2), nil)

	records, err := svc.List(ctx, 1, models.CategoryInsight)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	n, err := svc.Clear(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestFieldService_Clear_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockFieldRepository(ctrl)
	svc := NewFieldService(repo, logger.Nop())

	repo.EXPECT().ClearFields(gomock.Any(), int64(1)).Return(int64(0), errStorage)

	_, err := svc.Clear(context.Background(), 1)
	assert.ErrorIs(t, err, errStorage)
}

// ── FieldValidationService ───────────────────────────────────────────────────

func TestFieldValidationService_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockFieldService(ctrl)
	svc := NewFieldValidationService().Wrap(inner)
	ctx := context.Background()

	// inner не должен вызываться ни разу
	_, err := svc.Upsert(ctx, models.FieldUpsert{UserID: 1, FieldIdentifier: "bad id!", Category: models.CategoryInsight})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidFieldIdentifier)

	_, err = svc.Upsert(ctx, models.FieldUpsert{UserID: 1, FieldIdentifier: "ok", Category: "nope"})
	assert.ErrorIs(t, err, validators.ErrInvalidCategory)

	_, err = svc.Get(ctx, 0, "ok")
	assert.ErrorIs(t, err, validators.ErrInvalidUserID)

	_, err = svc.List(ctx, 1, "nope")
	assert.ErrorIs(t, err, validators.ErrInvalidCategory)
}

func TestFieldValidationService_PassesValidRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockFieldService(ctrl)
	svc := NewFieldValidationService().Wrap(inner)
	ctx := context.Background()

	upsert := models.FieldUpsert{UserID: 1, FieldIdentifier: "insight_customer_motivation", Category: models.CategoryInsight, Content: "x"}
	inner.EXPECT().Upsert(ctx, upsert).Return(models.FieldRecord{ID: "r"}, nil)
	inner.EXPECT().Get(ctx, int64(1), "insight_customer_motivation").Return(models.FieldRecord{ID: "r"}, nil)
	inner.EXPECT().List(ctx, int64(1), models.FieldCategory("")).Return(nil, nil)
	inner.EXPECT().Clear(ctx, int64(1)).Return(int64(0), nil)

	_, err := svc.Upsert(ctx, upsert)
	require.NoError(t, err)
	_, err = svc.Get(ctx, 1, "insight_customer_motivation")
	require.NoError(t, err)
	_, err = svc.List(ctx, 1, "")
	require.NoError(t, err)
	_, err = svc.Clear(ctx, 1)
	require.NoError(t, err)
}
