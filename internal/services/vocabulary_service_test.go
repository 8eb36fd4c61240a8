package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/genx-realty/console/api/internal/logger"
	"github.com/genx-realty/console/api/internal/metrics"
	"github.com/genx-realty/console/api/internal/models"
	"github.com/genx-realty/console/api/internal/repository"
	"github.com/genx-realty/console/api/internal/schema"
)

// MockMasterDataRepository is a mock implementation of MasterDataRepository for testing
type MockMasterDataRepository struct {
	mock.Mock
}

func (m *MockMasterDataRepository) ListByCategory(ctx context.Context, category string, activeOnly bool) ([]models.MasterDataItem, error) {
	args := m.Called(ctx, category, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MasterDataItem), args.Error(1)
}

func (m *MockMasterDataRepository) ListActive(ctx context.Context) ([]models.MasterDataItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MasterDataItem), args.Error(1)
}

func (m *MockMasterDataRepository) Append(ctx context.Context, category, value string) (*models.MasterDataItem, error) {
	args := m.Called(ctx, category, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MasterDataItem), args.Error(1)
}

func (m *MockMasterDataRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newVocabularyService(repo repository.MasterDataRepository) VocabularyService {
	return NewVocabularyService(repo, logger.New("test"), metrics.New())
}

func TestListCategory_Success(t *testing.T) {
	mockRepo := new(MockMasterDataRepository)
	service := newVocabularyService(mockRepo)
	ctx := context.Background()

	expected := []models.MasterDataItem{
		{ID: "a", Category: schema.CategoryFurnishing, Value: "Furnished", DisplayOrder: 1, IsActive: true},
		{ID: "b", Category: schema.CategoryFurnishing, Value: "Unfurnished", DisplayOrder: 2, IsActive: true},
	}
	mockRepo.On("ListByCategory", ctx, schema.CategoryFurnishing, true).Return(expected, nil)

	items, err := service.ListCategory(ctx, schema.CategoryFurnishing, true)

	require.NoError(t, err)
	assert.Equal(t, expected, items)
	mockRepo.AssertExpectations(t)
}

func TestListCategory_UnknownCategory(t *testing.T) {
	mockRepo := new(MockMasterDataRepository)
	service := newVocabularyService(mockRepo)

	items, err := service.ListCategory(context.Background(), "colour_scheme", false)

	assert.Nil(t, items)
	assert.ErrorIs(t, err, ErrUnknownCategory)
	mockRepo.AssertNotCalled(t, "ListByCategory")
}

func TestFormOptions_GroupsByCategory(t *testing.T) {
	mockRepo := new(MockMasterDataRepository)
	service := newVocabularyService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ListActive", ctx).Return([]models.MasterDataItem{
		{ID: "a", Category: schema.CategoryFurnishing, Value: "Furnished", DisplayOrder: 1, IsActive: true},
		{ID: "b", Category: schema.CategoryAmenity, Value: "Pool", DisplayOrder: 1, IsActive: true},
		{ID: "c", Category: schema.CategoryAmenity, Value: "Gym", DisplayOrder: 2, IsActive: true},
	}, nil)

	options, err := service.FormOptions(ctx)

	require.NoError(t, err)
	// Every fixed category appears, even when empty.
	assert.Len(t, options, len(schema.Categories()))
	assert.Len(t, options[schema.CategoryAmenity], 2)
	assert.Len(t, options[schema.CategoryFurnishing], 1)
	assert.Empty(t, options[schema.CategoryZone])
	mockRepo.AssertExpectations(t)
}

func TestAppend_Success(t *testing.T) {
	mockRepo := new(MockMasterDataRepository)
	service := newVocabularyService(mockRepo)
	ctx := context.Background()

	stored := &models.MasterDataItem{
		ID:           "new-id",
		Category:     schema.CategoryView,
		Value:        "River View",
		DisplayOrder: 7,
		IsActive:     true,
	}
	mockRepo.On("Append", ctx, schema.CategoryView, "River View").Return(stored, nil)

	item, err := service.Append(ctx, schema.CategoryView, "River View")

	require.NoError(t, err)
	assert.Equal(t, stored, item)
	mockRepo.AssertExpectations(t)
}

func TestAppend_TrimsValue(t *testing.T) {
	mockRepo := new(MockMasterDataRepository)
	service := newVocabularyService(mockRepo)
	ctx := context.Background()

	stored := &models.MasterDataItem{ID: "x", Category: schema.CategoryZone, Value: "District 2", DisplayOrder: 1, IsActive: true}
	mockRepo.On("Append", ctx, schema.CategoryZone, "District 2").Return(stored, nil)

	_, err := service.Append(ctx, schema.CategoryZone, "  District 2  ")

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAppend_BlankValueNeverReachesStore(t *testing.T) {
	mockRepo := new(MockMasterDataRepository)
	service := newVocabularyService(mockRepo)

	item, err := service.Append(context.Background(), schema.CategoryZone, "   ")

	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrBlankValue)
	mockRepo.AssertNotCalled(t, "Append")
}

func TestAppend_UnknownCategory(t *testing.T) {
	mockRepo := new(MockMasterDataRepository)
	service := newVocabularyService(mockRepo)

	item, err := service.Append(context.Background(), "colour_scheme", "Blue")

	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrUnknownCategory)
	mockRepo.AssertNotCalled(t, "Append")
}

func TestAppend_Duplicate(t *testing.T) {
	mockRepo := new(MockMasterDataRepository)
	service := newVocabularyService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Append", ctx, schema.CategoryAmenity, "Pool").Return(nil, repository.ErrDuplicateValue)

	item, err := service.Append(ctx, schema.CategoryAmenity, "Pool")

	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrDuplicateValue)
	mockRepo.AssertExpectations(t)
}

func TestRemove_Success(t *testing.T) {
	mockRepo := new(MockMasterDataRepository)
	service := newVocabularyService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, "entry-1").Return(true, nil)

	err := service.Remove(ctx, "entry-1")

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestRemove_NotFound(t *testing.T) {
	mockRepo := new(MockMasterDataRepository)
	service := newVocabularyService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, "missing").Return(false, nil)

	err := service.Remove(ctx, "missing")

	assert.ErrorIs(t, err, ErrEntryNotFound)
	mockRepo.AssertExpectations(t)
}

func TestRemove_RepositoryError(t *testing.T) {
	mockRepo := new(MockMasterDataRepository)
	service := newVocabularyService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, "entry-1").Return(false, errors.New("connection lost"))

	err := service.Remove(ctx, "entry-1")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEntryNotFound)
	mockRepo.AssertExpectations(t)
}
