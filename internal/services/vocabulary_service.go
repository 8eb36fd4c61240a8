package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/genx-realty/console/api/internal/logger"
	"github.com/genx-realty/console/api/internal/metrics"
	"github.com/genx-realty/console/api/internal/models"
	"github.com/genx-realty/console/api/internal/repository"
	"github.com/genx-realty/console/api/internal/schema"
)

// Service-level errors
var (
	ErrUnknownCategory = errors.New("unknown vocabulary category")
	ErrBlankValue      = errors.New("value must not be blank")
	ErrDuplicateValue  = errors.New("value already exists in this category")
	ErrEntryNotFound   = errors.New("master data entry not found")
)

// VocabularyService defines the business logic over controlled vocabularies.
type VocabularyService interface {
	// ListCategory returns the entries of one fixed category, ordered by
	// display order. Returns ErrUnknownCategory for a category outside the
	// fixed set.
	ListCategory(ctx context.Context, category string, activeOnly bool) ([]models.MasterDataItem, error)

	// FormOptions returns the active entries of every category in one
	// call, grouped by category. This backs the property form's choice
	// fields.
	FormOptions(ctx context.Context) (map[string][]models.MasterDataItem, error)

	// Append adds a value to the end of a category. Blank or
	// whitespace-only values are rejected with ErrBlankValue before any
	// store call. Duplicates within a category return ErrDuplicateValue.
	Append(ctx context.Context, category, value string) (*models.MasterDataItem, error)

	// Remove deletes exactly one entry by identity.
	// Returns ErrEntryNotFound when the identity is unknown.
	Remove(ctx context.Context, id string) error
}

// vocabularyService is the concrete implementation of VocabularyService.
type vocabularyService struct {
	repo    repository.MasterDataRepository
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewVocabularyService creates a new instance of VocabularyService.
func NewVocabularyService(repo repository.MasterDataRepository, log *logger.Logger, m *metrics.Metrics) VocabularyService {
	return &vocabularyService{
		repo:    repo,
		log:     log,
		metrics: m,
	}
}

func (s *vocabularyService) ListCategory(ctx context.Context, category string, activeOnly bool) ([]models.MasterDataItem, error) {
	if !schema.ValidCategory(category) {
		s.log.Warn("Unknown vocabulary category requested", map[string]interface{}{
			"category": category,
		})
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	items, err := s.repo.ListByCategory(ctx, category, activeOnly)
	if err != nil {
		s.log.Error("Failed to list vocabulary category", err, map[string]interface{}{
			"category": category,
		})
		return nil, fmt.Errorf("failed to list category: %w", err)
	}

	return items, nil
}

func (s *vocabularyService) FormOptions(ctx context.Context) (map[string][]models.MasterDataItem, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		s.log.Error("Failed to load form options", err, nil)
		return nil, fmt.Errorf("failed to load form options: %w", err)
	}

	options := make(map[string][]models.MasterDataItem, len(schema.Categories()))
	for _, category := range schema.Categories() {
		options[category] = []models.MasterDataItem{}
	}
	for _, item := range items {
		options[item.Category] = append(options[item.Category], item)
	}

	return options, nil
}

func (s *vocabularyService) Append(ctx context.Context, category, value string) (*models.MasterDataItem, error) {
	if !schema.ValidCategory(category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	// Local validation; a blank value never reaches the store.
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ErrBlankValue
	}

	item, err := s.repo.Append(ctx, category, value)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateValue) {
			s.log.Warn("Duplicate vocabulary value rejected", map[string]interface{}{
				"category": category,
				"value":    value,
			})
			return nil, ErrDuplicateValue
		}
		s.log.Error("Failed to append vocabulary value", err, map[string]interface{}{
			"category": category,
			"value":    value,
		})
		return nil, fmt.Errorf("failed to append value: %w", err)
	}

	s.metrics.VocabularyMutations.WithLabelValues("append").Inc()
	s.log.Info("Vocabulary value added", map[string]interface{}{
		"category":      item.Category,
		"value":         item.Value,
		"display_order": item.DisplayOrder,
	})

	return item, nil
}

func (s *vocabularyService) Remove(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete vocabulary entry", err, map[string]interface{}{
			"id": id,
		})
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if !deleted {
		return ErrEntryNotFound
	}

	s.metrics.VocabularyMutations.WithLabelValues("delete").Inc()
	s.log.Info("Vocabulary entry deleted", map[string]interface{}{
		"id": id,
	})

	return nil
}
