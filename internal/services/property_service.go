package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/genx-realty/console/api/internal/logger"
	"github.com/genx-realty/console/api/internal/metrics"
	"github.com/genx-realty/console/api/internal/models"
	"github.com/genx-realty/console/api/internal/repository"
	"github.com/genx-realty/console/api/internal/schema"
)

// Service-level errors
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrPropertyNotFound = errors.New("property not found")
)

// ValidationError carries the coercion report of a rejected submission.
// Nothing is written to the store when this is returned.
type ValidationError struct {
	Problems map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Problems))
}

// PropertyService defines the business logic over property records.
type PropertyService interface {
	// CreateProperty runs the full submission pipeline: coercion,
	// vocabulary membership checks, property-ID generation, and a single
	// atomic insert attributed to userID. The generated ID must be
	// obtained before the insert is attempted; if generation fails, no
	// record is created. Returns *ValidationError when the submission is
	// rejected locally.
	CreateProperty(ctx context.Context, userID string, input schema.Input) (*models.Property, error)

	// ListProperties returns every record, newest first.
	ListProperties(ctx context.Context) ([]models.Property, error)

	// GetProperty returns one record by row identity.
	// Returns ErrPropertyNotFound when no record matches.
	GetProperty(ctx context.Context, id string) (*models.Property, error)
}

// propertyService is the concrete implementation of PropertyService.
type propertyService struct {
	repo    repository.PropertyRepository
	vocab   repository.MasterDataRepository
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewPropertyService creates a new instance of PropertyService.
func NewPropertyService(repo repository.PropertyRepository, vocab repository.MasterDataRepository, log *logger.Logger, m *metrics.Metrics) PropertyService {
	return &propertyService{
		repo:    repo,
		vocab:   vocab,
		log:     log,
		metrics: m,
	}
}

func (s *propertyService) CreateProperty(ctx context.Context, userID string, input schema.Input) (*models.Property, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	fields := schema.Registry()

	// Coercion pass. Required-field misses and parse failures are caught
	// here, before any store access.
	rec, report := schema.Coerce(fields, input)
	if !report.OK() {
		s.log.Warn("Property submission rejected by coercion", map[string]interface{}{
			"problems": report.Problems,
		})
		return nil, &ValidationError{Problems: report.Problems}
	}

	// Enumerated fields must hold values active at submission time.
	active, err := s.activeVocabulary(ctx)
	if err != nil {
		return nil, err
	}
	schema.ValidateChoices(fields, rec, active, &report)
	if !report.OK() {
		s.log.Warn("Property submission rejected by vocabulary check", map[string]interface{}{
			"problems": report.Problems,
		})
		return nil, &ValidationError{Problems: report.Problems}
	}

	// The generated ID is authoritative and must exist strictly before the
	// insert; on failure the whole submission fails with zero writes.
	propertyType := rec.Text["property_type"]
	propertyID, err := s.repo.GeneratePropertyID(ctx, propertyType)
	if err != nil {
		s.log.Error("Property ID generation failed", err, map[string]interface{}{
			"property_type": propertyType,
		})
		return nil, fmt.Errorf("failed to generate property id: %w", err)
	}

	property := buildProperty(rec)
	property.PropertyID = propertyID
	property.CreatedBy = &userID

	stored, err := s.repo.Insert(ctx, property)
	if err != nil {
		s.log.Error("Property insert failed", err, map[string]interface{}{
			"property_id": propertyID,
		})
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	s.metrics.PropertiesCreated.Inc()
	s.log.Info("Property created", map[string]interface{}{
		"property_id": stored.PropertyID,
		"created_by":  userID,
	})

	return stored, nil
}

func (s *propertyService) ListProperties(ctx context.Context) ([]models.Property, error) {
	properties, err := s.repo.ListAll(ctx)
	if err != nil {
		s.log.Error("Failed to list properties", err, nil)
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	s.log.Debug("Properties listed", map[string]interface{}{
		"count": len(properties),
	})

	return properties, nil
}

func (s *propertyService) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to query property", err, map[string]interface{}{
			"id": id,
		})
		return nil, fmt.Errorf("failed to query property: %w", err)
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	return property, nil
}

// activeVocabulary loads the active entries of every category as
// category -> set of values, the shape the choice validation consumes.
func (s *propertyService) activeVocabulary(ctx context.Context) (map[string]map[string]bool, error) {
	items, err := s.vocab.ListActive(ctx)
	if err != nil {
		s.log.Error("Failed to load active vocabulary", err, nil)
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}

	active := make(map[string]map[string]bool)
	for _, item := range items {
		set := active[item.Category]
		if set == nil {
			set = make(map[string]bool)
			active[item.Category] = set
		}
		set[item.Value] = true
	}

	return active, nil
}

// buildProperty maps a coerced record onto the storage model. Absent fields
// stay nil pointers and reach the store as NULL, never as zero.
func buildProperty(rec schema.Record) *models.Property {
	p := &models.Property{
		PropertyTitle:         rec.Text["property_title"],
		IsFeatured:            rec.Booleans["is_featured"],
		PropertyType:          textPtr(rec, "property_type"),
		TransactionType:       textPtr(rec, "transaction_type"),
		Project:               textPtr(rec, "project"),
		Zone:                  textPtr(rec, "zone"),
		Address:               textPtr(rec, "address"),
		AvailabilityStatus:    textPtr(rec, "availability_status"),
		Furnishing:            textPtr(rec, "furnishing"),
		Orientation:           textPtr(rec, "orientation"),
		View:                  textPtr(rec, "view"),
		ParkingAvailability:   textPtr(rec, "parking_availability"),
		PetPolicy:             textPtr(rec, "pet_policy"),
		OwnerType:             textPtr(rec, "owner_type"),
		LandUseType:           textPtr(rec, "land_use_type"),
		ContractTerms:         textPtr(rec, "contract_terms"),
		DepositTerms:          textPtr(rec, "deposit_terms"),
		Description:           textPtr(rec, "description"),
		LandlordName:          textPtr(rec, "landlord_name"),
		LandlordPhone:         textPtr(rec, "landlord_phone"),
		LandlordEmail:         textPtr(rec, "landlord_email"),
		LandlordNotes:         textPtr(rec, "landlord_notes"),
		ConsultantName:        textPtr(rec, "consultant_name"),
		ConsultantPhone:       textPtr(rec, "consultant_phone"),
		ConsultantEmail:       textPtr(rec, "consultant_email"),
		InternalNotes:         textPtr(rec, "internal_notes"),
		Incentives:            textPtr(rec, "incentives"),
		DeveloperName:         textPtr(rec, "developer_name"),
		OldRefNo:              textPtr(rec, "old_ref_no"),
		BankInfo:              textPtr(rec, "bank_info"),
		CurrencyToggle:        textPtr(rec, "currency_toggle"),
		MultiLanguageSupport:  textPtr(rec, "multi_language_support"),
		FloorPlanURL:          textPtr(rec, "floor_plan_url"),
		PropertyVideoURL:      textPtr(rec, "property_video_url"),
		SizeSqm:               numberPtr(rec, "size_sqm"),
		PriceVND:              numberPtr(rec, "price_vnd"),
		MaintenanceFee:        numberPtr(rec, "maintenance_fee"),
		Bedrooms:              integerPtr(rec, "bedrooms"),
		Bathrooms:             integerPtr(rec, "bathrooms"),
		Floors:                integerPtr(rec, "floors"),
		FloorNumber:           integerPtr(rec, "floor_number"),
		YearBuilt:             integerPtr(rec, "year_built"),
		ProjectCompletionYear: integerPtr(rec, "project_completion_year"),
		AvailableFrom:         datePtr(rec, "available_from"),
		AutoExpiryDate:        datePtr(rec, "auto_expiry_date"),
		Amenities:             rec.Lists["amenities"],
		NearbyAmenities:       rec.Lists["nearby_amenities"],
		UtilitiesIncluded:     rec.Lists["utilities_included"],
		ProjectFacilities:     rec.Lists["project_facilities"],
		PropertyImages:        rec.Lists["property_images"],
		PropertyDocuments:     rec.Lists["property_documents"],
	}

	// Unit price is derived at creation when both inputs are present.
	if p.PriceVND != nil && p.SizeSqm != nil && *p.SizeSqm > 0 {
		perSqm := *p.PriceVND / *p.SizeSqm
		p.PricePerSqm = &perSqm
	}

	return p
}

func textPtr(rec schema.Record, name string) *string {
	if v, ok := rec.Text[name]; ok {
		return &v
	}
	return nil
}

func numberPtr(rec schema.Record, name string) *float64 {
	if v, ok := rec.Numbers[name]; ok {
		return &v
	}
	return nil
}

func integerPtr(rec schema.Record, name string) *int {
	if v, ok := rec.Integers[name]; ok {
		return &v
	}
	return nil
}

func datePtr(rec schema.Record, name string) *time.Time {
	if v, ok := rec.Dates[name]; ok {
		return &v
	}
	return nil
}
