package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/genx-realty/console/api/internal/database"
	"github.com/genx-realty/console/api/internal/models"
	"github.com/jackc/pgx/v5"
)

// PropertyRepository defines data access for property records.
type PropertyRepository interface {
	// GeneratePropertyID invokes the generate_property_id database function
	// for the given property type. Uniqueness of the returned code is the
	// function's responsibility; callers do not re-validate it.
	GeneratePropertyID(ctx context.Context, propertyType string) (string, error)

	// Insert writes one complete property record in a single statement and
	// returns the stored row. There is no partial-write path: either the
	// whole record exists afterwards or nothing does.
	Insert(ctx context.Context, p *models.Property) (*models.Property, error)

	// ListAll returns every property ordered by creation time descending.
	ListAll(ctx context.Context) ([]models.Property, error)

	// FindByID returns one property by its row identity.
	// Returns nil, nil when no such record exists.
	FindByID(ctx context.Context, id string) (*models.Property, error)
}

// propertyRepository is the concrete implementation of PropertyRepository.
type propertyRepository struct {
	db *database.Database
}

// NewPropertyRepository creates a new instance of PropertyRepository.
func NewPropertyRepository(db *database.Database) PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

const propertyColumns = `
	id,
	property_id,
	property_title,
	property_type,
	transaction_type,
	project,
	zone,
	address,
	availability_status,
	size_sqm,
	bedrooms,
	bathrooms,
	floors,
	floor_number,
	furnishing,
	year_built,
	orientation,
	view,
	parking_availability,
	pet_policy,
	price_vnd,
	price_per_sqm,
	maintenance_fee,
	contract_terms,
	deposit_terms,
	available_from,
	auto_expiry_date,
	description,
	is_featured,
	landlord_name,
	landlord_phone,
	landlord_email,
	owner_type,
	landlord_notes,
	consultant_name,
	consultant_phone,
	consultant_email,
	internal_notes,
	land_use_type,
	incentives,
	developer_name,
	project_completion_year,
	old_ref_no,
	bank_info,
	currency_toggle,
	multi_language_support,
	floor_plan_url,
	property_video_url,
	amenities,
	nearby_amenities,
	utilities_included,
	project_facilities,
	property_images,
	property_documents,
	created_by,
	date_listed,
	created_at,
	updated_at`

// scanProperty reads one row in propertyColumns order.
func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	err := row.Scan(
		&p.ID,
		&p.PropertyID,
		&p.PropertyTitle,
		&p.PropertyType,
		&p.TransactionType,
		&p.Project,
		&p.Zone,
		&p.Address,
		&p.AvailabilityStatus,
		&p.SizeSqm,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.Floors,
		&p.FloorNumber,
		&p.Furnishing,
		&p.YearBuilt,
		&p.Orientation,
		&p.View,
		&p.ParkingAvailability,
		&p.PetPolicy,
		&p.PriceVND,
		&p.PricePerSqm,
		&p.MaintenanceFee,
		&p.ContractTerms,
		&p.DepositTerms,
		&p.AvailableFrom,
		&p.AutoExpiryDate,
		&p.Description,
		&p.IsFeatured,
		&p.LandlordName,
		&p.LandlordPhone,
		&p.LandlordEmail,
		&p.OwnerType,
		&p.LandlordNotes,
		&p.ConsultantName,
		&p.ConsultantPhone,
		&p.ConsultantEmail,
		&p.InternalNotes,
		&p.LandUseType,
		&p.Incentives,
		&p.DeveloperName,
		&p.ProjectCompletionYear,
		&p.OldRefNo,
		&p.BankInfo,
		&p.CurrencyToggle,
		&p.MultiLanguageSupport,
		&p.FloorPlanURL,
		&p.PropertyVideoURL,
		&p.Amenities,
		&p.NearbyAmenities,
		&p.UtilitiesIncluded,
		&p.ProjectFacilities,
		&p.PropertyImages,
		&p.PropertyDocuments,
		&p.CreatedBy,
		&p.DateListed,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propertyRepository) GeneratePropertyID(ctx context.Context, propertyType string) (string, error) {
	var propertyID string
	err := r.db.Pool.QueryRow(ctx, `SELECT generate_property_id($1)`, propertyType).Scan(&propertyID)
	if err != nil {
		return "", fmt.Errorf("failed to generate property id for type %q: %w", propertyType, err)
	}
	return propertyID, nil
}

func (r *propertyRepository) Insert(ctx context.Context, p *models.Property) (*models.Property, error) {
	query := `
		INSERT INTO properties (
			property_id,
			property_title,
			property_type,
			transaction_type,
			project,
			zone,
			address,
			availability_status,
			size_sqm,
			bedrooms,
			bathrooms,
			floors,
			floor_number,
			furnishing,
			year_built,
			orientation,
			view,
			parking_availability,
			pet_policy,
			price_vnd,
			price_per_sqm,
			maintenance_fee,
			contract_terms,
			deposit_terms,
			available_from,
			auto_expiry_date,
			description,
			is_featured,
			landlord_name,
			landlord_phone,
			landlord_email,
			owner_type,
			landlord_notes,
			consultant_name,
			consultant_phone,
			consultant_email,
			internal_notes,
			land_use_type,
			incentives,
			developer_name,
			project_completion_year,
			old_ref_no,
			bank_info,
			currency_toggle,
			multi_language_support,
			floor_plan_url,
			property_video_url,
			amenities,
			nearby_amenities,
			utilities_included,
			project_facilities,
			property_images,
			property_documents,
			created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
			$41, $42, $43, $44, $45, $46, $47, $48, $49, $50,
			$51, $52, $53, $54
		)
		RETURNING ` + propertyColumns

	row := r.db.Pool.QueryRow(ctx, query,
		p.PropertyID,
		p.PropertyTitle,
		p.PropertyType,
		p.TransactionType,
		p.Project,
		p.Zone,
		p.Address,
		p.AvailabilityStatus,
		p.SizeSqm,
		p.Bedrooms,
		p.Bathrooms,
		p.Floors,
		p.FloorNumber,
		p.Furnishing,
		p.YearBuilt,
		p.Orientation,
		p.View,
		p.ParkingAvailability,
		p.PetPolicy,
		p.PriceVND,
		p.PricePerSqm,
		p.MaintenanceFee,
		p.ContractTerms,
		p.DepositTerms,
		p.AvailableFrom,
		p.AutoExpiryDate,
		p.Description,
		p.IsFeatured,
		p.LandlordName,
		p.LandlordPhone,
		p.LandlordEmail,
		p.OwnerType,
		p.LandlordNotes,
		p.ConsultantName,
		p.ConsultantPhone,
		p.ConsultantEmail,
		p.InternalNotes,
		p.LandUseType,
		p.Incentives,
		p.DeveloperName,
		p.ProjectCompletionYear,
		p.OldRefNo,
		p.BankInfo,
		p.CurrencyToggle,
		p.MultiLanguageSupport,
		p.FloorPlanURL,
		p.PropertyVideoURL,
		p.Amenities,
		p.NearbyAmenities,
		p.UtilitiesIncluded,
		p.ProjectFacilities,
		p.PropertyImages,
		p.PropertyDocuments,
		p.CreatedBy,
	)

	stored, err := scanProperty(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert property %s: %w", p.PropertyID, err)
	}

	return stored, nil
}

func (r *propertyRepository) ListAll(ctx context.Context) ([]models.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", err)
	}

	return properties, nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id string) (*models.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE id = $1
	`

	p, err := scanProperty(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query property %s: %w", id, err)
	}

	return p, nil
}
