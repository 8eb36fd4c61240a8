package models

import (
	"time"
)

// Property is one listing record. The column set mirrors the properties
// relation one-to-one; it is intentionally wide and flat because the form
// that produces it binds one input per column.
// All nullable columns use pointers to distinguish zero values from NULL.
type Property struct {
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
	DateListed            *time.Time `json:"dateListed,omitempty"`
	AvailableFrom         *time.Time `json:"availableFrom,omitempty"`
	AutoExpiryDate        *time.Time `json:"autoExpiryDate,omitempty"`
	PropertyType          *string    `json:"propertyType,omitempty"`
	TransactionType       *string    `json:"transactionType,omitempty"`
	Project               *string    `json:"project,omitempty"`
	Zone                  *string    `json:"zone,omitempty"`
	Address               *string    `json:"address,omitempty"`
	AvailabilityStatus    *string    `json:"availabilityStatus,omitempty"`
	Furnishing            *string    `json:"furnishing,omitempty"`
	Orientation           *string    `json:"orientation,omitempty"`
	View                  *string    `json:"view,omitempty"`
	ParkingAvailability   *string    `json:"parkingAvailability,omitempty"`
	PetPolicy             *string    `json:"petPolicy,omitempty"`
	OwnerType             *string    `json:"ownerType,omitempty"`
	LandUseType           *string    `json:"landUseType,omitempty"`
	ContractTerms         *string    `json:"contractTerms,omitempty"`
	DepositTerms          *string    `json:"depositTerms,omitempty"`
	Description           *string    `json:"description,omitempty"`
	LandlordName          *string    `json:"landlordName,omitempty"`
	LandlordPhone         *string    `json:"landlordPhone,omitempty"`
	LandlordEmail         *string    `json:"landlordEmail,omitempty"`
	LandlordNotes         *string    `json:"landlordNotes,omitempty"`
	ConsultantName        *string    `json:"consultantName,omitempty"`
	ConsultantPhone       *string    `json:"consultantPhone,omitempty"`
	ConsultantEmail       *string    `json:"consultantEmail,omitempty"`
	InternalNotes         *string    `json:"internalNotes,omitempty"`
	Incentives            *string    `json:"incentives,omitempty"`
	DeveloperName         *string    `json:"developerName,omitempty"`
	OldRefNo              *string    `json:"oldRefNo,omitempty"`
	BankInfo              *string    `json:"bankInfo,omitempty"`
	CurrencyToggle        *string    `json:"currencyToggle,omitempty"`
	MultiLanguageSupport  *string    `json:"multiLanguageSupport,omitempty"`
	FloorPlanURL          *string    `json:"floorPlanUrl,omitempty"`
	PropertyVideoURL      *string    `json:"propertyVideoUrl,omitempty"`
	CreatedBy             *string    `json:"createdBy,omitempty"`
	SizeSqm               *float64   `json:"sizeSqm,omitempty"`
	PriceVND              *float64   `json:"priceVnd,omitempty"`
	PricePerSqm           *float64   `json:"pricePerSqm,omitempty"`
	MaintenanceFee        *float64   `json:"maintenanceFee,omitempty"`
	Bedrooms              *int       `json:"bedrooms,omitempty"`
	Bathrooms             *int       `json:"bathrooms,omitempty"`
	Floors                *int       `json:"floors,omitempty"`
	FloorNumber           *int       `json:"floorNumber,omitempty"`
	YearBuilt             *int       `json:"yearBuilt,omitempty"`
	ProjectCompletionYear *int       `json:"projectCompletionYear,omitempty"`
	Amenities             []string   `json:"amenities,omitempty"`
	NearbyAmenities       []string   `json:"nearbyAmenities,omitempty"`
	UtilitiesIncluded     []string   `json:"utilitiesIncluded,omitempty"`
	ProjectFacilities     []string   `json:"projectFacilities,omitempty"`
	PropertyImages        []string   `json:"propertyImages,omitempty"`
	PropertyDocuments     []string   `json:"propertyDocuments,omitempty"`
	ID                    string     `json:"id"`
	PropertyID            string     `json:"propertyId"`
	PropertyTitle         string     `json:"propertyTitle"`
	IsFeatured            bool       `json:"isFeatured"`
}

// TableName returns the backing relation for property records.
func (Property) TableName() string {
	return "properties"
}
