package handlers

import (
	"errors"
	"net/http"
	"time"

	apierrors "github.com/genx-realty/console/api/internal/errors"
	"github.com/genx-realty/console/api/internal/middleware"
	"github.com/genx-realty/console/api/internal/models"
	"github.com/genx-realty/console/api/internal/schema"
	"github.com/genx-realty/console/api/internal/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PropertyHandler handles property-record HTTP requests.
type PropertyHandler struct {
	service services.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler instance.
func NewPropertyHandler(service services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		service: service,
	}
}

// PropertyFormRequest is one property submission exactly as the form posts
// it: every scalar field raw text, multi-selects as string lists, the
// featured flag as a boolean. Coercion to typed values happens in the
// schema pass, not in binding.
type PropertyFormRequest struct {
	PropertyType          string   `json:"property_type"`
	PropertyTitle         string   `json:"property_title"`
	TransactionType       string   `json:"transaction_type"`
	Project               string   `json:"project"`
	Zone                  string   `json:"zone"`
	Address               string   `json:"address"`
	AvailabilityStatus    string   `json:"availability_status"`
	SizeSqm               string   `json:"size_sqm"`
	Bedrooms              string   `json:"bedrooms"`
	Bathrooms             string   `json:"bathrooms"`
	Floors                string   `json:"floors"`
	FloorNumber           string   `json:"floor_number"`
	Furnishing            string   `json:"furnishing"`
	YearBuilt             string   `json:"year_built"`
	Orientation           string   `json:"orientation"`
	View                  string   `json:"view"`
	ParkingAvailability   string   `json:"parking_availability"`
	PetPolicy             string   `json:"pet_policy"`
	PriceVND              string   `json:"price_vnd"`
	MaintenanceFee        string   `json:"maintenance_fee"`
	ContractTerms         string   `json:"contract_terms"`
	DepositTerms          string   `json:"deposit_terms"`
	AvailableFrom         string   `json:"available_from"`
	AutoExpiryDate        string   `json:"auto_expiry_date"`
	Description           string   `json:"description"`
	IsFeatured            bool     `json:"is_featured"`
	LandlordName          string   `json:"landlord_name"`
	LandlordPhone         string   `json:"landlord_phone"`
	LandlordEmail         string   `json:"landlord_email"`
	OwnerType             string   `json:"owner_type"`
	LandlordNotes         string   `json:"landlord_notes"`
	ConsultantName        string   `json:"consultant_name"`
	ConsultantPhone       string   `json:"consultant_phone"`
	ConsultantEmail       string   `json:"consultant_email"`
	InternalNotes         string   `json:"internal_notes"`
	LandUseType           string   `json:"land_use_type"`
	Incentives            string   `json:"incentives"`
	DeveloperName         string   `json:"developer_name"`
	ProjectCompletionYear string   `json:"project_completion_year"`
	OldRefNo              string   `json:"old_ref_no"`
	BankInfo              string   `json:"bank_info"`
	CurrencyToggle        string   `json:"currency_toggle"`
	MultiLanguageSupport  string   `json:"multi_language_support"`
	FloorPlanURL          string   `json:"floor_plan_url"`
	PropertyVideoURL      string   `json:"property_video_url"`
	Amenities             []string `json:"amenities"`
	NearbyAmenities       []string `json:"nearby_amenities"`
	UtilitiesIncluded     []string `json:"utilities_included"`
	ProjectFacilities     []string `json:"project_facilities"`
	PropertyImages        []string `json:"property_images"`
	PropertyDocuments     []string `json:"property_documents"`
}

// toInput converts the request into the schema coercion input.
func (r *PropertyFormRequest) toInput() schema.Input {
	return schema.Input{
		Values: map[string]string{
			"property_type":           r.PropertyType,
			"property_title":          r.PropertyTitle,
			"transaction_type":        r.TransactionType,
			"project":                 r.Project,
			"zone":                    r.Zone,
			"address":                 r.Address,
			"availability_status":     r.AvailabilityStatus,
			"size_sqm":                r.SizeSqm,
			"bedrooms":                r.Bedrooms,
			"bathrooms":               r.Bathrooms,
			"floors":                  r.Floors,
			"floor_number":            r.FloorNumber,
			"furnishing":              r.Furnishing,
			"year_built":              r.YearBuilt,
			"orientation":             r.Orientation,
			"view":                    r.View,
			"parking_availability":    r.ParkingAvailability,
			"pet_policy":              r.PetPolicy,
			"price_vnd":               r.PriceVND,
			"maintenance_fee":         r.MaintenanceFee,
			"contract_terms":          r.ContractTerms,
			"deposit_terms":           r.DepositTerms,
			"available_from":          r.AvailableFrom,
			"auto_expiry_date":        r.AutoExpiryDate,
			"description":             r.Description,
			"landlord_name":           r.LandlordName,
			"landlord_phone":          r.LandlordPhone,
			"landlord_email":          r.LandlordEmail,
			"owner_type":              r.OwnerType,
			"landlord_notes":          r.LandlordNotes,
			"consultant_name":         r.ConsultantName,
			"consultant_phone":        r.ConsultantPhone,
			"consultant_email":        r.ConsultantEmail,
			"internal_notes":          r.InternalNotes,
			"land_use_type":           r.LandUseType,
			"incentives":              r.Incentives,
			"developer_name":          r.DeveloperName,
			"project_completion_year": r.ProjectCompletionYear,
			"old_ref_no":              r.OldRefNo,
			"bank_info":               r.BankInfo,
			"currency_toggle":         r.CurrencyToggle,
			"multi_language_support":  r.MultiLanguageSupport,
			"floor_plan_url":          r.FloorPlanURL,
			"property_video_url":      r.PropertyVideoURL,
		},
		Lists: map[string][]string{
			"amenities":          r.Amenities,
			"nearby_amenities":   r.NearbyAmenities,
			"utilities_included": r.UtilitiesIncluded,
			"project_facilities": r.ProjectFacilities,
			"property_images":    r.PropertyImages,
			"property_documents": r.PropertyDocuments,
		},
		Flags: map[string]bool{
			"is_featured": r.IsFeatured,
		},
	}
}

// PropertyCard is the listing DTO: the fields the property grid renders,
// with prices pre-formatted for display. Absent numerics are omitted
// rather than rendered as zero.
type PropertyCard struct {
	ID                 string     `json:"id"`
	PropertyID         string     `json:"property_id"`
	PropertyTitle      string     `json:"property_title"`
	PropertyType       string     `json:"property_type,omitempty"`
	Address            string     `json:"address,omitempty"`
	AvailabilityStatus string     `json:"availability_status,omitempty"`
	Bedrooms           *int       `json:"bedrooms,omitempty"`
	Bathrooms          *int       `json:"bathrooms,omitempty"`
	SizeSqm            *float64   `json:"size_sqm,omitempty"`
	PriceVND           *float64   `json:"price_vnd,omitempty"`
	PriceDisplay       string     `json:"price_display,omitempty"`
	PricePerSqm        *float64   `json:"price_per_sqm,omitempty"`
	PricePerSqmDisplay string     `json:"price_per_sqm_display,omitempty"`
	IsFeatured         bool       `json:"is_featured"`
	DateListed         *time.Time `json:"date_listed,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// ListResponse represents the response for the property list endpoint.
type ListResponse struct {
	Properties []PropertyCard `json:"properties"`
	Count      int            `json:"count"`
}

// CreateResponse represents the response for a successful submission.
type CreateResponse struct {
	Property   *models.Property `json:"property"`
	PropertyID string           `json:"property_id"`
}

// vndPrinter renders amounts with Vietnamese digit grouping.
var vndPrinter = message.NewPrinter(language.Vietnamese)

// formatVND renders an amount as Vietnamese đồng for display.
func formatVND(amount float64) string {
	return vndPrinter.Sprintf("%v ₫", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// Create handles POST /api/v1/properties.
// It runs the submission pipeline and returns the stored record together
// with its generated property ID.
func (h *PropertyHandler) Create(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req PropertyFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	userID := middleware.GetUserID(c)

	if log != nil {
		log.Info("Processing property submission", map[string]interface{}{
			"property_type": req.PropertyType,
		})
	}

	property, err := h.service.CreateProperty(c.Request.Context(), userID, req.toInput())
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrNotAuthenticated):
			apierrors.Unauthorized(c, "Not authenticated")
		case errors.As(err, &validationErr):
			apierrors.ValidationReport(c, validationErr.Problems)
		default:
			apierrors.InternalServerError(c, "Failed to create property", err)
		}
		return
	}

	c.JSON(http.StatusCreated, CreateResponse{
		Property:   property,
		PropertyID: property.PropertyID,
	})
}

// List handles GET /api/v1/properties.
// It returns every record newest first, as listing cards.
func (h *PropertyHandler) List(c *gin.Context) {
	properties, err := h.service.ListProperties(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to load properties", err)
		return
	}

	cards := make([]PropertyCard, 0, len(properties))
	for i := range properties {
		cards = append(cards, mapPropertyToCard(&properties[i]))
	}

	c.JSON(http.StatusOK, ListResponse{
		Properties: cards,
		Count:      len(cards),
	})
}

// Get handles GET /api/v1/properties/:id.
// It returns one full record by row identity.
func (h *PropertyHandler) Get(c *gin.Context) {
	property, err := h.service.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			apierrors.NotFound(c, "Property not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to load property", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": property})
}

// mapPropertyToCard converts a stored record to its listing DTO, handling
// nil pointer fields and formatting monetary amounts.
func mapPropertyToCard(p *models.Property) PropertyCard {
	card := PropertyCard{
		ID:            p.ID,
		PropertyID:    p.PropertyID,
		PropertyTitle: p.PropertyTitle,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		SizeSqm:       p.SizeSqm,
		PriceVND:      p.PriceVND,
		PricePerSqm:   p.PricePerSqm,
		IsFeatured:    p.IsFeatured,
		DateListed:    p.DateListed,
		CreatedAt:     p.CreatedAt,
	}

	if p.PropertyType != nil {
		card.PropertyType = *p.PropertyType
	}
	if p.Address != nil {
		card.Address = *p.Address
	}
	if p.AvailabilityStatus != nil {
		card.AvailabilityStatus = *p.AvailabilityStatus
	}
	if p.PriceVND != nil {
		card.PriceDisplay = formatVND(*p.PriceVND)
	}
	if p.PricePerSqm != nil {
		card.PricePerSqmDisplay = formatVND(*p.PricePerSqm)
	}

	return card
}
