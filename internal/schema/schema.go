package schema

// FieldKind declares how a submitted text value is coerced before storage.
type FieldKind int

const (
	KindText FieldKind = iota
	KindInteger
	KindNumber
	KindBoolean
	KindDate
	KindTextArray
)

// String returns the lowercase name of the kind for logs and error details.
func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	case KindTextArray:
		return "text_array"
	default:
		return "unknown"
	}
}

// Field describes one property-form attribute: its storage column name, the
// coercion kind, whether submission requires it, and the vocabulary category
// that constrains it (empty for free fields).
type Field struct {
	Name     string
	Category string
	Kind     FieldKind
	Required bool
}

// Enumerated reports whether the field's value is restricted to a
// controlled vocabulary.
func (f Field) Enumerated() bool {
	return f.Category != ""
}

// Vocabulary categories editable through the master data surface. Category
// names double as the keys the form uses to resolve choice options.
const (
	CategoryProject            = "project"
	CategoryZone               = "zone"
	CategoryTransactionType    = "transaction_type"
	CategoryPropertyType       = "property_type"
	CategoryAvailabilityStatus = "availability_status"
	CategoryFurnishing         = "furnishing"
	CategoryOrientation        = "orientation"
	CategoryView               = "view"
	CategoryPetPolicy          = "pet_policy"
	CategoryOwnerType          = "owner_type"
	CategoryLandUseType        = "land_use_type"
	CategoryAmenity            = "amenity"
	CategoryNearbyAmenity      = "nearby_amenity"
	CategoryUtility            = "utility"
	CategoryProjectFacility    = "project_facility"
	CategoryGalleryCategory    = "gallery_category"
)

// Categories returns the fixed set of vocabulary categories in their
// administrative display order.
func Categories() []string {
	return []string{
		CategoryProject,
		CategoryZone,
		CategoryTransactionType,
		CategoryPropertyType,
		CategoryAvailabilityStatus,
		CategoryFurnishing,
		CategoryOrientation,
		CategoryView,
		CategoryPetPolicy,
		CategoryOwnerType,
		CategoryLandUseType,
		CategoryAmenity,
		CategoryNearbyAmenity,
		CategoryUtility,
		CategoryProjectFacility,
		CategoryGalleryCategory,
	}
}

// ValidCategory reports whether name is one of the fixed categories.
func ValidCategory(name string) bool {
	for _, c := range Categories() {
		if c == name {
			return true
		}
	}
	return false
}

// Registry returns the static property-field catalog: what fields exist,
// independent of which vocabulary choices are currently valid.
func Registry() []Field {
	return []Field{
		{Name: "property_type", Kind: KindText, Required: true, Category: CategoryPropertyType},
		{Name: "property_title", Kind: KindText, Required: true},
		{Name: "transaction_type", Kind: KindText, Category: CategoryTransactionType},
		{Name: "project", Kind: KindText, Category: CategoryProject},
		{Name: "zone", Kind: KindText, Category: CategoryZone},
		{Name: "address", Kind: KindText},
		{Name: "availability_status", Kind: KindText, Category: CategoryAvailabilityStatus},
		{Name: "size_sqm", Kind: KindNumber},
		{Name: "bedrooms", Kind: KindInteger},
		{Name: "bathrooms", Kind: KindInteger},
		{Name: "floors", Kind: KindInteger},
		{Name: "floor_number", Kind: KindInteger},
		{Name: "furnishing", Kind: KindText, Category: CategoryFurnishing},
		{Name: "year_built", Kind: KindInteger},
		{Name: "orientation", Kind: KindText, Category: CategoryOrientation},
		{Name: "view", Kind: KindText, Category: CategoryView},
		{Name: "parking_availability", Kind: KindText},
		{Name: "pet_policy", Kind: KindText, Category: CategoryPetPolicy},
		{Name: "price_vnd", Kind: KindNumber},
		{Name: "maintenance_fee", Kind: KindNumber},
		{Name: "contract_terms", Kind: KindText},
		{Name: "deposit_terms", Kind: KindText},
		{Name: "available_from", Kind: KindDate},
		{Name: "auto_expiry_date", Kind: KindDate},
		{Name: "description", Kind: KindText},
		{Name: "is_featured", Kind: KindBoolean},
		{Name: "landlord_name", Kind: KindText},
		{Name: "landlord_phone", Kind: KindText},
		{Name: "landlord_email", Kind: KindText},
		{Name: "owner_type", Kind: KindText, Category: CategoryOwnerType},
		{Name: "landlord_notes", Kind: KindText},
		{Name: "consultant_name", Kind: KindText},
		{Name: "consultant_phone", Kind: KindText},
		{Name: "consultant_email", Kind: KindText},
		{Name: "internal_notes", Kind: KindText},
		{Name: "land_use_type", Kind: KindText, Category: CategoryLandUseType},
		{Name: "incentives", Kind: KindText},
		{Name: "developer_name", Kind: KindText},
		{Name: "project_completion_year", Kind: KindInteger},
		{Name: "old_ref_no", Kind: KindText},
		{Name: "bank_info", Kind: KindText},
		{Name: "currency_toggle", Kind: KindText},
		{Name: "multi_language_support", Kind: KindText},
		{Name: "floor_plan_url", Kind: KindText},
		{Name: "property_video_url", Kind: KindText},
		{Name: "amenities", Kind: KindTextArray, Category: CategoryAmenity},
		{Name: "nearby_amenities", Kind: KindTextArray, Category: CategoryNearbyAmenity},
		{Name: "utilities_included", Kind: KindTextArray, Category: CategoryUtility},
		{Name: "project_facilities", Kind: KindTextArray, Category: CategoryProjectFacility},
		{Name: "property_images", Kind: KindTextArray},
		{Name: "property_documents", Kind: KindTextArray},
	}
}
