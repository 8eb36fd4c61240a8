package models

import (
	"time"
)

// MasterDataItem is one entry of a controlled vocabulary: a single value
// inside an admin-editable category such as "zone" or "furnishing".
// Values populate the choice fields of the property form.
type MasterDataItem struct {
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	ID           string    `json:"id"`
	Category     string    `json:"category"`
	Value        string    `json:"value"`
	DisplayOrder int       `json:"displayOrder"`
	IsActive     bool      `json:"isActive"`
}

// TableName returns the backing relation for master data entries.
func (MasterDataItem) TableName() string {
	return "master_data"
}
