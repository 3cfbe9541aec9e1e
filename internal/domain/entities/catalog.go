package entities

import "time"

// CatalogCategory groups service catalog items for browsing.
type CatalogCategory struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c CatalogCategory) Ref() CategoryRef {
	return CategoryRef{ID: c.ID, Name: c.Name}
}

type CatalogItemStatus string

const (
	CatalogItemStatusActive   CatalogItemStatus = "active"
	CatalogItemStatusInactive CatalogItemStatus = "inactive"
	CatalogItemStatusRetired  CatalogItemStatus = "retired"
)

func (s CatalogItemStatus) Valid() bool {
	switch s {
	case CatalogItemStatusActive, CatalogItemStatusInactive, CatalogItemStatusRetired:
		return true
	}
	return false
}

// CatalogItem is an orderable entry in the service catalog.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//   - item_number ("SVC-001") sequence-assigned, immutable.
type CatalogItem struct {
	ID                  string            `json:"id"`
	ItemNumber          string            `json:"item_number"`
	Name                string            `json:"name"`
	ShortDescription    string            `json:"short_description"`
	Description         string            `json:"description"`
	CategoryID          *string           `json:"category_id,omitempty"`
	Status              CatalogItemStatus `json:"status"`
	FulfillmentSLAHours int               `json:"fulfillment_sla_hours"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

type CatalogItemView struct {
	CatalogItem
	Category *CategoryRef `json:"category,omitempty"`
}
