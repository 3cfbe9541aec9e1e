package entities

import "time"

type AssetStatus string

const (
	AssetStatusInStock     AssetStatus = "in_stock"
	AssetStatusInUse       AssetStatus = "in_use"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusRetired     AssetStatus = "retired"
	AssetStatusDisposed    AssetStatus = "disposed"
)

func (s AssetStatus) Valid() bool {
	switch s {
	case AssetStatusInStock, AssetStatusInUse, AssetStatusMaintenance,
		AssetStatusRetired, AssetStatusDisposed:
		return true
	}
	return false
}

// Asset is a tracked piece of IT equipment.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//   - asset_tag ("AST-001") is the human-readable label, sequence-assigned.
//
// Reference fields hold bare ids; read responses expand them into
// CategoryRef/LocationRef/VendorRef/UserRef objects (AssetView).
type Asset struct {
	ID           string      `json:"id"`
	AssetTag     string      `json:"asset_tag"`
	Name         string      `json:"name"`
	SerialNumber string      `json:"serial_number"`
	Status       AssetStatus `json:"status"`
	CategoryID   *string     `json:"category_id,omitempty"`
	LocationID   *string     `json:"location_id,omitempty"`
	VendorID     *string     `json:"vendor_id,omitempty"`
	AssignedToID *string     `json:"assigned_to_id,omitempty"`
	PurchaseDate *time.Time  `json:"purchase_date,omitempty"`
	PurchaseCost float64     `json:"purchase_cost"`
	Notes        string      `json:"notes"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type AssetView struct {
	Asset
	Category   *CategoryRef `json:"category,omitempty"`
	Location   *LocationRef `json:"location,omitempty"`
	Vendor     *VendorRef   `json:"vendor,omitempty"`
	AssignedTo *UserRef     `json:"assigned_to,omitempty"`
}
