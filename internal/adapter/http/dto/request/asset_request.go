package request

import (
	"time"

	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase"
)

type AssetCreateRequest struct {
	Name         string     `json:"name" binding:"required"`
	SerialNumber string     `json:"serial_number"`
	Status       string     `json:"status"`
	CategoryID   *string    `json:"category_id"`
	LocationID   *string    `json:"location_id"`
	VendorID     *string    `json:"vendor_id"`
	AssignedToID *string    `json:"assigned_to_id"`
	PurchaseDate *time.Time `json:"purchase_date"`
	PurchaseCost float64    `json:"purchase_cost"`
	Notes        string     `json:"notes"`
}

func (r AssetCreateRequest) ToInput() usecase.AssetInput {
	return usecase.AssetInput{
		Name:         r.Name,
		SerialNumber: r.SerialNumber,
		Status:       entities.AssetStatus(r.Status),
		CategoryID:   r.CategoryID,
		LocationID:   r.LocationID,
		VendorID:     r.VendorID,
		AssignedToID: r.AssignedToID,
		PurchaseDate: r.PurchaseDate,
		PurchaseCost: r.PurchaseCost,
		Notes:        r.Notes,
	}
}

// AssetUpdateRequest carries a partial update; nullable references accept
// an explicit empty string to clear the link.
type AssetUpdateRequest struct {
	Name         *string    `json:"name"`
	SerialNumber *string    `json:"serial_number"`
	Status       *string    `json:"status"`
	CategoryID   *string    `json:"category_id"`
	LocationID   *string    `json:"location_id"`
	VendorID     *string    `json:"vendor_id"`
	AssignedToID *string    `json:"assigned_to_id"`
	PurchaseDate *time.Time `json:"purchase_date"`
	PurchaseCost *float64   `json:"purchase_cost"`
	Notes        *string    `json:"notes"`
}

func (r AssetUpdateRequest) ToPatch() usecase.AssetPatch {
	p := usecase.AssetPatch{
		Name:         r.Name,
		SerialNumber: r.SerialNumber,
		CategoryID:   r.CategoryID,
		LocationID:   r.LocationID,
		VendorID:     r.VendorID,
		AssignedToID: r.AssignedToID,
		PurchaseDate: r.PurchaseDate,
		PurchaseCost: r.PurchaseCost,
		Notes:        r.Notes,
	}
	if r.Status != nil {
		s := entities.AssetStatus(*r.Status)
		p.Status = &s
	}
	return p
}
