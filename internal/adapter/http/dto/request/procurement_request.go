package request

import (
	"encoding/json"

	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase"
)

type MemoCreateRequest struct {
	Subject       string  `json:"subject" binding:"required"`
	Justification string  `json:"justification" binding:"required"`
	EstimatedCost float64 `json:"estimated_cost"`
}

func (r MemoCreateRequest) ToInput() usecase.MemoInput {
	return usecase.MemoInput{
		Subject:       r.Subject,
		Justification: r.Justification,
		EstimatedCost: r.EstimatedCost,
	}
}

type MemoUpdateRequest struct {
	Subject       *string  `json:"subject"`
	Justification *string  `json:"justification"`
	EstimatedCost *float64 `json:"estimated_cost"`
	Status        *string  `json:"status"`
}

func (r MemoUpdateRequest) ToPatch() usecase.MemoPatch {
	p := usecase.MemoPatch{
		Subject:       r.Subject,
		Justification: r.Justification,
		EstimatedCost: r.EstimatedCost,
	}
	if r.Status != nil {
		s := entities.MemoStatus(*r.Status)
		p.Status = &s
	}
	return p
}

type PurchaseOrderLineRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
}

type PurchaseOrderCreateRequest struct {
	VendorID string                     `json:"vendor_id" binding:"required"`
	MemoID   *string                    `json:"memo_id"`
	Lines    []PurchaseOrderLineRequest `json:"lines" binding:"required"`
}

func (r PurchaseOrderCreateRequest) ToInput() usecase.PurchaseOrderInput {
	return usecase.PurchaseOrderInput{
		VendorID: r.VendorID,
		MemoID:   r.MemoID,
		Lines:    toOrderLines(r.Lines),
	}
}

type PurchaseOrderUpdateRequest struct {
	VendorID *string                    `json:"vendor_id"`
	Lines    []PurchaseOrderLineRequest `json:"lines"`
	Status   *string                    `json:"status"`
}

func (r PurchaseOrderUpdateRequest) ToPatch() usecase.PurchaseOrderPatch {
	p := usecase.PurchaseOrderPatch{VendorID: r.VendorID}
	if r.Lines != nil {
		p.Lines = toOrderLines(r.Lines)
	}
	if r.Status != nil {
		s := entities.PurchaseOrderStatus(*r.Status)
		p.Status = &s
	}
	return p
}

func toOrderLines(in []PurchaseOrderLineRequest) []entities.PurchaseOrderLine {
	lines := make([]entities.PurchaseOrderLine, 0, len(in))
	for _, l := range in {
		lines = append(lines, entities.PurchaseOrderLine{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}
	return lines
}

// PaymentCreateRequest is the payload for paying a purchase order.
//
// `provider_payload` is stored as-is (raw JSON) to support varying
// payment provider schemas.
type PaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
