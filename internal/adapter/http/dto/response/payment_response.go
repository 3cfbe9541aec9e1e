package response

import (
	"time"

	"servicedesk/internal/domain/entities"
)

type ProcurementPaymentResponse struct {
	PaymentID       string    `json:"payment_id"`
	ID              string    `json:"id"`
	PurchaseOrderID string    `json:"purchase_order_id"`
	PaymentDate     time.Time `json:"payment_date"`
	Date            time.Time `json:"date"`
	Status          string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromProcurementPayment(p entities.ProcurementPayment) ProcurementPaymentResponse {
	return ProcurementPaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		PurchaseOrderID:    p.PurchaseOrderID,
		PaymentDate:        p.Date,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromProcurementPayments(payments []entities.ProcurementPayment) []ProcurementPaymentResponse {
	out := make([]ProcurementPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromProcurementPayment(p))
	}
	return out
}
