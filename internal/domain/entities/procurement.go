package entities

import (
	"encoding/json"
	"time"
)

// PurchaseOrderStatus covers the procurement flow from draft to payment.
// `paid` is reached only through the payment gateway path.
type PurchaseOrderStatus string

const (
	POStatusDraft     PurchaseOrderStatus = "draft"
	POStatusSubmitted PurchaseOrderStatus = "submitted"
	POStatusApproved  PurchaseOrderStatus = "approved"
	POStatusRejected  PurchaseOrderStatus = "rejected"
	POStatusOrdered   PurchaseOrderStatus = "ordered"
	POStatusReceived  PurchaseOrderStatus = "received"
	POStatusPaid      PurchaseOrderStatus = "paid"
	POStatusCancelled PurchaseOrderStatus = "cancelled"
)

var purchaseOrderTransitions = map[PurchaseOrderStatus][]PurchaseOrderStatus{
	POStatusDraft:     {POStatusSubmitted, POStatusCancelled},
	POStatusSubmitted: {POStatusApproved, POStatusRejected, POStatusCancelled},
	POStatusApproved:  {POStatusOrdered, POStatusPaid, POStatusCancelled},
	POStatusOrdered:   {POStatusReceived, POStatusPaid, POStatusCancelled},
	POStatusReceived:  {POStatusPaid},
	POStatusRejected:  {},
	POStatusPaid:      {},
	POStatusCancelled: {},
}

func (s PurchaseOrderStatus) Valid() bool {
	_, ok := purchaseOrderTransitions[s]
	return ok
}

func (s PurchaseOrderStatus) CanTransitionTo(next PurchaseOrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range purchaseOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Payable reports whether a payment may be created against the order.
func (s PurchaseOrderStatus) Payable() bool {
	switch s {
	case POStatusApproved, POStatusOrdered, POStatusReceived:
		return true
	}
	return false
}

// PurchaseOrderLine is a single ordered item. Quantity and unit price are
// validated at the usecase boundary; the stored total is derived, never
// accepted from the caller.
type PurchaseOrderLine struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func (l PurchaseOrderLine) Total() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// PurchaseOrder is a procurement order against a vendor.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//   - po_number ("PO-001") sequence-assigned, immutable.
type PurchaseOrder struct {
	ID            string              `json:"id"`
	PONumber      string              `json:"po_number"`
	VendorID      string              `json:"vendor_id"`
	MemoID        *string             `json:"memo_id,omitempty"`
	Lines         []PurchaseOrderLine `json:"lines"`
	TotalAmount   float64             `json:"total_amount"`
	Status        PurchaseOrderStatus `json:"status"`
	RequestedByID string              `json:"requested_by_id"`
	ApprovedByID  *string             `json:"approved_by_id,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func (po PurchaseOrder) ComputedTotal() float64 {
	total := 0.0
	for _, l := range po.Lines {
		if l.Quantity > 0 && l.UnitPrice > 0 {
			total += l.Total()
		}
	}
	return total
}

type PurchaseOrderView struct {
	PurchaseOrder
	Vendor      VendorRef `json:"vendor"`
	RequestedBy UserRef   `json:"requested_by"`
	ApprovedBy  *UserRef  `json:"approved_by,omitempty"`
}

type MemoStatus string

const (
	MemoStatusDraft     MemoStatus = "draft"
	MemoStatusSubmitted MemoStatus = "submitted"
	MemoStatusApproved  MemoStatus = "approved"
	MemoStatusRejected  MemoStatus = "rejected"
)

var memoTransitions = map[MemoStatus][]MemoStatus{
	MemoStatusDraft:     {MemoStatusSubmitted},
	MemoStatusSubmitted: {MemoStatusApproved, MemoStatusRejected},
	MemoStatusApproved:  {},
	MemoStatusRejected:  {},
}

func (s MemoStatus) Valid() bool {
	_, ok := memoTransitions[s]
	return ok
}

func (s MemoStatus) CanTransitionTo(next MemoStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range memoTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// InternalOfficeMemo is a purchase-request memo (IOM): the justification
// document that precedes a purchase order.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//   - memo_number ("IOM-001") sequence-assigned, immutable.
type InternalOfficeMemo struct {
	ID            string     `json:"id"`
	MemoNumber    string     `json:"memo_number"`
	Subject       string     `json:"subject"`
	Justification string     `json:"justification"`
	EstimatedCost float64    `json:"estimated_cost"`
	Status        MemoStatus `json:"status"`
	RequestedByID string     `json:"requested_by_id"`
	ApprovedByID  *string    `json:"approved_by_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type InternalOfficeMemoView struct {
	InternalOfficeMemo
	RequestedBy UserRef  `json:"requested_by"`
	ApprovedBy  *UserRef `json:"approved_by,omitempty"`
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// ProcurementPayment is a payment executed against a purchase order.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (purchase_order_id-index): purchase_order_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging. Both are persisted because provider schemas vary.
type ProcurementPayment struct {
	ID              string        `json:"id"`
	PurchaseOrderID string        `json:"purchase_order_id"`
	Date            time.Time     `json:"date"`
	Status          PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
