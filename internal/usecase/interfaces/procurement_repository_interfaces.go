package interfaces

import (
	"context"

	"servicedesk/internal/domain/entities"
)

type PurchaseOrderFilter struct {
	Status        entities.PurchaseOrderStatus
	VendorID      string
	RequestedByID string
}

type IPurchaseOrderRepository interface {
	Create(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error)
	GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error)
	GetByPONumber(ctx context.Context, poNumber string) (entities.PurchaseOrder, error)
	List(ctx context.Context, filter PurchaseOrderFilter) ([]entities.PurchaseOrder, error)
	Update(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type MemoFilter struct {
	Status        entities.MemoStatus
	RequestedByID string
}

type IMemoRepository interface {
	Create(ctx context.Context, m entities.InternalOfficeMemo) (entities.InternalOfficeMemo, error)
	GetByID(ctx context.Context, id string) (entities.InternalOfficeMemo, error)
	GetByMemoNumber(ctx context.Context, memoNumber string) (entities.InternalOfficeMemo, error)
	List(ctx context.Context, filter MemoFilter) ([]entities.InternalOfficeMemo, error)
	Update(ctx context.Context, m entities.InternalOfficeMemo) (entities.InternalOfficeMemo, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IProcurementPaymentRepository persists payments executed against
// purchase orders.
type IProcurementPaymentRepository interface {
	Create(ctx context.Context, p entities.ProcurementPayment) (entities.ProcurementPayment, error)
	GetByID(ctx context.Context, id string) (entities.ProcurementPayment, error)
	ListByPurchaseOrderID(ctx context.Context, poID string) ([]entities.ProcurementPayment, error)
}
