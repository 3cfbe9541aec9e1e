package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMemoNotFound               = errors.New("memo not found")
	ErrPurchaseOrderNotFound      = errors.New("purchase order not found")
	ErrInvalidMemoInput           = errors.New("invalid memo input")
	ErrInvalidPurchaseOrderInput  = errors.New("invalid purchase order input")
	ErrMemoNotApproved            = errors.New("memo not approved")
	ErrPurchaseOrderNotPayable    = errors.New("purchase order not payable")
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrPaymentGatewayUnavailable  = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

type MemoInput struct {
	Subject       string
	Justification string
	EstimatedCost float64
}

type MemoPatch struct {
	Subject       *string
	Justification *string
	EstimatedCost *float64
	Status        *entities.MemoStatus
}

type PurchaseOrderInput struct {
	VendorID string
	MemoID   *string
	Lines    []entities.PurchaseOrderLine
}

type PurchaseOrderPatch struct {
	VendorID *string
	Lines    []entities.PurchaseOrderLine
	Status   *entities.PurchaseOrderStatus
}

type MemoListQuery struct {
	Filter interfaces.MemoFilter
	Search string
	Page   PageParams
}

type MemoPage struct {
	Results []entities.InternalOfficeMemoView
	Count   int
}

type PurchaseOrderListQuery struct {
	Filter interfaces.PurchaseOrderFilter
	Search string
	Page   PageParams
}

type PurchaseOrderPage struct {
	Results []entities.PurchaseOrderView
	Count   int
}

// IProcurementUseCase covers purchase-request memos (IOMs), purchase
// orders and purchase-order payment through the external gateway.
//
// Payment behavior:
//   - Only an approved/ordered/received PO can be paid.
//   - The source of truth for the amount is the PO total in the database,
//     never the caller's payload.
//   - The provider response is persisted raw for audit, and the PO is
//     moved to `paid` when the provider approves.
type IProcurementUseCase interface {
	CreateMemo(ctx context.Context, requestedByID string, input MemoInput) (entities.InternalOfficeMemoView, error)
	GetMemoByKey(ctx context.Context, key string) (entities.InternalOfficeMemoView, error)
	ListMemos(ctx context.Context, query MemoListQuery) (MemoPage, error)
	UpdateMemo(ctx context.Context, key string, actorID string, patch MemoPatch) (entities.InternalOfficeMemoView, error)
	DeleteMemo(ctx context.Context, key string) error

	CreatePurchaseOrder(ctx context.Context, requestedByID string, input PurchaseOrderInput) (entities.PurchaseOrderView, error)
	GetPurchaseOrderByKey(ctx context.Context, key string) (entities.PurchaseOrderView, error)
	ListPurchaseOrders(ctx context.Context, query PurchaseOrderListQuery) (PurchaseOrderPage, error)
	UpdatePurchaseOrder(ctx context.Context, key string, actorID string, patch PurchaseOrderPatch) (entities.PurchaseOrderView, error)
	DeletePurchaseOrder(ctx context.Context, key string) error

	PayPurchaseOrder(ctx context.Context, key string, providerPayload json.RawMessage) (entities.ProcurementPayment, error)
	ListPayments(ctx context.Context, key string) ([]entities.ProcurementPayment, error)
}

type ProcurementUseCase struct {
	memos    interfaces.IMemoRepository
	orders   interfaces.IPurchaseOrderRepository
	payments interfaces.IProcurementPaymentRepository
	vendors  interfaces.IVendorRepository
	users    interfaces.IUserRepository
	seq      interfaces.ISequenceRepository
	gateway  interfaces.IPaymentGateway
}

var _ IProcurementUseCase = (*ProcurementUseCase)(nil)

func NewProcurementUseCase(
	memos interfaces.IMemoRepository,
	orders interfaces.IPurchaseOrderRepository,
	payments interfaces.IProcurementPaymentRepository,
	vendors interfaces.IVendorRepository,
	users interfaces.IUserRepository,
	seq interfaces.ISequenceRepository,
	gateway interfaces.IPaymentGateway,
) *ProcurementUseCase {
	return &ProcurementUseCase{memos: memos, orders: orders, payments: payments, vendors: vendors, users: users, seq: seq, gateway: gateway}
}

func (u *ProcurementUseCase) CreateMemo(ctx context.Context, requestedByID string, input MemoInput) (entities.InternalOfficeMemoView, error) {
	input.Subject = strings.TrimSpace(input.Subject)
	input.Justification = strings.TrimSpace(input.Justification)
	if input.Subject == "" || input.Justification == "" || strings.TrimSpace(requestedByID) == "" {
		return entities.InternalOfficeMemoView{}, ErrInvalidMemoInput
	}
	if input.EstimatedCost < 0 {
		return entities.InternalOfficeMemoView{}, ErrInvalidMemoInput
	}

	n, err := u.seq.Next(ctx, seqMemo)
	if err != nil {
		return entities.InternalOfficeMemoView{}, err
	}

	now := time.Now().UTC()
	m := entities.InternalOfficeMemo{
		ID:            uuid.NewString(),
		MemoNumber:    formatRecordNumber("IOM", n),
		Subject:       input.Subject,
		Justification: input.Justification,
		EstimatedCost: input.EstimatedCost,
		Status:        entities.MemoStatusDraft,
		RequestedByID: requestedByID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.memos.Create(ctx, m)
	if err != nil {
		return entities.InternalOfficeMemoView{}, err
	}
	return u.memoView(ctx, created)
}

func (u *ProcurementUseCase) GetMemoByKey(ctx context.Context, key string) (entities.InternalOfficeMemoView, error) {
	m, err := u.getMemoByKey(ctx, key)
	if err != nil {
		return entities.InternalOfficeMemoView{}, err
	}
	return u.memoView(ctx, m)
}

func (u *ProcurementUseCase) ListMemos(ctx context.Context, query MemoListQuery) (MemoPage, error) {
	all, err := u.memos.List(ctx, query.Filter)
	if err != nil {
		return MemoPage{}, err
	}

	if search := strings.ToLower(strings.TrimSpace(query.Search)); search != "" {
		matched := all[:0]
		for _, m := range all {
			if strings.Contains(strings.ToLower(m.Subject), search) ||
				strings.Contains(strings.ToLower(m.Justification), search) {
				matched = append(matched, m)
			}
		}
		all = matched
	}

	sort.SliceStable(all, func(i, j int) bool { return all[j].CreatedAt.Before(all[i].CreatedAt) })
	pageItems, count := paginate(all, query.Page)

	resolver := newRefResolver(u.users)
	views := make([]entities.InternalOfficeMemoView, 0, len(pageItems))
	for _, m := range pageItems {
		v, err := u.buildMemoView(ctx, resolver, m)
		if err != nil {
			return MemoPage{}, err
		}
		views = append(views, v)
	}
	return MemoPage{Results: views, Count: count}, nil
}

func (u *ProcurementUseCase) UpdateMemo(ctx context.Context, key string, actorID string, patch MemoPatch) (entities.InternalOfficeMemoView, error) {
	m, err := u.getMemoByKey(ctx, key)
	if err != nil {
		return entities.InternalOfficeMemoView{}, err
	}

	if patch.Subject != nil {
		s := strings.TrimSpace(*patch.Subject)
		if s == "" {
			return entities.InternalOfficeMemoView{}, ErrInvalidMemoInput
		}
		m.Subject = s
	}
	if patch.Justification != nil {
		j := strings.TrimSpace(*patch.Justification)
		if j == "" {
			return entities.InternalOfficeMemoView{}, ErrInvalidMemoInput
		}
		m.Justification = j
	}
	if patch.EstimatedCost != nil {
		if *patch.EstimatedCost < 0 {
			return entities.InternalOfficeMemoView{}, ErrInvalidMemoInput
		}
		m.EstimatedCost = *patch.EstimatedCost
	}
	if patch.Status != nil {
		next := *patch.Status
		if !next.Valid() {
			return entities.InternalOfficeMemoView{}, ErrInvalidMemoInput
		}
		if !m.Status.CanTransitionTo(next) {
			return entities.InternalOfficeMemoView{}, ErrIllegalTransition
		}
		if (next == entities.MemoStatusApproved || next == entities.MemoStatusRejected) && m.Status != next {
			actor := strings.TrimSpace(actorID)
			if actor == "" {
				return entities.InternalOfficeMemoView{}, ErrInvalidMemoInput
			}
			m.ApprovedByID = &actor
		}
		m.Status = next
	}

	m.UpdatedAt = time.Now().UTC()
	updated, err := u.memos.Update(ctx, m)
	if err != nil {
		return entities.InternalOfficeMemoView{}, err
	}
	if updated.ID == "" {
		return entities.InternalOfficeMemoView{}, ErrMemoNotFound
	}
	return u.memoView(ctx, updated)
}

func (u *ProcurementUseCase) DeleteMemo(ctx context.Context, key string) error {
	m, err := u.getMemoByKey(ctx, key)
	if err != nil {
		return err
	}
	deleted, err := u.memos.Delete(ctx, m.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMemoNotFound
	}
	return nil
}

func (u *ProcurementUseCase) CreatePurchaseOrder(ctx context.Context, requestedByID string, input PurchaseOrderInput) (entities.PurchaseOrderView, error) {
	input.VendorID = strings.TrimSpace(input.VendorID)
	if input.VendorID == "" || strings.TrimSpace(requestedByID) == "" || len(input.Lines) == 0 {
		return entities.PurchaseOrderView{}, ErrInvalidPurchaseOrderInput
	}
	for _, l := range input.Lines {
		if strings.TrimSpace(l.Description) == "" || l.Quantity <= 0 || l.UnitPrice <= 0 {
			return entities.PurchaseOrderView{}, ErrInvalidPurchaseOrderInput
		}
	}

	vendor, err := u.vendors.GetByID(ctx, input.VendorID)
	if err != nil {
		return entities.PurchaseOrderView{}, err
	}
	if vendor.ID == "" {
		return entities.PurchaseOrderView{}, ErrVendorNotFound
	}

	if input.MemoID != nil && *input.MemoID != "" {
		memo, err := u.getMemoByKey(ctx, *input.MemoID)
		if err != nil {
			return entities.PurchaseOrderView{}, err
		}
		if memo.Status != entities.MemoStatusApproved {
			return entities.PurchaseOrderView{}, ErrMemoNotApproved
		}
		id := memo.ID
		input.MemoID = &id
	}

	n, err := u.seq.Next(ctx, seqPurchaseOrder)
	if err != nil {
		return entities.PurchaseOrderView{}, err
	}

	now := time.Now().UTC()
	po := entities.PurchaseOrder{
		ID:            uuid.NewString(),
		PONumber:      formatRecordNumber("PO", n),
		VendorID:      vendor.ID,
		MemoID:        input.MemoID,
		Lines:         input.Lines,
		Status:        entities.POStatusDraft,
		RequestedByID: requestedByID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	po.TotalAmount = po.ComputedTotal()

	created, err := u.orders.Create(ctx, po)
	if err != nil {
		return entities.PurchaseOrderView{}, err
	}
	log.Printf("[procurement][usecase] created po_number=%s total=%.2f", created.PONumber, created.TotalAmount)
	return u.orderView(ctx, created)
}

func (u *ProcurementUseCase) GetPurchaseOrderByKey(ctx context.Context, key string) (entities.PurchaseOrderView, error) {
	po, err := u.getOrderByKey(ctx, key)
	if err != nil {
		return entities.PurchaseOrderView{}, err
	}
	return u.orderView(ctx, po)
}

func (u *ProcurementUseCase) ListPurchaseOrders(ctx context.Context, query PurchaseOrderListQuery) (PurchaseOrderPage, error) {
	all, err := u.orders.List(ctx, query.Filter)
	if err != nil {
		return PurchaseOrderPage{}, err
	}

	if search := strings.ToLower(strings.TrimSpace(query.Search)); search != "" {
		matched := all[:0]
		for _, po := range all {
			if strings.Contains(strings.ToLower(po.PONumber), search) {
				matched = append(matched, po)
				continue
			}
			for _, l := range po.Lines {
				if strings.Contains(strings.ToLower(l.Description), search) {
					matched = append(matched, po)
					break
				}
			}
		}
		all = matched
	}

	sort.SliceStable(all, func(i, j int) bool { return all[j].CreatedAt.Before(all[i].CreatedAt) })
	pageItems, count := paginate(all, query.Page)

	resolver := newRefResolver(u.users)
	views := make([]entities.PurchaseOrderView, 0, len(pageItems))
	for _, po := range pageItems {
		v, err := u.buildOrderView(ctx, resolver, po)
		if err != nil {
			return PurchaseOrderPage{}, err
		}
		views = append(views, v)
	}
	return PurchaseOrderPage{Results: views, Count: count}, nil
}

func (u *ProcurementUseCase) UpdatePurchaseOrder(ctx context.Context, key string, actorID string, patch PurchaseOrderPatch) (entities.PurchaseOrderView, error) {
	po, err := u.getOrderByKey(ctx, key)
	if err != nil {
		return entities.PurchaseOrderView{}, err
	}

	if patch.VendorID != nil {
		vendorID := strings.TrimSpace(*patch.VendorID)
		if vendorID == "" {
			return entities.PurchaseOrderView{}, ErrInvalidPurchaseOrderInput
		}
		vendor, err := u.vendors.GetByID(ctx, vendorID)
		if err != nil {
			return entities.PurchaseOrderView{}, err
		}
		if vendor.ID == "" {
			return entities.PurchaseOrderView{}, ErrVendorNotFound
		}
		po.VendorID = vendor.ID
	}
	if patch.Lines != nil {
		if len(patch.Lines) == 0 {
			return entities.PurchaseOrderView{}, ErrInvalidPurchaseOrderInput
		}
		for _, l := range patch.Lines {
			if strings.TrimSpace(l.Description) == "" || l.Quantity <= 0 || l.UnitPrice <= 0 {
				return entities.PurchaseOrderView{}, ErrInvalidPurchaseOrderInput
			}
		}
		po.Lines = patch.Lines
		po.TotalAmount = po.ComputedTotal()
	}
	if patch.Status != nil {
		next := *patch.Status
		if !next.Valid() {
			return entities.PurchaseOrderView{}, ErrInvalidPurchaseOrderInput
		}
		if !po.Status.CanTransitionTo(next) {
			return entities.PurchaseOrderView{}, ErrIllegalTransition
		}
		if (next == entities.POStatusApproved || next == entities.POStatusRejected) && po.Status != next {
			actor := strings.TrimSpace(actorID)
			if actor == "" {
				return entities.PurchaseOrderView{}, ErrInvalidPurchaseOrderInput
			}
			po.ApprovedByID = &actor
		}
		po.Status = next
	}

	po.UpdatedAt = time.Now().UTC()
	updated, err := u.orders.Update(ctx, po)
	if err != nil {
		return entities.PurchaseOrderView{}, err
	}
	if updated.ID == "" {
		return entities.PurchaseOrderView{}, ErrPurchaseOrderNotFound
	}
	log.Printf("[procurement][usecase] updated po_number=%s status=%s", updated.PONumber, updated.Status)
	return u.orderView(ctx, updated)
}

func (u *ProcurementUseCase) DeletePurchaseOrder(ctx context.Context, key string) error {
	po, err := u.getOrderByKey(ctx, key)
	if err != nil {
		return err
	}
	deleted, err := u.orders.Delete(ctx, po.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPurchaseOrderNotFound
	}
	return nil
}

// PayPurchaseOrder creates and approves a payment against a payable PO.
// The provider payload travels as raw JSON end to end; the amount and
// external reference are always overwritten from the stored order.
func (u *ProcurementUseCase) PayPurchaseOrder(ctx context.Context, key string, providerPayload json.RawMessage) (entities.ProcurementPayment, error) {
	mockMode := isPaymentGatewayMockEnabled()

	po, err := u.getOrderByKey(ctx, key)
	if err != nil {
		return entities.ProcurementPayment{}, err
	}
	if !po.Status.Payable() {
		log.Printf("[procurement][usecase] po not payable po_number=%s status=%s", po.PONumber, po.Status)
		return entities.ProcurementPayment{}, ErrPurchaseOrderNotPayable
	}

	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	if !json.Valid(providerPayload) {
		if !mockMode {
			return entities.ProcurementPayment{}, ErrInvalidPaymentPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.ProcurementPayment{}, ErrPaymentGatewayUnavailable
	}

	// Enrich the payload so the provider can reconcile against the PO;
	// the stored total is the source of truth for the amount.
	var reqMap map[string]interface{}
	if err := json.Unmarshal(providerPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = po.PONumber
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Purchase order %s", po.PONumber)
		}
		reqMap["transaction_amount"] = po.TotalAmount
		if b, err := json.Marshal(reqMap); err == nil {
			providerPayload = b
		}
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, providerPayload)
	if err != nil {
		log.Printf("[procurement][usecase] payment gateway failed po_number=%s err=%v", po.PONumber, err)
		if isGatewayUnauthorized(err) {
			return entities.ProcurementPayment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.ProcurementPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.ProcurementPayment{}, err
	}
	log.Printf("[procurement][usecase] payment gateway success po_number=%s provider_payment_id=%s provider_status=%s", po.PONumber, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[procurement][usecase] provider response unmarshal failed po_number=%s err=%v", po.PONumber, err)
	}

	p := entities.ProcurementPayment{
		ID:                 providerPaymentID,
		PurchaseOrderID:    po.ID,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.payments.Create(ctx, p)
	if err != nil {
		return entities.ProcurementPayment{}, err
	}

	po.Status = entities.POStatusPaid
	po.UpdatedAt = time.Now().UTC()
	if _, err := u.orders.Update(ctx, po); err != nil {
		// The payment is already persisted; surface the inconsistency
		// rather than silently dropping it.
		log.Printf("[procurement][usecase] po status update failed after payment po_number=%s err=%v", po.PONumber, err)
		return entities.ProcurementPayment{}, err
	}
	return created, nil
}

func (u *ProcurementUseCase) ListPayments(ctx context.Context, key string) ([]entities.ProcurementPayment, error) {
	po, err := u.getOrderByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	payments, err := u.payments.ListByPurchaseOrderID(ctx, po.ID)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, ErrPaymentNotFound
	}
	return payments, nil
}

func (u *ProcurementUseCase) getMemoByKey(ctx context.Context, key string) (entities.InternalOfficeMemo, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.InternalOfficeMemo{}, ErrMemoNotFound
	}

	var (
		m   entities.InternalOfficeMemo
		err error
	)
	if strings.HasPrefix(key, "IOM-") {
		m, err = u.memos.GetByMemoNumber(ctx, key)
	} else {
		m, err = u.memos.GetByID(ctx, key)
	}
	if err != nil {
		return entities.InternalOfficeMemo{}, err
	}
	if m.ID == "" {
		return entities.InternalOfficeMemo{}, ErrMemoNotFound
	}
	return m, nil
}

func (u *ProcurementUseCase) getOrderByKey(ctx context.Context, key string) (entities.PurchaseOrder, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.PurchaseOrder{}, ErrPurchaseOrderNotFound
	}

	var (
		po  entities.PurchaseOrder
		err error
	)
	if strings.HasPrefix(key, "PO-") {
		po, err = u.orders.GetByPONumber(ctx, key)
	} else {
		po, err = u.orders.GetByID(ctx, key)
	}
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if po.ID == "" {
		return entities.PurchaseOrder{}, ErrPurchaseOrderNotFound
	}
	return po, nil
}

func (u *ProcurementUseCase) memoView(ctx context.Context, m entities.InternalOfficeMemo) (entities.InternalOfficeMemoView, error) {
	return u.buildMemoView(ctx, newRefResolver(u.users), m)
}

func (u *ProcurementUseCase) buildMemoView(ctx context.Context, resolver *refResolver, m entities.InternalOfficeMemo) (entities.InternalOfficeMemoView, error) {
	requestedBy, err := resolver.user(ctx, m.RequestedByID)
	if err != nil {
		return entities.InternalOfficeMemoView{}, err
	}
	approvedBy, err := resolver.userPtr(ctx, m.ApprovedByID)
	if err != nil {
		return entities.InternalOfficeMemoView{}, err
	}
	return entities.InternalOfficeMemoView{InternalOfficeMemo: m, RequestedBy: requestedBy, ApprovedBy: approvedBy}, nil
}

func (u *ProcurementUseCase) orderView(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrderView, error) {
	return u.buildOrderView(ctx, newRefResolver(u.users), po)
}

func (u *ProcurementUseCase) buildOrderView(ctx context.Context, resolver *refResolver, po entities.PurchaseOrder) (entities.PurchaseOrderView, error) {
	vendor, err := u.vendors.GetByID(ctx, po.VendorID)
	if err != nil {
		return entities.PurchaseOrderView{}, err
	}
	vendorRef := vendor.Ref()
	if vendor.ID == "" {
		vendorRef = entities.VendorRef{ID: po.VendorID}
	}
	requestedBy, err := resolver.user(ctx, po.RequestedByID)
	if err != nil {
		return entities.PurchaseOrderView{}, err
	}
	approvedBy, err := resolver.userPtr(ctx, po.ApprovedByID)
	if err != nil {
		return entities.PurchaseOrderView{}, err
	}
	return entities.PurchaseOrderView{
		PurchaseOrder: po,
		Vendor:        vendorRef,
		RequestedBy:   requestedBy,
		ApprovedBy:    approvedBy,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayUnauthorized(err error) bool {
	return gatewayErrorHasStatus(err, 401) || gatewayErrorHasStatus(err, 403)
}

func isGatewayBadRequest(err error) bool {
	return gatewayErrorHasStatus(err, 400)
}

// gatewayErrorHasStatus sniffs the provider SDK error text for an HTTP
// status. The SDK does not expose a typed status field, so the string is
// all there is to go on.
func gatewayErrorHasStatus(err error, status int) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "status "+strconv.Itoa(status)) ||
		strings.Contains(s, "status_code="+strconv.Itoa(status)) ||
		strings.Contains(s, strconv.Itoa(status)+" ")
}
