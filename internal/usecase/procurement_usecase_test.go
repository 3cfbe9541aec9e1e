package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"servicedesk/internal/domain/entities"
	mock_interfaces "servicedesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func payableOrder() entities.PurchaseOrder {
	return entities.PurchaseOrder{
		ID:            "po-id-1",
		PONumber:      "PO-001",
		VendorID:      "vendor-1",
		Status:        entities.POStatusApproved,
		TotalAmount:   250.5,
		RequestedByID: "user-1",
		Lines:         []entities.PurchaseOrderLine{{Description: "paper", Quantity: 5, UnitPrice: 50.1}},
	}
}

func TestProcurementUseCase_CreatePurchaseOrder(t *testing.T) {
	t.Run("vendor must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vendors := mock_interfaces.NewMockIVendorRepository(ctrl)
		uc := NewProcurementUseCase(nil, nil, nil, vendors, nil, nil, nil)

		vendors.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Vendor{}, nil)

		_, err := uc.CreatePurchaseOrder(context.Background(), "user-1", PurchaseOrderInput{
			VendorID: "ghost",
			Lines:    []entities.PurchaseOrderLine{{Description: "paper", Quantity: 1, UnitPrice: 10}},
		})
		if !errors.Is(err, ErrVendorNotFound) {
			t.Fatalf("expected ErrVendorNotFound, got %v", err)
		}
	})

	t.Run("memo must be approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vendors := mock_interfaces.NewMockIVendorRepository(ctrl)
		memos := mock_interfaces.NewMockIMemoRepository(ctrl)
		uc := NewProcurementUseCase(memos, nil, nil, vendors, nil, nil, nil)

		vendors.EXPECT().GetByID(gomock.Any(), "vendor-1").Return(entities.Vendor{ID: "vendor-1", Name: "Acme"}, nil)
		memos.EXPECT().GetByMemoNumber(gomock.Any(), "IOM-001").Return(entities.InternalOfficeMemo{
			ID: "memo-1", MemoNumber: "IOM-001", Status: entities.MemoStatusSubmitted,
		}, nil)

		memoKey := "IOM-001"
		_, err := uc.CreatePurchaseOrder(context.Background(), "user-1", PurchaseOrderInput{
			VendorID: "vendor-1",
			MemoID:   &memoKey,
			Lines:    []entities.PurchaseOrderLine{{Description: "paper", Quantity: 1, UnitPrice: 10}},
		})
		if !errors.Is(err, ErrMemoNotApproved) {
			t.Fatalf("expected ErrMemoNotApproved, got %v", err)
		}
	})

	t.Run("total derived from lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vendors := mock_interfaces.NewMockIVendorRepository(ctrl)
		orders := mock_interfaces.NewMockIPurchaseOrderRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewProcurementUseCase(nil, orders, nil, vendors, users, seq, nil)

		vendors.EXPECT().GetByID(gomock.Any(), "vendor-1").Return(entities.Vendor{ID: "vendor-1", Name: "Acme"}, nil).Times(2)
		seq.EXPECT().Next(gomock.Any(), "purchase_order").Return(int64(3), nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
				if po.PONumber != "PO-003" {
					t.Fatalf("expected PO-003, got %s", po.PONumber)
				}
				if po.Status != entities.POStatusDraft {
					t.Fatalf("expected draft status, got %s", po.Status)
				}
				if po.TotalAmount != 320 {
					t.Fatalf("expected derived total 320, got %v", po.TotalAmount)
				}
				return po, nil
			})
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)

		_, err := uc.CreatePurchaseOrder(context.Background(), "user-1", PurchaseOrderInput{
			VendorID: "vendor-1",
			Lines: []entities.PurchaseOrderLine{
				{Description: "paper", Quantity: 4, UnitPrice: 30},
				{Description: "toner", Quantity: 2, UnitPrice: 100},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProcurementUseCase_PayPurchaseOrder(t *testing.T) {
	t.Run("not payable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIPurchaseOrderRepository(ctrl)
		uc := NewProcurementUseCase(nil, orders, nil, nil, nil, nil, nil)

		draft := payableOrder()
		draft.Status = entities.POStatusDraft
		orders.EXPECT().GetByPONumber(gomock.Any(), "PO-001").Return(draft, nil)

		_, err := uc.PayPurchaseOrder(context.Background(), "PO-001", nil)
		if !errors.Is(err, ErrPurchaseOrderNotPayable) {
			t.Fatalf("expected ErrPurchaseOrderNotPayable, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIPurchaseOrderRepository(ctrl)
		uc := NewProcurementUseCase(nil, orders, nil, nil, nil, nil, nil)

		orders.EXPECT().GetByPONumber(gomock.Any(), "PO-001").Return(payableOrder(), nil)

		_, err := uc.PayPurchaseOrder(context.Background(), "PO-001", json.RawMessage("{broken"))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIPurchaseOrderRepository(ctrl)
		uc := NewProcurementUseCase(nil, orders, nil, nil, nil, nil, nil)

		orders.EXPECT().GetByPONumber(gomock.Any(), "PO-001").Return(payableOrder(), nil)

		_, err := uc.PayPurchaseOrder(context.Background(), "PO-001", nil)
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	t.Run("success enriches payload and marks po paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIPurchaseOrderRepository(ctrl)
		payments := mock_interfaces.NewMockIProcurementPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewProcurementUseCase(nil, orders, payments, nil, nil, nil, gateway)

		orders.EXPECT().GetByPONumber(gomock.Any(), "PO-001").Return(payableOrder(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]interface{}
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("gateway payload not json: %v", err)
				}
				if req["external_reference"] != "PO-001" {
					t.Fatalf("expected external_reference PO-001, got %v", req["external_reference"])
				}
				if req["transaction_amount"] != 250.5 {
					t.Fatalf("expected stored total as amount, got %v", req["transaction_amount"])
				}
				return "pay-1", "approved", json.RawMessage(`{"id":"pay-1","status":"approved"}`), nil
			})
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ProcurementPayment) (entities.ProcurementPayment, error) {
				if p.ID != "pay-1" || p.PurchaseOrderID != "po-id-1" {
					t.Fatalf("unexpected payment record: %+v", p)
				}
				if p.Status != entities.PaymentStatusApproved {
					t.Fatalf("expected approved payment, got %s", p.Status)
				}
				return p, nil
			})
		orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
				if po.Status != entities.POStatusPaid {
					t.Fatalf("expected po marked paid, got %s", po.Status)
				}
				return po, nil
			})

		created, err := uc.PayPurchaseOrder(context.Background(), "PO-001", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "pay-1" {
			t.Fatalf("expected payment id pay-1, got %s", created.ID)
		}
	})

	t.Run("caller amount is overwritten", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIPurchaseOrderRepository(ctrl)
		payments := mock_interfaces.NewMockIProcurementPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewProcurementUseCase(nil, orders, payments, nil, nil, nil, gateway)

		orders.EXPECT().GetByPONumber(gomock.Any(), "PO-001").Return(payableOrder(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]interface{}
				_ = json.Unmarshal(payload, &req)
				if req["transaction_amount"] != 250.5 {
					t.Fatalf("caller-supplied amount must be replaced, got %v", req["transaction_amount"])
				}
				return "pay-2", "approved", json.RawMessage(`{"id":"pay-2"}`), nil
			})
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ProcurementPayment) (entities.ProcurementPayment, error) { return p, nil })
		orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) { return po, nil })

		if _, err := uc.PayPurchaseOrder(context.Background(), "PO-001", json.RawMessage(`{"transaction_amount":1}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProcurementUseCase_ListPayments(t *testing.T) {
	t.Run("no payments yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIPurchaseOrderRepository(ctrl)
		payments := mock_interfaces.NewMockIProcurementPaymentRepository(ctrl)
		uc := NewProcurementUseCase(nil, orders, payments, nil, nil, nil, nil)

		orders.EXPECT().GetByPONumber(gomock.Any(), "PO-001").Return(payableOrder(), nil)
		payments.EXPECT().ListByPurchaseOrderID(gomock.Any(), "po-id-1").Return(nil, nil)

		_, err := uc.ListPayments(context.Background(), "PO-001")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestProcurementUseCase_UpdateMemo(t *testing.T) {
	t.Run("approve records actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		memos := mock_interfaces.NewMockIMemoRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewProcurementUseCase(memos, nil, nil, nil, users, nil, nil)

		memos.EXPECT().GetByMemoNumber(gomock.Any(), "IOM-001").Return(entities.InternalOfficeMemo{
			ID: "memo-1", MemoNumber: "IOM-001", Status: entities.MemoStatusSubmitted, RequestedByID: "user-1",
		}, nil)
		memos.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.InternalOfficeMemo) (entities.InternalOfficeMemo, error) {
				if m.Status != entities.MemoStatusApproved {
					t.Fatalf("expected approved, got %s", m.Status)
				}
				if m.ApprovedByID == nil || *m.ApprovedByID != "manager-1" {
					t.Fatalf("expected approver recorded, got %v", m.ApprovedByID)
				}
				return m, nil
			})
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "manager-1").Return(entities.User{ID: "manager-1"}, nil)

		status := entities.MemoStatusApproved
		_, err := uc.UpdateMemo(context.Background(), "IOM-001", "manager-1", MemoPatch{Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		memos := mock_interfaces.NewMockIMemoRepository(ctrl)
		uc := NewProcurementUseCase(memos, nil, nil, nil, nil, nil, nil)

		memos.EXPECT().GetByMemoNumber(gomock.Any(), "IOM-001").Return(entities.InternalOfficeMemo{
			ID: "memo-1", Status: entities.MemoStatusDraft,
		}, nil)

		status := entities.MemoStatusApproved
		_, err := uc.UpdateMemo(context.Background(), "IOM-001", "manager-1", MemoPatch{Status: &status})
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})
}
