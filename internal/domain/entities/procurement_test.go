package entities

import "testing"

func TestPurchaseOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    PurchaseOrderStatus
		to      PurchaseOrderStatus
		allowed bool
	}{
		{"draft to submitted", POStatusDraft, POStatusSubmitted, true},
		{"draft straight to approved", POStatusDraft, POStatusApproved, false},
		{"submitted to approved", POStatusSubmitted, POStatusApproved, true},
		{"submitted to rejected", POStatusSubmitted, POStatusRejected, true},
		{"approved to ordered", POStatusApproved, POStatusOrdered, true},
		{"approved to paid", POStatusApproved, POStatusPaid, true},
		{"ordered to received", POStatusOrdered, POStatusReceived, true},
		{"received to paid", POStatusReceived, POStatusPaid, true},
		{"received cannot cancel", POStatusReceived, POStatusCancelled, false},
		{"paid is terminal", POStatusPaid, POStatusCancelled, false},
		{"rejected is terminal", POStatusRejected, POStatusSubmitted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
				t.Fatalf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
			}
		})
	}
}

func TestPurchaseOrderStatusPayable(t *testing.T) {
	payable := []PurchaseOrderStatus{POStatusApproved, POStatusOrdered, POStatusReceived}
	for _, s := range payable {
		if !s.Payable() {
			t.Fatalf("expected %s to be payable", s)
		}
	}
	notPayable := []PurchaseOrderStatus{POStatusDraft, POStatusSubmitted, POStatusRejected, POStatusPaid, POStatusCancelled}
	for _, s := range notPayable {
		if s.Payable() {
			t.Fatalf("expected %s to not be payable", s)
		}
	}
}

func TestPurchaseOrderComputedTotal(t *testing.T) {
	po := PurchaseOrder{
		Lines: []PurchaseOrderLine{
			{Description: "laptop", Quantity: 2, UnitPrice: 1500},
			{Description: "dock", Quantity: 4, UnitPrice: 120.5},
		},
	}
	if got := po.ComputedTotal(); got != 3482 {
		t.Fatalf("ComputedTotal() = %v, want 3482", got)
	}
}

func TestMemoStatusTransitions(t *testing.T) {
	if !MemoStatusDraft.CanTransitionTo(MemoStatusSubmitted) {
		t.Fatalf("draft memo must be submittable")
	}
	if !MemoStatusSubmitted.CanTransitionTo(MemoStatusApproved) {
		t.Fatalf("submitted memo must be approvable")
	}
	if !MemoStatusSubmitted.CanTransitionTo(MemoStatusRejected) {
		t.Fatalf("submitted memo must be rejectable")
	}
	if MemoStatusDraft.CanTransitionTo(MemoStatusApproved) {
		t.Fatalf("draft memo must not skip submission")
	}
	if MemoStatusApproved.CanTransitionTo(MemoStatusDraft) {
		t.Fatalf("approved memo must not revert to draft")
	}
}
