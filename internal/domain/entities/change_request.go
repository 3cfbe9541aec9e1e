package entities

import "time"

// ChangeRequestStatus follows the same forward-only discipline as service
// requests: draft work is submitted, dispositioned, executed and closed out.
type ChangeRequestStatus string

const (
	ChangeStatusDraft      ChangeRequestStatus = "draft"
	ChangeStatusSubmitted  ChangeRequestStatus = "submitted"
	ChangeStatusApproved   ChangeRequestStatus = "approved"
	ChangeStatusRejected   ChangeRequestStatus = "rejected"
	ChangeStatusInProgress ChangeRequestStatus = "in_progress"
	ChangeStatusCompleted  ChangeRequestStatus = "completed"
	ChangeStatusCancelled  ChangeRequestStatus = "cancelled"
)

var changeRequestTransitions = map[ChangeRequestStatus][]ChangeRequestStatus{
	ChangeStatusDraft:      {ChangeStatusSubmitted, ChangeStatusCancelled},
	ChangeStatusSubmitted:  {ChangeStatusApproved, ChangeStatusRejected, ChangeStatusCancelled},
	ChangeStatusApproved:   {ChangeStatusInProgress, ChangeStatusCancelled},
	ChangeStatusInProgress: {ChangeStatusCompleted, ChangeStatusCancelled},
	ChangeStatusRejected:   {},
	ChangeStatusCompleted:  {},
	ChangeStatusCancelled:  {},
}

func (s ChangeRequestStatus) Valid() bool {
	_, ok := changeRequestTransitions[s]
	return ok
}

func (s ChangeRequestStatus) CanTransitionTo(next ChangeRequestStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range changeRequestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type ChangeImpact string

const (
	ChangeImpactLow    ChangeImpact = "low"
	ChangeImpactMedium ChangeImpact = "medium"
	ChangeImpactHigh   ChangeImpact = "high"
)

func (i ChangeImpact) Valid() bool {
	switch i {
	case ChangeImpactLow, ChangeImpactMedium, ChangeImpactHigh:
		return true
	}
	return false
}

// ChangeRequest is a proposed modification to the IT environment.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//   - change_id ("CHG-001") sequence-assigned, immutable.
type ChangeRequest struct {
	ID            string              `json:"id"`
	ChangeID      string              `json:"change_id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Reason        string              `json:"reason"`
	Impact        ChangeImpact        `json:"impact"`
	Status        ChangeRequestStatus `json:"status"`
	RequestedByID string              `json:"requested_by_id"`
	ApprovedByID  *string             `json:"approved_by_id,omitempty"`
	ScheduledFor  *time.Time          `json:"scheduled_for,omitempty"`
	CompletedAt   *time.Time          `json:"completed_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type ChangeRequestView struct {
	ChangeRequest
	RequestedBy UserRef  `json:"requested_by"`
	ApprovedBy  *UserRef `json:"approved_by,omitempty"`
}
