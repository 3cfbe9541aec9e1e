package entities

import "time"

// ServiceRequestStatus represents the lifecycle of a service request.
//
// Domain notes:
//   - The service-desk API is the source of truth for request state.
//   - Transitions are forward-only; closed and cancelled are terminal.
//     The one backward edge is resolved -> in_progress (reopen before closure).
type ServiceRequestStatus string

const (
	RequestStatusNew             ServiceRequestStatus = "new"
	RequestStatusInProgress      ServiceRequestStatus = "in_progress"
	RequestStatusPendingApproval ServiceRequestStatus = "pending_approval"
	RequestStatusResolved        ServiceRequestStatus = "resolved"
	RequestStatusClosed          ServiceRequestStatus = "closed"
	RequestStatusCancelled       ServiceRequestStatus = "cancelled"
)

type ServiceRequestCategory string

const (
	RequestCategorySoftware    ServiceRequestCategory = "software"
	RequestCategoryHardware    ServiceRequestCategory = "hardware"
	RequestCategoryAccount     ServiceRequestCategory = "account"
	RequestCategoryNetwork     ServiceRequestCategory = "network"
	RequestCategoryInformation ServiceRequestCategory = "information"
	RequestCategoryOther       ServiceRequestCategory = "other"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var serviceRequestTransitions = map[ServiceRequestStatus][]ServiceRequestStatus{
	RequestStatusNew:             {RequestStatusInProgress, RequestStatusPendingApproval, RequestStatusCancelled},
	RequestStatusInProgress:      {RequestStatusPendingApproval, RequestStatusResolved, RequestStatusCancelled},
	RequestStatusPendingApproval: {RequestStatusInProgress, RequestStatusResolved, RequestStatusCancelled},
	RequestStatusResolved:        {RequestStatusClosed, RequestStatusInProgress},
	RequestStatusClosed:          {},
	RequestStatusCancelled:       {},
}

func (s ServiceRequestStatus) Valid() bool {
	_, ok := serviceRequestTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle
// step. Setting the same status again is always allowed (idempotent patch).
func (s ServiceRequestStatus) CanTransitionTo(next ServiceRequestStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range serviceRequestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ServiceRequestStatus) Terminal() bool {
	return len(serviceRequestTransitions[s]) == 0 && s.Valid()
}

func (c ServiceRequestCategory) Valid() bool {
	switch c {
	case RequestCategorySoftware, RequestCategoryHardware, RequestCategoryAccount,
		RequestCategoryNetwork, RequestCategoryInformation, RequestCategoryOther:
		return true
	}
	return false
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities for the `ordering=priority` list parameter.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// ServiceRequest is a ticket raised by a requester.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//   - request_id ("SR-001") is the human-readable external key, assigned
//     once from an atomic sequence and never reused or renumbered.
//
// resolved_at is non-nil only while status is resolved or closed; the
// server, not the client, maintains it.
type ServiceRequest struct {
	ID              string                 `json:"id"`
	RequestID       string                 `json:"request_id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Category        ServiceRequestCategory `json:"category"`
	Priority        Priority               `json:"priority"`
	Status          ServiceRequestStatus   `json:"status"`
	RequestedByID   string                 `json:"requested_by_id"`
	AssignedToID    *string                `json:"assigned_to_id,omitempty"`
	ResolutionNotes *string                `json:"resolution_notes,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	ResolvedAt      *time.Time             `json:"resolved_at,omitempty"`
}

// ServiceRequestView is the read model with user references expanded.
type ServiceRequestView struct {
	ServiceRequest
	RequestedBy UserRef  `json:"requested_by"`
	AssignedTo  *UserRef `json:"assigned_to,omitempty"`
}
