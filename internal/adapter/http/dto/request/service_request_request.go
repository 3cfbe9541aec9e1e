package request

import (
	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase"
)

// ServiceRequestCreateRequest is the write payload for service requests.
// References travel as bare ids; the read side returns expanded objects.
type ServiceRequestCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
}

func (r ServiceRequestCreateRequest) ToInput() usecase.CreateServiceRequestInput {
	return usecase.CreateServiceRequestInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    entities.ServiceRequestCategory(r.Category),
		Priority:    entities.Priority(r.Priority),
	}
}

// ServiceRequestUpdateRequest carries a partial update. Absent fields stay
// untouched; assigned_to_id accepts an explicit empty string to unassign.
type ServiceRequestUpdateRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Category        *string `json:"category"`
	Priority        *string `json:"priority"`
	Status          *string `json:"status"`
	AssignedToID    *string `json:"assigned_to_id"`
	ResolutionNotes *string `json:"resolution_notes"`
}

func (r ServiceRequestUpdateRequest) ToPatch() usecase.ServiceRequestPatch {
	p := usecase.ServiceRequestPatch{
		Title:           r.Title,
		Description:     r.Description,
		AssignedToID:    r.AssignedToID,
		ResolutionNotes: r.ResolutionNotes,
	}
	if r.Category != nil {
		c := entities.ServiceRequestCategory(*r.Category)
		p.Category = &c
	}
	if r.Priority != nil {
		pr := entities.Priority(*r.Priority)
		p.Priority = &pr
	}
	if r.Status != nil {
		s := entities.ServiceRequestStatus(*r.Status)
		p.Status = &s
	}
	return p
}
