package request

import (
	"time"

	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase"
)

type ChangeRequestCreateRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description" binding:"required"`
	Reason       string     `json:"reason"`
	Impact       string     `json:"impact"`
	ScheduledFor *time.Time `json:"scheduled_for"`
}

func (r ChangeRequestCreateRequest) ToInput() usecase.CreateChangeRequestInput {
	return usecase.CreateChangeRequestInput{
		Title:        r.Title,
		Description:  r.Description,
		Reason:       r.Reason,
		Impact:       entities.ChangeImpact(r.Impact),
		ScheduledFor: r.ScheduledFor,
	}
}

type ChangeRequestUpdateRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Reason       *string    `json:"reason"`
	Impact       *string    `json:"impact"`
	Status       *string    `json:"status"`
	ScheduledFor *time.Time `json:"scheduled_for"`
}

func (r ChangeRequestUpdateRequest) ToPatch() usecase.ChangeRequestPatch {
	p := usecase.ChangeRequestPatch{
		Title:        r.Title,
		Description:  r.Description,
		Reason:       r.Reason,
		ScheduledFor: r.ScheduledFor,
	}
	if r.Impact != nil {
		i := entities.ChangeImpact(*r.Impact)
		p.Impact = &i
	}
	if r.Status != nil {
		s := entities.ChangeRequestStatus(*r.Status)
		p.Status = &s
	}
	return p
}
