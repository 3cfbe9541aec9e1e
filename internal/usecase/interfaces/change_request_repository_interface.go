package interfaces

import (
	"context"

	"servicedesk/internal/domain/entities"
)

type ChangeRequestFilter struct {
	Status        entities.ChangeRequestStatus
	Impact        entities.ChangeImpact
	RequestedByID string
}

type IChangeRequestRepository interface {
	Create(ctx context.Context, cr entities.ChangeRequest) (entities.ChangeRequest, error)
	GetByID(ctx context.Context, id string) (entities.ChangeRequest, error)
	GetByChangeID(ctx context.Context, changeID string) (entities.ChangeRequest, error)
	List(ctx context.Context, filter ChangeRequestFilter) ([]entities.ChangeRequest, error)
	Update(ctx context.Context, cr entities.ChangeRequest) (entities.ChangeRequest, error)
	Delete(ctx context.Context, id string) (bool, error)
}
