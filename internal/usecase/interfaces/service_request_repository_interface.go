package interfaces

import (
	"context"

	"servicedesk/internal/domain/entities"
)

// ServiceRequestFilter holds the equality filters a repository can push
// down into the storage scan. Free-text search, ordering and pagination
// stay in the usecase layer.
type ServiceRequestFilter struct {
	Status        entities.ServiceRequestStatus
	Category      entities.ServiceRequestCategory
	Priority      entities.Priority
	RequestedByID string
	AssignedToID  string
}

// IServiceRequestRepository abstracts DynamoDB persistence for ServiceRequest.
type IServiceRequestRepository interface {
	Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.ServiceRequest, error)
	List(ctx context.Context, filter ServiceRequestFilter) ([]entities.ServiceRequest, error)
	Update(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error)
	Delete(ctx context.Context, id string) (bool, error)
}
