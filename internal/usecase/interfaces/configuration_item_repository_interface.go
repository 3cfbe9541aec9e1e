package interfaces

import (
	"context"

	"servicedesk/internal/domain/entities"
)

type ConfigurationItemFilter struct {
	Type        entities.CIType
	Status      entities.CIStatus
	Environment entities.CIEnvironment
	OwnerID     string
}

type IConfigurationItemRepository interface {
	Create(ctx context.Context, ci entities.ConfigurationItem) (entities.ConfigurationItem, error)
	GetByID(ctx context.Context, id string) (entities.ConfigurationItem, error)
	GetByCINumber(ctx context.Context, ciNumber string) (entities.ConfigurationItem, error)
	List(ctx context.Context, filter ConfigurationItemFilter) ([]entities.ConfigurationItem, error)
	Update(ctx context.Context, ci entities.ConfigurationItem) (entities.ConfigurationItem, error)
	Delete(ctx context.Context, id string) (bool, error)
}
