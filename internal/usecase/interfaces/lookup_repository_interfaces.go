package interfaces

import (
	"context"

	"servicedesk/internal/domain/entities"
)

type ICategoryRepository interface {
	Create(ctx context.Context, c entities.Category) (entities.Category, error)
	GetByID(ctx context.Context, id string) (entities.Category, error)
	GetByName(ctx context.Context, name string) (entities.Category, error)
	List(ctx context.Context) ([]entities.Category, error)
	Update(ctx context.Context, c entities.Category) (entities.Category, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ILocationRepository interface {
	Create(ctx context.Context, l entities.Location) (entities.Location, error)
	GetByID(ctx context.Context, id string) (entities.Location, error)
	GetByName(ctx context.Context, name string) (entities.Location, error)
	List(ctx context.Context) ([]entities.Location, error)
	Update(ctx context.Context, l entities.Location) (entities.Location, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type IVendorRepository interface {
	Create(ctx context.Context, v entities.Vendor) (entities.Vendor, error)
	GetByID(ctx context.Context, id string) (entities.Vendor, error)
	GetByName(ctx context.Context, name string) (entities.Vendor, error)
	List(ctx context.Context) ([]entities.Vendor, error)
	Update(ctx context.Context, v entities.Vendor) (entities.Vendor, error)
	Delete(ctx context.Context, id string) (bool, error)
}
