package interfaces

import (
	"context"

	"servicedesk/internal/domain/entities"
)

type AssetFilter struct {
	Status       entities.AssetStatus
	CategoryID   string
	LocationID   string
	VendorID     string
	AssignedToID string
}

type IAssetRepository interface {
	Create(ctx context.Context, a entities.Asset) (entities.Asset, error)
	GetByID(ctx context.Context, id string) (entities.Asset, error)
	GetByTag(ctx context.Context, tag string) (entities.Asset, error)
	List(ctx context.Context, filter AssetFilter) ([]entities.Asset, error)
	Update(ctx context.Context, a entities.Asset) (entities.Asset, error)
	Delete(ctx context.Context, id string) (bool, error)
}
