package interfaces

import (
	"context"

	"servicedesk/internal/domain/entities"
)

type ICatalogCategoryRepository interface {
	Create(ctx context.Context, c entities.CatalogCategory) (entities.CatalogCategory, error)
	GetByID(ctx context.Context, id string) (entities.CatalogCategory, error)
	GetByName(ctx context.Context, name string) (entities.CatalogCategory, error)
	List(ctx context.Context) ([]entities.CatalogCategory, error)
	Update(ctx context.Context, c entities.CatalogCategory) (entities.CatalogCategory, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type CatalogItemFilter struct {
	Status     entities.CatalogItemStatus
	CategoryID string
}

type ICatalogItemRepository interface {
	Create(ctx context.Context, it entities.CatalogItem) (entities.CatalogItem, error)
	GetByID(ctx context.Context, id string) (entities.CatalogItem, error)
	GetByItemNumber(ctx context.Context, itemNumber string) (entities.CatalogItem, error)
	List(ctx context.Context, filter CatalogItemFilter) ([]entities.CatalogItem, error)
	Update(ctx context.Context, it entities.CatalogItem) (entities.CatalogItem, error)
	Delete(ctx context.Context, id string) (bool, error)
}
