package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCatalogCategoryNotFound = errors.New("catalog category not found")
	ErrCatalogItemNotFound     = errors.New("catalog item not found")
	ErrInvalidCatalogInput     = errors.New("invalid catalog input")
)

type CatalogCategoryInput struct {
	Name         string
	Description  string
	DisplayOrder int
}

type CatalogItemInput struct {
	Name                string
	ShortDescription    string
	Description         string
	CategoryID          *string
	Status              entities.CatalogItemStatus
	FulfillmentSLAHours int
}

type CatalogItemPatch struct {
	Name                *string
	ShortDescription    *string
	Description         *string
	CategoryID          *string
	Status              *entities.CatalogItemStatus
	FulfillmentSLAHours *int
}

type CatalogItemListQuery struct {
	Filter   interfaces.CatalogItemFilter
	Search   string
	Ordering string
	Page     PageParams
}

type CatalogItemPage struct {
	Results []entities.CatalogItemView
	Count   int
}

// ICatalogUseCase manages the service catalog: browse categories and the
// orderable items beneath them.
type ICatalogUseCase interface {
	CreateCategory(ctx context.Context, input CatalogCategoryInput) (entities.CatalogCategory, error)
	GetCategory(ctx context.Context, id string) (entities.CatalogCategory, error)
	ListCategories(ctx context.Context, page PageParams) ([]entities.CatalogCategory, int, error)
	UpdateCategory(ctx context.Context, id string, name, description *string, displayOrder *int) (entities.CatalogCategory, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateItem(ctx context.Context, input CatalogItemInput) (entities.CatalogItemView, error)
	GetItemByKey(ctx context.Context, key string) (entities.CatalogItemView, error)
	ListItems(ctx context.Context, query CatalogItemListQuery) (CatalogItemPage, error)
	UpdateItem(ctx context.Context, key string, patch CatalogItemPatch) (entities.CatalogItemView, error)
	DeleteItem(ctx context.Context, key string) error
}

type CatalogUseCase struct {
	categories interfaces.ICatalogCategoryRepository
	items      interfaces.ICatalogItemRepository
	seq        interfaces.ISequenceRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(categories interfaces.ICatalogCategoryRepository, items interfaces.ICatalogItemRepository, seq interfaces.ISequenceRepository) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, items: items, seq: seq}
}

func (u *CatalogUseCase) CreateCategory(ctx context.Context, input CatalogCategoryInput) (entities.CatalogCategory, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return entities.CatalogCategory{}, ErrInvalidCatalogInput
	}
	existing, err := u.categories.GetByName(ctx, input.Name)
	if err != nil {
		return entities.CatalogCategory{}, err
	}
	if existing.ID != "" {
		return entities.CatalogCategory{}, ErrLookupNameTaken
	}

	now := time.Now().UTC()
	return u.categories.Create(ctx, entities.CatalogCategory{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Description:  strings.TrimSpace(input.Description),
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (u *CatalogUseCase) GetCategory(ctx context.Context, id string) (entities.CatalogCategory, error) {
	c, err := u.categories.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.CatalogCategory{}, err
	}
	if c.ID == "" {
		return entities.CatalogCategory{}, ErrCatalogCategoryNotFound
	}
	return c, nil
}

func (u *CatalogUseCase) ListCategories(ctx context.Context, page PageParams) ([]entities.CatalogCategory, int, error) {
	all, err := u.categories.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].DisplayOrder != all[j].DisplayOrder {
			return all[i].DisplayOrder < all[j].DisplayOrder
		}
		return all[i].Name < all[j].Name
	})
	items, count := paginate(all, page)
	return items, count, nil
}

func (u *CatalogUseCase) UpdateCategory(ctx context.Context, id string, name, description *string, displayOrder *int) (entities.CatalogCategory, error) {
	c, err := u.GetCategory(ctx, id)
	if err != nil {
		return entities.CatalogCategory{}, err
	}
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return entities.CatalogCategory{}, ErrInvalidCatalogInput
		}
		if n != c.Name {
			existing, err := u.categories.GetByName(ctx, n)
			if err != nil {
				return entities.CatalogCategory{}, err
			}
			if existing.ID != "" && existing.ID != c.ID {
				return entities.CatalogCategory{}, ErrLookupNameTaken
			}
		}
		c.Name = n
	}
	if description != nil {
		c.Description = strings.TrimSpace(*description)
	}
	if displayOrder != nil {
		c.DisplayOrder = *displayOrder
	}
	c.UpdatedAt = time.Now().UTC()
	updated, err := u.categories.Update(ctx, c)
	if err != nil {
		return entities.CatalogCategory{}, err
	}
	if updated.ID == "" {
		return entities.CatalogCategory{}, ErrCatalogCategoryNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	deleted, err := u.categories.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCatalogCategoryNotFound
	}
	return nil
}

func (u *CatalogUseCase) CreateItem(ctx context.Context, input CatalogItemInput) (entities.CatalogItemView, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || input.FulfillmentSLAHours < 0 {
		return entities.CatalogItemView{}, ErrInvalidCatalogInput
	}
	if input.Status == "" {
		input.Status = entities.CatalogItemStatusActive
	}
	if !input.Status.Valid() {
		return entities.CatalogItemView{}, ErrInvalidCatalogInput
	}
	if input.CategoryID != nil && *input.CategoryID != "" {
		if _, err := u.GetCategory(ctx, *input.CategoryID); err != nil {
			return entities.CatalogItemView{}, err
		}
	}

	n, err := u.seq.Next(ctx, seqCatalogItem)
	if err != nil {
		return entities.CatalogItemView{}, err
	}

	now := time.Now().UTC()
	it := entities.CatalogItem{
		ID:                  uuid.NewString(),
		ItemNumber:          formatRecordNumber("SVC", n),
		Name:                input.Name,
		ShortDescription:    strings.TrimSpace(input.ShortDescription),
		Description:         strings.TrimSpace(input.Description),
		CategoryID:          input.CategoryID,
		Status:              input.Status,
		FulfillmentSLAHours: input.FulfillmentSLAHours,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	created, err := u.items.Create(ctx, it)
	if err != nil {
		return entities.CatalogItemView{}, err
	}
	return u.itemView(ctx, created)
}

func (u *CatalogUseCase) GetItemByKey(ctx context.Context, key string) (entities.CatalogItemView, error) {
	it, err := u.getItemByKey(ctx, key)
	if err != nil {
		return entities.CatalogItemView{}, err
	}
	return u.itemView(ctx, it)
}

func (u *CatalogUseCase) ListItems(ctx context.Context, query CatalogItemListQuery) (CatalogItemPage, error) {
	all, err := u.items.List(ctx, query.Filter)
	if err != nil {
		return CatalogItemPage{}, err
	}

	if search := strings.ToLower(strings.TrimSpace(query.Search)); search != "" {
		matched := all[:0]
		for _, it := range all {
			if strings.Contains(strings.ToLower(it.Name), search) ||
				strings.Contains(strings.ToLower(it.ShortDescription), search) ||
				strings.Contains(strings.ToLower(it.Description), search) {
				matched = append(matched, it)
			}
		}
		all = matched
	}

	if err := sortCatalogItems(all, query.Ordering); err != nil {
		return CatalogItemPage{}, err
	}

	pageItems, count := paginate(all, query.Page)

	views := make([]entities.CatalogItemView, 0, len(pageItems))
	for _, it := range pageItems {
		v, err := u.itemView(ctx, it)
		if err != nil {
			return CatalogItemPage{}, err
		}
		views = append(views, v)
	}
	return CatalogItemPage{Results: views, Count: count}, nil
}

func (u *CatalogUseCase) UpdateItem(ctx context.Context, key string, patch CatalogItemPatch) (entities.CatalogItemView, error) {
	it, err := u.getItemByKey(ctx, key)
	if err != nil {
		return entities.CatalogItemView{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.CatalogItemView{}, ErrInvalidCatalogInput
		}
		it.Name = name
	}
	if patch.ShortDescription != nil {
		it.ShortDescription = strings.TrimSpace(*patch.ShortDescription)
	}
	if patch.Description != nil {
		it.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.CategoryID != nil {
		if *patch.CategoryID == "" {
			it.CategoryID = nil
		} else {
			if _, err := u.GetCategory(ctx, *patch.CategoryID); err != nil {
				return entities.CatalogItemView{}, err
			}
			id := *patch.CategoryID
			it.CategoryID = &id
		}
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return entities.CatalogItemView{}, ErrInvalidCatalogInput
		}
		it.Status = *patch.Status
	}
	if patch.FulfillmentSLAHours != nil {
		if *patch.FulfillmentSLAHours < 0 {
			return entities.CatalogItemView{}, ErrInvalidCatalogInput
		}
		it.FulfillmentSLAHours = *patch.FulfillmentSLAHours
	}

	it.UpdatedAt = time.Now().UTC()
	updated, err := u.items.Update(ctx, it)
	if err != nil {
		return entities.CatalogItemView{}, err
	}
	if updated.ID == "" {
		return entities.CatalogItemView{}, ErrCatalogItemNotFound
	}
	return u.itemView(ctx, updated)
}

func (u *CatalogUseCase) DeleteItem(ctx context.Context, key string) error {
	it, err := u.getItemByKey(ctx, key)
	if err != nil {
		return err
	}
	deleted, err := u.items.Delete(ctx, it.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCatalogItemNotFound
	}
	return nil
}

func (u *CatalogUseCase) getItemByKey(ctx context.Context, key string) (entities.CatalogItem, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.CatalogItem{}, ErrCatalogItemNotFound
	}

	var (
		it  entities.CatalogItem
		err error
	)
	if strings.HasPrefix(key, "SVC-") {
		it, err = u.items.GetByItemNumber(ctx, key)
	} else {
		it, err = u.items.GetByID(ctx, key)
	}
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if it.ID == "" {
		return entities.CatalogItem{}, ErrCatalogItemNotFound
	}
	return it, nil
}

func (u *CatalogUseCase) itemView(ctx context.Context, it entities.CatalogItem) (entities.CatalogItemView, error) {
	view := entities.CatalogItemView{CatalogItem: it}
	if it.CategoryID != nil && *it.CategoryID != "" {
		c, err := u.categories.GetByID(ctx, *it.CategoryID)
		if err != nil {
			return entities.CatalogItemView{}, err
		}
		ref := c.Ref()
		if c.ID == "" {
			ref = entities.CategoryRef{ID: *it.CategoryID}
		}
		view.Category = &ref
	}
	return view, nil
}

func sortCatalogItems(items []entities.CatalogItem, ordering string) error {
	ordering = strings.TrimSpace(ordering)
	if ordering == "" {
		ordering = "name"
	}
	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")

	var less func(a, b entities.CatalogItem) bool
	switch field {
	case "name":
		less = func(a, b entities.CatalogItem) bool { return a.Name < b.Name }
	case "created_at":
		less = func(a, b entities.CatalogItem) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "item_number":
		less = func(a, b entities.CatalogItem) bool { return a.ItemNumber < b.ItemNumber }
	default:
		return ErrInvalidOrdering
	}

	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
	return nil
}
