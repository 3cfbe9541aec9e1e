package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAssetNotFound     = errors.New("asset not found")
	ErrInvalidAssetInput = errors.New("invalid asset input")
	ErrAssetRefNotFound  = errors.New("referenced record not found")
)

type AssetInput struct {
	Name         string
	SerialNumber string
	Status       entities.AssetStatus
	CategoryID   *string
	LocationID   *string
	VendorID     *string
	AssignedToID *string
	PurchaseDate *time.Time
	PurchaseCost float64
	Notes        string
}

type AssetPatch struct {
	Name         *string
	SerialNumber *string
	Status       *entities.AssetStatus
	CategoryID   *string
	LocationID   *string
	VendorID     *string
	AssignedToID *string
	PurchaseDate *time.Time
	PurchaseCost *float64
	Notes        *string
}

type AssetListQuery struct {
	Filter   interfaces.AssetFilter
	Search   string
	Ordering string
	Page     PageParams
}

type AssetPage struct {
	Results []entities.AssetView
	Count   int
}

type IAssetUseCase interface {
	Create(ctx context.Context, input AssetInput) (entities.AssetView, error)
	GetByKey(ctx context.Context, key string) (entities.AssetView, error)
	List(ctx context.Context, query AssetListQuery) (AssetPage, error)
	Update(ctx context.Context, key string, patch AssetPatch) (entities.AssetView, error)
	Delete(ctx context.Context, key string) error
}

type AssetUseCase struct {
	repo       interfaces.IAssetRepository
	categories interfaces.ICategoryRepository
	locations  interfaces.ILocationRepository
	vendors    interfaces.IVendorRepository
	users      interfaces.IUserRepository
	seq        interfaces.ISequenceRepository
}

var _ IAssetUseCase = (*AssetUseCase)(nil)

func NewAssetUseCase(
	repo interfaces.IAssetRepository,
	categories interfaces.ICategoryRepository,
	locations interfaces.ILocationRepository,
	vendors interfaces.IVendorRepository,
	users interfaces.IUserRepository,
	seq interfaces.ISequenceRepository,
) *AssetUseCase {
	return &AssetUseCase{repo: repo, categories: categories, locations: locations, vendors: vendors, users: users, seq: seq}
}

func (u *AssetUseCase) Create(ctx context.Context, input AssetInput) (entities.AssetView, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return entities.AssetView{}, ErrInvalidAssetInput
	}
	if input.Status == "" {
		input.Status = entities.AssetStatusInStock
	}
	if !input.Status.Valid() || input.PurchaseCost < 0 {
		return entities.AssetView{}, ErrInvalidAssetInput
	}
	if err := u.checkRefs(ctx, input.CategoryID, input.LocationID, input.VendorID, input.AssignedToID); err != nil {
		return entities.AssetView{}, err
	}

	n, err := u.seq.Next(ctx, seqAsset)
	if err != nil {
		return entities.AssetView{}, err
	}

	now := time.Now().UTC()
	a := entities.Asset{
		ID:           uuid.NewString(),
		AssetTag:     formatRecordNumber("AST", n),
		Name:         input.Name,
		SerialNumber: strings.TrimSpace(input.SerialNumber),
		Status:       input.Status,
		CategoryID:   input.CategoryID,
		LocationID:   input.LocationID,
		VendorID:     input.VendorID,
		AssignedToID: input.AssignedToID,
		PurchaseDate: input.PurchaseDate,
		PurchaseCost: input.PurchaseCost,
		Notes:        strings.TrimSpace(input.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.AssetView{}, err
	}
	log.Printf("[asset][usecase] created asset_tag=%s", created.AssetTag)
	return u.view(ctx, created)
}

func (u *AssetUseCase) GetByKey(ctx context.Context, key string) (entities.AssetView, error) {
	a, err := u.getByKey(ctx, key)
	if err != nil {
		return entities.AssetView{}, err
	}
	return u.view(ctx, a)
}

func (u *AssetUseCase) List(ctx context.Context, query AssetListQuery) (AssetPage, error) {
	all, err := u.repo.List(ctx, query.Filter)
	if err != nil {
		return AssetPage{}, err
	}

	if search := strings.ToLower(strings.TrimSpace(query.Search)); search != "" {
		matched := all[:0]
		for _, a := range all {
			if strings.Contains(strings.ToLower(a.Name), search) ||
				strings.Contains(strings.ToLower(a.SerialNumber), search) ||
				strings.Contains(strings.ToLower(a.AssetTag), search) {
				matched = append(matched, a)
			}
		}
		all = matched
	}

	if err := sortAssets(all, query.Ordering); err != nil {
		return AssetPage{}, err
	}

	pageItems, count := paginate(all, query.Page)

	resolver := newRefResolver(u.users).withLookups(u.categories, u.locations, u.vendors)
	views := make([]entities.AssetView, 0, len(pageItems))
	for _, a := range pageItems {
		v, err := u.buildView(ctx, resolver, a)
		if err != nil {
			return AssetPage{}, err
		}
		views = append(views, v)
	}
	return AssetPage{Results: views, Count: count}, nil
}

func (u *AssetUseCase) Update(ctx context.Context, key string, patch AssetPatch) (entities.AssetView, error) {
	a, err := u.getByKey(ctx, key)
	if err != nil {
		return entities.AssetView{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.AssetView{}, ErrInvalidAssetInput
		}
		a.Name = name
	}
	if patch.SerialNumber != nil {
		a.SerialNumber = strings.TrimSpace(*patch.SerialNumber)
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return entities.AssetView{}, ErrInvalidAssetInput
		}
		a.Status = *patch.Status
	}
	a.CategoryID = patchRef(a.CategoryID, patch.CategoryID)
	a.LocationID = patchRef(a.LocationID, patch.LocationID)
	a.VendorID = patchRef(a.VendorID, patch.VendorID)
	a.AssignedToID = patchRef(a.AssignedToID, patch.AssignedToID)
	if err := u.checkRefs(ctx, a.CategoryID, a.LocationID, a.VendorID, a.AssignedToID); err != nil {
		return entities.AssetView{}, err
	}
	if patch.PurchaseDate != nil {
		d := *patch.PurchaseDate
		a.PurchaseDate = &d
	}
	if patch.PurchaseCost != nil {
		if *patch.PurchaseCost < 0 {
			return entities.AssetView{}, ErrInvalidAssetInput
		}
		a.PurchaseCost = *patch.PurchaseCost
	}
	if patch.Notes != nil {
		a.Notes = strings.TrimSpace(*patch.Notes)
	}

	a.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, a)
	if err != nil {
		return entities.AssetView{}, err
	}
	if updated.ID == "" {
		return entities.AssetView{}, ErrAssetNotFound
	}
	return u.view(ctx, updated)
}

func (u *AssetUseCase) Delete(ctx context.Context, key string) error {
	a, err := u.getByKey(ctx, key)
	if err != nil {
		return err
	}
	deleted, err := u.repo.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAssetNotFound
	}
	return nil
}

// patchRef applies the partial-update convention for nullable references:
// nil leaves the field alone, empty string clears it.
func patchRef(current, incoming *string) *string {
	if incoming == nil {
		return current
	}
	if *incoming == "" {
		return nil
	}
	v := *incoming
	return &v
}

func (u *AssetUseCase) checkRefs(ctx context.Context, categoryID, locationID, vendorID, assignedToID *string) error {
	if categoryID != nil && *categoryID != "" {
		c, err := u.categories.GetByID(ctx, *categoryID)
		if err != nil {
			return err
		}
		if c.ID == "" {
			return ErrAssetRefNotFound
		}
	}
	if locationID != nil && *locationID != "" {
		l, err := u.locations.GetByID(ctx, *locationID)
		if err != nil {
			return err
		}
		if l.ID == "" {
			return ErrAssetRefNotFound
		}
	}
	if vendorID != nil && *vendorID != "" {
		v, err := u.vendors.GetByID(ctx, *vendorID)
		if err != nil {
			return err
		}
		if v.ID == "" {
			return ErrAssetRefNotFound
		}
	}
	if assignedToID != nil && *assignedToID != "" {
		usr, err := u.users.GetByID(ctx, *assignedToID)
		if err != nil {
			return err
		}
		if usr.ID == "" {
			return ErrAssetRefNotFound
		}
	}
	return nil
}

func (u *AssetUseCase) getByKey(ctx context.Context, key string) (entities.Asset, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.Asset{}, ErrAssetNotFound
	}

	var (
		a   entities.Asset
		err error
	)
	if strings.HasPrefix(key, "AST-") {
		a, err = u.repo.GetByTag(ctx, key)
	} else {
		a, err = u.repo.GetByID(ctx, key)
	}
	if err != nil {
		return entities.Asset{}, err
	}
	if a.ID == "" {
		return entities.Asset{}, ErrAssetNotFound
	}
	return a, nil
}

func (u *AssetUseCase) view(ctx context.Context, a entities.Asset) (entities.AssetView, error) {
	resolver := newRefResolver(u.users).withLookups(u.categories, u.locations, u.vendors)
	return u.buildView(ctx, resolver, a)
}

func (u *AssetUseCase) buildView(ctx context.Context, resolver *refResolver, a entities.Asset) (entities.AssetView, error) {
	category, err := resolver.category(ctx, a.CategoryID)
	if err != nil {
		return entities.AssetView{}, err
	}
	location, err := resolver.location(ctx, a.LocationID)
	if err != nil {
		return entities.AssetView{}, err
	}
	vendor, err := resolver.vendor(ctx, a.VendorID)
	if err != nil {
		return entities.AssetView{}, err
	}
	assignedTo, err := resolver.userPtr(ctx, a.AssignedToID)
	if err != nil {
		return entities.AssetView{}, err
	}
	return entities.AssetView{
		Asset:      a,
		Category:   category,
		Location:   location,
		Vendor:     vendor,
		AssignedTo: assignedTo,
	}, nil
}

func sortAssets(items []entities.Asset, ordering string) error {
	ordering = strings.TrimSpace(ordering)
	if ordering == "" {
		ordering = "-created_at"
	}
	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")

	var less func(a, b entities.Asset) bool
	switch field {
	case "created_at":
		less = func(a, b entities.Asset) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "updated_at":
		less = func(a, b entities.Asset) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case "name":
		less = func(a, b entities.Asset) bool { return a.Name < b.Name }
	case "asset_tag":
		less = func(a, b entities.Asset) bool { return a.AssetTag < b.AssetTag }
	case "purchase_cost":
		less = func(a, b entities.Asset) bool { return a.PurchaseCost < b.PurchaseCost }
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
