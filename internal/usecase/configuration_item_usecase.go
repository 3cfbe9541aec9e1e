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
	ErrConfigItemNotFound = errors.New("configuration item not found")
	ErrInvalidCIInput     = errors.New("invalid configuration item input")
)

type ConfigurationItemInput struct {
	Name        string
	Type        entities.CIType
	Status      entities.CIStatus
	Environment entities.CIEnvironment
	Description string
	AssetID     *string
	OwnerID     *string
}

type ConfigurationItemPatch struct {
	Name        *string
	Type        *entities.CIType
	Status      *entities.CIStatus
	Environment *entities.CIEnvironment
	Description *string
	AssetID     *string
	OwnerID     *string
}

type ConfigurationItemListQuery struct {
	Filter   interfaces.ConfigurationItemFilter
	Search   string
	Ordering string
	Page     PageParams
}

type ConfigurationItemPage struct {
	Results []entities.ConfigurationItemView
	Count   int
}

type IConfigurationItemUseCase interface {
	Create(ctx context.Context, input ConfigurationItemInput) (entities.ConfigurationItemView, error)
	GetByKey(ctx context.Context, key string) (entities.ConfigurationItemView, error)
	List(ctx context.Context, query ConfigurationItemListQuery) (ConfigurationItemPage, error)
	Update(ctx context.Context, key string, patch ConfigurationItemPatch) (entities.ConfigurationItemView, error)
	Delete(ctx context.Context, key string) error
}

type ConfigurationItemUseCase struct {
	repo   interfaces.IConfigurationItemRepository
	assets interfaces.IAssetRepository
	users  interfaces.IUserRepository
	seq    interfaces.ISequenceRepository
}

var _ IConfigurationItemUseCase = (*ConfigurationItemUseCase)(nil)

func NewConfigurationItemUseCase(repo interfaces.IConfigurationItemRepository, assets interfaces.IAssetRepository, users interfaces.IUserRepository, seq interfaces.ISequenceRepository) *ConfigurationItemUseCase {
	return &ConfigurationItemUseCase{repo: repo, assets: assets, users: users, seq: seq}
}

func (u *ConfigurationItemUseCase) Create(ctx context.Context, input ConfigurationItemInput) (entities.ConfigurationItemView, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || !input.Type.Valid() {
		return entities.ConfigurationItemView{}, ErrInvalidCIInput
	}
	if input.Status == "" {
		input.Status = entities.CIStatusActive
	}
	if input.Environment == "" {
		input.Environment = entities.CIEnvironmentProduction
	}
	if !input.Status.Valid() || !input.Environment.Valid() {
		return entities.ConfigurationItemView{}, ErrInvalidCIInput
	}
	if err := u.checkRefs(ctx, input.AssetID, input.OwnerID); err != nil {
		return entities.ConfigurationItemView{}, err
	}

	n, err := u.seq.Next(ctx, seqConfigItem)
	if err != nil {
		return entities.ConfigurationItemView{}, err
	}

	now := time.Now().UTC()
	ci := entities.ConfigurationItem{
		ID:          uuid.NewString(),
		CINumber:    formatRecordNumber("CI", n),
		Name:        input.Name,
		Type:        input.Type,
		Status:      input.Status,
		Environment: input.Environment,
		Description: strings.TrimSpace(input.Description),
		AssetID:     input.AssetID,
		OwnerID:     input.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, ci)
	if err != nil {
		return entities.ConfigurationItemView{}, err
	}
	return u.view(ctx, created)
}

func (u *ConfigurationItemUseCase) GetByKey(ctx context.Context, key string) (entities.ConfigurationItemView, error) {
	ci, err := u.getByKey(ctx, key)
	if err != nil {
		return entities.ConfigurationItemView{}, err
	}
	return u.view(ctx, ci)
}

func (u *ConfigurationItemUseCase) List(ctx context.Context, query ConfigurationItemListQuery) (ConfigurationItemPage, error) {
	all, err := u.repo.List(ctx, query.Filter)
	if err != nil {
		return ConfigurationItemPage{}, err
	}

	if search := strings.ToLower(strings.TrimSpace(query.Search)); search != "" {
		matched := all[:0]
		for _, ci := range all {
			if strings.Contains(strings.ToLower(ci.Name), search) ||
				strings.Contains(strings.ToLower(ci.Description), search) ||
				strings.Contains(strings.ToLower(ci.CINumber), search) {
				matched = append(matched, ci)
			}
		}
		all = matched
	}

	if err := sortConfigurationItems(all, query.Ordering); err != nil {
		return ConfigurationItemPage{}, err
	}

	pageItems, count := paginate(all, query.Page)

	resolver := newRefResolver(u.users)
	views := make([]entities.ConfigurationItemView, 0, len(pageItems))
	for _, ci := range pageItems {
		v, err := u.buildView(ctx, resolver, ci)
		if err != nil {
			return ConfigurationItemPage{}, err
		}
		views = append(views, v)
	}
	return ConfigurationItemPage{Results: views, Count: count}, nil
}

func (u *ConfigurationItemUseCase) Update(ctx context.Context, key string, patch ConfigurationItemPatch) (entities.ConfigurationItemView, error) {
	ci, err := u.getByKey(ctx, key)
	if err != nil {
		return entities.ConfigurationItemView{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.ConfigurationItemView{}, ErrInvalidCIInput
		}
		ci.Name = name
	}
	if patch.Type != nil {
		if !patch.Type.Valid() {
			return entities.ConfigurationItemView{}, ErrInvalidCIInput
		}
		ci.Type = *patch.Type
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return entities.ConfigurationItemView{}, ErrInvalidCIInput
		}
		ci.Status = *patch.Status
	}
	if patch.Environment != nil {
		if !patch.Environment.Valid() {
			return entities.ConfigurationItemView{}, ErrInvalidCIInput
		}
		ci.Environment = *patch.Environment
	}
	if patch.Description != nil {
		ci.Description = strings.TrimSpace(*patch.Description)
	}
	ci.AssetID = patchRef(ci.AssetID, patch.AssetID)
	ci.OwnerID = patchRef(ci.OwnerID, patch.OwnerID)
	if err := u.checkRefs(ctx, ci.AssetID, ci.OwnerID); err != nil {
		return entities.ConfigurationItemView{}, err
	}

	ci.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, ci)
	if err != nil {
		return entities.ConfigurationItemView{}, err
	}
	if updated.ID == "" {
		return entities.ConfigurationItemView{}, ErrConfigItemNotFound
	}
	return u.view(ctx, updated)
}

func (u *ConfigurationItemUseCase) Delete(ctx context.Context, key string) error {
	ci, err := u.getByKey(ctx, key)
	if err != nil {
		return err
	}
	deleted, err := u.repo.Delete(ctx, ci.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrConfigItemNotFound
	}
	return nil
}

func (u *ConfigurationItemUseCase) checkRefs(ctx context.Context, assetID, ownerID *string) error {
	if assetID != nil && *assetID != "" {
		a, err := u.assets.GetByID(ctx, *assetID)
		if err != nil {
			return err
		}
		if a.ID == "" {
			return ErrAssetNotFound
		}
	}
	if ownerID != nil && *ownerID != "" {
		usr, err := u.users.GetByID(ctx, *ownerID)
		if err != nil {
			return err
		}
		if usr.ID == "" {
			return ErrUserNotFound
		}
	}
	return nil
}

func (u *ConfigurationItemUseCase) getByKey(ctx context.Context, key string) (entities.ConfigurationItem, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.ConfigurationItem{}, ErrConfigItemNotFound
	}

	var (
		ci  entities.ConfigurationItem
		err error
	)
	if strings.HasPrefix(key, "CI-") {
		ci, err = u.repo.GetByCINumber(ctx, key)
	} else {
		ci, err = u.repo.GetByID(ctx, key)
	}
	if err != nil {
		return entities.ConfigurationItem{}, err
	}
	if ci.ID == "" {
		return entities.ConfigurationItem{}, ErrConfigItemNotFound
	}
	return ci, nil
}

func (u *ConfigurationItemUseCase) view(ctx context.Context, ci entities.ConfigurationItem) (entities.ConfigurationItemView, error) {
	return u.buildView(ctx, newRefResolver(u.users), ci)
}

func (u *ConfigurationItemUseCase) buildView(ctx context.Context, resolver *refResolver, ci entities.ConfigurationItem) (entities.ConfigurationItemView, error) {
	owner, err := resolver.userPtr(ctx, ci.OwnerID)
	if err != nil {
		return entities.ConfigurationItemView{}, err
	}
	return entities.ConfigurationItemView{ConfigurationItem: ci, Owner: owner}, nil
}

func sortConfigurationItems(items []entities.ConfigurationItem, ordering string) error {
	ordering = strings.TrimSpace(ordering)
	if ordering == "" {
		ordering = "-created_at"
	}
	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")

	var less func(a, b entities.ConfigurationItem) bool
	switch field {
	case "created_at":
		less = func(a, b entities.ConfigurationItem) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "updated_at":
		less = func(a, b entities.ConfigurationItem) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case "name":
		less = func(a, b entities.ConfigurationItem) bool { return a.Name < b.Name }
	case "ci_number":
		less = func(a, b entities.ConfigurationItem) bool { return a.CINumber < b.CINumber }
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
