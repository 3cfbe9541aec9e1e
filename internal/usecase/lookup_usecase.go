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
	ErrCategoryNotFound  = errors.New("category not found")
	ErrLocationNotFound  = errors.New("location not found")
	ErrVendorNotFound    = errors.New("vendor not found")
	ErrLookupNameTaken   = errors.New("name already in use")
	ErrInvalidLookupName = errors.New("invalid name")
)

// Lookup usecases back the reference data screens (asset categories,
// locations, vendors). Same shape three times over: unique name, flat CRUD,
// alphabetical listing.

type ICategoryUseCase interface {
	Create(ctx context.Context, name, description string) (entities.Category, error)
	Get(ctx context.Context, id string) (entities.Category, error)
	List(ctx context.Context, page PageParams) ([]entities.Category, int, error)
	Update(ctx context.Context, id string, name, description *string) (entities.Category, error)
	Delete(ctx context.Context, id string) error
}

type CategoryUseCase struct {
	repo interfaces.ICategoryRepository
}

var _ ICategoryUseCase = (*CategoryUseCase)(nil)

func NewCategoryUseCase(repo interfaces.ICategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (u *CategoryUseCase) Create(ctx context.Context, name, description string) (entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Category{}, ErrInvalidLookupName
	}
	existing, err := u.repo.GetByName(ctx, name)
	if err != nil {
		return entities.Category{}, err
	}
	if existing.ID != "" {
		return entities.Category{}, ErrLookupNameTaken
	}

	now := time.Now().UTC()
	return u.repo.Create(ctx, entities.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (u *CategoryUseCase) Get(ctx context.Context, id string) (entities.Category, error) {
	c, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Category{}, err
	}
	if c.ID == "" {
		return entities.Category{}, ErrCategoryNotFound
	}
	return c, nil
}

func (u *CategoryUseCase) List(ctx context.Context, page PageParams) ([]entities.Category, int, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	items, count := paginate(all, page)
	return items, count, nil
}

func (u *CategoryUseCase) Update(ctx context.Context, id string, name, description *string) (entities.Category, error) {
	c, err := u.Get(ctx, id)
	if err != nil {
		return entities.Category{}, err
	}
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return entities.Category{}, ErrInvalidLookupName
		}
		if n != c.Name {
			existing, err := u.repo.GetByName(ctx, n)
			if err != nil {
				return entities.Category{}, err
			}
			if existing.ID != "" && existing.ID != c.ID {
				return entities.Category{}, ErrLookupNameTaken
			}
		}
		c.Name = n
	}
	if description != nil {
		c.Description = strings.TrimSpace(*description)
	}
	c.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Category{}, err
	}
	if updated.ID == "" {
		return entities.Category{}, ErrCategoryNotFound
	}
	return updated, nil
}

func (u *CategoryUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := u.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	return nil
}

type ILocationUseCase interface {
	Create(ctx context.Context, name, address string) (entities.Location, error)
	Get(ctx context.Context, id string) (entities.Location, error)
	List(ctx context.Context, page PageParams) ([]entities.Location, int, error)
	Update(ctx context.Context, id string, name, address *string) (entities.Location, error)
	Delete(ctx context.Context, id string) error
}

type LocationUseCase struct {
	repo interfaces.ILocationRepository
}

var _ ILocationUseCase = (*LocationUseCase)(nil)

func NewLocationUseCase(repo interfaces.ILocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

func (u *LocationUseCase) Create(ctx context.Context, name, address string) (entities.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Location{}, ErrInvalidLookupName
	}
	existing, err := u.repo.GetByName(ctx, name)
	if err != nil {
		return entities.Location{}, err
	}
	if existing.ID != "" {
		return entities.Location{}, ErrLookupNameTaken
	}

	now := time.Now().UTC()
	return u.repo.Create(ctx, entities.Location{
		ID:        uuid.NewString(),
		Name:      name,
		Address:   strings.TrimSpace(address),
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *LocationUseCase) Get(ctx context.Context, id string) (entities.Location, error) {
	l, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Location{}, err
	}
	if l.ID == "" {
		return entities.Location{}, ErrLocationNotFound
	}
	return l, nil
}

func (u *LocationUseCase) List(ctx context.Context, page PageParams) ([]entities.Location, int, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	items, count := paginate(all, page)
	return items, count, nil
}

func (u *LocationUseCase) Update(ctx context.Context, id string, name, address *string) (entities.Location, error) {
	l, err := u.Get(ctx, id)
	if err != nil {
		return entities.Location{}, err
	}
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return entities.Location{}, ErrInvalidLookupName
		}
		if n != l.Name {
			existing, err := u.repo.GetByName(ctx, n)
			if err != nil {
				return entities.Location{}, err
			}
			if existing.ID != "" && existing.ID != l.ID {
				return entities.Location{}, ErrLookupNameTaken
			}
		}
		l.Name = n
	}
	if address != nil {
		l.Address = strings.TrimSpace(*address)
	}
	l.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, l)
	if err != nil {
		return entities.Location{}, err
	}
	if updated.ID == "" {
		return entities.Location{}, ErrLocationNotFound
	}
	return updated, nil
}

func (u *LocationUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := u.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLocationNotFound
	}
	return nil
}

type VendorInput struct {
	Name  string
	Email string
	Phone string
}

type IVendorUseCase interface {
	Create(ctx context.Context, input VendorInput) (entities.Vendor, error)
	Get(ctx context.Context, id string) (entities.Vendor, error)
	List(ctx context.Context, page PageParams) ([]entities.Vendor, int, error)
	Update(ctx context.Context, id string, name, email, phone *string) (entities.Vendor, error)
	Delete(ctx context.Context, id string) error
}

type VendorUseCase struct {
	repo interfaces.IVendorRepository
}

var _ IVendorUseCase = (*VendorUseCase)(nil)

func NewVendorUseCase(repo interfaces.IVendorRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo}
}

func (u *VendorUseCase) Create(ctx context.Context, input VendorInput) (entities.Vendor, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return entities.Vendor{}, ErrInvalidLookupName
	}
	existing, err := u.repo.GetByName(ctx, input.Name)
	if err != nil {
		return entities.Vendor{}, err
	}
	if existing.ID != "" {
		return entities.Vendor{}, ErrLookupNameTaken
	}

	now := time.Now().UTC()
	return u.repo.Create(ctx, entities.Vendor{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *VendorUseCase) Get(ctx context.Context, id string) (entities.Vendor, error) {
	v, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Vendor{}, err
	}
	if v.ID == "" {
		return entities.Vendor{}, ErrVendorNotFound
	}
	return v, nil
}

func (u *VendorUseCase) List(ctx context.Context, page PageParams) ([]entities.Vendor, int, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	items, count := paginate(all, page)
	return items, count, nil
}

func (u *VendorUseCase) Update(ctx context.Context, id string, name, email, phone *string) (entities.Vendor, error) {
	v, err := u.Get(ctx, id)
	if err != nil {
		return entities.Vendor{}, err
	}
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return entities.Vendor{}, ErrInvalidLookupName
		}
		if n != v.Name {
			existing, err := u.repo.GetByName(ctx, n)
			if err != nil {
				return entities.Vendor{}, err
			}
			if existing.ID != "" && existing.ID != v.ID {
				return entities.Vendor{}, ErrLookupNameTaken
			}
		}
		v.Name = n
	}
	if email != nil {
		v.Email = strings.TrimSpace(*email)
	}
	if phone != nil {
		v.Phone = strings.TrimSpace(*phone)
	}
	v.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, v)
	if err != nil {
		return entities.Vendor{}, err
	}
	if updated.ID == "" {
		return entities.Vendor{}, ErrVendorNotFound
	}
	return updated, nil
}

func (u *VendorUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := u.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrVendorNotFound
	}
	return nil
}
