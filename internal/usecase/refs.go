package usecase

import (
	"context"

	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase/interfaces"
)

// refResolver expands bare reference ids into the nested objects embedded
// in read responses (id in on write, object out on read). One resolver is
// created per operation and memoizes lookups, so a page of records costs
// at most one fetch per distinct referenced id.
//
// A dangling reference degrades to a ref carrying only the id rather than
// failing the whole read.
type refResolver struct {
	users      interfaces.IUserRepository
	categories interfaces.ICategoryRepository
	locations  interfaces.ILocationRepository
	vendors    interfaces.IVendorRepository

	userCache     map[string]entities.UserRef
	categoryCache map[string]entities.CategoryRef
	locationCache map[string]entities.LocationRef
	vendorCache   map[string]entities.VendorRef
}

func newRefResolver(users interfaces.IUserRepository) *refResolver {
	return &refResolver{
		users:         users,
		userCache:     map[string]entities.UserRef{},
		categoryCache: map[string]entities.CategoryRef{},
		locationCache: map[string]entities.LocationRef{},
		vendorCache:   map[string]entities.VendorRef{},
	}
}

func (r *refResolver) withLookups(categories interfaces.ICategoryRepository, locations interfaces.ILocationRepository, vendors interfaces.IVendorRepository) *refResolver {
	r.categories = categories
	r.locations = locations
	r.vendors = vendors
	return r
}

func (r *refResolver) user(ctx context.Context, id string) (entities.UserRef, error) {
	if ref, ok := r.userCache[id]; ok {
		return ref, nil
	}
	u, err := r.users.GetByID(ctx, id)
	if err != nil {
		return entities.UserRef{}, err
	}
	ref := u.Ref()
	if u.ID == "" {
		ref = entities.UserRef{ID: id}
	}
	r.userCache[id] = ref
	return ref, nil
}

func (r *refResolver) userPtr(ctx context.Context, id *string) (*entities.UserRef, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	ref, err := r.user(ctx, *id)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *refResolver) category(ctx context.Context, id *string) (*entities.CategoryRef, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	if ref, ok := r.categoryCache[*id]; ok {
		return &ref, nil
	}
	c, err := r.categories.GetByID(ctx, *id)
	if err != nil {
		return nil, err
	}
	ref := c.Ref()
	if c.ID == "" {
		ref = entities.CategoryRef{ID: *id}
	}
	r.categoryCache[*id] = ref
	return &ref, nil
}

func (r *refResolver) location(ctx context.Context, id *string) (*entities.LocationRef, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	if ref, ok := r.locationCache[*id]; ok {
		return &ref, nil
	}
	l, err := r.locations.GetByID(ctx, *id)
	if err != nil {
		return nil, err
	}
	ref := l.Ref()
	if l.ID == "" {
		ref = entities.LocationRef{ID: *id}
	}
	r.locationCache[*id] = ref
	return &ref, nil
}

func (r *refResolver) vendor(ctx context.Context, id *string) (*entities.VendorRef, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	if ref, ok := r.vendorCache[*id]; ok {
		return &ref, nil
	}
	v, err := r.vendors.GetByID(ctx, *id)
	if err != nil {
		return nil, err
	}
	ref := v.Ref()
	if v.ID == "" {
		ref = entities.VendorRef{ID: *id}
	}
	r.vendorCache[*id] = ref
	return &ref, nil
}
