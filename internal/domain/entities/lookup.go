package entities

import "time"

// Lookup entities back the reference dropdowns: asset categories, office
// locations and vendors. Flat CRUD, names unique.

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c Category) Ref() CategoryRef {
	return CategoryRef{ID: c.ID, Name: c.Name}
}

type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LocationRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (l Location) Ref() LocationRef {
	return LocationRef{ID: l.ID, Name: l.Name}
}

type Vendor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VendorRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (v Vendor) Ref() VendorRef {
	return VendorRef{ID: v.ID, Name: v.Name}
}
