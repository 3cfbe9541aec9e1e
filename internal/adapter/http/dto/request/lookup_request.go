package request

import "servicedesk/internal/usecase"

type CategoryCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CategoryUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type LocationCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

type LocationUpdateRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

type VendorCreateRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r VendorCreateRequest) ToInput() usecase.VendorInput {
	return usecase.VendorInput{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

type VendorUpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}
