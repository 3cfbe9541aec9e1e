package request

import (
	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase"
)

type CatalogCategoryCreateRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

func (r CatalogCategoryCreateRequest) ToInput() usecase.CatalogCategoryInput {
	return usecase.CatalogCategoryInput{
		Name:         r.Name,
		Description:  r.Description,
		DisplayOrder: r.DisplayOrder,
	}
}

type CatalogCategoryUpdateRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"display_order"`
}

type CatalogItemCreateRequest struct {
	Name                string  `json:"name" binding:"required"`
	ShortDescription    string  `json:"short_description"`
	Description         string  `json:"description"`
	CategoryID          *string `json:"category_id"`
	Status              string  `json:"status"`
	FulfillmentSLAHours int     `json:"fulfillment_sla_hours"`
}

func (r CatalogItemCreateRequest) ToInput() usecase.CatalogItemInput {
	return usecase.CatalogItemInput{
		Name:                r.Name,
		ShortDescription:    r.ShortDescription,
		Description:         r.Description,
		CategoryID:          r.CategoryID,
		Status:              entities.CatalogItemStatus(r.Status),
		FulfillmentSLAHours: r.FulfillmentSLAHours,
	}
}

type CatalogItemUpdateRequest struct {
	Name                *string `json:"name"`
	ShortDescription    *string `json:"short_description"`
	Description         *string `json:"description"`
	CategoryID          *string `json:"category_id"`
	Status              *string `json:"status"`
	FulfillmentSLAHours *int    `json:"fulfillment_sla_hours"`
}

func (r CatalogItemUpdateRequest) ToPatch() usecase.CatalogItemPatch {
	p := usecase.CatalogItemPatch{
		Name:                r.Name,
		ShortDescription:    r.ShortDescription,
		Description:         r.Description,
		CategoryID:          r.CategoryID,
		FulfillmentSLAHours: r.FulfillmentSLAHours,
	}
	if r.Status != nil {
		s := entities.CatalogItemStatus(*r.Status)
		p.Status = &s
	}
	return p
}
