package request

import (
	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase"
)

type ConfigurationItemCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Status      string  `json:"status"`
	Environment string  `json:"environment"`
	Description string  `json:"description"`
	AssetID     *string `json:"asset_id"`
	OwnerID     *string `json:"owner_id"`
}

func (r ConfigurationItemCreateRequest) ToInput() usecase.ConfigurationItemInput {
	return usecase.ConfigurationItemInput{
		Name:        r.Name,
		Type:        entities.CIType(r.Type),
		Status:      entities.CIStatus(r.Status),
		Environment: entities.CIEnvironment(r.Environment),
		Description: r.Description,
		AssetID:     r.AssetID,
		OwnerID:     r.OwnerID,
	}
}

type ConfigurationItemUpdateRequest struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Status      *string `json:"status"`
	Environment *string `json:"environment"`
	Description *string `json:"description"`
	AssetID     *string `json:"asset_id"`
	OwnerID     *string `json:"owner_id"`
}

func (r ConfigurationItemUpdateRequest) ToPatch() usecase.ConfigurationItemPatch {
	p := usecase.ConfigurationItemPatch{
		Name:        r.Name,
		Description: r.Description,
		AssetID:     r.AssetID,
		OwnerID:     r.OwnerID,
	}
	if r.Type != nil {
		t := entities.CIType(*r.Type)
		p.Type = &t
	}
	if r.Status != nil {
		s := entities.CIStatus(*r.Status)
		p.Status = &s
	}
	if r.Environment != nil {
		e := entities.CIEnvironment(*r.Environment)
		p.Environment = &e
	}
	return p
}
