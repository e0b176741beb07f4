package dto

import (
	"github.com/google/uuid"

	"hostconnect/internal/domains/addon/model"
	"hostconnect/shared"
	gDto "hostconnect/shared/dto"
	gModel "hostconnect/shared/model"
	"hostconnect/shared/timezone"
)

type CreateAddonRequest struct {
	PropertyID string  `json:"property_id" validate:"required"`
	Name       string  `json:"name"        validate:"required,max=100"`
	Price      float64 `json:"price"       validate:"required,gte=0"`
}

func (c *CreateAddonRequest) ToModel(user string) model.AddonService {
	return model.AddonService{
		ID:         uuid.NewString(),
		PropertyID: c.PropertyID,
		Name:       c.Name,
		Price:      c.Price,
		Status:     model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAddonRequest struct {
	Name   string  `db:"name"   json:"name"   validate:"omitempty,max=100"`
	Price  float64 `db:"price"  json:"price"  validate:"omitempty,gte=0"`
	Status string  `db:"status" json:"status" validate:"omitempty,oneof=active inactive"`
}

type AddonResponse struct {
	ID         string  `json:"id"`
	PropertyID string  `json:"property_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
	gDto.Metadata
}

func (r *AddonResponse) FromModel(mod model.AddonService) {
	r.ID = mod.ID
	r.PropertyID = mod.PropertyID
	r.Name = mod.Name
	r.Price = mod.Price
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type GetAddonsResponse struct {
	Addons    []AddonResponse `json:"addons"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetAddonsResponse) FromModels(models []model.AddonService, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Addons = make([]AddonResponse, len(models))
	for i, mod := range models {
		r.Addons[i].FromModel(mod)
	}
}
