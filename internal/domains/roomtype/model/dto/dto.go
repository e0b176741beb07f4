package dto

import (
	"github.com/google/uuid"

	"hostconnect/internal/domains/roomtype/model"
	"hostconnect/shared"
	gDto "hostconnect/shared/dto"
	gModel "hostconnect/shared/model"
	"hostconnect/shared/timezone"
)

type CreateRoomTypeRequest struct {
	PropertyID string  `json:"property_id" validate:"required"`
	Name       string  `json:"name"        validate:"required,max=100"`
	Capacity   int     `json:"capacity"    validate:"required,min=1"`
	BasePrice  float64 `json:"base_price"  validate:"required,gt=0"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	return model.RoomType{
		ID:         uuid.NewString(),
		PropertyID: c.PropertyID,
		Name:       c.Name,
		Capacity:   c.Capacity,
		BasePrice:  c.BasePrice,
		Status:     model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name      string  `db:"name"       json:"name"       validate:"omitempty,max=100"`
	Capacity  int     `db:"capacity"   json:"capacity"   validate:"omitempty,min=1"`
	BasePrice float64 `db:"base_price" json:"base_price" validate:"omitempty,gt=0"`
	Status    string  `db:"status"     json:"status"     validate:"omitempty,oneof=active inactive"`
}

type RoomTypeResponse struct {
	ID         string  `json:"id"`
	PropertyID string  `json:"property_id"`
	Name       string  `json:"name"`
	Capacity   int     `json:"capacity"`
	BasePrice  float64 `json:"base_price"`
	Status     string  `json:"status"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(mod model.RoomType) {
	r.ID = mod.ID
	r.PropertyID = mod.PropertyID
	r.Name = mod.Name
	r.Capacity = mod.Capacity
	r.BasePrice = mod.BasePrice
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
