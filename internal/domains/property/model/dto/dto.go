package dto

import (
	"github.com/google/uuid"

	"hostconnect/internal/domains/property/model"
	"hostconnect/shared"
	gDto "hostconnect/shared/dto"
	gModel "hostconnect/shared/model"
	"hostconnect/shared/timezone"
)

type CreatePropertyRequest struct {
	Name      string `json:"name"       validate:"required,max=100"`
	Address   string `json:"address"    validate:"required,max=200"`
	City      string `json:"city"       validate:"required,max=100"`
	Country   string `json:"country"    validate:"required,max=100"`
	Phone     string `json:"phone"      validate:"omitempty,max=20"`
	Email     string `json:"email"      validate:"omitempty,email,max=100"`
	RoomCount int    `json:"room_count" validate:"omitempty,min=0"`
}

func (c *CreatePropertyRequest) ToModel(user string) model.Property {
	return model.Property{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Address:   c.Address,
		City:      c.City,
		Country:   c.Country,
		Phone:     c.Phone,
		Email:     c.Email,
		RoomCount: c.RoomCount,
		Status:    model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePropertyRequest struct {
	Name      string `db:"name"       json:"name"       validate:"omitempty,max=100"`
	Address   string `db:"address"    json:"address"    validate:"omitempty,max=200"`
	City      string `db:"city"       json:"city"       validate:"omitempty,max=100"`
	Country   string `db:"country"    json:"country"    validate:"omitempty,max=100"`
	Phone     string `db:"phone"      json:"phone"      validate:"omitempty,max=20"`
	Email     string `db:"email"      json:"email"      validate:"omitempty,email,max=100"`
	RoomCount int    `db:"room_count" json:"room_count" validate:"omitempty,min=0"`
	Status    string `db:"status"     json:"status"     validate:"omitempty,oneof=active disabled"`
}

type PropertyResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	RoomCount int    `json:"room_count"`
	Status    string `json:"status"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(mod model.Property) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Address = mod.Address
	r.City = mod.City
	r.Country = mod.Country
	r.Phone = mod.Phone
	r.Email = mod.Email
	r.RoomCount = mod.RoomCount
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}
