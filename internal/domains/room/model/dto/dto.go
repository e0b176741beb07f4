package dto

import (
	"github.com/google/uuid"

	"hostconnect/internal/domains/room/model"
	"hostconnect/shared"
	gDto "hostconnect/shared/dto"
	gModel "hostconnect/shared/model"
	"hostconnect/shared/timezone"
)

type CreateRoomRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required"`
	RoomNumber string `json:"room_number"  validate:"required,max=20"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:         uuid.NewString(),
		RoomTypeID: c.RoomTypeID,
		RoomNumber: c.RoomNumber,
		Status:     model.StatusAvailable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber string `db:"room_number" json:"room_number" validate:"omitempty,max=20"`
	Status     string `db:"status"      json:"status"      validate:"omitempty,oneof=available occupied maintenance"`
}

type RoomResponse struct {
	ID         string `json:"id"`
	RoomTypeID string `json:"room_type_id"`
	RoomNumber string `json:"room_number"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.RoomTypeID = mod.RoomTypeID
	r.RoomNumber = mod.RoomNumber
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
