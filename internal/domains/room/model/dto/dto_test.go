package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostconnect/internal/domains/room/model"
	"hostconnect/internal/domains/room/model/dto"
	"hostconnect/shared/validator"
)

func TestCreateRoomRequestToModel(t *testing.T) {
	req := dto.CreateRoomRequest{
		RoomTypeID: "roomtype-1",
		RoomNumber: "101",
	}

	room := req.ToModel("user-1")

	assert.NotEmpty(t, room.ID)
	assert.Equal(t, "roomtype-1", room.RoomTypeID)
	assert.Equal(t, "101", room.RoomNumber)
	assert.Equal(t, model.StatusAvailable, room.Status)
	assert.Equal(t, "user-1", room.CreatedBy)
}

func TestUpdateRoomRequestStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{
			name:   "available",
			status: model.StatusAvailable,
		},
		{
			name:   "occupied",
			status: model.StatusOccupied,
		},
		{
			name:   "maintenance",
			status: model.StatusMaintenance,
		},
		{
			name:    "unknown status",
			status:  "demolished",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&dto.UpdateRoomRequest{Status: tt.status})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
